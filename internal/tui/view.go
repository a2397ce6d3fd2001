package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/harper/numfacts/internal/facts"
	"github.com/harper/numfacts/internal/session"
)

func (m Model) View() string {
	var body string
	if m.session.Screen() == session.ScreenResult && m.session.Result() != nil {
		body = m.resultView(m.session.Result())
	} else {
		body = m.formView()
	}

	header := lipgloss.JoinVertical(lipgloss.Center,
		titleStyle.Render("Интересные факты о числах"),
		subtitleStyle.Render("Узнай что‑то новое прямо сейчас"),
	)

	return lipgloss.JoinVertical(lipgloss.Center, header, "", cardStyle.Width(m.cardWidth()).Render(body)) + "\n"
}

func (m Model) cardWidth() int {
	if m.width > 0 && m.width-4 < cardWidth {
		return max(m.width-4, 20)
	}
	return cardWidth
}

func (m Model) formView() string {
	var b strings.Builder
	draft := m.session.Draft

	box := "[ ]"
	if draft.Random {
		box = "[x]"
	}
	b.WriteString(m.label(fieldRandom, box+" Использовать случайное число"))
	b.WriteString("\n\n")

	if !draft.Random {
		b.WriteString(m.label(fieldNumber, "Введите число:"))
		b.WriteString("\n")
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
	}

	b.WriteString(m.label(fieldType, "Выберите тип факта:"))
	b.WriteString("\n")
	b.WriteString(typeSelector(draft.Type, m.focus == fieldType))
	b.WriteString("\n\n")

	if msg := m.session.Error(); msg != "" {
		b.WriteString(errorStyle.Render(msg))
		b.WriteString("\n\n")
	}

	button := buttonStyle.Render("Получить факт")
	if m.focus == fieldSubmit {
		button = focusedStyle.Render("› ") + button
	}
	b.WriteString(button)
	if m.inFlight > 0 {
		b.WriteString("  " + m.spinner.View() + " загрузка…")
	}
	b.WriteString("\n\n")

	b.WriteString(helpStyle.Render("tab: поле • space: выбрать • ←/→: тип • enter: получить факт • esc: выход"))
	return b.String()
}

func (m Model) resultView(res *facts.Result) string {
	random := "Нет"
	if res.Random {
		random = "Да"
	}

	lines := []string{
		titleStyle.Render("Результат"),
		"",
		labelStyle.Render("Число:") + " " + res.Number,
		labelStyle.Render("Тип факта:") + " " + string(res.Type),
		labelStyle.Render("Случайное число:") + " " + random,
		"",
		factStyle.Width(m.cardWidth() - 6).Render(res.Text),
		"",
		backButtonStyle.Render("Назад"),
		"",
		helpStyle.Render("enter/esc/b: назад • ctrl+c: выход"),
	}
	return strings.Join(lines, "\n")
}

func (m Model) label(f field, text string) string {
	if m.focus == f {
		return focusedStyle.Render("› " + text)
	}
	return labelStyle.Render("  " + text)
}

func typeSelector(current facts.FactType, focused bool) string {
	opts := make([]string, 0, len(facts.AllTypes))
	for _, t := range facts.AllTypes {
		if t == current {
			opts = append(opts, focusedStyle.Render("● "+t.Label()))
		} else {
			opts = append(opts, subtitleStyle.Render("○ "+t.Label()))
		}
	}
	sel := strings.Join(opts, "\n")
	if focused {
		return lipgloss.NewStyle().PaddingLeft(2).Render(sel)
	}
	return sel
}
