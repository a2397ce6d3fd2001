// ABOUTME: Bubble Tea model for the number facts viewer
// ABOUTME: Handles form input, submits lookups as commands, and switches screens
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/harper/numfacts/internal/facts"
	"github.com/harper/numfacts/internal/logging"
	"github.com/harper/numfacts/internal/session"
)

// FactRequester performs a single lookup
type FactRequester interface {
	RequestFact(ctx context.Context, q facts.Query) (*facts.Result, error)
}

type field int

const (
	fieldRandom field = iota
	fieldNumber
	fieldType
	fieldSubmit
)

// Model renders one session. Lookups run as tea.Cmds, so the form stays
// interactive while they are in flight and nothing stops a second submit;
// whichever response arrives last is what the session shows.
type Model struct {
	requester FactRequester
	session   *session.Session
	logger    *log.Logger

	input    textinput.Model
	spinner  spinner.Model
	focus    field
	inFlight int
	width    int
}

// New creates a model bound to sess
func New(requester FactRequester, sess *session.Session, logger *log.Logger) Model {
	input := textinput.New()
	input.Placeholder = "Например, 42"
	input.Prompt = "> "
	input.CharLimit = 64
	input.SetValue(sess.Draft.Number)

	if logger == nil {
		logger = logging.Discard()
	}

	m := Model{
		requester: requester,
		session:   sess,
		logger:    logger,
		input:     input,
		spinner:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		focus:     fieldNumber,
	}
	if sess.Draft.Random {
		m.focus = fieldRandom
	}
	m.syncFocus()
	return m
}

// Session returns the state the model renders
func (m Model) Session() *session.Session {
	return m.session
}

// InFlight returns the number of lookups that have not completed yet
func (m Model) InFlight() int {
	return m.inFlight
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case factFetchedMsg:
		if m.inFlight > 0 {
			m.inFlight--
		}
		if msg.err != nil {
			m.session.Fail(msg.err)
		} else {
			m.session.Succeed(msg.result)
		}
		return m, nil

	case spinner.TickMsg:
		if m.inFlight == 0 {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.session.Screen() == session.ScreenResult {
			return m.updateResult(msg)
		}
		return m.updateForm(msg)
	}

	// cursor blink and other input housekeeping
	if m.focus == fieldNumber {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateForm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		return m, tea.Quit
	case tea.KeyEnter:
		return m.submit()
	case tea.KeyTab, tea.KeyDown:
		cmd := m.moveFocus(1)
		return m, cmd
	case tea.KeyShiftTab, tea.KeyUp:
		cmd := m.moveFocus(-1)
		return m, cmd
	}

	switch m.focus {
	case fieldNumber:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.session.Draft.Number = m.input.Value()
		return m, cmd
	case fieldRandom:
		if msg.Type == tea.KeySpace {
			m.session.Draft.Random = !m.session.Draft.Random
		}
	case fieldType:
		switch msg.Type {
		case tea.KeyLeft:
			m.session.Draft.Type = m.session.Draft.Type.Prev()
		case tea.KeyRight, tea.KeySpace:
			m.session.Draft.Type = m.session.Draft.Type.Next()
		}
	case fieldSubmit:
		if msg.Type == tea.KeySpace {
			return m.submit()
		}
	}
	return m, nil
}

func (m Model) updateResult(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEnter, msg.Type == tea.KeyEsc, msg.String() == "b":
		m.session.Reset()
		m.logger.Debug("back to form", "session", m.session.ID)
	}
	return m, nil
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	m.session.Begin()
	q := m.session.Query()
	if err := facts.Validate(q); err != nil {
		m.session.Fail(err)
		return m, nil
	}

	m.inFlight++
	m.logger.Debug("submitting lookup", "session", m.session.ID, "number", q.Number, "type", q.Type, "random", q.Random)

	cmds := []tea.Cmd{m.fetch(q)}
	if m.inFlight == 1 {
		cmds = append(cmds, m.spinner.Tick)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) fetch(q facts.Query) tea.Cmd {
	requester := m.requester
	return func() tea.Msg {
		res, err := requester.RequestFact(context.Background(), q)
		return factFetchedMsg{result: res, err: err}
	}
}

func (m *Model) visibleFields() []field {
	if m.session.Draft.Random {
		return []field{fieldRandom, fieldType, fieldSubmit}
	}
	return []field{fieldRandom, fieldNumber, fieldType, fieldSubmit}
}

func (m *Model) moveFocus(delta int) tea.Cmd {
	fields := m.visibleFields()
	idx := 0
	for i, f := range fields {
		if f == m.focus {
			idx = i
			break
		}
	}
	idx = (idx + delta + len(fields)) % len(fields)
	m.focus = fields[idx]
	return m.syncFocus()
}

func (m *Model) syncFocus() tea.Cmd {
	if m.focus == fieldNumber {
		return m.input.Focus()
	}
	m.input.Blur()
	return nil
}

// Run starts the program and blocks until the user quits or ctx is done
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) error {
	opts = append(opts, tea.WithContext(ctx))
	m.logger.Info("session started", "session", m.session.ID)
	_, err := tea.NewProgram(m, opts...).Run()
	m.logger.Info("session ended", "session", m.session.ID)
	return err
}
