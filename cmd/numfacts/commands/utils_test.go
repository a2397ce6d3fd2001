// ABOUTME: Tests for shared command helpers
// ABOUTME: Covers result printing in text and JSON formats
package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/harper/numfacts/internal/facts"
)

func TestPrintResult_Text(t *testing.T) {
	res := &facts.Result{Number: "7", Text: "7 is the number of days in a week.", Type: facts.TypeTrivia, Random: true}

	var buf bytes.Buffer
	if err := printResult(&buf, res, "auto"); err != nil {
		t.Fatalf("printResult() error = %v", err)
	}

	want := "Число: 7\nТип факта: trivia\nСлучайное число: Да\n\n7 is the number of days in a week.\n"
	if buf.String() != want {
		t.Errorf("output = %q, want %q", buf.String(), want)
	}
}

func TestPrintResult_JSON(t *testing.T) {
	res := &facts.Result{Number: "3.14", Text: "", Type: facts.TypeMath}

	var buf bytes.Buffer
	if err := printResult(&buf, res, "json"); err != nil {
		t.Fatalf("printResult() error = %v", err)
	}

	var got map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("output is not JSON: %v", err)
	}
	if got["number"] != "3.14" || got["type"] != "math" || got["random"] != false || got["text"] != "" {
		t.Errorf("unexpected JSON: %v", got)
	}
}

func TestYesNo(t *testing.T) {
	if yesNo(true) != "Да" {
		t.Error("yesNo(true) should be Да")
	}
	if yesNo(false) != "Нет" {
		t.Error("yesNo(false) should be Нет")
	}
}
