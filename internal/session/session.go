// ABOUTME: Per-session UI state for the number facts viewer
// ABOUTME: Tracks the form draft, last result, last error, and which screen is shown
package session

import (
	"github.com/google/uuid"

	"github.com/harper/numfacts/internal/facts"
)

// Screen is the currently rendered view
type Screen int

const (
	ScreenForm Screen = iota
	ScreenResult
)

func (s Screen) String() string {
	if s == ScreenResult {
		return "result"
	}
	return "form"
}

// Draft holds the form fields as the user edits them
type Draft struct {
	Number string
	Type   facts.FactType
	Random bool
}

// Session is the state behind one UI instance. It is owned by a single event
// loop and is not safe for concurrent use.
type Session struct {
	ID    string
	Draft Draft

	screen Screen
	result *facts.Result
	errMsg string
}

// New creates a session on the form screen
func New(defaultType facts.FactType) *Session {
	if !defaultType.Valid() {
		defaultType = facts.TypeTrivia
	}
	return &Session{
		ID:     uuid.New().String(),
		Draft:  Draft{Type: defaultType},
		screen: ScreenForm,
	}
}

func (s *Session) Screen() Screen { return s.screen }

// Result returns the last successful result, or nil
func (s *Session) Result() *facts.Result { return s.result }

// Error returns the message for the last failure, or ""
func (s *Session) Error() string { return s.errMsg }

// Query builds a fresh query from the draft
func (s *Session) Query() facts.Query {
	return facts.Query{
		Number: s.Draft.Number,
		Type:   s.Draft.Type,
		Random: s.Draft.Random,
	}
}

// Begin marks a new submit and clears the previous error
func (s *Session) Begin() {
	s.errMsg = ""
}

// Succeed shows res on the result screen
func (s *Session) Succeed(res *facts.Result) {
	s.result = res
	s.errMsg = ""
	s.screen = ScreenResult
}

// Fail records err as the user-facing message. The screen is left as is, so a
// late failure behind a shown result is kept but not rendered.
func (s *Session) Fail(err error) {
	s.errMsg = facts.UserMessage(err)
}

// Reset clears the result and error and returns to the form. The draft stays.
func (s *Session) Reset() {
	s.result = nil
	s.errMsg = ""
	s.screen = ScreenForm
}
