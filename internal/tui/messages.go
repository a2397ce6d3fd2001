package tui

import "github.com/harper/numfacts/internal/facts"

// factFetchedMsg is sent when a lookup started by a submit completes.
// Exactly one of result and err is set.
type factFetchedMsg struct {
	result *facts.Result
	err    error
}
