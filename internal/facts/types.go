// ABOUTME: Query and result types for numbers API lookups
// ABOUTME: Defines fact types, the submitted query, and the display model
package facts

import (
	"fmt"
	"strings"
)

// FactType selects which category of fact the API returns
type FactType string

const (
	TypeTrivia FactType = "trivia"
	TypeMath   FactType = "math"
	TypeDate   FactType = "date"
)

// AllTypes lists fact types in the order the UI offers them
var AllTypes = []FactType{TypeTrivia, TypeMath, TypeDate}

// Valid reports whether t is one of the known fact types
func (t FactType) Valid() bool {
	switch t {
	case TypeTrivia, TypeMath, TypeDate:
		return true
	}
	return false
}

// Label returns the selector label for t
func (t FactType) Label() string {
	switch t {
	case TypeTrivia:
		return "Trivia (общие факты)"
	case TypeMath:
		return "Math (математические факты)"
	case TypeDate:
		return "Date (факты о датах)"
	}
	return string(t)
}

// Next returns the type after t, wrapping around. Prev goes the other way.
func (t FactType) Next() FactType {
	return AllTypes[(t.index()+1)%len(AllTypes)]
}

func (t FactType) Prev() FactType {
	return AllTypes[(t.index()+len(AllTypes)-1)%len(AllTypes)]
}

func (t FactType) index() int {
	for i, ft := range AllTypes {
		if ft == t {
			return i
		}
	}
	return 0
}

// ParseFactType converts s into a FactType
func ParseFactType(s string) (FactType, error) {
	t := FactType(strings.TrimSpace(s))
	if !t.Valid() {
		return "", fmt.Errorf("unknown fact type %q (want trivia, math or date)", s)
	}
	return t, nil
}

// Query is built fresh from the form on every submit
type Query struct {
	Number string   // raw user input, may be empty in random mode
	Type   FactType // defaults to trivia when empty
	Random bool
}

// Result is the display model for the result screen
type Result struct {
	Number string   `json:"number"`
	Text   string   `json:"text"`
	Type   FactType `json:"type"`
	Random bool     `json:"random"`
}
