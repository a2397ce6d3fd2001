// ABOUTME: Error kinds returned by fact lookups
// ABOUTME: Maps each kind to the fixed message shown in the UI
package facts

import "errors"

var (
	// ErrEmptyInput means a direct lookup was submitted with a blank number
	ErrEmptyInput = errors.New("empty input")
	// ErrNonNumeric means the number field does not coerce to a number
	ErrNonNumeric = errors.New("not numeric")
	// ErrNetwork covers transport failures and undecodable response bodies alike
	ErrNetwork = errors.New("network error")
	// ErrInvalidType is returned for a fact type outside trivia, math and date
	ErrInvalidType = errors.New("invalid fact type")
)

const (
	MsgEmptyInput = "Пожалуйста, введите число"
	MsgNonNumeric = "Число должно быть в виде цифры"
	MsgNetwork    = "Произошла ошибка при получении данных. Пожалуйста, попробуйте ещё раз."
)

// UserMessage returns the user-facing text for err
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEmptyInput):
		return MsgEmptyInput
	case errors.Is(err, ErrNonNumeric):
		return MsgNonNumeric
	default:
		return MsgNetwork
	}
}
