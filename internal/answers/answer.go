package answers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Answer is a recorded response: either the text of a selected choice or a
// number picked on a scale. The zero value is an empty text answer.
type Answer struct {
	text    string
	number  float64
	numeric bool
}

// Text returns a text answer.
func Text(s string) Answer {
	return Answer{text: s}
}

// Number returns a numeric answer.
func Number(n float64) Answer {
	return Answer{number: n, numeric: true}
}

// IsNumber reports whether the answer carries a number.
func (a Answer) IsNumber() bool { return a.numeric }

// Float returns the numeric value and whether the answer is numeric.
func (a Answer) Float() (float64, bool) {
	return a.number, a.numeric
}

// Text returns the text value and whether the answer is text.
func (a Answer) Text() (string, bool) {
	return a.text, !a.numeric
}

// String renders the answer for display.
func (a Answer) String() string {
	if a.numeric {
		return strconv.FormatFloat(a.number, 'f', -1, 64)
	}
	return a.text
}

// Equal reports whether two answers hold the same kind and value.
func (a Answer) Equal(b Answer) bool {
	return a == b
}

// MarshalJSON encodes the answer as a bare JSON string or number.
func (a Answer) MarshalJSON() ([]byte, error) {
	if a.numeric {
		return json.Marshal(a.number)
	}
	return json.Marshal(a.text)
}

// UnmarshalJSON accepts a JSON string or number.
func (a *Answer) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("answer: empty value")
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("answer: %w", err)
		}
		*a = Text(s)
		return nil
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return fmt.Errorf("answer: %w", err)
		}
		*a = Number(n)
		return nil
	default:
		return fmt.Errorf("answer: must be a string or a number, got %s", data)
	}
}
