package problemgen

import (
	"errors"
	"strconv"
	"strings"
)

// MaxAnswerDigits bounds typed answers; 12 × 12 has three digits.
const MaxAnswerDigits = 3

var (
	// ErrEmptyAnswer is returned when nothing was typed.
	ErrEmptyAnswer = errors.New("empty answer")

	// ErrNotANumber is returned for input that is not a non-negative integer.
	ErrNotANumber = errors.New("answer is not a number")
)

// ParseAnswer parses typed input. Whitespace is trimmed and leading zeros
// are accepted ("007" is 7).
func ParseAnswer(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 0, ErrEmptyAnswer
	}
	if len(input) > MaxAnswerDigits {
		return 0, ErrNotANumber
	}
	for _, r := range input {
		if r < '0' || r > '9' {
			return 0, ErrNotANumber
		}
	}
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, ErrNotANumber
	}
	return n, nil
}

// CheckAnswer reports whether answer equals the question's product.
func CheckAnswer(q Question, answer int) bool {
	return answer == q.Answer()
}

// CheckChoice reports whether the option at index is the correct one.
func CheckChoice(q Question, index int) bool {
	return index >= 0 && index < len(q.Options) && index == q.CorrectIndex
}
