package validation

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrOperandMissing is returned when an operand is absent or whitespace-only after trim.
var ErrOperandMissing = errors.New("operand is required")

// ErrOperandInvalid is returned when an operand is not a base-10 integer.
var ErrOperandInvalid = errors.New("operand must be an integer")

// ErrOperandOutOfRange is returned when an operand does not fit in an int.
var ErrOperandOutOfRange = errors.New("operand out of range")

// ParseOperand trims the input and parses it as a base-10 integer with an optional sign.
// The returned error wraps one of the sentinels above and is prefixed with name, so it
// reads well in a 400 response (e.g. "b: operand must be an integer").
func ParseOperand(name, input string) (int, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0, fmt.Errorf("%s: %w", name, ErrOperandMissing)
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			return 0, fmt.Errorf("%s: %w", name, ErrOperandOutOfRange)
		}
		return 0, fmt.Errorf("%s: %w", name, ErrOperandInvalid)
	}
	return n, nil
}

// ParseOperands parses the a and b operands in order, returning the first error.
func ParseOperands(a, b string) (int, int, error) {
	x, err := ParseOperand("a", a)
	if err != nil {
		return 0, 0, err
	}
	y, err := ParseOperand("b", b)
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
