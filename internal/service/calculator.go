package service

import (
	"errors"
	"strconv"
	"strings"
)

// InvalidArgumentError is returned when an operation is called with an argument it cannot accept.
// Its message is client-visible and returned verbatim by the HTTP layer.
type InvalidArgumentError struct {
	Message string
}

func (e *InvalidArgumentError) Error() string {
	return e.Message
}

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = &InvalidArgumentError{Message: "Cannot divide by zero"}

// ErrUnknownOperation is returned when an operation name does not match any supported operation.
var ErrUnknownOperation = errors.New("unknown operation")

// Operation names a calculator operation.
type Operation string

const (
	OpAdd      Operation = "add"
	OpSubtract Operation = "subtract"
	OpMultiply Operation = "multiply"
	OpDivide   Operation = "divide"
)

// Operations lists all supported operations in display order.
var Operations = []Operation{OpAdd, OpSubtract, OpMultiply, OpDivide}

// ParseOperation maps a case-insensitive operation name to an Operation.
func ParseOperation(s string) (Operation, error) {
	op := Operation(strings.ToLower(strings.TrimSpace(s)))
	switch op {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return op, nil
	}
	return "", ErrUnknownOperation
}

// Result is the outcome of a dispatched calculation. Quotient results carry a float,
// everything else an integer.
type Result struct {
	Op       Operation
	Integer  int
	Quotient float64
}

// String renders the result as plain text. Quotients always carry a fractional part (5.0, 2.5).
func (r Result) String() string {
	if r.Op != OpDivide {
		return strconv.Itoa(r.Integer)
	}
	s := strconv.FormatFloat(r.Quotient, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// Calculator performs integer arithmetic. The zero value is ready to use.
// Overflow wraps, as for any fixed-width Go integer.
type Calculator struct{}

// NewCalculator returns a Calculator.
func NewCalculator() *Calculator {
	return &Calculator{}
}

// Add returns a + b.
func (c *Calculator) Add(a, b int) int {
	return a + b
}

// Subtract returns a - b.
func (c *Calculator) Subtract(a, b int) int {
	return a - b
}

// Multiply returns a * b.
func (c *Calculator) Multiply(a, b int) int {
	return a * b
}

// Divide returns a / b as a floating-point quotient. Returns ErrDivideByZero when b is zero.
func (c *Calculator) Divide(a, b int) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return float64(a) / float64(b), nil
}

// Calculate dispatches op on a and b.
func (c *Calculator) Calculate(op Operation, a, b int) (Result, error) {
	switch op {
	case OpAdd:
		return Result{Op: op, Integer: c.Add(a, b)}, nil
	case OpSubtract:
		return Result{Op: op, Integer: c.Subtract(a, b)}, nil
	case OpMultiply:
		return Result{Op: op, Integer: c.Multiply(a, b)}, nil
	case OpDivide:
		q, err := c.Divide(a, b)
		if err != nil {
			return Result{}, err
		}
		return Result{Op: op, Quotient: q}, nil
	}
	return Result{}, ErrUnknownOperation
}
