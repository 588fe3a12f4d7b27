package crypto330

import (
	"errors"
	"fmt"
)

var (
	// ErrParse indicates a textual number contained a character outside its
	// alphabet.
	ErrParse = errors.New("crypto330: parse error")

	// ErrDivideByZero indicates division or reduction by a zero integer or
	// polynomial.
	ErrDivideByZero = errors.New("crypto330: division by zero")

	// ErrIncompatibleCurve indicates a point operation mixed points that belong
	// to different curve instances.
	ErrIncompatibleCurve = errors.New("crypto330: points belong to different curves")

	// ErrInvalidInverse indicates a modular inverse was requested for operands
	// that are not coprime.
	ErrInvalidInverse = errors.New("crypto330: operand has no inverse modulo the modulus")

	// ErrInvalidParameter indicates an invalid parameter was provided
	ErrInvalidParameter = errors.New("crypto330: invalid parameter")
)

// Error wraps an underlying error with the operation that produced it.
type Error struct {
	Op  string // Operation that failed, e.g. "hugeint.Parse"
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Wrap attaches op to err. A nil err stays nil.
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	return &Error{Op: op, Err: err}
}

// Errorf creates an *Error for op. The format may use %w to wrap a sentinel.
func Errorf(op string, format string, args ...interface{}) error {
	return &Error{
		Op:  op,
		Err: fmt.Errorf(format, args...),
	}
}
