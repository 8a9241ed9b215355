// Package contract defines the typed errors raised when calling code
// violates a container operation's contract. Violations are raised by
// panic: they indicate a bug at the call site, never a domain failure,
// and are deliberately not representable as a negative variant.
package contract

import (
	"errors"
	"fmt"
)

// Code classifies a contract violation.
type Code string

// Codes for all violation categories.
const (
	// CodeNilValue marks construction of a present variant from an
	// absent-marker value.
	CodeNilValue Code = "NIL_VALUE"
	// CodeEmptyFailure marks construction of a Failure with no errors.
	CodeEmptyFailure Code = "EMPTY_FAILURE"
	// CodeWrongVariant marks an unwrap of the inactive variant.
	CodeWrongVariant Code = "WRONG_VARIANT"
)

// ErrViolation is the sentinel matched by errors.Is for every Violation.
var ErrViolation = errors.New("container contract violation")

// Violation describes a contract broken by calling code.
type Violation struct {
	Code    Code
	Op      string
	Message string
}

// Error implements the error interface.
func (v *Violation) Error() string {
	return fmt.Sprintf("[%s] %s: %s", v.Code, v.Op, v.Message)
}

// Is matches ErrViolation so callers can detect any violation without
// naming its code.
func (v *Violation) Is(target error) bool {
	return target == ErrViolation
}

// Panic raises a Violation for op with the given code and message.
func Panic(code Code, op, message string) {
	panic(&Violation{Code: code, Op: op, Message: message})
}

// From extracts a Violation from a recovered panic value. Fault
// boundaries use it to re-raise violations instead of folding them
// into a negative variant.
func From(r any) (*Violation, bool) {
	err, ok := r.(error)
	if !ok {
		return nil, false
	}
	var v *Violation
	if errors.As(err, &v) {
		return v, true
	}
	return nil, false
}
