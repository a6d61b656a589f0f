package nas

import (
	"errors"
	"fmt"
)

// Code classifies a failure. Every error raised by the commit engine
// carries exactly one code.
type Code int

const (
	// CodeUnknown is reported by CodeOf for errors that carry no code.
	CodeUnknown Code = iota
	// CodeInvalidState is an object lifecycle violation, e.g. create
	// of an object that is already in hardware.
	CodeInvalidState
	// CodeInvalidParameter is a bad argument: an NPU outside the
	// owning switch, an attribute value out of range.
	CodeInvalidParameter
	// CodeHardwareFailure is a push hook failure reported by the
	// hardware driver layer.
	CodeHardwareFailure
	// CodeExhausted means an id generator has no free ids left.
	CodeExhausted
	// CodeUnsupported is returned by hooks a concrete object type
	// failed to override.
	CodeUnsupported
)

// String returns the string representation of the code.
func (c Code) String() string {
	switch c {
	case CodeInvalidState:
		return "InvalidState"
	case CodeInvalidParameter:
		return "InvalidParameter"
	case CodeHardwareFailure:
		return "HardwareOperationFailed"
	case CodeExhausted:
		return "Exhausted"
	case CodeUnsupported:
		return "Unsupported"
	default:
		return fmt.Sprintf("Code(%d)", int(c))
	}
}

// Error is the single error type of the commit engine. Op names the
// operation that raised it.
type Error struct {
	Code Code
	Op   string
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	s := e.Code.String()
	if e.Op != "" {
		s = e.Op + ": " + s
	}
	if e.Msg != "" {
		s += ": " + e.Msg
	}
	if e.Err != nil {
		s += ": " + e.Err.Error()
	}
	return s
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code. This
// lets callers match on the sentinels below with errors.Is.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Op == "" && t.Msg == "" && t.Err == nil && t.Code == e.Code
}

// Sentinels for errors.Is matching by code.
var (
	ErrInvalidState     = &Error{Code: CodeInvalidState}
	ErrInvalidParameter = &Error{Code: CodeInvalidParameter}
	ErrHardwareFailure  = &Error{Code: CodeHardwareFailure}
	ErrExhausted        = &Error{Code: CodeExhausted}
	ErrUnsupported      = &Error{Code: CodeUnsupported}
)

// Errorf builds an *Error with a formatted message.
func Errorf(code Code, op, format string, args ...any) *Error {
	return &Error{Code: code, Op: op, Msg: fmt.Sprintf(format, args...)}
}

// CodeOf returns the code of the first *Error in err's chain, or
// CodeUnknown.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// HardwareFailure classifies err as a hardware failure raised by op.
// Errors that already carry a code are returned unchanged.
func HardwareFailure(op string, err error) error {
	if err == nil {
		return nil
	}
	var e *Error
	if errors.As(err, &e) {
		return err
	}
	return &Error{Code: CodeHardwareFailure, Op: op, Err: err}
}
