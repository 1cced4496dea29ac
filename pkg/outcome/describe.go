package outcome

import (
	"fmt"
	"strings"
)

// UnwrapFailureError is the panic payload of Unwrap on a failure result.
type UnwrapFailureError struct {
	Held error
}

func (e *UnwrapFailureError) Error() string {
	return "Tried to unwrap a failure result" + nestedCause(describeError(e.Held))
}

func (e *UnwrapFailureError) Unwrap() error {
	return e.Held
}

// UnwrapSuccessError is the panic payload of UnwrapErr on a success result.
type UnwrapSuccessError struct {
	Held any
}

func (e *UnwrapSuccessError) Error() string {
	return "Tried to unwrap an error from a success result" + nestedCause(describeValue(e.Held))
}

// ExpectError is the panic payload of Expect on a failure and ExpectErr on a
// success. Held is nil in the ExpectErr case.
type ExpectError struct {
	Msg  string
	Held error
}

func (e *ExpectError) Error() string {
	if e.Held == nil {
		return e.Msg
	}
	return e.Msg + nestedCause(describeError(e.Held))
}

func (e *ExpectError) Unwrap() error {
	return e.Held
}

// nestedCause renders a description as an indented cause line appended to a
// panic message. Diagnostic only.
func nestedCause(desc string) string {
	return "\n\tcaused by: " + indent(desc)
}

func indent(s string) string {
	return strings.ReplaceAll(s, "\n", "\n\t")
}

func describeError(err error) string {
	if IsNil(err) {
		return "<nil>"
	}
	if ce, ok := err.(*CanonicalError); ok {
		if len(ce.Stack) > 0 {
			return ce.Message + "\n" + strings.TrimRight(string(ce.Stack), "\n")
		}
		return ce.Message
	}
	return err.Error()
}

// describeValue renders an arbitrary held value: errors by their description,
// values with a string form by that form, primitives by their literal form
// and anything else by a generic object notice.
func describeValue(v any) string {
	if v == nil {
		return "<nil>"
	}
	if err, ok := v.(error); ok {
		return describeError(err)
	}
	if s, ok := stringForm(v); ok {
		return s
	}
	return fmt.Sprintf("value is an object (%s)", kindOf(v))
}
