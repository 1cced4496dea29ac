package outcome

import (
	"fmt"
	"reflect"
	"runtime/debug"
)

// CanonicalError is the canonical shape for values recovered from panics and
// other non-error failure payloads. OrigValue keeps the original value
// verbatim for inspection.
type CanonicalError struct {
	Name      string
	Message   string
	Stack     []byte
	OrigValue any
}

func (e *CanonicalError) Error() string {
	return e.Message
}

// errorShaped is the structural contract for values that already behave like
// errors without implementing the error interface: a name, a message and a
// non-default string form.
type errorShaped interface {
	Name() string
	Message() string
}

// Normalize converts an arbitrary recovered value into an error.
//
// Errors pass through unchanged, so failures crossing library boundaries are
// never double-wrapped. Error-shaped values are adopted verbatim into the
// canonical shape. Everything else becomes a *CanonicalError named
// "BaseError" with a message describing the value's kind.
func Normalize(v any) error {
	if err, ok := v.(error); ok {
		return err
	}

	if es, ok := v.(errorShaped); ok {
		if _, custom := v.(fmt.Stringer); custom {
			return &CanonicalError{
				Name:      es.Name(),
				Message:   es.Message(),
				OrigValue: v,
			}
		}
	}

	msg := "Caught exotic value (" + kindOf(v) + ")"
	if s, ok := stringForm(v); ok {
		msg += ": " + s
	}

	return &CanonicalError{
		Name:      "BaseError",
		Message:   msg,
		Stack:     debug.Stack(),
		OrigValue: v,
	}
}

// stringForm returns a meaningful string rendering of v, if it has one:
// its fmt.Stringer form, or the literal form of a number/string/bool.
func stringForm(v any) (string, bool) {
	if s, ok := v.(fmt.Stringer); ok {
		return s.String(), true
	}
	switch kindOf(v) {
	case "number", "string", "bool":
		return fmt.Sprintf("%v", v), true
	}
	return "", false
}

// kindOf classifies a value into the vocabulary used by normalization
// messages. The mapping is deliberately explicit rather than inferred from
// reflect.Kind names, so messages stay stable across integer widths.
func kindOf(v any) string {
	if v == nil {
		return "nil"
	}

	switch reflect.TypeOf(v).Kind() {
	case reflect.Slice, reflect.Array:
		return "array"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64, reflect.Complex64, reflect.Complex128:
		return "number"
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Map:
		return "map"
	case reflect.Func:
		return "function"
	case reflect.Chan:
		return "channel"
	case reflect.Struct, reflect.Ptr, reflect.Interface:
		return "object"
	default:
		return reflect.TypeOf(v).Kind().String()
	}
}
