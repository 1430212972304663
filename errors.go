package formula

import (
	"errors"
	"fmt"
)

var (
	// ErrType is wrapped by every error reporting an argument, bound value
	// or continuation whose type does not match what the builtin expects.
	ErrType = errors.New("type mismatch")

	// ErrArity is wrapped by errors reporting a wrong number of arguments.
	ErrArity = errors.New("wrong number of arguments")

	// ErrUnknownBuiltin is returned when a call names no builtin.
	ErrUnknownBuiltin = errors.New("unknown builtin")

	// ErrOverflow is returned by checked arithmetic when a result does not
	// fit in an Integer.
	ErrOverflow = errors.New("integer overflow")
)

// A TypeError reports a call rejected at the call boundary because one of its
// arguments has the wrong shape.
type TypeError struct {
	Builtin string // builtin name
	Param   string // parameter name
	Index   int    // argument position, 0-based
	Want    string
	Got     string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("%s: argument %d (%s) must be %s, got %s", e.Builtin, e.Index+1, e.Param, e.Want, e.Got)
}

func (e *TypeError) Unwrap() error {
	return ErrType
}

func arityError(builtin string, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", builtin, fmt.Sprintf(format, args...), ErrArity)
}

// describeArg names the shape of an argument for diagnostics.
func describeArg(a Arg) string {
	switch a := a.(type) {
	case Value:
		return TypeOf(a).String()
	case Ident:
		return "identifier " + string(a)
	case Continuation:
		return "continuation"
	default:
		return "nothing"
	}
}
