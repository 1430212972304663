package formula

import (
	"fmt"
	"strings"

	"github.com/xiaq/persistent/vector"
)

// Ident labels a binding slot. It exists for diagnostics only: bindings are
// positional and never looked up by name.
type Ident string

func (Ident) isArg() {}

// Continuation is the rest of a computation, taking the bound values as its
// arguments. Params declares the type of each parameter; a bound value that a
// parameter does not admit is rejected before Fn runs.
type Continuation struct {
	Params []Type
	Fn     func(args []Value) Value
}

func (Continuation) isArg() {}

// Func returns a continuation with n parameters of type any.
func Func(n int, fn func(args []Value) Value) Continuation {
	params := make([]Type, n)
	for i := range params {
		params[i] = AnyType
	}
	return Continuation{Params: params, Fn: fn}
}

func (k Continuation) String() string {
	params := make([]string, len(k.Params))
	for i, p := range k.Params {
		params[i] = p.String()
	}
	return "(" + strings.Join(params, ", ") + ") -> any"
}

// Binding is one slot of a Frame.
type Binding struct {
	Name  Ident
	Value Value
}

// Frame is an immutable, ordered sequence of bindings. Bind returns a new frame
// and leaves the receiver unchanged, so a partially built frame may be shared.
// The zero value is an empty frame.
type Frame struct {
	slots vector.Vector
}

// NewFrame returns a frame holding the given bindings in order.
func NewFrame(bindings ...Binding) Frame {
	var f Frame
	for _, b := range bindings {
		f = f.Bind(b.Name, b.Value)
	}
	return f
}

// Bind returns a frame extending f with name bound to v.
func (f Frame) Bind(name Ident, v Value) Frame {
	slots := f.slots
	if slots == nil {
		slots = vector.Empty
	}
	return Frame{slots: slots.Cons(Binding{Name: name, Value: v})}
}

// Len returns the number of bindings in the frame.
func (f Frame) Len() int {
	if f.slots == nil {
		return 0
	}
	return f.slots.Len()
}

// At returns the i'th binding.
func (f Frame) At(i int) Binding {
	b, ok := f.slots.Index(i)
	if !ok {
		panic(fmt.Sprintf("binding %d is out of range [0, %d)", i, f.Len()))
	}
	return b.(Binding)
}

// Values returns the bound values in declaration order.
func (f Frame) Values() []Value {
	values := make([]Value, 0, f.Len())
	if f.slots == nil {
		return values
	}
	for it := f.slots.Iterator(); it.HasElem(); it.Next() {
		values = append(values, it.Elem().(Binding).Value)
	}
	return values
}

// Let binds value to id and returns k applied to it. k must declare exactly one
// parameter, and that parameter must admit value.
func Let(id Ident, value Value, k Continuation) (Value, error) {
	return apply("let", NewFrame(Binding{Name: id, Value: value}), k)
}

// Lets binds every value of frame and returns k applied to all of them in
// declaration order. k must declare one parameter per binding, each admitting
// the value in the same position.
func Lets(frame Frame, k Continuation) (Value, error) {
	return apply("lets", frame, k)
}

// LetOf is the statically typed form of Let: the compiler rejects a
// continuation whose parameter type differs from the bound value's.
func LetOf[T Value, R any](id Ident, value T, k func(T) R) R {
	return k(value)
}

func apply(builtin string, frame Frame, k Continuation) (Value, error) {
	if k.Fn == nil {
		return nil, fmt.Errorf("%s: continuation has no body: %w", builtin, ErrType)
	}
	if len(k.Params) != frame.Len() {
		return nil, arityError(builtin, "continuation takes %d parameters, %d bound", len(k.Params), frame.Len())
	}

	values := frame.Values()
	for i, p := range k.Params {
		if !p.Admits(values[i]) {
			b := frame.At(i)
			return nil, &TypeError{Builtin: builtin, Param: string(b.Name), Index: i, Want: p.String(), Got: describeArg(b.Value)}
		}
	}

	return k.Fn(values), nil
}
