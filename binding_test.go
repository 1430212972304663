package formula

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLet(t *testing.T) {
	calls := 0
	k := Continuation{
		Params: []Type{IntegerType},
		Fn: func(args []Value) Value {
			calls++
			return args[0].(Integer) + 2
		},
	}

	v, err := Let("x", Integer(1), k)
	require.NoError(t, err)
	assert.Equal(t, Integer(3), v)
	assert.Equal(t, 1, calls)
}

func TestLetRejectsMismatchedContinuation(t *testing.T) {
	calls := 0
	k := Continuation{
		Params: []Type{IntegerType},
		Fn: func(args []Value) Value {
			calls++
			return args[0]
		},
	}

	_, err := Let("x", Text("1"), k)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrType))
	assert.Zero(t, calls)

	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, "x", typeErr.Param)
	assert.Equal(t, "number", typeErr.Want)
	assert.Equal(t, "string", typeErr.Got)

	_, err = Let("x", Integer(1), Func(2, func(args []Value) Value { calls++; return args[0] }))
	assert.True(t, errors.Is(err, ErrArity))
	assert.Zero(t, calls)

	_, err = Let("x", Integer(1), Continuation{Params: []Type{AnyType}})
	assert.True(t, errors.Is(err, ErrType))
}

func TestLetOf(t *testing.T) {
	r := LetOf("x", Integer(1), func(x Integer) Integer { return x + 2 })
	assert.Equal(t, Integer(3), r)

	n := LetOf("s", Text("hello"), func(s Text) int { return len(s) })
	assert.Equal(t, 5, n)
}

func TestLets(t *testing.T) {
	pick := Continuation{
		Params: []Type{IntegerType, TextType, BooleanType},
		Fn: func(args []Value) Value {
			return If(args[2].(Boolean), args[0], args[1]).Value()
		},
	}

	frame := NewFrame(
		Binding{"x", Integer(1)},
		Binding{"y", Text("2")},
	)

	v, err := Lets(frame.Bind("z", Boolean(true)), pick)
	require.NoError(t, err)
	assert.Equal(t, Integer(1), v)

	v, err = Lets(frame.Bind("z", Boolean(false)), pick)
	require.NoError(t, err)
	assert.Equal(t, Text("2"), v)
}

func TestLetsBindsEverythingInOrder(t *testing.T) {
	var seen []Value
	calls := 0
	k := Func(4, func(args []Value) Value {
		calls++
		seen = args
		return Integer(len(args))
	})

	var frame Frame
	for _, v := range []Value{Integer(1), Text("a"), NewList(), Boolean(false)} {
		frame = frame.Bind("v", v)
	}

	v, err := Lets(frame, k)
	require.NoError(t, err)
	assert.Equal(t, Integer(4), v)
	assert.Equal(t, 1, calls)
	assert.True(t, Equal(NewList(Integer(1), Text("a"), NewList(), Boolean(false)), List(seen)))
}

func TestLetsEmptyFrame(t *testing.T) {
	v, err := Lets(Frame{}, Func(0, func(args []Value) Value { return Text("done") }))
	require.NoError(t, err)
	assert.Equal(t, Text("done"), v)
}

func TestLetsRejectsMismatches(t *testing.T) {
	frame := NewFrame(Binding{"x", Integer(1)}, Binding{"y", Text("2")})

	_, err := Lets(frame, Continuation{
		Params: []Type{IntegerType, IntegerType},
		Fn:     func(args []Value) Value { return nil },
	})
	var typeErr *TypeError
	require.True(t, errors.As(err, &typeErr))
	assert.Equal(t, 1, typeErr.Index)
	assert.Equal(t, "y", typeErr.Param)

	_, err = Lets(frame, Func(1, func(args []Value) Value { return nil }))
	assert.True(t, errors.Is(err, ErrArity))
}

func TestFrameIsImmutable(t *testing.T) {
	base := NewFrame(Binding{"x", Integer(1)})
	a := base.Bind("y", Integer(2))
	b := base.Bind("y", Text("two"))

	assert.Equal(t, 1, base.Len())
	assert.Equal(t, 2, a.Len())
	assert.Equal(t, 2, b.Len())
	assert.Equal(t, Integer(2), a.At(1).Value)
	assert.Equal(t, Text("two"), b.At(1).Value)
	assert.Equal(t, Ident("y"), b.At(1).Name)
	assert.Panics(t, func() { base.At(1) })

	assert.Equal(t, 0, Frame{}.Len())
	assert.Empty(t, Frame{}.Values())
}

func TestContinuationString(t *testing.T) {
	k := Continuation{Params: []Type{IntegerType, ListOf(TextType)}}
	assert.Equal(t, "(number, string[]) -> any", k.String())
}
