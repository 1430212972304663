package formula

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogNames(t *testing.T) {
	c := NewCatalog(Options{})
	assert.Equal(t, []string{"if", "ifs", "length", "let", "lets", "sum"}, c.Names())

	p, ok := c.Lookup("ifs")
	require.True(t, ok)
	assert.Equal(t, "ifs(condition, value, ..., default) -> T", p.Signature().String())
	assert.Equal(t, CategoryGeneral, p.Signature().Category)

	_, ok = c.Lookup("median")
	assert.False(t, ok)
}

func TestCatalogCall(t *testing.T) {
	c := NewCatalog(Options{})

	double := Func(1, func(args []Value) Value { return args[0].(Integer) * 2 })
	pick := Func(3, func(args []Value) Value {
		return If(args[2].(Boolean), args[0], args[1]).Value()
	})

	cases := []struct {
		name     string
		builtin  string
		args     []Arg
		index    int
		expected Value
	}{
		{"if-then", "if", []Arg{Boolean(true), Integer(1), Text("hello")}, 0, Integer(1)},
		{"if-else", "if", []Arg{Boolean(false), Integer(1), Text("hello")}, 1, Text("hello")},
		{"ifs-first", "ifs", []Arg{Boolean(true), Text("123"), Boolean(true), Integer(42), Boolean(false)}, 1, Text("123")},
		{"ifs-second", "ifs", []Arg{Boolean(false), Text("123"), Boolean(true), Integer(42), Boolean(false)}, 2, Integer(42)},
		{"ifs-else-only", "ifs", []Arg{Boolean(false)}, 0, Boolean(false)},
		{"sum", "sum", []Arg{Integer(1), NewList(Integer(2), Integer(3)), Integer(4)}, 0, Integer(10)},
		{"sum-nothing", "sum", nil, 0, Integer(0)},
		{"sum-empty-list", "sum", []Arg{NewList()}, 0, Integer(0)},
		{"length-text", "length", []Arg{Text("hello")}, 0, Integer(5)},
		{"length-list", "length", []Arg{NewList(Integer(1), Integer(2), Text("3"))}, 0, Integer(3)},
		{"let", "let", []Arg{Ident("x"), Integer(1), double}, 0, Integer(2)},
		{"lets-true", "lets", []Arg{Ident("x"), Integer(1), Ident("y"), Text("2"), Ident("z"), Boolean(true), pick}, 0, Integer(1)},
		{"lets-false", "lets", []Arg{Ident("x"), Integer(1), Ident("y"), Text("2"), Ident("z"), Boolean(false), pick}, 0, Text("2")},
	}
	for _, c2 := range cases {
		t.Run(c2.name, func(t *testing.T) {
			r, err := c.Call(c2.builtin, c2.args...)
			require.NoError(t, err)
			assert.Equal(t, c2.index, r.Index())
			assert.True(t, Equal(c2.expected, r.Value()), "got %v", r)
		})
	}
}

func TestCatalogRejectsWholesale(t *testing.T) {
	c := NewCatalog(Options{})

	calls := 0
	k := Func(1, func(args []Value) Value { calls++; return args[0] })

	cases := []struct {
		name    string
		builtin string
		args    []Arg
		target  error
	}{
		{"if-arity", "if", []Arg{Boolean(true), Integer(1)}, ErrArity},
		{"if-condition", "if", []Arg{Integer(1), Integer(1), Integer(2)}, ErrType},
		{"ifs-missing-default", "ifs", nil, ErrArity},
		{"ifs-odd-pairs", "ifs", []Arg{Boolean(true), Integer(1), Integer(2), Integer(3)}, ErrArity},
		{"ifs-condition", "ifs", []Arg{Text("yes"), Integer(1), Integer(2)}, ErrType},
		{"sum-text", "sum", []Arg{Integer(1), Text("2")}, ErrType},
		{"sum-ident", "sum", []Arg{Ident("x")}, ErrType},
		{"length-number", "length", []Arg{Integer(5)}, ErrType},
		{"length-arity", "length", []Arg{Text("a"), Text("b")}, ErrArity},
		{"let-ident", "let", []Arg{Text("x"), Integer(1), k}, ErrType},
		{"let-continuation", "let", []Arg{Ident("x"), Integer(1), Integer(2)}, ErrType},
		{"let-value", "let", []Arg{Ident("x"), k, k}, ErrType},
		{"let-params", "let", []Arg{Ident("x"), Integer(1), Continuation{Params: []Type{TextType}, Fn: k.Fn}}, ErrType},
		{"lets-params", "lets", []Arg{Ident("x"), Integer(1), Ident("y"), Integer(2), k}, ErrArity},
		{"unknown", "median", []Arg{Integer(1)}, ErrUnknownBuiltin},
	}
	for _, c2 := range cases {
		t.Run(c2.name, func(t *testing.T) {
			_, err := c.Call(c2.builtin, c2.args...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, c2.target), "got %v", err)
		})
	}
	assert.Zero(t, calls)
}

func TestCatalogOverflowPolicy(t *testing.T) {
	args := []Arg{Integer(math.MaxInt64), Integer(1)}

	_, err := NewCatalog(Options{Overflow: Checked}).Call("sum", args...)
	assert.True(t, errors.Is(err, ErrOverflow))

	r, err := NewCatalog(Options{Overflow: Saturating}).Call("sum", args...)
	require.NoError(t, err)
	assert.Equal(t, Integer(math.MaxInt64), r.Value())
}

func TestCatalogConcurrentCalls(t *testing.T) {
	c := NewCatalog(Options{})
	bump := Func(2, func(args []Value) Value {
		return Integer(len(args[1].(Text))) + args[0].(Integer)
	})

	cases := []struct {
		name     string
		builtin  string
		args     []Arg
		index    int
		expected Value
	}{
		{"if", "if", []Arg{Boolean(false), Integer(1), Text("a")}, 1, Text("a")},
		{"ifs", "ifs", []Arg{Boolean(false), Text("x"), Boolean(true), Integer(2), Boolean(false)}, 2, Integer(2)},
		{"sum", "sum", []Arg{Integer(1), NewList(Integer(2), Integer(3))}, 0, Integer(6)},
		{"length", "length", []Arg{Text("héllo")}, 0, Integer(5)},
		{"let", "let", []Arg{Ident("x"), Integer(4), Func(1, func(args []Value) Value { return args[0] })}, 0, Integer(4)},
		{"lets", "lets", []Arg{Ident("n"), Integer(1), Ident("s"), Text("ab"), bump}, 0, Integer(3)},
	}
	for i := 0; i < 8; i++ {
		for _, tc := range cases {
			tc := tc
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()
				r, err := c.Call(tc.builtin, tc.args...)
				require.NoError(t, err)
				assert.Equal(t, tc.index, r.Index())
				assert.True(t, Equal(tc.expected, r.Value()), "got %v", r)
			})
		}
	}
}
