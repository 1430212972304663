package formula

import (
	"fmt"
	"io"
	"strings"
)

// Union is a tagged union whose alternative set is computed per call. It holds
// exactly one value, tagged with the index of the alternative it was selected
// as.
type Union struct {
	alternatives []Type
	index        int
	value        Value
}

// Plain returns the single-alternative union holding v. Builtins with a fixed
// result type return their results this way.
func Plain(v Value) Union {
	return Union{alternatives: []Type{TypeOf(v)}, value: v}
}

// Index returns the index of the selected alternative.
func (u Union) Index() int {
	return u.index
}

// Value returns the selected value.
func (u Union) Value() Value {
	return u.value
}

// Alternatives returns the union's alternative types in call order.
func (u Union) Alternatives() []Type {
	alts := make([]Type, len(u.alternatives))
	copy(alts, u.alternatives)
	return alts
}

// Type returns the normalized union type, e.g. "boolean | number | string".
func (u Union) Type() string {
	return describe(u.alternatives)
}

func (u Union) String() string {
	var b strings.Builder
	u.write(&b)
	return b.String()
}

func (u Union) write(w io.Writer) error {
	if len(u.alternatives) > 1 {
		if _, err := fmt.Fprintf(w, "#%d ", u.index); err != nil {
			return err
		}
	}
	return Encode(w, u.value)
}

// A UnionBuilder assembles the alternative set of a union one candidate at a
// time and then selects the alternative that is actually produced. The zero
// value is an empty builder.
type UnionBuilder struct {
	alternatives []Type
}

// Add appends an alternative for the candidate v and returns its index.
func (b *UnionBuilder) Add(v Value) int {
	b.alternatives = append(b.alternatives, TypeOf(v))
	return len(b.alternatives) - 1
}

// Len returns the number of alternatives added so far.
func (b *UnionBuilder) Len() int {
	return len(b.alternatives)
}

// Select returns the union holding v as alternative i. It panics if i was not
// returned by Add or v is not a member of that alternative: both indicate a
// bug in the calling builtin, not bad user input.
func (b *UnionBuilder) Select(i int, v Value) Union {
	if i < 0 || i >= len(b.alternatives) {
		panic(fmt.Sprintf("alternative %d is out of range [0, %d)", i, len(b.alternatives)))
	}
	if !b.alternatives[i].Admits(v) {
		panic(fmt.Sprintf("%v is not a member of alternative %d (%v)", EncodeToString(v), i, b.alternatives[i]))
	}

	alts := make([]Type, len(b.alternatives))
	copy(alts, b.alternatives)
	return Union{alternatives: alts, index: i, value: v}
}
