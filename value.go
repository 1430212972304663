package formula

import (
	"io"
	"strconv"
	"strings"

	"github.com/huandu/go-clone"
)

// Kind identifies the active alternative of a Value.
type Kind int

const (
	KindBoolean Kind = iota
	KindInteger
	KindText
	KindList
)

func (k Kind) String() string {
	switch k {
	case KindBoolean:
		return "boolean"
	case KindInteger:
		return "number"
	case KindText:
		return "string"
	case KindList:
		return "list"
	default:
		return "<invalid kind " + strconv.Itoa(int(k)) + ">"
	}
}

// Value is a runtime value. The set of implementations is closed: Boolean,
// Integer, Text and List.
type Value interface {
	Arg

	Kind() Kind

	write(w io.Writer) error
}

// Encode writes a textual representation of v to w.
func Encode(w io.Writer, v Value) error {
	if v == nil {
		_, err := w.Write([]byte("<nil>"))
		return err
	}
	return v.write(w)
}

// EncodeToString returns the textual representation of v.
func EncodeToString(v Value) string {
	var b strings.Builder
	Encode(&b, v)
	return b.String()
}

// Copy returns a deep copy of v. Values are immutable, so a copy is only
// needed when a value must outlive storage the caller intends to reuse.
func Copy(v Value) Value {
	if v == nil {
		return nil
	}
	return clone.Clone(v).(Value)
}

// Boolean
type Boolean bool

func (Boolean) Kind() Kind { return KindBoolean }
func (Boolean) isArg()     {}

func (b Boolean) write(w io.Writer) error {
	text := "true"
	if !b {
		text = "false"
	}
	_, err := w.Write([]byte(text))
	return err
}

// Integer
type Integer int64

func (Integer) Kind() Kind { return KindInteger }
func (Integer) isArg()     {}

func (i Integer) write(w io.Writer) error {
	_, err := w.Write([]byte(strconv.FormatInt(int64(i), 10)))
	return err
}

// Text
type Text string

func (Text) Kind() Kind { return KindText }
func (Text) isArg()     {}

func (t Text) write(w io.Writer) error {
	_, err := w.Write([]byte(strconv.Quote(string(t))))
	return err
}

// List is an ordered sequence of values. Elements may have different kinds.
type List []Value

// NewList returns a list holding a copy of elems.
func NewList(elems ...Value) List {
	l := make(List, len(elems))
	copy(l, elems)
	return l
}

func (List) Kind() Kind { return KindList }
func (List) isArg()     {}

// Len returns the number of elements in the list.
func (l List) Len() int {
	return len(l)
}

// Index returns the i'th element of the list.
func (l List) Index(i int) Value {
	return l[i]
}

// Elems returns a copy of the list's elements.
func (l List) Elems() []Value {
	elems := make([]Value, len(l))
	copy(elems, l)
	return elems
}

func (l List) write(w io.Writer) error {
	if _, err := w.Write([]byte("[")); err != nil {
		return err
	}
	for i, e := range l {
		if i > 0 {
			if _, err := w.Write([]byte(", ")); err != nil {
				return err
			}
		}
		if err := Encode(w, e); err != nil {
			return err
		}
	}
	_, err := w.Write([]byte("]"))
	return err
}
