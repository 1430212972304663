package formula

import (
	"sort"
	"strings"
)

type typeKind int

const (
	typeAny typeKind = iota
	typeBoolean
	typeInteger
	typeText
	typeList
)

// Type describes the set of values a union alternative, a continuation
// parameter or a builtin parameter slot may hold. Unlike Kind, a Type can
// describe list element types and the wildcard any.
type Type struct {
	kind typeKind
	elem *Type
}

var (
	AnyType     = Type{kind: typeAny}
	BooleanType = Type{kind: typeBoolean}
	IntegerType = Type{kind: typeInteger}
	TextType    = Type{kind: typeText}
)

// ListOf returns the type of lists whose elements all have type elem.
func ListOf(elem Type) Type {
	return Type{kind: typeList, elem: &elem}
}

// Elem returns the element type of a list type. It returns false for non-list
// types.
func (t Type) Elem() (Type, bool) {
	if t.kind != typeList {
		return Type{}, false
	}
	return *t.elem, true
}

// IsAny reports whether t is the wildcard type.
func (t Type) IsAny() bool {
	return t.kind == typeAny
}

// Equal reports whether t and u describe the same type.
func (t Type) Equal(u Type) bool {
	if t.kind != u.kind {
		return false
	}
	if t.kind == typeList {
		return t.elem.Equal(*u.elem)
	}
	return true
}

func (t Type) String() string {
	switch t.kind {
	case typeBoolean:
		return "boolean"
	case typeInteger:
		return "number"
	case typeText:
		return "string"
	case typeList:
		elem := t.elem.String()
		if strings.Contains(elem, " | ") {
			elem = "(" + elem + ")"
		}
		return elem + "[]"
	default:
		return "any"
	}
}

// TypeOf returns the most precise type describing v. A list whose elements
// all share one type T has type T[]; any other list, including the empty
// list, has type any[].
func TypeOf(v Value) Type {
	switch v := v.(type) {
	case Boolean:
		return BooleanType
	case Integer:
		return IntegerType
	case Text:
		return TextType
	case List:
		if len(v) == 0 {
			return ListOf(AnyType)
		}
		elem := TypeOf(v[0])
		for _, e := range v[1:] {
			if !TypeOf(e).Equal(elem) {
				return ListOf(AnyType)
			}
		}
		return ListOf(elem)
	default:
		return AnyType
	}
}

// Admits reports whether v is a member of t. Membership is structural: a list
// is admitted by T[] when every element is admitted by T, so the empty list
// is admitted by every list type.
func (t Type) Admits(v Value) bool {
	if v == nil {
		return false
	}

	switch t.kind {
	case typeAny:
		return true
	case typeBoolean:
		return v.Kind() == KindBoolean
	case typeInteger:
		return v.Kind() == KindInteger
	case typeText:
		return v.Kind() == KindText
	case typeList:
		l, ok := v.(List)
		if !ok {
			return false
		}
		for _, e := range l {
			if !t.elem.Admits(e) {
				return false
			}
		}
		return true
	default:
		return false
	}
}

// describe renders a set of alternative types as one union type.
func describe(types []Type) string {
	normal := normalize(types)
	if len(normal) == 0 {
		return "any"
	}
	parts := make([]string, len(normal))
	for i, t := range normal {
		parts[i] = t.String()
	}
	return strings.Join(parts, " | ")
}

// normalize deduplicates types and orders them boolean, number, string,
// lists, any. any absorbs every other member.
func normalize(types []Type) []Type {
	var unique []Type
	for _, t := range types {
		if t.IsAny() {
			return []Type{AnyType}
		}

		seen := false
		for _, u := range unique {
			if u.Equal(t) {
				seen = true
				break
			}
		}
		if !seen {
			unique = append(unique, t)
		}
	}

	sort.SliceStable(unique, func(i, j int) bool {
		if unique[i].kind != unique[j].kind {
			return unique[i].kind < unique[j].kind
		}
		return unique[i].String() < unique[j].String()
	})
	return unique
}
