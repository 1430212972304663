package formula

import "github.com/huandu/xstrings"

var lengthTypes = []Type{TextType, ListOf(AnyType)}

// Length returns the number of Unicode code points in a Text or the number of
// elements in a List, whatever their kinds.
func Length(v Value) (Integer, error) {
	switch v := v.(type) {
	case Text:
		return Integer(xstrings.Len(string(v))), nil
	case List:
		return Integer(len(v)), nil
	default:
		return 0, &TypeError{Builtin: "length", Param: "value", Want: describe(lengthTypes), Got: describeArg(v)}
	}
}
