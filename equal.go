package formula

// Equal reports whether a and b are structurally equal: they have the same
// kind, and scalars compare by value while lists compare element-wise.
func Equal(a, b Value) bool {
	switch a := a.(type) {
	case Boolean, Integer, Text:
		return a == b
	case List:
		b, ok := b.(List)
		if !ok || len(a) != len(b) {
			return false
		}
		for i, e := range a {
			if !Equal(e, b[i]) {
				return false
			}
		}
		return true
	default:
		return a == nil && b == nil
	}
}

// Equal reports whether u and v hold the same alternative of the same
// alternative set with structurally equal values.
func (u Union) Equal(v Union) bool {
	if u.index != v.index || len(u.alternatives) != len(v.alternatives) {
		return false
	}
	for i, t := range u.alternatives {
		if !t.Equal(v.alternatives[i]) {
			return false
		}
	}
	return Equal(u.value, v.value)
}
