package formula

// If selects then when condition is true and otherwise when it is false.
// The result is a two-alternative union: alternative 0 holds then, 1 holds
// otherwise. Both branches are already evaluated.
func If(condition Boolean, then, otherwise Value) Union {
	var b UnionBuilder
	thenIdx, elseIdx := b.Add(then), b.Add(otherwise)
	if condition {
		return b.Select(thenIdx, then)
	}
	return b.Select(elseIdx, otherwise)
}

// Branch is one (condition, value) pair of a multi-way conditional.
type Branch struct {
	Condition Boolean
	Value     Value
}

// Ifs returns the value of the first branch whose condition is true, or
// otherwise if there is none. The result's alternatives are otherwise's type
// followed by each branch's value type, so alternative 0 always means no
// branch matched and alternative i means branches[i-1] did.
func Ifs(branches []Branch, otherwise Value) Union {
	var b UnionBuilder
	b.Add(otherwise)
	for _, br := range branches {
		b.Add(br.Value)
	}

	for i, br := range branches {
		if br.Condition {
			return b.Select(i+1, br.Value)
		}
	}
	return b.Select(0, otherwise)
}
