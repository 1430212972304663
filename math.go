package formula

import (
	"fmt"
	"math"
	"math/big"
)

// Overflow selects how summation behaves when a result does not fit in an
// Integer.
type Overflow int

const (
	// Checked arithmetic reports ErrOverflow.
	Checked Overflow = iota
	// Saturating arithmetic clamps to the Integer range.
	Saturating
)

func (o Overflow) String() string {
	switch o {
	case Checked:
		return "checked"
	case Saturating:
		return "saturating"
	default:
		return fmt.Sprintf("Overflow(%d)", int(o))
	}
}

// ParseOverflow parses the name of an overflow policy.
func ParseOverflow(s string) (Overflow, error) {
	switch s {
	case "checked", "":
		return Checked, nil
	case "saturating":
		return Saturating, nil
	default:
		return 0, fmt.Errorf("unknown overflow policy %q", s)
	}
}

// summandTypes are the accepted shapes of each sum argument.
var summandTypes = []Type{IntegerType, ListOf(IntegerType)}

// Sum returns the sum of its arguments. Each argument must be an Integer or a
// List of Integers; list elements are added individually. Sum of nothing is
// 0. Every argument is checked before any addition happens, and a result that
// does not fit in an Integer is reported as ErrOverflow.
func Sum(args ...Value) (Integer, error) {
	return sum(Checked, args)
}

// SaturatingSum is like Sum, but clamps an overflowing result to the Integer
// range instead of failing.
func SaturatingSum(args ...Value) (Integer, error) {
	return sum(Saturating, args)
}

func sum(policy Overflow, args []Value) (Integer, error) {
	for i, v := range args {
		if !admitsAny(summandTypes, v) {
			return 0, &TypeError{Builtin: "sum", Param: "values", Index: i, Want: describe(summandTypes), Got: describeArg(v)}
		}
	}

	var total big.Int
	for _, v := range args {
		switch v := v.(type) {
		case Integer:
			total.Add(&total, big.NewInt(int64(v)))
		case List:
			for _, e := range v {
				total.Add(&total, big.NewInt(int64(e.(Integer))))
			}
		}
	}

	if total.IsInt64() {
		return Integer(total.Int64()), nil
	}
	if policy == Checked {
		return 0, fmt.Errorf("sum: %w", ErrOverflow)
	}
	if total.Sign() > 0 {
		return math.MaxInt64, nil
	}
	return math.MinInt64, nil
}

func admitsAny(types []Type, v Value) bool {
	for _, t := range types {
		if t.Admits(v) {
			return true
		}
	}
	return false
}
