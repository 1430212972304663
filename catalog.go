package formula

import (
	"fmt"
	"sort"
)

// Options configures a Catalog.
type Options struct {
	// Overflow selects the summation overflow policy.
	Overflow Overflow
}

// Catalog maps builtin names to procedures. It is read-only once built and
// safe for concurrent use.
type Catalog struct {
	procs map[string]Procedure
}

var (
	conditionParam = Param{Name: "condition", Types: []Type{BooleanType}}
	varParam       = Param{Name: "var", Shape: ShapeIdent}
	exprParam      = Param{Name: "expr", Shape: ShapeContinuation}
)

// NewCatalog returns the catalog of builtins.
func NewCatalog(opts Options) *Catalog {
	sumFn := Sum
	if opts.Overflow == Saturating {
		sumFn = SaturatingSum
	}

	c := &Catalog{procs: map[string]Procedure{}}

	// general
	c.add(Signature{
		Name:     "if",
		Display:  "if(condition, then, else)",
		Category: CategoryGeneral,
		Head:     []Param{conditionParam, {Name: "then"}, {Name: "else"}},
		Result:   "T",
	}, func(args []Arg) (Union, error) {
		return If(args[0].(Boolean), args[1].(Value), args[2].(Value)), nil
	})
	c.add(Signature{
		Name:     "ifs",
		Display:  "ifs(condition, value, ..., default)",
		Category: CategoryGeneral,
		Repeat:   []Param{conditionParam, {Name: "value"}},
		Tail:     []Param{{Name: "default"}},
		Result:   "T",
	}, func(args []Arg) (Union, error) {
		pairs := args[:len(args)-1]
		branches := make([]Branch, 0, len(pairs)/2)
		for i := 0; i < len(pairs); i += 2 {
			branches = append(branches, Branch{Condition: pairs[i].(Boolean), Value: pairs[i+1].(Value)})
		}
		return Ifs(branches, args[len(args)-1].(Value)), nil
	})

	// numbers
	c.add(Signature{
		Name:     "sum",
		Display:  "sum(values1, values2, ...)",
		Category: CategoryNumber,
		Repeat:   []Param{{Name: "values", Types: summandTypes}},
		Result:   "number",
	}, func(args []Arg) (Union, error) {
		total, err := sumFn(values(args)...)
		if err != nil {
			return Union{}, err
		}
		return Plain(total), nil
	})

	// text and lists
	c.add(Signature{
		Name:     "length",
		Display:  "length(value)",
		Category: CategoryText,
		Head:     []Param{{Name: "value", Types: lengthTypes}},
		Result:   "number",
	}, func(args []Arg) (Union, error) {
		n, err := Length(args[0].(Value))
		if err != nil {
			return Union{}, err
		}
		return Plain(n), nil
	})

	// binding
	c.add(Signature{
		Name:     "let",
		Display:  "let(var, value, expr)",
		Category: CategorySpecial,
		Head:     []Param{varParam, {Name: "value"}, exprParam},
		Result:   "R",
	}, func(args []Arg) (Union, error) {
		v, err := Let(args[0].(Ident), args[1].(Value), args[2].(Continuation))
		if err != nil {
			return Union{}, err
		}
		return Plain(v), nil
	})
	c.add(Signature{
		Name:     "lets",
		Display:  "lets(var1, value1, ..., expr)",
		Category: CategorySpecial,
		Repeat:   []Param{varParam, {Name: "value"}},
		Tail:     []Param{exprParam},
		Result:   "R",
	}, func(args []Arg) (Union, error) {
		var frame Frame
		for i := 0; i < len(args)-1; i += 2 {
			frame = frame.Bind(args[i].(Ident), args[i+1].(Value))
		}
		v, err := Lets(frame, args[len(args)-1].(Continuation))
		if err != nil {
			return Union{}, err
		}
		return Plain(v), nil
	})

	return c
}

func (c *Catalog) add(sig Signature, body ProcedureFunc) {
	c.procs[sig.Name] = NewProcedure(sig, body)
}

// Lookup returns the builtin with the given name.
func (c *Catalog) Lookup(name string) (Procedure, bool) {
	p, ok := c.procs[name]
	return p, ok
}

// Names returns the names of all builtins in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.procs))
	for name := range c.procs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Call applies the named builtin to args.
func (c *Catalog) Call(name string, args ...Arg) (Union, error) {
	p, ok := c.Lookup(name)
	if !ok {
		return Union{}, fmt.Errorf("%w %q", ErrUnknownBuiltin, name)
	}
	return p.Apply(args)
}

func values(args []Arg) []Value {
	vs := make([]Value, len(args))
	for i, a := range args {
		vs[i] = a.(Value)
	}
	return vs
}
