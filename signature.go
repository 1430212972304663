package formula

// Category groups builtins the way they are documented.
type Category int

const (
	CategoryGeneral Category = iota
	CategoryNumber
	CategoryText
	CategorySpecial
)

func (c Category) String() string {
	switch c {
	case CategoryGeneral:
		return "General"
	case CategoryNumber:
		return "Number"
	case CategoryText:
		return "Text"
	case CategorySpecial:
		return "Special"
	default:
		return "Unknown"
	}
}

// Shape is what a parameter slot accepts.
type Shape int

const (
	// ShapeValue slots accept a Value admitted by one of the slot's types.
	ShapeValue Shape = iota
	// ShapeIdent slots accept an Ident.
	ShapeIdent
	// ShapeContinuation slots accept a Continuation.
	ShapeContinuation
)

// Param describes one parameter slot.
type Param struct {
	Name  string
	Shape Shape
	Types []Type // ShapeValue only; empty means any
}

func (p Param) want() string {
	switch p.Shape {
	case ShapeIdent:
		return "an identifier"
	case ShapeContinuation:
		return "a continuation"
	default:
		return describe(p.Types)
	}
}

func (p Param) accepts(a Arg) bool {
	switch p.Shape {
	case ShapeIdent:
		_, ok := a.(Ident)
		return ok
	case ShapeContinuation:
		_, ok := a.(Continuation)
		return ok
	default:
		v, ok := a.(Value)
		if !ok || v == nil {
			return false
		}
		return len(p.Types) == 0 || admitsAny(p.Types, v)
	}
}

// Signature describes a builtin's calling convention. A call's arguments are
// the Head slots, then zero or more complete Repeat groups, then the Tail
// slots.
type Signature struct {
	Name     string
	Display  string // e.g. "ifs(condition, value, ..., default)"
	Category Category
	Head     []Param
	Repeat   []Param
	Tail     []Param
	Result   string
}

func (s Signature) String() string {
	return s.Display + " -> " + s.Result
}

// Slots expands the signature into one parameter per argument of an n-argument
// call.
func (s Signature) Slots(n int) ([]Param, error) {
	fixed := len(s.Head) + len(s.Tail)
	if n < fixed {
		return nil, arityError(s.Name, "expects at least %d arguments, got %d", fixed, n)
	}

	rest := n - fixed
	switch {
	case len(s.Repeat) == 0 && rest != 0:
		return nil, arityError(s.Name, "expects %d arguments, got %d", fixed, n)
	case len(s.Repeat) != 0 && rest%len(s.Repeat) != 0:
		return nil, arityError(s.Name, "expects arguments in groups of %d before the last %d, got %d", len(s.Repeat), len(s.Tail), n)
	}

	slots := make([]Param, 0, n)
	slots = append(slots, s.Head...)
	for len(slots) < n-len(s.Tail) {
		slots = append(slots, s.Repeat...)
	}
	return append(slots, s.Tail...), nil
}

// Check validates args against the signature. It either accepts the whole call
// or rejects it before any builtin logic runs.
func (s Signature) Check(args []Arg) error {
	slots, err := s.Slots(len(args))
	if err != nil {
		return err
	}
	for i, p := range slots {
		if !p.accepts(args[i]) {
			return &TypeError{Builtin: s.Name, Param: p.Name, Index: i, Want: p.want(), Got: describeArg(args[i])}
		}
	}
	return nil
}
