package formula

// Arg is anything that may appear in a builtin call's argument list: a Value,
// an Ident or a Continuation.
type Arg interface {
	isArg()
}

// Procedure is a builtin callable through the dynamic calling convention.
type Procedure interface {
	Signature() Signature

	// Apply checks args against the signature and, if they are accepted,
	// runs the builtin.
	Apply(args []Arg) (Union, error)
}

// ProcedureFunc is the body of a builtin. It runs only on arguments that passed
// the signature check.
type ProcedureFunc func(args []Arg) (Union, error)

type procedure struct {
	sig  Signature
	body ProcedureFunc
}

// NewProcedure returns a Procedure that checks its arguments against sig and
// then runs body.
func NewProcedure(sig Signature, body ProcedureFunc) Procedure {
	return &procedure{sig: sig, body: body}
}

func (p *procedure) Signature() Signature {
	return p.sig
}

func (p *procedure) Apply(args []Arg) (Union, error) {
	if err := p.sig.Check(args); err != nil {
		return Union{}, err
	}
	return p.body(args)
}
