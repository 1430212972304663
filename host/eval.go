package host

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/JoverZhang/formula"
)

// ErrEmpty is returned when there is nothing to evaluate.
var ErrEmpty = errors.New("no expressions to evaluate")

// scope is a lexical environment created by let and lets bodies.
type scope struct {
	name  string
	value formula.Value
	outer *scope
}

func (s *scope) lookup(name string) (formula.Value, bool) {
	for ; s != nil; s = s.outer {
		if s.name == name {
			return s.value, true
		}
	}
	return nil, false
}

func (s *scope) push(name string, v formula.Value) *scope {
	return &scope{name: name, value: v, outer: s}
}

// Evaluator evaluates parsed expressions against a builtin catalog. Arguments
// are evaluated eagerly, left to right, before the builtin is called.
type Evaluator struct {
	catalog *formula.Catalog
	logger  *slog.Logger
}

// NewEvaluator returns an evaluator calling the builtins in catalog. A nil
// logger discards dispatch records.
func NewEvaluator(catalog *formula.Catalog, logger *slog.Logger) *Evaluator {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Evaluator{catalog: catalog, logger: logger}
}

// Eval evaluates a single expression.
func (e *Evaluator) Eval(n Node) (formula.Union, error) {
	return e.eval(n, nil)
}

// EvalString parses src and evaluates each expression in turn, returning the
// result of the last one.
func (e *Evaluator) EvalString(src string) (formula.Union, error) {
	return e.EvalReader(strings.NewReader(src))
}

// EvalReader is like EvalString, reading the source from r.
func (e *Evaluator) EvalReader(r io.Reader) (formula.Union, error) {
	nodes, err := Parse(r)
	if err != nil {
		return formula.Union{}, err
	}
	if len(nodes) == 0 {
		return formula.Union{}, ErrEmpty
	}

	var result formula.Union
	for _, n := range nodes {
		if result, err = e.Eval(n); err != nil {
			return formula.Union{}, err
		}
	}
	return result, nil
}

func (e *Evaluator) eval(n Node, s *scope) (formula.Union, error) {
	switch n := n.(type) {
	case *Literal:
		return formula.Plain(n.Value), nil
	case *Symbol:
		v, ok := s.lookup(n.Name)
		if !ok {
			return formula.Union{}, fmt.Errorf("offset %d: %s is not bound", n.Offset, n.Name)
		}
		return formula.Plain(v), nil
	case *ListExpr:
		elems := make([]formula.Value, len(n.Elems))
		for i, x := range n.Elems {
			v, err := e.evalValue(x, s)
			if err != nil {
				return formula.Union{}, err
			}
			elems[i] = v
		}
		return formula.Plain(formula.NewList(elems...)), nil
	case *Call:
		return e.evalCall(n, s)
	default:
		return formula.Union{}, fmt.Errorf("unknown expression type %T", n)
	}
}

// evalValue evaluates n for use as an argument. Unions are flattened to the
// value they hold.
func (e *Evaluator) evalValue(n Node, s *scope) (formula.Value, error) {
	u, err := e.eval(n, s)
	if err != nil {
		return nil, err
	}
	return u.Value(), nil
}

// evalCall builds the argument list slot by slot from the builtin's
// signature. Identifier slots take a bare symbol; continuation slots turn the
// expression into a body that sees every identifier bound before it.
func (e *Evaluator) evalCall(c *Call, s *scope) (formula.Union, error) {
	proc, ok := e.catalog.Lookup(c.Name.Name)
	if !ok {
		return formula.Union{}, fmt.Errorf("offset %d: %w %q", c.Name.Offset, formula.ErrUnknownBuiltin, c.Name.Name)
	}

	slots, err := proc.Signature().Slots(len(c.Args))
	if err != nil {
		return formula.Union{}, fmt.Errorf("offset %d: %w", c.Offset, err)
	}

	var (
		names   []string
		bodyErr error
	)
	args := make([]formula.Arg, len(c.Args))
	for i, p := range slots {
		switch p.Shape {
		case formula.ShapeIdent:
			if sym, ok := c.Args[i].(*Symbol); ok {
				names = append(names, sym.Name)
				args[i] = formula.Ident(sym.Name)
				continue
			}
			names = append(names, "")
		case formula.ShapeContinuation:
			args[i] = e.continuation(c.Args[i], s, names, &bodyErr)
			continue
		}

		v, err := e.evalValue(c.Args[i], s)
		if err != nil {
			return formula.Union{}, err
		}
		args[i] = v
	}

	e.logger.Debug("dispatch builtin",
		slog.String("builtin", c.Name.Name),
		slog.Int("args", len(args)))

	r, err := proc.Apply(args)
	if bodyErr != nil {
		return formula.Union{}, bodyErr
	}
	if err != nil {
		return formula.Union{}, fmt.Errorf("offset %d: %w", c.Offset, err)
	}

	e.logger.Debug("builtin returned",
		slog.String("builtin", c.Name.Name),
		slog.Int("alternative", r.Index()),
		slog.String("type", r.Type()))
	return r, nil
}

// continuation returns a continuation evaluating body with names bound to its
// arguments. A continuation can not fail, so an evaluation error is stored in
// errp for the caller to report.
func (e *Evaluator) continuation(body Node, s *scope, names []string, errp *error) formula.Continuation {
	names = append([]string(nil), names...)
	return formula.Func(len(names), func(args []formula.Value) formula.Value {
		inner := s
		for i, v := range args {
			inner = inner.push(names[i], v)
		}
		v, err := e.evalValue(body, inner)
		if err != nil {
			*errp = err
			return nil
		}
		return v
	})
}
