package host

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/JoverZhang/formula"
)

// Node is a parsed expression.
type Node interface {
	// Pos returns the byte offset of the node in its source.
	Pos() int
}

// Literal is a boolean, integer or text constant.
type Literal struct {
	Offset int
	Value  formula.Value
}

// Symbol names a bound variable or, at the head of a call, a builtin.
type Symbol struct {
	Offset int
	Name   string
}

// ListExpr is a list literal, [e1 e2 ...].
type ListExpr struct {
	Offset int
	Elems  []Node
}

// Call is a builtin call, (name arg ...).
type Call struct {
	Offset int
	Name   Symbol
	Args   []Node
}

func (n *Literal) Pos() int  { return n.Offset }
func (n *Symbol) Pos() int   { return n.Offset }
func (n *ListExpr) Pos() int { return n.Offset }
func (n *Call) Pos() int     { return n.Offset }

// A SyntaxError reports malformed source.
type SyntaxError struct {
	Offset int
	Msg    string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at offset %d: %s", e.Offset, e.Msg)
}

// ParseString parses every expression in s.
func ParseString(s string) ([]Node, error) {
	return Parse(strings.NewReader(s))
}

// Parse parses every expression read from r.
func Parse(r io.Reader) ([]Node, error) {
	p := &parser{l: &lexer{r: bufio.NewReader(r)}}

	var nodes []Node
	for {
		if tok, err := p.peek(); err != nil {
			return nil, err
		} else if tok.kind == tokEOF {
			return nodes, nil
		}

		n, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}

type parser struct {
	l   *lexer
	tok *token
}

func (p *parser) peek() (token, error) {
	if p.tok == nil {
		t, err := p.l.next()
		if err != nil {
			return token{}, err
		}
		p.tok = &t
	}
	return *p.tok, nil
}

func (p *parser) next() (token, error) {
	if p.tok != nil {
		t := *p.tok
		p.tok = nil
		return t, nil
	}
	return p.l.next()
}

func (p *parser) parseExpression() (Node, error) {
	tok, err := p.next()
	if err != nil {
		return nil, err
	}

	switch tok.kind {
	case tokInteger:
		return &Literal{Offset: tok.pos, Value: formula.Integer(tok.n)}, nil
	case tokText:
		return &Literal{Offset: tok.pos, Value: formula.Text(tok.text)}, nil
	case tokIdent:
		switch tok.text {
		case "true":
			return &Literal{Offset: tok.pos, Value: formula.Boolean(true)}, nil
		case "false":
			return &Literal{Offset: tok.pos, Value: formula.Boolean(false)}, nil
		}
		return &Symbol{Offset: tok.pos, Name: tok.text}, nil
	case tokPunct:
		switch tok.punct {
		case '(':
			head, err := p.next()
			if err != nil {
				return nil, err
			}
			if head.kind != tokIdent {
				return nil, &SyntaxError{Offset: head.pos, Msg: fmt.Sprintf("expected a builtin name, got %v", head)}
			}
			args, err := p.parseUntil(')')
			if err != nil {
				return nil, err
			}
			return &Call{Offset: tok.pos, Name: Symbol{Offset: head.pos, Name: head.text}, Args: args}, nil
		case '[':
			elems, err := p.parseUntil(']')
			if err != nil {
				return nil, err
			}
			return &ListExpr{Offset: tok.pos, Elems: elems}, nil
		}
	}
	return nil, &SyntaxError{Offset: tok.pos, Msg: fmt.Sprintf("unexpected %v", tok)}
}

func (p *parser) parseUntil(end rune) ([]Node, error) {
	var nodes []Node
	for {
		tok, err := p.peek()
		if err != nil {
			return nil, err
		}
		switch {
		case tok.kind == tokPunct && tok.punct == end:
			p.next()
			return nodes, nil
		case tok.kind == tokEOF:
			return nil, &SyntaxError{Offset: tok.pos, Msg: fmt.Sprintf("expected '%c'", end)}
		}

		n, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
}
