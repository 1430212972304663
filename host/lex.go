package host

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokPunct
	tokInteger
	tokText
	tokIdent
)

type token struct {
	kind  tokenKind
	pos   int
	punct rune
	text  string
	n     int64
}

func (t token) String() string {
	switch t.kind {
	case tokEOF:
		return "end of input"
	case tokPunct:
		return fmt.Sprintf("'%c'", t.punct)
	case tokText:
		return strconv.Quote(t.text)
	default:
		return t.text
	}
}

// eof is returned by read at end of input. ReadRune never yields it.
const eof rune = -1

type lexer struct {
	r    *bufio.Reader
	pos  int
	size int
}

func (l *lexer) read() (rune, error) {
	c, size, err := l.r.ReadRune()
	if err != nil {
		if err == io.EOF {
			l.size = 0
			return eof, nil
		}
		return 0, err
	}
	l.pos += size
	l.size = size
	return c, nil
}

func (l *lexer) unread(c rune) {
	if c == eof {
		return
	}
	l.r.UnreadRune()
	l.pos -= l.size
}

func (l *lexer) next() (token, error) {
	for {
		start := l.pos
		c, err := l.read()
		if err != nil {
			return token{}, err
		}

		switch c {
		case eof:
			return token{kind: tokEOF, pos: start}, nil
		case '(', ')', '[', ']':
			return token{kind: tokPunct, pos: start, punct: c}, nil
		case '"':
			return l.string(start)
		case ';':
			if err := l.lineComment(); err != nil {
				return token{}, err
			}
		case '-', '+':
			k, err := l.read()
			if err != nil {
				return token{}, err
			}
			l.unread(k)
			if k >= '0' && k <= '9' {
				return l.integer(start, c)
			}
			return l.identifier(start, c)
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return l.integer(start, c)
		default:
			if isSpace(c) {
				continue
			}
			if beginsIdentifier(c) {
				return l.identifier(start, c)
			}
			return token{}, &SyntaxError{Offset: start, Msg: fmt.Sprintf("unexpected character %q", c)}
		}
	}
}

func (l *lexer) lineComment() error {
	for {
		c, err := l.read()
		if err != nil {
			return err
		}
		if c == '\n' || c == eof {
			return nil
		}
	}
}

func (l *lexer) integer(start int, first rune) (token, error) {
	var text strings.Builder
	text.WriteRune(first)
	for {
		c, err := l.read()
		if err != nil {
			return token{}, err
		}
		if !continuesIdentifier(c) {
			l.unread(c)
			break
		}
		text.WriteRune(c)
	}

	s := text.String()
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return token{}, &SyntaxError{Offset: start, Msg: fmt.Sprintf("invalid integer literal '%s'", s)}
	}
	return token{kind: tokInteger, pos: start, text: s, n: n}, nil
}

func (l *lexer) string(start int) (token, error) {
	var s strings.Builder
	for {
		c, err := l.read()
		if err != nil {
			return token{}, err
		}
		switch c {
		case eof:
			return token{}, &SyntaxError{Offset: start, Msg: "unterminated string"}
		case '"':
			return token{kind: tokText, pos: start, text: s.String()}, nil
		case '\\':
			k, err := l.read()
			if err != nil {
				return token{}, err
			}
			switch k {
			case eof:
				return token{}, &SyntaxError{Offset: start, Msg: "unterminated string"}
			case '\\', '"':
				c = k
			case 't':
				c = '\t'
			case 'n':
				c = '\n'
			case 'r':
				c = '\r'
			default:
				return token{}, &SyntaxError{Offset: l.pos - 2, Msg: fmt.Sprintf("invalid escape sequence '\\%c'", k)}
			}
		}
		s.WriteRune(c)
	}
}

func (l *lexer) identifier(start int, first rune) (token, error) {
	var id strings.Builder
	id.WriteRune(first)

	for {
		c, err := l.read()
		if err != nil {
			return token{}, err
		}
		if !continuesIdentifier(c) {
			l.unread(c)
			return token{kind: tokIdent, pos: start, text: id.String()}, nil
		}
		id.WriteRune(c)
	}
}

func beginsIdentifier(c rune) bool {
	switch c {
	case '!', '$', '%', '&', '*', '/', ':', '<', '=', '>', '?', '^', '_', '~', '.', '-', '+':
		return true
	}
	return unicode.IsLetter(c)
}

func continuesIdentifier(c rune) bool {
	return c >= '0' && c <= '9' || beginsIdentifier(c) || unicode.IsDigit(c)
}

func isSpace(c rune) bool {
	return unicode.IsSpace(c)
}
