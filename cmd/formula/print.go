package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/gookit/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/JoverZhang/formula"
)

// printer renders results for the terminal.
type printer struct {
	w      io.Writer
	color  bool
	locale *message.Printer
}

func newPrinter(w io.Writer, cfg config) *printer {
	p := &printer{w: w, color: cfg.Color}
	if cfg.Locale != "" {
		p.locale = message.NewPrinter(language.MustParse(cfg.Locale))
	}
	return p
}

func (p *printer) paint(style color.Color, s string) string {
	if !p.color {
		return s
	}
	return style.Sprint(s)
}

func (p *printer) value(v formula.Value) string {
	switch v := v.(type) {
	case formula.Integer:
		if p.locale != nil {
			return p.locale.Sprintf("%d", int64(v))
		}
	case formula.List:
		parts := make([]string, v.Len())
		for i := range parts {
			parts[i] = p.value(v.Index(i))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	}
	return formula.EncodeToString(v)
}

func (p *printer) result(u formula.Union) {
	var b strings.Builder
	if len(u.Alternatives()) > 1 {
		b.WriteString(p.paint(color.Yellow, fmt.Sprintf("#%d ", u.Index())))
	}
	b.WriteString(p.paint(color.Green, p.value(u.Value())))
	b.WriteString(" : ")
	b.WriteString(p.paint(color.Cyan, u.Type()))
	fmt.Fprintln(p.w, b.String())
}

func (p *printer) error(err error) {
	fmt.Fprintln(p.w, p.paint(color.Red, "error: "+err.Error()))
}

func (p *printer) signatures(c *formula.Catalog) {
	for _, name := range c.Names() {
		proc, _ := c.Lookup(name)
		sig := proc.Signature()
		fmt.Fprintf(p.w, "%s %s\n", p.paint(color.Cyan, fmt.Sprintf("%-8s", sig.Category)), sig)
	}
}
