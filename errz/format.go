package errz

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
)

// Formatter renders errors for a terminal, in the style:
//
//	syntax error: unmatched '}'
//	  --> main.sl:3:1
//	   |
//	 3 | }
//	   | ^
type Formatter struct {
	// UseColor enables ANSI color codes in output.
	UseColor bool
}

// NewFormatter creates a new error formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

func (f *Formatter) paint(attrs ...color.Attribute) func(a ...interface{}) string {
	c := color.New(attrs...)
	if f.UseColor {
		c.EnableColor()
	} else {
		c.DisableColor()
	}
	return c.SprintFunc()
}

// Format formats err. Errors that are not StructuredErrors are rendered as a
// single header line.
func (f *Formatter) Format(err error) string {
	var (
		header   = f.paint(color.FgHiRed, color.Bold)
		location = f.paint(color.FgCyan)
		gutter   = f.paint(color.FgHiBlack)
		caret    = f.paint(color.FgHiRed)
		hint     = f.paint(color.FgHiYellow)
	)

	var se *StructuredError
	if !errors.As(err, &se) {
		return header("error") + ": " + err.Error() + "\n"
	}

	var b strings.Builder
	b.WriteString(header(se.Kind.String()))
	b.WriteString(": ")
	b.WriteString(se.Message)
	b.WriteString("\n")

	if se.Location.IsZero() {
		if se.Hint != "" {
			b.WriteString(hint("hint: "))
			b.WriteString(se.Hint)
			b.WriteString("\n")
		}
		return b.String()
	}

	width := len(fmt.Sprintf("%d", se.Location.Line))
	if width < 2 {
		width = 2
	}
	padding := strings.Repeat(" ", width)

	b.WriteString(padding)
	b.WriteString(location("-->"))
	b.WriteString(" ")
	b.WriteString(location(se.Location.String()))
	b.WriteString("\n")

	if se.Location.Source != "" {
		b.WriteString(gutter(padding + " |"))
		b.WriteString("\n")
		b.WriteString(gutter(fmt.Sprintf("%*d |", width, se.Location.Line)))
		b.WriteString(" ")
		b.WriteString(se.Location.Source)
		b.WriteString("\n")
		if se.Location.Column > 0 {
			b.WriteString(gutter(padding + " |"))
			b.WriteString(" ")
			b.WriteString(strings.Repeat(" ", se.Location.Column-1))
			b.WriteString(caret("^"))
			b.WriteString("\n")
		}
	}
	if se.Hint != "" {
		b.WriteString(gutter(padding + " = "))
		b.WriteString(hint("hint: "))
		b.WriteString(se.Hint)
		b.WriteString("\n")
	}
	return b.String()
}
