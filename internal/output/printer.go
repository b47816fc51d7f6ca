// Package output prints the solver's answer and error chains to the
// terminal, with ANSI colour when the destination is a terminal or colour
// was forced.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"almanac/internal/config"
	"almanac/internal/errors"
)

// Color is an ANSI SGR code.
type Color string

// Colours used by the printer.
const (
	Blue Color = "34"
	Red  Color = "31"
)

// Wrap surrounds text with the escape sequence for c and a reset.
func (c Color) Wrap(text string) string {
	return fmt.Sprintf("\x1b[%sm%s\x1b[0m", c, text)
}

// IsTerminal reports whether w is a terminal (including Cygwin/MSYS ptys).
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// UseColor resolves a colour mode for the writer. Auto honours NO_COLOR.
func UseColor(mode config.ColorMode, w io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		if _, ok := os.LookupEnv("NO_COLOR"); ok {
			return false
		}
		return IsTerminal(w)
	}
}

// Printer writes answers to out and errors to errOut.
type Printer struct {
	out      io.Writer
	errOut   io.Writer
	colorOut bool
	colorErr bool
}

// NewPrinter creates a printer, resolving colour separately for each stream.
func NewPrinter(out, errOut io.Writer, mode config.ColorMode) *Printer {
	return &Printer{
		out:      out,
		errOut:   errOut,
		colorOut: UseColor(mode, out),
		colorErr: UseColor(mode, errOut),
	}
}

// Solution prints "Solution: <answer>".
func (p *Printer) Solution(answer any) {
	text := fmt.Sprint(answer)
	if p.colorOut {
		text = Blue.Wrap(text)
	}
	fmt.Fprintf(p.out, "Solution: %s\n", text)
}

// Error prints err followed by one "Caused by" line per wrapped cause.
func (p *Printer) Error(err error) {
	chain := errors.Chain(err)
	if len(chain) == 0 {
		return
	}

	label := "Error:"
	if p.colorErr {
		label = Red.Wrap(label)
	}
	fmt.Fprintf(p.errOut, "%s %s\n", label, chain[0])

	for i, cause := range chain[1:] {
		fmt.Fprintf(p.errOut, "Caused by (%d): %s\n", i+1, cause)
	}
}
