// Package console prints user-facing status lines to a terminal.
package console

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
)

var (
	cyan   = color.New(color.FgCyan)
	yellow = color.New(color.FgYellow)
	green  = color.New(color.FgGreen)
	red    = color.New(color.FgRed)
	bold   = color.New(color.Bold)
	faint  = color.New(color.Faint)
)

const dividerWidth = 40

// Printer writes status lines. Errors and warnings go to errOut, everything
// else to out.
type Printer struct {
	out    io.Writer
	errOut io.Writer
}

// New creates a printer.
func New(out, errOut io.Writer) *Printer {
	return &Printer{out: out, errOut: errOut}
}

// Header prints a bold section title.
func (p *Printer) Header(msg string) {
	fmt.Fprintf(p.out, "\n%s\n", bold.Sprint(msg))
}

// Info prints a neutral line.
func (p *Printer) Info(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", cyan.Sprint("•"), msg)
}

// Processing announces work in progress.
func (p *Printer) Processing(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", cyan.Sprint("…"), msg)
}

// Success prints a completed step.
func (p *Printer) Success(msg string) {
	fmt.Fprintf(p.out, "%s %s\n", green.Sprint("✓"), msg)
}

// Warn prints a non-fatal problem.
func (p *Printer) Warn(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", yellow.Sprint("!"), msg)
}

// Error prints a failure.
func (p *Printer) Error(msg string) {
	fmt.Fprintf(p.errOut, "%s %s\n", red.Sprint("✗"), msg)
}

// Saved prints where output went.
func (p *Printer) Saved(path string) {
	fmt.Fprintf(p.out, "%s Saved to: %s\n", cyan.Sprint("•"), yellow.Sprint(path))
}

// Progress prints "[current/total] label".
func (p *Printer) Progress(current, total int, label string) {
	width := len(fmt.Sprint(total))
	fmt.Fprintf(p.out, "%s %s\n", faint.Sprintf("[%*d/%d]", width, current, total), label)
}

// Divider prints a horizontal rule.
func (p *Printer) Divider() {
	fmt.Fprintln(p.out, faint.Sprint(strings.Repeat("─", dividerWidth)))
}
