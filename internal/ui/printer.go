// Package ui writes everything revf shows a person: help, version and the
// single fatal diagnostic.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

const (
	Name       = "revf"
	Version    = "0.1.0"
	Repository = "https://github.com/Cyclone1070/revf"

	helpWidth = 80
)

// PlainHelp is printed when the destination is not a terminal.
const PlainHelp = `usage: revf [-h] [-v] [-r] [--verbose] path [path ...]

Reverse the content of files.

options:
  -h, --help       Show this help message and exit.
  -v, --version    Display the revf version and exit.
  -r, --recursive  Recurse down into directories.
  --verbose        Log every reversed file.
`

const markdownHelp = "# revf\n\n" +
	"Reverse the content of files.\n\n" +
	"```\nrevf [-h] [-v] [-r] [--verbose] path [path ...]\n```\n\n" +
	"| option | effect |\n" +
	"|---|---|\n" +
	"| `-h`, `--help` | Show this help message and exit. |\n" +
	"| `-v`, `--version` | Display the revf version and exit. |\n" +
	"| `-r`, `--recursive` | Recurse down into directories. |\n" +
	"| `--verbose` | Log every reversed file. |\n\n" +
	"Options apply to the paths that follow them.\n"

// IsTerminal reports whether v is backed by a terminal file descriptor.
func IsTerminal(v any) bool {
	f, ok := v.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Printer writes help, version and diagnostics. Styling is applied only when
// the destination is a terminal.
type Printer struct {
	stdout    io.Writer
	stderr    io.Writer
	stdoutTTY bool
	stderrTTY bool
	renderer  MarkdownRenderer
	errStyle  lipgloss.Style
}

// NewPrinter creates a Printer, detecting terminals from the writers.
func NewPrinter(stdout, stderr io.Writer) *Printer {
	return NewPrinterWithOptions(stdout, stderr, IsTerminal(stdout), IsTerminal(stderr), GlamourRenderer{})
}

// NewPrinterWithOptions creates a Printer with explicit terminal flags and
// markdown renderer (for testing).
func NewPrinterWithOptions(stdout, stderr io.Writer, stdoutTTY, stderrTTY bool, renderer MarkdownRenderer) *Printer {
	return &Printer{
		stdout:    stdout,
		stderr:    stderr,
		stdoutTTY: stdoutTTY,
		stderrTTY: stderrTTY,
		renderer:  renderer,
		errStyle: lipgloss.NewRenderer(stderr).NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9")), // Bright red
	}
}

// Fatal writes the one-line diagnostic for err.
func (p *Printer) Fatal(err error) {
	prefix := "fatal error:"
	if p.stderrTTY {
		prefix = p.errStyle.Render(prefix)
	}
	fmt.Fprintf(p.stderr, "%s %v\n", prefix, err)
}

// Help writes usage to stdout, or to stderr when toStderr is set.
func (p *Printer) Help(toStderr bool) {
	w, tty := p.stdout, p.stdoutTTY
	if toStderr {
		w, tty = p.stderr, p.stderrTTY
	}

	if tty && p.renderer != nil {
		if out, err := p.renderer.Render(markdownHelp, helpWidth); err == nil {
			fmt.Fprint(w, out)
			return
		}
	}
	fmt.Fprint(w, PlainHelp)
}

// Version writes "revf vX.Y.Z (+repository)" to stdout.
func (p *Printer) Version() {
	fmt.Fprintf(p.stdout, "%s v%s (+%s)\n", Name, Version, Repository)
}
