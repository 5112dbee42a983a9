package tdump

import (
	"html"
	"io"
	"os"

	"golang.org/x/term"
)

// Write renders args with opts and writes the text to w followed by a
// newline. The only possible errors are the sink's.
func Write(w io.Writer, opts Options, args ...any) error {
	_, err := io.WriteString(w, Render(opts, args...)+"\n")
	return err
}

// Fprint renders args with default options and writes the text to w.
func Fprint(w io.Writer, args ...any) error {
	return Write(w, Default(), args...)
}

// Print renders args with default options and writes the text to stdout.
// When stdout is not an interactive terminal the output is wrapped in an
// escaped <pre> block, so dumps embedded by web hosts keep their alignment.
func Print(args ...any) error {
	out := Render(Default(), args...)
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		out = "<pre>" + html.EscapeString(out) + "</pre>"
	}
	_, err := io.WriteString(os.Stdout, out+"\n")
	return err
}
