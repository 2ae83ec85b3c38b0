package errz

import (
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorChoice controls whether a StandardStream emits ANSI colors.
type ColorChoice int

const (
	// ColorAuto uses colors when the stream is a terminal and NO_COLOR is
	// unset.
	ColorAuto ColorChoice = iota
	// ColorAlways emits colors unconditionally.
	ColorAlways
	// ColorNever never emits colors.
	ColorNever
)

// StandardStream is a writable output stream for diagnostics and error
// reports, with a color choice resolved at construction.
type StandardStream struct {
	w       io.Writer
	colored bool
}

// Stdout returns a standard stream writing to os.Stdout.
func Stdout(choice ColorChoice) *StandardStream {
	return newStream(os.Stdout, choice)
}

// Stderr returns a standard stream writing to os.Stderr.
func Stderr(choice ColorChoice) *StandardStream {
	return newStream(os.Stderr, choice)
}

// NewStream returns a standard stream writing to w. ColorAuto resolves to
// no color for writers that are not os.Stdout or os.Stderr terminals.
func NewStream(w io.Writer, choice ColorChoice) *StandardStream {
	return newStream(w, choice)
}

func newStream(w io.Writer, choice ColorChoice) *StandardStream {
	s := &StandardStream{w: w}
	switch choice {
	case ColorAlways:
		s.colored = true
	case ColorNever:
		s.colored = false
	default:
		if f, ok := w.(*os.File); ok {
			s.colored = isatty.IsTerminal(f.Fd()) && os.Getenv("NO_COLOR") == ""
		}
	}
	return s
}

// Write implements io.Writer.
func (s *StandardStream) Write(p []byte) (int, error) {
	return s.w.Write(p)
}

// Header writes a bolded red header used by error and diagnostic reports.
func (s *StandardStream) Header(text string) {
	if s.colored {
		c := color.New(color.FgRed, color.Bold)
		c.EnableColor()
		c.Fprintf(s.w, "%s: ", text)
		return
	}
	io.WriteString(s.w, text+": ")
}

// Warn writes a bolded yellow header used by warning diagnostics.
func (s *StandardStream) Warn(text string) {
	if s.colored {
		c := color.New(color.FgYellow, color.Bold)
		c.EnableColor()
		c.Fprintf(s.w, "%s: ", text)
		return
	}
	io.WriteString(s.w, text+": ")
}
