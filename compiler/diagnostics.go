package compiler

import (
	"fmt"

	"github.com/skald-lang/skald/errz"
)

// Severity of a diagnostic.
type Severity int

const (
	// Warning diagnostics do not fail a build.
	Warning Severity = iota
	// Error diagnostics fail the build that reported them.
	Error
)

// Diagnostic is one build report tied to a position in a source.
type Diagnostic struct {
	Severity Severity
	Source   string
	Line     int
	Column   int
	Message  string
}

// String formats the diagnostic as name:line:col: message.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s:%d:%d: %s", d.Source, d.Line, d.Column, d.Message)
}

// Diagnostics accumulates the reports produced by a build.
type Diagnostics struct {
	reports []Diagnostic
}

// NewDiagnostics returns an empty diagnostics collection.
func NewDiagnostics() *Diagnostics {
	return &Diagnostics{}
}

// IsEmpty reports whether no diagnostics have been recorded.
func (d *Diagnostics) IsEmpty() bool {
	return d == nil || len(d.reports) == 0
}

// HasErrors reports whether any error-severity diagnostic was recorded.
func (d *Diagnostics) HasErrors() bool {
	if d == nil {
		return false
	}
	for _, r := range d.reports {
		if r.Severity == Error {
			return true
		}
	}
	return false
}

// Reports returns the recorded diagnostics in order.
func (d *Diagnostics) Reports() []Diagnostic {
	return d.reports
}

// Emit renders every recorded diagnostic to the given stream. Returns false
// if there was nothing to emit.
func (d *Diagnostics) Emit(stream *errz.StandardStream) bool {
	if d.IsEmpty() {
		return false
	}
	for _, r := range d.reports {
		if r.Severity == Error {
			stream.Header("error")
		} else {
			stream.Warn("warning")
		}
		fmt.Fprintf(stream, "%s\n", r.String())
	}
	return true
}

func (d *Diagnostics) errorf(source string, line, col int, format string, args ...any) {
	if d == nil {
		return
	}
	d.reports = append(d.reports, Diagnostic{
		Severity: Error,
		Source:   source,
		Line:     line,
		Column:   col,
		Message:  fmt.Sprintf(format, args...),
	})
}
