/*
File    : golox/internal/diagnostics/diagnostics.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package diagnostics is the text sink and error bookkeeping shared by the
// scanner, parser, resolver and interpreter. It owns the two monotonically
// set flags that the CLI uses to pick an exit code.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/internal/token"
)

// Reporter accumulates static and runtime diagnostics for one run of the
// pipeline and writes them to an injected sink. File mode uses one Reporter
// for the whole run; the REPL reuses one Reporter across lines and clears
// its flags after each line.
type Reporter struct {
	Writer          io.Writer
	HadError        bool
	HadRuntimeError bool
}

// New creates a Reporter that writes to w.
func New(w io.Writer) *Reporter {
	return &Reporter{Writer: w}
}

// Error reports a static diagnostic anchored to a source line only
// (scanner-level errors that have no token, e.g. unterminated string).
func (r *Reporter) Error(line int, msg string) {
	r.report(line, "", msg)
}

// ErrorAt reports a static diagnostic anchored to a token (parser/resolver
// errors), formatting the location as " at end" or ` at "<lexeme>"`.
func (r *Reporter) ErrorAt(tok token.Token, msg string) {
	if tok.Kind == token.EOF {
		r.report(tok.Line, " at end", msg)
	} else {
		r.report(tok.Line, fmt.Sprintf(" at %q", tok.Lexeme), msg)
	}
}

func (r *Reporter) report(line int, where, msg string) {
	fmt.Fprintf(r.Writer, "[line %d] Error%s: %s\n", line, where, msg)
	r.HadError = true
}

// RuntimeError is a raised-and-unwound error produced during evaluation. It
// carries the token closest to the failure for line reporting.
type RuntimeError struct {
	Token token.Token
	Msg   string
}

func (e *RuntimeError) Error() string { return e.Msg }

// NewRuntimeError constructs a RuntimeError with a formatted message.
func NewRuntimeError(tok token.Token, format string, a ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Msg: fmt.Sprintf(format, a...)}
}

// ReportRuntimeError formats and emits a runtime error per spec.md's
// `<msg>\n[line L]` convention and sets HadRuntimeError.
func (r *Reporter) ReportRuntimeError(err *RuntimeError) {
	fmt.Fprintf(r.Writer, "%s\n[line %d]\n", err.Msg, err.Token.Line)
	r.HadRuntimeError = true
}
