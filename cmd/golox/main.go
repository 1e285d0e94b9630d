/*
File    : golox/cmd/golox/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command golox is the Lox interpreter's entry point: run a source file,
// or fall into an interactive REPL when invoked with no arguments,
// grounded on go-mix's main.go / repl.go split between a batch driver and
// a readline-backed interactive loop.
package main

import (
	"fmt"
	"os"

	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/interpreter"
	"github.com/akashmaji946/golox/internal/parser"
	"github.com/akashmaji946/golox/internal/resolver"
	"github.com/akashmaji946/golox/internal/scanner"
)

// Exit codes, per spec.md §6.
const (
	exitOK      = 0
	exitUsage   = 64
	exitStatic  = 65
	exitRuntime = 70
)

func main() {
	switch len(os.Args) {
	case 1:
		runRepl()
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: lox [script]")
		os.Exit(exitUsage)
	}
}

func runFile(path string) {
	src, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Could not read file %q: %v\n", path, err)
		os.Exit(exitUsage)
	}

	reporter := diagnostics.New(os.Stderr)
	interp := interpreter.New(reporter, os.Stdout)
	runSource(interp, reporter, string(src))
	if reporter.HadRuntimeError {
		os.Exit(exitRuntime)
	}
	if reporter.HadError {
		os.Exit(exitStatic)
	}
	os.Exit(exitOK)
}

// runSource scans, parses and resolves src, then interprets it against
// interp if no static error occurred. interp may be reused across
// multiple calls (the REPL does this, one line per call) so that
// variable and function declarations stay visible on later lines, the
// way lox.py's module-level `interpreter` outlives each call to `_run`.
func runSource(interp *interpreter.Interpreter, reporter *diagnostics.Reporter, src string) {
	tokens := scanner.New(src, reporter).ScanTokens()
	stmts := parser.New(tokens, reporter).Parse()
	if reporter.HadError {
		return
	}

	locals := resolver.New(reporter).Resolve(stmts)
	if reporter.HadError {
		return
	}

	interp.Resolve(locals)
	interp.Interpret(stmts)
}
