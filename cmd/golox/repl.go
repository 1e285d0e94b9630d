/*
File    : golox/cmd/golox/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/internal/diagnostics"
	"github.com/akashmaji946/golox/internal/interpreter"
)

// Color definitions for REPL output, grounded on repl/repl.go's palette:
// blue for chrome, yellow for banner text, red for errors, green for the
// banner itself, cyan for instructions.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

const (
	banner = `
   __ _  ___  __   ___  __
  / _' |/ _ \/ /  / _ \\ \/ /
 | (_| | (_) / /__| (_) >  <
  \__, |\___/\____/\___/_/\_\
  |___/
`
	line    = "----------------------------------------"
	version = "0.1.0"
	author  = "akashmaji946"
	prompt  = "golox >>> "
)

func printBanner(w io.Writer) {
	blueColor.Fprintf(w, "%s\n", line)
	greenColor.Fprintf(w, "%s\n", banner)
	blueColor.Fprintf(w, "%s\n", line)
	yellowColor.Fprintln(w, "golox "+version+" | "+author)
	blueColor.Fprintf(w, "%s\n", line)
	cyanColor.Fprintln(w, "Type Lox statements and press enter.")
	cyanColor.Fprintln(w, "Type '.exit' or press Ctrl+D to quit.")
	blueColor.Fprintf(w, "%s\n", line)
}

// runRepl reads Lox statements one line at a time against a single
// long-lived Interpreter, so a variable or function declared on one line
// stays visible on the next — mirroring lox.py's `_run_prompt`, which
// reuses one module-level Interpreter across calls to `_run` while
// building a fresh Scanner/Parser/Resolver per line. Per spec.md §6, an
// empty line or end-of-input ends the session; `had_error` is reset after
// every line so one bad line does not poison the next.
func runRepl() {
	printBanner(os.Stdout)

	rl, err := readline.New(prompt)
	if err != nil {
		redColor.Fprintf(os.Stderr, "could not start readline: %v\n", err)
		os.Exit(exitUsage)
	}
	defer rl.Close()

	reporter := diagnostics.New(os.Stdout)
	interp := interpreter.New(reporter, os.Stdout)

	for {
		rawLine, err := rl.Readline()
		if err != nil {
			yellowColor.Fprintln(os.Stdout, "Good bye!")
			return
		}

		input := strings.TrimSpace(rawLine)
		if input == "" {
			yellowColor.Fprintln(os.Stdout, "Good bye!")
			return
		}
		if input == ".exit" {
			yellowColor.Fprintln(os.Stdout, "Good bye!")
			return
		}
		rl.SaveHistory(input)

		runSource(interp, reporter, input)
		reporter.HadError = false
		reporter.HadRuntimeError = false
	}
}
