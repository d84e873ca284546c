package internal

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// IPrinter printer interface
type IPrinter interface {
	Println(a ...interface{}) (n int, err error)
	Fprintf(w io.Writer, format string, a ...interface{}) (n int, err error)
	Fprintln(w io.Writer, a ...interface{}) (n int, err error)
}

// RunStatus is the outcome of a run, for the driver to map to an exit
// code.
type RunStatus int

const (
	RunOK RunStatus = iota
	RunStaticError
	RunRuntimeError
)

// Options configures a single run.
type Options struct {
	// Trace prints one line per expression statement with the
	// evaluated result.
	Trace bool
	// Color renders diagnostics in red.
	Color bool
}

// RunSourceWithPrinter runs source code on a fresh interpreter
// instance with the default options.
func RunSourceWithPrinter(source string, p IPrinter) RunStatus {
	return RunSource(source, p, Options{Trace: true, Color: true})
}

// RunSource scans, parses and interprets source in sequence. Each
// stage marks the shared state on failure; a static error stops the
// pipeline before execution.
func RunSource(source string, p IPrinter, opts Options) RunStatus {
	state := interpreterState{
		source:  source,
		errors:  make([]staticError, 0),
		printer: p,
		trace:   opts.Trace,
		color:   opts.Color,
	}
	lexer := &lexer{
		line:  1,
		state: &state,
	}
	parser := &parser{
		state: &state,
	}

	lexer.scan()
	logrus.WithFields(logrus.Fields{
		"tokens": len(state.tokens),
		"lines":  lexer.line,
	}).Debug("scan complete")

	if state.printErrors() {
		return RunStaticError
	}

	parser.parse()
	logrus.WithField("statements", len(state.stmts)).Debug("parse complete")

	if state.printErrors() {
		return RunStaticError
	}

	exec := exec{
		state: &state,
		env:   newEnv(&state, nil),
	}

	start := time.Now()
	if !exec.interpret() {
		return RunRuntimeError
	}
	logrus.WithField("elapsed", time.Since(start)).Debug("execution complete")

	return RunOK
}
