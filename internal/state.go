package internal

import (
	"errors"
	"fmt"
	"os"

	"github.com/labstack/gommon/color"
)

// staticError is a scan or parse diagnostic. A non-empty location is
// rendered as "Error en <location>"; locations come from locate.
type staticError struct {
	err      error
	line     int
	location string
}

// runtimeError aborts execution; the offending token provides the line.
type runtimeError struct {
	err   error
	token *token
}

// interpreterState is the diagnostics sink shared by the lexer, the
// parser and the evaluator of a single run.
type interpreterState struct {
	source string
	tokens []token
	stmts  []stmt

	errors       []staticError
	runtimeError *runtimeError
	hadStatic    bool
	hadRuntime   bool

	printer IPrinter
	trace   bool
	color   bool
}

func (s *interpreterState) setError(err error, line int, location string) {
	s.hadStatic = true
	s.errors = append(s.errors, staticError{
		err:      err,
		line:     line,
		location: location,
	})
}

// fatalError records the diagnostic and unwinds; the parser recovers at
// the statement boundary and synchronizes.
func (s *interpreterState) fatalError(err error, line int, location string) {
	s.setError(err, line, location)
	panic(err)
}

// runtimeErr records the diagnostic and unwinds; interpret recovers
// exactly once and stops execution.
func (s *interpreterState) runtimeErr(err error, tk *token) {
	s.hadRuntime = true
	s.runtimeError = &runtimeError{err: err, token: tk}
	panic(err)
}

// locate renders the position of a token for diagnostics: "el final"
// at end of source, the quoted lexeme otherwise.
func locate(tk token) string {
	if tk.token == tkEOF {
		return "el final"
	}
	return "\"" + tk.lexeme + "\""
}

// printErrors writes every pending static diagnostic to stderr and
// reports whether there were any.
func (s *interpreterState) printErrors() bool {
	for _, e := range s.errors {
		var msg string
		if e.location == "" {
			msg = fmt.Sprintf("[Línea %d] Error: %s", e.line, e.err)
		} else {
			msg = fmt.Sprintf("[Línea %d] Error en %s: %s", e.line, e.location, e.err)
		}
		s.printDiagnostic(msg)
	}
	return len(s.errors) != 0
}

func (s *interpreterState) printRuntimeError() {
	runErr := s.runtimeError
	s.printDiagnostic(fmt.Sprintf("[Línea %d] Error: %s", runErr.token.line, runErr.err))
}

func (s *interpreterState) printDiagnostic(msg string) {
	if s.color {
		msg = color.Red(msg)
	}
	s.printer.Fprintln(os.Stderr, msg)
}

// Lexer errors
var errUnclosedString = errors.New("closing quotation mark not found")
var errConsecutiveUnderscores = errors.New("no two consecutive underscores")
var errUnderscoreNextToComma = errors.New("no underscore next to the decimal comma")
var errTrailingUnderscore = errors.New("no trailing underscore in a number")
var errNumberTooLarge = errors.New("magnitude too large to represent in memory")

// Parser errors
var errExpectedDot = errors.New("expected '.' after statement")
var errExpectedDotAfterDecl = errors.New("expected '.' after declaration")
var errExpectedIdentifier = errors.New("expected a variable name after 'definir'")
var errUnclosedParen = errors.New("expected ')' after expression")
var errExpectedExpression = errors.New("expected an expression")

// Runtime errors
var errOperandMustBeNumber = errors.New("operand must be a number")
var errOperandsMustBeNumbers = errors.New("operands must be numbers")
var errAdditionOperands = errors.New("operands must both be numbers or both be text")
var errZeroDivisor = errors.New("divisor must be nonzero")
var errUndefinedOp = errors.New("undefined operator")
