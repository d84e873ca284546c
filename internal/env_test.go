package internal

import (
	"strings"
	"testing"
)

func identifierToken(lexeme string) *token {
	return &token{
		token:  tkIdentifier,
		lexeme: lexeme,
		line:   1,
	}
}

// expectRuntimeErr runs fn expecting it to unwind with a runtime
// error; the details stay recorded on the state.
func expectRuntimeErr(t *testing.T, fn func()) {
	t.Helper()
	defer func() {
		recover()
	}()
	fn()
	t.Fatal("expected a runtime error")
}

func TestEnvDefineThenGet(t *testing.T) {
	state := newTestState("")
	e := newEnv(state, nil)

	x := identifierToken("x")
	e.define(x, yatayNumber(10))

	if got := e.get(x); got != yatayNumber(10) {
		t.Errorf("expected 10, got %v", got)
	}
}

func TestEnvRedefinitionFails(t *testing.T) {
	state := newTestState("")
	e := newEnv(state, nil)

	x := identifierToken("x")
	e.define(x, yatayAbsent{})

	expectRuntimeErr(t, func() {
		e.define(x, yatayNumber(2))
	})
	if !state.hadRuntime || state.runtimeError == nil {
		t.Fatal("the runtime flag must be set")
	}
	if msg := state.runtimeError.err.Error(); !strings.Contains(msg, "'x' already defined") {
		t.Errorf("unexpected message %q", msg)
	}
	// The original binding survives
	if got := e.get(x); got != (yatayAbsent{}) {
		t.Errorf("expected the first binding to survive, got %v", got)
	}
}

func TestEnvAssign(t *testing.T) {
	state := newTestState("")
	e := newEnv(state, nil)

	x := identifierToken("x")
	e.define(x, yatayNumber(1))
	e.assign(x, yatayText("uno"))

	if got := e.get(x); got != yatayText("uno") {
		t.Errorf("expected \"uno\", got %v", got)
	}
}

func TestEnvMissingBindings(t *testing.T) {
	state := newTestState("")
	e := newEnv(state, nil)

	y := identifierToken("y")

	expectRuntimeErr(t, func() {
		e.get(y)
	})
	if msg := state.runtimeError.err.Error(); !strings.Contains(msg, "'y' not defined") {
		t.Errorf("unexpected message %q", msg)
	}

	state = newTestState("")
	e = newEnv(state, nil)
	expectRuntimeErr(t, func() {
		e.assign(y, yatayNumber(1))
	})
	if !state.hadRuntime {
		t.Error("assign to a missing binding must set the runtime flag")
	}
}
