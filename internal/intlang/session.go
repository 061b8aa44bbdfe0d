package intlang

import (
	"fmt"
	"io"
)

// Session runs one program from start to finish. Every session owns its own
// tokens and environment, so separate sessions can run in parallel.
type Session struct {
	source   []rune
	reporter Reporter
	trace    io.Writer
}

// NewSession creates a session for the given program text. Errors are sent to
// the reporter, which may be nil. When trace is not nil, the syntax tree of
// every statement is written to it before the statement is evaluated.
func NewSession(source string, reporter Reporter, trace io.Writer) *Session {
	return &Session{[]rune(source), reporter, trace}
}

// Run evaluates the whole program. The returned environment holds every
// assigned variable, it is nil whenever an error was encountered.
func (session *Session) Run() (*Environment, error) {
	env, err := session.run()
	if err != nil {
		if session.reporter != nil {
			session.reporter.Report(err)
		}
		return nil, err
	}
	return env, nil
}

func (session *Session) run() (*Environment, error) {
	scanner := NewScanner(session.source)
	parser := NewParser(scanner.Scan())
	env := NewEnvironment()
	interpreter := NewInterpreter(env)
	printer := new(AstPrinter)
	for !parser.AtEnd() {
		stmt, err := parser.Next()
		if err != nil {
			return nil, err
		}
		if session.trace != nil {
			fmt.Fprintln(session.trace, printer.Print(stmt))
		}
		if err := interpreter.Execute(stmt); err != nil {
			return nil, err
		}
	}
	return env, nil
}
