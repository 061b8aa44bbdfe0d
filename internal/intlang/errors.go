package intlang

import (
	"errors"
	"fmt"
)

// ErrorKind classifies the reason a run was aborted.
type ErrorKind int

const (
	// SyntaxError is raised when an expected token is missing or a factor
	// cannot start with the current token.
	SyntaxError ErrorKind = iota
	// InvalidIdentifier is raised when a statement does not start with a
	// valid variable name.
	InvalidIdentifier
	// LiteralFormatError is raised for a token that starts with a digit but
	// is not a valid integer literal.
	LiteralFormatError
	// UndefinedVariable is raised when a variable is read before it was
	// ever assigned.
	UndefinedVariable
	// OverflowError is raised when arithmetic leaves the 64-bit range.
	OverflowError
)

func (kind ErrorKind) String() string {
	switch kind {
	case SyntaxError:
		return "syntax error"
	case InvalidIdentifier:
		return "invalid identifier"
	case LiteralFormatError:
		return "literal format error"
	case UndefinedVariable:
		return "undefined variable"
	case OverflowError:
		return "integer overflow"
	}
	return fmt.Sprintf("error kind %d", int(kind))
}

// ParseError is returned when the token sequence does not follow the grammar.
type ParseError struct {
	Kind    ErrorKind
	token   *Token
	message string
}

func newParseError(kind ErrorKind, token *Token, message string) error {
	return &ParseError{kind, token, message}
}

func (err *ParseError) Error() string {
	return formatError(err.token, err.message)
}

// RuntimeError is returned when a well-formed statement cannot be evaluated.
type RuntimeError struct {
	Kind    ErrorKind
	token   *Token
	message string
}

func newRuntimeError(kind ErrorKind, token *Token, message string) error {
	return &RuntimeError{kind, token, message}
}

func (err *RuntimeError) Error() string {
	return formatError(err.token, err.message)
}

// KindOf returns the kind carried by an error produced by this package.
func KindOf(err error) (ErrorKind, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr.Kind, true
	}
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		return runtimeErr.Kind, true
	}
	return 0, false
}

func formatError(token *Token, message string) string {
	if token.Typ == EOF {
		return fmt.Sprintf("[pos %d] Error at end: %s", token.Pos, message)
	}
	return fmt.Sprintf(
		"[pos %d] Error at '%s': %s",
		token.Pos,
		token.Lexeme,
		message,
	)
}
