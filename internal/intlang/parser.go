package intlang

import (
	"fmt"
	"strconv"
)

// Parser composes the syntax tree of one assignment at a time from the
// sequence of tokens produced by the Scanner. See the package documentation
// for the grammar.
type Parser struct {
	current int
	tokens  []*Token
}

// NewParser creates a new parser over the given tokens, which must be
// terminated by an EOF token
func NewParser(tokens []*Token) *Parser {
	return &Parser{0, tokens}
}

// Parse consumes all the tokens and returns every assignment found. It stops
// at the first error.
func (parser *Parser) Parse() ([]Stmt, error) {
	statements := make([]Stmt, 0)
	for !parser.AtEnd() {
		stmt, err := parser.Next()
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

// AtEnd returns true once every token before EOF has been consumed.
func (parser *Parser) AtEnd() bool {
	return parser.isEOF()
}

// Next parses a single assignment.
//
// assignment --> IDENT "=" expr ";" ;
func (parser *Parser) Next() (*AssignStmt, error) {
	if !parser.check(WORD) || !isIdentifier(parser.peek().Lexeme) {
		return nil, newParseError(
			InvalidIdentifier,
			parser.peek(),
			"Expect variable name.",
		)
	}
	name := parser.advance()
	if err := parser.consume(EQUAL, "Expect '=' after variable name."); err != nil {
		return nil, err
	}
	val, err := parser.expression()
	if err != nil {
		return nil, err
	}
	if err := parser.consume(SEMICOLON, "Expect ';' after expression."); err != nil {
		return nil, err
	}
	return NewAssignStmt(name, val), nil
}

// Creates a left-associative nested tree of binary operator nodes.
//
// expr --> term ( ( "+" | "-" ) term )* ;
func (parser *Parser) expression() (Expr, error) {
	expr, err := parser.term()
	if err != nil {
		return nil, err
	}
	for parser.match(PLUS, MINUS) {
		op := parser.prev()
		rhs, err := parser.term()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
	return expr, nil
}

// term --> factor ( "*" factor )* ;
func (parser *Parser) term() (Expr, error) {
	expr, err := parser.factor()
	if err != nil {
		return nil, err
	}
	for parser.match(STAR) {
		op := parser.prev()
		rhs, err := parser.factor()
		if err != nil {
			return nil, err
		}
		expr = NewBinaryExpr(op, expr, rhs)
	}
	return expr, nil
}

// factor --> "(" expr ")"
//          | ( "-" | "+" ) factor
//          | NUMBER | IDENT ;
func (parser *Parser) factor() (Expr, error) {
	if parser.match(LEFT_PAREN) {
		expr, err := parser.expression()
		if err != nil {
			return nil, err
		}
		if err := parser.consume(
			RIGHT_PAREN,
			"Expect ')' after expression.",
		); err != nil {
			return nil, err
		}
		return NewGroupExpr(expr), nil
	}
	if parser.match(MINUS, PLUS) {
		op := parser.prev()
		expr, err := parser.factor()
		if err != nil {
			return nil, err
		}
		return NewUnaryExpr(op, expr), nil
	}
	if parser.check(WORD) {
		tok := parser.peek()
		if looksNumeric(tok.Lexeme) {
			return parser.literal()
		}
		if isIdentifier(tok.Lexeme) {
			parser.advance()
			return NewVarExpr(tok), nil
		}
	}
	return nil, newParseError(SyntaxError, parser.peek(), "Expect expression.")
}

// literal converts the current token to an integer literal. Leading zeros
// are not allowed, and the value must fit in 64 bits.
func (parser *Parser) literal() (Expr, error) {
	tok := parser.peek()
	if !isLiteral(tok.Lexeme) {
		return nil, newParseError(
			LiteralFormatError,
			tok,
			"Invalid integer literal.",
		)
	}
	val, err := strconv.ParseInt(tok.Lexeme, 10, 64)
	if err != nil {
		return nil, newParseError(
			LiteralFormatError,
			tok,
			fmt.Sprintf("Integer literal out of range [%d, %d].", minInt, maxInt),
		)
	}
	parser.advance()
	return NewLiteralExpr(val), nil
}

func (parser *Parser) match(types ...TokenType) bool {
	for _, tt := range types {
		if parser.check(tt) {
			parser.advance()
			return true
		}
	}
	return false
}

func (parser *Parser) consume(typ TokenType, message string) error {
	if parser.check(typ) {
		parser.advance()
		return nil
	}
	return newParseError(SyntaxError, parser.peek(), message)
}

func (parser *Parser) check(tt TokenType) bool {
	if parser.isEOF() {
		return false
	}
	return parser.peek().Typ == tt
}

func (parser *Parser) advance() *Token {
	if !parser.isEOF() {
		parser.current++
	}
	return parser.prev()
}

func (parser *Parser) isEOF() bool {
	return parser.peek().Typ == EOF
}

func (parser *Parser) peek() *Token {
	return parser.tokens[parser.current]
}

func (parser *Parser) prev() *Token {
	return parser.tokens[parser.current-1]
}
