package intlang

import "fmt"

// Token represents group a characters with additional information that was
// obtained during the scanning phase.
type Token struct {
	Typ    TokenType
	Lexeme string
	Pos    int
}

// NewToken creates a new token
func NewToken(typ TokenType, lexeme string, pos int) *Token {
	t := new(Token)
	t.Typ = typ
	t.Lexeme = lexeme
	t.Pos = pos
	return t
}

func (t *Token) String() string {
	return fmt.Sprintf("%s %s %d", t.Typ, t.Lexeme, t.Pos)
}

// TokenType is a just a wrapped string used to represent token's type
type TokenType string

const (
	// Single-character tokens
	LEFT_PAREN  TokenType = "("
	RIGHT_PAREN TokenType = ")"
	MINUS       TokenType = "-"
	PLUS        TokenType = "+"
	STAR        TokenType = "*"
	EQUAL       TokenType = "="
	SEMICOLON   TokenType = ";"

	// Any other run of characters. Whether it names a variable or denotes a
	// literal is decided by the parser.
	WORD TokenType = "WORD"

	EOF TokenType = "EOF"
)

// singleCharTokens maps the runes that always form a token on their own.
var singleCharTokens = map[rune]TokenType{
	'(': LEFT_PAREN,
	')': RIGHT_PAREN,
	'-': MINUS,
	'+': PLUS,
	'*': STAR,
	'=': EQUAL,
	';': SEMICOLON,
}

// isIdentifier reports whether the lexeme matches [a-zA-Z_][a-zA-Z0-9_]*
func isIdentifier(lexeme string) bool {
	if lexeme == "" {
		return false
	}
	for i, r := range lexeme {
		if i == 0 && !isBeginIdent(r) {
			return false
		}
		if !isBeginIdent(r) && !isDigit(r) {
			return false
		}
	}
	return true
}

// isLiteral reports whether the lexeme matches 0|[1-9][0-9]*
func isLiteral(lexeme string) bool {
	if lexeme == "" {
		return false
	}
	if lexeme[0] == '0' {
		return len(lexeme) == 1
	}
	for _, r := range lexeme {
		if !isDigit(r) {
			return false
		}
	}
	return true
}

// looksNumeric reports whether the lexeme was meant to be a literal because
// it starts with a digit.
func looksNumeric(lexeme string) bool {
	return lexeme != "" && isDigit(rune(lexeme[0]))
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBeginIdent(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '_'
}
