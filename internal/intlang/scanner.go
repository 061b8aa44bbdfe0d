package intlang

import "unicode"

// Scanner splits the program text into tokens. It does not validate the
// tokens it produces, a run like "3abc" is emitted as a single WORD and left
// for the parser to reject.
type Scanner struct {
	start   int
	current int
	source  []rune
	tokens  []*Token
}

// NewScanner creates a new token scanner
func NewScanner(source []rune) *Scanner {
	scanner := new(Scanner)
	scanner.start = 0
	scanner.current = 0
	scanner.source = source
	scanner.tokens = make([]*Token, 0)
	return scanner
}

// Scan reads the source and collect all the tokens that were found from the
// source. The last token is always EOF.
func (scanner *Scanner) Scan() []*Token {
	if len(scanner.tokens) != 0 {
		return scanner.tokens
	}

	for scanner.hasNext() {
		scanner.start = scanner.current
		r := scanner.advance()
		if unicode.IsSpace(r) {
			continue
		}
		if typ, ok := singleCharTokens[r]; ok {
			scanner.addToken(typ)
			continue
		}
		scanner.scanWord()
	}
	scanner.tokens = append(
		scanner.tokens,
		NewToken(EOF, "", len(scanner.source)),
	)
	return scanner.tokens
}

// scanWord consumes runes until whitespace, a single-character token, or the
// end of the source.
func (scanner *Scanner) scanWord() {
	for scanner.hasNext() {
		r := scanner.peek()
		if unicode.IsSpace(r) {
			break
		}
		if _, ok := singleCharTokens[r]; ok {
			break
		}
		scanner.advance()
	}
	scanner.addToken(WORD)
}

// addToken appends the lexeme from `start` to `current` as a token of the given
// type
func (scanner *Scanner) addToken(typ TokenType) {
	lexeme := string(scanner.source[scanner.start:scanner.current])
	tok := NewToken(typ, lexeme, scanner.start)
	scanner.tokens = append(scanner.tokens, tok)
}

// hasNext returns true if the scanner has not read pass the source length
func (scanner *Scanner) hasNext() bool {
	return scanner.current < len(scanner.source)
}

// advance consumes and returns the rune at the current possition
func (scanner *Scanner) advance() rune {
	r := scanner.source[scanner.current]
	scanner.current++
	return r
}

// peek returns the rune at the current position, but does not consume it
func (scanner *Scanner) peek() rune {
	if !scanner.hasNext() {
		return '\x00'
	}
	return scanner.source[scanner.current]
}
