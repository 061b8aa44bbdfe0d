/*
Package intlang implements an interpreter for a tiny language of integer
variable assignments.

Grammars

	program    --> assignment* EOF ;
	assignment --> IDENT "=" expr ";" ;
	expr       --> term ( ( "+" | "-" ) term )* ;
	term       --> factor ( "*" factor )* ;
	factor     --> "(" expr ")"
	             | "-" factor
	             | "+" factor
	             | NUMBER
	             | IDENT ;

IDENT matches [a-zA-Z_][a-zA-Z0-9_]* and NUMBER matches 0|[1-9][0-9]*. The
scanner only separates tokens, a WORD token is classified as IDENT or NUMBER
by the parser.

Each assignment is parsed, evaluated and committed before the next one is
parsed. The first error aborts the whole program, and a failed program has no
output other than the failure itself. Values are 64-bit signed integers,
arithmetic that leaves that range is an error.
*/
package intlang

//go:generate go run ../cmd/ast_codegen . intlang
