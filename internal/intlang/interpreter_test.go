package intlang

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

// parseExpr parses "_ = <src>;" and returns the expression on the right-hand
// side
func parseExpr(src string) Expr {
	stmt, err := NewParser(scanSource(fmt.Sprintf("_ = %s;", src))).Next()
	if err != nil {
		panic(err)
	}
	return stmt.Val
}

func TestInterpretLiteralExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval int64
	}{
		{NewLiteralExpr(0), 0},
		{NewLiteralExpr(1), 1},
		{NewLiteralExpr(4294967296), 4294967296},
		{NewLiteralExpr(maxInt), maxInt},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		interpreter := NewInterpreter(NewEnvironment())
		val, err := interpreter.Evaluate(tc.expr)

		assert.Nil(err)
		assert.Equal(tc.eval, val)
	}
}

func TestInterpretUnaryExpr(t *testing.T) {
	testCases := []struct {
		expr Expr
		eval int64
	}{
		{
			NewUnaryExpr(
				NewToken(MINUS, "-", 0),
				NewLiteralExpr(3)),
			-3,
		},
		{
			NewUnaryExpr(
				NewToken(PLUS, "+", 0),
				NewLiteralExpr(3)),
			3,
		},
		{
			NewUnaryExpr(
				NewToken(MINUS, "-", 0),
				NewUnaryExpr(
					NewToken(MINUS, "-", 1),
					NewLiteralExpr(3))),
			3,
		},
		{
			NewUnaryExpr(
				NewToken(PLUS, "+", 0),
				NewUnaryExpr(
					NewToken(MINUS, "-", 1),
					NewLiteralExpr(3))),
			-3,
		},
		{
			NewUnaryExpr(
				NewToken(MINUS, "-", 0),
				NewLiteralExpr(maxInt)),
			-maxInt,
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		interpreter := NewInterpreter(NewEnvironment())
		val, err := interpreter.Evaluate(tc.expr)

		assert.Nil(err)
		assert.Equal(tc.eval, val)
	}
}

func TestInterpretBinaryExpr(t *testing.T) {
	testCases := []struct {
		src  string
		eval int64
	}{
		{"2 + 3", 5},
		{"2 - 3", -1},
		{"2 * 3", 6},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"10 - 4 - 3", 3},
		{"10 - (4 - 3)", 9},
		{"2 * 3 * 4", 24},
		{"-2 * -3", 6},
		{"-(2 + 3) * 2", -10},
		{"1 - -1", 2},
		{"1 + +1", 2},
		{"- - - 1", -1},
		{"0 * 5 - 7", -7},
		{"9223372036854775807 - 1 + 1", maxInt},
		{"-9223372036854775807 - 1", minInt},
		{"-9223372036854775807 - 1 + 0", minInt},
		{"3037000499 * 3037000499", 9223372030926249001},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		interpreter := NewInterpreter(NewEnvironment())
		val, err := interpreter.Evaluate(parseExpr(tc.src))

		assert.Nil(err, tc.src)
		assert.Equal(tc.eval, val, tc.src)
	}
}

func TestInterpretOverflow(t *testing.T) {
	testCases := []struct {
		src string
		msg string
	}{
		{
			"9223372036854775807 + 1",
			"[pos 24] Error at '+': Result of 9223372036854775807 + 1 overflows.",
		},
		{
			"-9223372036854775807 - 2",
			"[pos 25] Error at '-': Result of -9223372036854775807 - 2 overflows.",
		},
		{
			"3037000500 * 3037000500",
			"[pos 15] Error at '*': Result of 3037000500 * 3037000500 overflows.",
		},
		{
			"(-9223372036854775807 - 1) * -1",
			"[pos 31] Error at '*': Result of -9223372036854775808 * -1 overflows.",
		},
		{
			"-(-9223372036854775807 - 1)",
			"[pos 4] Error at '-': Negation of -9223372036854775808 overflows.",
		},
	}

	assert := assert.New(t)
	for _, tc := range testCases {
		interpreter := NewInterpreter(NewEnvironment())
		_, err := interpreter.Evaluate(parseExpr(tc.src))

		if assert.NotNil(err, tc.src) {
			assert.Equal(tc.msg, err.Error(), tc.src)
			kind, ok := KindOf(err)
			assert.True(ok)
			assert.Equal(OverflowError, kind, tc.src)
		}
	}
}

func TestInterpretVarExpr(t *testing.T) {
	assert := assert.New(t)

	env := NewEnvironment()
	env.Set("x", 7)
	interpreter := NewInterpreter(env)

	val, err := interpreter.Evaluate(parseExpr("x * x - x"))
	assert.Nil(err)
	assert.Equal(int64(42), val)

	_, err = interpreter.Evaluate(parseExpr("x + y"))
	if assert.NotNil(err) {
		assert.Equal("[pos 8] Error at 'y': Undefined variable 'y'.", err.Error())
		kind, _ := KindOf(err)
		assert.Equal(UndefinedVariable, kind)
		assert.IsType(&RuntimeError{}, err)
	}
}

func TestInterpretAssignStmt(t *testing.T) {
	assert := assert.New(t)

	env := NewEnvironment()
	interpreter := NewInterpreter(env)

	stmts, err := NewParser(scanSource("x = 5; y = x - 2; x = x * y;")).Parse()
	assert.Nil(err)
	for _, stmt := range stmts {
		assert.Nil(interpreter.Execute(stmt))
	}

	x, _ := env.Lookup("x")
	y, _ := env.Lookup("y")
	assert.Equal(int64(15), x)
	assert.Equal(int64(3), y)
	assert.Equal(2, env.Len())
}

func TestInterpretFailedAssignLeavesEnvironment(t *testing.T) {
	assert := assert.New(t)

	env := NewEnvironment()
	env.Set("x", 1)
	interpreter := NewInterpreter(env)

	stmt, err := NewParser(scanSource("x = x + y;")).Next()
	assert.Nil(err)
	assert.NotNil(interpreter.Execute(stmt))

	x, ok := env.Lookup("x")
	assert.True(ok)
	assert.Equal(int64(1), x)
}
