package intlang

import (
	"fmt"
	"math"
)

const (
	minInt int64 = math.MinInt64
	maxInt int64 = math.MaxInt64
)

// Interpreter evaluates assignments and commits their results into its
// environment. This struct implements ExprVisitor and StmtVisitor
type Interpreter struct {
	environment *Environment
}

func NewInterpreter(environment *Environment) *Interpreter {
	return &Interpreter{environment}
}

// Execute evaluates the statement. The environment is only modified when the
// whole statement was evaluated without error.
func (in *Interpreter) Execute(stmt Stmt) error {
	_, err := stmt.Accept(in)
	return err
}

// Evaluate returns the value of the expression without modifying the
// environment.
func (in *Interpreter) Evaluate(expr Expr) (int64, error) {
	val, err := expr.Accept(in)
	if err != nil {
		return 0, err
	}
	return val.(int64), nil
}

func (in *Interpreter) VisitAssignStmt(stmt *AssignStmt) (interface{}, error) {
	val, err := in.Evaluate(stmt.Val)
	if err != nil {
		return nil, err
	}
	in.environment.Set(stmt.Name.Lexeme, val)
	return nil, nil
}

func (in *Interpreter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs, err := in.Evaluate(expr.Lhs)
	if err != nil {
		return nil, err
	}
	rhs, err := in.Evaluate(expr.Rhs)
	if err != nil {
		return nil, err
	}

	var (
		result   int64
		overflow bool
	)
	switch expr.Op.Typ {
	case PLUS:
		result = lhs + rhs
		overflow = (lhs^result)&(rhs^result) < 0
	case MINUS:
		result = lhs - rhs
		overflow = (lhs^rhs)&(lhs^result) < 0
	case STAR:
		result = lhs * rhs
		if lhs != 0 && rhs != 0 {
			overflow = result/rhs != lhs ||
				(lhs == -1 && rhs == minInt) ||
				(rhs == -1 && lhs == minInt)
		}
	default:
		return nil, newRuntimeError(
			SyntaxError,
			expr.Op,
			fmt.Sprintf("Unknown binary operator '%s'.", expr.Op.Lexeme),
		)
	}
	if overflow {
		return nil, newRuntimeError(
			OverflowError,
			expr.Op,
			fmt.Sprintf("Result of %d %s %d overflows.", lhs, expr.Op.Lexeme, rhs),
		)
	}
	return result, nil
}

func (in *Interpreter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return expr.Expr.Accept(in)
}

func (in *Interpreter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return expr.Val, nil
}

func (in *Interpreter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	val, err := in.Evaluate(expr.Expr)
	if err != nil {
		return nil, err
	}
	switch expr.Op.Typ {
	case PLUS:
		return val, nil
	case MINUS:
		if val == minInt {
			return nil, newRuntimeError(
				OverflowError,
				expr.Op,
				fmt.Sprintf("Negation of %d overflows.", val),
			)
		}
		return -val, nil
	}
	return nil, newRuntimeError(
		SyntaxError,
		expr.Op,
		fmt.Sprintf("Unknown unary operator '%s'.", expr.Op.Lexeme),
	)
}

func (in *Interpreter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return in.environment.Get(expr.Name)
}
