package intlang

import (
	"fmt"
	"strconv"
)

// AstPrinter renders syntax trees as parenthesized prefix expressions, e.g.
// "x = 2 + 3 * 4;" becomes "(= x (+ 2 (* 3 4)))".
type AstPrinter struct{}

func (printer *AstPrinter) Print(stmt Stmt) string {
	s, _ := stmt.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) PrintExpr(expr Expr) string {
	s, _ := expr.Accept(printer)
	return fmt.Sprintf("%v", s)
}

func (printer *AstPrinter) VisitAssignStmt(stmt *AssignStmt) (interface{}, error) {
	return fmt.Sprintf("(= %s %s)", stmt.Name.Lexeme, printer.PrintExpr(stmt.Val)), nil
}

func (printer *AstPrinter) VisitBinaryExpr(expr *BinaryExpr) (interface{}, error) {
	lhs := printer.PrintExpr(expr.Lhs)
	rhs := printer.PrintExpr(expr.Rhs)
	return fmt.Sprintf("(%s %s %s)", expr.Op.Lexeme, lhs, rhs), nil
}

func (printer *AstPrinter) VisitGroupExpr(expr *GroupExpr) (interface{}, error) {
	return fmt.Sprintf("(group %s)", printer.PrintExpr(expr.Expr)), nil
}

func (printer *AstPrinter) VisitLiteralExpr(expr *LiteralExpr) (interface{}, error) {
	return strconv.FormatInt(expr.Val, 10), nil
}

func (printer *AstPrinter) VisitUnaryExpr(expr *UnaryExpr) (interface{}, error) {
	return fmt.Sprintf("(%s %s)", expr.Op.Lexeme, printer.PrintExpr(expr.Expr)), nil
}

func (printer *AstPrinter) VisitVarExpr(expr *VarExpr) (interface{}, error) {
	return expr.Name.Lexeme, nil
}
