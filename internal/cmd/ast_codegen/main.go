package main

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
)

// header marks the output as generated
const header = "// Code generated by ast_codegen; DO NOT EDIT.\n"

// we do it the scripting way, instead of having types support from Go stdlib
var expressionTypes = []string{
	"Binary: Op *Token, Lhs Expr, Rhs Expr",
	"Group: Expr Expr",
	"Literal: Val int64",
	"Unary: Op *Token, Expr Expr",
	"Var: Name *Token",
}

var statementTypes = []string{
	"Assign: Name *Token, Val Expr",
}

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: ast_codegen <output directory> <package>")
		os.Exit(64)
	}

	outputDir, packageName := os.Args[1], os.Args[2]
	if err := defineAst(outputDir, packageName, "Expr", expressionTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if err := defineAst(outputDir, packageName, "Stmt", statementTypes); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// defineAst writes <baseName>.go into outputDir
func defineAst(outputDir, packageName, baseName string, types []string) error {
	src, err := render(packageName, baseName, types)
	if err != nil {
		return err
	}
	fpath := filepath.Join(
		outputDir,
		fmt.Sprintf("%s.go", strings.ToLower(baseName)),
	)
	return ioutil.WriteFile(fpath, src, 0644)
}

// render returns the gofmt-ed source declaring the base interface, its
// visitor and one struct per node type.
func render(packageName, baseName string, types []string) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprint(&buf, header)
	fmt.Fprintf(&buf, "\npackage %s\n", packageName)

	// Interface for the base node
	fmt.Fprintf(&buf, "\ntype %s interface {\n", baseName)
	fmt.Fprintf(&buf, "\tAccept(visitor %sVisitor) (interface{}, error)\n", baseName)
	fmt.Fprintf(&buf, "}\n")

	defineVisitor(&buf, baseName, types)

	// Generate struct for each AST type
	for _, t := range types {
		parts := strings.SplitN(t, ":", 2)
		if len(parts) != 2 {
			return nil, fmt.Errorf("invalid type definition %q", t)
		}
		typeName := strings.TrimSpace(parts[0])
		fields := strings.TrimSpace(parts[1])
		defineType(&buf, baseName, typeName, fields)
	}
	return format.Source(buf.Bytes())
}

func defineVisitor(writer io.Writer, baseName string, types []string) {
	// We have one method for each AST type
	fmt.Fprintf(writer, "\ntype %sVisitor interface {\n", baseName)
	for _, t := range types {
		typeName := strings.TrimSpace(strings.Split(t, ":")[0])
		fmt.Fprintf(
			writer,
			"\tVisit%s%s(%s *%s%s) (interface{}, error)\n",
			typeName, baseName,
			strings.ToLower(baseName),
			typeName, baseName,
		)
	}
	fmt.Fprintf(writer, "}\n")
}

func defineType(
	writer io.Writer,
	baseName string,
	typeName string,
	fieldList string,
) {
	var fields, fieldNames []string
	for _, f := range strings.Split(fieldList, ",") {
		field := strings.TrimSpace(f)
		fields = append(fields, field)
		fieldNames = append(fieldNames, strings.Fields(field)[0])
	}

	// Struct definition
	fmt.Fprintf(writer, "\ntype %s%s struct {\n", typeName, baseName)
	for _, f := range fields {
		fmt.Fprintf(writer, "\t%s\n", f)
	}
	fmt.Fprintf(writer, "}\n")

	// Constructor
	fmt.Fprintf(
		writer,
		"\nfunc New%s%s(%s) *%s%s {\n",
		typeName, baseName,
		strings.Join(fields, ", "),
		typeName, baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn &%s%s{%s}\n",
		typeName, baseName,
		strings.Join(fieldNames, ", "),
	)
	fmt.Fprintf(writer, "}\n")

	// Accept method
	fmt.Fprintf(
		writer,
		"\nfunc (%s *%s%s) Accept(visitor %sVisitor) (interface{}, error) {\n",
		strings.ToLower(baseName),
		typeName, baseName,
		baseName,
	)
	fmt.Fprintf(
		writer,
		"\treturn visitor.Visit%s%s(%s)\n",
		typeName, baseName,
		strings.ToLower(baseName),
	)
	fmt.Fprintf(writer, "}\n")
}
