package intlang

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// FailureIndicator is the only output of a program that failed.
const FailureIndicator = "error"

// ReadProgram collects the program text line by line. Every line is trimmed
// and joined to the previous ones with a space, reading stops at the first
// blank line or at the end of the input.
func ReadProgram(r io.Reader) (string, error) {
	var program strings.Builder
	s := bufio.NewScanner(r)
	s.Split(bufio.ScanLines)
	for s.Scan() {
		line := strings.TrimSpace(s.Text())
		if line == "" {
			break
		}
		program.WriteString(line)
		program.WriteString(" ")
	}
	if err := s.Err(); err != nil {
		return "", err
	}
	return program.String(), nil
}

// WriteVariables writes one "<name> = <value>" line per variable, in the
// order they were first assigned.
func WriteVariables(w io.Writer, env *Environment) error {
	var err error
	env.Each(func(name string, value int64) {
		if err != nil {
			return
		}
		_, err = fmt.Fprintf(w, "%s = %d\n", name, value)
	})
	return err
}
