package intlang

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Reporter defines the interface for structure that can display errors to the
// user. A reporter is defined to separated errors reporting code from errors
// displaying code.
type Reporter interface {
	Report(err error)
	Reset()
	HadError() bool
	HadRuntimeError() bool
}

// SimpleReporter writes error as-is to inner writer
type SimpleReporter struct {
	writer        io.Writer
	color         *color.Color
	hadErr        bool
	hadRuntimeErr bool
}

func NewSimpleReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer}
}

// NewColorReporter creates a reporter that highlights errors in red. Colors
// are dropped automatically when the output is not a terminal.
func NewColorReporter(writer io.Writer) *SimpleReporter {
	return &SimpleReporter{writer: writer, color: color.New(color.FgRed)}
}

func (reporter *SimpleReporter) Report(err error) {
	var runtimeErr *RuntimeError
	if errors.As(err, &runtimeErr) {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
	if reporter.color != nil {
		reporter.color.Fprintln(reporter.writer, err)
		return
	}
	fmt.Fprintln(reporter.writer, err)
}

func (reporter *SimpleReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *SimpleReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *SimpleReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}
