package main

// This is an interpreter for a tiny language of integer assignments.

import (
	"errors"
	"fmt"
	"io"
	"io/ioutil"
	"os"

	"git.sr.ht/~sircmpwn/getopt"
	"github.com/letung3105/intlang/internal/intlang"
	"github.com/mattn/go-isatty"
)

const (
	exitOK       = 0
	exitUsage    = 64
	exitDataErr  = 65
	exitIOErr    = 74
	exitSoftware = 70
)

const prompt = "Enter your program (end with an empty line):"

const usage = `usage: intlang [options] [script]

options:
  -h     print this message
  -p     print the syntax tree of every statement to stderr
  -v     print the cause of a failure to stderr
`

func main() {
	interactive := isatty.IsTerminal(os.Stdin.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdin.Fd())
	os.Exit(run(os.Args, os.Stdin, os.Stdout, os.Stderr, interactive))
}

func run(
	args []string,
	stdin io.Reader,
	stdout io.Writer,
	stderr io.Writer,
	interactive bool,
) int {
	opts, optind, err := getopt.Getopts(args, "hpv")
	if err != nil {
		fmt.Fprintf(stderr, "%v\n%s", err, usage)
		return exitUsage
	}
	var trace io.Writer
	verbose := false
	for _, opt := range opts {
		switch opt.Option {
		case 'p':
			trace = stderr
		case 'v':
			verbose = true
		default: // case 'h':
			fmt.Fprint(stdout, usage)
			return exitOK
		}
	}
	args = args[optind:]
	if len(args) > 1 {
		fmt.Fprint(stderr, usage)
		return exitUsage
	}

	var script string
	if len(args) == 1 {
		script, err = readFile(args[0])
	} else {
		if interactive {
			fmt.Fprintln(stdout, prompt)
		}
		script, err = intlang.ReadProgram(stdin)
	}
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitIOErr
	}

	var reporter intlang.Reporter
	if verbose {
		reporter = intlang.NewColorReporter(stderr)
	}
	env, err := intlang.NewSession(script, reporter, trace).Run()
	if err != nil {
		fmt.Fprintln(stdout, intlang.FailureIndicator)
		var runtimeErr *intlang.RuntimeError
		if errors.As(err, &runtimeErr) {
			return exitSoftware
		}
		return exitDataErr
	}
	if err := intlang.WriteVariables(stdout, env); err != nil {
		fmt.Fprintln(stderr, err)
		return exitIOErr
	}
	return exitOK
}

func readFile(fpath string) (string, error) {
	bytes, err := ioutil.ReadFile(fpath)
	if err != nil {
		return "", err
	}
	return string(bytes), nil
}
