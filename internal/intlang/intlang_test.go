package intlang

type mockReporter struct {
	errors        []error
	hadErr        bool
	hadRuntimeErr bool
}

func newMockReporter() *mockReporter {
	return &mockReporter{make([]error, 0), false, false}
}

func (reporter *mockReporter) Report(err error) {
	reporter.errors = append(reporter.errors, err)
	if _, isRuntimeErr := err.(*RuntimeError); isRuntimeErr {
		reporter.hadRuntimeErr = true
	} else {
		reporter.hadErr = true
	}
}

func (reporter *mockReporter) Reset() {
	reporter.hadErr = false
	reporter.hadRuntimeErr = false
}

func (reporter *mockReporter) HadError() bool {
	return reporter.hadErr
}

func (reporter *mockReporter) HadRuntimeError() bool {
	return reporter.hadRuntimeErr
}

func tokEOF(pos int) *Token {
	return NewToken(EOF, "", pos)
}

func tokWord(lexeme string, pos int) *Token {
	return NewToken(WORD, lexeme, pos)
}

// scanSource is a shortcut for getting the tokens of a source string
func scanSource(src string) []*Token {
	return NewScanner([]rune(src)).Scan()
}
