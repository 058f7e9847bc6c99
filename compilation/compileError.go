package compilation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// CompileError is a failure reported by the native compiler.
type CompileError struct {
	// Source identifies the compiled input, as a source URL.
	Source string
	// Line and Column are 1-based, or 0 when the compiler did not report
	// a position.
	Line    int
	Column  int
	Message string
	Err     error
}

// positionPatterns match the positions libsass embeds in its messages:
// "on line 3:7 of stdin" and the go-libsass "Error > stdin:3" header.
var positionPatterns = []*regexp.Regexp{
	regexp.MustCompile(`on line (\d+)(?::(\d+))?`),
	regexp.MustCompile(`(?m)^Error > [^\n]*?:(\d+)(?::(\d+))?\s*$`),
}

func newCompileError(source string, err error) *CompileError {
	ce := &CompileError{
		Source:  source,
		Message: strings.TrimSpace(err.Error()),
		Err:     err,
	}
	for _, p := range positionPatterns {
		m := p.FindStringSubmatch(ce.Message)
		if m == nil {
			continue
		}
		ce.Line, _ = strconv.Atoi(m[1])
		if m[2] != "" {
			ce.Column, _ = strconv.Atoi(m[2])
		}
		break
	}
	return ce
}

func (e *CompileError) Error() string {
	switch {
	case e.Line > 0 && e.Column > 0:
		return fmt.Sprintf("%s: %s:%d:%d: %s", ErrCompile, e.Source, e.Line, e.Column, e.Message)
	case e.Line > 0:
		return fmt.Sprintf("%s: %s:%d: %s", ErrCompile, e.Source, e.Line, e.Message)
	}
	return fmt.Sprintf("%s: %s: %s", ErrCompile, e.Source, e.Message)
}

// Unwrap exposes both ErrCompile and the backend error to errors.Is.
func (e *CompileError) Unwrap() []error {
	return []error{ErrCompile, e.Err}
}
