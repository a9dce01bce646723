// Package arimaatext renders and parses the bordered board-text format,
// kept as a sibling package to pkg/game and never imported by it, the way
// the teacher's pkg/board/fen sits beside pkg/board rather than inside it.
package arimaatext

import "fmt"

// ParseError reports a malformed board-text or action-text input, naming
// both the offending text and why it was rejected.
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("arimaatext: invalid input %q: %v", e.Input, e.Reason)
}

func parseErrorf(input, format string, args ...any) error {
	return &ParseError{Input: input, Reason: fmt.Sprintf(format, args...)}
}
