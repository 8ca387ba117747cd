package internal

import (
	"errors"
	"fmt"
)

// nearLen bounds how much of the remaining input an error message quotes.
const nearLen = 16

// SyntaxError is returned when the parser cannot consume the whole document. Remaining is the exact
// unconsumed text starting at the offending position.
type SyntaxError struct {
	Remaining string
	Offset    int
	Line      int
	Column    int
	Reason    string
	// Incomplete is set when the input ended inside a loop, a raw insert or a comment, so more input
	// could still make it valid.
	Incomplete bool
}

func (e *SyntaxError) Error() string {
	near := "end of input"
	if e.Remaining != "" {
		near = e.Remaining
		if len(near) > nearLen {
			near = near[:nearLen] + "..."
		}
		near = fmt.Sprintf("%q", near)
	}
	return fmt.Sprintf("Parser: syntax error near %s at line %d, column %d, msg: %s", near, e.Line, e.Column, e.Reason)
}

// IsIncomplete reports whether err is a syntax error caused by input ending too early.
func IsIncomplete(err error) bool {
	var syntaxErr *SyntaxError
	return errors.As(err, &syntaxErr) && syntaxErr.Incomplete
}
