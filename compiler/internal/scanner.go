package internal

import (
	"strings"

	"github.com/xiaobogaga/bfc/util"
)

// Scanner holds the cursor over the source text and skips the whitespace and #...# comments allowed between
// statements.
type Scanner struct {
	source     string
	currentPos int
}

func (scanner *Scanner) hasRemainCharacters() bool {
	return scanner.currentPos < len(scanner.source)
}

func (scanner *Scanner) current() byte {
	return scanner.source[scanner.currentPos]
}

func (scanner *Scanner) stepForward() {
	scanner.currentPos++
}

func (scanner *Scanner) startsWith(prefix string) bool {
	return strings.HasPrefix(scanner.source[scanner.currentPos:], prefix)
}

func (scanner *Scanner) remaining() string {
	return scanner.source[scanner.currentPos:]
}

// skipWhitespace consumes any run of whitespace and comments. It stops at the first character which is
// neither, or fails if a comment is never closed.
func (scanner *Scanner) skipWhitespace() error {
	for scanner.hasRemainCharacters() {
		if util.IsWhitespace(scanner.current()) {
			scanner.trimSpace()
			continue
		}
		if util.IsCommentDelimiter(scanner.current()) {
			start := scanner.currentPos
			if !scanner.lookForwardForMatchingComment() {
				return scanner.makeError(start, true, "unterminated comment")
			}
			continue
		}
		break
	}
	return nil
}

func (scanner *Scanner) trimSpace() {
	for scanner.hasRemainCharacters() && util.IsWhitespace(scanner.current()) {
		scanner.currentPos++
	}
}

// lookForwardForMatchingComment moves past a comment starting at the cursor. It leaves the cursor unchanged
// and returns false when there is no closing delimiter.
func (scanner *Scanner) lookForwardForMatchingComment() bool {
	end := strings.IndexByte(scanner.source[scanner.currentPos+1:], '#')
	if end < 0 {
		return false
	}
	scanner.currentPos += end + 2
	return true
}

func (scanner *Scanner) makeError(pos int, incomplete bool, msg string) *SyntaxError {
	consumed := scanner.source[:pos]
	line := strings.Count(consumed, "\n") + 1
	column := pos - strings.LastIndexByte(consumed, '\n')
	return &SyntaxError{
		Remaining:  scanner.source[pos:],
		Offset:     pos,
		Line:       line,
		Column:     column,
		Reason:     msg,
		Incomplete: incomplete,
	}
}
