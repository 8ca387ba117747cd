package util

// Byte classes of the bfc source alphabet.

func IsWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func IsCommentDelimiter(b byte) bool {
	return b == '#'
}

func IsLoopOpen(b byte) bool {
	return b == '['
}

func IsLoopClose(b byte) bool {
	return b == ']'
}

func IsInsertDelimiter(b byte) bool {
	return b == ':'
}

// IsPrimitive reports whether b is one of the six single character statements.
func IsPrimitive(b byte) bool {
	switch b {
	case '>', '<', '+', '-', ',', '.':
		return true
	}
	return false
}

// IsInstruction reports whether b belongs to the eight symbol instruction alphabet.
func IsInstruction(b byte) bool {
	return IsPrimitive(b) || IsLoopOpen(b) || IsLoopClose(b)
}
