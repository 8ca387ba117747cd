package internal

import (
	"fmt"
	"strings"
)

// The printer renders the IR back to the surface syntax. Single steps use the bare characters the parser
// accepts, anything else uses an explicit count like >(3), <(-2) or *(4), which the parser does not read back.

func (program Program) String() string {
	var b strings.Builder
	program.writeTo(&b)
	return b.String()
}

func (program Program) writeTo(b *strings.Builder) {
	for _, stm := range program {
		if loop, ok := stm.(Loop); ok {
			b.WriteByte('[')
			loop.Body.writeTo(b)
			b.WriteByte(']')
			continue
		}
		b.WriteString(stm.String())
	}
}

func (stm PointerMove) String() string {
	switch {
	case stm.Offset == 1:
		return ">"
	case stm.Offset == -1:
		return "<"
	case stm.Offset < 0:
		return fmt.Sprintf("<(%d)", stm.Offset)
	default:
		return fmt.Sprintf(">(%d)", stm.Offset)
	}
}

func (stm CellOp) String() string {
	if stm.Op == AddOpTP {
		switch stm.Operand {
		case 1:
			return "+"
		case -1:
			return "-"
		}
	}
	return fmt.Sprintf("%s(%d)", stm.Op.Symbol(), stm.Operand)
}

func (Output) String() string {
	return "."
}

func (Input) String() string {
	return ","
}

func (stm Loop) String() string {
	return "[" + stm.Body.String() + "]"
}

func (stm RawInsert) String() string {
	return "::" + stm.Text + "::"
}
