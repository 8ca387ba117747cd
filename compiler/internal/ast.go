package internal

// In this file, we defined the intermediate representation (IR) of a bfc program. The parser builds the whole
// tree once from the source text, and every backend reads it without modifying it. Transformations must build
// a new tree.

// Program is an ordered sequence of statements. Order is execution order.
type Program []Statement

// Statement is one of PointerMove, CellOp, Output, Input, Loop or RawInsert. The set is closed: the unexported
// marker method keeps other packages from adding variants.
type Statement interface {
	Type() StatementType
	String() string
	isStatement()
}

type StatementType int

const (
	PointerMoveStatementTP StatementType = iota
	CellOpStatementTP
	OutputStatementTP
	InputStatementTP
	LoopStatementTP
	RawInsertStatementTP
)

func (tp StatementType) String() string {
	switch tp {
	case PointerMoveStatementTP:
		return "pointer move"
	case CellOpStatementTP:
		return "cell op"
	case OutputStatementTP:
		return "output"
	case InputStatementTP:
		return "input"
	case LoopStatementTP:
		return "loop"
	case RawInsertStatementTP:
		return "raw insert"
	}
	return ""
}

// PointerMove moves the active cell pointer by Offset cells. Positive is forward.
type PointerMove struct {
	Offset int32
}

// CellOp applies Op with Operand to the active cell.
type CellOp struct {
	Op      OpCode
	Operand int32
}

// Output writes the active cell to the standard output.
type Output struct{}

// Input reads one byte into the active cell.
type Input struct{}

// Loop repeats Body while the active cell is non-zero.
type Loop struct {
	Body Program
}

// RawInsert is target language text spliced into the generated code as it is.
type RawInsert struct {
	Text string
}

type OpCode int

const (
	AddOpTP OpCode = iota
	MultiplyOpTP
	DivideOpTP
	ModuloOpTP
)

// Symbol is the arithmetic operator of the op in both the surface syntax and C.
func (op OpCode) Symbol() string {
	switch op {
	case AddOpTP:
		return "+"
	case MultiplyOpTP:
		return "*"
	case DivideOpTP:
		return "/"
	case ModuloOpTP:
		return "%"
	}
	return ""
}

func (op OpCode) String() string {
	switch op {
	case AddOpTP:
		return "add"
	case MultiplyOpTP:
		return "multiply"
	case DivideOpTP:
		return "divide"
	case ModuloOpTP:
		return "modulo"
	}
	return ""
}

func (PointerMove) Type() StatementType { return PointerMoveStatementTP }
func (CellOp) Type() StatementType      { return CellOpStatementTP }
func (Output) Type() StatementType      { return OutputStatementTP }
func (Input) Type() StatementType       { return InputStatementTP }
func (Loop) Type() StatementType        { return LoopStatementTP }
func (RawInsert) Type() StatementType   { return RawInsertStatementTP }

func (PointerMove) isStatement() {}
func (CellOp) isStatement()      {}
func (Output) isStatement()      {}
func (Input) isStatement()       {}
func (Loop) isStatement()        {}
func (RawInsert) isStatement()   {}
