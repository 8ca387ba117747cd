package internal

import (
	"fmt"
	"sort"
	"strings"
)

// Backend turns a program into source text of one target language. Generate never fails and does no I/O.
type Backend interface {
	Name() string
	// Extension is the file extension of the generated source, without the dot.
	Extension() string
	Generate(program Program, pre, post uint32) string
}

var backends = map[string]Backend{
	C99Backend{}.Name(): C99Backend{},
}

// LookupBackend returns the backend registered under name.
func LookupBackend(name string) (Backend, error) {
	backend, ok := backends[name]
	if !ok {
		return nil, fmt.Errorf("backend: unknown backend %q, available: %s", name, strings.Join(BackendNames(), ", "))
	}
	return backend, nil
}

func BackendNames() []string {
	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Generate returns the generated text together with the file extension of its language.
func Generate(backend Backend, program Program, pre, post uint32) (string, string) {
	return backend.Generate(program, pre, post), backend.Extension()
}

// C99Backend emits a single C99 file. The tape is a char array of pre + post cells and ptr starts pre cells
// into it.
type C99Backend struct{}

func (C99Backend) Name() string {
	return "c99"
}

func (C99Backend) Extension() string {
	return "c"
}

func (C99Backend) Generate(program Program, pre, post uint32) string {
	gen := &cGenerator{}
	gen.generatePrelude(pre, post)
	gen.generateStatementsCode(program, 1)
	gen.writeOutput(1, "return 0;")
	gen.writeOutput(0, "}")
	return gen.output.String()
}

type cGenerator struct {
	output strings.Builder
}

// #include <stdio.h>
// int main(int argc, char **argv) {
//     char cells[pre + post] = {0};
//     char *ptr = cells + pre;
func (gen *cGenerator) generatePrelude(pre, post uint32) {
	gen.writeOutput(0, "#include <stdio.h>")
	gen.writeOutput(0, "")
	gen.writeOutput(0, "int main(int argc, char **argv) {")
	// Summed in 64 bits, two uint32 can overflow.
	gen.writeOutput(1, fmt.Sprintf("char cells[%d] = {0};", uint64(pre)+uint64(post)))
	if pre == 0 {
		gen.writeOutput(1, "char *ptr = cells;")
		return
	}
	gen.writeOutput(1, fmt.Sprintf("char *ptr = cells + %d;", pre))
}

func (gen *cGenerator) generateStatementsCode(statements Program, depth int) {
	for _, stm := range statements {
		gen.generateStatementCode(stm, depth)
	}
}

func (gen *cGenerator) generateStatementCode(statement Statement, depth int) {
	switch stm := statement.(type) {
	case PointerMove:
		gen.generatePointerMoveCode(stm, depth)
	case CellOp:
		gen.writeOutput(depth, fmt.Sprintf("*ptr %s= %d;", stm.Op.Symbol(), stm.Operand))
	case Output:
		gen.writeOutput(depth, "putchar(*ptr);")
	case Input:
		gen.writeOutput(depth, "*ptr = getchar();")
	case Loop:
		gen.generateLoopCode(stm, depth)
	case RawInsert:
		gen.generateRawInsertCode(stm, depth)
	default:
		panic(fmt.Sprintf("unknown statement type %T", statement))
	}
}

// A zero move stays in the output as a comment so every source statement can be found in the C code.
func (gen *cGenerator) generatePointerMoveCode(stm PointerMove, depth int) {
	switch {
	case stm.Offset > 0:
		gen.writeOutput(depth, fmt.Sprintf("ptr += %d;", stm.Offset))
	case stm.Offset < 0:
		// Negated in 64 bits, -math.MinInt32 does not fit an int32.
		gen.writeOutput(depth, fmt.Sprintf("ptr -= %d;", -int64(stm.Offset)))
	default:
		gen.writeOutput(depth, "/* redundant ptr move */")
	}
}

// while (*ptr) {
//     body
// }
func (gen *cGenerator) generateLoopCode(stm Loop, depth int) {
	gen.writeOutput(depth, "while (*ptr) {")
	gen.generateStatementsCode(stm.Body, depth+1)
	gen.writeOutput(depth, "}")
}

func (gen *cGenerator) generateRawInsertCode(stm RawInsert, depth int) {
	gen.writeOutput(depth, "/* Start of inserted section */")
	if stm.Text != "" {
		for _, line := range strings.Split(stm.Text, "\n") {
			gen.writeOutput(depth, line)
		}
	}
	gen.writeOutput(depth, "/* End of inserted section */")
}

func (gen *cGenerator) writeOutput(depth int, line string) {
	if line != "" {
		gen.output.WriteString(strings.Repeat("\t", depth))
		gen.output.WriteString(line)
	}
	gen.output.WriteByte('\n')
}
