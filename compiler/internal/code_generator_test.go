package internal

import (
	"math"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("C99Backend", func() {
	var backend C99Backend

	generate := func(program Program) string {
		return backend.Generate(program, 0, 10)
	}

	It("should report its name and extension", func() {
		Expect(backend.Name()).To(Equal("c99"))
		Expect(backend.Extension()).To(Equal("c"))
	})

	It("should generate a complete program", func() {
		program := Program{
			CellOp{Op: AddOpTP, Operand: 1},
			Loop{Body: Program{Output{}}},
		}
		Expect(backend.Generate(program, 0, 30000)).To(Equal(
			"#include <stdio.h>\n" +
				"\n" +
				"int main(int argc, char **argv) {\n" +
				"\tchar cells[30000] = {0};\n" +
				"\tchar *ptr = cells;\n" +
				"\t*ptr += 1;\n" +
				"\twhile (*ptr) {\n" +
				"\t\tputchar(*ptr);\n" +
				"\t}\n" +
				"\treturn 0;\n" +
				"}\n"))
	})

	It("should generate an empty program", func() {
		Expect(generate(Program{})).To(HaveSuffix("\tchar *ptr = cells;\n\treturn 0;\n}\n"))
	})

	Describe("tape", func() {
		It("should start the pointer pre cells into the tape", func() {
			code := backend.Generate(Program{}, 5, 10)
			Expect(code).To(ContainSubstring("\tchar cells[15] = {0};\n"))
			Expect(code).To(ContainSubstring("\tchar *ptr = cells + 5;\n"))
		})

		It("should not overflow the tape size", func() {
			code := backend.Generate(Program{}, math.MaxUint32, math.MaxUint32)
			Expect(code).To(ContainSubstring("char cells[8589934590] = {0};"))
			Expect(code).To(ContainSubstring("char *ptr = cells + 4294967295;"))
		})
	})

	Describe("pointer moves", func() {
		It("should advance the pointer", func() {
			Expect(generate(Program{PointerMove{Offset: 1}})).To(ContainSubstring("\tptr += 1;\n"))
			Expect(generate(Program{PointerMove{Offset: math.MaxInt32}})).To(ContainSubstring("\tptr += 2147483647;\n"))
		})

		It("should retreat by the magnitude", func() {
			Expect(generate(Program{PointerMove{Offset: -3}})).To(ContainSubstring("\tptr -= 3;\n"))
		})

		It("should retreat by the magnitude of the minimum offset", func() {
			code := generate(Program{PointerMove{Offset: math.MinInt32}})
			Expect(code).To(ContainSubstring("\tptr -= 2147483648;\n"))
			Expect(code).NotTo(ContainSubstring("--"))
		})

		It("should keep a zero move as a marker", func() {
			Expect(generate(Program{PointerMove{Offset: 0}})).To(ContainSubstring("\t/* redundant ptr move */\n"))
		})
	})

	Describe("cell ops", func() {
		It("should use the operator of the op", func() {
			code := generate(Program{
				CellOp{Op: AddOpTP, Operand: -1},
				CellOp{Op: MultiplyOpTP, Operand: 3},
				CellOp{Op: DivideOpTP, Operand: 2},
				CellOp{Op: ModuloOpTP, Operand: 7},
			})
			Expect(code).To(ContainSubstring(
				"\t*ptr += -1;\n\t*ptr *= 3;\n\t*ptr /= 2;\n\t*ptr %= 7;\n"))
		})

		It("should emit boundary operands exactly", func() {
			Expect(generate(Program{CellOp{Op: AddOpTP, Operand: math.MinInt32}})).
				To(ContainSubstring("\t*ptr += -2147483648;\n"))
			Expect(generate(Program{CellOp{Op: AddOpTP, Operand: math.MaxInt32}})).
				To(ContainSubstring("\t*ptr += 2147483647;\n"))
		})
	})

	It("should read and write single bytes", func() {
		code := generate(Program{Input{}, Output{}})
		Expect(code).To(ContainSubstring("\t*ptr = getchar();\n\tputchar(*ptr);\n"))
	})

	Describe("loops", func() {
		It("should nest the body one level deeper", func() {
			code := generate(Program{Loop{Body: Program{PointerMove{Offset: 1}}}})
			Expect(code).To(ContainSubstring("\twhile (*ptr) {\n\t\tptr += 1;\n\t}\n"))
		})

		It("should mirror the tree depth", func() {
			code := generate(Program{
				Loop{Body: Program{
					Loop{Body: Program{
						Loop{Body: Program{Output{}}},
					}},
					Input{},
				}},
				Output{},
			})
			Expect(code).To(ContainSubstring(
				"\twhile (*ptr) {\n" +
					"\t\twhile (*ptr) {\n" +
					"\t\t\twhile (*ptr) {\n" +
					"\t\t\t\tputchar(*ptr);\n" +
					"\t\t\t}\n" +
					"\t\t}\n" +
					"\t\t*ptr = getchar();\n" +
					"\t}\n" +
					"\tputchar(*ptr);\n"))
		})

		It("should generate an empty loop", func() {
			Expect(generate(Program{Loop{Body: Program{}}})).To(ContainSubstring("\twhile (*ptr) {\n\t}\n"))
		})
	})

	Describe("raw inserts", func() {
		It("should indent every line to the current depth", func() {
			code := generate(Program{Loop{Body: Program{RawInsert{Text: "foo();\nbar();"}}}})
			Expect(code).To(ContainSubstring(
				"\t\t/* Start of inserted section */\n" +
					"\t\tfoo();\n" +
					"\t\tbar();\n" +
					"\t\t/* End of inserted section */\n"))
		})

		It("should keep the text otherwise untouched", func() {
			code := generate(Program{RawInsert{Text: "  x = 1; // ::\n"}})
			Expect(code).To(ContainSubstring("\t/* Start of inserted section */\n\t  x = 1; // ::\n\n\t/* End"))
		})

		It("should emit only the markers for an empty insert", func() {
			code := generate(Program{RawInsert{Text: ""}})
			Expect(code).To(ContainSubstring("\t/* Start of inserted section */\n\t/* End of inserted section */\n"))
		})
	})

	It("should generate what it parsed", func() {
		program, err := Parse("++[>+<-]>.")
		Expect(err).NotTo(HaveOccurred())
		code := generate(program)
		Expect(strings.Count(code, "while (*ptr) {")).To(Equal(1))
		Expect(strings.Count(code, "*ptr += 1;")).To(Equal(3))
		Expect(strings.Count(code, "*ptr += -1;")).To(Equal(1))
	})
})

var _ = Describe("Backend registry", func() {
	It("should find the c99 backend", func() {
		backend, err := LookupBackend("c99")
		Expect(err).NotTo(HaveOccurred())
		Expect(backend).To(Equal(C99Backend{}))
		Expect(BackendNames()).To(Equal([]string{"c99"}))
	})

	It("should reject unknown backends", func() {
		_, err := LookupBackend("x86")
		Expect(err).To(MatchError(ContainSubstring(`unknown backend "x86"`)))
	})

	It("should pair the code with the extension", func() {
		code, ext := Generate(C99Backend{}, Program{Output{}}, 0, 1)
		Expect(ext).To(Equal("c"))
		Expect(code).To(ContainSubstring("putchar(*ptr);"))
	})
})
