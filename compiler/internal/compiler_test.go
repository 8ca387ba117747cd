package internal

import (
	gomock "github.com/golang/mock/gomock"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Compile", func() {
	var (
		mockCtrl    *gomock.Controller
		mockBackend *MockBackend
	)

	BeforeEach(func() {
		mockCtrl = gomock.NewController(GinkgoT())
		mockBackend = NewMockBackend(mockCtrl)
	})

	AfterEach(func() {
		mockCtrl.Finish()
	})

	It("should hand the parsed program to the backend", func() {
		expected := Program{
			CellOp{Op: AddOpTP, Operand: 1},
			Loop{Body: Program{PointerMove{Offset: 1}}},
		}
		mockBackend.EXPECT().Name().Return("mock").AnyTimes()
		mockBackend.EXPECT().Generate(expected, uint32(2), uint32(10)).Return("generated")
		mockBackend.EXPECT().Extension().Return("mk")

		result, err := Compile("+ [ > ] # done #", mockBackend, Options{Pre: 2, Post: 10})

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Program).To(Equal(expected))
		Expect(result.Code).To(Equal("generated"))
		Expect(result.Extension).To(Equal("mk"))
	})

	It("should not call the backend on a syntax error", func() {
		result, err := Compile("+[>", mockBackend, Options{Post: 10})

		Expect(result).To(BeNil())
		var syntaxErr *SyntaxError
		Expect(err).To(BeAssignableToTypeOf(syntaxErr))
		Expect(err.(*SyntaxError).Remaining).To(Equal("[>"))
	})

	It("should apply the nesting bound", func() {
		_, err := Compile("[[[]]]", mockBackend, Options{Post: 10, MaxDepth: 2})

		Expect(err).To(HaveOccurred())
		Expect(err.(*SyntaxError).Offset).To(Equal(2))
	})

	It("should compile with the c99 backend", func() {
		result, err := Compile("[>]", C99Backend{}, Options{Post: 10})

		Expect(err).NotTo(HaveOccurred())
		Expect(result.Extension).To(Equal("c"))
		Expect(result.Code).To(ContainSubstring("\tchar cells[10] = {0};\n"))
		Expect(result.Code).To(ContainSubstring("\twhile (*ptr) {\n\t\tptr += 1;\n\t}\n"))
	})
})
