package parser_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"go.creack.net/redcode/asm/parser"
)

func expand(input string) (parser.Expanded, error) {
	return parser.NewRaw("test", input).Clean().Expand()
}

func mustExpand(input string) parser.Expanded {
	expanded, err := expand(input)
	Expect(err).NotTo(HaveOccurred())
	return expanded
}

var _ = Describe("Expand", func() {
	It("leaves symbol-free lines untouched", func() {
		expanded := mustExpand("MOV 1, 1\nJMP -1")
		Expect(lineTexts(expanded.Lines)).To(Equal([]string{"MOV 1, 1", "JMP -1"}))
	})

	Describe("labels", func() {
		It("resolves a backward reference to a negative offset", func() {
			expanded := mustExpand("loop MOV 0, 1\nJMP loop")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"MOV 0, 1", "JMP -1"}))
		})

		It("resolves a forward reference to a positive offset", func() {
			expanded := mustExpand("JMP fwd\nMOV 0, 1\nfwd DAT #0, #0")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"JMP 2", "MOV 0, 1", "DAT #0, #0"}))
		})

		It("resolves a self reference to zero", func() {
			expanded := mustExpand("here JMP here")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"JMP 0"}))
		})

		It("binds a standalone label to the next instruction", func() {
			expanded := mustExpand("top\nMOV 0, 1\nJMP top")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"MOV 0, 1", "JMP -1"}))
		})

		It("does not count directive lines as instructions", func() {
			expanded := mustExpand("ORG 0\ntarget MOV 0, 1\nJMP target")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"ORG 0", "MOV 0, 1", "JMP -1"}))
		})

		It("keeps the first definition of a duplicate label, with a warning", func() {
			expanded := mustExpand("dup MOV 0, 1\ndup MOV 0, 1\nJMP dup")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"MOV 0, 1", "MOV 0, 1", "JMP -2"}))
			Expect(expanded.Diagnostics).To(HaveLen(1))
		})

		It("fails on an undefined symbol, naming it", func() {
			_, err := expand("MOV 0, missing")
			var perr *parser.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Kind).To(Equal(parser.UnknownSymbol))
			Expect(perr.Token).To(Equal("missing"))
			Expect(perr.Line).To(Equal(1))
		})
	})

	Describe("EQU constants", func() {
		It("substitutes a definition textually", func() {
			expanded := mustExpand("EQU step 4\nMOV step, step")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"MOV 4, 4"}))
		})

		It("accepts the classic 'name EQU value' form", func() {
			expanded := mustExpand("step EQU #4\nMOV step, 0")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"MOV #4, 0"}))
		})

		It("expands nested definitions to a fixed point", func() {
			expanded := mustExpand("EQU a b\nEQU b 7\nMOV a, 0")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"MOV 7, 0"}))
		})

		It("substitutes constants before resolving labels", func() {
			expanded := mustExpand("EQU there target\ntarget MOV 0, 1\nJMP there")
			Expect(lineTexts(expanded.Lines)).To(Equal([]string{"MOV 0, 1", "JMP -1"}))
		})

		It("fails on a definition cycle", func() {
			_, err := expand("EQU a b\nEQU b a\nMOV a, 0")
			var perr *parser.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Kind).To(Equal(parser.CircularDefinition))
		})
	})

	Describe("origin", func() {
		It("defaults to zero", func() {
			expanded := mustExpand("MOV 0, 1")
			Expect(expanded.Origin).To(Equal(0))
		})

		It("keeps a numeric origin", func() {
			expanded := mustExpand("ORG 5\nMOV 0, 1")
			Expect(expanded.Origin).To(Equal(5))
			Expect(expanded.Metadata.Origin).To(Equal("5"))
		})

		It("resolves a label origin to an absolute index", func() {
			expanded := mustExpand("ORG start\nMOV 0, 1\nstart SPL 0, 0")
			Expect(expanded.Origin).To(Equal(1))
			Expect(expanded.Metadata.Origin).To(Equal("1"))
		})

		It("resolves an EQU origin", func() {
			expanded := mustExpand("EQU begin 2\nORG begin\nMOV 0, 1")
			Expect(expanded.Origin).To(Equal(2))
		})

		It("fails on an undefined origin symbol", func() {
			_, err := expand("ORG nowhere\nMOV 0, 1")
			var perr *parser.Error
			Expect(errors.As(err, &perr)).To(BeTrue())
			Expect(perr.Kind).To(Equal(parser.UnknownSymbol))
			Expect(perr.Token).To(Equal("nowhere"))
		})
	})
})
