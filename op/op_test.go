package op_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"go.creack.net/redcode/op"
)

func caseVariants(s string) []string {
	return []string{s, strings.ToLower(s), s[:1] + strings.ToLower(s[1:])}
}

var _ = Describe("Opcode", func() {
	It("has DAT as zero value", func() {
		Expect(op.Opcode(0)).To(Equal(op.Dat))
	})

	It("lists all 17 mnemonics", func() {
		Expect(op.Opcodes).To(HaveLen(17))
	})

	It("round-trips every mnemonic through text, case-insensitively", func() {
		for _, o := range op.Opcodes {
			for _, spelling := range caseVariants(o.String()) {
				parsed, ok := op.ParseOpcode(spelling)
				Expect(ok).To(BeTrue(), "spelling %q", spelling)
				Expect(parsed).To(Equal(o))
			}
		}
	})

	It("rejects unknown mnemonics", func() {
		_, ok := op.ParseOpcode("XYZ")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("PseudoOpcode", func() {
	It("round-trips every keyword through text, case-insensitively", func() {
		for _, po := range []op.PseudoOpcode{op.Org, op.Equ, op.End} {
			for _, spelling := range caseVariants(po.String()) {
				parsed, ok := op.ParsePseudoOpcode(spelling)
				Expect(ok).To(BeTrue(), "spelling %q", spelling)
				Expect(parsed).To(Equal(po))
			}
		}
	})
})

var _ = Describe("Modifier", func() {
	It("has F as zero value", func() {
		Expect(op.Modifier(0)).To(Equal(op.F))
	})

	It("round-trips every modifier through text, case-insensitively", func() {
		for _, m := range op.Modifiers {
			for _, spelling := range caseVariants(m.String()) {
				parsed, ok := op.ParseModifier(spelling)
				Expect(ok).To(BeTrue(), "spelling %q", spelling)
				Expect(parsed).To(Equal(m))
			}
		}
	})

	It("rejects unknown modifiers", func() {
		_, ok := op.ParseModifier("Q")
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("AddressMode", func() {
	It("has Direct as zero value", func() {
		Expect(op.AddressMode(0)).To(Equal(op.Direct))
	})

	It("round-trips every sigil", func() {
		Expect(op.AddressModes).To(HaveLen(8))
		for _, m := range op.AddressModes {
			parsed, ok := op.ParseAddressMode(m.Sigil())
			Expect(ok).To(BeTrue(), "sigil %q", m.Sigil())
			Expect(parsed).To(Equal(m))
		}
	})

	It("maps each mode to its documented sigil", func() {
		Expect(op.Immediate.String()).To(Equal("#"))
		Expect(op.Direct.String()).To(Equal("$"))
		Expect(op.IndirectA.String()).To(Equal("*"))
		Expect(op.IndirectB.String()).To(Equal("@"))
		Expect(op.PreDecIndirectA.String()).To(Equal("{"))
		Expect(op.PreDecIndirectB.String()).To(Equal("<"))
		Expect(op.PostIncIndirectA.String()).To(Equal("}"))
		Expect(op.PostIncIndirectB.String()).To(Equal(">"))
	})

	It("rejects unknown sigils", func() {
		_, ok := op.ParseAddressMode('%')
		Expect(ok).To(BeFalse())
	})
})

var _ = Describe("ModifierFromContext", func() {
	jumpFamily := []op.Opcode{op.Jmp, op.Jmz, op.Jmn, op.Djn, op.Spl, op.Nop}
	moveFamily := []op.Opcode{op.Mov, op.Cmp, op.Seq, op.Sne}
	mathFamily := []op.Opcode{op.Add, op.Sub, op.Mul, op.Div, op.Mod}

	nonImmediate := func() []op.AddressMode {
		out := make([]op.AddressMode, 0, len(op.AddressModes)-1)
		for _, m := range op.AddressModes {
			if m != op.Immediate {
				out = append(out, m)
			}
		}
		return out
	}()

	It("maps DAT to F for every mode pair", func() {
		for _, aMode := range op.AddressModes {
			for _, bMode := range op.AddressModes {
				Expect(op.ModifierFromContext(op.Dat, aMode, bMode)).To(Equal(op.F))
			}
		}
	})

	It("maps the jump family to B for every mode pair", func() {
		for _, opcode := range jumpFamily {
			for _, aMode := range op.AddressModes {
				for _, bMode := range op.AddressModes {
					Expect(op.ModifierFromContext(opcode, aMode, bMode)).To(Equal(op.B),
						"opcode %v modes %v %v", opcode, aMode, bMode)
				}
			}
		}
	})

	It("maps an immediate A-field to AB for the remaining opcodes", func() {
		opcodes := append(append([]op.Opcode{op.Slt}, moveFamily...), mathFamily...)
		for _, opcode := range opcodes {
			for _, bMode := range op.AddressModes {
				Expect(op.ModifierFromContext(opcode, op.Immediate, bMode)).To(Equal(op.AB))
			}
		}
	})

	It("maps an immediate B-field to B when the A-field is not immediate", func() {
		opcodes := append(append([]op.Opcode{op.Slt}, moveFamily...), mathFamily...)
		for _, opcode := range opcodes {
			for _, aMode := range nonImmediate {
				Expect(op.ModifierFromContext(opcode, aMode, op.Immediate)).To(Equal(op.B))
			}
		}
	})

	It("maps the move family to I without immediates", func() {
		for _, opcode := range moveFamily {
			for _, aMode := range nonImmediate {
				for _, bMode := range nonImmediate {
					Expect(op.ModifierFromContext(opcode, aMode, bMode)).To(Equal(op.I))
				}
			}
		}
	})

	It("maps SLT to B without immediates", func() {
		for _, aMode := range nonImmediate {
			for _, bMode := range nonImmediate {
				Expect(op.ModifierFromContext(op.Slt, aMode, bMode)).To(Equal(op.B))
			}
		}
	})

	It("maps the arithmetic family to F without immediates", func() {
		for _, opcode := range mathFamily {
			for _, aMode := range nonImmediate {
				for _, bMode := range nonImmediate {
					Expect(op.ModifierFromContext(opcode, aMode, bMode)).To(Equal(op.F))
				}
			}
		}
	})

	It("covers every opcode and mode pair", func() {
		for _, opcode := range op.Opcodes {
			for _, aMode := range op.AddressModes {
				for _, bMode := range op.AddressModes {
					Expect(func() { op.ModifierFromContext(opcode, aMode, bMode) }).NotTo(Panic())
				}
			}
		}
	})
})
