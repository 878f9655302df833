// Package op defines the Redcode instruction set: the closed opcode,
// modifier and address-mode enumerations, their canonical text forms and
// the ICWS'94 modifier-inference rule.
package op

import "strings"

// Default size of the core memory, in instructions.
const DefaultCoreSize = 8000

// Tokens.
const (
	CommentChar   = ';'
	SeparatorChar = ','
	ModifierChar  = '.'
	ModeSigils    = "#$*@{<}>"
	LabelChars    = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789_"
)

// Opcode is one of the 17 Redcode mnemonics.
// The zero value is Dat, matching the default instruction.
type Opcode int

const (
	Dat Opcode = iota // Terminate process.
	Mov               // Move.
	Add               // Addition.
	Sub               // Subtraction.
	Mul               // Multiplication.
	Div               // Division.
	Mod               // Modulo.
	Jmp               // Jump.
	Jmz               // Jump if zero.
	Jmn               // Jump if not zero.
	Djn               // Decrement and jump if not zero.
	Cmp               // Compare, alias of Seq.
	Seq               // Skip if equal.
	Sne               // Skip if not equal.
	Slt               // Skip if less than.
	Spl               // Split process.
	Nop               // No operation.
)

var opcodeNames = [...]string{
	Dat: "DAT",
	Mov: "MOV",
	Add: "ADD",
	Sub: "SUB",
	Mul: "MUL",
	Div: "DIV",
	Mod: "MOD",
	Jmp: "JMP",
	Jmz: "JMZ",
	Jmn: "JMN",
	Djn: "DJN",
	Cmp: "CMP",
	Seq: "SEQ",
	Sne: "SNE",
	Slt: "SLT",
	Spl: "SPL",
	Nop: "NOP",
}

// Opcodes lists every opcode, in canonical order.
var Opcodes = func() []Opcode {
	out := make([]Opcode, 0, len(opcodeNames))
	for o := range opcodeNames {
		out = append(out, Opcode(o))
	}
	return out
}()

func (o Opcode) String() string {
	if o < 0 || int(o) >= len(opcodeNames) {
		return "<invalid opcode>"
	}
	return opcodeNames[o]
}

// ParseOpcode maps a mnemonic back to its Opcode, case-insensitively.
func ParseOpcode(s string) (Opcode, bool) {
	s = strings.ToUpper(s)
	for o, name := range opcodeNames {
		if name == s {
			return Opcode(o), true
		}
	}
	return 0, false
}

// PseudoOpcode is an assembler directive keyword. Pseudo opcodes never
// reach the core image, they are consumed by the parser phases.
type PseudoOpcode int

const (
	Org PseudoOpcode = iota // Entry point.
	Equ                     // Compile-time constant.
	End                     // End of source, optionally with an entry point.
)

var pseudoOpcodeNames = [...]string{
	Org: "ORG",
	Equ: "EQU",
	End: "END",
}

func (po PseudoOpcode) String() string {
	if po < 0 || int(po) >= len(pseudoOpcodeNames) {
		return "<invalid pseudo opcode>"
	}
	return pseudoOpcodeNames[po]
}

// ParsePseudoOpcode maps a directive keyword back to its PseudoOpcode,
// case-insensitively.
func ParsePseudoOpcode(s string) (PseudoOpcode, bool) {
	s = strings.ToUpper(s)
	for po, name := range pseudoOpcodeNames {
		if name == s {
			return PseudoOpcode(po), true
		}
	}
	return 0, false
}
