// Package core holds the in-memory representation of an assembled warrior:
// fields, instructions and the fixed-capacity core image they are loaded in.
package core

import (
	"fmt"

	"go.creack.net/redcode/op"
)

// Field is one operand of an instruction: an address mode and a value.
// The zero value is "$0".
type Field struct {
	Mode  op.AddressMode
	Value int32
}

// DirectField returns a direct ('$') field holding value.
func DirectField(value int32) Field {
	return Field{Mode: op.Direct, Value: value}
}

// ImmediateField returns an immediate ('#') field holding value.
func ImmediateField(value int32) Field {
	return Field{Mode: op.Immediate, Value: value}
}

// String renders the field in canonical assembler syntax, sigil included.
func (f Field) String() string {
	return fmt.Sprintf("%s%d", f.Mode, f.Value)
}

// Instruction is a fully resolved Redcode instruction.
// The zero value is "DAT.F $0, $0".
type Instruction struct {
	Opcode   op.Opcode
	Modifier op.Modifier
	A, B     Field
}

// NewInstruction builds an instruction with the modifier computed from the
// opcode and the address modes of both fields.
func NewInstruction(opcode op.Opcode, a, b Field) Instruction {
	return Instruction{
		Opcode:   opcode,
		Modifier: op.ModifierFromContext(opcode, a.Mode, b.Mode),
		A:        a,
		B:        b,
	}
}

// String renders the instruction in canonical assembler syntax. The modifier
// is always explicit so that dumped text parses back to the same instruction.
func (ins Instruction) String() string {
	return fmt.Sprintf("%s.%s %s%c %s", ins.Opcode, ins.Modifier, ins.A, op.SeparatorChar, ins.B)
}
