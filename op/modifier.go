package op

import (
	"fmt"
	"strings"
)

// Modifier selects which sub-fields of the two operands an operation
// acts upon. The zero value is F, the default of the default instruction.
type Modifier int

const (
	F  Modifier = iota // Both A-numbers and both B-numbers, pairwise.
	A                  // A-number to A-number.
	B                  // B-number to B-number.
	AB                 // A-number to B-number.
	BA                 // B-number to A-number.
	X                  // A-number to B-number and B-number to A-number.
	I                  // Whole instruction.
)

var modifierNames = [...]string{
	F:  "F",
	A:  "A",
	B:  "B",
	AB: "AB",
	BA: "BA",
	X:  "X",
	I:  "I",
}

// Modifiers lists every modifier.
var Modifiers = func() []Modifier {
	out := make([]Modifier, 0, len(modifierNames))
	for m := range modifierNames {
		out = append(out, Modifier(m))
	}
	return out
}()

func (m Modifier) String() string {
	if m < 0 || int(m) >= len(modifierNames) {
		return "<invalid modifier>"
	}
	return modifierNames[m]
}

// ParseModifier maps a modifier name back to its Modifier, case-insensitively.
func ParseModifier(s string) (Modifier, bool) {
	s = strings.ToUpper(s)
	for m, name := range modifierNames {
		if name == s {
			return Modifier(m), true
		}
	}
	return 0, false
}

// ModifierFromContext returns the modifier to use when the source omits an
// explicit one, based on the opcode and the address modes of both fields.
// Implements the ICWS'94 document, section A.2.1.2: ICWS'88 to ICWS'94
// conversion.
func ModifierFromContext(opcode Opcode, aMode, bMode AddressMode) Modifier {
	switch opcode {
	case Dat:
		return F
	case Jmp, Jmz, Jmn, Djn, Spl, Nop:
		return B
	}
	if aMode == Immediate {
		return AB
	}
	if bMode == Immediate {
		return B
	}
	switch opcode {
	case Mov, Cmp, Seq, Sne:
		return I
	case Slt:
		return B
	case Add, Sub, Mul, Div, Mod:
		return F
	}
	// The switches above cover the whole closed enumeration.
	panic(fmt.Sprintf("opcode %v not covered by the conversion table", opcode))
}
