package op

// AddressMode describes how a field value is resolved against the core.
// The zero value is Direct, the mode assumed when the sigil is omitted.
type AddressMode int

const (
	Direct           AddressMode = iota // '$'
	Immediate                           // '#'
	IndirectA                           // '*'
	IndirectB                           // '@'
	PreDecIndirectA                     // '{'
	PreDecIndirectB                     // '<'
	PostIncIndirectA                    // '}'
	PostIncIndirectB                    // '>'
)

var addressModeSigils = [...]rune{
	Direct:           '$',
	Immediate:        '#',
	IndirectA:        '*',
	IndirectB:        '@',
	PreDecIndirectA:  '{',
	PreDecIndirectB:  '<',
	PostIncIndirectA: '}',
	PostIncIndirectB: '>',
}

// AddressModes lists every address mode.
var AddressModes = func() []AddressMode {
	out := make([]AddressMode, 0, len(addressModeSigils))
	for m := range addressModeSigils {
		out = append(out, AddressMode(m))
	}
	return out
}()

// Sigil returns the one-character prefix of the mode.
func (m AddressMode) Sigil() rune {
	if m < 0 || int(m) >= len(addressModeSigils) {
		return '?'
	}
	return addressModeSigils[m]
}

func (m AddressMode) String() string { return string(m.Sigil()) }

// ParseAddressMode maps a sigil back to its AddressMode.
func ParseAddressMode(sigil rune) (AddressMode, bool) {
	for m, r := range addressModeSigils {
		if r == sigil {
			return AddressMode(m), true
		}
	}
	return 0, false
}
