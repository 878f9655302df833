package parser

import "fmt"

// ErrorKind classifies the recoverable parse failures.
type ErrorKind int

const (
	UnknownSymbol ErrorKind = iota
	MalformedInstruction
	InvalidOpcode
	InvalidModifier
	InvalidAddressMode
	CircularDefinition
)

func (k ErrorKind) String() string {
	switch k {
	case UnknownSymbol:
		return "unknown symbol"
	case MalformedInstruction:
		return "malformed instruction"
	case InvalidOpcode:
		return "invalid opcode"
	case InvalidModifier:
		return "invalid modifier"
	case InvalidAddressMode:
		return "invalid address mode"
	case CircularDefinition:
		return "circular definition"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// Error is a fatal parse failure. It carries enough context for a caller to
// render a diagnostic without re-parsing: the kind, the 1-based source line
// and the offending token.
type Error struct {
	Kind  ErrorKind
	Line  int
	Token string
}

func (e *Error) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("line %d: %s", e.Line, e.Kind)
	}
	return fmt.Sprintf("line %d: %s %q", e.Line, e.Kind, e.Token)
}

// Diagnostic is an advisory warning emitted by the cleaner. Diagnostics
// never abort the pipeline.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}
