// Package asm is the front door of the Redcode assembler: it runs warrior
// source text through the full parser pipeline and returns the resolved
// program.
package asm

import (
	"fmt"
	"strings"

	"go.creack.net/redcode/asm/parser"
	"go.creack.net/redcode/core"
)

// Program is a fully assembled warrior: the resolved instructions, the
// metadata extracted from the source and the advisory diagnostics emitted
// along the way.
type Program struct {
	Instructions []core.Instruction
	Metadata     parser.Metadata
	Diagnostics  []parser.Diagnostic

	// Origin is the entry point, an index into Instructions.
	Origin int
}

// Assemble parses the given warrior source. The name is used only in error
// reports; if the source comes from a file, it should be the file name.
//
// On failure, the returned error wraps a *parser.Error carrying the error
// kind, source line and offending token.
func Assemble(name, input string) (*Program, error) {
	expanded, err := parser.NewRaw(name, input).Clean().Expand()
	if err != nil {
		return nil, fmt.Errorf("%s: expand: %w", name, err)
	}
	deserialized, err := expanded.Deserialize()
	if err != nil {
		return nil, fmt.Errorf("%s: deserialize: %w", name, err)
	}

	return &Program{
		Instructions: deserialized.Instructions,
		Metadata:     deserialized.Metadata,
		Diagnostics:  deserialized.Diagnostics,
		Origin:       deserialized.Origin,
	}, nil
}

// Dump renders the program as canonical assembler text, one instruction per
// line. Dumped text assembles back to the same instruction sequence.
func (p *Program) Dump() string {
	out := &strings.Builder{}
	for _, ins := range p.Instructions {
		fmt.Fprintf(out, "%s\n", ins)
	}
	return out.String()
}

// Load places the program image into the given core starting at the given
// address.
func (p *Program) Load(c *core.Core, at int) error {
	if err := c.Load(p.Instructions, at); err != nil {
		return fmt.Errorf("load program: %w", err)
	}
	return nil
}
