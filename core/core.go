package core

import (
	"fmt"
	"strings"

	"go.creack.net/redcode/op"
)

// Core is the fixed-capacity memory image warriors are loaded in.
// It owns its storage, indices are the only addressing mechanism at this
// layer. Wraparound is the simulator's business, not ours.
type Core struct {
	instructions []Instruction
}

// New allocates a core of the given size, every slot holding the default
// instruction.
func New(size int) *Core {
	return &Core{instructions: make([]Instruction, size)}
}

// NewDefault allocates a core of op.DefaultCoreSize.
func NewDefault() *Core {
	return New(op.DefaultCoreSize)
}

// Size returns the core capacity, in instructions.
func (c *Core) Size() int {
	return len(c.instructions)
}

// Get returns the instruction at the given index,
// or false if the index is out of range.
func (c *Core) Get(index int) (Instruction, bool) {
	if index < 0 || index >= len(c.instructions) {
		return Instruction{}, false
	}
	return c.instructions[index], true
}

// Set stores the given instruction at the given index. The core capacity is
// fixed at construction, an out-of-range index is a bug upstream: panics.
func (c *Core) Set(index int, ins Instruction) {
	if index < 0 || index >= len(c.instructions) {
		panic(fmt.Sprintf("core index %d out of range [0, %d)", index, len(c.instructions)))
	}
	c.instructions[index] = ins
}

// Load stores the given instructions in order starting at origin.
func (c *Core) Load(instructions []Instruction, origin int) error {
	if origin < 0 || origin+len(instructions) > len(c.instructions) {
		return fmt.Errorf("program of %d instructions at origin %d exceeds core size %d",
			len(instructions), origin, len(c.instructions))
	}
	copy(c.instructions[origin:], instructions)
	return nil
}

// Dump renders the non-default instructions as canonical text,
// one per line, in index order.
func (c *Core) Dump() string {
	out := &strings.Builder{}
	for _, ins := range c.instructions {
		if ins == (Instruction{}) {
			continue
		}
		fmt.Fprintf(out, "%s\n", ins)
	}
	return out.String()
}

// DumpAll renders every slot, defaults included.
func (c *Core) DumpAll() string {
	out := &strings.Builder{}
	for _, ins := range c.instructions {
		fmt.Fprintf(out, "%s\n", ins)
	}
	return out.String()
}
