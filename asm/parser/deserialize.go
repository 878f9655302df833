package parser

import (
	"strconv"

	"go.creack.net/redcode/core"
	"go.creack.net/redcode/op"
)

// Deserialize parses each line against the instruction grammar
// `[Label] Opcode[.Modifier] Field ["," Field]` and yields the typed
// instruction records. Directive lines are skipped, anything else that does
// not match the grammar is a hard error.
func (e Expanded) Deserialize() (Deserialized, error) {
	instructions := make([]core.Instruction, 0, len(e.Lines))
	for _, line := range e.Lines {
		ins, ok, err := parseInstruction(e.name, line)
		if err != nil {
			return Deserialized{}, err
		}
		if ok {
			instructions = append(instructions, ins)
		}
	}
	return Deserialized{
		Instructions: instructions,
		Metadata:     e.Metadata,
		Diagnostics:  e.Diagnostics,
		Origin:       e.Origin,
	}, nil
}

// lineParser is a pull parser over a single source line.
type lineParser struct {
	lexer     *lexer
	currToken item
	num       int
}

func (p *lineParser) nextToken() {
	p.currToken = p.lexer.nextItem()
}

// parseInstruction parses one line. The second return value is false for
// lines that hold no instruction (blank, or a directive rule).
func parseInstruction(name string, line SourceLine) (core.Instruction, bool, error) {
	p := &lineParser{lexer: newLexer(name, line.Text, line.Num), num: line.Num}
	p.nextToken()

	if p.currToken.typ.isEOL() {
		return core.Instruction{}, false, nil
	}
	if p.currToken.typ == itemError {
		return core.Instruction{}, false, &Error{Kind: MalformedInstruction, Line: p.num, Token: p.currToken.val}
	}
	if p.currToken.typ != itemIdentifier {
		return core.Instruction{}, false, &Error{Kind: MalformedInstruction, Line: p.num, Token: p.currToken.val}
	}

	// Directive lines are a recognized non-instruction rule: skipped.
	if _, ok := op.ParsePseudoOpcode(p.currToken.val); ok {
		return core.Instruction{}, false, nil
	}

	opcode, ok := op.ParseOpcode(p.currToken.val)
	if !ok {
		// The grammar allows a leading label before the operation.
		label := p.currToken
		p.nextToken()
		if p.currToken.typ != itemIdentifier {
			return core.Instruction{}, false, &Error{Kind: InvalidOpcode, Line: p.num, Token: label.val}
		}
		if opcode, ok = op.ParseOpcode(p.currToken.val); !ok {
			return core.Instruction{}, false, &Error{Kind: InvalidOpcode, Line: p.num, Token: p.currToken.val}
		}
	}
	p.nextToken()

	// Optional '.modifier'.
	modifier, explicitModifier := op.Modifier(0), false
	if p.currToken.typ == itemDot {
		p.nextToken()
		if p.currToken.typ != itemIdentifier {
			return core.Instruction{}, false, &Error{Kind: InvalidModifier, Line: p.num, Token: p.currToken.val}
		}
		if modifier, ok = op.ParseModifier(p.currToken.val); !ok {
			return core.Instruction{}, false, &Error{Kind: InvalidModifier, Line: p.num, Token: p.currToken.val}
		}
		explicitModifier = true
		p.nextToken()
	}

	// Field A is mandatory.
	fieldA, err := p.parseField()
	if err != nil {
		return core.Instruction{}, false, err
	}

	// Field B defaults to '$0' when absent.
	var fieldB core.Field
	if p.currToken.typ == itemComa {
		p.nextToken()
		if fieldB, err = p.parseField(); err != nil {
			return core.Instruction{}, false, err
		}
	}

	if !p.currToken.typ.isEOL() {
		return core.Instruction{}, false, &Error{Kind: MalformedInstruction, Line: p.num, Token: p.currToken.val}
	}

	if !explicitModifier {
		modifier = op.ModifierFromContext(opcode, fieldA.Mode, fieldB.Mode)
	}
	return core.Instruction{Opcode: opcode, Modifier: modifier, A: fieldA, B: fieldB}, true, nil
}

// parseField parses `[AddressModeSigil] Expr` where Expr is a signed
// base-10 literal. An identifier here is a symbol that survived expansion.
func (p *lineParser) parseField() (core.Field, error) {
	var field core.Field

	if p.currToken.typ == itemSigil {
		mode, ok := op.ParseAddressMode(rune(p.currToken.val[0]))
		if !ok {
			return core.Field{}, &Error{Kind: InvalidAddressMode, Line: p.num, Token: p.currToken.val}
		}
		field.Mode = mode
		p.nextToken()
	}

	switch p.currToken.typ {
	case itemNumber:
		n, err := strconv.ParseInt(p.currToken.val, 10, 32)
		if err != nil {
			return core.Field{}, &Error{Kind: MalformedInstruction, Line: p.num, Token: p.currToken.val}
		}
		field.Value = int32(n)
	case itemIdentifier:
		return core.Field{}, &Error{Kind: UnknownSymbol, Line: p.num, Token: p.currToken.val}
	default:
		return core.Field{}, &Error{Kind: MalformedInstruction, Line: p.num, Token: p.currToken.val}
	}
	p.nextToken()

	return field, nil
}
