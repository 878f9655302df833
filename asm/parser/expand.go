package parser

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"go.creack.net/redcode/op"
)

// Expand resolves all symbolic content: EQU constants are textually
// substituted, labels are replaced by offsets relative to the referencing
// instruction and the origin is reduced to a numeric instruction index.
//
// EQU definitions are expanded to a fixed point before substitution, so a
// definition may reference other definitions in any order. A definition
// that transitively references itself is a CircularDefinition error.
func (c Cleaned) Expand() (Expanded, error) {
	out := Expanded{
		name:        c.name,
		Metadata:    c.Metadata,
		Diagnostics: c.Diagnostics,
	}

	labels := map[string]int{}
	defs := map[string]string{}
	defLines := map[string]int{}

	// Pass 1: collect label and EQU bindings, dropping the declaration
	// lines. The instruction index only advances on instruction lines.
	var kept []SourceLine
	index := 0
	for _, line := range c.Lines {
		fields := strings.Fields(line.Text)

		// 'EQU name value' and the classic 'name EQU value' are both
		// accepted.
		if po, ok := op.ParsePseudoOpcode(fields[0]); ok && po == op.Equ {
			if len(fields) < 2 {
				return Expanded{}, &Error{Kind: MalformedInstruction, Line: line.Num, Token: line.Text}
			}
			defs[fields[1]] = strings.Join(fields[2:], " ")
			defLines[fields[1]] = line.Num
			continue
		}
		if len(fields) >= 2 {
			if po, ok := op.ParsePseudoOpcode(fields[1]); ok && po == op.Equ {
				defs[fields[0]] = strings.Join(fields[2:], " ")
				defLines[fields[0]] = line.Num
				continue
			}
		}

		// ORG/END lines pass through untouched, they carry no fields to
		// resolve and do not consume an instruction index.
		if po, ok := op.ParsePseudoOpcode(fields[0]); ok && (po == op.Org || po == op.End) {
			kept = append(kept, line)
			continue
		}

		// Locate the operation token. Identifiers before it are label
		// declarations for the current instruction index; a line made of
		// identifiers only binds them to the index of the next instruction.
		opIdx, labelsOnly := -1, true
		for i, tok := range fields {
			if isOperation(tok) {
				opIdx, labelsOnly = i, false
				break
			}
			if !isLabelToken(tok) {
				labelsOnly = false
				break
			}
		}

		if opIdx < 0 && !labelsOnly {
			// Not instruction-shaped, leave it for the deserializer to
			// reject with a proper error.
			kept = append(kept, line)
			continue
		}

		declared := fields
		if opIdx >= 0 {
			declared = fields[:opIdx]
		}
		for _, name := range declared {
			if _, ok := labels[name]; ok {
				out.Diagnostics = append(out.Diagnostics, Diagnostic{
					Line:    line.Num,
					Message: fmt.Sprintf("label %q already defined, first definition kept", name),
				})
				continue
			}
			labels[name] = index
		}
		if opIdx < 0 {
			// Label-only line, removed from the stream.
			continue
		}

		if opIdx > 0 {
			line = SourceLine{Text: strings.Join(fields[opIdx:], " "), Num: line.Num}
		}
		index++
		kept = append(kept, line)
	}

	// Expand the EQU definitions themselves to a fixed point, detecting
	// cycles, so the substitution pass below is a single rewrite.
	for name := range defs {
		expanded, err := expandDef(name, defs, defLines, map[string]bool{})
		if err != nil {
			return Expanded{}, err
		}
		defs[name] = expanded
	}

	// Pass 2: substitute. EQU replacement happens before label resolution,
	// so a constant may name a label.
	index = 0
	for i, line := range kept {
		fields := strings.Fields(line.Text)
		if _, ok := op.ParsePseudoOpcode(fields[0]); ok {
			continue
		}
		if !isOperation(fields[0]) {
			continue
		}

		operands := strings.TrimSpace(strings.TrimPrefix(line.Text, fields[0]))
		operands, err := substituteSymbols(operands, func(id string) (string, error) {
			if value, ok := defs[id]; ok {
				return value, nil
			}
			return id, nil
		})
		if err != nil {
			return Expanded{}, err
		}
		operands, err = substituteSymbols(operands, func(id string) (string, error) {
			target, ok := labels[id]
			if !ok {
				return "", &Error{Kind: UnknownSymbol, Line: line.Num, Token: id}
			}
			return strconv.Itoa(target - index), nil
		})
		if err != nil {
			return Expanded{}, err
		}

		kept[i] = SourceLine{Text: fields[0] + " " + operands, Num: line.Num}
		index++
	}
	out.Lines = kept

	// Reduce the origin to a numeric index: EQU substitution first, then a
	// label lookup (absolute, not relative), then a literal.
	if origin := out.Metadata.Origin; origin != "" {
		if value, ok := defs[origin]; ok {
			origin = strings.TrimSpace(value)
		}
		if target, ok := labels[origin]; ok {
			out.Origin = target
		} else {
			n, err := strconv.Atoi(origin)
			if err != nil {
				return Expanded{}, &Error{Kind: UnknownSymbol, Line: out.Metadata.OriginLine, Token: origin}
			}
			out.Origin = n
		}
		out.Metadata.Origin = strconv.Itoa(out.Origin)
	}

	return out, nil
}

// expandDef resolves the EQU definition name to a fixed point.
func expandDef(name string, defs map[string]string, defLines map[string]int, visiting map[string]bool) (string, error) {
	if visiting[name] {
		return "", &Error{Kind: CircularDefinition, Line: defLines[name], Token: name}
	}
	visiting[name] = true
	defer delete(visiting, name)

	return substituteSymbols(defs[name], func(id string) (string, error) {
		if _, ok := defs[id]; !ok {
			return id, nil
		}
		return expandDef(id, defs, defLines, visiting)
	})
}

// substituteSymbols rewrites every identifier-shaped token in text through
// f, leaving everything else untouched. A token starting with a digit is
// not an identifier.
func substituteSymbols(text string, f func(id string) (string, error)) (string, error) {
	out := &strings.Builder{}
	for i := 0; i < len(text); {
		if !strings.ContainsRune(op.LabelChars, rune(text[i])) {
			out.WriteByte(text[i])
			i++
			continue
		}
		j := i
		for j < len(text) && strings.ContainsRune(op.LabelChars, rune(text[j])) {
			j++
		}
		token := text[i:j]
		i = j
		if unicode.IsDigit(rune(token[0])) {
			out.WriteString(token)
			continue
		}
		replacement, err := f(token)
		if err != nil {
			return "", err
		}
		out.WriteString(replacement)
	}
	return out.String(), nil
}

// isLabelToken reports whether the token is a label declaration: an
// identifier that is not a mnemonic, a mnemonic with a modifier suffix, or
// a directive keyword.
func isLabelToken(token string) bool {
	if unicode.IsDigit(rune(token[0])) {
		return false
	}
	for _, r := range token {
		if !strings.ContainsRune(op.LabelChars, r) {
			return false
		}
	}
	if isOperation(token) {
		return false
	}
	_, ok := op.ParsePseudoOpcode(token)
	return !ok
}

// isOperation reports whether the token is a mnemonic,
// optionally carrying a '.modifier' suffix.
func isOperation(token string) bool {
	name, _, _ := strings.Cut(token, string(op.ModifierChar))
	_, ok := op.ParseOpcode(name)
	return ok
}
