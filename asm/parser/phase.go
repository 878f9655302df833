// Package parser implements the multi-phase Redcode translation pipeline:
// cleaning, symbol expansion and grammar-driven deserialization.
//
// Each phase is a typed state consumed by a one-shot transition method, so
// the compiler enforces the phase ordering: a Raw buffer can only be
// Cleaned, only a Cleaned state can be Expanded, only an Expanded state can
// be Deserialized.
package parser

import "go.creack.net/redcode/core"

// SourceLine is a cleaned logical source line, paired with its 1-based
// physical line number so later phases can report accurate positions.
type SourceLine struct {
	Text string
	Num  int
}

// MetadataTags are the comment tags recognized by the cleaner.
var MetadataTags = []string{"redcode", "name", "author", "date", "version", "assertion"}

// Metadata holds the structured information embedded in a warrior's
// comments, plus the origin set by the ORG/END directives.
type Metadata struct {
	// Tags maps a recognized comment tag to its value. A tag present with
	// an empty value (e.g. a bare ";redcode") is distinct from an absent
	// tag.
	Tags map[string]string

	// Origin is the warrior entry point. Possibly still a label name after
	// cleaning, always numeric after expansion. Empty when no ORG/END
	// directive carried a value.
	Origin string

	// OriginLine is the source line the origin was set on.
	OriginLine int
}

// Tag returns the value of a recognized comment tag and whether it was set.
func (m Metadata) Tag(name string) (string, bool) {
	v, ok := m.Tags[name]
	return v, ok
}

// Raw wraps the original source text verbatim.
type Raw struct {
	name   string
	buffer string
}

// NewRaw wraps the given warrior source. The name is used only in error
// reports; if the source comes from a file, it should be the file name.
func NewRaw(name, buffer string) Raw {
	return Raw{name: name, buffer: buffer}
}

// Cleaned is the state after comments have been stripped, metadata
// extracted and the origin directives validated. Cleaning is total, so
// there is no error path into this state.
type Cleaned struct {
	name        string
	Lines       []SourceLine
	Metadata    Metadata
	Diagnostics []Diagnostic
}

// Expanded is the state after all symbolic content has been resolved:
// EQU constants substituted, labels replaced by position-relative offsets
// and the origin reduced to a numeric instruction index.
type Expanded struct {
	name        string
	Lines       []SourceLine
	Metadata    Metadata
	Diagnostics []Diagnostic
	Origin      int
}

// Deserialized is the final state: the typed instruction records.
type Deserialized struct {
	Instructions []core.Instruction
	Metadata     Metadata
	Diagnostics  []Diagnostic
	Origin       int
}
