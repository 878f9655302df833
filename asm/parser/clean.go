package parser

import (
	"fmt"
	"slices"
	"strings"
	"unicode"

	"go.creack.net/redcode/op"
)

// Clean strips comments, extracts the tagged metadata embedded in them and
// validates the ORG/END directives. Cleaning never fails: conflicting or
// incomplete directives only produce diagnostics.
func (r Raw) Clean() Cleaned {
	out := Cleaned{
		name:     r.name,
		Metadata: Metadata{Tags: map[string]string{}},
	}

	for i, physical := range strings.Split(r.buffer, "\n") {
		num := i + 1

		code, comment, hasComment := strings.Cut(physical, string(op.CommentChar))
		if hasComment {
			// The first whitespace-delimited token of a comment may be a
			// recognized metadata tag. Last occurrence wins.
			tag := strings.TrimSpace(comment)
			value := ""
			if i := strings.IndexFunc(tag, unicode.IsSpace); i >= 0 {
				tag, value = tag[:i], strings.TrimSpace(tag[i+1:])
			}
			if slices.Contains(MetadataTags, tag) {
				out.Metadata.Tags[tag] = value
			}
		}

		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}

		fields := strings.Fields(code)
		switch strings.ToUpper(fields[0]) {
		case op.Org.String(), op.End.String():
			if len(fields) < 2 {
				if strings.ToUpper(fields[0]) == op.Org.String() {
					// ORG requires an argument. Drop the line, keep going.
					out.Diagnostics = append(out.Diagnostics, Diagnostic{
						Line:    num,
						Message: "ORG must have an argument",
					})
					continue
				}
				// A bare END is fine, it only marks the end of the source.
				break
			}
			if out.Metadata.Origin != "" {
				// First write wins. Drop the conflicting line.
				out.Diagnostics = append(out.Diagnostics, Diagnostic{
					Line: num,
					Message: fmt.Sprintf("origin already defined as %q, new definition %q ignored",
						out.Metadata.Origin, fields[1]),
				})
				continue
			}
			out.Metadata.Origin = fields[1]
			out.Metadata.OriginLine = num
		}

		out.Lines = append(out.Lines, SourceLine{Text: code, Num: num})
	}

	return out
}
