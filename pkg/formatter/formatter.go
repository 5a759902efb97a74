// Package formatter renders the configuration value model as text in the
// `key = value;` configuration language.
//
// The root mapping is written as a bare list of entries. Nested mappings are
// wrapped in braces and every nesting level adds one indentation step:
//
//	timeout = 30;
//	settings = {
//	    theme = dark;
//	    fonts = {
//	        size = 14;
//	    };
//	};
package formatter

import (
	"strings"

	"github.com/arthur-debert/xml2conf/pkg/types"
)

// DefaultIndent is the number of spaces added per nesting level
const DefaultIndent = 4

// Formatter renders mappings with a fixed indentation step
type Formatter struct {
	indent string
}

// New creates a Formatter indenting nested entries by width spaces per level.
// Non-positive widths fall back to DefaultIndent.
func New(width int) *Formatter {
	if width <= 0 {
		width = DefaultIndent
	}
	return &Formatter{indent: strings.Repeat(" ", width)}
}

// Format renders root with the default indentation
func Format(root *types.Mapping) string {
	return New(DefaultIndent).Format(root)
}

// Format renders root as a sequence of top-level entries, each terminated by
// ";" and a newline.
func (f *Formatter) Format(root *types.Mapping) string {
	var b strings.Builder
	for _, e := range root.Entries() {
		b.WriteString(e.Key)
		b.WriteString(" = ")
		f.writeValue(&b, e.Value, 1)
		b.WriteString(";\n")
	}
	return b.String()
}

// writeValue renders v; depth is the nesting level of v's own entries.
func (f *Formatter) writeValue(b *strings.Builder, v types.Value, depth int) {
	switch val := v.(type) {
	case *types.Mapping:
		b.WriteString("{\n")
		prefix := strings.Repeat(f.indent, depth)
		for _, e := range val.Entries() {
			b.WriteString(prefix)
			b.WriteString(e.Key)
			b.WriteString(" = ")
			f.writeValue(b, e.Value, depth+1)
			b.WriteString(";\n")
		}
		b.WriteString(strings.Repeat(f.indent, depth-1))
		b.WriteString("}")
	case types.Integer:
		b.WriteString(val.String())
	case types.Text:
		b.WriteString(string(val))
	}
}
