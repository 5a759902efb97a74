package builder

import (
	"strings"

	"github.com/beevik/etree"

	"github.com/arthur-debert/xml2conf/pkg/document"
	"github.com/arthur-debert/xml2conf/pkg/errors"
	"github.com/arthur-debert/xml2conf/pkg/types"
)

// InterpretValue determines the value carried by an <entry> element.
// Rules are tried in order:
//  1. a child element: only the first one is considered and it must be a
//     <dictionary>, which becomes a nested mapping
//  2. trimmed text made of ASCII digits becomes an Integer
//  3. any other non-blank text becomes Text
//  4. anything else is an invalid value
func InterpretValue(entry *etree.Element) (types.Value, error) {
	if children := entry.ChildElements(); len(children) > 0 {
		child := children[0]
		if child.FullTag() != tagDictionary {
			return nil, errors.Newf(errors.ErrUnsupportedNested,
				"Unsupported nested element in entry: %s", document.Describe(entry)).
				WithDetail("tag", child.FullTag()).
				WithDetail("path", child.GetPath())
		}
		return BuildDictionary(child)
	}

	text := strings.TrimSpace(textContent(entry))
	if text == "" {
		return nil, errors.Newf(errors.ErrInvalidValue, "Invalid value for element '%s'", entry.FullTag()).
			WithDetail("tag", entry.FullTag()).
			WithDetail("path", entry.GetPath())
	}

	if n, ok := types.ParseInteger(text); ok {
		return n, nil
	}
	return types.Text(text), nil
}

// textContent joins the character data of e, skipping comments and
// processing instructions that interrupt it. etree's Text stops at the first
// such token.
func textContent(e *etree.Element) string {
	var b strings.Builder
	for _, tok := range e.Child {
		if cd, ok := tok.(*etree.CharData); ok {
			b.WriteString(cd.Data)
		}
	}
	return b.String()
}
