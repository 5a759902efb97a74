// Package document reads XML input into an element tree using etree.
package document

import (
	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"

	"github.com/arthur-debert/xml2conf/pkg/errors"
)

// Parse reads a complete XML document and returns its root element.
//
// Malformed input, an empty document, a document with more than one
// top-level element and an element repeating an attribute all fail with
// errors.ErrXMLMalformed. The parser's own message is kept as the error text.
// Documents declaring a non-UTF-8 encoding are decoded to UTF-8.
func Parse(data []byte) (*etree.Element, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.ValidateInput = true
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	doc.ReadSettings.PreserveDuplicateAttrs = true

	if err := doc.ReadFromBytes(data); err != nil {
		return nil, errors.Wrap(err, errors.ErrXMLMalformed, "")
	}

	roots := doc.ChildElements()
	switch len(roots) {
	case 0:
		return nil, errors.New(errors.ErrXMLMalformed, "no element found")
	case 1:
		if err := checkAttributes(roots[0]); err != nil {
			return nil, err
		}
		return roots[0], nil
	default:
		return nil, errors.Newf(errors.ErrXMLMalformed, "junk after document element: <%s>", roots[1].FullTag()).
			WithDetail("tag", roots[1].FullTag())
	}
}

// checkAttributes rejects any element in the subtree that carries the same
// attribute name twice.
func checkAttributes(e *etree.Element) error {
	if len(e.Attr) > 1 {
		seen := make(map[string]bool, len(e.Attr))
		for _, a := range e.Attr {
			key := a.FullKey()
			if seen[key] {
				return errors.Newf(errors.ErrXMLMalformed, "duplicate attribute: %s on <%s>", key, e.FullTag()).
					WithDetail("attribute", key).
					WithDetail("path", e.GetPath())
			}
			seen[key] = true
		}
	}
	for _, child := range e.ChildElements() {
		if err := checkAttributes(child); err != nil {
			return err
		}
	}
	return nil
}

// Describe serializes an element and its subtree back to XML text, for use
// in error messages.
func Describe(e *etree.Element) string {
	doc := etree.NewDocument()
	doc.SetRoot(e.Copy())
	s, err := doc.WriteToString()
	if err != nil {
		return "<" + e.FullTag() + ">"
	}
	return s
}
