package builder

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/xml2conf/pkg/errors"
	"github.com/arthur-debert/xml2conf/pkg/types"
)

// MsgMissingDictionary is reported when <configuration> has no <dictionary> child.
const MsgMissingDictionary = "Missing required <dictionary> element in <configuration>"

// ParseConfiguration validates the document root and builds the root mapping
// from its first direct <dictionary> child.
func ParseConfiguration(root *etree.Element) (*types.Mapping, error) {
	if root == nil || root.FullTag() != tagConfiguration {
		tag := ""
		if root != nil {
			tag = root.FullTag()
		}
		return nil, errors.New(errors.ErrInvalidRoot, "Root element must be <configuration>").
			WithDetail("tag", tag)
	}

	for _, child := range root.ChildElements() {
		if child.FullTag() == tagDictionary {
			return BuildDictionary(child)
		}
	}

	return nil, errors.New(errors.ErrMissingDictionary, MsgMissingDictionary)
}
