package builder

import (
	"github.com/beevik/etree"

	"github.com/arthur-debert/xml2conf/pkg/document"
	"github.com/arthur-debert/xml2conf/pkg/errors"
	"github.com/arthur-debert/xml2conf/pkg/logging"
	"github.com/arthur-debert/xml2conf/pkg/types"
)

const (
	tagConfiguration = "configuration"
	tagDictionary    = "dictionary"
	tagEntry         = "entry"
	attrName         = "name"
)

// BuildDictionary builds an ordered mapping from the <entry> children of a
// <dictionary> element, in document order. A repeated name replaces the
// earlier value and keeps the earlier position.
func BuildDictionary(dict *etree.Element) (*types.Mapping, error) {
	logger := logging.GetLogger("builder")
	result := types.NewMapping()

	for _, entry := range dict.ChildElements() {
		nameAttr := entry.SelectAttr(attrName)
		if entry.FullTag() != tagEntry || nameAttr == nil {
			return nil, errors.Newf(errors.ErrInvalidEntry, "Invalid dictionary entry: %s", document.Describe(entry)).
				WithDetail("tag", entry.FullTag()).
				WithDetail("path", entry.GetPath())
		}

		name := nameAttr.Value
		if err := ValidateName(name); err != nil {
			return nil, err
		}

		value, err := InterpretValue(entry)
		if err != nil {
			return nil, err
		}

		if replaced := result.Set(name, value); replaced {
			logger.Debug().
				Str("name", name).
				Str("path", entry.GetPath()).
				Msg("Duplicate entry name, later value wins")
		}
		logger.Trace().
			Str("name", name).
			Str("kind", value.Kind().String()).
			Msg("Entry added")
	}

	return result, nil
}
