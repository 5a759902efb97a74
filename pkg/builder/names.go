package builder

import (
	"regexp"

	"github.com/arthur-debert/xml2conf/pkg/errors"
)

// namePattern is the grammar of a key name.
var namePattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// ValidateName checks that name starts with a lowercase ASCII letter
// followed only by lowercase letters, digits or underscores.
func ValidateName(name string) error {
	if !namePattern.MatchString(name) {
		return errors.Newf(errors.ErrInvalidName, "Invalid name: '%s'", name).
			WithDetail("name", name)
	}
	return nil
}
