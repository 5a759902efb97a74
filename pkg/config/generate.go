package config

import (
	"strings"

	"github.com/adrg/xdg"

	"github.com/arthur-debert/xml2conf/pkg/errors"
	"github.com/arthur-debert/xml2conf/pkg/types"
)

// GenerateConfigContent generates the configuration file content with commented values
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultConfigContent())
}

// commentOutConfigValues takes the TOML content and comments out all non-comment, non-blank lines
// that contain configuration values (assignments)
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	var result []string

	for _, line := range lines {
		trimmed := strings.TrimSpace(line)

		// Keep blank lines as-is
		if trimmed == "" {
			result = append(result, line)
			continue
		}

		// Keep lines that are already comments
		if strings.HasPrefix(trimmed, "#") {
			result = append(result, line)
			continue
		}

		// Keep section headers (e.g., [format], [output]) as-is
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			result = append(result, line)
			continue
		}

		result = append(result, "# "+line)
	}

	return strings.Join(result, "\n")
}

// WriteUserConfig writes the commented defaults to the user config location
// and returns its path. An existing file is never overwritten.
func WriteUserConfig(fsys types.FS) (string, error) {
	path, err := xdg.ConfigFile(UserConfigFile)
	if err != nil {
		return "", errors.Wrap(err, errors.ErrFileWrite, "failed to resolve config directory")
	}

	if _, err := fsys.Stat(path); err == nil {
		return path, errors.Newf(errors.ErrInvalidInput, "config file already exists: %s", path).
			WithDetail("path", path)
	}

	if err := fsys.WriteFile(path, []byte(GenerateConfigContent()), 0644); err != nil {
		return path, errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}
	return path, nil
}
