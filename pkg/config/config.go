package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml2 "github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/xml2conf/pkg/errors"
)

const (
	// EnvPrefix is the prefix of environment variables read as settings
	EnvPrefix = "XML2CONF_"

	// UserConfigFile is the user config location relative to XDG_CONFIG_HOME
	UserConfigFile = "xml2conf/config.toml"

	maxIndent = 16
)

// Settings is the resolved configuration
type Settings struct {
	Format FormatSettings `koanf:"format" toml:"format"`
	Output OutputSettings `koanf:"output" toml:"output"`
	Log    LogSettings    `koanf:"log" toml:"log"`

	// Sources lists the config files layered over the defaults, in order
	Sources []string `koanf:"-" toml:"-"`
}

// FormatSettings controls text rendering
type FormatSettings struct {
	Indent int `koanf:"indent" toml:"indent"`
}

// OutputSettings controls how the output file is written
type OutputSettings struct {
	FileMode string `koanf:"file_mode" toml:"file_mode"`
}

// LogSettings controls log destinations
type LogSettings struct {
	ToFile bool `koanf:"to_file" toml:"to_file"`
}

// LoadOptions selects the sources layered on top of the defaults
type LoadOptions struct {
	// ConfigFile is an explicit config file; it must exist when set
	ConfigFile string

	// SearchUserConfig enables loading $XDG_CONFIG_HOME/xml2conf/config.toml
	SearchUserConfig bool
}

// Load resolves settings from defaults, config files and the environment
func Load(opts LoadOptions) (*Settings, error) {
	k := koanf.New(".")
	var sources []string

	// 1. Load system defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. Load user config if it exists
	if opts.SearchUserConfig {
		if path, err := xdg.SearchConfigFile(UserConfigFile); err == nil {
			if err := loadFile(k, path); err != nil {
				return nil, err
			}
			sources = append(sources, path)
		}
	}

	// 3. Load explicit config file
	if opts.ConfigFile != "" {
		if err := loadFile(k, opts.ConfigFile); err != nil {
			return nil, err
		}
		sources = append(sources, opts.ConfigFile)
	}

	// 4. Environment overrides: XML2CONF_FORMAT_INDENT -> format.indent
	envProvider := env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(key, "_", ".", 1)
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment")
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigInvalid, "invalid configuration")
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	s.Sources = sources
	return &s, nil
}

// loadFile checks a config file strictly and layers it into k
func loadFile(k *koanf.Koanf, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to read config file %s", path)
	}
	if err := CheckFile(data); err != nil {
		return errors.Wrapf(err, errors.ErrConfigInvalid, "invalid config file %s", path)
	}
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return errors.Wrapf(err, errors.ErrConfigLoad, "failed to load config file %s", path)
	}
	return nil
}

// CheckFile decodes TOML config content in strict mode, rejecting unknown
// keys and mistyped values.
func CheckFile(data []byte) error {
	var s Settings
	dec := toml2.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&s); err != nil {
		var strict *toml2.StrictMissingError
		if stderrors.As(err, &strict) {
			keys := make([]string, 0, len(strict.Errors))
			for _, e := range strict.Errors {
				row, _ := e.Position()
				keys = append(keys, fmt.Sprintf("%s (line %d)", strings.Join(e.Key(), "."), row))
			}
			return errors.Newf(errors.ErrConfigInvalid, "unknown keys: %s", strings.Join(keys, ", "))
		}
		return err
	}
	return nil
}

// Validate checks value ranges
func (s *Settings) Validate() error {
	if s.Format.Indent < 1 || s.Format.Indent > maxIndent {
		return errors.Newf(errors.ErrConfigInvalid, "format.indent must be between 1 and %d, got %d", maxIndent, s.Format.Indent).
			WithDetail("key", "format.indent")
	}
	if _, err := s.FileMode(); err != nil {
		return err
	}
	return nil
}

// FileMode parses output.file_mode as octal permissions
func (s *Settings) FileMode() (fs.FileMode, error) {
	mode, err := strconv.ParseUint(s.Output.FileMode, 8, 32)
	if err != nil || mode > 0777 {
		return 0, errors.Newf(errors.ErrConfigInvalid, "output.file_mode must be an octal permission such as \"0644\", got %q", s.Output.FileMode).
			WithDetail("key", "output.file_mode")
	}
	return fs.FileMode(mode), nil
}
