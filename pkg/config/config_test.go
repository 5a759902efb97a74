package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"

	"github.com/adrg/xdg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/xml2conf/pkg/errors"
	"github.com/arthur-debert/xml2conf/pkg/filesystem"
)

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		s, err := Load(LoadOptions{})
		require.NoError(t, err)

		assert.Equal(t, 4, s.Format.Indent)
		assert.Equal(t, "0644", s.Output.FileMode)
		assert.False(t, s.Log.ToFile)

		mode, err := s.FileMode()
		require.NoError(t, err)
		assert.Equal(t, fs.FileMode(0644), mode)
	})

	t.Run("explicit_config_file_overrides_defaults", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "xml2conf.toml", `
[format]
indent = 2

[output]
file_mode = "0600"
`)
		s, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, 2, s.Format.Indent)
		assert.Equal(t, "0600", s.Output.FileMode)
		assert.False(t, s.Log.ToFile, "untouched keys keep their defaults")
		assert.Equal(t, []string{path}, s.Sources)
	})

	t.Run("environment_overrides_file", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "xml2conf.toml", "[format]\nindent = 2\n")
		t.Setenv("XML2CONF_FORMAT_INDENT", "8")
		t.Setenv("XML2CONF_OUTPUT_FILE_MODE", "0640")
		t.Setenv("XML2CONF_LOG_TO_FILE", "true")

		s, err := Load(LoadOptions{ConfigFile: path})
		require.NoError(t, err)

		assert.Equal(t, 8, s.Format.Indent)
		assert.Equal(t, "0640", s.Output.FileMode)
		assert.True(t, s.Log.ToFile)
	})

	t.Run("user_config_is_searched", func(t *testing.T) {
		t.Cleanup(xdg.Reload)
		configHome := t.TempDir()
		t.Setenv("XDG_CONFIG_HOME", configHome)
		xdg.Reload()
		writeConfig(t, configHome, UserConfigFile, "[format]\nindent = 3\n")

		s, err := Load(LoadOptions{SearchUserConfig: true})
		require.NoError(t, err)
		assert.Equal(t, 3, s.Format.Indent)
		assert.Equal(t, []string{filepath.Join(configHome, UserConfigFile)}, s.Sources)

		s, err = Load(LoadOptions{})
		require.NoError(t, err)
		assert.Equal(t, 4, s.Format.Indent, "user config is ignored unless requested")
	})

	t.Run("missing_explicit_file", func(t *testing.T) {
		_, err := Load(LoadOptions{ConfigFile: filepath.Join(t.TempDir(), "nope.toml")})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("unknown_key_rejected", func(t *testing.T) {
		path := writeConfig(t, t.TempDir(), "xml2conf.toml", "[format]\nindnet = 2\n")

		_, err := Load(LoadOptions{ConfigFile: path})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
		assert.Contains(t, err.Error(), "indnet")
	})

	t.Run("out_of_range_indent", func(t *testing.T) {
		t.Setenv("XML2CONF_FORMAT_INDENT", "0")

		_, err := Load(LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
		assert.Contains(t, err.Error(), "format.indent")
	})

	t.Run("bad_file_mode", func(t *testing.T) {
		t.Setenv("XML2CONF_OUTPUT_FILE_MODE", "rw-r--r--")

		_, err := Load(LoadOptions{})
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigInvalid))
	})
}

func TestCheckFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{name: "empty", content: "", wantErr: false},
		{name: "defaults", content: GetDefaultConfigContent(), wantErr: false},
		{name: "unknown_section", content: "[colors]\nerror = \"red\"\n", wantErr: true},
		{name: "wrong_type", content: "[format]\nindent = \"four\"\n", wantErr: true},
		{name: "integer_file_mode", content: "[output]\nfile_mode = 0o644\n", wantErr: true},
		{name: "syntax_error", content: "[format\nindent = 2\n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CheckFile([]byte(tt.content))
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[format]")
	assert.Contains(t, content, "# indent = 4")
	assert.Contains(t, content, `# file_mode = "0644"`)
	assert.Contains(t, content, "# to_file = false")
	assert.NotContains(t, content, "\nindent = 4")

	// a commented-out file loads as pure defaults
	assert.NoError(t, CheckFile([]byte(content)))
}

func TestCommentOutConfigValues(t *testing.T) {
	in := "# title\n\n[section]\n  key = 1\n"
	want := "# title\n\n[section]\n#   key = 1\n"
	assert.Equal(t, want, commentOutConfigValues(in))
}

func TestWriteUserConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	xdg.Reload()
	t.Cleanup(xdg.Reload)

	fsys := filesystem.NewMemoryFS()

	path, err := WriteUserConfig(fsys)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(xdg.ConfigHome, UserConfigFile), path)

	data, err := fsys.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GenerateConfigContent(), string(data))

	_, err = WriteUserConfig(fsys)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	assert.Contains(t, err.Error(), "already exists")
}
