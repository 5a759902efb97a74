package core

import (
	"io/fs"

	"github.com/arthur-debert/xml2conf/pkg/builder"
	"github.com/arthur-debert/xml2conf/pkg/document"
	"github.com/arthur-debert/xml2conf/pkg/errors"
	"github.com/arthur-debert/xml2conf/pkg/filesystem"
	"github.com/arthur-debert/xml2conf/pkg/formatter"
	"github.com/arthur-debert/xml2conf/pkg/logging"
	"github.com/arthur-debert/xml2conf/pkg/types"
)

// DefaultFileMode is used for new output files when no mode is configured
const DefaultFileMode fs.FileMode = 0644

// TranslateOptions defines the options for the Translate command.
type TranslateOptions struct {
	// InputPath is the XML document to translate.
	InputPath string
	// OutputPath is the destination file; it is overwritten if it exists.
	OutputPath string
	// DryRun renders the output without writing the destination.
	DryRun bool
	// Indent is the number of spaces per nesting level (formatter default when 0).
	Indent int
	// FileMode is the permission of a newly written output file (DefaultFileMode when 0).
	FileMode fs.FileMode
	// FS is the filesystem to use (the OS filesystem when nil).
	FS types.FS
}

// TranslateResult describes a completed translation
type TranslateResult struct {
	OutputPath string
	Output     string
	Entries    int
	DryRun     bool
	Written    bool
}

// Translate reads an XML document, converts it and writes the rendered text
// to the output path.
func Translate(opts TranslateOptions) (*TranslateResult, error) {
	logger := logging.GetLogger("core.translate")
	done := logging.LogOperationStart(logger, "translate")
	defer done()

	if opts.InputPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "input path is required")
	}
	if opts.OutputPath == "" && !opts.DryRun {
		return nil, errors.New(errors.ErrInvalidInput, "output path is required")
	}

	fsys := opts.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}

	data, err := fsys.ReadFile(opts.InputPath)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrFileRead, "failed to read input").
			WithDetail("path", opts.InputPath)
	}
	logger.Debug().Str("input", opts.InputPath).Int("bytes", len(data)).Msg("Input read")

	root, err := BuildConfiguration(data)
	if err != nil {
		return nil, err
	}

	output := formatter.New(opts.Indent).Format(root)
	result := &TranslateResult{
		OutputPath: opts.OutputPath,
		Output:     output,
		Entries:    root.Len(),
		DryRun:     opts.DryRun,
	}

	if opts.DryRun {
		logger.Info().Str("output", opts.OutputPath).Msg("Dry run, output not written")
		return result, nil
	}

	mode := opts.FileMode
	if mode == 0 {
		mode = DefaultFileMode
	}
	if err := fsys.WriteFile(opts.OutputPath, []byte(output), mode); err != nil {
		return nil, errors.Wrap(err, errors.ErrFileWrite, "failed to write output").
			WithDetail("path", opts.OutputPath)
	}
	result.Written = true

	logger.Info().
		Str("input", opts.InputPath).
		Str("output", opts.OutputPath).
		Int("entries", result.Entries).
		Msg("Translation written")

	return result, nil
}

// BuildConfiguration parses XML content and builds the root mapping
func BuildConfiguration(data []byte) (*types.Mapping, error) {
	logger := logging.GetLogger("core.build")

	root, err := document.Parse(data)
	if err != nil {
		logger.Debug().Err(err).Msg("XML parsing failed")
		return nil, err
	}

	mapping, err := builder.ParseConfiguration(root)
	if err != nil {
		logger.Debug().
			Err(err).
			Str("code", string(errors.GetErrorCode(err))).
			Interface("details", errors.GetErrorDetails(err)).
			Msg("Configuration rejected")
		return nil, err
	}
	return mapping, nil
}
