package logging

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/adrg/xdg"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// logFileName is the log file location relative to the XDG state directory
const logFileName = "xml2conf/xml2conf.log"

var (
	// logFile is the open log file, if any; Close releases it
	logFile *os.File

	// consoleOnly is the console writer of the current setup
	consoleOnly io.Writer = os.Stderr
)

// Options controls where log output goes
type Options struct {
	// ToFile additionally appends logs to the file under XDG_STATE_HOME
	ToFile bool

	// Console overrides the console destination (stderr by default)
	Console io.Writer
}

// SetupLogger configures the global logger based on verbosity level
func SetupLogger(verbosity int, opts Options) {
	_ = Close()
	zerolog.SetGlobalLevel(levelFor(verbosity))

	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        console,
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(console),
	}

	consoleOnly = consoleWriter

	var writers []io.Writer
	writers = append(writers, consoleWriter)

	var logPath string
	var fileErr error
	if opts.ToFile {
		var handle *os.File
		logPath, handle, fileErr = openLogFile()
		if fileErr == nil {
			logFile = handle
			writers = append(writers, handle)
		}
	}

	multi := io.MultiWriter(writers...)
	log.Logger = zerolog.New(multi).With().Timestamp().Logger()

	if fileErr != nil {
		log.Warn().Err(fileErr).Str("path", logPath).Msg("Failed to create log file, logging to console only")
	}

	// Add caller information for debug and trace levels
	if verbosity >= 2 {
		log.Logger = log.Logger.With().Caller().Logger()
	}

	log.Debug().Int("verbosity", verbosity).Str("logFile", logPath).Msg("Logger initialized")
}

// Close releases the log file opened by SetupLogger. Logging continues on
// the console only.
func Close() error {
	if logFile == nil {
		return nil
	}
	err := logFile.Close()
	logFile = nil
	log.Logger = log.Logger.Output(consoleOnly)
	return err
}

func levelFor(verbosity int) zerolog.Level {
	switch {
	case verbosity <= 0:
		return zerolog.WarnLevel
	case verbosity == 1:
		return zerolog.InfoLevel
	case verbosity == 2:
		return zerolog.DebugLevel
	default:
		return zerolog.TraceLevel
	}
}

// GetLogger returns a contextualized logger with the given name
func GetLogger(name string) zerolog.Logger {
	return log.With().Str("component", name).Logger()
}

// LogOperationStart logs the start of an operation and returns a function to log its completion
func LogOperationStart(logger zerolog.Logger, operation string) func() {
	start := time.Now()
	logger.Debug().
		Str("operation", operation).
		Msg("Operation started")

	return func() {
		logger.Debug().
			Str("operation", operation).
			Dur("duration", time.Since(start)).
			Msg("Operation completed")
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// openLogFile resolves the log path, creating parent directories, and
// opens it in append mode
func openLogFile() (string, *os.File, error) {
	path, err := xdg.StateFile(logFileName)
	if err != nil {
		return "", nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return path, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return path, file, nil
}
