package config

import (
	"fmt"
	"io"
	"os"

	"github.com/untillpro/goutils/logger"
)

const logName = "Extractor"

// SetupLogging routes log lines to logPath, or to fallback when logPath is
// empty. Verbose enables every level, otherwise only warnings and errors are
// written. The returned function closes the log file.
func SetupLogging(logPath string, verbose bool, fallback io.Writer) (func() error, error) {
	w := fallback
	closer := func() error { return nil }

	if logPath != "" {
		f, err := os.Create(logPath)
		if err != nil {
			return nil, fmt.Errorf("failed to create log file %s: %w", logPath, err)
		}

		w = f
		closer = f.Close
	}

	if verbose {
		logger.SetLogLevel(logger.LogLevelVerbose)
	} else {
		logger.SetLogLevel(logger.LogLevelWarning)
	}

	logger.PrintLine = func(level logger.TLogLevel, line string) {
		fmt.Fprintf(w, "%s [%s]: %s\n", logName, levelName(level), line)
	}

	return closer, nil
}

func levelName(level logger.TLogLevel) string {
	switch level {
	case logger.LogLevelError:
		return "ERROR"
	case logger.LogLevelWarning:
		return "WARN"
	case logger.LogLevelInfo:
		return "INFO"
	case logger.LogLevelVerbose:
		return "DEBUG"
	default:
		return "NONE"
	}
}
