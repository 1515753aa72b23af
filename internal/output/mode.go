package output

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"def-extractor/internal/common"
)

// Mode selects where the serialized document goes.
type Mode int

const (
	// ModeStdout prints the document as text followed by a newline.
	ModeStdout Mode = iota
	// ModeStdoutBytes writes the raw UTF-8 bytes without a trailing newline.
	ModeStdoutBytes
	// ModeFile writes the document to a file path.
	ModeFile
)

// ErrUnknownMode is returned for output modes that are neither a name nor a number.
var ErrUnknownMode = errors.New("unknown output mode")

var modeNames = []string{"stdout", "stdoutBytes", "file"}

// String returns the command-line name of the mode.
func (m Mode) String() string {
	if !common.IsInRange(0, int(m), len(modeNames)-1) {
		return common.UnknownStr
	}

	return modeNames[m]
}

// ParseMode accepts a mode name, case-insensitively, or its number.
func ParseMode(s string) (Mode, error) {
	for i, name := range modeNames {
		if strings.EqualFold(s, name) {
			return Mode(i), nil
		}
	}

	if n, err := strconv.Atoi(s); err == nil && common.IsInRange(0, n, len(modeNames)-1) {
		return Mode(n), nil
	}

	return 0, fmt.Errorf("%w %q (want stdout, stdoutBytes or file)", ErrUnknownMode, s)
}
