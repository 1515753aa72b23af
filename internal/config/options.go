package config

import (
	"errors"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"def-extractor/internal/output"
	"def-extractor/internal/profile"
)

// Environment variables consulted for options left empty on the command line.
const (
	EnvProfile = "DEFEXTRACT_PROFILE"
	EnvLog     = "DEFEXTRACT_LOG"
	EnvOut     = "DEFEXTRACT_OUT"
)

var (
	// ErrNoModules is returned when no module path was given.
	ErrNoModules = errors.New("at least one module path is required")
	// ErrNoOutputPath is returned for file output without a path.
	ErrNoOutputPath = errors.New("output mode file requires --out")
)

// Options are the settings of one extractor invocation.
type Options struct {
	// Paths are module paths: manifest files, manifest directories or
	// go:<pattern> package patterns.
	Paths       []string
	OutputMode  output.Mode
	OutPath     string
	LogPath     string
	Verbose     bool
	ExtraTypes  []string
	ProfilePath string
}

// LoadDotEnv loads .env files into the process environment. Missing files
// are ignored.
func LoadDotEnv(files ...string) {
	_ = godotenv.Load(files...)
}

// ApplyEnv fills empty options from the environment.
func (o *Options) ApplyEnv() {
	fill := func(dst *string, key string) {
		if *dst != "" {
			return
		}

		if v, ok := os.LookupEnv(key); ok {
			*dst = v
		}
	}

	fill(&o.ProfilePath, EnvProfile)
	fill(&o.LogPath, EnvLog)
	fill(&o.OutPath, EnvOut)
}

// Validate checks option combinations.
func (o *Options) Validate() error {
	if len(o.Paths) == 0 {
		return ErrNoModules
	}

	if o.OutputMode == output.ModeFile && o.OutPath == "" {
		return ErrNoOutputPath
	}

	return nil
}

// Profile loads the configured profile, or the default one.
func (o *Options) Profile() (*profile.Profile, error) {
	if o.ProfilePath == "" {
		return profile.Default(), nil
	}

	return profile.LoadFile(o.ProfilePath)
}

// SplitExtraTypes splits a space-separated list of name fragments.
func SplitExtraTypes(s string) []string {
	return strings.Fields(s)
}
