package modload

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/untillpro/goutils/logger"

	"def-extractor/internal/common"
	"def-extractor/internal/gosource"
	"def-extractor/internal/manifest"
	"def-extractor/internal/typesys"
)

// GoPrefix marks a path as a Go package pattern.
const GoPrefix = "go:"

var (
	// ErrUnsupportedPath is returned for files that are neither manifests nor Go patterns.
	ErrUnsupportedPath = errors.New("unsupported module path")
	// ErrNoOwnedModules is returned when the paths load no extraction target.
	ErrNoOwnedModules = errors.New("no owned modules loaded")
)

var manifestExtensions = []string{".yaml", ".yml"}

// sources are the paths split by provider.
type sources struct {
	manifests  []string
	goPatterns []string
}

// Load loads every path and builds the universe of the run.
func Load(paths []string) (*typesys.Universe, error) {
	src, err := split(paths)
	if err != nil {
		return nil, err
	}

	var owned, framework []typesys.Module

	if !common.IsEmpty(src.manifests) || common.IsEmpty(src.goPatterns) {
		set, err := manifest.Load(src.manifests...)
		if err != nil {
			return nil, fmt.Errorf("failed to load manifests: %w", err)
		}

		for _, m := range set.Modules() {
			if m.Framework() {
				logger.Verbose("framework module", m.Name())
				framework = append(framework, m)

				continue
			}

			logger.Verbose("owned module", m.Name())
			owned = append(owned, m)
		}

		framework = append(framework, set.Builtin())
	}

	if !common.IsEmpty(src.goPatterns) {
		mods, err := gosource.NewAnalyzer().LoadPackages("", src.goPatterns...)
		if err != nil {
			return nil, fmt.Errorf("failed to load Go packages: %w", err)
		}

		for _, m := range mods {
			logger.Verbose("owned module", m.Name())
			owned = append(owned, m)
		}
	}

	if common.IsEmpty(owned) {
		return nil, ErrNoOwnedModules
	}

	return typesys.NewUniverse(owned, framework...), nil
}

func split(paths []string) (sources, error) {
	var src sources

	for _, p := range paths {
		if pattern, ok := strings.CutPrefix(p, GoPrefix); ok {
			src.goPatterns = append(src.goPatterns, pattern)
			continue
		}

		info, err := os.Stat(p)
		if err != nil {
			return sources{}, fmt.Errorf("failed to access %s: %w", p, err)
		}

		if info.IsDir() {
			files, err := manifestsIn(p)
			if err != nil {
				return sources{}, err
			}

			src.manifests = append(src.manifests, files...)

			continue
		}

		if !common.HasSuffixFold(p, manifestExtensions) {
			return sources{}, fmt.Errorf("%w: %s", ErrUnsupportedPath, p)
		}

		src.manifests = append(src.manifests, p)
	}

	return src, nil
}

// manifestsIn lists the manifest files directly inside dir in name order.
func manifestsIn(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var files []string
	for _, e := range entries {
		if e.IsDir() || !common.HasSuffixFold(e.Name(), manifestExtensions) {
			continue
		}

		files = append(files, filepath.Join(dir, e.Name()))
	}

	slices.Sort(files)

	return files, nil
}
