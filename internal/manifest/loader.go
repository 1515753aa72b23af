package manifest

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BuiltinModule is the name of the embedded system module.
const BuiltinModule = "mscorlib"

//go:embed builtin/system.yaml
var systemYAML []byte

// LoadFile loads and parses a manifest file from the given path.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}

	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("manifest %s: %w", path, err)
	}

	return f, nil
}

// Parse parses YAML data into a File.
func Parse(data []byte) (*File, error) {
	var f File

	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse manifest YAML: %w", err)
	}

	if f.Module == "" {
		return nil, errNoModule
	}

	return &f, nil
}

// Load loads manifest files into one Set together with the builtin module.
func Load(paths ...string) (*Set, error) {
	files := make([]*File, 0, len(paths))
	for _, p := range paths {
		f, err := LoadFile(p)
		if err != nil {
			return nil, err
		}
		files = append(files, f)
	}

	return Build(files...)
}

// Build links parsed manifests into one Set together with the builtin module.
// Files sharing a module name are merged.
func Build(files ...*File) (*Set, error) {
	s := newSet()

	system, err := Parse(systemYAML)
	if err != nil {
		return nil, fmt.Errorf("builtin module: %w", err)
	}

	s.builtin = &Module{set: s, name: system.Module}
	if err := s.declare(s.builtin, system); err != nil {
		return nil, err
	}

	s.builtin.framework = true

	for _, f := range files {
		m := s.module(f.Module)
		m.framework = m.framework || f.Framework

		if err := s.declare(m, f); err != nil {
			return nil, err
		}
	}

	s.link()

	return s, nil
}
