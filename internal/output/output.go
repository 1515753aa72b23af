package output

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-json-experiment/json"

	"def-extractor/internal/graph"
)

// ErrNoPath is returned when file output is requested without a path.
var ErrNoPath = errors.New("file output requires an output path")

// Flatten returns the registry nodes in creation order, one per identifier.
func Flatten(reg *graph.Registry) []*graph.TypeNode {
	seen := make(map[string]bool, reg.Len())
	out := make([]*graph.TypeNode, 0, reg.Len())

	for _, n := range reg.Nodes() {
		if seen[n.Identifier] {
			continue
		}

		seen[n.Identifier] = true
		out = append(out, n)
	}

	return out
}

// Encode serializes nodes as a compact JSON array. Empty and absent data is
// omitted; map-valued fields are written with sorted keys.
func Encode(nodes []*graph.TypeNode) ([]byte, error) {
	data, err := json.Marshal(nodes, json.Deterministic(true))
	if err != nil {
		return nil, fmt.Errorf("failed to encode type graph: %w", err)
	}

	return data, nil
}

// Write sends data to w or to path, depending on mode.
func Write(w io.Writer, data []byte, mode Mode, path string) error {
	switch mode {
	case ModeStdout:
		if _, err := fmt.Fprintln(w, string(data)); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

	case ModeStdoutBytes:
		if _, err := w.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}

	case ModeFile:
		if path == "" {
			return ErrNoPath
		}

		if err := os.WriteFile(path, data, 0o644); err != nil {
			return fmt.Errorf("failed to write output file %s: %w", path, err)
		}

	default:
		return fmt.Errorf("unknown output mode %d", mode)
	}

	return nil
}
