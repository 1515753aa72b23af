package gosource

import (
	"github.com/fatih/structtag"

	"def-extractor/internal/typesys"
)

// parseTag turns every key:"value" entry of a struct tag into a marker
// whose only argument is the full value, options included.
func parseTag(tag string) ([]typesys.Marker, error) {
	tags, err := structtag.Parse(tag)
	if err != nil || tags == nil {
		return nil, err
	}

	var markers []typesys.Marker
	for _, t := range tags.Tags() {
		markers = append(markers, typesys.Marker{Type: t.Key, Args: []any{t.Value()}})
	}

	return markers, nil
}
