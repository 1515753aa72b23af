package suggest

import (
	"cmp"
	"slices"
)

// MinScore is the lowest similarity reported as a suggestion.
const MinScore = 0.6

type scored struct {
	name  string
	score float64
}

// Score rates how well name matches fragment: the better of the whole-name
// similarity and the best single-token similarity.
func Score(fragment, name string) float64 {
	frag := Normalize(fragment)
	best := Similarity(frag, Normalize(name))

	for _, tok := range Tokens(name) {
		best = max(best, Similarity(frag, tok))
	}

	return best
}

// Closest returns up to limit distinct names scoring at least MinScore
// against fragment, best first and alphabetically among equal scores.
func Closest(fragment string, names []string, limit int) []string {
	if fragment == "" || limit <= 0 {
		return nil
	}

	seen := make(map[string]bool, len(names))

	var ranked []scored
	for _, n := range names {
		if seen[n] {
			continue
		}
		seen[n] = true

		if s := Score(fragment, n); s >= MinScore {
			ranked = append(ranked, scored{name: n, score: s})
		}
	}

	slices.SortFunc(ranked, func(a, b scored) int {
		if c := cmp.Compare(b.score, a.score); c != 0 {
			return c
		}

		return cmp.Compare(a.name, b.name)
	})

	out := make([]string, 0, min(limit, len(ranked)))
	for _, r := range ranked[:min(limit, len(ranked))] {
		out = append(out, r.name)
	}

	return out
}
