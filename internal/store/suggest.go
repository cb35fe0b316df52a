package store

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

const (
	maxSuggestDistance = 3
	maxSuggestions     = 3
)

// Suggest returns up to three known names closest to name by edit distance.
func Suggest(name string, known []string) []string {
	type scored struct {
		name string
		dist int
	}
	want := strings.ToLower(name)
	var candidates []scored
	for _, k := range known {
		if k == name {
			continue
		}
		d := levenshtein.ComputeDistance(want, strings.ToLower(k))
		if d <= maxSuggestDistance {
			candidates = append(candidates, scored{k, d})
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}
	out := make([]string, 0, len(candidates))
	for _, c := range candidates {
		out = append(out, c.name)
	}
	return out
}
