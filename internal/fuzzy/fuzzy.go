// ABOUTME: Thin wrapper over sahilm/fuzzy for ranking environment names
// ABOUTME: Matches are returned best score first with their source index

package fuzzy

import "github.com/sahilm/fuzzy"

// Match is one ranked result against the input slice.
type Match struct {
	Str   string
	Index int
	Score int
}

// Rank fuzzy-matches pattern against items and returns matches sorted by
// score, best first. Items that do not match are omitted.
func Rank(pattern string, items []string) []Match {
	results := fuzzy.Find(pattern, items)
	matches := make([]Match, len(results))
	for i, r := range results {
		matches[i] = Match{Str: r.Str, Index: r.Index, Score: r.Score}
	}
	return matches
}
