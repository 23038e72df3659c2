// Package fuzzy ranks free-text input against a fixed list of names.
// Scores: exact 1.0, prefix 0.9, substring 0.8, then edit distance within
// a length-dependent limit.
package fuzzy

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is one scored candidate.
type Match struct {
	Index int // position in the candidate list
	Value string
	Score float64
}

// Rank scores every candidate against the query and returns the ones that
// matched at all, best first. Comparison is case-insensitive.
func Rank(query string, candidates []string) []Match {
	q := normalize(query)
	if q == "" {
		return nil
	}

	var out []Match
	for i, cand := range candidates {
		c := normalize(cand)
		var score float64
		switch {
		case q == c:
			score = 1.0
		case strings.HasPrefix(c, q) && len(q) >= 2:
			score = 0.9
		case strings.Contains(c, q) && len(q) >= 3:
			score = 0.8
		default:
			if len(q) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(q, c)
			if dist > limit(len(c)) {
				continue
			}
			score = 0.72 - 0.08*float64(dist)
		}
		out = append(out, Match{Index: i, Value: cand, Score: score})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Best returns the highest ranked candidate. ok is false when nothing
// matched or when the top two candidates tie below an exact match.
func Best(query string, candidates []string) (Match, bool) {
	ranked := Rank(query, candidates)
	if len(ranked) == 0 {
		return Match{}, false
	}
	best := ranked[0]
	if best.Score < 1.0 && len(ranked) > 1 && best.Score-ranked[1].Score < 0.05 {
		return best, false
	}
	return best, true
}

func limit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

func normalize(s string) string {
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}
