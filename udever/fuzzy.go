package udever

import (
	"sort"
	"strings"
)

// Match pairs a device with its fuzzy match score.
type Match struct {
	Device Device
	Score  int
}

const (
	matchBase       = 10
	contiguousBonus = 15
	// earlyWindow bounds the reward for matches that start near the
	// beginning of the haystack.
	earlyWindow = 32
)

// Rank orders devices by how well they match an operator-typed query. Matching
// is subsequence based: every query character must appear in order, case
// insensitively, within "manufacturer product vid:pid". Contiguous runs and
// early first matches score higher. Devices that do not match are dropped.
// An empty query returns all devices in their original order with equal score.
//
// Rank is a pure function: no I/O, deterministic for identical inputs, and
// ties preserve enumeration order.
func Rank(devices []Device, query string) []Match {
	if query == "" {
		matches := make([]Match, 0, len(devices))
		for _, d := range devices {
			matches = append(matches, Match{Device: d})
		}
		return matches
	}

	var matches []Match
	for _, d := range devices {
		haystack := strings.TrimSpace(d.Manufacturer + " " + d.Product + " " + d.ID())
		if score, ok := subsequenceScore(query, haystack); ok {
			matches = append(matches, Match{Device: d, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}

// subsequenceScore reports whether query is a case-insensitive subsequence of
// haystack and how strong the match is.
func subsequenceScore(query, haystack string) (int, bool) {
	q := []rune(strings.ToLower(query))
	h := []rune(strings.ToLower(haystack))

	score := 0
	prev := -2
	first := -1
	pos := 0
	for _, qc := range q {
		found := -1
		for i := pos; i < len(h); i++ {
			if h[i] == qc {
				found = i
				break
			}
		}
		if found < 0 {
			return 0, false
		}

		score += matchBase
		if found == prev+1 {
			score += contiguousBonus
		}
		if first < 0 {
			first = found
		}
		prev = found
		pos = found + 1
	}

	if first < earlyWindow {
		score += earlyWindow - first
	}

	return score, true
}
