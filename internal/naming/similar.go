package naming

import "strings"

// Levenshtein returns the number of single-character insertions, deletions
// or substitutions needed to turn a into b. Characters are runes, so "größe"
// is one edit away from "gröse".
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}

	// dist[j] is the distance between the current prefix of ra and rb[:j].
	dist := make([]int, len(rb)+1)
	for j := range dist {
		dist[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		diag := dist[0]
		dist[0] = i

		for j := 1; j <= len(rb); j++ {
			up := dist[j]

			if ra[i-1] == rb[j-1] {
				dist[j] = diag
			} else {
				dist[j] = 1 + min(diag, up, dist[j-1])
			}

			diag = up
		}
	}

	return dist[len(rb)]
}

// Closest returns the candidate nearest to name, compared case-insensitively,
// when its distance is at most maxDist. An exact match is never reported as a
// suggestion. Ties go to the earlier candidate.
func Closest(name string, candidates []string, maxDist int) (string, bool) {
	lower := strings.ToLower(name)

	best, bestDist := "", maxDist+1

	for _, c := range candidates {
		if c == name {
			return "", false
		}

		if d := Levenshtein(lower, strings.ToLower(c)); d < bestDist {
			best, bestDist = c, d
		}
	}

	if best == "" {
		return "", false
	}

	return best, true
}
