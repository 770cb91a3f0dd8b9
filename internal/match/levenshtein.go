package match

// Levenshtein computes the edit distance between two strings: the minimum
// number of single-rune insertions, deletions or substitutions turning one
// into the other.
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	ra, rb := []rune(a), []rune(b)

	// Keep ra the shorter one so a row holds len(ra)+1 cells.
	if len(ra) > len(rb) {
		ra, rb = rb, ra
	}

	if len(ra) == 0 {
		return len(rb)
	}

	prev := make([]int, len(ra)+1)
	curr := make([]int, len(ra)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(rb); j++ {
		curr[0] = j

		for i := 1; i <= len(ra); i++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}

			curr[i] = min(prev[i]+1, curr[i-1]+1, prev[i-1]+cost)
		}

		prev, curr = curr, prev
	}

	return prev[len(ra)]
}

// MaxTypoDistance is the largest edit distance still treated as a typo.
const MaxTypoDistance = 2

// Closest returns the candidate nearest to name, or "" when none is within
// MaxTypoDistance. A candidate must also be longer than its distance, so a
// one letter name never suggests another one letter name. Ties go to the
// earliest candidate.
func Closest(name string, candidates []string) string {
	want := NormalizeIdent(name)
	best, bestDist := "", MaxTypoDistance+1

	for _, c := range candidates {
		norm := NormalizeIdent(c)

		d := Levenshtein(want, norm)
		if d < bestDist && (d == 0 || d < len(norm)) {
			best, bestDist = c, d
		}
	}

	return best
}
