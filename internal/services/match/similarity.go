package match

// tolerance returns the allowed edit distance for a string of the
// given length. Short answers must match exactly; longer ones forgive
// a typo or two.
func tolerance(length int) int {
	switch {
	case length <= 3:
		return 0
	case length <= 5:
		return 1
	default:
		return 2
	}
}

// Similar reports whether two normalized answers should be treated as
// the same answer. The pair's tolerance is the stricter of the two
// individual tolerances, so a short answer never fuzzy-matches a long
// one just because the long one is forgiving.
func Similar(a, b string) bool {
	if a == b {
		return true
	}

	allowed := min(tolerance(len(a)), tolerance(len(b)))
	if allowed == 0 {
		return false
	}

	return Distance(a, b) <= allowed
}

// Distance computes the Levenshtein edit distance between two strings.
func Distance(a, b string) int {
	if a == b {
		return 0
	}
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)

	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}

	return prev[len(b)]
}
