package match

import (
	"regexp"
	"strings"
)

var punctuationPattern = regexp.MustCompile(`[^a-z0-9\s-]`)

// Normalize canonicalizes a free-text answer for comparison. The
// transform runs repeatedly until it reaches a fixed point, so a
// correction lookup whose output still carries a plural suffix (or
// vice versa) settles on a single canonical key. The original text is
// never modified; callers keep it separately for display.
func Normalize(answer string) string {
	current := answer
	for i := 0; i < 8; i++ {
		next := normalizePass(current)
		if next == current {
			break
		}
		current = next
	}
	return current
}

func normalizePass(answer string) string {
	normalized := strings.ToLower(strings.TrimSpace(answer))
	normalized = punctuationPattern.ReplaceAllString(normalized, "")
	normalized = strings.ReplaceAll(normalized, "-", " ")

	tokens := strings.Fields(normalized)

	// Drop a single leading article
	if len(tokens) > 1 {
		switch tokens[0] {
		case "a", "an", "the":
			tokens = tokens[1:]
		}
	}

	// Collapse short two-word answers into a compound token, so
	// "hot dog" and "hotdog" compare equal
	if len(tokens) == 2 && len(tokens[0]) <= 6 && len(tokens[1]) <= 6 {
		tokens = []string{tokens[0] + tokens[1]}
	}

	normalized = strings.Join(tokens, " ")

	matched := false
	if corrected, ok := misspellings[normalized]; ok {
		normalized = corrected
		matched = true
	}
	if variant, ok := spellingVariants[normalized]; ok {
		normalized = variant
		matched = true
	}
	if digits, ok := numberWords[normalized]; ok {
		normalized = digits
		matched = true
	}
	if singular, ok := irregularPlurals[normalized]; ok {
		normalized = singular
		matched = true
	}
	if matched {
		return normalized
	}

	return singularize(normalized)
}

// singularize applies simple plural suffix heuristics
func singularize(word string) string {
	if strings.HasSuffix(word, "ies") && len(word) > 3 {
		return word[:len(word)-3] + "y"
	}

	if strings.HasSuffix(word, "es") && len(word) > 2 {
		stem := word[:len(word)-2]
		if strings.HasSuffix(stem, "s") || strings.HasSuffix(stem, "x") ||
			strings.HasSuffix(stem, "z") || strings.HasSuffix(stem, "ch") ||
			strings.HasSuffix(stem, "sh") {
			return stem
		}
	}

	if strings.HasSuffix(word, "s") && len(word) > 1 && !strings.HasSuffix(word, "ss") {
		return word[:len(word)-1]
	}

	return word
}
