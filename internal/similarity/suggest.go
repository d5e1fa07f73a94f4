// Package similarity scores how alike two identifiers are, so that a mistyped
// format or template name can be answered with "did you mean".
package similarity

import (
	"log/slog"
	"strings"
	"unicode"

	"github.com/klauern/rulegen/internal/logging"
)

// DefaultThreshold is the lowest score Suggest accepts.
const DefaultThreshold = 0.75

// Score returns the similarity of a and b between 0 and 1, ignoring case and
// separator style. It takes the better of the Levenshtein and Jaro-Winkler
// scores.
func Score(a, b string) float64 {
	a, b = normalize(a), normalize(b)
	if a == b {
		return 1.0
	}
	if a == "" || b == "" {
		return 0.0
	}
	return max(LevenshteinSimilarity(a, b), JaroWinkler(a, b))
}

// Suggest returns the candidate closest to name when it scores at least
// DefaultThreshold. Ties keep the earlier candidate.
func Suggest(name string, candidates []string) (string, bool) {
	best, bestScore := "", 0.0
	for _, c := range candidates {
		if s := Score(name, c); s > bestScore {
			best, bestScore = c, s
		}
	}

	logging.Debug("closest match",
		logging.Operation("suggest"),
		slog.String("name", name),
		slog.String("match", best),
		slog.Float64("score", bestScore),
	)

	if bestScore < DefaultThreshold {
		return "", false
	}
	return best, true
}

// normalize lowercases s and folds runs of -, _, . and spaces into a single
// hyphen so "Claude_Memory" and "claude-memory" compare equal.
func normalize(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	sep := false
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			sep = false
		case r == '-' || r == '_' || r == '.' || r == ' ':
			if !sep && sb.Len() > 0 {
				sb.WriteByte('-')
				sep = true
			}
		}
	}
	return strings.TrimSuffix(sb.String(), "-")
}

// LevenshteinDistance counts the single-rune edits that turn a into b.
func LevenshteinDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}
	for i := 1; i <= len(ra); i++ {
		diag := row[0]
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			next := min(row[j]+1, row[j-1]+1, diag+cost)
			diag, row[j] = row[j], next
		}
	}
	return row[len(rb)]
}

// LevenshteinSimilarity scales LevenshteinDistance to 0..1 by the longer
// length.
func LevenshteinSimilarity(a, b string) float64 {
	longest := max(len([]rune(a)), len([]rune(b)))
	if longest == 0 {
		return 1.0
	}
	return 1.0 - float64(LevenshteinDistance(a, b))/float64(longest)
}

// JaroSimilarity is the Jaro score of a and b.
func JaroSimilarity(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	switch {
	case len(ra) == 0 && len(rb) == 0:
		return 1.0
	case len(ra) == 0 || len(rb) == 0:
		return 0.0
	}

	window := max(0, max(len(ra), len(rb))/2-1)
	matchedA := make([]bool, len(ra))
	matchedB := make([]bool, len(rb))

	matches := 0
	for i, r := range ra {
		lo, hi := max(0, i-window), min(len(rb), i+window+1)
		for j := lo; j < hi; j++ {
			if !matchedB[j] && rb[j] == r {
				matchedA[i], matchedB[j] = true, true
				matches++
				break
			}
		}
	}
	if matches == 0 {
		return 0.0
	}

	half, k := 0, 0
	for i, r := range ra {
		if !matchedA[i] {
			continue
		}
		for !matchedB[k] {
			k++
		}
		if r != rb[k] {
			half++
		}
		k++
	}

	m := float64(matches)
	return (m/float64(len(ra)) + m/float64(len(rb)) + (m-float64(half/2))/m) / 3.0
}

// JaroWinkler boosts JaroSimilarity by up to four shared leading runes.
func JaroWinkler(a, b string) float64 {
	jaro := JaroSimilarity(a, b)
	ra, rb := []rune(a), []rune(b)

	prefix := 0
	for prefix < min(4, len(ra), len(rb)) && ra[prefix] == rb[prefix] {
		prefix++
	}
	return jaro + float64(prefix)*0.1*(1.0-jaro)
}
