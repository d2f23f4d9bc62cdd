package itemgen

import (
	"regexp"
	"strings"
)

// SimilarityThreshold is the ratio at or above which two questions count as
// the same template with different numbers.
const SimilarityThreshold = 0.7

var (
	numberTokenRe = regexp.MustCompile(`\d+\.?\d*`)
	singleVarRe   = regexp.MustCompile(`\b[a-z]\b`)
)

// normalizeForSimilarity strips the parts that vary between instances of
// the same question template: numbers and single-letter variables. Content
// words ("items", "stars", "candies") are kept because they differentiate
// questions.
func normalizeForSimilarity(text string) string {
	t := strings.ToLower(text)
	t = numberTokenRe.ReplaceAllString(t, "?")
	t = singleVarRe.ReplaceAllString(t, "")
	return whitespaceRe.ReplaceAllString(strings.TrimSpace(t), " ")
}

// Similarity returns a 0..1 ratio between two question texts after
// template normalization, using the Ratcliff/Obershelp measure
// (2*matches / total length over recursive longest common substrings).
func Similarity(a, b string) float64 {
	na, nb := normalizeForSimilarity(a), normalizeForSimilarity(b)
	if na == "" || nb == "" {
		return 0
	}
	total := len(na) + len(nb)
	return 2.0 * float64(matchingChars(na, nb)) / float64(total)
}

// IsSimilarToAny reports whether the candidate is close to any excluded
// text, along with the closest match and its score.
func IsSimilarToAny(candidate string, excluded []string, threshold float64) (bool, string, float64) {
	best, bestScore := "", 0.0
	for _, e := range excluded {
		if s := Similarity(candidate, e); s > bestScore {
			bestScore = s
			best = e
		}
	}
	return bestScore >= threshold, best, bestScore
}

// matchingChars counts characters in common: the longest common substring,
// plus recursion on the pieces to its left and right.
func matchingChars(a, b string) int {
	ai, bi, size := longestCommonSubstring(a, b)
	if size == 0 {
		return 0
	}
	return size +
		matchingChars(a[:ai], b[:bi]) +
		matchingChars(a[ai+size:], b[bi+size:])
}

func longestCommonSubstring(a, b string) (ai, bi, size int) {
	if len(a) == 0 || len(b) == 0 {
		return 0, 0, 0
	}
	// prev[j] = length of common suffix of a[:i] and b[:j].
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
				if cur[j] > size {
					size = cur[j]
					ai = i - size
					bi = j - size
				}
			} else {
				cur[j] = 0
			}
		}
		prev, cur = cur, prev
	}
	return ai, bi, size
}
