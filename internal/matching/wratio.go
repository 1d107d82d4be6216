package matching

import (
	"sort"
	"strings"
	"unicode"

	"github.com/agnivade/levenshtein"
)

// WRatio computes a weighted similarity score in [0,100] between two strings.
// It takes the best of several sub-strategies so that word reordering
// ("dung cow" vs "cow dung"), partial overlap ("husk" vs "Rice Husk") and
// case or whitespace differences all still score high:
//
//   - plain edit-distance ratio on the normalized strings
//   - token-sort and token-set ratios (reordering tolerance), slightly
//     discounted so an exact-order match always wins
//   - partial (best-window) variants of the above when the strings differ
//     enough in length, discounted harder the bigger the length gap
//
// The weighting scheme follows the classic fuzzywuzzy WRatio composite.
func WRatio(s1, s2 string) float64 {
	a := normalize(s1)
	b := normalize(s2)

	if a == "" || b == "" {
		return 0
	}

	base := ratio(a, b)

	la := len([]rune(a))
	lb := len([]rune(b))

	lenRatio := float64(max(la, lb)) / float64(min(la, lb))

	const unbaseScale = 0.95

	if lenRatio < 1.5 {
		// Similar lengths: reordering tolerance only.
		tsor := tokenSortRatio(a, b) * unbaseScale
		tset := tokenSetRatio(a, b) * unbaseScale

		return maxScore(base, tsor, tset)
	}

	// Big length gap: one string is likely a fragment of the other, so bring
	// in the best-window variants, discounted by how lopsided the pair is.
	partialScale := 0.9
	if lenRatio > 8 {
		partialScale = 0.6
	}

	partial := partialRatio(a, b) * partialScale
	ptsor := partialTokenSortRatio(a, b) * unbaseScale * partialScale
	ptset := partialTokenSetRatio(a, b) * unbaseScale * partialScale

	return maxScore(base, partial, ptsor, ptset)
}

// normalize lowercases, maps non-alphanumeric runes to spaces, and collapses
// runs of whitespace. All scoring operates on normalized text.
func normalize(s string) string {
	mapped := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return ' '
	}, s)

	return strings.Join(strings.Fields(mapped), " ")
}

// ratio is the plain similarity: 100 * (1 - editDistance / longerLength).
func ratio(a, b string) float64 {
	if a == b {
		return 100
	}

	longer := max(len([]rune(a)), len([]rune(b)))
	if longer == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(a, b)

	return 100 * (1 - float64(dist)/float64(longer))
}

// partialRatio slides a window the size of the shorter string across the
// longer one and returns the best window ratio. "husk" against "rice husk"
// scores 100 this way.
func partialRatio(a, b string) float64 {
	shorter := []rune(a)
	longer := []rune(b)

	if len(shorter) > len(longer) {
		shorter, longer = longer, shorter
	}

	if len(shorter) == 0 {
		return 0
	}

	short := string(shorter)
	best := 0.0

	for i := 0; i+len(shorter) <= len(longer); i++ {
		window := string(longer[i : i+len(shorter)])

		if r := ratio(short, window); r > best {
			best = r
			if best == 100 {
				break
			}
		}
	}

	return best
}

func tokenSortRatio(a, b string) float64 {
	return ratio(sortTokens(a), sortTokens(b))
}

func partialTokenSortRatio(a, b string) float64 {
	return partialRatio(sortTokens(a), sortTokens(b))
}

// tokenSetRatio compares the sorted token intersection against each side's
// full sorted token list, taking the best pairing. Shared words dominate the
// score regardless of what else surrounds them.
func tokenSetRatio(a, b string) float64 {
	return tokenSet(a, b, ratio)
}

func partialTokenSetRatio(a, b string) float64 {
	return tokenSet(a, b, partialRatio)
}

func tokenSet(a, b string, score func(string, string) float64) float64 {
	tokensA := strings.Fields(a)
	tokensB := strings.Fields(b)

	setB := make(map[string]struct{}, len(tokensB))
	for _, t := range tokensB {
		setB[t] = struct{}{}
	}

	var common, restA []string

	seen := make(map[string]struct{}, len(tokensA))

	for _, t := range tokensA {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}

		if _, ok := setB[t]; ok {
			common = append(common, t)
		} else {
			restA = append(restA, t)
		}
	}

	var restB []string

	seenB := make(map[string]struct{}, len(tokensB))

	for _, t := range tokensB {
		if _, dup := seenB[t]; dup {
			continue
		}
		seenB[t] = struct{}{}

		if _, inA := seen[t]; !inA {
			restB = append(restB, t)
		}
	}

	sort.Strings(common)
	sort.Strings(restA)
	sort.Strings(restB)

	sect := strings.Join(common, " ")
	combinedA := strings.TrimSpace(sect + " " + strings.Join(restA, " "))
	combinedB := strings.TrimSpace(sect + " " + strings.Join(restB, " "))

	if sect == "" {
		return score(combinedA, combinedB)
	}

	return maxScore(
		score(sect, combinedA),
		score(sect, combinedB),
		score(combinedA, combinedB),
	)
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)

	return strings.Join(tokens, " ")
}

func maxScore(scores ...float64) float64 {
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}

	if best > 100 {
		best = 100
	}

	return best
}
