// Package matching ranks free-text input against a fixed set of catalog names
// using a weighted string-similarity score. Matching is pure computation:
// identical inputs always produce identical results, and ties are broken by
// candidate position so callers can rely on dataset order.
package matching

import (
	"errors"
	"sort"
)

const (
	// DefaultScoreCutoff is the minimum score for a confident match.
	DefaultScoreCutoff = 50.0

	// DefaultSuggestionLimit caps the suggestion list shown when no candidate
	// clears the cutoff.
	DefaultSuggestionLimit = 5
)

// ErrNoCandidates is returned when matching is attempted against an empty
// candidate list.
var ErrNoCandidates = errors.New("matching: candidate list is empty")

// Candidate pairs a candidate name with its similarity score.
type Candidate struct {
	Name  string
	Score float64
}

// Result describes the outcome of matching one query against a candidate set.
type Result struct {
	// Query is the original input, unmodified.
	Query string

	// BestMatch is the winning candidate, or empty when no candidate scored
	// at or above the cutoff.
	BestMatch string

	// Matched reports whether BestMatch is set.
	Matched bool

	// Score is the highest score found, even when it fell below the cutoff,
	// so callers can report how close the nearest candidate was.
	Score float64

	// Alternatives holds the top-scoring candidates in descending score
	// order, capped at DefaultSuggestionLimit.
	Alternatives []Candidate
}

// Match scores query against every candidate and selects the best one. Ties
// go to the candidate appearing earliest in the slice. A best score at or
// above scoreCutoff is accepted; below it, BestMatch stays empty but Score
// still carries the closest score found.
func Match(query string, candidates []string, scoreCutoff float64) (Result, error) {
	scored, err := scoreAll(query, candidates)
	if err != nil {
		return Result{}, err
	}

	best := scored[0]
	for _, c := range scored[1:] {
		if c.Score > best.Score {
			best = c
		}
	}

	result := Result{
		Query:        query,
		Score:        best.Score,
		Alternatives: topOf(scored, DefaultSuggestionLimit),
	}

	if best.Score >= scoreCutoff {
		result.BestMatch = best.Name
		result.Matched = true
	}

	return result, nil
}

// TopK returns the k best-scoring candidates in descending score order,
// independent of any cutoff. Ties keep candidate order. Returns fewer than k
// entries when the candidate list is smaller.
func TopK(query string, candidates []string, k int) ([]Candidate, error) {
	scored, err := scoreAll(query, candidates)
	if err != nil {
		return nil, err
	}

	return topOf(scored, k), nil
}

func scoreAll(query string, candidates []string) ([]Candidate, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	scored := make([]Candidate, len(candidates))
	for i, name := range candidates {
		scored[i] = Candidate{Name: name, Score: WRatio(query, name)}
	}

	return scored, nil
}

func topOf(scored []Candidate, k int) []Candidate {
	if k <= 0 {
		return nil
	}

	ranked := make([]Candidate, len(scored))
	copy(ranked, scored)

	// Stable sort keeps candidate-list order for equal scores.
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})

	if len(ranked) > k {
		ranked = ranked[:k]
	}

	return ranked
}
