// Package advisor turns user input into a composting recommendation by
// combining catalog lookup with fuzzy matching.
package advisor

import (
	"context"
	"fmt"
	"strings"

	"github.com/Balasairam26/farm-waste-fertilizer/internal/catalog"
	"github.com/Balasairam26/farm-waste-fertilizer/internal/matching"
)

const (
	// DefaultYieldPct is assumed when a record carries no yield percentage.
	DefaultYieldPct = 40.0

	// EstimateNote accompanies every yield estimate. The number is advisory,
	// not a measurement.
	EstimateNote = "Yield is a rough approximation; actual output depends on moisture and method."
)

// OutcomeKind classifies a recommendation result.
type OutcomeKind string

const (
	// OutcomeMatched means a catalog record was selected, either explicitly
	// or by a confident fuzzy match.
	OutcomeMatched OutcomeKind = "matched"

	// OutcomeUnmatched means no candidate cleared the score cutoff; the
	// recommendation carries suggestions instead of a record.
	OutcomeUnmatched OutcomeKind = "unmatched"

	// OutcomeEmptyInput means neither a selection nor free text was given.
	OutcomeEmptyInput OutcomeKind = "empty_input"
)

// Estimate is the quantity-based compost yield projection.
type Estimate struct {
	QuantityKg float64
	YieldPct   float64
	OutputKg   float64
	Note       string
}

// Recommendation is the outcome of a single advisory request.
type Recommendation struct {
	Kind OutcomeKind

	// Record and Score are set when Kind is OutcomeMatched. Score is 100 for
	// explicit selections.
	Record *catalog.Record
	Score  float64

	// ClosestScore and Suggestions are set when Kind is OutcomeUnmatched.
	ClosestScore float64
	Suggestions  []matching.Candidate

	// Estimate is set when the request carried a positive quantity and the
	// outcome is matched.
	Estimate *Estimate
}

// RecommendParams carries one advisory request.
type RecommendParams struct {
	// SelectedName is an explicit pick from the catalog list. When set it is
	// trusted as-is and the matcher is never consulted.
	SelectedName string

	// FreeText is the typed waste name, matched fuzzily when no explicit
	// selection was made.
	FreeText string

	// QuantityKg, when positive, requests a compost yield estimate.
	QuantityKg float64
}

// Service answers advisory requests against a loaded catalog.
type Service struct {
	catalog     *catalog.Service
	scoreCutoff float64
}

func NewService(cat *catalog.Service, scoreCutoff float64) *Service {
	if scoreCutoff <= 0 {
		scoreCutoff = matching.DefaultScoreCutoff
	}

	return &Service{catalog: cat, scoreCutoff: scoreCutoff}
}

// Recommend resolves the input to a catalog record, if it can, and attaches a
// yield estimate when a quantity was given. The read path has no side
// effects; appending new waste types goes through the catalog service.
func (s *Service) Recommend(_ context.Context, params RecommendParams) (*Recommendation, error) {
	if selected := strings.TrimSpace(params.SelectedName); selected != "" {
		return s.recommendSelected(selected, params.QuantityKg)
	}

	freeText := strings.TrimSpace(params.FreeText)
	if freeText == "" {
		return &Recommendation{Kind: OutcomeEmptyInput}, nil
	}

	return s.recommendFuzzy(freeText, params.QuantityKg)
}

// recommendSelected handles an explicit list pick: the name is an exact
// catalog key and scores 100 without consulting the matcher.
func (s *Service) recommendSelected(name string, quantityKg float64) (*Recommendation, error) {
	rec, err := s.catalog.Get(name)
	if err != nil {
		return nil, fmt.Errorf("selected waste type %q: %w", name, err)
	}

	out := &Recommendation{
		Kind:   OutcomeMatched,
		Record: rec,
		Score:  100,
	}
	out.Estimate = estimate(rec, quantityKg)

	return out, nil
}

func (s *Service) recommendFuzzy(freeText string, quantityKg float64) (*Recommendation, error) {
	names := s.catalog.Names()

	res, err := matching.Match(freeText, names, s.scoreCutoff)
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", freeText, err)
	}

	if !res.Matched {
		return &Recommendation{
			Kind:         OutcomeUnmatched,
			ClosestScore: res.Score,
			Suggestions:  res.Alternatives,
		}, nil
	}

	rec, err := s.catalog.Get(res.BestMatch)
	if err != nil {
		return nil, fmt.Errorf("matched waste type %q: %w", res.BestMatch, err)
	}

	out := &Recommendation{
		Kind:   OutcomeMatched,
		Record: rec,
		Score:  res.Score,
	}
	out.Estimate = estimate(rec, quantityKg)

	return out, nil
}

// estimate projects compost output for the given input mass. Records without
// a usable yield percentage fall back to DefaultYieldPct.
func estimate(rec *catalog.Record, quantityKg float64) *Estimate {
	if quantityKg <= 0 {
		return nil
	}

	yieldPct := DefaultYieldPct
	if rec.HasYield() && *rec.YieldPct > 0 {
		yieldPct = *rec.YieldPct
	}

	return &Estimate{
		QuantityKg: quantityKg,
		YieldPct:   yieldPct,
		OutputKg:   quantityKg * yieldPct / 100.0,
		Note:       EstimateNote,
	}
}
