package stats

import (
	"fmt"
	"math"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

// Default expectation thresholds on the normalized [0,1] scale.
const (
	DefaultExceedsThreshold = 0.87
	DefaultMeetsThreshold   = 0.75
	DefaultBelowThreshold   = 0.0
)

// Thresholds holds the lower bound of each expectation band.
type Thresholds struct {
	Exceeds float64
	Meets   float64
	Below   float64
}

// DefaultThresholds returns the standard 0.87 / 0.75 / 0 bands.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Exceeds: DefaultExceedsThreshold,
		Meets:   DefaultMeetsThreshold,
		Below:   DefaultBelowThreshold,
	}
}

// Validate ensures the bands are ordered Below <= Meets < Exceeds.
func (t Thresholds) Validate() error {
	for _, v := range []float64{t.Exceeds, t.Meets, t.Below} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: thresholds must be finite", ErrInvalidInput)
		}
	}
	if !(t.Below <= t.Meets && t.Meets < t.Exceeds) {
		return fmt.Errorf("%w: thresholds must satisfy below <= meets < exceeds (got %v, %v, %v)", ErrInvalidInput, t.Below, t.Meets, t.Exceeds)
	}
	return nil
}

// Classify maps a normalized score to its expectation category.
// A nil, NaN or below-range score is NULL.
func (t Thresholds) Classify(score *float64) models.ExpectationCategory {
	if score == nil {
		return models.ExpectationNull
	}
	return t.ClassifyValue(*score)
}

// ClassifyValue is Classify for a known score.
func (t Thresholds) ClassifyValue(score float64) models.ExpectationCategory {
	switch {
	case math.IsNaN(score):
		return models.ExpectationNull
	case score >= t.Exceeds:
		return models.ExpectationExceeds
	case score >= t.Meets:
		return models.ExpectationMeets
	case score >= t.Below:
		return models.ExpectationBelow
	default:
		return models.ExpectationNull
	}
}

// classifyAll is phase one of every computation: it returns an immutable
// category per score together with the category counts.
func (t Thresholds) classifyAll(scores []*float64) ([]models.ExpectationCategory, models.CategoryCounts) {
	categories := make([]models.ExpectationCategory, len(scores))
	var counts models.CategoryCounts
	for i, score := range scores {
		categories[i] = t.Classify(score)
		counts[categories[i].Index()]++
	}
	return categories, counts
}
