package models

import "strings"

// ExpectationCategory is the tri-band classification of a normalized score.
// NULL marks a score that could not be classified.
type ExpectationCategory string

const (
	ExpectationExceeds ExpectationCategory = "EXCEEDS"
	ExpectationMeets   ExpectationCategory = "MEETS"
	ExpectationBelow   ExpectationCategory = "BELOW"
	ExpectationNull    ExpectationCategory = "NULL"
)

// ExpectationCategories lists the categories in breakdown order.
var ExpectationCategories = [4]ExpectationCategory{
	ExpectationExceeds,
	ExpectationMeets,
	ExpectationBelow,
	ExpectationNull,
}

// Index returns the breakdown slot of the category. Unknown values map to NULL.
func (c ExpectationCategory) Index() int {
	switch c {
	case ExpectationExceeds:
		return 0
	case ExpectationMeets:
		return 1
	case ExpectationBelow:
		return 2
	default:
		return 3
	}
}

// CategoryBreakdown holds one value per category in EXCEEDS, MEETS, BELOW, NULL order.
type CategoryBreakdown [4]float64

// CategoryCounts holds raw observation counts in breakdown order.
type CategoryCounts [4]int

// Total returns the number of observations.
func (c CategoryCounts) Total() int {
	return c[0] + c[1] + c[2] + c[3]
}

// Percentages divides every count by the total. It returns nil when there are no observations.
func (c CategoryCounts) Percentages() *CategoryBreakdown {
	total := c.Total()
	if total == 0 {
		return nil
	}
	var out CategoryBreakdown
	for i, n := range c {
		out[i] = float64(n) / float64(total)
	}
	return &out
}

// ObjectivePercentages is the category breakdown of a single learning objective.
type ObjectivePercentages struct {
	Objective    string            `json:"objective"`
	Percentages  CategoryBreakdown `json:"percentages"`
	Counts       CategoryCounts    `json:"counts"`
	Observations int               `json:"observations"`
}

// NormalizeObjective trims an objective label. Empty results mean "untagged".
func NormalizeObjective(label string) string {
	return strings.TrimSpace(label)
}
