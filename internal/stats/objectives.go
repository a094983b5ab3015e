package stats

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

// AggregateObjectives re-groups per-item categories by learning objective.
//
// tagsPerItem must be parallel to categories. An item tagged with several
// objectives counts once towards each of them. Objectives named in universe
// are seeded first so they keep the course order; objectives with no
// observations are left out of the result.
// Seeding never adds rows: a universe objective that no item is tagged with
// is omitted rather than reported with zero counts.
func AggregateObjectives(categories []models.ExpectationCategory, tagsPerItem [][]string, universe []string) ([]models.ObjectivePercentages, error) {
	if len(categories) != len(tagsPerItem) {
		return nil, fmt.Errorf("%w: %d items but %d objective tag lists", ErrInvalidInput, len(categories), len(tagsPerItem))
	}

	normalized := make([][]string, len(tagsPerItem))
	tagged := false
	for i, tags := range tagsPerItem {
		normalized[i] = cleanObjectives(tags)
		if len(normalized[i]) > 0 {
			tagged = true
		}
	}
	if !tagged {
		return []models.ObjectivePercentages{}, nil
	}

	order := make([]string, 0, len(universe))
	counters := make(map[string]*models.CategoryCounts, len(universe))
	seed := func(objective string) *models.CategoryCounts {
		if c, ok := counters[objective]; ok {
			return c
		}
		c := &models.CategoryCounts{}
		counters[objective] = c
		order = append(order, objective)
		return c
	}
	for _, objective := range cleanObjectives(universe) {
		seed(objective)
	}

	for i, tags := range normalized {
		slot := categories[i].Index()
		for _, objective := range tags {
			seed(objective)[slot]++
		}
	}

	result := make([]models.ObjectivePercentages, 0, len(order))
	for _, objective := range order {
		counts := *counters[objective]
		percentages := counts.Percentages()
		if percentages == nil {
			continue
		}
		result = append(result, models.ObjectivePercentages{
			Objective:    objective,
			Percentages:  *percentages,
			Counts:       counts,
			Observations: counts.Total(),
		})
	}
	return result, nil
}

// cleanObjectives trims labels, drops empties and removes duplicates while keeping order.
func cleanObjectives(tags []string) []string {
	trimmed := lo.FilterMap(tags, func(tag string, _ int) (string, bool) {
		label := models.NormalizeObjective(tag)
		return label, label != ""
	})
	return lo.Uniq(trimmed)
}
