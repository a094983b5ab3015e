package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

func TestAggregateObjectivesLengthMismatch(t *testing.T) {
	_, err := AggregateObjectives([]models.ExpectationCategory{models.ExpectationMeets}, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestAggregateObjectivesNoTags(t *testing.T) {
	result, err := AggregateObjectives(
		[]models.ExpectationCategory{models.ExpectationMeets, models.ExpectationBelow},
		[][]string{{}, {"  "}},
		[]string{"LO1"},
	)
	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestAggregateObjectivesPerObjectiveDenominator(t *testing.T) {
	categories := []models.ExpectationCategory{
		models.ExpectationExceeds,
		models.ExpectationBelow,
		models.ExpectationMeets,
		models.ExpectationNull,
	}
	tags := [][]string{{"LO1"}, {"LO1", "LO2"}, {"LO2"}, {}}

	result, err := AggregateObjectives(categories, tags, nil)
	require.NoError(t, err)
	require.Len(t, result, 2)

	assert.Equal(t, "LO1", result[0].Objective)
	assert.Equal(t, models.CategoryCounts{1, 0, 1, 0}, result[0].Counts)
	assert.Equal(t, models.CategoryBreakdown{0.5, 0, 0.5, 0}, result[0].Percentages)

	assert.Equal(t, "LO2", result[1].Objective)
	assert.Equal(t, models.CategoryCounts{0, 1, 1, 0}, result[1].Counts)
	assert.Equal(t, 2, result[1].Observations)
}

func TestAggregateObjectivesDuplicateTagCountsOnce(t *testing.T) {
	result, err := AggregateObjectives(
		[]models.ExpectationCategory{models.ExpectationExceeds},
		[][]string{{"LO1", " LO1 ", "LO1"}},
		nil,
	)
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, 1, result[0].Observations)
}

func TestAggregateObjectivesUniverseOrderAndOmission(t *testing.T) {
	categories := []models.ExpectationCategory{models.ExpectationMeets, models.ExpectationExceeds}
	tags := [][]string{{"LO3"}, {"LO1"}}

	result, err := AggregateObjectives(categories, tags, []string{"LO1", "LO2", "LO3"})
	require.NoError(t, err)
	require.Len(t, result, 2)
	assert.Equal(t, "LO1", result[0].Objective)
	assert.Equal(t, "LO3", result[1].Objective)
	for _, entry := range result {
		assert.NotEqual(t, "LO2", entry.Objective, "untagged universe objective must not get a zero row")
	}
}

func TestAggregateObjectivesPercentagesSumToOneAndRoundTrip(t *testing.T) {
	categories := []models.ExpectationCategory{
		models.ExpectationExceeds, models.ExpectationExceeds, models.ExpectationMeets,
		models.ExpectationBelow, models.ExpectationNull, models.ExpectationBelow, models.ExpectationMeets,
	}
	tags := [][]string{{"A"}, {"A", "B"}, {"B"}, {"A", "C"}, {"C"}, {"B"}, {"A"}}

	result, err := AggregateObjectives(categories, tags, nil)
	require.NoError(t, err)
	require.NotEmpty(t, result)
	for _, entry := range result {
		var sum float64
		for i, pct := range entry.Percentages {
			sum += pct
			expanded := int(math.Round(pct * float64(entry.Observations)))
			assert.Equal(t, entry.Counts[i], expanded, "objective %s slot %d", entry.Objective, i)
		}
		assert.InDelta(t, 1.0, sum, 1e-9)
	}
}
