package stats

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

// ComputeAssignmentRubric derives the assignment result object from the rubric
// definition and the recent graded submissions.
func (e *Engine) ComputeAssignmentRubric(in models.AssignmentRubricInput) (*models.AssignmentRubricStatisticsResult, error) {
	if err := validateRubricInput(in); err != nil {
		return nil, err
	}

	maxPoints := lo.SumBy(in.Criteria, func(c models.RubricCriterion) float64 { return c.MaxCategoryPoints })

	normalized := make([]*float64, len(in.Submissions))
	var normalizedValues []float64
	for i, submission := range in.Submissions {
		if maxPoints == 0 {
			continue
		}
		score := submission.CanvasAssignmentScore / maxPoints
		normalized[i] = &score
		normalizedValues = append(normalizedValues, score)
	}

	categories, counts := e.thresholds.classifyAll(normalized)

	criterionPoints := collectCriterionPoints(in.Criteria, in.Submissions)
	averages := make([]*float64, len(in.Criteria))
	medians := make([]*float64, len(in.Criteria))
	frequencies := make([]models.CriterionAnswerFrequency, len(in.Criteria))
	for i, criterion := range in.Criteria {
		points := criterionPoints[i]
		averages[i] = Mean(points)
		medians[i] = Median(points)
		frequencies[i] = ratingFrequencies(criterion, points)
	}

	objectives := []models.ObjectivePercentages{}
	if len(in.Submissions) > 0 {
		var err error
		objectives, err = AggregateObjectives(criterionCategories(categories, len(in.Criteria)), in.TagsPerCriterion, in.ObjectiveUniverse)
		if err != nil {
			return nil, err
		}
	}

	return &models.AssignmentRubricStatisticsResult{
		MaxAssignmentPoints:                  maxPoints,
		SubmissionCount:                      len(in.Submissions),
		AssignmentAveragePointsEarned:        Mean(normalizedValues),
		AssignmentMedianPointsEarned:         Median(normalizedValues),
		AssignmentPercentageCategories:       counts.Percentages(),
		PerSubmissionCategories:              categories,
		PerRubricCriteriaAveragePointsEarned: averages,
		PerRubricCriteriaMedianPointsEarned:  medians,
		PerRubricCriteriaAnswerFrequencies:   frequencies,
		PerLearningObjPercentageCategories:   objectives,
	}, nil
}

func validateRubricInput(in models.AssignmentRubricInput) error {
	if len(in.TagsPerCriterion) != len(in.Criteria) {
		return fmt.Errorf("%w: %d rubric criteria but %d objective tag lists", ErrInvalidInput, len(in.Criteria), len(in.TagsPerCriterion))
	}
	for _, criterion := range in.Criteria {
		seen := make(map[float64]struct{}, len(criterion.Ratings))
		for _, rating := range criterion.Ratings {
			if _, dup := seen[rating.RatingPoints]; dup {
				return fmt.Errorf("%w: criterion %q has more than one rating worth %v points", ErrInvalidInput, criterion.ID, rating.RatingPoints)
			}
			seen[rating.RatingPoints] = struct{}{}
		}
	}
	return nil
}

// collectCriterionPoints gathers, per criterion, the raw points every submission
// reported for it. Submissions may skip criteria.
func collectCriterionPoints(criteria []models.RubricCriterion, submissions []models.SubmissionScore) [][]float64 {
	index := make(map[string][]int, len(criteria))
	for i, criterion := range criteria {
		index[criterion.ID] = append(index[criterion.ID], i)
	}
	points := make([][]float64, len(criteria))
	for _, submission := range submissions {
		for _, score := range submission.RubricCategoryScores {
			for _, i := range index[score.ID] {
				points[i] = append(points[i], score.Points)
			}
		}
	}
	return points
}

func ratingFrequencies(criterion models.RubricCriterion, points []float64) models.CriterionAnswerFrequency {
	counts := make([]models.RatingFrequency, len(criterion.Ratings))
	for i, rating := range criterion.Ratings {
		counts[i] = models.RatingFrequency{
			Description:  rating.Description,
			RatingPoints: rating.RatingPoints,
			RatingCount:  lo.Count(points, rating.RatingPoints),
		}
	}
	if points == nil {
		points = []float64{}
	}
	return models.CriterionAnswerFrequency{
		ID:           criterion.ID,
		Description:  criterion.Description,
		Points:       points,
		RatingCounts: counts,
	}
}

// criterionCategories lines the submission categories up with criterion
// positions: criterion i takes the category of submission i, and criteria
// without a matching submission are NULL.
func criterionCategories(submissionCategories []models.ExpectationCategory, criteria int) []models.ExpectationCategory {
	out := make([]models.ExpectationCategory, criteria)
	for i := range out {
		if i < len(submissionCategories) {
			out[i] = submissionCategories[i]
			continue
		}
		out[i] = models.ExpectationNull
	}
	return out
}
