package models

// RubricRating is one point-valued rating of a rubric criterion.
type RubricRating struct {
	Description  string  `json:"description"`
	RatingPoints float64 `json:"ratingPoints"`
}

// RubricCriterion is a scored category within an assignment rubric.
type RubricCriterion struct {
	ID                string         `json:"id"`
	MaxCategoryPoints float64        `json:"maxCategoryPoints"`
	Description       string         `json:"description"`
	Ratings           []RubricRating `json:"ratings"`
}

// CriterionScore is the points awarded on one criterion of a submission.
type CriterionScore struct {
	ID     string  `json:"id"`
	Points float64 `json:"points"`
}

// SubmissionScore is a single graded submission.
type SubmissionScore struct {
	CanvasAssignmentScore float64          `json:"canvasAssignmentScore"`
	RubricCategoryScores  []CriterionScore `json:"rubricCategoryScores"`
}

// AssignmentRubricInput bundles everything needed to compute rubric statistics.
type AssignmentRubricInput struct {
	Criteria          []RubricCriterion
	Submissions       []SubmissionScore
	TagsPerCriterion  [][]string
	ObjectiveUniverse []string
}

// RatingFrequency counts how many criterion scores matched a rating exactly.
type RatingFrequency struct {
	Description  string  `json:"description"`
	RatingPoints float64 `json:"ratingPoints"`
	RatingCount  int     `json:"ratingCount"`
}

// CriterionAnswerFrequency is the rating distribution of one criterion.
type CriterionAnswerFrequency struct {
	ID           string            `json:"id"`
	Description  string            `json:"description"`
	Points       []float64         `json:"pointsArr"`
	RatingCounts []RatingFrequency `json:"ratingsSubArr"`
}

// AssignmentRubricStatisticsResult is the computed assignment result object.
type AssignmentRubricStatisticsResult struct {
	MaxAssignmentPoints                  float64                    `json:"maxAssignmentPoints"`
	SubmissionCount                      int                        `json:"submissionCount"`
	AssignmentAveragePointsEarned        *float64                   `json:"assignmentAveragePointsEarned"`
	AssignmentMedianPointsEarned         *float64                   `json:"assignmentMedianPointsEarned"`
	AssignmentPercentageCategories       *CategoryBreakdown         `json:"assignmentPercentageCategories"`
	PerSubmissionCategories              []ExpectationCategory      `json:"perSubmissionCategories"`
	PerRubricCriteriaAveragePointsEarned []*float64                 `json:"perRubricCriteriaAveragePointsEarned"`
	PerRubricCriteriaMedianPointsEarned  []*float64                 `json:"perRubricCriteriaMedianPointsEarned"`
	PerRubricCriteriaAnswerFrequencies   []CriterionAnswerFrequency `json:"perRubricCriteriaAnswerFrequencies"`
	PerLearningObjPercentageCategories   []ObjectivePercentages     `json:"perLearningObjPercentageCategories"`
}
