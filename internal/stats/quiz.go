package stats

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

// ComputeQuiz derives the quiz result object from a question statistics report
// and one objective tag list per question.
func (e *Engine) ComputeQuiz(report models.QuizStatistic, tagsPerQuestion [][]string) (*models.QuizStatisticsResult, error) {
	questions := report.QuestionStatistics
	if len(tagsPerQuestion) != len(questions) {
		return nil, fmt.Errorf("%w: %d questions but %d objective tag lists", ErrInvalidInput, len(questions), len(tagsPerQuestion))
	}
	if err := validateQuestionTypes(questions); err != nil {
		return nil, err
	}

	median, err := quizMedian(report.SubmissionStatistics)
	if err != nil {
		return nil, err
	}

	averages := make([]*float64, len(questions))
	difficulties := make([]*float64, len(questions))
	frequencies := make([]models.QuestionAnswerFrequency, len(questions))
	for i, q := range questions {
		averages[i] = questionScorers[q.QuestionType](q)
		difficulties[i] = q.DifficultyIndex
		frequencies[i] = answerFrequencies(q)
	}

	categories, counts := e.thresholds.classifyAll(averages)

	objectives, err := AggregateObjectives(categories, tagsPerQuestion, nil)
	if err != nil {
		return nil, err
	}

	return &models.QuizStatisticsResult{
		QuizAveragePointsEarned:            quizAverage(report.SubmissionStatistics),
		QuizMedianPointsEarned:             median,
		QuizPercentageCategories:           counts.Percentages(),
		PerQuestionItemDifficulty:          difficulties,
		PerQuestionAveragePointsEarned:     averages,
		PerQuestionCategories:              categories,
		PerQuestionAnswerFrequencies:       frequencies,
		PerLearningObjPercentageCategories: objectives,
	}, nil
}

// validateQuestionTypes reports every question with an unknown type at once.
func validateQuestionTypes(questions []models.QuestionStatistic) error {
	var result *multierror.Error
	for i, q := range questions {
		if !SupportedQuestionType(q.QuestionType) {
			result = multierror.Append(result, fmt.Errorf("question %d: %w: %q", i, ErrUnsupportedQuestionType, q.QuestionType))
		}
	}
	return result.ErrorOrNil()
}

func quizAverage(s models.SubmissionStatistics) *float64 {
	if s.ScoreAverage == nil || s.ScoreHigh == nil || *s.ScoreHigh == 0 {
		return nil
	}
	return ptr(*s.ScoreAverage / *s.ScoreHigh)
}

// Histogram buckets are percentages, so the median is rescaled to [0,1].
func quizMedian(s models.SubmissionStatistics) (*float64, error) {
	median, err := HistogramMedian(s.Scores)
	if err != nil || median == nil {
		return nil, err
	}
	return ptr(*median / 100), nil
}

func answerFrequencies(q models.QuestionStatistic) models.QuestionAnswerFrequency {
	out := models.QuestionAnswerFrequency{
		QuestionType:         q.QuestionType,
		QuestionText:         q.QuestionText,
		AnswerFrequencies:    []models.AnswerFrequency{},
		AnswerSetFrequencies: []models.AnswerSetFrequency{},
	}
	if q.QuestionType.UsesAnswerSets() {
		for _, set := range q.AnswerSets {
			out.AnswerSetFrequencies = append(out.AnswerSetFrequencies, models.AnswerSetFrequency{
				AnswerSetText:     set.Text,
				AnswerFrequencies: flatFrequencies(set.Answers),
			})
		}
		return out
	}
	out.AnswerFrequencies = flatFrequencies(q.Answers)
	return out
}

func flatFrequencies(answers []models.AnswerStatistic) []models.AnswerFrequency {
	out := make([]models.AnswerFrequency, 0, len(answers))
	for _, answer := range answers {
		out = append(out, models.AnswerFrequency{AnswerText: answer.Label(), FrequencyCount: answer.Responses})
	}
	return out
}
