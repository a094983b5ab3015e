package stats

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	engine, err := NewEngine(DefaultThresholds())
	require.NoError(t, err)
	return engine
}

func sampleQuizReport() models.QuizStatistic {
	return models.QuizStatistic{
		SubmissionStatistics: models.SubmissionStatistics{
			Scores:       map[string]int{"70": 2, "90": 2},
			ScoreAverage: ptr(8),
			ScoreHigh:    ptr(10),
		},
		QuestionStatistics: []models.QuestionStatistic{
			{
				QuestionType:    models.QuestionTypeMultipleChoice,
				QuestionText:    "Pick one",
				DifficultyIndex: ptr(0.75),
				Answers: []models.AnswerStatistic{
					{ID: "1", Text: "A", Correct: true, Responses: 3},
					{ID: "2", Text: "B", Responses: 1},
				},
			},
			{
				QuestionType: models.QuestionTypeEssay,
				QuestionText: "Explain",
				Answers:      []models.AnswerStatistic{{ID: "ungraded", Responses: 4}},
			},
			{
				QuestionType: models.QuestionTypeFillInMultipleBlanks,
				QuestionText: "Fill",
				AnswerSets: []models.AnswerSetStatistic{
					{Text: "blank", Answers: []models.AnswerStatistic{
						{Text: "right", Correct: true, Responses: 1},
						{Text: "wrong", Responses: 3},
					}},
				},
			},
			{
				QuestionType: models.QuestionTypeShortAnswer,
				QuestionText: "Short",
				Correct:      intPtr(2),
				Answers:      []models.AnswerStatistic{{ID: "9", Text: "x", Responses: 2}},
			},
		},
	}
}

func TestComputeQuiz(t *testing.T) {
	engine := newTestEngine(t)
	tags := [][]string{{"LO1"}, {"LO1", "LO2"}, {"LO2"}, {}}

	result, err := engine.ComputeQuiz(sampleQuizReport(), tags)
	require.NoError(t, err)

	require.NotNil(t, result.QuizAveragePointsEarned)
	assert.InDelta(t, 0.8, *result.QuizAveragePointsEarned, 1e-12)
	require.NotNil(t, result.QuizMedianPointsEarned)
	assert.InDelta(t, 0.8, *result.QuizMedianPointsEarned, 1e-12)

	require.Len(t, result.PerQuestionAveragePointsEarned, 4)
	assert.InDelta(t, 0.75, *result.PerQuestionAveragePointsEarned[0], 1e-12)
	assert.InDelta(t, 1.0, *result.PerQuestionAveragePointsEarned[1], 1e-12)
	assert.InDelta(t, 0.25, *result.PerQuestionAveragePointsEarned[2], 1e-12)
	assert.Nil(t, result.PerQuestionAveragePointsEarned[3])

	assert.Equal(t, []models.ExpectationCategory{
		models.ExpectationMeets,
		models.ExpectationExceeds,
		models.ExpectationBelow,
		models.ExpectationNull,
	}, result.PerQuestionCategories)
	require.NotNil(t, result.QuizPercentageCategories)
	assert.Equal(t, models.CategoryBreakdown{0.25, 0.25, 0.25, 0.25}, *result.QuizPercentageCategories)

	require.Len(t, result.PerQuestionItemDifficulty, 4)
	assert.Equal(t, 0.75, *result.PerQuestionItemDifficulty[0])
	assert.Nil(t, result.PerQuestionItemDifficulty[1])

	freq := result.PerQuestionAnswerFrequencies
	require.Len(t, freq, 4)
	assert.Equal(t, []models.AnswerFrequency{{AnswerText: "A", FrequencyCount: 3}, {AnswerText: "B", FrequencyCount: 1}}, freq[0].AnswerFrequencies)
	assert.Equal(t, "ungraded", freq[1].AnswerFrequencies[0].AnswerText)
	assert.Empty(t, freq[2].AnswerFrequencies)
	require.Len(t, freq[2].AnswerSetFrequencies, 1)
	assert.Equal(t, "blank", freq[2].AnswerSetFrequencies[0].AnswerSetText)

	objectives := result.PerLearningObjPercentageCategories
	require.Len(t, objectives, 2)
	assert.Equal(t, "LO1", objectives[0].Objective)
	assert.Equal(t, models.CategoryBreakdown{0.5, 0.5, 0, 0}, objectives[0].Percentages)
	assert.Equal(t, "LO2", objectives[1].Objective)
	assert.Equal(t, models.CategoryBreakdown{0.5, 0, 0.5, 0}, objectives[1].Percentages)
}

func TestComputeQuizUnsupportedQuestionType(t *testing.T) {
	engine := newTestEngine(t)
	report := sampleQuizReport()
	report.QuestionStatistics[1].QuestionType = "matching_question"
	report.QuestionStatistics[3].QuestionType = "calculated_question"

	_, err := engine.ComputeQuiz(report, make([][]string, 4))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnsupportedQuestionType)
	assert.Contains(t, err.Error(), "matching_question")
	assert.Contains(t, err.Error(), "calculated_question")
}

func TestComputeQuizMisalignedTags(t *testing.T) {
	engine := newTestEngine(t)
	_, err := engine.ComputeQuiz(sampleQuizReport(), [][]string{{"LO1"}})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestComputeQuizDegradesOnMissingData(t *testing.T) {
	engine := newTestEngine(t)
	report := models.QuizStatistic{
		SubmissionStatistics: models.SubmissionStatistics{ScoreAverage: ptr(5), ScoreHigh: ptr(0)},
		QuestionStatistics: []models.QuestionStatistic{
			{QuestionType: models.QuestionTypeMultipleChoice},
		},
	}
	result, err := engine.ComputeQuiz(report, [][]string{{"LO1"}})
	require.NoError(t, err)
	assert.Nil(t, result.QuizAveragePointsEarned)
	assert.Nil(t, result.QuizMedianPointsEarned)
	assert.Nil(t, result.PerQuestionAveragePointsEarned[0])
	assert.Equal(t, models.CategoryBreakdown{0, 0, 0, 1}, *result.QuizPercentageCategories)
	require.Len(t, result.PerLearningObjPercentageCategories, 1)
	assert.Equal(t, models.CategoryBreakdown{0, 0, 0, 1}, result.PerLearningObjPercentageCategories[0].Percentages)
}

func TestComputeQuizEmptyReport(t *testing.T) {
	engine := newTestEngine(t)
	result, err := engine.ComputeQuiz(models.QuizStatistic{}, nil)
	require.NoError(t, err)
	assert.Nil(t, result.QuizPercentageCategories)
	assert.Empty(t, result.PerQuestionAveragePointsEarned)
	assert.Empty(t, result.PerLearningObjPercentageCategories)
}

func TestComputeQuizFromPlatformJSON(t *testing.T) {
	payload := `{
		"submission_statistics": {"scores": {"50": 1, "100": 2}, "score_average": 8.3, "score_high": 10},
		"question_statistics": [
			{"id": 11, "question_type": "multiple_dropdowns_question", "question_text": "Drop",
			 "correct": 2, "partially_correct": 0, "incorrect": 0,
			 "answerSets": [{"id": "s1", "text": "first", "answers": [{"id": 5, "text": "ok", "correct": true, "responses": 2, "user_ids": [1, 2]}]}]}
		]
	}`
	var report models.QuizStatistic
	require.NoError(t, json.Unmarshal([]byte(payload), &report))
	require.Len(t, report.QuestionStatistics[0].AnswerSets, 1)
	assert.Equal(t, models.AnswerID("5"), report.QuestionStatistics[0].AnswerSets[0].Answers[0].ID)

	result, err := newTestEngine(t).ComputeQuiz(report, [][]string{{"LO1"}})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, *result.QuizMedianPointsEarned, 1e-12)
	assert.InDelta(t, 1.0, *result.PerQuestionAveragePointsEarned[0], 1e-12)
	assert.Equal(t, models.ExpectationExceeds, result.PerQuestionCategories[0])
}

func TestComputeQuizHugeHistogramCounts(t *testing.T) {
	engine := newTestEngine(t)
	report := models.QuizStatistic{
		SubmissionStatistics: models.SubmissionStatistics{
			Scores: map[string]int{"50": math.MaxInt64, "60": 1},
		},
	}

	var result *models.QuizStatisticsResult
	var err error
	require.NotPanics(t, func() { result, err = engine.ComputeQuiz(report, nil) })
	require.NoError(t, err)
	require.NotNil(t, result.QuizMedianPointsEarned)
	assert.InDelta(t, 0.5, *result.QuizMedianPointsEarned, 1e-12)
}
