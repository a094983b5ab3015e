package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

func intPtr(v int) *int {
	return &v
}

func TestScoreMultipleChoice(t *testing.T) {
	q := models.QuestionStatistic{
		QuestionType: models.QuestionTypeMultipleChoice,
		Answers: []models.AnswerStatistic{
			{ID: "1", Text: "A", Correct: true, Responses: 3},
			{ID: "2", Text: "B", Correct: false, Responses: 1},
		},
	}
	got := scoreMultipleChoice(q)
	require.NotNil(t, got)
	assert.InDelta(t, 0.75, *got, 1e-12)

	assert.Nil(t, scoreMultipleChoice(models.QuestionStatistic{}))
	q.Answers[0].Responses, q.Answers[1].Responses = 0, 0
	assert.Nil(t, scoreMultipleChoice(q), "zero responses")
}

func TestScoreTrueFalse(t *testing.T) {
	q := models.QuestionStatistic{
		Answers: []models.AnswerStatistic{
			{Text: "True", Responses: 4},
			{Text: "False", Responses: 1},
		},
	}
	got := scoreTrueFalse(q)
	require.NotNil(t, got)
	assert.InDelta(t, 0.8, *got, 1e-12)
}

func TestScoreMultipleAnswers(t *testing.T) {
	t.Run("one right one wrong floors at zero", func(t *testing.T) {
		q := models.QuestionStatistic{
			Responses: 1,
			Answers: []models.AnswerStatistic{
				{ID: "a", Correct: true, UserIDs: []int64{1}},
				{ID: "b", Correct: true},
				{ID: "c", Correct: false, UserIDs: []int64{1}},
			},
		}
		got := scoreMultipleAnswers(q)
		require.NotNil(t, got)
		assert.InDelta(t, 0, *got, 1e-12)
	})

	t.Run("averages across distinct users", func(t *testing.T) {
		q := models.QuestionStatistic{
			Responses: 3,
			Answers: []models.AnswerStatistic{
				{ID: "a", Correct: true, UserIDs: []int64{1, 2}},
				{ID: "b", Correct: true, UserIDs: []int64{1}},
				{ID: "c", Correct: false, UserIDs: []int64{2, 3}},
			},
		}
		// user 1: 1.0, user 2: 0.5-0.5=0, user 3: max(-0.5,0)=0
		got := scoreMultipleAnswers(q)
		require.NotNil(t, got)
		assert.InDelta(t, 1.0/3.0, *got, 1e-12)
	})

	t.Run("no correct options", func(t *testing.T) {
		q := models.QuestionStatistic{Answers: []models.AnswerStatistic{{ID: "a", UserIDs: []int64{1}}}}
		assert.Nil(t, scoreMultipleAnswers(q))
	})

	t.Run("no responders", func(t *testing.T) {
		q := models.QuestionStatistic{Answers: []models.AnswerStatistic{{ID: "a", Correct: true}}}
		assert.Nil(t, scoreMultipleAnswers(q))
	})
}

func TestScoreFillInMultipleBlanks(t *testing.T) {
	q := models.QuestionStatistic{
		AnswerSets: []models.AnswerSetStatistic{
			{Text: "blank1", Answers: []models.AnswerStatistic{{Correct: true, Responses: 2}, {Responses: 2}}},
			{Text: "blank2", Answers: []models.AnswerStatistic{{Correct: true, Responses: 4}}},
		},
	}
	got := scoreFillInMultipleBlanks(q)
	require.NotNil(t, got)
	assert.InDelta(t, 0.75, *got, 1e-12)
	assert.Nil(t, scoreFillInMultipleBlanks(models.QuestionStatistic{}))
}

func TestScoreMultipleDropdowns(t *testing.T) {
	q := models.QuestionStatistic{
		Correct:          intPtr(1),
		PartiallyCorrect: intPtr(1),
		Incorrect:        intPtr(0),
		AnswerSets: []models.AnswerSetStatistic{
			{Text: "d1", Answers: []models.AnswerStatistic{
				{Correct: true, UserIDs: []int64{1, 2}},
			}},
			{Text: "d2", Answers: []models.AnswerStatistic{
				{Correct: true, UserIDs: []int64{1}},
				{Correct: false, UserIDs: []int64{2}},
			}},
		},
	}
	// user 1: 2/2, user 2: 1/2 -> (1 + 0.5) / 2
	got := scoreMultipleDropdowns(q)
	require.NotNil(t, got)
	assert.InDelta(t, 0.75, *got, 1e-12)

	q.Correct, q.PartiallyCorrect, q.Incorrect = nil, nil, nil
	assert.Nil(t, scoreMultipleDropdowns(q), "no aggregate counters")
}

func TestScoreEssay(t *testing.T) {
	ungraded := models.QuestionStatistic{Answers: []models.AnswerStatistic{{ID: "ungraded", Responses: 5}}}
	got := scoreEssay(ungraded)
	require.NotNil(t, got)
	assert.Equal(t, 1.0, *got)

	graded := models.QuestionStatistic{Answers: []models.AnswerStatistic{
		{ID: "top", Responses: 2},
		{ID: "middle", Responses: 2},
		{ID: "bottom", Responses: 4},
	}}
	got = scoreEssay(graded)
	require.NotNil(t, got)
	assert.InDelta(t, 3.0/8.0, *got, 1e-12)

	assert.Nil(t, scoreEssay(models.QuestionStatistic{}))
}

func TestScoreNumerical(t *testing.T) {
	q := models.QuestionStatistic{
		Responses:  4,
		Correct:    intPtr(3),
		FullCredit: intPtr(2),
		Answers:    []models.AnswerStatistic{{ID: "1"}},
	}
	got := scoreNumerical(q)
	require.NotNil(t, got)
	assert.InDelta(t, 0.75, *got, 1e-12)

	q.FullCredit = intPtr(6)
	got = scoreNumerical(q)
	require.NotNil(t, got)
	assert.InDelta(t, 0.5, *got, 1e-12)

	q.FullCredit, q.Responses = nil, 0
	assert.Nil(t, scoreNumerical(q))
}

func TestScoreShortAnswer(t *testing.T) {
	q := models.QuestionStatistic{Correct: intPtr(0), Answers: []models.AnswerStatistic{{ID: "1"}}}
	got := scoreShortAnswer(q)
	require.NotNil(t, got)
	assert.Equal(t, 1.0, *got)

	q.Correct = intPtr(4)
	assert.Nil(t, scoreShortAnswer(q))

	q.Correct = nil
	assert.Nil(t, scoreShortAnswer(q))
}

func TestEveryQuestionTypeHasScorer(t *testing.T) {
	for _, qt := range []models.QuestionType{
		models.QuestionTypeMultipleChoice,
		models.QuestionTypeTrueFalse,
		models.QuestionTypeMultipleAnswers,
		models.QuestionTypeFillInMultipleBlanks,
		models.QuestionTypeMultipleDropdowns,
		models.QuestionTypeEssay,
		models.QuestionTypeNumerical,
		models.QuestionTypeShortAnswer,
	} {
		assert.True(t, SupportedQuestionType(qt), qt)
		assert.Nil(t, questionScorers[qt](models.QuestionStatistic{QuestionType: qt}), "empty %s report", qt)
	}
	assert.False(t, SupportedQuestionType("matching_question"))
}
