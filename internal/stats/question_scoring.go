package stats

import (
	"strings"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

// questionScorer derives the normalized average of one question, or nil when
// the report does not carry enough data.
type questionScorer func(models.QuestionStatistic) *float64

var questionScorers = map[models.QuestionType]questionScorer{
	models.QuestionTypeMultipleChoice:       scoreMultipleChoice,
	models.QuestionTypeTrueFalse:            scoreTrueFalse,
	models.QuestionTypeMultipleAnswers:      scoreMultipleAnswers,
	models.QuestionTypeFillInMultipleBlanks: scoreFillInMultipleBlanks,
	models.QuestionTypeMultipleDropdowns:    scoreMultipleDropdowns,
	models.QuestionTypeEssay:                scoreEssay,
	models.QuestionTypeNumerical:            scoreNumerical,
	models.QuestionTypeShortAnswer:          scoreShortAnswer,
}

// SupportedQuestionType reports whether a scorer exists for t.
func SupportedQuestionType(t models.QuestionType) bool {
	_, ok := questionScorers[t]
	return ok
}

// weightedAverage sums weight(answer) * responses over the total response count.
func weightedAverage(answers []models.AnswerStatistic, weight func(models.AnswerStatistic) float64) *float64 {
	var sum float64
	total := 0
	for _, answer := range answers {
		sum += weight(answer) * float64(answer.Responses)
		total += answer.Responses
	}
	if total <= 0 {
		return nil
	}
	return ptr(sum / float64(total))
}

func correctWeight(answer models.AnswerStatistic) float64 {
	if answer.Correct {
		return 1
	}
	return 0
}

func scoreMultipleChoice(q models.QuestionStatistic) *float64 {
	if len(q.Answers) == 0 {
		return nil
	}
	return weightedAverage(q.Answers, correctWeight)
}

// True/false answers are reported as the literal "True" and "False" options.
func scoreTrueFalse(q models.QuestionStatistic) *float64 {
	if len(q.Answers) == 0 {
		return nil
	}
	return weightedAverage(q.Answers, func(answer models.AnswerStatistic) float64 {
		if strings.EqualFold(strings.TrimSpace(answer.Text), "true") {
			return 1
		}
		return 0
	})
}

// Each of the k correct options is worth 1/k; wrong selections subtract 1/k
// and a student's total never drops below zero.
func scoreMultipleAnswers(q models.QuestionStatistic) *float64 {
	if len(q.Answers) == 0 {
		return nil
	}
	correctOptions := 0
	for _, answer := range q.Answers {
		if answer.Correct {
			correctOptions++
		}
	}
	if correctOptions == 0 {
		return nil
	}
	step := 1 / float64(correctOptions)

	users := distinctUsers(q.Answers)
	if len(users) == 0 {
		return nil
	}
	scores := make(map[int64]float64, len(users))
	for _, answer := range q.Answers {
		delta := -step
		if answer.Correct {
			delta = step
		}
		for _, id := range uniqueIDs(answer.UserIDs) {
			scores[id] += delta
		}
	}

	var sum float64
	for _, id := range users {
		if s := scores[id]; s > 0 {
			sum += s
		}
	}
	return clampUnit(sum / float64(len(users)))
}

func scoreFillInMultipleBlanks(q models.QuestionStatistic) *float64 {
	if len(q.AnswerSets) == 0 {
		return nil
	}
	var flat []models.AnswerStatistic
	for _, set := range q.AnswerSets {
		flat = append(flat, set.Answers...)
	}
	return weightedAverage(flat, correctWeight)
}

// The denominator is the platform's correct + partially_correct + incorrect
// count, while the numerator is rebuilt per student from the answer sets.
func scoreMultipleDropdowns(q models.QuestionStatistic) *float64 {
	if len(q.AnswerSets) == 0 {
		return nil
	}
	total := intValue(q.Correct) + intValue(q.PartiallyCorrect) + intValue(q.Incorrect)
	if total <= 0 {
		return nil
	}

	var flat []models.AnswerStatistic
	for _, set := range q.AnswerSets {
		flat = append(flat, set.Answers...)
	}
	users := distinctUsers(flat)

	type tally struct{ correct, selections int }
	perUser := make(map[int64]*tally, len(users))
	for _, id := range users {
		perUser[id] = &tally{}
	}
	for _, answer := range flat {
		for _, id := range uniqueIDs(answer.UserIDs) {
			t := perUser[id]
			t.selections++
			if answer.Correct {
				t.correct++
			}
		}
	}

	var sum float64
	for _, id := range users {
		t := perUser[id]
		sum += float64(t.correct) / float64(t.selections)
	}
	return clampUnit(sum / float64(total))
}

// Essays are either ungraded (full credit) or bucketed into top/middle/bottom thirds.
func scoreEssay(q models.QuestionStatistic) *float64 {
	if len(q.Answers) == 0 {
		return nil
	}
	if q.Answers[0].ID == "ungraded" {
		return ptr(1)
	}
	return weightedAverage(q.Answers, func(answer models.AnswerStatistic) float64 {
		switch answer.ID {
		case "top":
			return 1
		case "middle":
			return 0.5
		default:
			return 0
		}
	})
}

// full_credit can undercount, so the larger of it and responses is the denominator.
func scoreNumerical(q models.QuestionStatistic) *float64 {
	if len(q.Answers) == 0 {
		return nil
	}
	denominator := intValue(q.FullCredit)
	if q.Responses > denominator {
		denominator = q.Responses
	}
	if denominator <= 0 {
		return nil
	}
	return clampUnit(float64(intValue(q.Correct)) / float64(denominator))
}

// A correct counter of exactly zero means every response was marked correct by
// hand. Any other value cannot be turned into an average from aggregates alone.
func scoreShortAnswer(q models.QuestionStatistic) *float64 {
	if len(q.Answers) == 0 || q.Correct == nil {
		return nil
	}
	if *q.Correct == 0 {
		return ptr(1)
	}
	return nil
}

// distinctUsers returns every responding user once, in first-seen order.
func distinctUsers(answers []models.AnswerStatistic) []int64 {
	seen := make(map[int64]struct{})
	var users []int64
	for _, answer := range answers {
		for _, id := range answer.UserIDs {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			users = append(users, id)
		}
	}
	return users
}

func uniqueIDs(ids []int64) []int64 {
	if len(ids) < 2 {
		return ids
	}
	seen := make(map[int64]struct{}, len(ids))
	out := make([]int64, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

func intValue(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

func clampUnit(v float64) *float64 {
	if v < 0 {
		v = 0
	}
	if v > 1 {
		v = 1
	}
	return &v
}
