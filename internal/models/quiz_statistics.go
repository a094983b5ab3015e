package models

import (
	"bytes"
	"encoding/json"
)

// QuestionType enumerates the quiz question kinds reported by the grading platform.
type QuestionType string

const (
	QuestionTypeMultipleChoice       QuestionType = "multiple_choice_question"
	QuestionTypeTrueFalse            QuestionType = "true_false_question"
	QuestionTypeMultipleAnswers      QuestionType = "multiple_answers_question"
	QuestionTypeFillInMultipleBlanks QuestionType = "fill_in_multiple_blanks_question"
	QuestionTypeMultipleDropdowns    QuestionType = "multiple_dropdowns_question"
	QuestionTypeEssay                QuestionType = "essay_question"
	QuestionTypeNumerical            QuestionType = "numerical_question"
	QuestionTypeShortAnswer          QuestionType = "short_answer_question"
)

// UsesAnswerSets reports whether the question type groups its answers into answer sets.
func (t QuestionType) UsesAnswerSets() bool {
	return t == QuestionTypeFillInMultipleBlanks || t == QuestionTypeMultipleDropdowns
}

// AnswerID holds an answer identifier that the reporting API emits either as
// a number or as a string ("top", "ungraded", ...).
type AnswerID string

// UnmarshalJSON accepts both JSON strings and numbers.
func (id *AnswerID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = AnswerID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = AnswerID(n.String())
	return nil
}

// AnswerStatistic is the per-answer slice of a question report.
type AnswerStatistic struct {
	ID        AnswerID `json:"id"`
	Text      string   `json:"text"`
	Correct   bool     `json:"correct"`
	Responses int      `json:"responses"`
	UserIDs   []int64  `json:"user_ids"`
}

// Label returns the text shown for the answer, falling back to its id.
func (a AnswerStatistic) Label() string {
	if a.Text != "" {
		return a.Text
	}
	return string(a.ID)
}

// AnswerSetStatistic groups sub-answers for multi-blank and multi-dropdown questions.
type AnswerSetStatistic struct {
	ID      AnswerID          `json:"id"`
	Text    string            `json:"text"`
	Answers []AnswerStatistic `json:"answers"`
}

// QuestionStatistic is one question's raw report.
type QuestionStatistic struct {
	ID               AnswerID             `json:"id"`
	QuestionType     QuestionType         `json:"question_type"`
	QuestionText     string               `json:"question_text"`
	Position         int                  `json:"position"`
	Responses        int                  `json:"responses"`
	Answers          []AnswerStatistic    `json:"answers,omitempty"`
	AnswerSets       []AnswerSetStatistic `json:"answer_sets,omitempty"`
	DifficultyIndex  *float64             `json:"difficulty_index"`
	Correct          *int                 `json:"correct"`
	Incorrect        *int                 `json:"incorrect"`
	PartiallyCorrect *int                 `json:"partially_correct"`
	FullCredit       *int                 `json:"full_credit"`
}

// UnmarshalJSON accepts both "answer_sets" and the platform's "answerSets" key.
func (q *QuestionStatistic) UnmarshalJSON(data []byte) error {
	type alias QuestionStatistic
	aux := struct {
		*alias
		LegacyAnswerSets []AnswerSetStatistic `json:"answerSets"`
	}{alias: (*alias)(q)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if len(q.AnswerSets) == 0 && len(aux.LegacyAnswerSets) > 0 {
		q.AnswerSets = aux.LegacyAnswerSets
	}
	return nil
}

// SubmissionStatistics is the quiz-level score histogram and summary.
type SubmissionStatistics struct {
	Scores       map[string]int `json:"scores"`
	ScoreAverage *float64       `json:"score_average"`
	ScoreHigh    *float64       `json:"score_high"`
	ScoreLow     *float64       `json:"score_low"`
}

// QuizStatistic is the quiz statistics report consumed by the engine.
type QuizStatistic struct {
	SubmissionStatistics SubmissionStatistics `json:"submission_statistics"`
	QuestionStatistics   []QuestionStatistic  `json:"question_statistics"`
}

// AnswerFrequency is a single (label, response count) pair.
type AnswerFrequency struct {
	AnswerText     string `json:"answer_text"`
	FrequencyCount int    `json:"frequency_count"`
}

// AnswerSetFrequency holds the answer frequencies of one answer set.
type AnswerSetFrequency struct {
	AnswerSetText     string            `json:"answer_set_text"`
	AnswerFrequencies []AnswerFrequency `json:"answer_frequencies"`
}

// QuestionAnswerFrequency is the reshaped answer distribution of one question.
type QuestionAnswerFrequency struct {
	QuestionType         QuestionType         `json:"question_type"`
	QuestionText         string               `json:"question_text"`
	AnswerFrequencies    []AnswerFrequency    `json:"answer_frequencies"`
	AnswerSetFrequencies []AnswerSetFrequency `json:"answer_set_frequencies"`
}

// QuizStatisticsResult is the computed quiz result object.
type QuizStatisticsResult struct {
	QuizAveragePointsEarned            *float64                  `json:"quizAveragePointsEarned"`
	QuizMedianPointsEarned             *float64                  `json:"quizMedianPointsEarned"`
	QuizPercentageCategories           *CategoryBreakdown        `json:"quizPercentageCategories"`
	PerQuestionItemDifficulty          []*float64                `json:"perQuestionItemDifficulty"`
	PerQuestionAveragePointsEarned     []*float64                `json:"perQuestionAveragePointsEarned"`
	PerQuestionCategories              []ExpectationCategory     `json:"perQuestionCategories"`
	PerQuestionAnswerFrequencies       []QuestionAnswerFrequency `json:"perQuestionAnswerFrequencies"`
	PerLearningObjPercentageCategories []ObjectivePercentages    `json:"perLearningObjPercentageCategories"`
}
