package dto

import "github.com/noah-isme/outcome-stats-api/internal/models"

// QuizStatisticsRequest carries a platform quiz report plus the objective tags
// of every question, in question order.
type QuizStatisticsRequest struct {
	models.QuizStatistic
	Objectives [][]string `json:"objectives"`
}

// StoredQuizStatisticsRequest is a quiz report whose tags come from the stored quiz match.
type StoredQuizStatisticsRequest struct {
	models.QuizStatistic
}

// AssignmentRubricStatisticsRequest defines the ad-hoc rubric statistics payload.
type AssignmentRubricStatisticsRequest struct {
	Criteria          []models.RubricCriterion `json:"criteria"`
	Submissions       []models.SubmissionScore `json:"submissions"`
	Objectives        [][]string               `json:"objectives"`
	ObjectiveUniverse []string                 `json:"objective_universe"`
}

// StoredAssignmentRubricStatisticsRequest is a rubric whose tags and objective
// universe come from storage.
type StoredAssignmentRubricStatisticsRequest struct {
	Criteria    []models.RubricCriterion `json:"criteria"`
	Submissions []models.SubmissionScore `json:"submissions"`
}

// ExportFormat enumerates the supported export encodings.
type ExportFormat string

const (
	ExportFormatCSV ExportFormat = "csv"
	ExportFormatPDF ExportFormat = "pdf"
)

// ExportFile is a rendered export ready to stream back to the client.
type ExportFile struct {
	Filename    string
	ContentType string
	Payload     []byte
}
