package service

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/outcome-stats-api/internal/dto"
	"github.com/noah-isme/outcome-stats-api/internal/models"
	"github.com/noah-isme/outcome-stats-api/pkg/export"
	appErrors "github.com/noah-isme/outcome-stats-api/pkg/errors"
)

var statisticsExportHeaders = []string{"Section", "Item", "Description", "Average", "Category", "Exceeds", "Meets", "Below", "Not Classified"}

// ExportService renders statistics results into downloadable tables.
type ExportService struct {
	csv    csvRenderer
	pdf    pdfRenderer
	logger *zap.Logger
	now    func() time.Time
}

type csvRenderer interface {
	Render(data export.Dataset) ([]byte, error)
}

type pdfRenderer interface {
	Render(data export.Dataset, title string) ([]byte, error)
}

// NewExportService constructs an ExportService.
func NewExportService(logger *zap.Logger, csv csvRenderer, pdf pdfRenderer) *ExportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if csv == nil {
		csv = export.NewCSVExporter()
	}
	if pdf == nil {
		pdf = export.NewPDFExporter()
	}
	return &ExportService{csv: csv, pdf: pdf, logger: logger, now: time.Now}
}

// ParseFormat validates a requested export format.
func ParseFormat(raw string) (dto.ExportFormat, error) {
	switch format := dto.ExportFormat(strings.ToLower(strings.TrimSpace(raw))); format {
	case dto.ExportFormatCSV, dto.ExportFormatPDF:
		return format, nil
	case "":
		return dto.ExportFormatCSV, nil
	default:
		return "", appErrors.Clonef(appErrors.ErrUnsupportedExportFormat, "unsupported export format %q", raw)
	}
}

// ExportQuiz renders a quiz result.
func (s *ExportService) ExportQuiz(format dto.ExportFormat, name string, result *models.QuizStatisticsResult) (*dto.ExportFile, error) {
	if result == nil {
		return nil, fmt.Errorf("quiz result nil")
	}
	return s.render(format, "quiz", name, "Quiz Statistics", QuizDataset(result))
}

// ExportAssignmentRubric renders an assignment rubric result.
func (s *ExportService) ExportAssignmentRubric(format dto.ExportFormat, name string, result *models.AssignmentRubricStatisticsResult) (*dto.ExportFile, error) {
	if result == nil {
		return nil, fmt.Errorf("assignment result nil")
	}
	return s.render(format, "assignment", name, "Assignment Rubric Statistics", AssignmentRubricDataset(result))
}

func (s *ExportService) render(format dto.ExportFormat, kind, name, title string, dataset export.Dataset) (*dto.ExportFile, error) {
	var (
		payload     []byte
		contentType string
		err         error
	)
	switch format {
	case dto.ExportFormatCSV:
		payload, err = s.csv.Render(dataset)
		contentType = "text/csv"
	case dto.ExportFormatPDF:
		if name != "" {
			title = fmt.Sprintf("%s %s", title, name)
		}
		payload, err = s.pdf.Render(dataset, title)
		contentType = "application/pdf"
	default:
		return nil, appErrors.Clonef(appErrors.ErrUnsupportedExportFormat, "unsupported export format %q", format)
	}
	if err != nil {
		s.logger.Error("render statistics export", zap.String("kind", kind), zap.String("format", string(format)), zap.Error(err))
		return nil, err
	}
	return &dto.ExportFile{
		Filename:    s.buildFilename(kind, name, format),
		ContentType: contentType,
		Payload:     payload,
	}, nil
}

func (s *ExportService) buildFilename(kind, name string, format dto.ExportFormat) string {
	timestamp := s.now().UTC().Format("20060102_150405")
	return fmt.Sprintf("%s_%s_%s.%s", kind, sanitizeFilename(name), timestamp, format)
}

func sanitizeFilename(raw string) string {
	if raw == "" {
		return "statistics"
	}
	replacer := strings.NewReplacer(" ", "_", "/", "-", "\\", "-", ":", "-", "..", ".", "__", "_", `"`, "")
	result := replacer.Replace(raw)
	if len(result) > 100 {
		return result[:100]
	}
	return result
}

// QuizDataset flattens a quiz result into overall, per-question and per-objective rows.
func QuizDataset(result *models.QuizStatisticsResult) export.Dataset {
	rows := make([]map[string]string, 0, 1+len(result.PerQuestionCategories)+len(result.PerLearningObjPercentageCategories))

	overall := breakdownRow(result.QuizPercentageCategories)
	overall["Section"] = "Quiz"
	overall["Item"] = "Overall"
	overall["Description"] = fmt.Sprintf("median %s", formatOptional(result.QuizMedianPointsEarned))
	overall["Average"] = formatOptional(result.QuizAveragePointsEarned)
	rows = append(rows, overall)

	for i, category := range result.PerQuestionCategories {
		row := map[string]string{
			"Section":  "Question",
			"Item":     fmt.Sprintf("Q%d", i+1),
			"Category": string(category),
		}
		if i < len(result.PerQuestionAveragePointsEarned) {
			row["Average"] = formatOptional(result.PerQuestionAveragePointsEarned[i])
		}
		if i < len(result.PerQuestionAnswerFrequencies) {
			freq := result.PerQuestionAnswerFrequencies[i]
			row["Description"] = truncate(fmt.Sprintf("%s: %s", freq.QuestionType, freq.QuestionText), 80)
		}
		rows = append(rows, row)
	}

	rows = append(rows, objectiveRows(result.PerLearningObjPercentageCategories)...)
	return export.Dataset{Headers: statisticsExportHeaders, Rows: rows}
}

// AssignmentRubricDataset flattens a rubric result into overall, per-criterion and per-objective rows.
func AssignmentRubricDataset(result *models.AssignmentRubricStatisticsResult) export.Dataset {
	rows := make([]map[string]string, 0, 1+len(result.PerRubricCriteriaAnswerFrequencies)+len(result.PerLearningObjPercentageCategories))

	overall := breakdownRow(result.AssignmentPercentageCategories)
	overall["Section"] = "Assignment"
	overall["Item"] = "Overall"
	overall["Description"] = fmt.Sprintf("median %s, %d submissions, %s max points",
		formatOptional(result.AssignmentMedianPointsEarned), result.SubmissionCount, formatFloat(result.MaxAssignmentPoints))
	overall["Average"] = formatOptional(result.AssignmentAveragePointsEarned)
	rows = append(rows, overall)

	for i, criterion := range result.PerRubricCriteriaAnswerFrequencies {
		row := map[string]string{
			"Section": "Criterion",
			"Item":    criterion.ID,
		}
		median := ""
		if i < len(result.PerRubricCriteriaMedianPointsEarned) {
			median = formatOptional(result.PerRubricCriteriaMedianPointsEarned[i])
		}
		row["Description"] = truncate(fmt.Sprintf("%s (median %s)", criterion.Description, median), 80)
		if i < len(result.PerRubricCriteriaAveragePointsEarned) {
			row["Average"] = formatOptional(result.PerRubricCriteriaAveragePointsEarned[i])
		}
		rows = append(rows, row)
	}

	rows = append(rows, objectiveRows(result.PerLearningObjPercentageCategories)...)
	return export.Dataset{Headers: statisticsExportHeaders, Rows: rows}
}

func objectiveRows(objectives []models.ObjectivePercentages) []map[string]string {
	rows := make([]map[string]string, 0, len(objectives))
	for _, objective := range objectives {
		breakdown := objective.Percentages
		row := breakdownRow(&breakdown)
		row["Section"] = "Objective"
		row["Item"] = objective.Objective
		row["Description"] = fmt.Sprintf("%d observations", objective.Observations)
		rows = append(rows, row)
	}
	return rows
}

func breakdownRow(breakdown *models.CategoryBreakdown) map[string]string {
	row := map[string]string{}
	if breakdown == nil {
		return row
	}
	row["Exceeds"] = formatFloat(breakdown[0])
	row["Meets"] = formatFloat(breakdown[1])
	row["Below"] = formatFloat(breakdown[2])
	row["Not Classified"] = formatFloat(breakdown[3])
	return row
}

func formatOptional(value *float64) string {
	if value == nil {
		return ""
	}
	return formatFloat(*value)
}

func formatFloat(value float64) string {
	return fmt.Sprintf("%.4f", value)
}

func truncate(raw string, limit int) string {
	runes := []rune(raw)
	if len(runes) <= limit {
		return raw
	}
	return string(runes[:limit-3]) + "..."
}
