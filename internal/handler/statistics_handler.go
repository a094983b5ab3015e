package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/outcome-stats-api/internal/dto"
	"github.com/noah-isme/outcome-stats-api/internal/middleware"
	"github.com/noah-isme/outcome-stats-api/internal/models"
	"github.com/noah-isme/outcome-stats-api/internal/service"
	appErrors "github.com/noah-isme/outcome-stats-api/pkg/errors"
	"github.com/noah-isme/outcome-stats-api/pkg/response"
)

type statisticsService interface {
	ComputeQuiz(ctx context.Context, req dto.QuizStatisticsRequest) (*models.QuizStatisticsResult, error)
	ComputeStoredQuiz(ctx context.Context, courseID, quizID int64, report models.QuizStatistic) (*models.QuizStatisticsResult, bool, error)
	ComputeAssignmentRubric(ctx context.Context, req dto.AssignmentRubricStatisticsRequest) (*models.AssignmentRubricStatisticsResult, error)
	ComputeStoredAssignmentRubric(ctx context.Context, courseID, assignmentID int64, req dto.StoredAssignmentRubricStatisticsRequest) (*models.AssignmentRubricStatisticsResult, bool, error)
}

type statisticsExporter interface {
	ExportQuiz(format dto.ExportFormat, name string, result *models.QuizStatisticsResult) (*dto.ExportFile, error)
	ExportAssignmentRubric(format dto.ExportFormat, name string, result *models.AssignmentRubricStatisticsResult) (*dto.ExportFile, error)
}

// StatisticsHandler exposes quiz and assignment rubric statistics endpoints.
type StatisticsHandler struct {
	statistics statisticsService
	exports    statisticsExporter
}

// NewStatisticsHandler constructs the handler. A nil exporter disables the export endpoints.
func NewStatisticsHandler(statistics statisticsService, exports statisticsExporter) *StatisticsHandler {
	return &StatisticsHandler{statistics: statistics, exports: exports}
}

// Quiz godoc
// @Summary Compute quiz statistics
// @Tags Statistics
// @Accept json
// @Produce json
// @Param payload body dto.QuizStatisticsRequest true "Quiz report with per-question objective tags"
// @Success 200 {object} response.Envelope
// @Router /statistics/quiz [post]
func (h *StatisticsHandler) Quiz(c *gin.Context) {
	var req dto.QuizStatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid quiz statistics payload"))
		return
	}
	start := time.Now()
	result, err := h.statistics.ComputeQuiz(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, result, false, start)
}

// StoredQuiz godoc
// @Summary Compute quiz statistics with stored objective tags
// @Tags Statistics
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Param payload body dto.StoredQuizStatisticsRequest true "Quiz report"
// @Success 200 {object} response.Envelope
// @Router /statistics/quiz/{courseId}/{quizId} [post]
func (h *StatisticsHandler) StoredQuiz(c *gin.Context) {
	courseID, quizID, err := itemPathIDs(c, "quizId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.StoredQuizStatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid quiz statistics payload"))
		return
	}
	start := time.Now()
	result, cacheHit, err := h.statistics.ComputeStoredQuiz(c.Request.Context(), courseID, quizID, req.QuizStatistic)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, result, cacheHit, start)
}

// AssignmentRubric godoc
// @Summary Compute assignment rubric statistics
// @Tags Statistics
// @Accept json
// @Produce json
// @Param payload body dto.AssignmentRubricStatisticsRequest true "Rubric, submissions and objective tags"
// @Success 200 {object} response.Envelope
// @Router /statistics/assignment-rubric [post]
func (h *StatisticsHandler) AssignmentRubric(c *gin.Context) {
	var req dto.AssignmentRubricStatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid rubric statistics payload"))
		return
	}
	start := time.Now()
	result, err := h.statistics.ComputeAssignmentRubric(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, result, false, start)
}

// StoredAssignmentRubric godoc
// @Summary Compute assignment rubric statistics with stored objective tags
// @Tags Statistics
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param assignmentId path int true "Assignment ID"
// @Param payload body dto.StoredAssignmentRubricStatisticsRequest true "Rubric and submissions"
// @Success 200 {object} response.Envelope
// @Router /statistics/assignment-rubric/{courseId}/{assignmentId} [post]
func (h *StatisticsHandler) StoredAssignmentRubric(c *gin.Context) {
	courseID, assignmentID, err := itemPathIDs(c, "assignmentId")
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.StoredAssignmentRubricStatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid rubric statistics payload"))
		return
	}
	start := time.Now()
	result, cacheHit, err := h.statistics.ComputeStoredAssignmentRubric(c.Request.Context(), courseID, assignmentID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	respondWithMeta(c, result, cacheHit, start)
}

// ExportQuiz godoc
// @Summary Export quiz statistics
// @Tags Statistics
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf"
// @Param name query string false "Quiz name used in the file name"
// @Param payload body dto.QuizStatisticsRequest true "Quiz report with per-question objective tags"
// @Success 200 {file} file
// @Router /statistics/quiz/export [post]
func (h *StatisticsHandler) ExportQuiz(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrFeatureDisabled)
		return
	}
	format, err := service.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.QuizStatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid quiz statistics payload"))
		return
	}
	result, err := h.statistics.ComputeQuiz(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.ExportQuiz(format, c.Query("name"), result)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

// ExportAssignmentRubric godoc
// @Summary Export assignment rubric statistics
// @Tags Statistics
// @Accept json
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv or pdf"
// @Param name query string false "Assignment name used in the file name"
// @Param payload body dto.AssignmentRubricStatisticsRequest true "Rubric, submissions and objective tags"
// @Success 200 {file} file
// @Router /statistics/assignment-rubric/export [post]
func (h *StatisticsHandler) ExportAssignmentRubric(c *gin.Context) {
	if h.exports == nil {
		response.Error(c, appErrors.ErrFeatureDisabled)
		return
	}
	format, err := service.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.AssignmentRubricStatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid rubric statistics payload"))
		return
	}
	result, err := h.statistics.ComputeAssignmentRubric(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	file, err := h.exports.ExportAssignmentRubric(format, c.Query("name"), result)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.Filename, file.ContentType, file.Payload)
}

func respondWithMeta(c *gin.Context, data interface{}, cacheHit bool, start time.Time) {
	middleware.SetCacheHit(c, cacheHit)
	meta := middleware.ExtractMeta(c)
	if meta == nil {
		meta = make(map[string]interface{})
	}
	meta["processing_time_ms"] = time.Since(start).Milliseconds()
	response.JSON(c, http.StatusOK, data, nil, meta)
}

// itemPathIDs parses the courseId path parameter and the named item parameter.
func itemPathIDs(c *gin.Context, itemParam string) (int64, int64, error) {
	courseID, err := parsePathID(c, "courseId")
	if err != nil {
		return 0, 0, err
	}
	itemID, err := parsePathID(c, itemParam)
	if err != nil {
		return 0, 0, err
	}
	return courseID, itemID, nil
}

func parsePathID(c *gin.Context, name string) (int64, error) {
	value, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || value <= 0 {
		return 0, appErrors.Clonef(appErrors.ErrValidation, "invalid %s", name)
	}
	return value, nil
}
