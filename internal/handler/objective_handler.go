package handler

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/outcome-stats-api/internal/dto"
	"github.com/noah-isme/outcome-stats-api/internal/models"
	appErrors "github.com/noah-isme/outcome-stats-api/pkg/errors"
	"github.com/noah-isme/outcome-stats-api/pkg/response"
)

type objectiveService interface {
	List(ctx context.Context, query dto.CourseObjectiveQuery) ([]models.CourseObjective, *models.Pagination, error)
	ListByCourse(ctx context.Context, courseID int64) ([]models.CourseObjective, error)
	ListByDepartment(ctx context.Context, deptAbbrev string, courseNum int) ([]models.CourseObjective, error)
	Upsert(ctx context.Context, req dto.UpsertCourseObjectivesRequest) (*models.CourseObjective, bool, error)
	ReplaceObjectives(ctx context.Context, id string, req dto.ReplaceObjectivesRequest) (*models.CourseObjective, error)
	GetMatch(ctx context.Context, kind models.ObjectiveMatchKind, courseID, itemID int64) (*models.ObjectiveMatch, error)
	SetMatch(ctx context.Context, kind models.ObjectiveMatchKind, courseID, itemID int64, req dto.ObjectiveMatchRequest) (*models.ObjectiveMatch, error)
}

// ObjectiveHandler manages course objectives and quiz/rubric objective matches.
type ObjectiveHandler struct {
	service objectiveService
}

// NewObjectiveHandler constructs the handler.
func NewObjectiveHandler(service objectiveService) *ObjectiveHandler {
	return &ObjectiveHandler{service: service}
}

// List godoc
// @Summary List course objectives
// @Tags Objectives
// @Produce json
// @Param dept query string false "Department abbreviation"
// @Param page query int false "Page"
// @Param page_size query int false "Page size"
// @Success 200 {object} response.Envelope
// @Router /objectives [get]
func (h *ObjectiveHandler) List(c *gin.Context) {
	var query dto.CourseObjectiveQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid query parameters"))
		return
	}
	items, pagination, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, pagination)
}

// ByCourse godoc
// @Summary Objectives of a platform course
// @Tags Objectives
// @Produce json
// @Param courseId path int true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /objectives/course/{courseId} [get]
func (h *ObjectiveHandler) ByCourse(c *gin.Context) {
	courseID, err := parsePathID(c, "courseId")
	if err != nil {
		response.Error(c, err)
		return
	}
	items, err := h.service.ListByCourse(c.Request.Context(), courseID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// ByDepartment godoc
// @Summary Objectives of a department course number
// @Tags Objectives
// @Produce json
// @Param dept path string true "Department abbreviation"
// @Param num path int true "Course number"
// @Success 200 {object} response.Envelope
// @Router /objectives/department/{dept}/{num} [get]
func (h *ObjectiveHandler) ByDepartment(c *gin.Context) {
	num, err := strconv.Atoi(c.Param("num"))
	if err != nil || num <= 0 {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid course number"))
		return
	}
	dept := strings.ToUpper(strings.TrimSpace(c.Param("dept")))
	items, err := h.service.ListByDepartment(c.Request.Context(), dept, num)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, items, nil)
}

// Upsert godoc
// @Summary Create or update the objectives of a course offering
// @Tags Objectives
// @Accept json
// @Produce json
// @Param payload body dto.UpsertCourseObjectivesRequest true "Course objectives"
// @Success 200 {object} response.Envelope
// @Success 201 {object} response.Envelope
// @Router /objectives [post]
func (h *ObjectiveHandler) Upsert(c *gin.Context) {
	var req dto.UpsertCourseObjectivesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid course objectives payload"))
		return
	}
	item, created, err := h.service.Upsert(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	if created {
		response.Created(c, item)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// Replace godoc
// @Summary Replace the objective list of a course offering
// @Tags Objectives
// @Accept json
// @Produce json
// @Param id path string true "Record ID"
// @Param payload body dto.ReplaceObjectivesRequest true "Objectives"
// @Success 200 {object} response.Envelope
// @Router /objectives/{id} [put]
func (h *ObjectiveHandler) Replace(c *gin.Context) {
	var req dto.ReplaceObjectivesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid objectives payload"))
		return
	}
	item, err := h.service.ReplaceObjectives(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, item, nil)
}

// GetQuizMatch godoc
// @Summary Stored objective tags of a quiz
// @Tags Objectives
// @Produce json
// @Param courseId path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Success 200 {object} response.Envelope
// @Router /objectives/matches/quiz/{courseId}/{quizId} [get]
func (h *ObjectiveHandler) GetQuizMatch(c *gin.Context) {
	h.getMatch(c, models.ObjectiveMatchQuiz, "quizId")
}

// PutQuizMatch godoc
// @Summary Store objective tags of a quiz
// @Tags Objectives
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param quizId path int true "Quiz ID"
// @Param payload body dto.ObjectiveMatchRequest true "Tags per question"
// @Success 200 {object} response.Envelope
// @Router /objectives/matches/quiz/{courseId}/{quizId} [put]
func (h *ObjectiveHandler) PutQuizMatch(c *gin.Context) {
	h.setMatch(c, models.ObjectiveMatchQuiz, "quizId")
}

// GetAssignmentMatch godoc
// @Summary Stored objective tags of an assignment rubric
// @Tags Objectives
// @Produce json
// @Param courseId path int true "Course ID"
// @Param assignmentId path int true "Assignment ID"
// @Success 200 {object} response.Envelope
// @Router /objectives/matches/assignment/{courseId}/{assignmentId} [get]
func (h *ObjectiveHandler) GetAssignmentMatch(c *gin.Context) {
	h.getMatch(c, models.ObjectiveMatchAssignment, "assignmentId")
}

// PutAssignmentMatch godoc
// @Summary Store objective tags of an assignment rubric
// @Tags Objectives
// @Accept json
// @Produce json
// @Param courseId path int true "Course ID"
// @Param assignmentId path int true "Assignment ID"
// @Param payload body dto.ObjectiveMatchRequest true "Tags per criterion"
// @Success 200 {object} response.Envelope
// @Router /objectives/matches/assignment/{courseId}/{assignmentId} [put]
func (h *ObjectiveHandler) PutAssignmentMatch(c *gin.Context) {
	h.setMatch(c, models.ObjectiveMatchAssignment, "assignmentId")
}

func (h *ObjectiveHandler) getMatch(c *gin.Context, kind models.ObjectiveMatchKind, itemParam string) {
	courseID, itemID, err := itemPathIDs(c, itemParam)
	if err != nil {
		response.Error(c, err)
		return
	}
	match, err := h.service.GetMatch(c.Request.Context(), kind, courseID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, match, nil)
}

func (h *ObjectiveHandler) setMatch(c *gin.Context, kind models.ObjectiveMatchKind, itemParam string) {
	courseID, itemID, err := itemPathIDs(c, itemParam)
	if err != nil {
		response.Error(c, err)
		return
	}
	var req dto.ObjectiveMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "invalid objective match payload"))
		return
	}
	match, err := h.service.SetMatch(c.Request.Context(), kind, courseID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, match, nil)
}
