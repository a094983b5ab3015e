package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/lib/pq"
	"github.com/samber/lo"
	"go.uber.org/zap"

	"github.com/noah-isme/outcome-stats-api/internal/dto"
	"github.com/noah-isme/outcome-stats-api/internal/models"
	appErrors "github.com/noah-isme/outcome-stats-api/pkg/errors"
)

type courseObjectiveRepository interface {
	List(ctx context.Context, filter models.CourseObjectiveFilter) ([]models.CourseObjective, int, error)
	FindByID(ctx context.Context, id string) (*models.CourseObjective, error)
	ListByCourse(ctx context.Context, courseInternalID int64) ([]models.CourseObjective, error)
	ListByDepartment(ctx context.Context, deptAbbrev string, courseNum int) ([]models.CourseObjective, error)
	Upsert(ctx context.Context, item *models.CourseObjective) (bool, error)
	ReplaceObjectives(ctx context.Context, id string, objectives []string) error
}

type objectiveMatchRepository interface {
	Get(ctx context.Context, kind models.ObjectiveMatchKind, courseID, itemID int64) (*models.ObjectiveMatch, error)
	Upsert(ctx context.Context, match *models.ObjectiveMatch) error
}

var objectiveTextCleaner = strings.NewReplacer(`"`, "", "\r", "")

// ObjectiveService manages course objective lists and the objective tags of
// quizzes and rubrics.
type ObjectiveService struct {
	objectives courseObjectiveRepository
	matches    objectiveMatchRepository
	cache      *CacheService
	metrics    *MetricsService
	validator  *validator.Validate
	logger     *zap.Logger
}

// NewObjectiveService constructs the service.
func NewObjectiveService(objectives courseObjectiveRepository, matches objectiveMatchRepository, cache *CacheService, metrics *MetricsService, validate *validator.Validate, logger *zap.Logger) *ObjectiveService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ObjectiveService{
		objectives: objectives,
		matches:    matches,
		cache:      cache,
		metrics:    metrics,
		validator:  validate,
		logger:     logger,
	}
}

// List returns a page of course objective records.
func (s *ObjectiveService) List(ctx context.Context, query dto.CourseObjectiveQuery) ([]models.CourseObjective, *models.Pagination, error) {
	filter := models.CourseObjectiveFilter{DeptAbbrev: strings.TrimSpace(query.DeptAbbrev), Page: query.Page, PageSize: query.PageSize}
	if filter.Page <= 0 {
		filter.Page = 1
	}
	if filter.PageSize <= 0 {
		filter.PageSize = 20
	}
	if filter.PageSize > 100 {
		filter.PageSize = 100
	}
	start := time.Now()
	items, total, err := s.objectives.List(ctx, filter)
	s.metrics.ObserveDBQuery("course_objectives_list", time.Since(start))
	if err != nil {
		return nil, nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to list course objectives")
	}
	return items, &models.Pagination{Page: filter.Page, PageSize: filter.PageSize, TotalCount: total}, nil
}

// ListByCourse returns every recorded offering of a platform course.
func (s *ObjectiveService) ListByCourse(ctx context.Context, courseID int64) ([]models.CourseObjective, error) {
	items, err := s.objectives.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course objectives")
	}
	if len(items) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no objectives recorded for course")
	}
	return items, nil
}

// ListByDepartment returns every recorded offering of a department course number.
func (s *ObjectiveService) ListByDepartment(ctx context.Context, deptAbbrev string, courseNum int) ([]models.CourseObjective, error) {
	items, err := s.objectives.ListByDepartment(ctx, strings.TrimSpace(deptAbbrev), courseNum)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course objectives")
	}
	if len(items) == 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "no objectives recorded for department course")
	}
	return items, nil
}

// Upsert stores the objective list of a course offering. The boolean reports
// whether a new offering was created.
func (s *ObjectiveService) Upsert(ctx context.Context, req dto.UpsertCourseObjectivesRequest) (*models.CourseObjective, bool, error) {
	req.DeptAbbrev = strings.TrimSpace(req.DeptAbbrev)
	if err := s.validator.Struct(req); err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	objectives := sanitizeObjectiveList(req.Objectives)
	if len(objectives) == 0 {
		return nil, false, appErrors.Clone(appErrors.ErrValidation, "objectives must not be empty")
	}

	item := &models.CourseObjective{
		DeptAbbrev:       req.DeptAbbrev,
		CourseNum:        req.CourseNum,
		Semester:         req.Semester,
		Year:             req.Year,
		CourseInternalID: req.CourseInternalID,
		Objectives:       pq.StringArray(objectives),
	}
	created, err := s.objectives.Upsert(ctx, item)
	if err != nil {
		return nil, false, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store course objectives")
	}
	s.logger.Info("course objectives stored",
		zap.String("id", item.ID),
		zap.String("dept", item.DeptAbbrev),
		zap.Int("course_num", item.CourseNum),
		zap.Bool("created", created),
		zap.Int("objectives", len(objectives)))
	s.invalidateCourse(ctx, item.CourseInternalID)
	return item, created, nil
}

// ReplaceObjectives overwrites the objective list of a stored offering.
func (s *ObjectiveService) ReplaceObjectives(ctx context.Context, id string, req dto.ReplaceObjectivesRequest) (*models.CourseObjective, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	objectives := sanitizeObjectiveList(req.Objectives)
	if err := s.objectives.ReplaceObjectives(ctx, id, objectives); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clone(appErrors.ErrNotFound, "course objectives not found")
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to replace course objectives")
	}
	item, err := s.objectives.FindByID(ctx, id)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to reload course objectives")
	}
	s.invalidateCourse(ctx, item.CourseInternalID)
	return item, nil
}

// GetMatch returns the stored tags of a quiz or assignment.
func (s *ObjectiveService) GetMatch(ctx context.Context, kind models.ObjectiveMatchKind, courseID, itemID int64) (*models.ObjectiveMatch, error) {
	match, err := s.matches.Get(ctx, kind, courseID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.Clonef(appErrors.ErrNotFound, "no objective match for %s", kind)
		}
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load objective match")
	}
	return match, nil
}

// SetMatch stores the objective tags of a quiz or assignment. When the course
// has a recorded objective list every tag must belong to it.
func (s *ObjectiveService) SetMatch(ctx context.Context, kind models.ObjectiveMatchKind, courseID, itemID int64, req dto.ObjectiveMatchRequest) (*models.ObjectiveMatch, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid payload")
	}
	tags := make(models.ObjectiveTags, len(req.Objectives))
	for i, itemTags := range req.Objectives {
		tags[i] = sanitizeObjectiveList(itemTags)
	}

	records, err := s.objectives.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to load course objectives")
	}
	if len(records) > 0 {
		if unknown := unknownObjectives(tags, records[0].Objectives); len(unknown) > 0 {
			return nil, appErrors.Clonef(appErrors.ErrObjectiveNotInCourse, "objectives not defined for course: %s", strings.Join(unknown, ", "))
		}
	}

	match := &models.ObjectiveMatch{Kind: kind, CourseID: courseID, ItemID: itemID, Objectives: tags}
	if err := s.matches.Upsert(ctx, match); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to store objective match")
	}
	if err := s.cache.Invalidate(ctx, statisticsCachePrefix(matchComputation(kind), courseID, itemID)+":*"); err != nil {
		s.logger.Warn("invalidate statistics cache", zap.String("kind", string(kind)), zap.Int64("course_id", courseID), zap.Int64("item_id", itemID), zap.Error(err))
	}
	return match, nil
}

// invalidateCourse drops cached rubric statistics of a course, whose objective
// universe may have changed.
func (s *ObjectiveService) invalidateCourse(ctx context.Context, courseID int64) {
	pattern := fmt.Sprintf("stats:%s:%d:*", computationAssignmentRubric, courseID)
	if err := s.cache.Invalidate(ctx, pattern); err != nil {
		s.logger.Warn("invalidate course statistics cache", zap.Int64("course_id", courseID), zap.Error(err))
	}
}

func matchComputation(kind models.ObjectiveMatchKind) string {
	if kind == models.ObjectiveMatchAssignment {
		return computationAssignmentRubric
	}
	return computationQuiz
}

// sanitizeObjectiveList strips quotes and carriage returns, trims, and drops
// blanks and duplicates while keeping order.
func sanitizeObjectiveList(raw []string) []string {
	cleaned := lo.FilterMap(raw, func(item string, _ int) (string, bool) {
		value := strings.TrimSpace(objectiveTextCleaner.Replace(item))
		return value, value != ""
	})
	return lo.Uniq(cleaned)
}

func unknownObjectives(tags models.ObjectiveTags, universe []string) []string {
	known := lo.SliceToMap(universe, func(item string) (string, struct{}) {
		return models.NormalizeObjective(item), struct{}{}
	})
	var unknown []string
	for _, itemTags := range tags {
		for _, tag := range itemTags {
			if _, ok := known[tag]; !ok {
				unknown = append(unknown, tag)
			}
		}
	}
	return lo.Uniq(unknown)
}
