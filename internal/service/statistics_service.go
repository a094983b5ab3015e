package service

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/outcome-stats-api/internal/dto"
	"github.com/noah-isme/outcome-stats-api/internal/models"
	"github.com/noah-isme/outcome-stats-api/internal/stats"
	appErrors "github.com/noah-isme/outcome-stats-api/pkg/errors"
)

const (
	computationQuiz             = "quiz"
	computationAssignmentRubric = "assignment_rubric"
)

type statisticsEngine interface {
	ComputeQuiz(report models.QuizStatistic, tagsPerQuestion [][]string) (*models.QuizStatisticsResult, error)
	ComputeAssignmentRubric(in models.AssignmentRubricInput) (*models.AssignmentRubricStatisticsResult, error)
	Thresholds() stats.Thresholds
}

type objectiveMatchReader interface {
	Get(ctx context.Context, kind models.ObjectiveMatchKind, courseID, itemID int64) (*models.ObjectiveMatch, error)
}

type courseObjectiveReader interface {
	ListByCourse(ctx context.Context, courseInternalID int64) ([]models.CourseObjective, error)
}

// StatisticsService runs the statistics engine for request payloads and for
// items whose objective tags are stored.
type StatisticsService struct {
	engine     statisticsEngine
	matches    objectiveMatchReader
	objectives courseObjectiveReader
	cache      *CacheService
	metrics    *MetricsService
	logger     *zap.Logger
	cacheTTL   time.Duration
}

// NewStatisticsService constructs the service.
func NewStatisticsService(engine statisticsEngine, matches objectiveMatchReader, objectives courseObjectiveReader, cache *CacheService, metrics *MetricsService, logger *zap.Logger, cacheTTL time.Duration) *StatisticsService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StatisticsService{
		engine:     engine,
		matches:    matches,
		objectives: objectives,
		cache:      cache,
		metrics:    metrics,
		logger:     logger,
		cacheTTL:   cacheTTL,
	}
}

// ComputeQuiz computes quiz statistics from a report and explicit tags.
func (s *StatisticsService) ComputeQuiz(ctx context.Context, req dto.QuizStatisticsRequest) (*models.QuizStatisticsResult, error) {
	tags := req.Objectives
	if tags == nil {
		tags = make([][]string, len(req.QuestionStatistics))
	}
	return s.runQuiz(req.QuizStatistic, tags)
}

// ComputeStoredQuiz computes quiz statistics using the stored quiz match. The
// boolean reports whether the result was served from cache.
func (s *StatisticsService) ComputeStoredQuiz(ctx context.Context, courseID, quizID int64, report models.QuizStatistic) (*models.QuizStatisticsResult, bool, error) {
	tags, err := s.storedTags(ctx, models.ObjectiveMatchQuiz, courseID, quizID, len(report.QuestionStatistics))
	if err != nil {
		return nil, false, err
	}

	key, err := statisticsCacheKey(computationQuiz, courseID, quizID, s.engine.Thresholds(), report, tags)
	if err != nil {
		result, err := s.runQuiz(report, tags)
		return result, false, err
	}
	return Remember(ctx, s.cache, key, s.cacheTTL, func() (*models.QuizStatisticsResult, error) {
		return s.runQuiz(report, tags)
	})
}

// ComputeAssignmentRubric computes rubric statistics from an ad-hoc payload.
func (s *StatisticsService) ComputeAssignmentRubric(ctx context.Context, req dto.AssignmentRubricStatisticsRequest) (*models.AssignmentRubricStatisticsResult, error) {
	tags := req.Objectives
	if tags == nil {
		tags = make([][]string, len(req.Criteria))
	}
	return s.runAssignmentRubric(models.AssignmentRubricInput{
		Criteria:          req.Criteria,
		Submissions:       req.Submissions,
		TagsPerCriterion:  tags,
		ObjectiveUniverse: req.ObjectiveUniverse,
	})
}

// ComputeStoredAssignmentRubric computes rubric statistics using the stored
// assignment match and the course's objective list.
func (s *StatisticsService) ComputeStoredAssignmentRubric(ctx context.Context, courseID, assignmentID int64, req dto.StoredAssignmentRubricStatisticsRequest) (*models.AssignmentRubricStatisticsResult, bool, error) {
	tags, err := s.storedTags(ctx, models.ObjectiveMatchAssignment, courseID, assignmentID, len(req.Criteria))
	if err != nil {
		return nil, false, err
	}
	universe, err := s.courseUniverse(ctx, courseID)
	if err != nil {
		return nil, false, err
	}
	input := models.AssignmentRubricInput{
		Criteria:          req.Criteria,
		Submissions:       req.Submissions,
		TagsPerCriterion:  tags,
		ObjectiveUniverse: universe,
	}

	key, err := statisticsCacheKey(computationAssignmentRubric, courseID, assignmentID, s.engine.Thresholds(), input, nil)
	if err != nil {
		result, err := s.runAssignmentRubric(input)
		return result, false, err
	}
	return Remember(ctx, s.cache, key, s.cacheTTL, func() (*models.AssignmentRubricStatisticsResult, error) {
		return s.runAssignmentRubric(input)
	})
}

func (s *StatisticsService) runQuiz(report models.QuizStatistic, tags [][]string) (*models.QuizStatisticsResult, error) {
	start := time.Now()
	result, err := s.engine.ComputeQuiz(report, tags)
	s.metrics.ObserveComputation(computationQuiz, err, time.Since(start))
	if err != nil {
		s.logger.Warn("quiz statistics rejected", zap.Int("questions", len(report.QuestionStatistics)), zap.Error(err))
		return nil, translateEngineError(err)
	}
	return result, nil
}

func (s *StatisticsService) runAssignmentRubric(input models.AssignmentRubricInput) (*models.AssignmentRubricStatisticsResult, error) {
	start := time.Now()
	result, err := s.engine.ComputeAssignmentRubric(input)
	s.metrics.ObserveComputation(computationAssignmentRubric, err, time.Since(start))
	if err != nil {
		s.logger.Warn("assignment statistics rejected", zap.Int("criteria", len(input.Criteria)), zap.Int("submissions", len(input.Submissions)), zap.Error(err))
		return nil, translateEngineError(err)
	}
	return result, nil
}

// storedTags loads the stored tags of an item. Items that were never matched
// are treated as untagged.
func (s *StatisticsService) storedTags(ctx context.Context, kind models.ObjectiveMatchKind, courseID, itemID int64, items int) ([][]string, error) {
	untagged := make([][]string, items)
	if s.matches == nil {
		return untagged, nil
	}
	start := time.Now()
	match, err := s.matches.Get(ctx, kind, courseID, itemID)
	s.metrics.ObserveDBQuery("objective_match_get", time.Since(start))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Info("no stored objective match", zap.String("kind", string(kind)), zap.Int64("course_id", courseID), zap.Int64("item_id", itemID))
			return untagged, nil
		}
		return nil, fmt.Errorf("load objective match: %w", err)
	}
	return [][]string(match.Objectives), nil
}

func (s *StatisticsService) courseUniverse(ctx context.Context, courseID int64) ([]string, error) {
	if s.objectives == nil {
		return nil, nil
	}
	start := time.Now()
	records, err := s.objectives.ListByCourse(ctx, courseID)
	s.metrics.ObserveDBQuery("course_objectives_by_course", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("load course objectives: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}
	return []string(records[0].Objectives), nil
}

func translateEngineError(err error) error {
	switch {
	case errors.Is(err, stats.ErrUnsupportedQuestionType):
		return appErrors.Wrap(err, appErrors.ErrUnsupportedQuestionType.Code, appErrors.ErrUnsupportedQuestionType.Status, err.Error())
	case errors.Is(err, stats.ErrInvalidInput):
		return appErrors.Wrap(err, appErrors.ErrInvalidInput.Code, appErrors.ErrInvalidInput.Status, err.Error())
	default:
		return err
	}
}

// statisticsCacheKey hashes the thresholds, payload and tags under the item
// prefix. Changing the expectation bands yields new keys.
func statisticsCacheKey(kind string, courseID, itemID int64, thresholds stats.Thresholds, payload interface{}, tags [][]string) (string, error) {
	raw, err := json.Marshal(struct {
		Thresholds stats.Thresholds `json:"thresholds"`
		Payload    interface{}      `json:"payload"`
		Tags       [][]string       `json:"tags,omitempty"`
	}{thresholds, payload, tags})
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return fmt.Sprintf("%s:%s", statisticsCachePrefix(kind, courseID, itemID), hex.EncodeToString(sum[:])), nil
}

func statisticsCachePrefix(kind string, courseID, itemID int64) string {
	return fmt.Sprintf("stats:%s:%d:%d", kind, courseID, itemID)
}
