package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

const courseObjectiveColumns = `id, dept_abbrev, course_num, semester, year, course_internal_id, objectives, created_at, updated_at`

// CourseObjectiveRepository persists the objective lists of course offerings.
type CourseObjectiveRepository struct {
	db *sqlx.DB
}

// NewCourseObjectiveRepository constructs the repository.
func NewCourseObjectiveRepository(db *sqlx.DB) *CourseObjectiveRepository {
	return &CourseObjectiveRepository{db: db}
}

// List returns a page of course objective records along with the total count.
func (r *CourseObjectiveRepository) List(ctx context.Context, filter models.CourseObjectiveFilter) ([]models.CourseObjective, int, error) {
	page, size := normalizePage(filter.Page, filter.PageSize)
	where := ""
	args := []interface{}{}
	if filter.DeptAbbrev != "" {
		where = " WHERE dept_abbrev = $1"
		args = append(args, filter.DeptAbbrev)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) FROM course_objectives"+where, args...); err != nil {
		return nil, 0, fmt.Errorf("count course objectives: %w", err)
	}

	query := fmt.Sprintf(`SELECT %s FROM course_objectives%s ORDER BY dept_abbrev ASC, course_num ASC, year DESC, semester ASC LIMIT $%d OFFSET $%d`,
		courseObjectiveColumns, where, len(args)+1, len(args)+2)
	args = append(args, size, (page-1)*size)
	var items []models.CourseObjective
	if err := r.db.SelectContext(ctx, &items, query, args...); err != nil {
		return nil, 0, fmt.Errorf("list course objectives: %w", err)
	}
	return items, total, nil
}

// FindByID fetches a single record.
func (r *CourseObjectiveRepository) FindByID(ctx context.Context, id string) (*models.CourseObjective, error) {
	query := fmt.Sprintf(`SELECT %s FROM course_objectives WHERE id = $1`, courseObjectiveColumns)
	var item models.CourseObjective
	if err := r.db.GetContext(ctx, &item, query, id); err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByCourse returns every offering recorded for a platform course id, newest first.
func (r *CourseObjectiveRepository) ListByCourse(ctx context.Context, courseInternalID int64) ([]models.CourseObjective, error) {
	query := fmt.Sprintf(`SELECT %s FROM course_objectives WHERE course_internal_id = $1 ORDER BY year DESC, updated_at DESC`, courseObjectiveColumns)
	var items []models.CourseObjective
	if err := r.db.SelectContext(ctx, &items, query, courseInternalID); err != nil {
		return nil, fmt.Errorf("list course objectives by course: %w", err)
	}
	return items, nil
}

// ListByDepartment returns every offering of a department course number.
func (r *CourseObjectiveRepository) ListByDepartment(ctx context.Context, deptAbbrev string, courseNum int) ([]models.CourseObjective, error) {
	query := fmt.Sprintf(`SELECT %s FROM course_objectives WHERE dept_abbrev = $1 AND course_num = $2 ORDER BY year DESC, semester ASC`, courseObjectiveColumns)
	var items []models.CourseObjective
	if err := r.db.SelectContext(ctx, &items, query, deptAbbrev, courseNum); err != nil {
		return nil, fmt.Errorf("list course objectives by department: %w", err)
	}
	return items, nil
}

// Upsert inserts the record or replaces the objective list of the existing
// offering with the same department, number, semester and year. It reports
// whether a new row was created.
func (r *CourseObjectiveRepository) Upsert(ctx context.Context, item *models.CourseObjective) (bool, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return false, fmt.Errorf("begin course objective tx: %w", err)
	}

	const findQuery = `SELECT id, created_at FROM course_objectives
WHERE dept_abbrev = $1 AND course_num = $2 AND semester = $3 AND year = $4 FOR UPDATE`
	var existing struct {
		ID        string    `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}
	now := time.Now().UTC()
	created := false
	err = tx.GetContext(ctx, &existing, findQuery, item.DeptAbbrev, item.CourseNum, item.Semester, item.Year)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		created = true
		item.ID = uuid.NewString()
		item.CreatedAt = now
		item.UpdatedAt = now
		const insertQuery = `INSERT INTO course_objectives (id, dept_abbrev, course_num, semester, year, course_internal_id, objectives, created_at, updated_at)
VALUES (:id, :dept_abbrev, :course_num, :semester, :year, :course_internal_id, :objectives, :created_at, :updated_at)`
		if _, err := tx.NamedExecContext(ctx, insertQuery, item); err != nil {
			_ = tx.Rollback()
			return false, fmt.Errorf("insert course objectives: %w", err)
		}
	case err != nil:
		_ = tx.Rollback()
		return false, fmt.Errorf("find course objectives: %w", err)
	default:
		item.ID = existing.ID
		item.CreatedAt = existing.CreatedAt
		item.UpdatedAt = now
		const updateQuery = `UPDATE course_objectives SET course_internal_id = :course_internal_id, objectives = :objectives, updated_at = :updated_at WHERE id = :id`
		if _, err := tx.NamedExecContext(ctx, updateQuery, item); err != nil {
			_ = tx.Rollback()
			return false, fmt.Errorf("update course objectives: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("commit course objective tx: %w", err)
	}
	return created, nil
}

// ReplaceObjectives overwrites the objective list of a record.
func (r *CourseObjectiveRepository) ReplaceObjectives(ctx context.Context, id string, objectives []string) error {
	const query = `UPDATE course_objectives SET objectives = $1, updated_at = $2 WHERE id = $3`
	res, err := r.db.ExecContext(ctx, query, pq.Array(objectives), time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("replace course objectives: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("replace course objectives rows: %w", err)
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func normalizePage(page, size int) (int, int) {
	if page <= 0 {
		page = 1
	}
	if size <= 0 {
		size = 20
	}
	if size > 100 {
		size = 100
	}
	return page, size
}
