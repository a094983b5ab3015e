package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

// ObjectiveMatchRepository stores the objective tags assigned to quiz questions
// and rubric criteria.
type ObjectiveMatchRepository struct {
	db *sqlx.DB
}

// NewObjectiveMatchRepository constructs the repository.
func NewObjectiveMatchRepository(db *sqlx.DB) *ObjectiveMatchRepository {
	return &ObjectiveMatchRepository{db: db}
}

// Get fetches the match of a graded item.
func (r *ObjectiveMatchRepository) Get(ctx context.Context, kind models.ObjectiveMatchKind, courseID, itemID int64) (*models.ObjectiveMatch, error) {
	const query = `SELECT kind, course_id, item_id, objectives, updated_at FROM objective_matches
WHERE kind = $1 AND course_id = $2 AND item_id = $3`
	var match models.ObjectiveMatch
	if err := r.db.GetContext(ctx, &match, query, kind, courseID, itemID); err != nil {
		return nil, err
	}
	return &match, nil
}

// Upsert stores the match, replacing any previous tags.
func (r *ObjectiveMatchRepository) Upsert(ctx context.Context, match *models.ObjectiveMatch) error {
	const query = `INSERT INTO objective_matches (kind, course_id, item_id, objectives, updated_at)
VALUES (:kind, :course_id, :item_id, :objectives, :updated_at)
ON CONFLICT (kind, course_id, item_id)
DO UPDATE SET objectives = EXCLUDED.objectives, updated_at = EXCLUDED.updated_at`
	match.UpdatedAt = time.Now().UTC()
	if _, err := r.db.NamedExecContext(ctx, query, match); err != nil {
		return fmt.Errorf("upsert objective match: %w", err)
	}
	return nil
}
