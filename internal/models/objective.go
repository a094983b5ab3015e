package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/lib/pq"
)

// Semester enumerates the academic seasons a course can be offered in.
type Semester string

const (
	SemesterFall   Semester = "Fall"
	SemesterSpring Semester = "Spring"
	SemesterSummer Semester = "Summer"
	SemesterWinter Semester = "Winter"
)

// CourseObjective is the list of learning objectives defined for one offering of a course.
type CourseObjective struct {
	ID               string         `db:"id" json:"id"`
	DeptAbbrev       string         `db:"dept_abbrev" json:"dept_abbrev"`
	CourseNum        int            `db:"course_num" json:"course_num"`
	Semester         Semester       `db:"semester" json:"semester"`
	Year             int            `db:"year" json:"year"`
	CourseInternalID int64          `db:"course_internal_id" json:"course_internal_id"`
	Objectives       pq.StringArray `db:"objectives" json:"objectives"`
	CreatedAt        time.Time      `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time      `db:"updated_at" json:"updated_at"`
}

// CourseObjectiveFilter captures paging for objective listings.
type CourseObjectiveFilter struct {
	DeptAbbrev string
	Page       int
	PageSize   int
}

// ObjectiveMatchKind distinguishes which graded item a match belongs to.
type ObjectiveMatchKind string

const (
	ObjectiveMatchQuiz       ObjectiveMatchKind = "quiz"
	ObjectiveMatchAssignment ObjectiveMatchKind = "assignment"
)

// ObjectiveMatch stores the objective tags of every question (quiz) or rubric
// criterion (assignment) of one graded item, in item order.
type ObjectiveMatch struct {
	Kind       ObjectiveMatchKind `db:"kind" json:"kind"`
	CourseID   int64              `db:"course_id" json:"course_id"`
	ItemID     int64              `db:"item_id" json:"item_id"`
	Objectives ObjectiveTags      `db:"objectives" json:"objectives"`
	UpdatedAt  time.Time          `db:"updated_at" json:"updated_at"`
}

// ObjectiveTags is the per-item objective tag list persisted as JSONB.
type ObjectiveTags [][]string

// Value marshals the tags to JSON for persistence.
func (t ObjectiveTags) Value() (driver.Value, error) {
	if t == nil {
		t = ObjectiveTags{}
	}
	data, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("marshal objective tags: %w", err)
	}
	return data, nil
}

// Scan unmarshals JSON payloads into the tag list.
func (t *ObjectiveTags) Scan(value interface{}) error {
	if value == nil {
		*t = ObjectiveTags{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported type %T for ObjectiveTags", value)
	}
	if len(data) == 0 {
		*t = ObjectiveTags{}
		return nil
	}
	if err := json.Unmarshal(data, t); err != nil {
		return fmt.Errorf("unmarshal objective tags: %w", err)
	}
	return nil
}
