package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/outcome-stats-api/internal/models"
)

func newSQLMock(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock, func()) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	sqlxDB := sqlx.NewDb(db, "postgres")
	return sqlxDB, mock, func() {
		sqlxDB.Close()
		db.Close()
	}
}

var courseObjectiveRowColumns = []string{"id", "dept_abbrev", "course_num", "semester", "year", "course_internal_id", "objectives", "created_at", "updated_at"}

func TestCourseObjectiveRepositoryList(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewCourseObjectiveRepository(db)

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM course_objectives WHERE dept_abbrev").
		WithArgs("CS").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectQuery("SELECT id, dept_abbrev").
		WithArgs("CS", 20, 0).
		WillReturnRows(sqlmock.NewRows(courseObjectiveRowColumns).
			AddRow("obj-1", "CS", 101, "Fall", 2024, 5511, "{\"Design programs\",Debug}", time.Now(), time.Now()))

	items, total, err := repo.List(context.Background(), models.CourseObjectiveFilter{DeptAbbrev: "CS"})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, items, 1)
	assert.Equal(t, pq.StringArray{"Design programs", "Debug"}, items[0].Objectives)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseObjectiveRepositoryListByCourse(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewCourseObjectiveRepository(db)

	mock.ExpectQuery("WHERE course_internal_id = \\$1").
		WithArgs(int64(5511)).
		WillReturnRows(sqlmock.NewRows(courseObjectiveRowColumns).
			AddRow("obj-1", "CS", 101, "Fall", 2024, 5511, "{LO1,LO2}", time.Now(), time.Now()))

	items, err := repo.ListByCourse(context.Background(), 5511)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, models.SemesterFall, items[0].Semester)
}

func TestCourseObjectiveRepositoryUpsertInsertsNewOffering(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewCourseObjectiveRepository(db)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, created_at FROM course_objectives").
		WithArgs("CS", 101, models.SemesterFall, 2024).
		WillReturnError(sql.ErrNoRows)
	mock.ExpectExec("INSERT INTO course_objectives").
		WithArgs(sqlmock.AnyArg(), "CS", 101, models.SemesterFall, 2024, int64(5511), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	item := &models.CourseObjective{DeptAbbrev: "CS", CourseNum: 101, Semester: models.SemesterFall, Year: 2024, CourseInternalID: 5511, Objectives: pq.StringArray{"LO1"}}
	created, err := repo.Upsert(context.Background(), item)
	require.NoError(t, err)
	assert.True(t, created)
	assert.NotEmpty(t, item.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseObjectiveRepositoryUpsertUpdatesExisting(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewCourseObjectiveRepository(db)

	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT id, created_at FROM course_objectives").
		WithArgs("CS", 101, models.SemesterFall, 2024).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow("obj-1", createdAt))
	mock.ExpectExec("UPDATE course_objectives SET course_internal_id").
		WithArgs(int64(5511), sqlmock.AnyArg(), sqlmock.AnyArg(), "obj-1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	item := &models.CourseObjective{DeptAbbrev: "CS", CourseNum: 101, Semester: models.SemesterFall, Year: 2024, CourseInternalID: 5511, Objectives: pq.StringArray{"LO1"}}
	created, err := repo.Upsert(context.Background(), item)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, "obj-1", item.ID)
	assert.Equal(t, createdAt, item.CreatedAt)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCourseObjectiveRepositoryReplaceObjectivesMissing(t *testing.T) {
	db, mock, cleanup := newSQLMock(t)
	defer cleanup()
	repo := NewCourseObjectiveRepository(db)

	mock.ExpectExec("UPDATE course_objectives SET objectives").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.ReplaceObjectives(context.Background(), "missing", []string{"LO1"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
}
