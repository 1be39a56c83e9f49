package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

var collegeRowColumns = []string{"id", "college_name", "created_at", "updated_at"}

func TestCollegeRepositoryListWithoutTerm(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(collegeRowColumns).
		AddRow("c1", "College of Engineering", now, now).
		AddRow("c2", "College of Arts", now, now)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT c.id, c.college_name, c.created_at, c.updated_at FROM colleges c ORDER BY c.created_at ASC, c.id ASC LIMIT 5 OFFSET 0")).
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM colleges c")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	colleges, total, err := repo.List(context.Background(), query.Filter{})
	require.NoError(t, err)
	assert.Len(t, colleges, 2)
	assert.Equal(t, 2, total)
	assert.Equal(t, "College of Engineering", colleges[0].CollegeName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeRepositoryListSearchesAndPaginates(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta(`FROM colleges c WHERE (LOWER(c.college_name) LIKE $1 ESCAPE '\') ORDER BY c.created_at ASC, c.id ASC LIMIT 5 OFFSET 10`)).
		WithArgs("%eng%").
		WillReturnRows(sqlmock.NewRows(collegeRowColumns))
	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(*) FROM colleges c WHERE (LOWER(c.college_name) LIKE $1 ESCAPE '\')`)).
		WithArgs("%eng%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	colleges, total, err := repo.List(context.Background(), query.Filter{Term: "  ENG ", Page: 3})
	require.NoError(t, err)
	assert.Empty(t, colleges)
	assert.Equal(t, 3, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeRepositoryFindByIDNotFound(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("FROM colleges c WHERE c.id = $1")).
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeRepositoryExists(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM colleges WHERE id = $1")).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT 1 FROM colleges WHERE id = $1")).
		WithArgs("c2").
		WillReturnError(sql.ErrNoRows)

	found, err := repo.Exists(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = repo.Exists(context.Background(), "c2")
	require.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeRepositoryDependents(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	mock.ExpectQuery(`(?s)SELECT \(SELECT COUNT\(\*\) FROM programs WHERE college_id = \$1\).*FROM organizations WHERE college_id = \$1`).
		WithArgs("c1").
		WillReturnRows(sqlmock.NewRows([]string{"programs", "organizations"}).AddRow(2, 1))

	deps, err := repo.Dependents(context.Background(), "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, deps[models.EntityProgram])
	assert.Equal(t, 1, deps[models.EntityOrganization])
	assert.Equal(t, 3, deps.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO colleges (id, college_name, created_at, updated_at) VALUES ($1, $2, $3, $4)")).
		WithArgs(sqlmock.AnyArg(), "College of Science", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	college := &models.College{CollegeName: "College of Science"}
	require.NoError(t, repo.Create(context.Background(), college))
	assert.NotEmpty(t, college.ID)
	assert.False(t, college.CreatedAt.IsZero())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeRepositoryUpdateMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE colleges SET college_name = $1, updated_at = $2 WHERE id = $3")).
		WithArgs("Renamed", sqlmock.AnyArg(), "missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.Update(context.Background(), &models.College{ID: "missing", CollegeName: "Renamed"})
	assert.ErrorIs(t, err, sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeRepositoryDeleteReferenced(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM colleges WHERE id = $1")).
		WithArgs("c1").
		WillReturnError(&pq.Error{Code: "23503", Message: "update or delete on table \"colleges\" violates foreign key constraint"})

	err := repo.Delete(context.Background(), "c1")
	assert.ErrorIs(t, err, appErrors.ErrIntegrity)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCollegeRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewCollegeRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM colleges WHERE id = $1")).
		WithArgs("c1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "c1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
