package repository

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
)

var studentRowColumns = []string{"id", "student_id", "firstname", "lastname", "middlename", "program_id", "created_at", "updated_at", "prog_name"}

func TestStudentRepositoryListSearchesFiveColumns(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	now := time.Now()
	rows := sqlmock.NewRows(studentRowColumns).
		AddRow("s1", "2021-0001", "Ana", "Cruz", "Lopez", "p1", now, now, "BS Computer Science").
		AddRow("s2", "2021-0002", "Juan", "Santos", "Cruzado", "p1", now, now, "BS Computer Science")
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE (LOWER(s.firstname) LIKE $1 ESCAPE '\' OR LOWER(s.lastname) LIKE $1 ESCAPE '\' OR LOWER(s.middlename) LIKE $1 ESCAPE '\' OR LOWER(s.student_id) LIKE $1 ESCAPE '\' OR LOWER(p.prog_name) LIKE $1 ESCAPE '\') ORDER BY s.created_at ASC, s.id ASC LIMIT 5 OFFSET 0`)).
		WithArgs("%cruz%").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM students s JOIN programs p ON p.id = s.program_id WHERE")).
		WithArgs("%cruz%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	students, total, err := repo.List(context.Background(), query.Filter{Term: "cruz"})
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "Ana", students[0].Firstname)
	assert.Equal(t, "BS Computer Science", students[1].ProgName)
	assert.Equal(t, 2, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryFindByID(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	now := time.Now()
	mock.ExpectQuery(regexp.QuoteMeta("FROM students s JOIN programs p ON p.id = s.program_id WHERE s.id = $1")).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows(studentRowColumns).AddRow("s1", "2021-0001", "Ana", "Cruz", "", "p1", now, now, "BS Computer Science"))

	student, err := repo.FindByID(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Cruz", student.FullName())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec("INSERT INTO students").
		WithArgs(sqlmock.AnyArg(), "2021-0003", "Maria", "Reyes", "", "p1", sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.Student{StudentID: "2021-0003", Firstname: "Maria", Lastname: "Reyes", ProgramID: "p1"})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDeleteMissing(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM students WHERE id = $1")).
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.Delete(context.Background(), "missing"), sql.ErrNoRows)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStudentRepositoryDependents(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewStudentRepository(db)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM org_members WHERE student_id = $1")).
		WithArgs("s1").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	deps, err := repo.Dependents(context.Background(), "s1")
	require.NoError(t, err)
	assert.Zero(t, deps.Total())
	assert.NoError(t, mock.ExpectationsWereMet())
}
