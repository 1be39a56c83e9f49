package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
)

var orgMemberRowColumns = []string{"id", "student_id", "organization_id", "date_joined", "created_at", "updated_at", "student_number", "firstname", "lastname", "middlename", "prog_name", "organization_name"}

func TestOrgMemberRepositoryListSearchesStudentNames(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOrgMemberRepository(db)

	now := time.Now()
	joined := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(orgMemberRowColumns).
		AddRow("m1", "s1", "o1", joined, now, now, "2021-0001", "Ana", "Cruz", "Lopez", "BS Computer Science", "Robotics Club")
	mock.ExpectQuery(regexp.QuoteMeta(`JOIN organizations o ON o.id = m.organization_id WHERE (LOWER(s.firstname) LIKE $1 ESCAPE '\' OR LOWER(s.lastname) LIKE $1 ESCAPE '\' OR LOWER(s.middlename) LIKE $1 ESCAPE '\') ORDER BY m.created_at ASC, m.id ASC LIMIT 5 OFFSET 0`)).
		WithArgs("%ana%").
		WillReturnRows(rows)
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM org_members m JOIN students s ON s.id = m.student_id")).
		WithArgs("%ana%").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

	members, total, err := repo.List(context.Background(), query.Filter{Term: "Ana"})
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "Ana Cruz", members[0].MemberName())
	assert.Equal(t, "BS Computer Science", members[0].ProgName)
	assert.Equal(t, "Robotics Club", members[0].OrganizationName)
	assert.Equal(t, "2021-0001", members[0].StudentNumber)
	assert.Equal(t, joined, members[0].DateJoined.Time)
	assert.Equal(t, 1, total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrgMemberRepositoryCreate(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOrgMemberRepository(db)

	joined := time.Date(2024, 8, 15, 0, 0, 0, 0, time.UTC)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO org_members (id, student_id, organization_id, date_joined, created_at, updated_at) VALUES ($1, $2, $3, $4, $5, $6)")).
		WithArgs(sqlmock.AnyArg(), "s1", "o1", joined, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Create(context.Background(), &models.OrgMember{StudentID: "s1", OrganizationID: "o1", DateJoined: models.NewDate(joined)})
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOrgMemberRepositoryDelete(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewOrgMemberRepository(db)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM org_members WHERE id = $1")).
		WithArgs("m1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Delete(context.Background(), "m1"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
