package service

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chodoro/psusphere/internal/models"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

func TestExportServiceStudentsCSVFollowsSearch(t *testing.T) {
	s := newSuite(Hooks{})
	ctx := context.Background()
	programID := seedProgram(t, s, "Engineering", "CS")
	for i, name := range []string{"Cruz", "Reyes", "Dela Cruz"} {
		_, err := s.students.Create(ctx, StudentRequest{StudentID: "S00" + string(rune('1'+i)), Firstname: "Ana", Lastname: name, Middlename: "B", ProgramID: programID})
		require.NoError(t, err)
	}

	svc := NewExportService(s.catalog(), nil)
	file, err := svc.Export(ctx, models.EntityStudent, "csv", "cruz")
	require.NoError(t, err)
	assert.Equal(t, "text/csv; charset=utf-8", file.ContentType)
	assert.Regexp(t, `^students-\d{8}-\d{6}\.csv$`, file.Filename)

	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"Student ID", "Last name", "First name", "Middle name", "Program"}, records[0])
	assert.Equal(t, []string{"S001", "Cruz", "Ana", "B", "CS"}, records[1])
	assert.Equal(t, "Dela Cruz", records[2][1])
}

func TestExportServiceWalksEveryBatch(t *testing.T) {
	s := newSuite(Hooks{})
	ctx := context.Background()
	for i := 0; i < exportBatch+7; i++ {
		_, err := s.colleges.Create(ctx, CollegeRequest{CollegeName: "College"})
		require.NoError(t, err)
	}

	file, err := NewExportService(s.catalog(), nil).Export(ctx, models.EntityCollege, "", "")
	require.NoError(t, err)
	records, err := csv.NewReader(bytes.NewReader(file.Data)).ReadAll()
	require.NoError(t, err)
	assert.Len(t, records, exportBatch+8)
}

func TestExportServiceMembersPDF(t *testing.T) {
	s := newSuite(Hooks{})
	seedMember(t, s)

	file, err := NewExportService(s.catalog(), nil).Export(context.Background(), models.EntityOrgMember, "PDF", "")
	require.NoError(t, err)
	assert.Equal(t, "application/pdf", file.ContentType)
	assert.True(t, bytes.HasPrefix(file.Data, []byte("%PDF")))
}

func TestExportServiceRejectsUnknownFormat(t *testing.T) {
	s := newSuite(Hooks{})

	_, err := NewExportService(s.catalog(), nil).Export(context.Background(), models.EntityCollege, "xlsx", "")
	assert.ErrorIs(t, err, appErrors.ErrValidation)
}
