package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

func TestProgramServiceCreateRequiresExistingCollege(t *testing.T) {
	s := newSuite(Hooks{})

	_, err := s.programs.Create(context.Background(), ProgramRequest{ProgName: "CS", CollegeID: "0b4e7a0e-5d3f-4c4e-9c1a-3f1d1b2a9e10"})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, appErrors.ErrValidation.Code, appErr.Code)
	assert.Equal(t, "college does not exist", appErr.Details["college_id"])
	assert.Empty(t, s.db.programs)
}

func TestProgramServiceCreateRejectsMalformedReference(t *testing.T) {
	s := newSuite(Hooks{})

	_, err := s.programs.Create(context.Background(), ProgramRequest{ProgName: "", CollegeID: "engineering"})
	var appErr *appErrors.Error
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "prog_name is required", appErr.Details["prog_name"])
	assert.Equal(t, "college_id must be a valid id", appErr.Details["college_id"])
}

func TestProgramServiceCreateReturnsCollegeName(t *testing.T) {
	s := newSuite(Hooks{})
	ctx := context.Background()
	college, err := s.colleges.Create(ctx, CollegeRequest{CollegeName: "Engineering"})
	require.NoError(t, err)

	out, err := s.programs.Create(ctx, ProgramRequest{ProgName: "CS", CollegeID: college.Record.ID})
	require.NoError(t, err)
	assert.Equal(t, "Program created successfully!", out.Message)
	assert.Equal(t, "Engineering", out.Record.CollegeName)
}

func TestProgramServiceUpdateMovesCollege(t *testing.T) {
	s := newSuite(Hooks{})
	ctx := context.Background()
	eng, err := s.colleges.Create(ctx, CollegeRequest{CollegeName: "Engineering"})
	require.NoError(t, err)
	sci, err := s.colleges.Create(ctx, CollegeRequest{CollegeName: "Sciences"})
	require.NoError(t, err)
	program, err := s.programs.Create(ctx, ProgramRequest{ProgName: "CS", CollegeID: eng.Record.ID})
	require.NoError(t, err)

	out, err := s.programs.Update(ctx, program.Record.ID, ProgramPatch{CollegeID: &sci.Record.ID})
	require.NoError(t, err)
	assert.Equal(t, `Program "CS" updated successfully!`, out.Message)
	assert.Equal(t, "Sciences", out.Record.CollegeName)
	assert.Equal(t, "CS", out.Record.ProgName)
}

func TestProgramServiceSearchMatchesCollegeName(t *testing.T) {
	s := newSuite(Hooks{})
	ctx := context.Background()
	eng, err := s.colleges.Create(ctx, CollegeRequest{CollegeName: "Engineering"})
	require.NoError(t, err)
	arts, err := s.colleges.Create(ctx, CollegeRequest{CollegeName: "Arts"})
	require.NoError(t, err)
	_, err = s.programs.Create(ctx, ProgramRequest{ProgName: "Civil", CollegeID: eng.Record.ID})
	require.NoError(t, err)
	_, err = s.programs.Create(ctx, ProgramRequest{ProgName: "Painting", CollegeID: arts.Record.ID})
	require.NoError(t, err)

	page, err := s.programs.List(ctx, query.Filter{Term: "ENGINEER"})
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "Civil", page.Items[0].ProgName)
}

func TestProgramServiceDeleteBlockedByStudent(t *testing.T) {
	s := newSuite(Hooks{})
	ctx := context.Background()
	college, err := s.colleges.Create(ctx, CollegeRequest{CollegeName: "Engineering"})
	require.NoError(t, err)
	program, err := s.programs.Create(ctx, ProgramRequest{ProgName: "CS", CollegeID: college.Record.ID})
	require.NoError(t, err)
	_, err = s.students.Create(ctx, StudentRequest{StudentID: "S001", Firstname: "Ana", Lastname: "Cruz", Middlename: "B", ProgramID: program.Record.ID})
	require.NoError(t, err)

	_, err = s.programs.Delete(ctx, program.Record.ID)
	assert.ErrorIs(t, err, appErrors.ErrIntegrity)
	assert.Len(t, s.db.programs, 1)
}
