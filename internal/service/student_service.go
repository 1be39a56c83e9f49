package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

type studentRepository interface {
	List(ctx context.Context, filter query.Filter) ([]models.StudentDetail, int, error)
	FindByID(ctx context.Context, id string) (*models.StudentDetail, error)
	Dependents(ctx context.Context, id string) (models.Dependents, error)
	Create(ctx context.Context, student *models.Student) error
	Update(ctx context.Context, student *models.Student) error
	Delete(ctx context.Context, id string) error
}

// StudentRequest holds the full set of editable student fields.
type StudentRequest struct {
	StudentID  string `json:"student_id" validate:"required,max=15"`
	Firstname  string `json:"firstname" validate:"required,max=25"`
	Lastname   string `json:"lastname" validate:"required,max=25"`
	Middlename string `json:"middlename" validate:"required,max=25"`
	ProgramID  string `json:"program_id" validate:"required,uuid"`
}

// StudentPatch holds an update; nil fields keep their stored value.
type StudentPatch struct {
	StudentID  *string `json:"student_id"`
	Firstname  *string `json:"firstname"`
	Lastname   *string `json:"lastname"`
	Middlename *string `json:"middlename"`
	ProgramID  *string `json:"program_id"`
}

func (r *StudentRequest) trim() {
	r.StudentID = trim(r.StudentID)
	r.Firstname = trim(r.Firstname)
	r.Lastname = trim(r.Lastname)
	r.Middlename = trim(r.Middlename)
	r.ProgramID = trim(r.ProgramID)
}

// StudentService handles student use-cases.
type StudentService struct {
	repo      studentRepository
	programs  existenceChecker
	validator *validator.Validate
	logger    *zap.Logger
	hooks     Hooks
}

// NewStudentService constructs the student service.
func NewStudentService(repo studentRepository, programs existenceChecker, validate *validator.Validate, logger *zap.Logger, hooks Hooks) *StudentService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StudentService{repo: repo, programs: programs, validator: validate, logger: logger, hooks: hooks}
}

// List returns students and pagination metadata.
func (s *StudentService) List(ctx context.Context, filter query.Filter) (*query.Page[models.StudentDetail], error) {
	return cachedList(ctx, s.hooks, s.logger, models.EntityStudent, filter, s.repo.List)
}

// Get returns detailed student information.
func (s *StudentService) Get(ctx context.Context, id string) (*models.StudentDetail, error) {
	id, err := parseID(models.EntityStudent, id)
	if err != nil {
		return nil, err
	}
	student, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(models.EntityStudent, err)
	}
	return student, nil
}

// Create registers a new student in an existing program.
func (s *StudentService) Create(ctx context.Context, req StudentRequest) (*models.Outcome[models.StudentDetail], error) {
	req.trim()
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	student := &models.Student{
		StudentID:  req.StudentID,
		Firstname:  req.Firstname,
		Lastname:   req.Lastname,
		Middlename: req.Middlename,
		ProgramID:  req.ProgramID,
	}
	if err := s.repo.Create(ctx, student); err != nil {
		s.logger.Error("create student failed", zap.Error(err))
		return nil, writeError(models.EntityStudent, ActionCreate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityStudent, ActionCreate)
	return s.outcome(ctx, student, createdMessage(models.EntityStudent))
}

// Update modifies an existing student record.
func (s *StudentService) Update(ctx context.Context, id string, patch StudentPatch) (*models.Outcome[models.StudentDetail], error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req := StudentRequest{
		StudentID:  current.StudentID,
		Firstname:  current.Firstname,
		Lastname:   current.Lastname,
		Middlename: current.Middlename,
		ProgramID:  current.ProgramID,
	}
	apply(&req.StudentID, patch.StudentID)
	apply(&req.Firstname, patch.Firstname)
	apply(&req.Lastname, patch.Lastname)
	apply(&req.Middlename, patch.Middlename)
	apply(&req.ProgramID, patch.ProgramID)
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	student := current.Student
	student.StudentID = req.StudentID
	student.Firstname = req.Firstname
	student.Lastname = req.Lastname
	student.Middlename = req.Middlename
	student.ProgramID = req.ProgramID
	if err := s.repo.Update(ctx, &student); err != nil {
		s.logger.Error("update student failed", zap.String("id", student.ID), zap.Error(err))
		return nil, writeError(models.EntityStudent, ActionUpdate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityStudent, ActionUpdate)
	return s.outcome(ctx, &student, updatedMessage(models.EntityStudent, student.FullName()))
}

// Delete removes a student who belongs to no organization.
func (s *StudentService) Delete(ctx context.Context, id string) (string, error) {
	student, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	deps, err := s.repo.Dependents(ctx, student.ID)
	if err != nil {
		return "", internalError(err, "failed to check student references")
	}
	if deps.Total() > 0 {
		return "", blocked(models.EntityStudent, deps)
	}
	if err := s.repo.Delete(ctx, student.ID); err != nil {
		s.logger.Warn("delete student failed", zap.String("id", student.ID), zap.Error(err))
		return "", writeError(models.EntityStudent, ActionDelete, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityStudent, ActionDelete)
	return deletedMessage(models.EntityStudent), nil
}

func (s *StudentService) validate(ctx context.Context, req StudentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.FromValidator(err, "invalid student payload")
	}
	return checkReferences(ctx, "invalid student payload",
		referenceCheck{field: "program_id", entity: models.EntityProgram, id: req.ProgramID, exists: s.programs.Exists},
	)
}

func (s *StudentService) outcome(ctx context.Context, student *models.Student, message string) (*models.Outcome[models.StudentDetail], error) {
	detail, err := s.repo.FindByID(ctx, student.ID)
	if err != nil {
		s.logger.Warn("reload student failed", zap.String("id", student.ID), zap.Error(err))
		detail = &models.StudentDetail{Student: *student}
	}
	return &models.Outcome[models.StudentDetail]{Record: *detail, Message: message}, nil
}
