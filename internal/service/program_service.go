package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

type programRepository interface {
	List(ctx context.Context, filter query.Filter) ([]models.ProgramDetail, int, error)
	FindByID(ctx context.Context, id string) (*models.ProgramDetail, error)
	Dependents(ctx context.Context, id string) (models.Dependents, error)
	Create(ctx context.Context, program *models.Program) error
	Update(ctx context.Context, program *models.Program) error
	Delete(ctx context.Context, id string) error
}

// existenceChecker answers whether a referenced record is stored.
type existenceChecker interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// ProgramRequest holds the full set of editable program fields.
type ProgramRequest struct {
	ProgName  string `json:"prog_name" validate:"required,max=150"`
	CollegeID string `json:"college_id" validate:"required,uuid"`
}

// ProgramPatch holds an update; nil fields keep their stored value.
type ProgramPatch struct {
	ProgName  *string `json:"prog_name"`
	CollegeID *string `json:"college_id"`
}

// ProgramService handles program use-cases.
type ProgramService struct {
	repo      programRepository
	colleges  existenceChecker
	validator *validator.Validate
	logger    *zap.Logger
	hooks     Hooks
}

// NewProgramService constructs the program service.
func NewProgramService(repo programRepository, colleges existenceChecker, validate *validator.Validate, logger *zap.Logger, hooks Hooks) *ProgramService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ProgramService{repo: repo, colleges: colleges, validator: validate, logger: logger, hooks: hooks}
}

// List returns one page of programs matching the filter.
func (s *ProgramService) List(ctx context.Context, filter query.Filter) (*query.Page[models.ProgramDetail], error) {
	return cachedList(ctx, s.hooks, s.logger, models.EntityProgram, filter, s.repo.List)
}

// Get returns a single program with its college name.
func (s *ProgramService) Get(ctx context.Context, id string) (*models.ProgramDetail, error) {
	id, err := parseID(models.EntityProgram, id)
	if err != nil {
		return nil, err
	}
	program, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(models.EntityProgram, err)
	}
	return program, nil
}

// Create registers a new program under an existing college.
func (s *ProgramService) Create(ctx context.Context, req ProgramRequest) (*models.Outcome[models.ProgramDetail], error) {
	req.ProgName, req.CollegeID = trim(req.ProgName), trim(req.CollegeID)
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	program := &models.Program{ProgName: req.ProgName, CollegeID: req.CollegeID}
	if err := s.repo.Create(ctx, program); err != nil {
		s.logger.Error("create program failed", zap.Error(err))
		return nil, writeError(models.EntityProgram, ActionCreate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityProgram, ActionCreate)
	return s.outcome(ctx, program, createdMessage(models.EntityProgram))
}

// Update applies the supplied fields to an existing program.
func (s *ProgramService) Update(ctx context.Context, id string, patch ProgramPatch) (*models.Outcome[models.ProgramDetail], error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req := ProgramRequest{ProgName: current.ProgName, CollegeID: current.CollegeID}
	apply(&req.ProgName, patch.ProgName)
	apply(&req.CollegeID, patch.CollegeID)
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	program := current.Program
	program.ProgName, program.CollegeID = req.ProgName, req.CollegeID
	if err := s.repo.Update(ctx, &program); err != nil {
		s.logger.Error("update program failed", zap.String("id", program.ID), zap.Error(err))
		return nil, writeError(models.EntityProgram, ActionUpdate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityProgram, ActionUpdate)
	return s.outcome(ctx, &program, updatedMessage(models.EntityProgram, program.ProgName))
}

// Delete removes a program no student is enrolled in.
func (s *ProgramService) Delete(ctx context.Context, id string) (string, error) {
	program, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	deps, err := s.repo.Dependents(ctx, program.ID)
	if err != nil {
		return "", internalError(err, "failed to check program references")
	}
	if deps.Total() > 0 {
		return "", blocked(models.EntityProgram, deps)
	}
	if err := s.repo.Delete(ctx, program.ID); err != nil {
		s.logger.Warn("delete program failed", zap.String("id", program.ID), zap.Error(err))
		return "", writeError(models.EntityProgram, ActionDelete, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityProgram, ActionDelete)
	return deletedMessage(models.EntityProgram), nil
}

func (s *ProgramService) validate(ctx context.Context, req ProgramRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.FromValidator(err, "invalid program payload")
	}
	return checkReferences(ctx, "invalid program payload",
		referenceCheck{field: "college_id", entity: models.EntityCollege, id: req.CollegeID, exists: s.colleges.Exists},
	)
}

// outcome reloads the stored row so the response carries joined display fields.
func (s *ProgramService) outcome(ctx context.Context, program *models.Program, message string) (*models.Outcome[models.ProgramDetail], error) {
	detail, err := s.repo.FindByID(ctx, program.ID)
	if err != nil {
		s.logger.Warn("reload program failed", zap.String("id", program.ID), zap.Error(err))
		detail = &models.ProgramDetail{Program: *program}
	}
	return &models.Outcome[models.ProgramDetail]{Record: *detail, Message: message}, nil
}
