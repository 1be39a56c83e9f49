package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

type collegeRepository interface {
	List(ctx context.Context, filter query.Filter) ([]models.College, int, error)
	FindByID(ctx context.Context, id string) (*models.College, error)
	Dependents(ctx context.Context, id string) (models.Dependents, error)
	Create(ctx context.Context, college *models.College) error
	Update(ctx context.Context, college *models.College) error
	Delete(ctx context.Context, id string) error
}

// CollegeRequest holds the full set of editable college fields.
type CollegeRequest struct {
	CollegeName string `json:"college_name" validate:"required,max=150"`
}

// CollegePatch holds an update; nil fields keep their stored value.
type CollegePatch struct {
	CollegeName *string `json:"college_name"`
}

// CollegeService handles college use-cases.
type CollegeService struct {
	repo      collegeRepository
	validator *validator.Validate
	logger    *zap.Logger
	hooks     Hooks
}

// NewCollegeService constructs the college service.
func NewCollegeService(repo collegeRepository, validate *validator.Validate, logger *zap.Logger, hooks Hooks) *CollegeService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CollegeService{repo: repo, validator: validate, logger: logger, hooks: hooks}
}

// List returns one page of colleges matching the filter.
func (s *CollegeService) List(ctx context.Context, filter query.Filter) (*query.Page[models.College], error) {
	return cachedList(ctx, s.hooks, s.logger, models.EntityCollege, filter, s.repo.List)
}

// Get returns a single college.
func (s *CollegeService) Get(ctx context.Context, id string) (*models.College, error) {
	id, err := parseID(models.EntityCollege, id)
	if err != nil {
		return nil, err
	}
	college, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(models.EntityCollege, err)
	}
	return college, nil
}

// Create registers a new college.
func (s *CollegeService) Create(ctx context.Context, req CollegeRequest) (*models.Outcome[models.College], error) {
	req.CollegeName = trim(req.CollegeName)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.FromValidator(err, "invalid college payload")
	}
	college := &models.College{CollegeName: req.CollegeName}
	if err := s.repo.Create(ctx, college); err != nil {
		s.logger.Error("create college failed", zap.Error(err))
		return nil, writeError(models.EntityCollege, ActionCreate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityCollege, ActionCreate)
	return &models.Outcome[models.College]{Record: *college, Message: createdMessage(models.EntityCollege)}, nil
}

// Update applies the supplied fields to an existing college.
func (s *CollegeService) Update(ctx context.Context, id string, patch CollegePatch) (*models.Outcome[models.College], error) {
	college, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req := CollegeRequest{CollegeName: college.CollegeName}
	apply(&req.CollegeName, patch.CollegeName)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.FromValidator(err, "invalid college payload")
	}
	college.CollegeName = req.CollegeName
	if err := s.repo.Update(ctx, college); err != nil {
		s.logger.Error("update college failed", zap.String("id", college.ID), zap.Error(err))
		return nil, writeError(models.EntityCollege, ActionUpdate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityCollege, ActionUpdate)
	return &models.Outcome[models.College]{Record: *college, Message: updatedMessage(models.EntityCollege, college.CollegeName)}, nil
}

// Delete removes a college that no program or organization references.
func (s *CollegeService) Delete(ctx context.Context, id string) (string, error) {
	college, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	deps, err := s.repo.Dependents(ctx, college.ID)
	if err != nil {
		return "", internalError(err, "failed to check college references")
	}
	if deps.Total() > 0 {
		return "", blocked(models.EntityCollege, deps)
	}
	if err := s.repo.Delete(ctx, college.ID); err != nil {
		s.logger.Warn("delete college failed", zap.String("id", college.ID), zap.Error(err))
		return "", writeError(models.EntityCollege, ActionDelete, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityCollege, ActionDelete)
	return deletedMessage(models.EntityCollege), nil
}
