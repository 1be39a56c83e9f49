package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

type organizationRepository interface {
	List(ctx context.Context, filter query.Filter) ([]models.OrganizationDetail, int, error)
	FindByID(ctx context.Context, id string) (*models.OrganizationDetail, error)
	Dependents(ctx context.Context, id string) (models.Dependents, error)
	Create(ctx context.Context, organization *models.Organization) error
	Update(ctx context.Context, organization *models.Organization) error
	Delete(ctx context.Context, id string) error
}

// OrganizationRequest holds the full set of editable organization fields.
type OrganizationRequest struct {
	Name        string `json:"name" validate:"required,max=250"`
	Description string `json:"description" validate:"required,max=250"`
	CollegeID   string `json:"college_id" validate:"required,uuid"`
}

// OrganizationPatch holds an update; nil fields keep their stored value.
type OrganizationPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	CollegeID   *string `json:"college_id"`
}

// OrganizationService handles organization use-cases.
type OrganizationService struct {
	repo      organizationRepository
	colleges  existenceChecker
	validator *validator.Validate
	logger    *zap.Logger
	hooks     Hooks
}

// NewOrganizationService constructs the organization service.
func NewOrganizationService(repo organizationRepository, colleges existenceChecker, validate *validator.Validate, logger *zap.Logger, hooks Hooks) *OrganizationService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrganizationService{repo: repo, colleges: colleges, validator: validate, logger: logger, hooks: hooks}
}

// List returns one page of organizations matching the filter.
func (s *OrganizationService) List(ctx context.Context, filter query.Filter) (*query.Page[models.OrganizationDetail], error) {
	return cachedList(ctx, s.hooks, s.logger, models.EntityOrganization, filter, s.repo.List)
}

// Get returns a single organization with its college name.
func (s *OrganizationService) Get(ctx context.Context, id string) (*models.OrganizationDetail, error) {
	id, err := parseID(models.EntityOrganization, id)
	if err != nil {
		return nil, err
	}
	organization, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(models.EntityOrganization, err)
	}
	return organization, nil
}

// Create registers a new organization hosted by an existing college.
func (s *OrganizationService) Create(ctx context.Context, req OrganizationRequest) (*models.Outcome[models.OrganizationDetail], error) {
	req.Name, req.Description, req.CollegeID = trim(req.Name), trim(req.Description), trim(req.CollegeID)
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}
	organization := &models.Organization{Name: req.Name, Description: req.Description, CollegeID: req.CollegeID}
	if err := s.repo.Create(ctx, organization); err != nil {
		s.logger.Error("create organization failed", zap.Error(err))
		return nil, writeError(models.EntityOrganization, ActionCreate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityOrganization, ActionCreate)
	return s.outcome(ctx, organization, createdMessage(models.EntityOrganization))
}

// Update applies the supplied fields to an existing organization.
func (s *OrganizationService) Update(ctx context.Context, id string, patch OrganizationPatch) (*models.Outcome[models.OrganizationDetail], error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req := OrganizationRequest{Name: current.Name, Description: current.Description, CollegeID: current.CollegeID}
	apply(&req.Name, patch.Name)
	apply(&req.Description, patch.Description)
	apply(&req.CollegeID, patch.CollegeID)
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	organization := current.Organization
	organization.Name, organization.Description, organization.CollegeID = req.Name, req.Description, req.CollegeID
	if err := s.repo.Update(ctx, &organization); err != nil {
		s.logger.Error("update organization failed", zap.String("id", organization.ID), zap.Error(err))
		return nil, writeError(models.EntityOrganization, ActionUpdate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityOrganization, ActionUpdate)
	return s.outcome(ctx, &organization, updatedMessage(models.EntityOrganization, organization.Name))
}

// Delete removes an organization without members.
func (s *OrganizationService) Delete(ctx context.Context, id string) (string, error) {
	organization, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	deps, err := s.repo.Dependents(ctx, organization.ID)
	if err != nil {
		return "", internalError(err, "failed to check organization references")
	}
	if deps.Total() > 0 {
		return "", blocked(models.EntityOrganization, deps)
	}
	if err := s.repo.Delete(ctx, organization.ID); err != nil {
		s.logger.Warn("delete organization failed", zap.String("id", organization.ID), zap.Error(err))
		return "", writeError(models.EntityOrganization, ActionDelete, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityOrganization, ActionDelete)
	return deletedMessage(models.EntityOrganization), nil
}

func (s *OrganizationService) validate(ctx context.Context, req OrganizationRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.FromValidator(err, "invalid organization payload")
	}
	return checkReferences(ctx, "invalid organization payload",
		referenceCheck{field: "college_id", entity: models.EntityCollege, id: req.CollegeID, exists: s.colleges.Exists},
	)
}

func (s *OrganizationService) outcome(ctx context.Context, organization *models.Organization, message string) (*models.Outcome[models.OrganizationDetail], error) {
	detail, err := s.repo.FindByID(ctx, organization.ID)
	if err != nil {
		s.logger.Warn("reload organization failed", zap.String("id", organization.ID), zap.Error(err))
		detail = &models.OrganizationDetail{Organization: *organization}
	}
	return &models.Outcome[models.OrganizationDetail]{Record: *detail, Message: message}, nil
}
