package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

type orgMemberRepository interface {
	List(ctx context.Context, filter query.Filter) ([]models.OrgMemberDetail, int, error)
	FindByID(ctx context.Context, id string) (*models.OrgMemberDetail, error)
	Create(ctx context.Context, member *models.OrgMember) error
	Update(ctx context.Context, member *models.OrgMember) error
	Delete(ctx context.Context, id string) error
}

// OrgMemberRequest holds the full set of editable membership fields.
// DateJoined uses the YYYY-MM-DD layout.
type OrgMemberRequest struct {
	StudentID      string `json:"student_id" validate:"required,uuid"`
	OrganizationID string `json:"organization_id" validate:"required,uuid"`
	DateJoined     string `json:"date_joined" validate:"required,datetime=2006-01-02"`
}

// OrgMemberPatch holds an update; nil fields keep their stored value.
type OrgMemberPatch struct {
	StudentID      *string `json:"student_id"`
	OrganizationID *string `json:"organization_id"`
	DateJoined     *string `json:"date_joined"`
}

// OrgMemberService handles organization membership use-cases.
type OrgMemberService struct {
	repo          orgMemberRepository
	students      existenceChecker
	organizations existenceChecker
	validator     *validator.Validate
	logger        *zap.Logger
	hooks         Hooks
}

// NewOrgMemberService constructs the membership service.
func NewOrgMemberService(repo orgMemberRepository, students, organizations existenceChecker, validate *validator.Validate, logger *zap.Logger, hooks Hooks) *OrgMemberService {
	if validate == nil {
		validate = NewValidator()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &OrgMemberService{repo: repo, students: students, organizations: organizations, validator: validate, logger: logger, hooks: hooks}
}

// List returns one page of memberships matching the filter.
func (s *OrgMemberService) List(ctx context.Context, filter query.Filter) (*query.Page[models.OrgMemberDetail], error) {
	return cachedList(ctx, s.hooks, s.logger, models.EntityOrgMember, filter, s.repo.List)
}

// Get returns a single membership with student, program and organization names.
func (s *OrgMemberService) Get(ctx context.Context, id string) (*models.OrgMemberDetail, error) {
	id, err := parseID(models.EntityOrgMember, id)
	if err != nil {
		return nil, err
	}
	member, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(models.EntityOrgMember, err)
	}
	return member, nil
}

// Create links an existing student to an existing organization.
func (s *OrgMemberService) Create(ctx context.Context, req OrgMemberRequest) (*models.Outcome[models.OrgMemberDetail], error) {
	req.StudentID, req.OrganizationID, req.DateJoined = trim(req.StudentID), trim(req.OrganizationID), trim(req.DateJoined)
	joined, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}
	member := &models.OrgMember{StudentID: req.StudentID, OrganizationID: req.OrganizationID, DateJoined: joined}
	if err := s.repo.Create(ctx, member); err != nil {
		s.logger.Error("create org member failed", zap.Error(err))
		return nil, writeError(models.EntityOrgMember, ActionCreate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityOrgMember, ActionCreate)
	detail := s.reload(ctx, member, nil)
	return &models.Outcome[models.OrgMemberDetail]{Record: *detail, Message: createdMessage(models.EntityOrgMember)}, nil
}

// Update applies the supplied fields to an existing membership. The message
// names the member student as stored after the update.
func (s *OrgMemberService) Update(ctx context.Context, id string, patch OrgMemberPatch) (*models.Outcome[models.OrgMemberDetail], error) {
	current, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	req := OrgMemberRequest{
		StudentID:      current.StudentID,
		OrganizationID: current.OrganizationID,
		DateJoined:     current.DateJoined.String(),
	}
	apply(&req.StudentID, patch.StudentID)
	apply(&req.OrganizationID, patch.OrganizationID)
	apply(&req.DateJoined, patch.DateJoined)
	joined, err := s.validate(ctx, req)
	if err != nil {
		return nil, err
	}

	member := current.OrgMember
	member.StudentID, member.OrganizationID, member.DateJoined = req.StudentID, req.OrganizationID, joined
	if err := s.repo.Update(ctx, &member); err != nil {
		s.logger.Error("update org member failed", zap.String("id", member.ID), zap.Error(err))
		return nil, writeError(models.EntityOrgMember, ActionUpdate, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityOrgMember, ActionUpdate)
	detail := s.reload(ctx, &member, current)
	name := detail.MemberName()
	if name == "" {
		name = detail.StudentID
	}
	return &models.Outcome[models.OrgMemberDetail]{Record: *detail, Message: updatedMessage(models.EntityOrgMember, name)}, nil
}

// Delete removes a membership.
func (s *OrgMemberService) Delete(ctx context.Context, id string) (string, error) {
	member, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	if err := s.repo.Delete(ctx, member.ID); err != nil {
		s.logger.Warn("delete org member failed", zap.String("id", member.ID), zap.Error(err))
		return "", writeError(models.EntityOrgMember, ActionDelete, err)
	}
	s.hooks.mutated(ctx, s.logger, models.EntityOrgMember, ActionDelete)
	return deletedMessage(models.EntityOrgMember), nil
}

func (s *OrgMemberService) validate(ctx context.Context, req OrgMemberRequest) (models.Date, error) {
	if err := s.validator.Struct(req); err != nil {
		return models.Date{}, appErrors.FromValidator(err, "invalid organization member payload")
	}
	joined, err := models.ParseDate(req.DateJoined)
	if err != nil {
		return models.Date{}, appErrors.Validation("invalid organization member payload", map[string]string{"date_joined": "date_joined must be a date in 2006-01-02 format"})
	}
	if err := checkReferences(ctx, "invalid organization member payload",
		referenceCheck{field: "student_id", entity: models.EntityStudent, id: req.StudentID, exists: s.students.Exists},
		referenceCheck{field: "organization_id", entity: models.EntityOrganization, id: req.OrganizationID, exists: s.organizations.Exists},
	); err != nil {
		return models.Date{}, err
	}
	return joined, nil
}

// reload fetches the joined row for the response. The write is already
// committed, so a failed reload falls back to the stored record, keeping the
// display fields of prev for references the write left unchanged.
func (s *OrgMemberService) reload(ctx context.Context, member *models.OrgMember, prev *models.OrgMemberDetail) *models.OrgMemberDetail {
	detail, err := s.repo.FindByID(ctx, member.ID)
	if err == nil {
		return detail
	}
	s.logger.Warn("reload org member failed", zap.String("id", member.ID), zap.Error(err))
	detail = &models.OrgMemberDetail{OrgMember: *member}
	if prev == nil {
		return detail
	}
	if prev.StudentID == member.StudentID {
		detail.StudentNumber = prev.StudentNumber
		detail.Firstname, detail.Lastname, detail.Middlename = prev.Firstname, prev.Lastname, prev.Middlename
		detail.ProgName = prev.ProgName
	}
	if prev.OrganizationID == member.OrganizationID {
		detail.OrganizationName = prev.OrganizationName
	}
	return detail
}
