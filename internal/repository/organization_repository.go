package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
)

const (
	organizationFrom   = "FROM organizations o JOIN colleges c ON c.id = o.college_id"
	organizationSelect = "SELECT o.id, o.name, o.description, o.college_id, o.created_at, o.updated_at, c.college_name " + organizationFrom
)

// OrganizationRepository manages persistence for organizations.
type OrganizationRepository struct {
	db *sqlx.DB
}

// NewOrganizationRepository constructs an OrganizationRepository.
func NewOrganizationRepository(db *sqlx.DB) *OrganizationRepository {
	return &OrganizationRepository{db: db}
}

// List returns a page of organizations joined with their college name.
func (r *OrganizationRepository) List(ctx context.Context, filter query.Filter) ([]models.OrganizationDetail, int, error) {
	f := filter.Normalize()
	where, args := query.Search(f.Term, 1, "o.name", "c.college_name", "o.description")
	clause := query.Where(where)

	listQuery := fmt.Sprintf("%s%s ORDER BY o.created_at ASC, o.id ASC LIMIT %d OFFSET %d", organizationSelect, clause, f.PageSize, f.Offset())
	var organizations []models.OrganizationDetail
	if err := r.db.SelectContext(ctx, &organizations, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list organizations: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+organizationFrom+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count organizations: %w", err)
	}
	return organizations, total, nil
}

// FindByID fetches an organization by ID.
func (r *OrganizationRepository) FindByID(ctx context.Context, id string) (*models.OrganizationDetail, error) {
	var organization models.OrganizationDetail
	if err := r.db.GetContext(ctx, &organization, organizationSelect+" WHERE o.id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find organization: %w", err)
	}
	return &organization, nil
}

// Exists reports whether an organization with the ID is stored.
func (r *OrganizationRepository) Exists(ctx context.Context, id string) (bool, error) {
	found, err := exists(ctx, r.db, "SELECT 1 FROM organizations WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("check organization: %w", err)
	}
	return found, nil
}

// Dependents counts the organization's memberships.
func (r *OrganizationRepository) Dependents(ctx context.Context, id string) (models.Dependents, error) {
	var members int
	if err := r.db.GetContext(ctx, &members, "SELECT COUNT(*) FROM org_members WHERE organization_id = $1", id); err != nil {
		return nil, fmt.Errorf("count organization dependents: %w", err)
	}
	return models.Dependents{models.EntityOrgMember: members}, nil
}

// Create inserts a new organization.
func (r *OrganizationRepository) Create(ctx context.Context, organization *models.Organization) error {
	if organization.ID == "" {
		organization.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if organization.CreatedAt.IsZero() {
		organization.CreatedAt = now
	}
	organization.UpdatedAt = now
	const stmt = `INSERT INTO organizations (id, name, description, college_id, created_at, updated_at) VALUES (:id, :name, :description, :college_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, stmt, organization); err != nil {
		return translate(err, "create organization")
	}
	return nil
}

// Update replaces the editable fields of an organization.
func (r *OrganizationRepository) Update(ctx context.Context, organization *models.Organization) error {
	organization.UpdatedAt = time.Now().UTC()
	const stmt = `UPDATE organizations SET name = :name, description = :description, college_id = :college_id, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, stmt, organization)
	return requireAffected(res, err, "update organization")
}

// Delete removes an organization.
func (r *OrganizationRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM organizations WHERE id = $1", id)
	return requireAffected(res, err, "delete organization")
}
