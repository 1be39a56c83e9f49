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
	orgMemberFrom   = "FROM org_members m JOIN students s ON s.id = m.student_id JOIN programs p ON p.id = s.program_id JOIN organizations o ON o.id = m.organization_id"
	orgMemberSelect = "SELECT m.id, m.student_id, m.organization_id, m.date_joined, m.created_at, m.updated_at, s.student_id AS student_number, s.firstname, s.lastname, s.middlename, p.prog_name, o.name AS organization_name " + orgMemberFrom
)

// OrgMemberRepository manages persistence for organization memberships.
type OrgMemberRepository struct {
	db *sqlx.DB
}

// NewOrgMemberRepository constructs an OrgMemberRepository.
func NewOrgMemberRepository(db *sqlx.DB) *OrgMemberRepository {
	return &OrgMemberRepository{db: db}
}

// List returns a page of memberships joined with student, program and organization display fields.
func (r *OrgMemberRepository) List(ctx context.Context, filter query.Filter) ([]models.OrgMemberDetail, int, error) {
	f := filter.Normalize()
	where, args := query.Search(f.Term, 1, "s.firstname", "s.lastname", "s.middlename")
	clause := query.Where(where)

	listQuery := fmt.Sprintf("%s%s ORDER BY m.created_at ASC, m.id ASC LIMIT %d OFFSET %d", orgMemberSelect, clause, f.PageSize, f.Offset())
	var members []models.OrgMemberDetail
	if err := r.db.SelectContext(ctx, &members, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list org members: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+orgMemberFrom+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count org members: %w", err)
	}
	return members, total, nil
}

// FindByID fetches a membership by ID.
func (r *OrgMemberRepository) FindByID(ctx context.Context, id string) (*models.OrgMemberDetail, error) {
	var member models.OrgMemberDetail
	if err := r.db.GetContext(ctx, &member, orgMemberSelect+" WHERE m.id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find org member: %w", err)
	}
	return &member, nil
}

// Create inserts a new membership.
func (r *OrgMemberRepository) Create(ctx context.Context, member *models.OrgMember) error {
	if member.ID == "" {
		member.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if member.CreatedAt.IsZero() {
		member.CreatedAt = now
	}
	member.UpdatedAt = now
	const stmt = `INSERT INTO org_members (id, student_id, organization_id, date_joined, created_at, updated_at) VALUES (:id, :student_id, :organization_id, :date_joined, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, stmt, member); err != nil {
		return translate(err, "create org member")
	}
	return nil
}

// Update replaces the editable fields of a membership.
func (r *OrgMemberRepository) Update(ctx context.Context, member *models.OrgMember) error {
	member.UpdatedAt = time.Now().UTC()
	const stmt = `UPDATE org_members SET student_id = :student_id, organization_id = :organization_id, date_joined = :date_joined, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, stmt, member)
	return requireAffected(res, err, "update org member")
}

// Delete removes a membership. Nothing references memberships.
func (r *OrgMemberRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM org_members WHERE id = $1", id)
	return requireAffected(res, err, "delete org member")
}
