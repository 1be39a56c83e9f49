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

const collegeColumns = "c.id, c.college_name, c.created_at, c.updated_at"

// CollegeRepository manages persistence for colleges.
type CollegeRepository struct {
	db *sqlx.DB
}

// NewCollegeRepository constructs a CollegeRepository.
func NewCollegeRepository(db *sqlx.DB) *CollegeRepository {
	return &CollegeRepository{db: db}
}

// List returns one page of colleges matching the filter term plus the total match count.
func (r *CollegeRepository) List(ctx context.Context, filter query.Filter) ([]models.College, int, error) {
	f := filter.Normalize()
	where, args := query.Search(f.Term, 1, "c.college_name")
	base := "FROM colleges c" + query.Where(where)

	listQuery := fmt.Sprintf("SELECT %s %s ORDER BY c.created_at ASC, c.id ASC LIMIT %d OFFSET %d", collegeColumns, base, f.PageSize, f.Offset())
	var colleges []models.College
	if err := r.db.SelectContext(ctx, &colleges, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list colleges: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+base, args...); err != nil {
		return nil, 0, fmt.Errorf("count colleges: %w", err)
	}
	return colleges, total, nil
}

// FindByID fetches a college by ID.
func (r *CollegeRepository) FindByID(ctx context.Context, id string) (*models.College, error) {
	query := "SELECT " + collegeColumns + " FROM colleges c WHERE c.id = $1"
	var college models.College
	if err := r.db.GetContext(ctx, &college, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find college: %w", err)
	}
	return &college, nil
}

// Exists reports whether a college with the ID is stored.
func (r *CollegeRepository) Exists(ctx context.Context, id string) (bool, error) {
	found, err := exists(ctx, r.db, "SELECT 1 FROM colleges WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("check college: %w", err)
	}
	return found, nil
}

// Dependents counts programs and organizations still pointing at the college.
func (r *CollegeRepository) Dependents(ctx context.Context, id string) (models.Dependents, error) {
	const query = `SELECT (SELECT COUNT(*) FROM programs WHERE college_id = $1) AS programs,
        (SELECT COUNT(*) FROM organizations WHERE college_id = $1) AS organizations`
	var counts struct {
		Programs      int `db:"programs"`
		Organizations int `db:"organizations"`
	}
	if err := r.db.GetContext(ctx, &counts, query, id); err != nil {
		return nil, fmt.Errorf("count college dependents: %w", err)
	}
	return models.Dependents{
		models.EntityProgram:      counts.Programs,
		models.EntityOrganization: counts.Organizations,
	}, nil
}

// Create inserts a new college record.
func (r *CollegeRepository) Create(ctx context.Context, college *models.College) error {
	if college.ID == "" {
		college.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if college.CreatedAt.IsZero() {
		college.CreatedAt = now
	}
	college.UpdatedAt = now
	const query = `INSERT INTO colleges (id, college_name, created_at, updated_at) VALUES (:id, :college_name, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, query, college); err != nil {
		return translate(err, "create college")
	}
	return nil
}

// Update replaces the editable fields of a college.
func (r *CollegeRepository) Update(ctx context.Context, college *models.College) error {
	college.UpdatedAt = time.Now().UTC()
	const query = `UPDATE colleges SET college_name = :college_name, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, query, college)
	return requireAffected(res, err, "update college")
}

// Delete removes a college. Referenced colleges fail with INTEGRITY_VIOLATION.
func (r *CollegeRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM colleges WHERE id = $1", id)
	return requireAffected(res, err, "delete college")
}
