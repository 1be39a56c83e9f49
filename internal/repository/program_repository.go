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

const programSelect = "SELECT p.id, p.prog_name, p.college_id, p.created_at, p.updated_at, c.college_name FROM programs p JOIN colleges c ON c.id = p.college_id"

// ProgramRepository manages persistence for programs.
type ProgramRepository struct {
	db *sqlx.DB
}

// NewProgramRepository constructs a ProgramRepository.
func NewProgramRepository(db *sqlx.DB) *ProgramRepository {
	return &ProgramRepository{db: db}
}

// List returns a page of programs joined with their college name.
func (r *ProgramRepository) List(ctx context.Context, filter query.Filter) ([]models.ProgramDetail, int, error) {
	f := filter.Normalize()
	where, args := query.Search(f.Term, 1, "p.prog_name", "c.college_name")
	clause := query.Where(where)

	listQuery := fmt.Sprintf("%s%s ORDER BY p.created_at ASC, p.id ASC LIMIT %d OFFSET %d", programSelect, clause, f.PageSize, f.Offset())
	var programs []models.ProgramDetail
	if err := r.db.SelectContext(ctx, &programs, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list programs: %w", err)
	}

	var total int
	countQuery := "SELECT COUNT(*) FROM programs p JOIN colleges c ON c.id = p.college_id" + clause
	if err := r.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("count programs: %w", err)
	}
	return programs, total, nil
}

// FindByID fetches a program by ID.
func (r *ProgramRepository) FindByID(ctx context.Context, id string) (*models.ProgramDetail, error) {
	var program models.ProgramDetail
	if err := r.db.GetContext(ctx, &program, programSelect+" WHERE p.id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find program: %w", err)
	}
	return &program, nil
}

// Exists reports whether a program with the ID is stored.
func (r *ProgramRepository) Exists(ctx context.Context, id string) (bool, error) {
	found, err := exists(ctx, r.db, "SELECT 1 FROM programs WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("check program: %w", err)
	}
	return found, nil
}

// Dependents counts students enrolled in the program.
func (r *ProgramRepository) Dependents(ctx context.Context, id string) (models.Dependents, error) {
	var students int
	if err := r.db.GetContext(ctx, &students, "SELECT COUNT(*) FROM students WHERE program_id = $1", id); err != nil {
		return nil, fmt.Errorf("count program dependents: %w", err)
	}
	return models.Dependents{models.EntityStudent: students}, nil
}

// Create inserts a new program.
func (r *ProgramRepository) Create(ctx context.Context, program *models.Program) error {
	if program.ID == "" {
		program.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if program.CreatedAt.IsZero() {
		program.CreatedAt = now
	}
	program.UpdatedAt = now
	const stmt = `INSERT INTO programs (id, prog_name, college_id, created_at, updated_at) VALUES (:id, :prog_name, :college_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, stmt, program); err != nil {
		return translate(err, "create program")
	}
	return nil
}

// Update replaces the editable fields of a program.
func (r *ProgramRepository) Update(ctx context.Context, program *models.Program) error {
	program.UpdatedAt = time.Now().UTC()
	const stmt = `UPDATE programs SET prog_name = :prog_name, college_id = :college_id, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, stmt, program)
	return requireAffected(res, err, "update program")
}

// Delete removes a program.
func (r *ProgramRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM programs WHERE id = $1", id)
	return requireAffected(res, err, "delete program")
}
