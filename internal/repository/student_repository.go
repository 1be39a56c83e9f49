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
	studentFrom   = "FROM students s JOIN programs p ON p.id = s.program_id"
	studentSelect = "SELECT s.id, s.student_id, s.firstname, s.lastname, s.middlename, s.program_id, s.created_at, s.updated_at, p.prog_name " + studentFrom
)

// StudentRepository manages persistence for students.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// List returns a page of students joined with their program name.
func (r *StudentRepository) List(ctx context.Context, filter query.Filter) ([]models.StudentDetail, int, error) {
	f := filter.Normalize()
	where, args := query.Search(f.Term, 1, "s.firstname", "s.lastname", "s.middlename", "s.student_id", "p.prog_name")
	clause := query.Where(where)

	listQuery := fmt.Sprintf("%s%s ORDER BY s.created_at ASC, s.id ASC LIMIT %d OFFSET %d", studentSelect, clause, f.PageSize, f.Offset())
	var students []models.StudentDetail
	if err := r.db.SelectContext(ctx, &students, listQuery, args...); err != nil {
		return nil, 0, fmt.Errorf("list students: %w", err)
	}

	var total int
	if err := r.db.GetContext(ctx, &total, "SELECT COUNT(*) "+studentFrom+clause, args...); err != nil {
		return nil, 0, fmt.Errorf("count students: %w", err)
	}
	return students, total, nil
}

// FindByID fetches a student by record ID.
func (r *StudentRepository) FindByID(ctx context.Context, id string) (*models.StudentDetail, error) {
	var student models.StudentDetail
	if err := r.db.GetContext(ctx, &student, studentSelect+" WHERE s.id = $1", id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find student: %w", err)
	}
	return &student, nil
}

// Exists reports whether a student with the record ID is stored.
func (r *StudentRepository) Exists(ctx context.Context, id string) (bool, error) {
	found, err := exists(ctx, r.db, "SELECT 1 FROM students WHERE id = $1", id)
	if err != nil {
		return false, fmt.Errorf("check student: %w", err)
	}
	return found, nil
}

// Dependents counts the student's organization memberships.
func (r *StudentRepository) Dependents(ctx context.Context, id string) (models.Dependents, error) {
	var members int
	if err := r.db.GetContext(ctx, &members, "SELECT COUNT(*) FROM org_members WHERE student_id = $1", id); err != nil {
		return nil, fmt.Errorf("count student dependents: %w", err)
	}
	return models.Dependents{models.EntityOrgMember: members}, nil
}

// Create inserts a new student.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	if student.ID == "" {
		student.ID = uuid.NewString()
	}
	now := time.Now().UTC()
	if student.CreatedAt.IsZero() {
		student.CreatedAt = now
	}
	student.UpdatedAt = now
	const stmt = `INSERT INTO students (id, student_id, firstname, lastname, middlename, program_id, created_at, updated_at) VALUES (:id, :student_id, :firstname, :lastname, :middlename, :program_id, :created_at, :updated_at)`
	if _, err := r.db.NamedExecContext(ctx, stmt, student); err != nil {
		return translate(err, "create student")
	}
	return nil
}

// Update replaces the editable fields of a student.
func (r *StudentRepository) Update(ctx context.Context, student *models.Student) error {
	student.UpdatedAt = time.Now().UTC()
	const stmt = `UPDATE students SET student_id = :student_id, firstname = :firstname, lastname = :lastname, middlename = :middlename, program_id = :program_id, updated_at = :updated_at WHERE id = :id`
	res, err := r.db.NamedExecContext(ctx, stmt, student)
	return requireAffected(res, err, "update student")
}

// Delete removes a student.
func (r *StudentRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, "DELETE FROM students WHERE id = $1", id)
	return requireAffected(res, err, "delete student")
}
