package models

import (
	"time"

	"github.com/Chodoro/psusphere/internal/query"
)

// Student is an enrolled learner. StudentID is the school-issued number; ID
// is the record identity.
type Student struct {
	ID         string    `db:"id" json:"id"`
	StudentID  string    `db:"student_id" json:"student_id"`
	Firstname  string    `db:"firstname" json:"firstname"`
	Lastname   string    `db:"lastname" json:"lastname"`
	Middlename string    `db:"middlename" json:"middlename"`
	ProgramID  string    `db:"program_id" json:"program_id"`
	CreatedAt  time.Time `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time `db:"updated_at" json:"updated_at"`
}

// StudentDetail adds the program name shown in student lists.
type StudentDetail struct {
	Student
	ProgName string `db:"prog_name" json:"prog_name"`
}

// FullName renders "firstname lastname" as used in confirmation messages.
func (s Student) FullName() string {
	return s.Firstname + " " + s.Lastname
}

// Matches applies the student list search: names, student number and program.
func (s StudentDetail) Matches(term string) bool {
	return query.Matches(term, s.Firstname, s.Lastname, s.Middlename, s.StudentID, s.ProgName)
}
