package models

import (
	"time"

	"github.com/Chodoro/psusphere/internal/query"
)

// Program is an academic program offered by a college.
type Program struct {
	ID        string    `db:"id" json:"id"`
	ProgName  string    `db:"prog_name" json:"prog_name"`
	CollegeID string    `db:"college_id" json:"college_id"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ProgramDetail is a program row joined with its college's name.
type ProgramDetail struct {
	Program
	CollegeName string `db:"college_name" json:"college_name"`
}

// Matches applies the program list search: prog_name and college name.
func (p ProgramDetail) Matches(term string) bool {
	return query.Matches(term, p.ProgName, p.CollegeName)
}
