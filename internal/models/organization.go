package models

import (
	"time"

	"github.com/Chodoro/psusphere/internal/query"
)

// Organization is a campus organization hosted by a college.
type Organization struct {
	ID          string    `db:"id" json:"id"`
	Name        string    `db:"name" json:"name"`
	Description string    `db:"description" json:"description"`
	CollegeID   string    `db:"college_id" json:"college_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// OrganizationDetail adds the hosting college's name.
type OrganizationDetail struct {
	Organization
	CollegeName string `db:"college_name" json:"college_name"`
}

// Matches applies the organization list search: name, college name, description.
func (o OrganizationDetail) Matches(term string) bool {
	return query.Matches(term, o.Name, o.CollegeName, o.Description)
}
