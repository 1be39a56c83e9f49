package models

import (
	"time"

	"github.com/Chodoro/psusphere/internal/query"
)

// College groups programs and organizations.
type College struct {
	ID          string    `db:"id" json:"id"`
	CollegeName string    `db:"college_name" json:"college_name"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time `db:"updated_at" json:"updated_at"`
}

// Matches applies the college list search: college_name only.
func (c College) Matches(term string) bool {
	return query.Matches(term, c.CollegeName)
}
