package models

import (
	"strings"
	"time"

	"github.com/Chodoro/psusphere/internal/query"
)

// OrgMember links a student to an organization with the date they joined.
type OrgMember struct {
	ID             string    `db:"id" json:"id"`
	StudentID      string    `db:"student_id" json:"student_id"`
	OrganizationID string    `db:"organization_id" json:"organization_id"`
	DateJoined     Date      `db:"date_joined" json:"date_joined"`
	CreatedAt      time.Time `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time `db:"updated_at" json:"updated_at"`
}

// OrgMemberDetail carries the member's student and organization display
// fields, including the program the student belongs to.
type OrgMemberDetail struct {
	OrgMember
	StudentNumber    string `db:"student_number" json:"student_number"`
	Firstname        string `db:"firstname" json:"firstname"`
	Lastname         string `db:"lastname" json:"lastname"`
	Middlename       string `db:"middlename" json:"middlename"`
	ProgName         string `db:"prog_name" json:"prog_name"`
	OrganizationName string `db:"organization_name" json:"organization_name"`
}

// MemberName renders the student's "firstname lastname". It is empty when
// the display fields were not loaded.
func (m OrgMemberDetail) MemberName() string {
	return strings.TrimSpace(m.Firstname + " " + m.Lastname)
}

// Matches applies the member list search: the student's three name parts.
func (m OrgMemberDetail) Matches(term string) bool {
	return query.Matches(term, m.Firstname, m.Lastname, m.Middlename)
}
