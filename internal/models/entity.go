package models

// Entity names one of the managed record types.
type Entity string

const (
	EntityCollege      Entity = "college"
	EntityProgram      Entity = "program"
	EntityStudent      Entity = "student"
	EntityOrganization Entity = "organization"
	EntityOrgMember    Entity = "orgmember"
)

// Entities lists every managed type in dependency order.
var Entities = []Entity{EntityCollege, EntityProgram, EntityStudent, EntityOrganization, EntityOrgMember}

// Label is the human name used in confirmation messages.
func (e Entity) Label() string {
	switch e {
	case EntityCollege:
		return "College"
	case EntityProgram:
		return "Program"
	case EntityStudent:
		return "Student"
	case EntityOrganization:
		return "Organization"
	case EntityOrgMember:
		return "Organization member"
	default:
		return string(e)
	}
}

// Path is the URL segment of the entity's collection.
func (e Entity) Path() string {
	switch e {
	case EntityCollege:
		return "colleges"
	case EntityProgram:
		return "programs"
	case EntityStudent:
		return "students"
	case EntityOrganization:
		return "organizations"
	case EntityOrgMember:
		return "org-members"
	default:
		return string(e)
	}
}

// ParseEntity resolves a collection path segment back to its entity.
func ParseEntity(path string) (Entity, bool) {
	for _, e := range Entities {
		if e.Path() == path {
			return e, true
		}
	}
	return "", false
}

// Outcome pairs a persisted record with the confirmation shown once to the
// user after a successful mutation.
type Outcome[T any] struct {
	Record  T      `json:"record"`
	Message string `json:"message"`
}

// Dependents counts the records that still reference one row, keyed by the
// referencing entity.
type Dependents map[Entity]int

// Total sums every dependent count.
func (d Dependents) Total() int {
	total := 0
	for _, n := range d {
		total += n
	}
	return total
}
