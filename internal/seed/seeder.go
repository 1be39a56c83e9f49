package seed

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	"github.com/Chodoro/psusphere/internal/service"
)

// writer is the part of an entity service the seeder uses.
type writer[T, Req any] interface {
	List(ctx context.Context, filter query.Filter) (*query.Page[T], error)
	Create(ctx context.Context, req Req) (*models.Outcome[T], error)
}

// Services are the entity services records are written through.
type Services struct {
	Colleges      writer[models.College, service.CollegeRequest]
	Programs      writer[models.ProgramDetail, service.ProgramRequest]
	Students      writer[models.StudentDetail, service.StudentRequest]
	Organizations writer[models.OrganizationDetail, service.OrganizationRequest]
	OrgMembers    writer[models.OrgMemberDetail, service.OrgMemberRequest]
}

// Summary counts created and already present records per entity.
type Summary struct {
	Created map[models.Entity]int
	Skipped map[models.Entity]int
}

func newSummary() *Summary {
	return &Summary{Created: map[models.Entity]int{}, Skipped: map[models.Entity]int{}}
}

// Seeder writes fixtures in dependency order. Records that already exist
// under the same natural key are reused, so a fixture file can be applied
// more than once.
type Seeder struct {
	services Services
	logger   *zap.Logger
}

// NewSeeder constructs a Seeder.
func NewSeeder(services Services, logger *zap.Logger) *Seeder {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Seeder{services: services, logger: logger}
}

// Run applies fixtures. It stops at the first record the services reject.
func (s *Seeder) Run(ctx context.Context, fixtures *Fixtures) (*Summary, error) {
	summary := newSummary()
	colleges := map[string]string{}
	programs := map[string]string{}
	students := map[string]string{}
	organizations := map[string]string{}

	for _, f := range fixtures.Colleges {
		id, err := ensure(ctx, s.services.Colleges, summary, models.EntityCollege, f.Name,
			func(c models.College) (string, bool) { return c.ID, sameName(c.CollegeName, f.Name) },
			service.CollegeRequest{CollegeName: f.Name},
			func(c models.College) string { return c.ID })
		if err != nil {
			return summary, fmt.Errorf("college %q: %w", f.Name, err)
		}
		colleges[key(f.Name)] = id
	}

	for _, f := range fixtures.Programs {
		collegeID, err := resolve(colleges, models.EntityCollege, f.College)
		if err != nil {
			return summary, fmt.Errorf("program %q: %w", f.Name, err)
		}
		id, err := ensure(ctx, s.services.Programs, summary, models.EntityProgram, f.Name,
			func(p models.ProgramDetail) (string, bool) {
				return p.ID, sameName(p.ProgName, f.Name) && p.CollegeID == collegeID
			},
			service.ProgramRequest{ProgName: f.Name, CollegeID: collegeID},
			func(p models.ProgramDetail) string { return p.ID })
		if err != nil {
			return summary, fmt.Errorf("program %q: %w", f.Name, err)
		}
		programs[key(f.Name)] = id
	}

	for _, f := range fixtures.Students {
		programID, err := resolve(programs, models.EntityProgram, f.Program)
		if err != nil {
			return summary, fmt.Errorf("student %q: %w", f.StudentID, err)
		}
		req := service.StudentRequest{
			StudentID:  f.StudentID,
			Firstname:  f.Firstname,
			Lastname:   f.Lastname,
			Middlename: f.Middlename,
			ProgramID:  programID,
		}
		id, err := ensure(ctx, s.services.Students, summary, models.EntityStudent, f.StudentID,
			func(st models.StudentDetail) (string, bool) { return st.ID, sameName(st.StudentID, f.StudentID) },
			req,
			func(st models.StudentDetail) string { return st.ID })
		if err != nil {
			return summary, fmt.Errorf("student %q: %w", f.StudentID, err)
		}
		students[key(f.StudentID)] = id
	}

	for _, f := range fixtures.Organizations {
		collegeID, err := resolve(colleges, models.EntityCollege, f.College)
		if err != nil {
			return summary, fmt.Errorf("organization %q: %w", f.Name, err)
		}
		req := service.OrganizationRequest{Name: f.Name, Description: f.Description, CollegeID: collegeID}
		id, err := ensure(ctx, s.services.Organizations, summary, models.EntityOrganization, f.Name,
			func(o models.OrganizationDetail) (string, bool) { return o.ID, sameName(o.Name, f.Name) },
			req,
			func(o models.OrganizationDetail) string { return o.ID })
		if err != nil {
			return summary, fmt.Errorf("organization %q: %w", f.Name, err)
		}
		organizations[key(f.Name)] = id
	}

	for _, f := range fixtures.Members {
		studentID, err := resolve(students, models.EntityStudent, f.Student)
		if err != nil {
			return summary, fmt.Errorf("member %q: %w", f.Student, err)
		}
		organizationID, err := resolve(organizations, models.EntityOrganization, f.Organization)
		if err != nil {
			return summary, fmt.Errorf("member %q: %w", f.Student, err)
		}
		req := service.OrgMemberRequest{StudentID: studentID, OrganizationID: organizationID, DateJoined: f.DateJoined}
		// Members are searched by student name, so scan the whole list.
		_, err = ensure(ctx, s.services.OrgMembers, summary, models.EntityOrgMember, "",
			func(m models.OrgMemberDetail) (string, bool) {
				return m.ID, m.StudentID == studentID && m.OrganizationID == organizationID
			},
			req,
			func(m models.OrgMemberDetail) string { return m.ID })
		if err != nil {
			return summary, fmt.Errorf("member %q: %w", f.Student, err)
		}
	}

	s.logger.Info("seed applied",
		zap.Any("created", summary.Created),
		zap.Any("skipped", summary.Skipped),
	)
	return summary, nil
}

// ensure returns the id of the first record matching, creating it when none does.
func ensure[T, Req any](
	ctx context.Context,
	w writer[T, Req],
	summary *Summary,
	entity models.Entity,
	term string,
	match func(T) (string, bool),
	req Req,
	idOf func(T) string,
) (string, error) {
	for page := 1; ; page++ {
		p, err := w.List(ctx, query.Filter{Term: term, Page: page, PageSize: query.MaxPageSize})
		if err != nil {
			return "", err
		}
		for _, item := range p.Items {
			if id, ok := match(item); ok {
				summary.Skipped[entity]++
				return id, nil
			}
		}
		if !p.HasNext() || len(p.Items) == 0 {
			break
		}
	}

	outcome, err := w.Create(ctx, req)
	if err != nil {
		return "", err
	}
	summary.Created[entity]++
	return idOf(outcome.Record), nil
}

func resolve(ids map[string]string, entity models.Entity, name string) (string, error) {
	id, ok := ids[key(name)]
	if !ok {
		return "", fmt.Errorf("unknown %s %q", strings.ToLower(entity.Label()), name)
	}
	return id, nil
}

func key(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func sameName(a, b string) bool {
	return key(a) == key(b)
}
