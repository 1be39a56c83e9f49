package service

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

// fakeDB is an in-memory store with the same ordering, search and
// referential rules as the SQL repositories.
type fakeDB struct {
	clock         time.Time
	colleges      []models.College
	programs      []models.Program
	students      []models.Student
	organizations []models.Organization
	members       []models.OrgMember
}

func newFakeDB() *fakeDB {
	return &fakeDB{clock: time.Date(2024, 1, 1, 8, 0, 0, 0, time.UTC)}
}

func (db *fakeDB) tick() time.Time {
	db.clock = db.clock.Add(time.Second)
	return db.clock
}

func (db *fakeDB) collegeName(id string) string {
	for _, c := range db.colleges {
		if c.ID == id {
			return c.CollegeName
		}
	}
	return ""
}

func (db *fakeDB) program(id string) (models.Program, bool) {
	for _, p := range db.programs {
		if p.ID == id {
			return p, true
		}
	}
	return models.Program{}, false
}

func (db *fakeDB) student(id string) (models.Student, bool) {
	for _, s := range db.students {
		if s.ID == id {
			return s, true
		}
	}
	return models.Student{}, false
}

func (db *fakeDB) organizationName(id string) string {
	for _, o := range db.organizations {
		if o.ID == id {
			return o.Name
		}
	}
	return ""
}

func page[T interface{ Matches(string) bool }](all []T, f query.Filter) ([]T, int, error) {
	matched := make([]T, 0, len(all))
	for _, item := range all {
		if item.Matches(f.Term) {
			matched = append(matched, item)
		}
	}
	p := query.Paginate(matched, f)
	return p.Items, p.TotalCount, nil
}

type fakeCollegeRepo struct{ db *fakeDB }

func (r fakeCollegeRepo) List(ctx context.Context, f query.Filter) ([]models.College, int, error) {
	return page(r.db.colleges, f)
}

func (r fakeCollegeRepo) FindByID(ctx context.Context, id string) (*models.College, error) {
	for _, c := range r.db.colleges {
		if c.ID == id {
			return &c, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r fakeCollegeRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, err := r.FindByID(ctx, id)
	return err == nil, nil
}

func (r fakeCollegeRepo) Dependents(ctx context.Context, id string) (models.Dependents, error) {
	deps := models.Dependents{}
	for _, p := range r.db.programs {
		if p.CollegeID == id {
			deps[models.EntityProgram]++
		}
	}
	for _, o := range r.db.organizations {
		if o.CollegeID == id {
			deps[models.EntityOrganization]++
		}
	}
	return deps, nil
}

func (r fakeCollegeRepo) Create(ctx context.Context, c *models.College) error {
	c.ID = uuid.NewString()
	c.CreatedAt = r.db.tick()
	c.UpdatedAt = c.CreatedAt
	r.db.colleges = append(r.db.colleges, *c)
	return nil
}

func (r fakeCollegeRepo) Update(ctx context.Context, c *models.College) error {
	for i := range r.db.colleges {
		if r.db.colleges[i].ID == c.ID {
			c.UpdatedAt = r.db.tick()
			r.db.colleges[i] = *c
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r fakeCollegeRepo) Delete(ctx context.Context, id string) error {
	if deps, _ := r.Dependents(ctx, id); deps.Total() > 0 {
		return appErrors.Clone(appErrors.ErrIntegrity, "")
	}
	for i := range r.db.colleges {
		if r.db.colleges[i].ID == id {
			r.db.colleges = append(r.db.colleges[:i], r.db.colleges[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeProgramRepo struct{ db *fakeDB }

func (r fakeProgramRepo) details() []models.ProgramDetail {
	out := make([]models.ProgramDetail, 0, len(r.db.programs))
	for _, p := range r.db.programs {
		out = append(out, models.ProgramDetail{Program: p, CollegeName: r.db.collegeName(p.CollegeID)})
	}
	return out
}

func (r fakeProgramRepo) List(ctx context.Context, f query.Filter) ([]models.ProgramDetail, int, error) {
	return page(r.details(), f)
}

func (r fakeProgramRepo) FindByID(ctx context.Context, id string) (*models.ProgramDetail, error) {
	for _, d := range r.details() {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r fakeProgramRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.db.program(id)
	return ok, nil
}

func (r fakeProgramRepo) Dependents(ctx context.Context, id string) (models.Dependents, error) {
	deps := models.Dependents{}
	for _, s := range r.db.students {
		if s.ProgramID == id {
			deps[models.EntityStudent]++
		}
	}
	return deps, nil
}

func (r fakeProgramRepo) Create(ctx context.Context, p *models.Program) error {
	p.ID = uuid.NewString()
	p.CreatedAt = r.db.tick()
	r.db.programs = append(r.db.programs, *p)
	return nil
}

func (r fakeProgramRepo) Update(ctx context.Context, p *models.Program) error {
	for i := range r.db.programs {
		if r.db.programs[i].ID == p.ID {
			r.db.programs[i] = *p
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r fakeProgramRepo) Delete(ctx context.Context, id string) error {
	for i := range r.db.programs {
		if r.db.programs[i].ID == id {
			r.db.programs = append(r.db.programs[:i], r.db.programs[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeStudentRepo struct{ db *fakeDB }

func (r fakeStudentRepo) details() []models.StudentDetail {
	out := make([]models.StudentDetail, 0, len(r.db.students))
	for _, s := range r.db.students {
		p, _ := r.db.program(s.ProgramID)
		out = append(out, models.StudentDetail{Student: s, ProgName: p.ProgName})
	}
	return out
}

func (r fakeStudentRepo) List(ctx context.Context, f query.Filter) ([]models.StudentDetail, int, error) {
	return page(r.details(), f)
}

func (r fakeStudentRepo) FindByID(ctx context.Context, id string) (*models.StudentDetail, error) {
	for _, d := range r.details() {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r fakeStudentRepo) Exists(ctx context.Context, id string) (bool, error) {
	_, ok := r.db.student(id)
	return ok, nil
}

func (r fakeStudentRepo) Dependents(ctx context.Context, id string) (models.Dependents, error) {
	deps := models.Dependents{}
	for _, m := range r.db.members {
		if m.StudentID == id {
			deps[models.EntityOrgMember]++
		}
	}
	return deps, nil
}

func (r fakeStudentRepo) Create(ctx context.Context, s *models.Student) error {
	s.ID = uuid.NewString()
	s.CreatedAt = r.db.tick()
	r.db.students = append(r.db.students, *s)
	return nil
}

func (r fakeStudentRepo) Update(ctx context.Context, s *models.Student) error {
	for i := range r.db.students {
		if r.db.students[i].ID == s.ID {
			r.db.students[i] = *s
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r fakeStudentRepo) Delete(ctx context.Context, id string) error {
	for i := range r.db.students {
		if r.db.students[i].ID == id {
			r.db.students = append(r.db.students[:i], r.db.students[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeOrganizationRepo struct{ db *fakeDB }

func (r fakeOrganizationRepo) details() []models.OrganizationDetail {
	out := make([]models.OrganizationDetail, 0, len(r.db.organizations))
	for _, o := range r.db.organizations {
		out = append(out, models.OrganizationDetail{Organization: o, CollegeName: r.db.collegeName(o.CollegeID)})
	}
	return out
}

func (r fakeOrganizationRepo) List(ctx context.Context, f query.Filter) ([]models.OrganizationDetail, int, error) {
	return page(r.details(), f)
}

func (r fakeOrganizationRepo) FindByID(ctx context.Context, id string) (*models.OrganizationDetail, error) {
	for _, d := range r.details() {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r fakeOrganizationRepo) Exists(ctx context.Context, id string) (bool, error) {
	return r.db.organizationName(id) != "", nil
}

func (r fakeOrganizationRepo) Dependents(ctx context.Context, id string) (models.Dependents, error) {
	deps := models.Dependents{}
	for _, m := range r.db.members {
		if m.OrganizationID == id {
			deps[models.EntityOrgMember]++
		}
	}
	return deps, nil
}

func (r fakeOrganizationRepo) Create(ctx context.Context, o *models.Organization) error {
	o.ID = uuid.NewString()
	o.CreatedAt = r.db.tick()
	r.db.organizations = append(r.db.organizations, *o)
	return nil
}

func (r fakeOrganizationRepo) Update(ctx context.Context, o *models.Organization) error {
	for i := range r.db.organizations {
		if r.db.organizations[i].ID == o.ID {
			r.db.organizations[i] = *o
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r fakeOrganizationRepo) Delete(ctx context.Context, id string) error {
	for i := range r.db.organizations {
		if r.db.organizations[i].ID == id {
			r.db.organizations = append(r.db.organizations[:i], r.db.organizations[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

type fakeOrgMemberRepo struct{ db *fakeDB }

func (r fakeOrgMemberRepo) details() []models.OrgMemberDetail {
	out := make([]models.OrgMemberDetail, 0, len(r.db.members))
	for _, m := range r.db.members {
		s, _ := r.db.student(m.StudentID)
		p, _ := r.db.program(s.ProgramID)
		out = append(out, models.OrgMemberDetail{
			OrgMember:        m,
			StudentNumber:    s.StudentID,
			Firstname:        s.Firstname,
			Lastname:         s.Lastname,
			Middlename:       s.Middlename,
			ProgName:         p.ProgName,
			OrganizationName: r.db.organizationName(m.OrganizationID),
		})
	}
	return out
}

func (r fakeOrgMemberRepo) List(ctx context.Context, f query.Filter) ([]models.OrgMemberDetail, int, error) {
	return page(r.details(), f)
}

func (r fakeOrgMemberRepo) FindByID(ctx context.Context, id string) (*models.OrgMemberDetail, error) {
	for _, d := range r.details() {
		if d.ID == id {
			return &d, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (r fakeOrgMemberRepo) Create(ctx context.Context, m *models.OrgMember) error {
	m.ID = uuid.NewString()
	m.CreatedAt = r.db.tick()
	r.db.members = append(r.db.members, *m)
	return nil
}

func (r fakeOrgMemberRepo) Update(ctx context.Context, m *models.OrgMember) error {
	for i := range r.db.members {
		if r.db.members[i].ID == m.ID {
			r.db.members[i] = *m
			return nil
		}
	}
	return sql.ErrNoRows
}

func (r fakeOrgMemberRepo) Delete(ctx context.Context, id string) error {
	for i := range r.db.members {
		if r.db.members[i].ID == id {
			r.db.members = append(r.db.members[:i], r.db.members[i+1:]...)
			return nil
		}
	}
	return sql.ErrNoRows
}

// suite wires every entity service over one fakeDB.
type suite struct {
	db            *fakeDB
	colleges      *CollegeService
	programs      *ProgramService
	students      *StudentService
	organizations *OrganizationService
	members       *OrgMemberService
}

func newSuite(hooks Hooks) *suite {
	db := newFakeDB()
	v := NewValidator()
	return &suite{
		db:            db,
		colleges:      NewCollegeService(fakeCollegeRepo{db}, v, nil, hooks),
		programs:      NewProgramService(fakeProgramRepo{db}, fakeCollegeRepo{db}, v, nil, hooks),
		students:      NewStudentService(fakeStudentRepo{db}, fakeProgramRepo{db}, v, nil, hooks),
		organizations: NewOrganizationService(fakeOrganizationRepo{db}, fakeCollegeRepo{db}, v, nil, hooks),
		members:       NewOrgMemberService(fakeOrgMemberRepo{db}, fakeStudentRepo{db}, fakeOrganizationRepo{db}, v, nil, hooks),
	}
}

func (s *suite) catalog() Catalog {
	return NewCatalog(s.colleges, s.programs, s.students, s.organizations, s.members)
}

// memoryCache implements CacheRepository over a map of JSON payloads, the
// same encoding the Redis repository uses.
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	gets    int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string][]byte{}}
}

func (m *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.gets++
	v, ok := m.entries[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	return json.Unmarshal(v, dest)
}

func (m *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = payload
	return nil
}

func (m *memoryCache) Incr(ctx context.Context, key string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	if v, ok := m.entries[key]; ok {
		if err := json.Unmarshal(v, &n); err != nil {
			return 0, err
		}
	}
	n++
	payload, _ := json.Marshal(n)
	m.entries[key] = payload
	return n, nil
}

func (m *memoryCache) DeleteByPattern(ctx context.Context, pattern string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			delete(m.entries, k)
		}
	}
	return nil
}

// size counts cached list pages.
func (m *memoryCache) size() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	prefix := strings.TrimSuffix(listCachePattern, "*")
	n := 0
	for k := range m.entries {
		if strings.HasPrefix(k, prefix) {
			n++
		}
	}
	return n
}
