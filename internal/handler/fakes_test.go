package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Chodoro/psusphere/internal/middleware"
	"github.com/Chodoro/psusphere/internal/models"
	"github.com/Chodoro/psusphere/internal/query"
	"github.com/Chodoro/psusphere/internal/service"
	appErrors "github.com/Chodoro/psusphere/pkg/errors"
)

const testToken = "valid-token"

// stubCrud answers every call with the configured values and remembers the
// inputs it received.
type stubCrud[T, Req, Patch any] struct {
	page          *query.Page[T]
	record        *T
	outcome       *models.Outcome[T]
	deleteMessage string
	err           error

	calls      int
	lastFilter query.Filter
	lastID     string
	lastReq    Req
	lastPatch  Patch
}

func (s *stubCrud[T, Req, Patch]) List(_ context.Context, filter query.Filter) (*query.Page[T], error) {
	s.calls++
	s.lastFilter = filter
	if s.err != nil {
		return nil, s.err
	}
	if s.page == nil {
		return query.NewPage[T](nil, filter, 0), nil
	}
	return s.page, nil
}

func (s *stubCrud[T, Req, Patch]) Get(_ context.Context, id string) (*T, error) {
	s.calls++
	s.lastID = id
	if s.err != nil {
		return nil, s.err
	}
	return s.record, nil
}

func (s *stubCrud[T, Req, Patch]) Create(_ context.Context, req Req) (*models.Outcome[T], error) {
	s.calls++
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func (s *stubCrud[T, Req, Patch]) Update(_ context.Context, id string, patch Patch) (*models.Outcome[T], error) {
	s.calls++
	s.lastID = id
	s.lastPatch = patch
	if s.err != nil {
		return nil, s.err
	}
	return s.outcome, nil
}

func (s *stubCrud[T, Req, Patch]) Delete(_ context.Context, id string) (string, error) {
	s.calls++
	s.lastID = id
	if s.err != nil {
		return "", s.err
	}
	return s.deleteMessage, nil
}

type fakeAuth struct {
	loginErr  error
	lastLogin models.LoginRequest
	user      *models.UserInfo
	inactive  bool
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (*models.LoginResponse, error) {
	f.lastLogin = req
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return &models.LoginResponse{
		Token:     testToken,
		ExpiresAt: time.Now().Add(time.Hour),
		User:      models.UserInfo{ID: "u-1", Username: req.Username},
	}, nil
}

func (f *fakeAuth) Authenticate(_ context.Context, token string) (*models.SessionClaims, error) {
	if token != testToken {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid session")
	}
	if f.inactive {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "account is inactive")
	}
	return &models.SessionClaims{UserID: "u-1", Username: "admin"}, nil
}

func (f *fakeAuth) Me(_ context.Context, userID string) (*models.UserInfo, error) {
	if f.user == nil || f.user.ID != userID {
		return nil, appErrors.ErrNotFound
	}
	return f.user, nil
}

func (f *fakeAuth) SessionTTL() time.Duration { return time.Hour }

type fakeHome struct {
	overview *models.HomeOverview
}

func (f *fakeHome) Overview(context.Context) (*models.HomeOverview, error) {
	return f.overview, nil
}

type fakeExports struct {
	entity models.Entity
	format string
	term   string
}

func (f *fakeExports) Export(_ context.Context, entity models.Entity, format, term string) (*service.ExportFile, error) {
	f.entity, f.format, f.term = entity, format, term
	if format != "csv" && format != "pdf" {
		return nil, appErrors.Validation("invalid export request", map[string]string{"format": "format must be csv or pdf"})
	}
	return &service.ExportFile{Filename: entity.Path() + "-20240102-030405." + format, ContentType: "text/csv", Data: []byte("a,b\n")}, nil
}

type failingPinger struct{}

func (failingPinger) PingContext(context.Context) error { return errors.New("connection refused") }

type testDeps struct {
	auth          *fakeAuth
	colleges      *stubCrud[models.College, service.CollegeRequest, service.CollegePatch]
	programs      *stubCrud[models.ProgramDetail, service.ProgramRequest, service.ProgramPatch]
	students      *stubCrud[models.StudentDetail, service.StudentRequest, service.StudentPatch]
	organizations *stubCrud[models.OrganizationDetail, service.OrganizationRequest, service.OrganizationPatch]
	members       *stubCrud[models.OrgMemberDetail, service.OrgMemberRequest, service.OrgMemberPatch]
	home          *fakeHome
	exports       *fakeExports
}

func newTestDeps() *testDeps {
	return &testDeps{
		auth:          &fakeAuth{},
		colleges:      &stubCrud[models.College, service.CollegeRequest, service.CollegePatch]{},
		programs:      &stubCrud[models.ProgramDetail, service.ProgramRequest, service.ProgramPatch]{},
		students:      &stubCrud[models.StudentDetail, service.StudentRequest, service.StudentPatch]{},
		organizations: &stubCrud[models.OrganizationDetail, service.OrganizationRequest, service.OrganizationPatch]{},
		members:       &stubCrud[models.OrgMemberDetail, service.OrgMemberRequest, service.OrgMemberPatch]{},
		home:          &fakeHome{overview: &models.HomeOverview{Counts: map[models.Entity]int{}}},
		exports:       &fakeExports{},
	}
}

func (d *testDeps) routerDeps() RouterDeps {
	return RouterDeps{
		Env:           "test",
		APIPrefix:     "/api/v1",
		Gate:          middleware.GateConfig{LoginPath: "/login", CookieName: middleware.DefaultCookieName},
		Auth:          d.auth,
		Colleges:      d.colleges,
		Programs:      d.programs,
		Students:      d.students,
		Organizations: d.organizations,
		OrgMembers:    d.members,
		Home:          d.home,
		Exports:       d.exports,
	}
}

func (d *testDeps) router() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(d.routerDeps())
}

func performRequest(r http.Handler, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func authorized(req *http.Request) *http.Request {
	req.Header.Set("Authorization", "Bearer "+testToken)
	return req
}
