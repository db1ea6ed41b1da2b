package v1

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appctx "bogenliga/internal/core/context"
	"bogenliga/internal/core/security"
	"bogenliga/internal/domain/domaintest"
	"bogenliga/internal/domain/region"
	"bogenliga/internal/domain/team"
	"bogenliga/internal/infrastructure/http/v1/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type tokens map[string]*appctx.UserContext

func (t tokens) ValidateToken(token string) (*appctx.UserContext, error) {
	if u, ok := t[token]; ok {
		return u, nil
	}
	return nil, errors.New("unknown token")
}

type regionRepo struct {
	*domaintest.Memory[region.Region, *region.Region]
}

func (m *regionRepo) FindByID(_ context.Context, id int64) (*region.Region, error) {
	return m.Get(id)
}

func (m *regionRepo) FindAllByType(_ context.Context, t region.Type) ([]*region.Region, error) {
	return m.Filter(func(r *region.Region) bool { return r.Type == t }), nil
}

type teamRepo struct {
	*domaintest.Memory[team.Team, *team.Team]
}

func (m *teamRepo) FindByID(_ context.Context, id int64) (*team.Team, error) {
	return m.Get(id)
}

func (m *teamRepo) FindByClubID(_ context.Context, clubID int64) ([]*team.Team, error) {
	return m.Filter(func(t *team.Team) bool { return t.ClubID == clubID }), nil
}

func (m *teamRepo) FindByEventID(_ context.Context, eventID int64) ([]*team.Team, error) {
	return m.Filter(func(t *team.Team) bool { return t.EventID == eventID }), nil
}

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func newTestRouter(t *testing.T, health pinger) *gin.Engine {
	t.Helper()
	repo := &regionRepo{domaintest.NewMemory[region.Region, *region.Region]("region", func(r *region.Region, id int64) { r.ID = id })}
	repo.Seed(&region.Region{ID: 1, Name: "Deutscher Schützenbund", ShortName: "DSB", Type: region.TypeFederation})

	teams := &teamRepo{domaintest.NewMemory[team.Team, *team.Team]("team", func(t *team.Team, id int64) { t.ID = id })}
	teams.Seed(
		&team.Team{ID: 1, ClubID: 7, Number: 1, EventID: 1},
		&team.Team{ID: 2, ClubID: 8, Number: 1, EventID: 1},
	)

	return NewRouter(RouterConfig{
		Services: Services{
			Region: region.NewService(repo, nil, nil),
			Team:   team.NewService(teams, nil, nil),
		},
		JWTValidator: tokens{
			"reader": {UserID: 2, Permissions: security.Strings(security.CanReadDefault)},
			"admin": {UserID: 1, Permissions: security.Strings(
				security.CanReadDefault, security.CanModifyMasterData, security.CanDeleteMasterData,
			)},
			"team-editor":  {UserID: 3, Permissions: security.Strings(security.CanReadDefault, security.CanModifyTeam)},
			"team-creator": {UserID: 4, Permissions: security.Strings(security.CanReadDefault, security.CanCreateTeam)},
			"club-admin":   {UserID: 5, ClubID: 7, Permissions: security.Strings(security.CanReadDefault, security.CanModifyMyClub)},
		},
		Health:      health,
		Metrics:     middleware.NewMetrics(prometheus.NewRegistry()),
		Version:     "test",
		Development: true,
	})
}

func call(r http.Handler, method, path, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestRouter_RegionPermissions(t *testing.T) {
	r := newTestRouter(t, pinger{})
	create := `{"name":"Bezirk Stuttgart","shortName":"STU","type":"BEZIRK","parentId":1}`

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		status int
	}{
		{"anonymous read", http.MethodGet, "/v1/region", "", "", http.StatusUnauthorized},
		{"bad token", http.MethodGet, "/v1/region", "forged", "", http.StatusUnauthorized},
		{"reader lists", http.MethodGet, "/v1/region", "reader", "", http.StatusOK},
		{"reader by type", http.MethodGet, "/v1/region/type/bundesverband", "reader", "", http.StatusOK},
		{"reader cannot create", http.MethodPost, "/v1/region", "reader", create, http.StatusForbidden},
		{"reader cannot delete", http.MethodDelete, "/v1/region/1", "reader", "", http.StatusForbidden},
		{"admin creates", http.MethodPost, "/v1/region", "admin", create, http.StatusCreated},
		{"admin reads created", http.MethodGet, "/v1/region/2", "admin", "", http.StatusOK},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := call(r, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestRouter_TeamPermissions(t *testing.T) {
	create := `{"clubId":7,"number":2,"eventId":1}`

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   string
		status int
	}{
		{"modify permission cannot create", http.MethodPost, "/v1/team", "team-editor", create, http.StatusForbidden},
		{"modify permission cannot copy", http.MethodPost, "/v1/team/copy/1/2", "team-editor", "", http.StatusForbidden},
		{"creator creates", http.MethodPost, "/v1/team", "team-creator", create, http.StatusCreated},
		{"creator copies", http.MethodPost, "/v1/team/copy/1/2", "team-creator", "", http.StatusCreated},
		{"club admin creates own", http.MethodPost, "/v1/team", "club-admin", create, http.StatusCreated},
		{"club admin copies", http.MethodPost, "/v1/team/copy/1/3", "club-admin", "", http.StatusCreated},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, pinger{})
			w := call(r, tt.method, tt.path, tt.token, tt.body)
			assert.Equal(t, tt.status, w.Code, w.Body.String())
		})
	}
}

func TestRouter_ClubAdminCopiesOwnTeams(t *testing.T) {
	r := newTestRouter(t, pinger{})

	w := call(r, http.MethodPost, "/v1/team/copy/1/2", "club-admin", "")
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = call(r, http.MethodGet, "/v1/team/event/2", "club-admin", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"clubId":7`)
	assert.NotContains(t, w.Body.String(), `"clubId":8`)
}

func TestRouter_SystemRoutesNeedSystemPermissions(t *testing.T) {
	r := newTestRouter(t, pinger{})

	w := call(r, http.MethodGet, "/v1/configuration", "admin", "")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), string(security.CanReadSystemData))
}

func TestRouter_Health(t *testing.T) {
	r := newTestRouter(t, pinger{})
	assert.Equal(t, http.StatusOK, call(r, http.MethodGet, "/health/live", "", "").Code)

	w := call(r, http.MethodGet, "/health/ready", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"version":"test"`)

	down := newTestRouter(t, pinger{err: errors.New("connection refused")})
	assert.Equal(t, http.StatusServiceUnavailable, call(down, http.MethodGet, "/health/ready", "", "").Code)
}

func TestRouter_Metrics(t *testing.T) {
	r := newTestRouter(t, pinger{})
	call(r, http.MethodGet, "/v1/region", "reader", "")

	w := call(r, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `/v1/region`)
}
