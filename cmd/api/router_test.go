package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Real-Streeter/liberty-command/internal/seed"
	"github.com/Real-Streeter/liberty-command/internal/testutil"
	"github.com/Real-Streeter/liberty-command/pkg/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:           "test",
		CORSOrigin:            "http://localhost:5173",
		DatabaseDriver:        config.DriverSQLite,
		SessionSecret:         "test-secret",
		SessionTTL:            time.Hour,
		SessionSweepInterval:  time.Hour,
		RateLimitWindow:       time.Minute,
		RateLimitAPI:          1000,
		RateLimitAuth:         100,
		DefaultMemberPassword: "liberty",
		LogLevel:              "info",
	}
}

type testServer struct {
	t      *testing.T
	engine *gin.Engine
}

func newTestServer(t *testing.T, cfg *config.Config) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db := testutil.NewDB(t)
	_, err := seed.Run(context.Background(), db, cfg.DefaultMemberPassword)
	require.NoError(t, err)

	app := NewApp(cfg, db)
	t.Cleanup(func() { _ = app.Close() })
	return &testServer{t: t, engine: app.Handler.Engine()}
}

func (s *testServer) do(method, path, body string, cookie *http.Cookie) *httptest.ResponseRecorder {
	s.t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if cookie != nil {
		req.AddCookie(cookie)
	}
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	return w
}

func (s *testServer) login(name string) *http.Cookie {
	s.t.Helper()
	w := s.do(http.MethodPost, "/api/auth/login", `{"name":"`+name+`","password":"liberty"}`, nil)
	require.Equal(s.t, http.StatusOK, w.Code, w.Body.String())
	for _, c := range w.Result().Cookies() {
		if c.Name == "session_id" {
			return c
		}
	}
	s.t.Fatal("login did not set session cookie")
	return nil
}

type boardColumn struct {
	ID    string `json:"id"`
	Tasks []struct {
		ID string `json:"id"`
	} `json:"tasks"`
}

func (s *testServer) backlog(cookie *http.Cookie) []string {
	s.t.Helper()
	w := s.do(http.MethodGet, "/api/columns", "", cookie)
	require.Equal(s.t, http.StatusOK, w.Code)

	var board []boardColumn
	require.NoError(s.t, json.Unmarshal(w.Body.Bytes(), &board))
	require.NotEmpty(s.t, board)
	require.Equal(s.t, "col-backlog", board[0].ID)

	ids := make([]string, 0, len(board[0].Tasks))
	for _, task := range board[0].Tasks {
		ids = append(ids, task.ID)
	}
	return ids
}

func TestHealth(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
}

func TestProtectedRoutesNeedSession(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodGet, "/api/columns", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = s.do(http.MethodGet, "/api/columns", "", &http.Cookie{Name: "session_id", Value: "forged"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginMeLogout(t *testing.T) {
	s := newTestServer(t, testConfig())

	w := s.do(http.MethodPost, "/api/auth/login", `{"name":"Kirk","password":"wrong"}`, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	cookie := s.login("Kirk")
	assert.True(t, cookie.HttpOnly)

	w = s.do(http.MethodGet, "/api/auth/me", "", cookie)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"user-1","name":"Kirk","color":"blue","role":"admin"}`, w.Body.String())

	w = s.do(http.MethodPost, "/api/auth/logout", "", cookie)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodGet, "/api/auth/me", "", cookie)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestReorderEndToEnd(t *testing.T) {
	s := newTestServer(t, testConfig())
	cookie := s.login("Kevin")

	before := s.backlog(cookie)
	require.GreaterOrEqual(t, len(before), 2)
	first, second := before[0], before[1]

	body := `{"moves":[{"taskId":"` + second + `","columnId":"col-backlog","sortOrder":0},{"taskId":"` + first + `","columnId":"col-backlog","sortOrder":1}]}`
	w := s.do(http.MethodPut, "/api/tasks/reorder", body, cookie)
	require.Equal(t, http.StatusNoContent, w.Code, w.Body.String())

	after := s.backlog(cookie)
	assert.Equal(t, second, after[0])
	assert.Equal(t, first, after[1])
	assert.Len(t, after, len(before))

	// empty list changes nothing
	w = s.do(http.MethodPut, "/api/tasks/reorder", `{"moves":[]}`, cookie)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, after, s.backlog(cookie))
}

func TestReorderRejectsBadInput(t *testing.T) {
	s := newTestServer(t, testConfig())
	cookie := s.login("Kevin")
	before := s.backlog(cookie)

	w := s.do(http.MethodPut, "/api/tasks/reorder", `{"moves":[{"taskId":"task-bl-1","columnId":"col-backlog"}]}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/tasks/reorder", `{"moves":[{"taskId":"task-bl-1","columnId":"col-backlog","sortOrder":0},{"taskId":"task-bl-1","columnId":"col-backlog","sortOrder":1}]}`, cookie)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/tasks/reorder", `{"moves":[{"taskId":"`+before[1]+`","columnId":"col-backlog","sortOrder":0},{"taskId":"ghost","columnId":"col-backlog","sortOrder":1}]}`, cookie)
	assert.Equal(t, http.StatusConflict, w.Code)

	assert.Equal(t, before, s.backlog(cookie))
}

func TestCreateTaskAppendsToBacklog(t *testing.T) {
	s := newTestServer(t, testConfig())
	cookie := s.login("Kirk")
	before := s.backlog(cookie)

	w := s.do(http.MethodPost, "/api/tasks", `{"content":"Call carriers","priority":"Low"}`, cookie)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created struct {
		ID string `json:"id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	after := s.backlog(cookie)
	require.Len(t, after, len(before)+1)
	assert.Equal(t, created.ID, after[len(after)-1])
}

func TestTeamAdminRules(t *testing.T) {
	s := newTestServer(t, testConfig())
	member := s.login("Dev Team")
	admin := s.login("Kirk")

	w := s.do(http.MethodGet, "/api/team", "", member)
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/api/team", `{"name":"Newbie"}`, member)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = s.do(http.MethodPost, "/api/team", `{"name":"Newbie"}`, admin)
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	w = s.do(http.MethodDelete, "/api/team/user-1", "", admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/settings", `{"logLevel":"debug"}`, member)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestSettings(t *testing.T) {
	s := newTestServer(t, testConfig())
	admin := s.login("Kirk")
	t.Cleanup(func() { logrus.SetLevel(logrus.InfoLevel) })

	w := s.do(http.MethodGet, "/api/settings", "", admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"taskContent":200`)

	w = s.do(http.MethodPut, "/api/settings", `{"logLevel":"loud"}`, admin)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = s.do(http.MethodPut, "/api/settings", `{"logLevel":"warn"}`, admin)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Settings updated","logLevel":"warning"}`, w.Body.String())
}

func TestLoginRateLimit(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitAuth = 2
	s := newTestServer(t, cfg)

	for i := 0; i < 2; i++ {
		w := s.do(http.MethodPost, "/api/auth/login", `{"name":"Kirk","password":"wrong"}`, nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	}

	w := s.do(http.MethodPost, "/api/auth/login", `{"name":"Kirk","password":"liberty"}`, nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.JSONEq(t, `{"error":"Too many login attempts. Please try again later."}`, w.Body.String())
	assert.Equal(t, "0", w.Header().Get("RateLimit-Remaining"))

	// other API routes keep their own budget
	w = s.do(http.MethodGet, "/api/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t, testConfig())

	req := httptest.NewRequest(http.MethodOptions, "/api/tasks/reorder", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "true", w.Header().Get("Access-Control-Allow-Credentials"))

	req = httptest.NewRequest(http.MethodOptions, "/api/tasks/reorder", nil)
	req.Header.Set("Origin", "http://evil.example")
	w = httptest.NewRecorder()
	s.engine.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
