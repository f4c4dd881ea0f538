package echoapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/solvo/core"
	"github.com/trezcool/solvo/core/analytics"
	"github.com/trezcool/solvo/core/auth"
	"github.com/trezcool/solvo/core/career"
	"github.com/trezcool/solvo/core/course"
	"github.com/trezcool/solvo/core/dashboard"
	"github.com/trezcool/solvo/core/notification"
	"github.com/trezcool/solvo/core/resource"
	"github.com/trezcool/solvo/core/user"
	"github.com/trezcool/solvo/storage/database/inmem"
)

const (
	token     = auth.StaticToken
	indexHTML = "<html><body>SOLVO</body></html>"
	appJS     = "console.log('solvo')"
)

var errMissingToken = httpErr{Error: "Unauthorized"}

type httpErr struct {
	Error string `json:"error"`
}

type httpTest struct {
	name     string
	method   string
	path     string
	body     []byte
	token    string
	wantCode int
	wantData []byte
}

type logEntry struct {
	level string
	msg   string
	args  []interface{}
}

// testLogger records entries instead of printing them.
type testLogger struct {
	mu      sync.Mutex
	entries []logEntry
}

var _ core.Logger = (*testLogger)(nil)

func (l *testLogger) log(level, msg string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = append(l.entries, logEntry{level: level, msg: msg, args: args})
}

func (l *testLogger) Entries(level string) []logEntry {
	l.mu.Lock()
	defer l.mu.Unlock()
	var entries []logEntry
	for _, e := range l.entries {
		if e.level == level {
			entries = append(entries, e)
		}
	}
	return entries
}

func (l *testLogger) Debug(msg string, args ...interface{}) { l.log("debug", msg, args) }
func (l *testLogger) Info(msg string, args ...interface{})  { l.log("info", msg, args) }
func (l *testLogger) Warn(msg string, args ...interface{})  { l.log("warn", msg, args) }
func (l *testLogger) Error(msg string, args ...interface{}) { l.log("error", msg, args) }
func (l *testLogger) Fatal(msg string, args ...interface{}) { l.log("fatal", msg, args) }

func newTestConfig(t *testing.T) *core.Config {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "index.html"), []byte(indexHTML), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.js"), []byte(appJS), 0o600))

	return &core.Config{
		Env:       "TEST",
		AppName:   "SOLVO",
		TestMode:  true,
		StaticDir: dir,
		Server: core.ServerConfig{
			Host:            "localhost",
			Port:            3000,
			ReadTimeout:     5 * time.Second,
			WriteTimeout:    5 * time.Second,
			ShutdownTimeout: 5 * time.Second,
		},
		Auth:      core.AuthConfig{Mode: "static"},
		CORS:      core.CORSConfig{AllowedOrigins: []string{"*"}},
		RateLimit: core.RateLimitConfig{Window: time.Minute},
	}
}

// newTestDeps wires every service on a freshly seeded in-memory DB.
func newTestDeps(t *testing.T, conf *core.Config) (Deps, *testLogger) {
	db, err := inmemdb.Open()
	require.NoError(t, err)

	logger := new(testLogger)
	usrSvc := user.NewService(inmemdb.NewUserRepository(db))
	courseSvc := course.NewService(inmemdb.NewCourseRepository(db), usrSvc)
	tokens := auth.NewStaticTokens(auth.StaticToken)
	authn, err := auth.NewAuthenticator(usrSvc, tokens)
	require.NoError(t, err)

	return Deps{
		Conf:            conf,
		Logger:          logger,
		UserSvc:         usrSvc,
		CourseSvc:       courseSvc,
		ResourceSvc:     resource.NewService(inmemdb.NewResourceRepository(db)),
		NotificationSvc: notification.NewService(inmemdb.NewNotificationRepository(db)),
		CareerSvc:       career.NewService(),
		AnalyticsSvc:    analytics.NewService(),
		DashboardSvc:    dashboard.NewService(usrSvc, courseSvc),
		Authenticator:   authn,
		Tokens:          tokens,
	}, logger
}

func newTestServer(t *testing.T) *Server {
	deps, _ := newTestDeps(t, newTestConfig(t))
	return newServerFromDeps(t, deps)
}

func newServerFromDeps(t *testing.T, deps Deps) *Server {
	s := NewServer(deps)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func newAuthRequest(method, path, token string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	return req, rec
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	return newAuthRequest(method, path, "", data...)
}

func serve(s *Server, tt httpTest) *httptest.ResponseRecorder {
	method := tt.method
	if method == "" {
		method = http.MethodGet
	}
	req, rec := newAuthRequest(method, tt.path, tt.token, tt.body)
	s.ServeHTTP(rec, req)
	return rec
}

func marshalObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marshalObj() failed: %v", err)
	}
	return data
}

func unmarshalBody(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	if err := json.Unmarshal(rec.Body.Bytes(), v); err != nil {
		t.Fatalf("unmarshalBody() failed: %v; body %s", err, rec.Body.String())
	}
}

func checkCodeAndData(t *testing.T, tt httpTest, rec *httptest.ResponseRecorder) {
	wantCode := tt.wantCode
	if wantCode == 0 {
		wantCode = http.StatusOK
	}
	assert.Equal(t, wantCode, rec.Code, "code")
	if tt.wantData != nil {
		assert.JSONEq(t, string(tt.wantData), rec.Body.String())
	}
}
