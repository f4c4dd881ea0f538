package echoapi

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trezcool/solvo/core"
	"github.com/trezcool/solvo/core/auth"
	"github.com/trezcool/solvo/core/career"
	"github.com/trezcool/solvo/core/course"
	"github.com/trezcool/solvo/core/health"
	"github.com/trezcool/solvo/core/notification"
	"github.com/trezcool/solvo/core/resource"
	"github.com/trezcool/solvo/core/user"
	"github.com/trezcool/solvo/storage/database/inmem"
)

func TestHealth(t *testing.T) {
	s := newTestServer(t)
	before := time.Now().Add(-time.Second)

	req, rec := newRequest(http.MethodGet, "/api/health")
	s.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var st health.Status
	unmarshalBody(t, rec, &st)
	assert.Equal(t, "OK", st.Status)
	assert.True(t, st.Timestamp.After(before))
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))
}

func TestAuthRequired(t *testing.T) {
	s := newTestServer(t)
	unauthorized := marshalObj(t, errMissingToken)

	endpoints := []struct{ method, path string }{
		{http.MethodGet, "/api/user"},
		{http.MethodPut, "/api/user"},
		{http.MethodGet, "/api/dashboard"},
		{http.MethodGet, "/api/courses"},
		{http.MethodPost, "/api/courses/3/complete"},
		{http.MethodGet, "/api/resources"},
		{http.MethodPost, "/api/resources"},
		{http.MethodGet, "/api/notifications"},
		{http.MethodPut, "/api/notifications/1/read"},
		{http.MethodPut, "/api/notifications/read-all"},
		{http.MethodGet, "/api/career-path"},
		{http.MethodGet, "/api/skills"},
		{http.MethodGet, "/api/analytics"},
		{http.MethodPost, "/api/logout"},
	}
	for _, ep := range endpoints {
		t.Run(ep.method+" "+ep.path, func(t *testing.T) {
			for _, tok := range []string{"", "mock-token-1234", "MOCK-TOKEN-123"} {
				rec := serve(s, httpTest{method: ep.method, path: ep.path, token: tok})
				checkCodeAndData(t, httpTest{wantCode: http.StatusUnauthorized, wantData: unauthorized}, rec)
			}
		})
	}

	// nothing was mutated
	rec := serve(s, httpTest{path: "/api/courses", token: token})
	var courses []course.Course
	unmarshalBody(t, rec, &courses)
	assert.False(t, courses[2].Completed)
}

func TestAuthHeader(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name   string
		header string
		want   int
	}{
		{name: "valid", header: "Bearer mock-token-123", want: http.StatusOK},
		{name: "lowercase scheme", header: "bearer mock-token-123", want: http.StatusUnauthorized},
		{name: "two spaces", header: "Bearer  mock-token-123", want: http.StatusUnauthorized},
		{name: "trailing space", header: "Bearer mock-token-123 ", want: http.StatusUnauthorized},
		{name: "no scheme", header: "mock-token-123", want: http.StatusUnauthorized},
		{name: "other scheme", header: "Token mock-token-123", want: http.StatusUnauthorized},
		{name: "scheme only", header: "Bearer ", want: http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, "/api/user")
			req.Header.Set("Authorization", tt.header)
			s.ServeHTTP(rec, req)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestUserAPI(t *testing.T) {
	s := newTestServer(t)
	seed := inmemdb.DefaultSeed().Users[0]
	merged := user.User{ID: 1, Name: "Rahul S.", Email: seed.Email, Role: seed.Role, Progress: seed.Progress}

	tests := []httpTest{
		{name: "get", path: "/api/user", token: token, wantData: marshalObj(t, seed)},
		{name: "get (trailing slash)", path: "/api/user/", token: token, wantData: marshalObj(t, seed)},
		{name: "empty body", method: http.MethodPut, path: "/api/user", token: token, wantData: marshalObj(t, seed)},
		{
			name: "merge", method: http.MethodPut, path: "/api/user", token: token,
			body: []byte(`{"name": "Rahul S.", "id": 7}`), wantData: marshalObj(t, merged),
		},
		{name: "merge is saved", path: "/api/user", token: token, wantData: marshalObj(t, merged)},
		{
			name: "malformed", method: http.MethodPut, path: "/api/user", token: token,
			body: []byte(`{"name": `), wantCode: http.StatusBadRequest,
		},
		{name: "unchanged", path: "/api/user", token: token, wantData: marshalObj(t, merged)},
		{
			name: "stored as sent", method: http.MethodPut, path: "/api/user", token: token,
			body:     []byte(`{"progress": "lots", "avatar": "me.png"}`),
			wantData: []byte(`{"id": 1, "name": "Rahul S.", "email": "rahul@example.com", "role": "Data Scientist", "progress": "lots", "avatar": "me.png"}`),
		},
		{
			name: "kept members are saved", path: "/api/user", token: token,
			wantData: []byte(`{"id": 1, "name": "Rahul S.", "email": "rahul@example.com", "role": "Data Scientist", "progress": "lots", "avatar": "me.png"}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(s, tt))
		})
	}
}

func TestDashboard(t *testing.T) {
	s := newTestServer(t)

	rec := serve(s, httpTest{path: "/api/dashboard", token: token})
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]interface{}
	unmarshalBody(t, rec, &body)
	assert.EqualValues(t, 42, body["progress"])
	assert.EqualValues(t, 0, body["activeCourses"])
	assert.EqualValues(t, 2, body["completedCourses"])
	assert.Len(t, body["upcomingDeadlines"], 2)
	assert.Len(t, body["recentActivity"], 2)
	assert.Equal(t, "Rahul Sharma", body["user"].(map[string]interface{})["name"])
}

func TestCourseAPI_complete(t *testing.T) {
	s := newTestServer(t)
	seed := inmemdb.DefaultSeed().Courses
	notFound := marshalObj(t, httpErr{Error: "Course not found"})

	completed := func(c course.Course) course.Course {
		c.Completed = true
		return c
	}

	tests := []httpTest{
		{
			name: "already completed", method: http.MethodPost, path: "/api/courses/1/complete", token: token,
			wantData: marshalObj(t, CourseCompletedResponse{Success: true, Course: seed[0], Progress: 40}),
		},
		{
			name: "again", method: http.MethodPost, path: "/api/courses/2/complete", token: token,
			wantData: marshalObj(t, CourseCompletedResponse{Success: true, Course: seed[1], Progress: 40}),
		},
		{
			name: "3rd course", method: http.MethodPost, path: "/api/courses/3/complete", token: token,
			wantData: marshalObj(t, CourseCompletedResponse{Success: true, Course: completed(seed[2]), Progress: 60}),
		},
		{
			name: "idempotent", method: http.MethodPost, path: "/api/courses/3/complete", token: token,
			wantData: marshalObj(t, CourseCompletedResponse{Success: true, Course: completed(seed[2]), Progress: 60}),
		},
		{name: "unknown", method: http.MethodPost, path: "/api/courses/6/complete", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "not a number", method: http.MethodPost, path: "/api/courses/abc/complete", token: token, wantCode: http.StatusNotFound, wantData: notFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(s, tt))
		})
	}

	rec := serve(s, httpTest{path: "/api/user", token: token})
	var usr user.User
	unmarshalBody(t, rec, &usr)
	assert.Equal(t, 60, usr.Progress, "progress is stored on the user")

	rec = serve(s, httpTest{path: "/api/courses", token: token})
	var courses []course.Course
	unmarshalBody(t, rec, &courses)
	require.Len(t, courses, 5)
	assert.True(t, courses[2].Completed)
}

func TestResourceAPI(t *testing.T) {
	now := core.NewTimestamp(time.Date(2023, 12, 1, 10, 30, 0, 0, time.UTC))
	resource.NowFunc = func() time.Time { return now.Time }
	t.Cleanup(func() { resource.NowFunc = time.Now })

	s := newTestServer(t)
	seed := inmemdb.DefaultSeed().Resources
	created := resource.Resource{ID: 4, Title: "Deep Learning", Platform: "Coursera", Channel: "Andrew Ng", CreatedAt: &now}

	tests := []httpTest{
		{name: "list", path: "/api/resources", token: token, wantData: marshalObj(t, seed)},
		{
			name: "create", method: http.MethodPost, path: "/api/resources", token: token,
			body:     []byte(`{"id": 1, "title": "Deep Learning", "platform": "Coursera", "channel": "Andrew Ng"}`),
			wantCode: http.StatusCreated, wantData: marshalObj(t, created),
		},
		{name: "listed", path: "/api/resources", token: token, wantData: marshalObj(t, append(seed, created))},
		{
			name: "nothing validated", method: http.MethodPost, path: "/api/resources", token: token,
			body:     []byte(`{}`),
			wantCode: http.StatusCreated, wantData: marshalObj(t, resource.Resource{ID: 5, CreatedAt: &now}),
		},
		{
			name: "stored as sent", method: http.MethodPost, path: "/api/resources", token: token,
			body:     []byte(`{"title": 5, "url": "https://y"}`),
			wantCode: http.StatusCreated,
			wantData: []byte(`{"id": 6, "title": 5, "platform": "", "channel": "", "url": "https://y", "createdAt": "2023-12-01T10:30:00.000Z"}`),
		},
		{
			name: "malformed", method: http.MethodPost, path: "/api/resources", token: token,
			body: []byte(`{"title":`), wantCode: http.StatusBadRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(s, tt))
		})
	}
}

func TestNotificationAPI(t *testing.T) {
	s := newTestServer(t)
	seed := inmemdb.DefaultSeed().Notifications
	notFound := marshalObj(t, httpErr{Error: "Notification not found"})

	read := func(ns ...notification.Notification) []notification.Notification {
		out := make([]notification.Notification, len(ns))
		for i, n := range ns {
			n.Read = true
			out[i] = n
		}
		return out
	}

	tests := []httpTest{
		{name: "list", path: "/api/notifications", token: token, wantData: marshalObj(t, seed)},
		{
			name: "read one", method: http.MethodPut, path: "/api/notifications/2/read", token: token,
			wantData: marshalObj(t, NotificationResponse{Success: true, Notification: read(seed[1])[0]}),
		},
		{name: "unknown", method: http.MethodPut, path: "/api/notifications/9/read", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "not a number", method: http.MethodPut, path: "/api/notifications/x/read", token: token, wantCode: http.StatusNotFound, wantData: notFound},
		{name: "listed", path: "/api/notifications", token: token, wantData: marshalObj(t, []notification.Notification{seed[0], read(seed[1])[0]})},
		{
			name: "read all", method: http.MethodPut, path: "/api/notifications/read-all", token: token,
			wantData: marshalObj(t, NotificationsResponse{Success: true, Notifications: read(seed...)}),
		},
		{
			name: "read all again", method: http.MethodPut, path: "/api/notifications/read-all", token: token,
			wantData: marshalObj(t, NotificationsResponse{Success: true, Notifications: read(seed...)}),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(s, tt))
		})
	}
}

func TestInsightsAPI(t *testing.T) {
	s := newTestServer(t)
	svc := career.NewService()

	tests := []httpTest{
		{name: "career path", path: "/api/career-path", token: token, wantData: marshalObj(t, svc.Path())},
		{name: "skills", path: "/api/skills", token: token, wantData: marshalObj(t, svc.Skills())},
		{
			name: "analytics", path: "/api/analytics", token: token,
			wantData: []byte(`{"dailyStudyTime":[2,3,1,4,2,3,5],"courseCompletionRate":28.5,"skillGrowth":15,"streak":5}`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(s, tt))
		})
	}
}

func TestAuthAPI(t *testing.T) {
	s := newTestServer(t)
	invalid := marshalObj(t, httpErr{Error: "Invalid credentials"})

	tests := []httpTest{
		{
			name: "login", method: http.MethodPost, path: "/api/login",
			body: []byte(`{"email": "rahul@example.com", "password": "password123"}`),
			wantData: marshalObj(t, LoginResponse{Success: true, Token: token, User: inmemdb.DefaultSeed().Users[0]}),
		},
		{
			name: "wrong password", method: http.MethodPost, path: "/api/login",
			body:     []byte(`{"email": "rahul@example.com", "password": "password"}`),
			wantCode: http.StatusUnauthorized, wantData: invalid,
		},
		{
			name: "email case", method: http.MethodPost, path: "/api/login",
			body:     []byte(`{"email": "RAHUL@example.com", "password": "password123"}`),
			wantCode: http.StatusUnauthorized, wantData: invalid,
		},
		{name: "empty body", method: http.MethodPost, path: "/api/login", wantCode: http.StatusUnauthorized, wantData: invalid},
		{
			name: "logout", method: http.MethodPost, path: "/api/logout", token: token,
			wantData: marshalObj(t, MessageResponse{Success: true, Message: "Logged out successfully"}),
		},
		{
			name: "token still valid after logout", path: "/api/user", token: token,
			wantData: marshalObj(t, inmemdb.DefaultSeed().Users[0]),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			checkCodeAndData(t, tt, serve(s, tt))
		})
	}
}

func TestLoginRateLimit(t *testing.T) {
	conf := newTestConfig(t)
	conf.RateLimit.LoginPerMinute = 2
	deps, _ := newTestDeps(t, conf)
	s := newServerFromDeps(t, deps)

	body := []byte(`{"email": "rahul@example.com", "password": "nope"}`)
	for i := 0; i < 2; i++ {
		rec := serve(s, httpTest{method: http.MethodPost, path: "/api/login", body: body})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	}
	rec := serve(s, httpTest{method: http.MethodPost, path: "/api/login", body: body})
	checkCodeAndData(t, httpTest{wantCode: http.StatusTooManyRequests, wantData: marshalObj(t, httpErr{Error: "Too many requests"})}, rec)

	// other endpoints are not limited
	for i := 0; i < 5; i++ {
		rec = serve(s, httpTest{path: "/api/user", token: token})
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}

type brokenUserRepo struct {
	err error
}

func (r brokenUserRepo) GetUserByID(int) (user.User, error)       { return user.User{}, r.err }
func (r brokenUserRepo) GetUserByEmail(string) (user.User, error) { return user.User{}, r.err }
func (r brokenUserRepo) UpdateUser(user.User) (user.User, error)  { return user.User{}, r.err }

func TestServerError(t *testing.T) {
	conf := newTestConfig(t)
	conf.Debug = true
	deps, logger := newTestDeps(t, conf)
	deps.UserSvc = user.NewService(brokenUserRepo{err: errors.New("disk on fire")})
	s := newServerFromDeps(t, deps)

	rec := serve(s, httpTest{path: "/api/user", token: token})
	checkCodeAndData(t, httpTest{wantCode: http.StatusInternalServerError, wantData: marshalObj(t, httpErr{Error: "Something went wrong!"})}, rec)

	entries := logger.Entries("error")
	require.Len(t, entries, 1)
	assert.Equal(t, "Something went wrong!", entries[0].msg)
	assert.Contains(t, entries[0].args, auth.Principal{UserID: 1})

	select {
	case <-s.ShutdownSignal():
		t.Fatal("unexpected shutdown signal")
	default:
	}
}

type panickyUserRepo struct {
	brokenUserRepo
}

func (panickyUserRepo) GetUserByID(int) (user.User, error) { panic("nil map write") }

func TestServerError_panic(t *testing.T) {
	conf := newTestConfig(t)
	deps, logger := newTestDeps(t, conf)
	deps.UserSvc = user.NewService(panickyUserRepo{})
	s := newServerFromDeps(t, deps)

	rec := serve(s, httpTest{path: "/api/user", token: token})
	checkCodeAndData(t, httpTest{wantCode: http.StatusInternalServerError, wantData: marshalObj(t, httpErr{Error: "Something went wrong!"})}, rec)

	entries := logger.Entries("error")
	require.Len(t, entries, 1)
	assert.Equal(t, "Something went wrong!", entries[0].msg)
	require.NotEmpty(t, entries[0].args)
	assert.Contains(t, fmt.Sprint(entries[0].args[0]), "nil map write")

	// the server keeps serving
	rec = serve(s, httpTest{path: "/api/health"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestServerError_shutdown(t *testing.T) {
	conf := newTestConfig(t)
	deps, _ := newTestDeps(t, conf)
	deps.UserSvc = user.NewService(brokenUserRepo{err: user.ErrNotFound})
	s := newServerFromDeps(t, deps)

	rec := serve(s, httpTest{path: "/api/user", token: token})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	select {
	case <-s.ShutdownSignal():
	case <-time.After(time.Second):
		t.Fatal("shutdown was not signaled")
	}
}

func TestSinglePageApp(t *testing.T) {
	s := newTestServer(t)

	tests := []struct {
		name string
		path string
		want string
	}{
		{name: "root", path: "/", want: indexHTML},
		{name: "index", path: "/index.html", want: indexHTML},
		{name: "asset", path: "/app.js", want: appJS},
		{name: "client route", path: "/dashboard/courses", want: indexHTML},
		{name: "no traversal", path: "/../../etc/passwd", want: indexHTML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, rec := newRequest(http.MethodGet, tt.path)
			s.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.want, rec.Body.String())
		})
	}
}

func TestCORS(t *testing.T) {
	s := newTestServer(t)

	req, rec := newRequest(http.MethodOptions, "/api/user")
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	s.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Headers"), "Authorization")
}
