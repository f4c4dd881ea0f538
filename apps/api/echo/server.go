package echoapi

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/log"
	"github.com/redis/go-redis/v9"

	"github.com/trezcool/solvo/core"
	"github.com/trezcool/solvo/core/analytics"
	"github.com/trezcool/solvo/core/auth"
	"github.com/trezcool/solvo/core/career"
	"github.com/trezcool/solvo/core/course"
	"github.com/trezcool/solvo/core/dashboard"
	"github.com/trezcool/solvo/core/notification"
	"github.com/trezcool/solvo/core/resource"
	"github.com/trezcool/solvo/core/user"
)

type (
	Deps struct {
		Conf   *core.Config
		Logger core.Logger

		UserSvc         *user.Service
		CourseSvc       *course.Service
		ResourceSvc     *resource.Service
		NotificationSvc *notification.Service
		CareerSvc       *career.Service
		AnalyticsSvc    *analytics.Service
		DashboardSvc    *dashboard.Service

		Authenticator *auth.Authenticator
		Tokens        auth.TokenVerifier

		// Redis, when set, backs the login rate limiter instead of process memory.
		Redis *redis.Client
	}

	Server struct {
		deps     Deps
		app      *echo.Echo
		errors   chan error
		shutdown chan os.Signal
	}
)

var _ http.Handler = (*Server)(nil)

func NewServer(deps Deps) *Server {
	s := &Server{
		deps:     deps,
		app:      echo.New(),
		errors:   make(chan error, 1),
		shutdown: make(chan os.Signal, 1),
	}
	signal.Notify(s.shutdown, os.Interrupt, syscall.SIGTERM)
	s.setup()
	return s
}

func (s *Server) setup() {
	conf := s.deps.Conf

	s.app.HideBanner = true
	s.app.Debug = conf.Debug
	s.app.Server.ReadTimeout = conf.Server.ReadTimeout
	s.app.Server.WriteTimeout = conf.Server.WriteTimeout

	s.app.Pre(middleware.RemoveTrailingSlash())
	s.app.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}))
	if !conf.TestMode {
		s.app.Use(middleware.Logger())
	}
	s.app.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{LogLevel: log.ERROR}))
	s.app.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: conf.CORS.AllowedOrigins,
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	s.app.HTTPErrorHandler = newAppHTTPErrorHandler(s.deps.Logger, s.signalShutdown)

	api := s.app.Group("/api")
	api.GET("/health", healthCheck)
	registerAuthAPI(api, s.requireAuth, s.loginRateLimiter(), s.deps.Authenticator)
	registerUserAPI(api, s.requireAuth, s.deps.UserSvc, s.deps.DashboardSvc)
	registerCourseAPI(api, s.requireAuth, s.deps.CourseSvc)
	registerResourceAPI(api, s.requireAuth, s.deps.ResourceSvc)
	registerNotificationAPI(api, s.requireAuth, s.deps.NotificationSvc)
	registerInsightsAPI(api, s.requireAuth, s.deps.CareerSvc, s.deps.AnalyticsSvc)

	// single page app: unknown paths get index.html
	s.app.GET("/*", echo.NotFoundHandler, middleware.StaticWithConfig(middleware.StaticConfig{
		Root:  conf.StaticDir,
		Index: "index.html",
		HTML5: true,
	}))
}

// Start blocks until the server stops. Errors other than a graceful shutdown are sent to Errors().
func (s *Server) Start() {
	if err := s.app.Start(s.deps.Conf.Server.Address()); err != nil && err != http.ErrServerClosed {
		s.errors <- err
	}
}

func (s *Server) Errors() <-chan error {
	return s.errors
}

func (s *Server) ShutdownSignal() <-chan os.Signal {
	return s.shutdown
}

func (s *Server) signalShutdown() {
	select {
	case s.shutdown <- syscall.SIGTERM:
	default: // already signaled
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	signal.Stop(s.shutdown)
	return s.app.Shutdown(ctx)
}

func (s *Server) Close() error {
	signal.Stop(s.shutdown)
	return s.app.Close()
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.app.ServeHTTP(w, r)
}
