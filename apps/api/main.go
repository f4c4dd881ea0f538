package main

import (
	"context"
	"expvar"
	"fmt"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"

	echoapi "github.com/trezcool/solvo/apps/api/echo"
	"github.com/trezcool/solvo/core"
	"github.com/trezcool/solvo/core/analytics"
	"github.com/trezcool/solvo/core/auth"
	"github.com/trezcool/solvo/core/career"
	"github.com/trezcool/solvo/core/course"
	"github.com/trezcool/solvo/core/dashboard"
	"github.com/trezcool/solvo/core/notification"
	"github.com/trezcool/solvo/core/resource"
	"github.com/trezcool/solvo/core/user"
	logsvc "github.com/trezcool/solvo/services/logger"
	"github.com/trezcool/solvo/storage/database/inmem"
)

func main() {
	// =========================================================================
	// Set up Dependencies

	conf, err := core.NewConfig()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	validate := validator.New()
	translator := core.NewTranslator()
	core.InitValidators(validate, translator)
	if err = conf.Validate(validate, translator); err != nil {
		log.Fatalf("invalid config: %v", err)
	}

	// set up loggers
	logger := logsvc.NewRollbarLogger(
		log.New(os.Stdout, "API : ", log.LstdFlags|log.Lmicroseconds|log.Lshortfile),
		conf,
	)
	logger.Enable(!conf.Debug && conf.RollbarToken != "")
	defer logger.Flush()

	// set up DB
	db, err := inmemdb.Open()
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up database: %v", err), err)
	}

	var rdb *redis.Client
	if conf.RateLimit.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: conf.RateLimit.RedisAddr})
		defer func() {
			if err = rdb.Close(); err != nil {
				logger.Error("closing redis client", err)
			}
		}()
	}

	// set up services
	usrSvc := user.NewService(inmemdb.NewUserRepository(db))
	courseSvc := course.NewService(inmemdb.NewCourseRepository(db), usrSvc)

	var tokens auth.Tokens
	switch conf.Auth.Mode {
	case "jwt":
		tokens = auth.NewJWTTokens(conf.AppName, []byte(conf.Auth.SecretKey), conf.Auth.JWTExpirationDelta)
	default:
		tokens = auth.NewStaticTokens(auth.StaticToken)
	}
	authn, err := auth.NewAuthenticator(usrSvc, tokens)
	if err != nil {
		logger.Fatal(fmt.Sprintf("setting up authenticator: %v", err), err)
	}

	// =========================================================================
	// Initialize App

	logger.Info(fmt.Sprintf("Application initializing : version %q", conf.Build))
	defer logger.Info("Application stopped")

	// =========================================================================
	// Start Debug Service
	//
	// /debug/pprof - Added to the default mux by importing the net/http/pprof package.
	// /debug/vars - Added to the default mux by importing the expvar package.

	// Expose important info under /debug/vars.
	expvar.NewString("build").Set(conf.Build)
	expvar.NewString("env").Set(conf.Env)
	expvar.NewString("auth").Set(conf.Auth.Mode)

	go func() {
		if err := http.ListenAndServe(conf.Server.DebugHost, http.DefaultServeMux); err != nil {
			logger.Error(fmt.Sprintf("debug server closed: %v", err), err)
		}
	}()

	// =========================================================================
	// Start API Service

	server := echoapi.NewServer(
		echoapi.Deps{
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
			Redis:           rdb,
		},
	)

	go func() {
		logger.Info(fmt.Sprintf("API listening on %s", conf.Server.Address()))
		server.Start()
	}()

	// =========================================================================
	// Shutdown

	select {
	case err = <-server.Errors():
		logger.Fatal(fmt.Sprintf("server error: %v", err), err)

	case sig := <-server.ShutdownSignal():
		logger.Info(fmt.Sprintf("%v: Start shutdown...", sig))

		// give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), conf.Server.ShutdownTimeout)
		defer cancel()

		// asking listener to shutdown and shed load
		if err = server.Shutdown(ctx); err != nil {
			logger.Error(fmt.Sprintf("could not stop server gracefully: %v", err), err)

			if err = server.Close(); err != nil {
				logger.Fatal(fmt.Sprintf("could not force stop server: %v", err), err)
			}
		}
	}
}
