package echoapi

import (
	"context"
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	"github.com/trezcool/solvo/core"
)

// loginRateLimiter limits login attempts per client IP.
// A zero RateLimit.LoginPerMinute disables the limit.
func (s *Server) loginRateLimiter() echo.MiddlewareFunc {
	conf := s.deps.Conf.RateLimit
	if conf.LoginPerMinute <= 0 {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}

	var store middleware.RateLimiterStore
	if s.deps.Redis != nil {
		store = newRedisStore(s.deps.Redis, "login", conf.LoginPerMinute, conf.Window, s.deps.Logger)
	} else {
		store = middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(float64(conf.LoginPerMinute) / conf.Window.Seconds()),
			Burst:     conf.LoginPerMinute,
			ExpiresIn: conf.Window,
		})
	}

	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(ctx echo.Context) (string, error) {
			return ctx.RealIP(), nil
		},
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			return errTooManyRequests
		},
	})
}

// redisStore is a fixed window rate limiter store shared by every API instance.
type redisStore struct {
	client *redis.Client
	prefix string
	limit  int64
	window time.Duration
	logger core.Logger
}

var _ middleware.RateLimiterStore = (*redisStore)(nil)

func newRedisStore(client *redis.Client, prefix string, limit int, window time.Duration, logger core.Logger) *redisStore {
	return &redisStore{client: client, prefix: prefix, limit: int64(limit), window: window, logger: logger}
}

// Allow lets requests through when redis is unreachable.
func (rs *redisStore) Allow(identifier string) (bool, error) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	key := fmt.Sprintf("rate_limit:%s:%s", rs.prefix, identifier)
	count, err := rs.client.Incr(ctx, key).Result()
	if err != nil {
		rs.logger.Warn("rate limiter: redis unavailable", err)
		return true, nil
	}
	if count == 1 {
		if err = rs.client.Expire(ctx, key, rs.window).Err(); err != nil {
			rs.logger.Warn("rate limiter: setting key expiry", err)
		}
	}
	return count <= rs.limit, nil
}
