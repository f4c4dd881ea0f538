package echoapi

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/solvo/core/auth"
)

const (
	bearerPrefix        = "Bearer "
	contextPrincipalKey = "principal"
)

// requireAuth rejects requests without an `Authorization: Bearer <token>` header holding a valid token.
// The scheme is matched exactly.
func (s *Server) requireAuth(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		header := ctx.Request().Header.Get(echo.HeaderAuthorization)
		if !strings.HasPrefix(header, bearerPrefix) {
			return errUnauthorized
		}
		p, err := s.deps.Tokens.Verify(ctx.Request().Context(), header[len(bearerPrefix):])
		if err != nil {
			return errUnauthorized
		}
		ctx.Set(contextPrincipalKey, p)
		return next(ctx)
	}
}

func contextPrincipal(ctx echo.Context) (auth.Principal, bool) {
	p, ok := ctx.Get(contextPrincipalKey).(auth.Principal)
	return p, ok
}

type authApi struct {
	authn *auth.Authenticator
}

func registerAuthAPI(g *echo.Group, authed, limit echo.MiddlewareFunc, authn *auth.Authenticator) {
	api := authApi{authn: authn}

	g.POST("/login", api.login, limit)
	g.POST("/logout", api.logout, authed)
}

func (api *authApi) login(ctx echo.Context) error {
	var data LoginRequest
	if err := ctx.Bind(&data); err != nil {
		return err
	}

	token, usr, err := api.authn.Login(ctx.Request().Context(), data.Email, data.Password)
	if err != nil {
		if errors.Cause(err) == auth.ErrInvalidCredentials {
			return errInvalidCredentials
		}
		return errors.Wrap(err, "logging in")
	}
	return ctx.JSON(http.StatusOK, LoginResponse{Success: true, Token: token, User: usr})
}

// logout only acknowledges: tokens are not revocable.
func (api *authApi) logout(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, MessageResponse{Success: true, Message: "Logged out successfully"})
}
