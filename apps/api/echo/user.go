package echoapi

import (
	"bytes"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/solvo/core/dashboard"
	"github.com/trezcool/solvo/core/health"
	"github.com/trezcool/solvo/core/user"
)

func healthCheck(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, health.NewStatus(time.Now()))
}

type userApi struct {
	svc          *user.Service
	dashboardSvc *dashboard.Service
}

func registerUserAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *user.Service, dashboardSvc *dashboard.Service) {
	api := userApi{svc: svc, dashboardSvc: dashboardSvc}

	g.GET("/user", api.retrieve, authed)
	g.PUT("/user", api.update, authed)
	g.GET("/dashboard", api.dashboard, authed)
}

func (api *userApi) retrieve(ctx echo.Context) error {
	usr, err := api.svc.Current()
	if err != nil {
		return errors.Wrap(err, "getting current user")
	}
	return ctx.JSON(http.StatusOK, usr)
}

// update merges the fields of the body into the current user. An empty body changes nothing.
func (api *userApi) update(ctx echo.Context) error {
	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		return errors.Wrap(err, "reading body")
	}
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	usr, err := api.svc.Merge(body)
	if err != nil {
		return errors.Wrap(err, "merging user")
	}
	return ctx.JSON(http.StatusOK, usr)
}

func (api *userApi) dashboard(ctx echo.Context) error {
	snap, err := api.dashboardSvc.Snapshot()
	if err != nil {
		return errors.Wrap(err, "building dashboard")
	}
	return ctx.JSON(http.StatusOK, snap)
}
