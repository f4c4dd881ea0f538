package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/solvo/core/analytics"
	"github.com/trezcool/solvo/core/career"
	"github.com/trezcool/solvo/core/notification"
)

type notificationApi struct {
	svc *notification.Service
}

func registerNotificationAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *notification.Service) {
	api := notificationApi{svc: svc}

	ng := g.Group("/notifications")
	ng.GET("", api.query, authed)
	ng.PUT("/read-all", api.markAllRead, authed)
	ng.PUT("/:id/read", api.markRead, authed)
}

func (api *notificationApi) query(ctx echo.Context) error {
	ns, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying notifications")
	}
	return ctx.JSON(http.StatusOK, ns)
}

func (api *notificationApi) markRead(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errNotifNotFound
	}

	n, err := api.svc.MarkRead(id)
	if err != nil {
		if errors.Cause(err) == notification.ErrNotFound {
			return errNotifNotFound
		}
		return errors.Wrap(err, "marking notification read")
	}
	return ctx.JSON(http.StatusOK, NotificationResponse{Success: true, Notification: n})
}

func (api *notificationApi) markAllRead(ctx echo.Context) error {
	ns, err := api.svc.MarkAllRead()
	if err != nil {
		return errors.Wrap(err, "marking all notifications read")
	}
	return ctx.JSON(http.StatusOK, NotificationsResponse{Success: true, Notifications: ns})
}

// career path, skills & analytics are static
type insightsApi struct {
	careerSvc    *career.Service
	analyticsSvc *analytics.Service
}

func registerInsightsAPI(g *echo.Group, authed echo.MiddlewareFunc, careerSvc *career.Service, analyticsSvc *analytics.Service) {
	api := insightsApi{careerSvc: careerSvc, analyticsSvc: analyticsSvc}

	g.GET("/career-path", api.careerPath, authed)
	g.GET("/skills", api.skills, authed)
	g.GET("/analytics", api.analytics, authed)
}

func (api *insightsApi) careerPath(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.careerSvc.Path())
}

func (api *insightsApi) skills(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.careerSvc.Skills())
}

func (api *insightsApi) analytics(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, api.analyticsSvc.Snapshot())
}
