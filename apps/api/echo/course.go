package echoapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/solvo/core/course"
	"github.com/trezcool/solvo/core/resource"
)

type courseApi struct {
	svc *course.Service
}

func registerCourseAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *course.Service) {
	api := courseApi{svc: svc}

	g.GET("/courses", api.query, authed)
	g.POST("/courses/:id/complete", api.complete, authed)
}

func (api *courseApi) query(ctx echo.Context) error {
	courses, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *courseApi) complete(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return errCourseNotFound
	}

	c, progress, err := api.svc.Complete(id)
	if err != nil {
		if errors.Cause(err) == course.ErrNotFound {
			return errCourseNotFound
		}
		return errors.Wrap(err, "completing course")
	}
	return ctx.JSON(http.StatusOK, CourseCompletedResponse{Success: true, Course: c, Progress: progress})
}

type resourceApi struct {
	svc *resource.Service
}

func registerResourceAPI(g *echo.Group, authed echo.MiddlewareFunc, svc *resource.Service) {
	api := resourceApi{svc: svc}

	g.GET("/resources", api.query, authed)
	g.POST("/resources", api.create, authed)
}

func (api *resourceApi) query(ctx echo.Context) error {
	resources, err := api.svc.QueryAll()
	if err != nil {
		return errors.Wrap(err, "querying resources")
	}
	return ctx.JSON(http.StatusOK, resources)
}

func (api *resourceApi) create(ctx echo.Context) error {
	var data resource.NewResource
	if err := ctx.Bind(&data); err != nil {
		return err
	}

	res, err := api.svc.Create(data)
	if err != nil {
		return errors.Wrap(err, "creating resource")
	}
	return ctx.JSON(http.StatusCreated, res)
}
