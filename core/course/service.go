package course

import (
	"github.com/pkg/errors"

	"github.com/trezcool/solvo/core/user"
)

var (
	// errors
	ErrNotFound = errors.New("course not found")
)

type (
	Repository interface {
		QueryAllCourses() ([]Course, error)
		GetCourseByID(id int) (Course, error)
		UpdateCourse(c Course) (Course, error)
	}

	Service struct {
		repo    Repository
		userSvc *user.Service
	}

	Counts struct {
		Active    int
		Completed int
	}
)

func NewService(repo Repository, userSvc *user.Service) *Service {
	return &Service{repo: repo, userSvc: userSvc}
}

func (svc *Service) QueryAll() ([]Course, error) {
	return svc.repo.QueryAllCourses()
}

// Complete marks a course completed and stores the recomputed progress on the current user.
// Completing an already completed course leaves the progress unchanged.
func (svc *Service) Complete(id int) (Course, int, error) {
	c, err := svc.repo.GetCourseByID(id)
	if err != nil {
		return Course{}, 0, err
	}
	c.Completed = true
	if c, err = svc.repo.UpdateCourse(c); err != nil {
		return Course{}, 0, errors.Wrap(err, "updating course")
	}

	courses, err := svc.repo.QueryAllCourses()
	if err != nil {
		return Course{}, 0, errors.Wrap(err, "querying courses")
	}
	usr, err := svc.userSvc.SetProgress(Progress(courses))
	if err != nil {
		return Course{}, 0, errors.Wrap(err, "setting user progress")
	}
	return c, usr.Progress, nil
}

func (svc *Service) Counts() (Counts, error) {
	courses, err := svc.repo.QueryAllCourses()
	if err != nil {
		return Counts{}, err
	}
	var counts Counts
	for _, c := range courses {
		if c.Completed {
			counts.Completed++
		} else if c.IsActive() {
			counts.Active++
		}
	}
	return counts, nil
}
