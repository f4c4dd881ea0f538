package dashboard

import (
	"github.com/pkg/errors"

	"github.com/trezcool/solvo/core"
	"github.com/trezcool/solvo/core/course"
	"github.com/trezcool/solvo/core/user"
)

type (
	Deadline struct {
		Title string `json:"title"`
		Date  string `json:"date"` // YYYY-MM-DD
	}

	Activity struct {
		Action string `json:"action"`
		Time   string `json:"time"`
	}

	Snapshot struct {
		User              user.User  `json:"user"`
		Progress          int        `json:"progress"`
		ActiveCourses     int        `json:"activeCourses"`
		CompletedCourses  int        `json:"completedCourses"`
		UpcomingDeadlines []Deadline `json:"upcomingDeadlines"`
		RecentActivity    []Activity `json:"recentActivity"`

		// Extra carries the user's progress when it was sent with a type Progress cannot hold.
		Extra core.Extra `json:"-"`
	}

	snapshotObject Snapshot

	Service struct {
		userSvc   *user.Service
		courseSvc *course.Service
	}
)

func NewService(userSvc *user.Service, courseSvc *course.Service) *Service {
	return &Service{userSvc: userSvc, courseSvc: courseSvc}
}

func (svc *Service) Snapshot() (Snapshot, error) {
	usr, err := svc.userSvc.Current()
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "getting current user")
	}
	counts, err := svc.courseSvc.Counts()
	if err != nil {
		return Snapshot{}, errors.Wrap(err, "counting courses")
	}
	snap := Snapshot{
		User:             usr,
		Progress:         usr.Progress,
		ActiveCourses:    counts.Active,
		CompletedCourses: counts.Completed,
		UpcomingDeadlines: []Deadline{
			{Title: "Python Project", Date: "2023-12-15"},
			{Title: "Statistics Exam", Date: "2023-12-20"},
		},
		RecentActivity: []Activity{
			{Action: "Completed Python Basics", Time: "2 hours ago"},
			{Action: "Started Statistics course", Time: "1 day ago"},
		},
	}
	if raw, ok := usr.Extra["progress"]; ok {
		snap.Extra = core.Extra{"progress": raw}
	}
	return snap, nil
}

func (snap Snapshot) MarshalJSON() ([]byte, error) {
	return core.MarshalObject(snapshotObject(snap), snap.Extra)
}
