// Package career serves the learner's career path and skills.
// Both are fixed snapshots: nothing in the application mutates them.
package career

type StepStatus string

const (
	StatusCompleted  StepStatus = "completed"
	StatusInProgress StepStatus = "in-progress"
	StatusPending    StepStatus = "pending"
)

type (
	Step struct {
		ID     int        `json:"id"`
		Title  string     `json:"title"`
		Status StepStatus `json:"status"`
		Order  int        `json:"order"`
	}

	Path struct {
		CurrentRole string `json:"currentRole"`
		Progress    int    `json:"progress"`
		Steps       []Step `json:"steps"`
	}

	Skill struct {
		Name   string `json:"name"`
		Level  int    `json:"level"`
		Target int    `json:"target"`
	}
)

var (
	dataScientistPath = Path{
		CurrentRole: "Data Scientist",
		Progress:    42,
		Steps: []Step{
			{ID: 1, Title: "Python Basics", Status: StatusCompleted, Order: 1},
			{ID: 2, Title: "Statistics Fundamentals", Status: StatusCompleted, Order: 2},
			{ID: 3, Title: "Data Analysis with Python", Status: StatusInProgress, Order: 3},
			{ID: 4, Title: "Data Visualization", Status: StatusPending, Order: 4},
			{ID: 5, Title: "Machine Learning Basics", Status: StatusPending, Order: 5},
			{ID: 6, Title: "SQL for Data Science", Status: StatusPending, Order: 6},
			{ID: 7, Title: "Big Data Technologies", Status: StatusPending, Order: 7},
		},
	}

	skills = []Skill{
		{Name: "Python", Level: 70, Target: 90},
		{Name: "Statistics", Level: 60, Target: 85},
		{Name: "Data Analysis", Level: 40, Target: 80},
		{Name: "SQL", Level: 50, Target: 75},
		{Name: "Machine Learning", Level: 20, Target: 70},
	}
)

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Path returns a copy of the career path; callers may modify it freely.
func (svc *Service) Path() Path {
	p := dataScientistPath
	p.Steps = append([]Step(nil), dataScientistPath.Steps...)
	return p
}

// Skills returns a copy of the skills snapshot.
func (svc *Service) Skills() []Skill {
	return append([]Skill(nil), skills...)
}
