package analytics

type Snapshot struct {
	DailyStudyTime       []int   `json:"dailyStudyTime"` // hours, last 7 days
	CourseCompletionRate float64 `json:"courseCompletionRate"`
	SkillGrowth          int     `json:"skillGrowth"`
	Streak               int     `json:"streak"` // days
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

func (svc *Service) Snapshot() Snapshot {
	return Snapshot{
		DailyStudyTime:       []int{2, 3, 1, 4, 2, 3, 5},
		CourseCompletionRate: 28.5,
		SkillGrowth:          15,
		Streak:               5,
	}
}
