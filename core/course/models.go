package course

import "math"

type Course struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	Locked      bool   `json:"locked,omitempty"`
}

// IsActive reports whether the course can be worked on right now.
func (c Course) IsActive() bool {
	return !c.Completed && !c.Locked
}

// Progress returns the rounded percentage of completed courses.
func Progress(courses []Course) int {
	if len(courses) == 0 {
		return 0
	}
	var completed int
	for _, c := range courses {
		if c.Completed {
			completed++
		}
	}
	return int(math.Round(float64(completed) / float64(len(courses)) * 100))
}
