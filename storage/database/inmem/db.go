// Package inmemdb keeps the dashboard's collections in process memory.
// Everything is lost on restart; Open always starts from the seed data.
package inmemdb

import (
	"sort"
	"sync"

	"github.com/trezcool/solvo/core/course"
	"github.com/trezcool/solvo/core/notification"
	"github.com/trezcool/solvo/core/resource"
	"github.com/trezcool/solvo/core/user"
)

type (
	DB struct {
		user         *userTable
		course       *courseTable
		resource     *resourceTable
		notification *notificationTable
	}

	userTable struct {
		mutex sync.RWMutex
		table map[int]*user.User
	}

	courseTable struct {
		mutex sync.RWMutex
		table map[int]*course.Course
	}

	resourceTable struct {
		mutex   sync.RWMutex
		table   map[int]*resource.Resource
		pkCount int // last assigned id; never reused
	}

	notificationTable struct {
		mutex sync.RWMutex
		table map[int]*notification.Notification
	}

	Seed struct {
		Users         []user.User
		Courses       []course.Course
		Resources     []resource.Resource
		Notifications []notification.Notification
	}
)

// DefaultSeed returns the mock data the API starts with.
func DefaultSeed() Seed {
	return Seed{
		Users: []user.User{
			{ID: 1, Name: "Rahul Sharma", Email: "rahul@example.com", Role: "Data Scientist", Progress: 42},
		},
		Courses: []course.Course{
			{ID: 1, Title: "Python Basics", Description: "Learn Python from scratch", Completed: true},
			{ID: 2, Title: "Statistics", Description: "Basic statistics for data science", Completed: true},
			{ID: 3, Title: "Data Analysis", Description: "Python for data analysis", Locked: true},
			{ID: 4, Title: "Data Visualization", Description: "Visualizing data with Python", Locked: true},
			{ID: 5, Title: "Machine Learning", Description: "Introduction to ML", Locked: true},
		},
		Resources: []resource.Resource{
			{ID: 1, Title: "Python Basics Tutorial", Platform: "YouTube", Channel: "Simplilearn"},
			{ID: 2, Title: "Data Science Crash Course", Platform: "YouTube", Channel: "FreeCodeCamp"},
			{ID: 3, Title: "SQL for Beginners", Platform: "Udemy", Channel: "CodeWithMosh"},
		},
		Notifications: []notification.Notification{
			{ID: 1, Title: "New course available", Message: "Python for Data Analysis is now available"},
			{ID: 2, Title: "Daily reminder", Message: "Complete your Python exercises"},
		},
	}
}

func Open() (*DB, error) {
	return OpenWithSeed(DefaultSeed())
}

// OpenWithSeed returns a DB holding copies of the given records.
func OpenWithSeed(seed Seed) (*DB, error) {
	db := &DB{
		user:         &userTable{table: make(map[int]*user.User, len(seed.Users))},
		course:       &courseTable{table: make(map[int]*course.Course, len(seed.Courses))},
		resource:     &resourceTable{table: make(map[int]*resource.Resource, len(seed.Resources))},
		notification: &notificationTable{table: make(map[int]*notification.Notification, len(seed.Notifications))},
	}
	for _, u := range seed.Users {
		u := u
		db.user.table[u.ID] = &u
	}
	for _, c := range seed.Courses {
		c := c
		db.course.table[c.ID] = &c
	}
	for _, r := range seed.Resources {
		r := r
		db.resource.table[r.ID] = &r
		if r.ID > db.resource.pkCount {
			db.resource.pkCount = r.ID
		}
	}
	for _, n := range seed.Notifications {
		n := n
		db.notification.table[n.ID] = &n
	}
	return db, nil
}

func sortedIDs[T any](table map[int]*T) []int {
	ids := make([]int, 0, len(table))
	for id := range table {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
