package web

import (
	"github.com/trezcool/solvo/core/notification"
	"github.com/trezcool/solvo/core/resource"
)

// DefaultNotifications returns the notifications the page starts with.
// They are independent of the API's own collection.
func DefaultNotifications() []notification.Notification {
	return []notification.Notification{
		{ID: 1, Title: "New course available", Message: "Python for Data Analysis is now available", Time: "10 min ago"},
		{ID: 2, Title: "Daily reminder", Message: "Complete your Python exercises", Time: "1 hour ago"},
		{ID: 3, Title: "Progress update", Message: "You completed 2 lessons this week", Time: "2 hours ago", Read: true},
	}
}

func DefaultResources() []resource.Resource {
	return []resource.Resource{
		{ID: 1, Title: "Python Basics Tutorial", Platform: "YouTube", Channel: "FreeCodeCamp", Icon: "fab fa-python"},
		{ID: 2, Title: "SQL for Beginners", Platform: "Udemy", Channel: "CodeWithMosh", Icon: "fas fa-database"},
		{ID: 3, Title: "Machine Learning Intro", Platform: "Coursera", Channel: "Andrew Ng", Icon: "fas fa-robot"},
	}
}
