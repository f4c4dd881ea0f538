package echoapi

import (
	"github.com/trezcool/solvo/core/course"
	"github.com/trezcool/solvo/core/notification"
	"github.com/trezcool/solvo/core/user"
)

type (
	LoginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginResponse struct {
		Success bool      `json:"success"`
		Token   string    `json:"token"`
		User    user.User `json:"user"`
	}

	MessageResponse struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}

	CourseCompletedResponse struct {
		Success  bool          `json:"success"`
		Course   course.Course `json:"course"`
		Progress int           `json:"progress"`
	}

	NotificationResponse struct {
		Success      bool                      `json:"success"`
		Notification notification.Notification `json:"notification"`
	}

	NotificationsResponse struct {
		Success       bool                        `json:"success"`
		Notifications []notification.Notification `json:"notifications"`
	}
)
