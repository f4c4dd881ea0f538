package notification

import "errors"

var (
	// errors
	ErrNotFound = errors.New("notification not found")
)

type (
	Repository interface {
		QueryAllNotifications() ([]Notification, error)
		GetNotificationByID(id int) (Notification, error)
		UpdateNotification(n Notification) (Notification, error)
		// MarkAllNotificationsRead returns the whole collection once updated.
		MarkAllNotificationsRead() ([]Notification, error)
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (svc *Service) QueryAll() ([]Notification, error) {
	return svc.repo.QueryAllNotifications()
}

func (svc *Service) MarkRead(id int) (Notification, error) {
	n, err := svc.repo.GetNotificationByID(id)
	if err != nil {
		return Notification{}, err
	}
	n.Read = true
	return svc.repo.UpdateNotification(n)
}

func (svc *Service) MarkAllRead() ([]Notification, error) {
	return svc.repo.MarkAllNotificationsRead()
}

func (svc *Service) UnreadCount() (int, error) {
	ns, err := svc.repo.QueryAllNotifications()
	if err != nil {
		return 0, err
	}
	return UnreadCount(ns), nil
}
