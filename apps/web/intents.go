// Package web drives the dashboard page: menus, notification badges, resource cards and toasts.
//
// The Controller holds the page state and never touches a display itself. Each state
// change is emitted as an Intent to a Surface, which is free to render it however it likes.
package web

// ElementID names an element of the page the Controller may act on.
type ElementID string

const (
	Body               ElementID = "body"
	MobileMenuButton   ElementID = "mobileMenuBtn"
	MobileMenuOverlay  ElementID = "mobileMenuOverlay"
	MobileSidebar      ElementID = "mobileSidebar"
	NotificationButton ElementID = "notificationBtn"
	NotificationPanel  ElementID = "notificationPanel"
	NotificationBadges ElementID = "notification-badge"
	MarkAllReadButton  ElementID = "markAllReadBtn"
	UserMenuButton     ElementID = "userMenuBtn"
	UserDropdown       ElementID = "userDropdown"
	LoadingOverlay     ElementID = "loadingOverlay"
	ResourcesGrid      ElementID = "resourcesGrid"
	DailyChallengeBtn  ElementID = "dailyChallengeBtn"
)

// Surface is what the page is rendered on.
type Surface interface {
	// Has reports whether the element exists on the page.
	Has(id ElementID) bool
	// Contains reports whether target is container or one of its descendants.
	Contains(container, target ElementID) bool
	Render(intent Intent)
}

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
)

// Color returns the toast background for s. Unknown severities look like info.
func (s Severity) Color() string {
	switch s {
	case SeveritySuccess:
		return "#10B981"
	case SeverityWarning:
		return "#F59E0B"
	default:
		return "#3B82F6"
	}
}

type (
	Intent interface {
		isIntent()
	}

	// SidebarIntent shows or hides the mobile sidebar and its overlay.
	SidebarIntent struct {
		Active bool
	}

	// ScrollLockIntent locks page scrolling while the mobile menu is open.
	ScrollLockIntent struct {
		Locked bool
	}

	NotificationPanelIntent struct {
		Open bool
	}

	// BadgeIntent updates every notification badge.
	BadgeIntent struct {
		Count   int
		Visible bool
	}

	UserDropdownIntent struct {
		Open bool
	}

	Card struct {
		ResourceID int
		Title      string
		Platform   string
		Channel    string
		Icon       string
	}

	// ResourceGridIntent replaces the content of the resources grid.
	ResourceGridIntent struct {
		Cards []Card
	}

	ToastIntent struct {
		ID       string
		Message  string
		Severity Severity
		Color    string
	}

	RemoveToastIntent struct {
		ID string
	}

	LoadingIntent struct {
		Active bool
	}
)

func (SidebarIntent) isIntent()           {}
func (ScrollLockIntent) isIntent()        {}
func (NotificationPanelIntent) isIntent() {}
func (BadgeIntent) isIntent()             {}
func (UserDropdownIntent) isIntent()      {}
func (ResourceGridIntent) isIntent()      {}
func (ToastIntent) isIntent()             {}
func (RemoveToastIntent) isIntent()       {}
func (LoadingIntent) isIntent()           {}
