package web

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/trezcool/solvo/core"
	"github.com/trezcool/solvo/core/health"
	"github.com/trezcool/solvo/core/notification"
	"github.com/trezcool/solvo/core/resource"
)

const (
	// DesktopWidth is the viewport width from which the mobile menu is never shown.
	DesktopWidth = 768

	ToastDuration  = 4 * time.Second
	ChallengeDelay = 800 * time.Millisecond
)

type (
	HealthChecker interface {
		Check(ctx context.Context) (health.Status, error)
	}

	Deps struct {
		Surface   Surface
		Scheduler Scheduler // defaults to RealScheduler()
		Logger    core.Logger   // defaults to discarding
		Health    HealthChecker // optional

		Notifications []notification.Notification
		Resources     []resource.Resource
	}

	// Controller holds the page state. It is safe for concurrent use:
	// timers fire on their own goroutines.
	Controller struct {
		mu        sync.Mutex
		surface   Surface
		scheduler Scheduler
		logger    core.Logger
		health    HealthChecker

		notifications []notification.Notification
		resources     []resource.Resource

		sidebarOpen  bool
		panelOpen    bool
		dropdownOpen bool

		toastID    string
		toastTimer Timer
	}
)

func NewController(deps Deps) *Controller {
	if deps.Scheduler == nil {
		deps.Scheduler = RealScheduler()
	}
	if deps.Logger == nil {
		deps.Logger = nopLogger{}
	}
	return &Controller{
		surface:       deps.Surface,
		scheduler:     deps.Scheduler,
		logger:        deps.Logger,
		health:        deps.Health,
		notifications: append([]notification.Notification(nil), deps.Notifications...),
		resources:     append([]resource.Resource(nil), deps.Resources...),
	}
}

type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}
func (nopLogger) Fatal(string, ...interface{}) {}

// Init renders the badges and resource cards and checks the backend in the background.
// The check only logs its outcome.
func (c *Controller) Init(ctx context.Context) {
	c.mu.Lock()
	c.renderBadges()
	c.renderResources()
	c.mu.Unlock()

	if c.health == nil {
		return
	}
	go func() {
		st, err := c.health.Check(ctx)
		if err != nil {
			c.logger.Warn("Backend not connected", err)
			return
		}
		c.logger.Info("Connected to backend", map[string]interface{}{"status": st.Status, "timestamp": st.Timestamp})
	}()
}

// mobile menu

func (c *Controller) ToggleMobileMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.surface.Has(MobileMenuButton) || !c.surface.Has(MobileSidebar) {
		return
	}
	c.sidebarOpen = !c.sidebarOpen
	c.surface.Render(SidebarIntent{Active: c.sidebarOpen})
	if c.surface.Has(Body) {
		c.surface.Render(ScrollLockIntent{Locked: c.sidebarOpen})
	}
}

func (c *Controller) CloseMobileMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closeMobileMenu()
}

func (c *Controller) closeMobileMenu() {
	c.sidebarOpen = false
	if c.surface.Has(MobileSidebar) || c.surface.Has(MobileMenuOverlay) {
		c.surface.Render(SidebarIntent{Active: false})
	}
	if c.surface.Has(Body) {
		c.surface.Render(ScrollLockIntent{Locked: false})
	}
}

func (c *Controller) OverlayClick() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.surface.Has(MobileMenuOverlay) {
		c.closeMobileMenu()
	}
}

// NavClick handles a click on any navigation link.
func (c *Controller) NavClick() {
	c.CloseMobileMenu()
}

// Resize closes the mobile menu and the notification panel on desktop widths.
func (c *Controller) Resize(width int) {
	if width < DesktopWidth {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.closeMobileMenu()
	if c.surface.Has(NotificationPanel) {
		c.panelOpen = false
		c.surface.Render(NotificationPanelIntent{Open: false})
	}
}

// notifications

func (c *Controller) ToggleNotifications() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.surface.Has(NotificationButton) || !c.surface.Has(NotificationPanel) {
		return
	}
	c.panelOpen = !c.panelOpen
	c.surface.Render(NotificationPanelIntent{Open: c.panelOpen})
}

func (c *Controller) MarkAllRead() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.surface.Has(MarkAllReadButton) {
		return
	}
	notification.MarkAllRead(c.notifications)
	c.renderBadges()
}

func (c *Controller) renderBadges() {
	if !c.surface.Has(NotificationBadges) {
		return
	}
	unread := notification.UnreadCount(c.notifications)
	c.surface.Render(BadgeIntent{Count: unread, Visible: unread > 0})
}

// Unread returns the number of unread notifications.
func (c *Controller) Unread() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return notification.UnreadCount(c.notifications)
}

// user menu

func (c *Controller) ToggleUserMenu() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.surface.Has(UserMenuButton) || !c.surface.Has(UserDropdown) {
		return
	}
	c.dropdownOpen = !c.dropdownOpen
	c.surface.Render(UserDropdownIntent{Open: c.dropdownOpen})
}

// DocumentClick closes the user dropdown unless target is inside it or inside the user button.
func (c *Controller) DocumentClick(target ElementID) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.surface.Has(UserDropdown) || c.surface.Contains(UserDropdown, target) {
		return
	}
	if c.surface.Has(UserMenuButton) && c.surface.Contains(UserMenuButton, target) {
		return
	}
	c.dropdownOpen = false
	c.surface.Render(UserDropdownIntent{Open: false})
}

// resources

func (c *Controller) renderResources() {
	if !c.surface.Has(ResourcesGrid) {
		return
	}
	cards := make([]Card, len(c.resources))
	for i, r := range c.resources {
		cards[i] = Card{ResourceID: r.ID, Title: r.Title, Platform: r.Platform, Channel: r.Channel, Icon: r.Icon}
	}
	c.surface.Render(ResourceGridIntent{Cards: cards})
}

// ResourceClick handles a click on the card of resource id.
func (c *Controller) ResourceClick(id int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.surface.Has(ResourcesGrid) {
		return
	}
	for _, r := range c.resources {
		if r.ID == id {
			c.showToast("Opening: "+r.Title, SeverityInfo)
			return
		}
	}
}

// daily challenge

func (c *Controller) StartDailyChallenge() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.surface.Has(DailyChallengeBtn) {
		return
	}
	c.setLoading(true)
	c.scheduler.AfterFunc(ChallengeDelay, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		c.setLoading(false)
		c.showToast("Daily challenge started!", SeveritySuccess)
	})
}

func (c *Controller) setLoading(active bool) {
	if c.surface.Has(LoadingOverlay) {
		c.surface.Render(LoadingIntent{Active: active})
	}
}

// toasts

// ShowToast replaces the current toast, if any, with a new one removed after ToastDuration.
func (c *Controller) ShowToast(message string, severity Severity) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.showToast(message, severity)
}

func (c *Controller) showToast(message string, severity Severity) {
	if c.toastID != "" {
		c.toastTimer.Stop()
		c.surface.Render(RemoveToastIntent{ID: c.toastID})
	}

	id := uuid.NewString()
	c.toastID = id
	c.surface.Render(ToastIntent{ID: id, Message: message, Severity: severity, Color: severity.Color()})
	c.toastTimer = c.scheduler.AfterFunc(ToastDuration, func() {
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.toastID != id { // replaced meanwhile
			return
		}
		c.toastID = ""
		c.toastTimer = nil
		c.surface.Render(RemoveToastIntent{ID: id})
	})
}
