package notification

type Notification struct {
	ID      int    `json:"id"`
	Title   string `json:"title"`
	Message string `json:"message"`
	Time    string `json:"time,omitempty"` // human readable, eg. "10 min ago"
	Read    bool   `json:"read"`
}

// UnreadCount returns the number shown on the notification badges.
func UnreadCount(ns []Notification) int {
	var n int
	for _, notif := range ns {
		if !notif.Read {
			n++
		}
	}
	return n
}

// MarkAllRead sets the read flag of every notification in place.
func MarkAllRead(ns []Notification) {
	for i := range ns {
		ns[i].Read = true
	}
}
