package discovery

import "log"

// Notification describes a catalog discovery worth telling the user
// about. Notifications fire only for new insertions, never for updates.
type Notification struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Source  string `json:"source"`
	URL     string `json:"url"`
}

// Notifier receives discovery notifications. Delivery is fire-and-forget;
// the engine never waits on or retries a notification.
type Notifier interface {
	Notify(n Notification)
}

// LogNotifier writes notifications to the process log. It is the default
// sink when no other notifier is wired in.
type LogNotifier struct{}

func (LogNotifier) Notify(n Notification) {
	log.Printf("INFO: %s: %s (%s)", n.Title, n.Message, n.URL)
}
