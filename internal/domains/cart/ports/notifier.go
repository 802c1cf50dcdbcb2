package ports

import "github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"

// Notifier shows one transient confirmation per session. A new message
// replaces the visible one and restarts its dismissal timer.
type Notifier interface {
	Show(sessionID, message string)
	Current(sessionID string) (domain.Notification, bool)
}

// NoopNotifier discards notifications.
var NoopNotifier Notifier = noopNotifier{}

type noopNotifier struct{}

func (noopNotifier) Show(string, string) {}

func (noopNotifier) Current(string) (domain.Notification, bool) { return domain.Notification{}, false }
