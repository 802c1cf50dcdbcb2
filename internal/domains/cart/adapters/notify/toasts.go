package notify

import (
	"sync"
	"time"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

// DefaultDismissAfter is how long a confirmation stays visible.
const DefaultDismissAfter = 3 * time.Second

var _ ports.Notifier = (*Toasts)(nil)

// Toasts keeps at most one visible confirmation per session and dismisses
// it after a fixed delay. Showing a new one cancels the pending dismissal
// of the previous one.
type Toasts struct {
	mu     sync.Mutex
	delay  time.Duration
	now    func() time.Time
	active map[string]*toast
	closed bool
}

type toast struct {
	notification domain.Notification
	timer        *time.Timer
}

func NewToasts(delay time.Duration) *Toasts {
	if delay <= 0 {
		delay = DefaultDismissAfter
	}
	return &Toasts{
		delay:  delay,
		now:    time.Now,
		active: map[string]*toast{},
	}
}

// WithClock overrides the time source for deterministic testing.
func (t *Toasts) WithClock(now func() time.Time) {
	if now == nil {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.now = now
}

func (t *Toasts) Show(sessionID, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	if prev, ok := t.active[sessionID]; ok {
		prev.timer.Stop()
	}
	now := t.now()
	entry := &toast{notification: domain.Notification{
		Message:   message,
		ShownAt:   now,
		ExpiresAt: now.Add(t.delay),
	}}
	entry.timer = time.AfterFunc(t.delay, func() { t.dismiss(sessionID, entry) })
	t.active[sessionID] = entry
}

func (t *Toasts) Current(sessionID string) (domain.Notification, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	entry, ok := t.active[sessionID]
	if !ok || !t.now().Before(entry.notification.ExpiresAt) {
		return domain.Notification{}, false
	}
	return entry.notification, true
}

// Close stops every pending dismissal. Later calls to Show are ignored.
func (t *Toasts) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	for id, entry := range t.active {
		entry.timer.Stop()
		delete(t.active, id)
	}
	t.closed = true
}

func (t *Toasts) dismiss(sessionID string, entry *toast) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.active[sessionID] == entry {
		delete(t.active, sessionID)
	}
}
