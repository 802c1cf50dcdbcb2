package notify

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestToasts_ShowAndAutoDismiss(t *testing.T) {
	toasts := NewToasts(20 * time.Millisecond)
	defer toasts.Close()

	toasts.Show("s1", "Silk Shawl added to cart")
	n, ok := toasts.Current("s1")
	require.True(t, ok)
	assert.Equal(t, "Silk Shawl added to cart", n.Message)
	assert.Equal(t, 20*time.Millisecond, n.ExpiresAt.Sub(n.ShownAt))

	require.Eventually(t, func() bool {
		_, visible := toasts.Current("s1")
		return !visible
	}, time.Second, 5*time.Millisecond)
}

func TestToasts_NewMessageSupersedesPrevious(t *testing.T) {
	base := time.Date(2025, 1, 12, 10, 0, 0, 0, time.UTC)
	now := base
	toasts := NewToasts(time.Hour)
	toasts.WithClock(func() time.Time { return now })
	defer toasts.Close()

	toasts.Show("s1", "first")
	now = base.Add(30 * time.Minute)
	toasts.Show("s1", "second")

	n, ok := toasts.Current("s1")
	require.True(t, ok)
	assert.Equal(t, "second", n.Message)

	// The first toast's deadline has passed but the replacement is still visible.
	now = base.Add(61 * time.Minute)
	_, ok = toasts.Current("s1")
	assert.True(t, ok)

	now = base.Add(91 * time.Minute)
	_, ok = toasts.Current("s1")
	assert.False(t, ok)
}

func TestToasts_SessionsAreIndependent(t *testing.T) {
	toasts := NewToasts(time.Hour)
	defer toasts.Close()

	toasts.Show("s1", "one")
	_, ok := toasts.Current("s2")
	assert.False(t, ok)
}

func TestToasts_CloseStopsTimers(t *testing.T) {
	toasts := NewToasts(time.Hour)
	toasts.Show("s1", "one")
	toasts.Show("s2", "two")
	toasts.Close()

	_, ok := toasts.Current("s1")
	assert.False(t, ok)
	toasts.Show("s1", "ignored")
	_, ok = toasts.Current("s1")
	assert.False(t, ok)
}
