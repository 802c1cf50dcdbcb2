package application

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/memory"
	"github.com/Apurer/go-gin-storefront/internal/domains/cart/domain"
	"github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

type fakeCatalog map[string]domain.Product

func (f fakeCatalog) Product(_ context.Context, id string) (domain.Product, error) {
	p, ok := f[id]
	if !ok {
		return domain.Product{}, ports.ErrProductNotFound
	}
	return p, nil
}

type recordingNotifier struct {
	mu       sync.Mutex
	messages map[string][]string
}

func newRecordingNotifier() *recordingNotifier {
	return &recordingNotifier{messages: map[string][]string{}}
}

func (r *recordingNotifier) Show(sessionID, message string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages[sessionID] = append(r.messages[sessionID], message)
}

func (r *recordingNotifier) Current(sessionID string) (domain.Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	msgs := r.messages[sessionID]
	if len(msgs) == 0 {
		return domain.Notification{}, false
	}
	return domain.Notification{Message: msgs[len(msgs)-1]}, true
}

type failingKV struct {
	*memory.KeyValueStore
}

func (failingKV) Set(context.Context, string, string, []byte) error {
	return errors.New("disk full")
}

var testCatalog = fakeCatalog{
	"A": {ID: "A", Name: "Silk Shawl", Category: "Shawl", Price: 10, Colors: []string{"red"}, Sizes: []string{"OS"}},
	"B": {ID: "B", Name: "Wool Stole", Category: "Stole", Price: 20, Colors: []string{"blue"}, Sizes: []string{"S", "M"}},
}

func TestAddToCart_PersistsAfterEveryMutation(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	svc := NewService(kv, testCatalog)

	_, err := svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 1, Color: "red", Size: "OS"})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 2, Color: "red", Size: "OS"})
	require.NoError(t, err)

	raw, err := kv.Get(ctx, "s1", DefaultStorageKey)
	require.NoError(t, err)
	stored, err := domain.Decode(raw)
	require.NoError(t, err)
	require.Len(t, stored, 1)
	assert.Equal(t, "A:red:OS", stored[0].CartID)
	assert.Equal(t, 3, stored[0].Quantity)

	_, err = svc.RemoveFromCart(ctx, "s1", "A:red:OS")
	require.NoError(t, err)
	raw, err = kv.Get(ctx, "s1", DefaultStorageKey)
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(raw))
}

func TestHydrate_RestoresPersistedCartInOrder(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()

	first := NewService(kv, testCatalog)
	_, err := first.AddToCart(ctx, "s1", ports.AddItem{ProductID: "B", Quantity: 1, Color: "blue", Size: "M"})
	require.NoError(t, err)
	_, err = first.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 2, Color: "red", Size: "OS"})
	require.NoError(t, err)
	_, err = first.UpdateQuantity(ctx, "s1", "B:blue:M", 4)
	require.NoError(t, err)

	restarted := NewService(kv, testCatalog)
	snap, err := restarted.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snap.Items, 2)
	assert.Equal(t, "B:blue:M", snap.Items[0].CartID)
	assert.Equal(t, 5, snap.Items[0].Quantity)
	assert.Equal(t, "A:red:OS", snap.Items[1].CartID)
	assert.Equal(t, 7, snap.Totals.Quantity)
	assert.Equal(t, 2, snap.Totals.UniqueItems)
}

func TestHydrate_MalformedOrMissingYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	require.NoError(t, kv.Set(ctx, "broken", DefaultStorageKey, []byte("{oops")))

	svc := NewService(kv, testCatalog)
	snap, err := svc.Cart(ctx, "broken")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)

	snap, err = svc.Cart(ctx, "fresh")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.True(t, snap.Totals.Subtotal.IsZero())
}

func TestIdleStoresAreEvictedAndRehydrated(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	now := time.Date(2025, time.March, 7, 9, 0, 0, 0, time.UTC)
	svc := NewService(kv, testCatalog,
		WithIdleEviction(time.Hour),
		WithClock(func() time.Time { return now }),
	)

	_, err := svc.AddToCart(ctx, "idle", ports.AddItem{ProductID: "A", Quantity: 2, Color: "red", Size: "OS"})
	require.NoError(t, err)
	_, err = svc.Cart(ctx, "busy")
	require.NoError(t, err)
	require.Len(t, svc.stores, 2)

	now = now.Add(40 * time.Minute)
	_, err = svc.Cart(ctx, "busy")
	require.NoError(t, err)

	// A purge outside the process empties the stored cart.
	require.NoError(t, kv.Set(ctx, "idle", DefaultStorageKey, []byte("[]")))

	now = now.Add(40 * time.Minute)
	_, err = svc.Cart(ctx, "busy")
	require.NoError(t, err)
	assert.Len(t, svc.stores, 1)

	snap, err := svc.Cart(ctx, "idle")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}

func TestAddToCart_RejectsLineGrowthPastLimit(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewKeyValueStore(), testCatalog)

	_, err := svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: domain.MaxQuantity, Color: "red", Size: "OS"})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 1, Color: "red", Size: "OS"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrQuantityLimit)

	snap, err := svc.Cart(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, domain.MaxQuantity, snap.Totals.Quantity)
}

func TestAddToCart_NotifiesOncePerAdd(t *testing.T) {
	ctx := context.Background()
	notifier := newRecordingNotifier()
	svc := NewService(memory.NewKeyValueStore(), testCatalog, WithNotifier(notifier))

	_, err := svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 1, Color: "red", Size: "OS"})
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "B", Quantity: 1, Color: "blue", Size: "S"})
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, "s1", "A:red:OS", 1)
	require.NoError(t, err)
	_, err = svc.RemoveFromCart(ctx, "s1", "B:blue:S")
	require.NoError(t, err)

	assert.Equal(t, []string{"Silk Shawl added to cart", "Wool Stole added to cart"}, notifier.messages["s1"])
	n, ok := svc.Notification(ctx, "s1")
	require.True(t, ok)
	assert.Equal(t, "Wool Stole added to cart", n.Message)
}

func TestAddToCart_InvalidInputIsNotApplied(t *testing.T) {
	ctx := context.Background()
	notifier := newRecordingNotifier()
	svc := NewService(memory.NewKeyValueStore(), testCatalog, WithNotifier(notifier))

	_, err := svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 0, Color: "red", Size: "OS"})
	require.ErrorIs(t, err, ErrInvalidInput)
	require.ErrorIs(t, err, domain.ErrInvalidQuantity)

	_, err = svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "", Quantity: 1, Color: "red", Size: "OS"})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "Z", Quantity: 1, Color: "red", Size: "OS"})
	require.ErrorIs(t, err, ports.ErrProductNotFound)

	_, err = svc.Cart(ctx, " ")
	require.ErrorIs(t, err, ErrInvalidSession)

	snap, err := svc.Cart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	assert.Empty(t, notifier.messages["s1"])
}

func TestAbsentKeysAreNoops(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewKeyValueStore()
	svc := NewService(kv, testCatalog)

	snap, err := svc.RemoveFromCart(ctx, "s1", "missing")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
	snap, err = svc.UpdateQuantity(ctx, "s1", "missing", 3)
	require.NoError(t, err)
	assert.Empty(t, snap.Items)

	_, err = kv.Get(ctx, "s1", DefaultStorageKey)
	assert.ErrorIs(t, err, ports.ErrKeyNotFound)
}

func TestPersistenceFailureKeepsMutationInMemory(t *testing.T) {
	ctx := context.Background()
	svc := NewService(failingKV{memory.NewKeyValueStore()}, testCatalog)

	_, err := svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 1, Color: "red", Size: "OS"})
	require.ErrorIs(t, err, ErrPersistence)

	snap, err := svc.Cart(ctx, "s1")
	require.NoError(t, err)
	require.Len(t, snap.Items, 1)
}

func TestObserversRunInSubscriptionOrder(t *testing.T) {
	ctx := context.Background()
	var calls []domain.ChangeKind
	svc := NewService(memory.NewKeyValueStore(), testCatalog, WithObserver(func(_ context.Context, change domain.Change) error {
		calls = append(calls, change.Kind)
		assert.Equal(t, "s1", change.SessionID)
		return nil
	}))

	_, err := svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 1, Color: "red", Size: "OS"})
	require.NoError(t, err)
	_, err = svc.UpdateQuantity(ctx, "s1", "A:red:OS", -5)
	require.NoError(t, err)
	_, err = svc.RemoveFromCart(ctx, "s1", "A:red:OS")
	require.NoError(t, err)

	assert.Equal(t, []domain.ChangeKind{domain.ChangeAdded, domain.ChangeQuantityUpdated, domain.ChangeRemoved}, calls)
}

func TestSnapshotDisplayCurrency(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewKeyValueStore(), testCatalog)

	snap, err := svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "B", Quantity: 2, Color: "blue", Size: "S"})
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(40).Equal(snap.Totals.Total))
	assert.Equal(t, DefaultDisplayCurrency, snap.Display.Currency)
	assert.True(t, decimal.NewFromInt(5340).Equal(snap.Display.Amount), snap.Display.Amount.String())

	custom := NewService(memory.NewKeyValueStore(), testCatalog, WithDisplayCurrency("EUR", decimal.RequireFromString("0.5")))
	snap, err = custom.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 1, Color: "red", Size: "OS"})
	require.NoError(t, err)
	assert.Equal(t, "EUR", snap.Display.Currency)
	assert.True(t, decimal.NewFromInt(5).Equal(snap.Display.Amount))
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewKeyValueStore(), testCatalog, WithStorageKey("cart"))

	_, err := svc.AddToCart(ctx, "s1", ports.AddItem{ProductID: "A", Quantity: 1, Color: "red", Size: "OS"})
	require.NoError(t, err)

	snap, err := svc.Cart(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, snap.Items)
}
