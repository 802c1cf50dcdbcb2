//go:build pact
// +build pact

package provider_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	pacttest "github.com/Apurer/go-gin-storefront/test/pact"

	storefrontserver "github.com/Apurer/go-gin-storefront/go"
	accountmemory "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/memory"
	accountobs "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/observability"
	accountapp "github.com/Apurer/go-gin-storefront/internal/domains/accounts/application"
	cartcatalog "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/catalog"
	cartmemory "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/memory"
	"github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/notify"
	cartobs "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/observability"
	cartapp "github.com/Apurer/go-gin-storefront/internal/domains/cart/application"
	catalogmemory "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/memory"
	catalogobs "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/observability"
	catalogapp "github.com/Apurer/go-gin-storefront/internal/domains/catalog/application"
	reviewmemory "github.com/Apurer/go-gin-storefront/internal/domains/reviews/adapters/memory"
	reviewobs "github.com/Apurer/go-gin-storefront/internal/domains/reviews/adapters/observability"
	reviewapp "github.com/Apurer/go-gin-storefront/internal/domains/reviews/application"
	shellmemory "github.com/Apurer/go-gin-storefront/internal/domains/storefront/adapters/memory"
	shellapp "github.com/Apurer/go-gin-storefront/internal/domains/storefront/application"

	"github.com/gin-gonic/gin"
	"github.com/pact-foundation/pact-go/v2/models"
	pactprovider "github.com/pact-foundation/pact-go/v2/provider"
	"github.com/stretchr/testify/require"
)

func TestStorefrontProviderPact(t *testing.T) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app := newContractProviderApp(t)
	pactFile := filepath.ToSlash(pacttest.PactFile(t))
	if _, err := os.Stat(pactFile); errors.Is(err, os.ErrNotExist) {
		t.Fatalf("pact file not found at %s - run the pact consumer tests first", pactFile)
	} else {
		require.NoError(t, err)
	}

	reset := func(setup bool, _ models.ProviderState) (models.ProviderStateResponse, error) {
		app.reset(t)
		return nil, nil
	}
	verifier := pactprovider.NewVerifier()
	err := verifier.VerifyProvider(t, pactprovider.VerifyRequest{
		ProviderBaseURL: app.server.URL,
		Provider:        pacttest.ProviderName,
		PactFiles:       []string{pactFile},
		StateHandlers: models.StateHandlers{
			pacttest.StateCatalogSeeded:  reset,
			pacttest.StateProductMissing: reset,
			pacttest.StateEmptyCart:      reset,
		},
		BeforeEach: func() error {
			app.reset(t)
			return nil
		},
	})
	require.NoError(t, err)
}

// contractProviderApp serves a freshly wired in-memory storefront that can
// be swapped out between interactions.
type contractProviderApp struct {
	mu      sync.RWMutex
	handler http.Handler
	toasts  *notify.Toasts
	server  *httptest.Server
}

func newContractProviderApp(t testing.TB) *contractProviderApp {
	t.Helper()
	app := &contractProviderApp{}
	app.reset(t)
	app.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		app.mu.RLock()
		h := app.handler
		app.mu.RUnlock()
		h.ServeHTTP(w, r)
	}))
	t.Cleanup(func() {
		app.server.Close()
		app.mu.Lock()
		defer app.mu.Unlock()
		app.toasts.Close()
	})
	return app
}

func (a *contractProviderApp) reset(t testing.TB) {
	t.Helper()
	catalog := catalogobs.New(catalogapp.NewService(catalogmemory.NewSeededRepository()))
	accounts := accountobs.New(accountapp.NewService(accountmemory.NewSessionStore()))
	reviews := reviewobs.New(reviewapp.NewService(reviewmemory.NewRepository(), accounts))
	toasts := notify.NewToasts(time.Second)
	cart := cartobs.New(cartapp.NewService(cartmemory.NewKeyValueStore(), cartcatalog.NewLookup(catalog), cartapp.WithNotifier(toasts)))
	shell := shellapp.NewShell(shellmemory.NewStateRepository(), catalog, reviews)

	handlers := storefrontserver.ApiHandleFunctions{
		CatalogAPI: storefrontserver.NewCatalogAPI(catalog),
		ReviewAPI:  storefrontserver.NewReviewAPI(reviews, catalog),
		CartAPI:    storefrontserver.NewCartAPI(cart),
		SessionAPI: storefrontserver.NewSessionAPI(shell),
		AuthAPI:    storefrontserver.NewAuthAPI(accounts),
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router = storefrontserver.NewRouterWithGinEngine(router, handlers)

	a.mu.Lock()
	defer a.mu.Unlock()
	if a.toasts != nil {
		a.toasts.Close()
	}
	a.handler = router
	a.toasts = toasts
}
