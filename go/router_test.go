package storefrontserver

import (
	"bytes"
	"encoding/json"
	"math"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	accountmemory "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/memory"
	accountapp "github.com/Apurer/go-gin-storefront/internal/domains/accounts/application"
	cartcatalog "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/catalog"
	cartmemory "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/memory"
	"github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/notify"
	cartapp "github.com/Apurer/go-gin-storefront/internal/domains/cart/application"
	catalogmemory "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/memory"
	catalogapp "github.com/Apurer/go-gin-storefront/internal/domains/catalog/application"
	reviewmemory "github.com/Apurer/go-gin-storefront/internal/domains/reviews/adapters/memory"
	reviewapp "github.com/Apurer/go-gin-storefront/internal/domains/reviews/application"
	shellmemory "github.com/Apurer/go-gin-storefront/internal/domains/storefront/adapters/memory"
	shellapp "github.com/Apurer/go-gin-storefront/internal/domains/storefront/application"
	apierrors "github.com/Apurer/go-gin-storefront/internal/shared/errors"
)

const (
	shopperA = "6f1c2a8e-3b7d-4c52-9e0a-1d2f3a4b5c6d"
	shopperB = "0b9e8d7c-6a5f-4e3d-8c2b-1a0f9e8d7c6b"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalog := catalogapp.NewService(catalogmemory.NewSeededRepository())
	accounts := accountapp.NewService(accountmemory.NewSessionStore())
	reviews := reviewapp.NewService(reviewmemory.NewRepository(), accounts)
	toasts := notify.NewToasts(time.Minute)
	t.Cleanup(toasts.Close)
	cart := cartapp.NewService(cartmemory.NewKeyValueStore(), cartcatalog.NewLookup(catalog), cartapp.WithNotifier(toasts))
	shell := shellapp.NewShell(shellmemory.NewStateRepository(), catalog, reviews)

	handlers := ApiHandleFunctions{
		CatalogAPI: NewCatalogAPI(catalog),
		ReviewAPI:  NewReviewAPI(reviews, catalog),
		CartAPI:    NewCartAPI(cart),
		SessionAPI: NewSessionAPI(shell),
		AuthAPI:    NewAuthAPI(accounts),
		Sessions:   SessionConfig{TTL: time.Hour},
	}
	router := gin.New()
	router.Use(gin.Recovery())
	return NewRouterWithGinEngine(router, handlers)
}

func do(t *testing.T, router http.Handler, method, path, session string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set(SessionHeader, session)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

type cartBody struct {
	Items []struct {
		ID            string `json:"id"`
		CartID        string `json:"cartId"`
		Quantity      int    `json:"quantity"`
		SelectedColor string `json:"selectedColor"`
	} `json:"items"`
	Totals struct {
		ItemCount   int    `json:"itemCount"`
		UniqueItems int    `json:"uniqueItems"`
		Subtotal    string `json:"subtotal"`
	} `json:"totals"`
	Display struct {
		Currency string `json:"currency"`
	} `json:"display"`
}

func TestHealthz(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/healthz", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionCookieIssuedOnFirstRequest(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/v1/cart", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	issued := rec.Header().Get(SessionHeader)
	assert.NotEmpty(t, issued)

	cookies := rec.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, DefaultSessionCookie, cookies[0].Name)
	assert.Equal(t, issued, cookies[0].Value)

	rec = do(t, router, http.MethodGet, "/v1/cart", "not-a-uuid", nil)
	assert.NotEqual(t, "not-a-uuid", rec.Header().Get(SessionHeader))
}

func TestListProducts_Filters(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodGet, "/v1/products?color=red", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products := decode[[]struct {
		ID string `json:"id"`
	}](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "1", products[0].ID)

	rec = do(t, router, http.MethodGet, "/v1/products?category=Stole&size=L", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	products = decode[[]struct {
		ID string `json:"id"`
	}](t, rec)
	require.Len(t, products, 1)
	assert.Equal(t, "4", products[0].ID)

	rec = do(t, router, http.MethodGet, "/v1/products?limit=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProduct_NotFoundLinksToCollections(t *testing.T) {
	rec := do(t, newTestRouter(t), http.MethodGet, "/v1/products/99", "", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, apierrors.ContentTypeProblemJSON, rec.Header().Get("Content-Type"))

	problem := decode[apierrors.ProblemDetail](t, rec)
	assert.Equal(t, "Product not found", problem.Detail)
	assert.Equal(t, "/collections", problem.Extensions["link"])
}

func TestCartFlow(t *testing.T) {
	router := newTestRouter(t)
	add := map[string]any{"productId": "1", "quantity": 2, "color": "red", "size": "OS"}

	rec := do(t, router, http.MethodPost, "/v1/cart/items", shopperA, add)
	require.Equal(t, http.StatusOK, rec.Code)

	add["quantity"] = 1
	rec = do(t, router, http.MethodPost, "/v1/cart/items", shopperA, add)
	require.Equal(t, http.StatusOK, rec.Code)
	cart := decode[cartBody](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "1:red:OS", cart.Items[0].CartID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.Totals.ItemCount)
	assert.Equal(t, "450", cart.Totals.Subtotal)
	assert.Equal(t, "NPR", cart.Display.Currency)

	rec = do(t, router, http.MethodGet, "/v1/cart/notification", shopperA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	note := decode[struct {
		Message string `json:"message"`
	}](t, rec)
	assert.Equal(t, "Fine Diamond Stole 100% Cashmere added to cart", note.Message)

	rec = do(t, router, http.MethodPatch, "/v1/cart/items/1:red:OS", shopperA, map[string]any{"delta": -10})
	require.Equal(t, http.StatusOK, rec.Code)
	cart = decode[cartBody](t, rec)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	rec = do(t, router, http.MethodGet, "/v1/cart", shopperB, nil)
	cart = decode[cartBody](t, rec)
	assert.Empty(t, cart.Items)

	for i := 0; i < 2; i++ {
		rec = do(t, router, http.MethodDelete, "/v1/cart/items/1:red:OS", shopperA, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		cart = decode[cartBody](t, rec)
		assert.Empty(t, cart.Items)
	}
}

func TestAddToCart_RejectsBadRequests(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPost, "/v1/cart/items", shopperA, map[string]any{"productId": "1"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/v1/cart/items", shopperA,
		map[string]any{"productId": "1", "quantity": -1, "color": "red", "size": "OS"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPost, "/v1/cart/items", shopperA,
		map[string]any{"productId": "99", "color": "red", "size": "OS"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, router, http.MethodGet, "/v1/cart/notification", shopperA, nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCart_QuantityLimits(t *testing.T) {
	router := newTestRouter(t)
	add := map[string]any{"productId": "1", "quantity": 999, "color": "red", "size": "OS"}

	rec := do(t, router, http.MethodPost, "/v1/cart/items", shopperA, add)
	require.Equal(t, http.StatusOK, rec.Code)

	add["quantity"] = 1
	rec = do(t, router, http.MethodPost, "/v1/cart/items", shopperA, add)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	add["quantity"] = int64(math.MaxInt64)
	rec = do(t, router, http.MethodPost, "/v1/cart/items", shopperA, add)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPatch, "/v1/cart/items/1:red:OS", shopperA, map[string]any{"delta": int64(math.MaxInt64)})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodGet, "/v1/cart", shopperA, nil)
	cart := decode[cartBody](t, rec)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 999, cart.Items[0].Quantity)
}

func TestReviews_RequireLogin(t *testing.T) {
	router := newTestRouter(t)
	draft := map[string]any{"user": "Asha", "rating": 4, "comment": "Warm and light"}

	rec := do(t, router, http.MethodPost, "/v1/products/1/reviews", shopperA, draft)
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(t, router, http.MethodPost, "/v1/auth/login", shopperA, map[string]any{"email": "bad", "password": ""})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	problem := decode[apierrors.ProblemDetail](t, rec)
	fields, ok := problem.Extensions["fields"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Invalid email format", fields["email"])
	assert.Equal(t, "Password is required", fields["password"])

	rec = do(t, router, http.MethodPost, "/v1/auth/login", shopperA, map[string]any{"email": "asha@example.com", "password": "x"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodPost, "/v1/products/1/reviews", shopperA, draft)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = do(t, router, http.MethodGet, "/v1/products/1/reviews", shopperA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	list := decode[[]struct {
		User string `json:"user"`
	}](t, rec)
	require.Len(t, list, 3)
	assert.Equal(t, "Asha", list[0].User)

	rec = do(t, router, http.MethodGet, "/v1/products/1/reviews", shopperB, nil)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)

	rec = do(t, router, http.MethodPost, "/v1/auth/logout", shopperA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = do(t, router, http.MethodPost, "/v1/products/1/reviews", shopperA, draft)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionShell(t *testing.T) {
	router := newTestRouter(t)

	rec := do(t, router, http.MethodPut, "/v1/session/search", shopperA, map[string]any{"query": "Printed"})
	require.Equal(t, http.StatusOK, rec.Code)
	nav := decode[struct {
		View       string `json:"view"`
		Path       string `json:"path"`
		Redirected bool   `json:"redirected"`
	}](t, rec)
	assert.Equal(t, "products", nav.View)
	assert.Equal(t, "/collections", nav.Path)
	assert.True(t, nav.Redirected)

	rec = do(t, router, http.MethodPost, "/v1/session/filters", shopperA, map[string]any{"dimension": "category", "value": "Stole"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/v1/session/products", shopperA, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]map[string]any](t, rec), 2)

	rec = do(t, router, http.MethodPost, "/v1/session/filters", shopperA, map[string]any{"dimension": "material", "value": "wool"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, router, http.MethodPut, "/v1/session/view", shopperA, map[string]any{"view": "product_detail", "productId": "3"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, router, http.MethodGet, "/v1/session", shopperA, nil)
	state := decode[struct {
		View    string `json:"view"`
		Path    string `json:"path"`
		Search  string `json:"search"`
		Filters struct {
			ActiveCount int `json:"activeCount"`
		} `json:"filters"`
	}](t, rec)
	assert.Equal(t, "product_detail", state.View)
	assert.Equal(t, "/product/3", state.Path)
	assert.Equal(t, "Printed", state.Search)
	assert.Zero(t, state.Filters.ActiveCount)

	rec = do(t, router, http.MethodPut, "/v1/session/view", shopperA, map[string]any{"view": "product_detail", "productId": "99"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
