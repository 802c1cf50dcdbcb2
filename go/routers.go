package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Route is the information for every URI.
type Route struct {
	// Name is the name of this Route.
	Name string
	// Method is the string for the HTTP method. ex) GET, POST etc..
	Method string
	// Pattern is the pattern of the URI.
	Pattern string
	// HandlerFunc is the handler function of this route.
	HandlerFunc gin.HandlerFunc
}

// ApiHandleFunctions groups the handlers of every API section.
type ApiHandleFunctions struct {
	HealthAPI  HealthAPI
	CatalogAPI CatalogAPI
	ReviewAPI  ReviewAPI
	CartAPI    CartAPI
	SessionAPI SessionAPI
	AuthAPI    AuthAPI
	Sessions   SessionConfig
}

// NewRouter returns a new router.
func NewRouter(handleFunctions ApiHandleFunctions) *gin.Engine {
	return NewRouterWithGinEngine(gin.Default(), handleFunctions)
}

// NewRouterWithGinEngine adds routes to an existing gin engine. Middleware
// already registered on the engine applies to every route.
func NewRouterWithGinEngine(router *gin.Engine, handleFunctions ApiHandleFunctions) *gin.Engine {
	for _, route := range getRoutes(handleFunctions) {
		if route.HandlerFunc == nil {
			route.HandlerFunc = DefaultHandleFunc
		}
		switch route.Method {
		case http.MethodGet:
			router.GET(route.Pattern, route.HandlerFunc)
		case http.MethodPost:
			router.POST(route.Pattern, route.HandlerFunc)
		case http.MethodPut:
			router.PUT(route.Pattern, route.HandlerFunc)
		case http.MethodPatch:
			router.PATCH(route.Pattern, route.HandlerFunc)
		case http.MethodDelete:
			router.DELETE(route.Pattern, route.HandlerFunc)
		}
	}
	return router
}

// DefaultHandleFunc answers routes whose handler is not wired.
func DefaultHandleFunc(c *gin.Context) {
	c.String(http.StatusNotImplemented, "501 not implemented")
}

func getRoutes(h ApiHandleFunctions) []Route {
	session := SessionMiddleware(h.Sessions)
	withSession := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			session(c)
			if c.IsAborted() {
				return
			}
			next(c)
		}
	}
	return []Route{
		{"Healthz", http.MethodGet, "/healthz", h.HealthAPI.Healthz},

		{"Facets", http.MethodGet, "/v1/catalog/facets", h.CatalogAPI.Facets},
		{"ListProducts", http.MethodGet, "/v1/products", h.CatalogAPI.ListProducts},
		{"GetProduct", http.MethodGet, "/v1/products/:productId", h.CatalogAPI.GetProduct},
		{"Recommendations", http.MethodGet, "/v1/products/:productId/recommendations", h.CatalogAPI.Recommendations},

		{"ListReviews", http.MethodGet, "/v1/products/:productId/reviews", withSession(h.ReviewAPI.ListReviews)},
		{"AddReview", http.MethodPost, "/v1/products/:productId/reviews", withSession(h.ReviewAPI.AddReview)},

		{"GetCart", http.MethodGet, "/v1/cart", withSession(h.CartAPI.GetCart)},
		{"AddToCart", http.MethodPost, "/v1/cart/items", withSession(h.CartAPI.AddToCart)},
		{"UpdateQuantity", http.MethodPatch, "/v1/cart/items/:cartId", withSession(h.CartAPI.UpdateQuantity)},
		{"RemoveFromCart", http.MethodDelete, "/v1/cart/items/:cartId", withSession(h.CartAPI.RemoveFromCart)},
		{"CartNotification", http.MethodGet, "/v1/cart/notification", withSession(h.CartAPI.Notification)},

		{"GetSession", http.MethodGet, "/v1/session", withSession(h.SessionAPI.GetSession)},
		{"SetSearch", http.MethodPut, "/v1/session/search", withSession(h.SessionAPI.SetSearch)},
		{"Navigate", http.MethodPut, "/v1/session/view", withSession(h.SessionAPI.Navigate)},
		{"ToggleFilter", http.MethodPost, "/v1/session/filters", withSession(h.SessionAPI.ToggleFilter)},
		{"ClearFilters", http.MethodDelete, "/v1/session/filters", withSession(h.SessionAPI.ClearFilters)},
		{"SessionProducts", http.MethodGet, "/v1/session/products", withSession(h.SessionAPI.Products)},

		{"Login", http.MethodPost, "/v1/auth/login", withSession(h.AuthAPI.Login)},
		{"Signup", http.MethodPost, "/v1/auth/signup", withSession(h.AuthAPI.Signup)},
		{"Logout", http.MethodPost, "/v1/auth/logout", withSession(h.AuthAPI.Logout)},
	}
}
