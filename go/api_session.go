package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogmapper "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/http/mapper"
	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	shellmapper "github.com/Apurer/go-gin-storefront/internal/domains/storefront/adapters/http/mapper"
	storefrontdomain "github.com/Apurer/go-gin-storefront/internal/domains/storefront/domain"
	storefrontports "github.com/Apurer/go-gin-storefront/internal/domains/storefront/ports"
)

// SessionAPI serves the shopper's shell: search box, current view and filters.
type SessionAPI struct {
	shell storefrontports.Service
}

func NewSessionAPI(shell storefrontports.Service) SessionAPI {
	return SessionAPI{shell: shell}
}

// Get /v1/session
func (api *SessionAPI) GetSession(c *gin.Context) {
	state, err := api.shell.State(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shellmapper.FromState(state))
}

// Put /v1/session/search
func (api *SessionAPI) SetSearch(c *gin.Context) {
	var payload shellmapper.SearchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	nav, err := api.shell.SetSearch(c.Request.Context(), sessionID(c), payload.Query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shellmapper.FromNavigation(nav))
}

// Put /v1/session/view
// Unknown views land on home.
func (api *SessionAPI) Navigate(c *gin.Context) {
	var payload shellmapper.ViewRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	view, _ := storefrontdomain.ParseView(payload.View)
	nav, err := api.shell.Navigate(c.Request.Context(), sessionID(c), view, payload.ProductID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shellmapper.FromNavigation(nav))
}

// Post /v1/session/filters
func (api *SessionAPI) ToggleFilter(c *gin.Context) {
	var payload shellmapper.FilterToggle
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	dimension, err := catalogdomain.ParseDimension(payload.Dimension)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	state, err := api.shell.ToggleFilter(c.Request.Context(), sessionID(c), dimension, payload.Value)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shellmapper.FromState(state))
}

// Delete /v1/session/filters
func (api *SessionAPI) ClearFilters(c *gin.Context) {
	state, err := api.shell.ClearFilters(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, shellmapper.FromState(state))
}

// Get /v1/session/products
// Lists the catalog as the session's current search and filters show it.
func (api *SessionAPI) Products(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	products, err := api.shell.Products(c.Request.Context(), sessionID(c), limit)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProducts(products))
}
