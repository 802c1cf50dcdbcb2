package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	cartmapper "github.com/Apurer/go-gin-storefront/internal/domains/cart/adapters/http/mapper"
	cartports "github.com/Apurer/go-gin-storefront/internal/domains/cart/ports"
)

// CartAPI serves the session cart.
type CartAPI struct {
	service cartports.Service
}

func NewCartAPI(service cartports.Service) CartAPI {
	return CartAPI{service: service}
}

// Get /v1/cart
func (api *CartAPI) GetCart(c *gin.Context) {
	snapshot, err := api.service.Cart(c.Request.Context(), sessionID(c))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromSnapshot(snapshot))
}

// Post /v1/cart/items
// Adds a product variant, merging with an existing line of the same color and size.
func (api *CartAPI) AddToCart(c *gin.Context) {
	var payload cartmapper.AddItem
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	snapshot, err := api.service.AddToCart(c.Request.Context(), sessionID(c), cartmapper.ToAddItem(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromSnapshot(snapshot))
}

// Patch /v1/cart/items/:cartId
func (api *CartAPI) UpdateQuantity(c *gin.Context) {
	var payload cartmapper.QuantityChange
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	snapshot, err := api.service.UpdateQuantity(c.Request.Context(), sessionID(c), c.Param("cartId"), *payload.Delta)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromSnapshot(snapshot))
}

// Delete /v1/cart/items/:cartId
// Removing an absent line succeeds and returns the unchanged cart.
func (api *CartAPI) RemoveFromCart(c *gin.Context) {
	snapshot, err := api.service.RemoveFromCart(c.Request.Context(), sessionID(c), c.Param("cartId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromSnapshot(snapshot))
}

// Get /v1/cart/notification
func (api *CartAPI) Notification(c *gin.Context) {
	n, ok := api.service.Notification(c.Request.Context(), sessionID(c))
	if !ok {
		c.Status(http.StatusNoContent)
		return
	}
	c.JSON(http.StatusOK, cartmapper.FromNotification(n))
}
