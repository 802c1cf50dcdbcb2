package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
	reviewmapper "github.com/Apurer/go-gin-storefront/internal/domains/reviews/adapters/http/mapper"
	reviewports "github.com/Apurer/go-gin-storefront/internal/domains/reviews/ports"
)

// ReviewAPI serves the per-session review list of a product.
type ReviewAPI struct {
	service reviewports.Service
	catalog catalogports.Service
}

func NewReviewAPI(service reviewports.Service, catalog catalogports.Service) ReviewAPI {
	return ReviewAPI{service: service, catalog: catalog}
}

// Get /v1/products/:productId/reviews
func (api *ReviewAPI) ListReviews(c *gin.Context) {
	productID := c.Param("productId")
	if _, err := api.catalog.GetProduct(c.Request.Context(), productID); err != nil {
		respondServiceError(c, err)
		return
	}
	list, err := api.service.List(c.Request.Context(), sessionID(c), productID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviewmapper.FromDomainReviews(list))
}

// Post /v1/products/:productId/reviews
// Only logged-in sessions may post.
func (api *ReviewAPI) AddReview(c *gin.Context) {
	productID := c.Param("productId")
	var payload reviewmapper.Draft
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	if _, err := api.catalog.GetProduct(c.Request.Context(), productID); err != nil {
		respondServiceError(c, err)
		return
	}
	review, err := api.service.Add(c.Request.Context(), sessionID(c), productID, reviewmapper.ToDomainDraft(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reviewmapper.FromDomainReview(review))
}
