package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogmapper "github.com/Apurer/go-gin-storefront/internal/domains/catalog/adapters/http/mapper"
	catalogdomain "github.com/Apurer/go-gin-storefront/internal/domains/catalog/domain"
	catalogports "github.com/Apurer/go-gin-storefront/internal/domains/catalog/ports"
)

// CatalogAPI serves the stateless product catalog.
type CatalogAPI struct {
	service catalogports.Service
}

func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

// Get /v1/catalog/facets
func (api *CatalogAPI) Facets(c *gin.Context) {
	c.JSON(http.StatusOK, catalogmapper.FromFacets(api.service.Facets(c.Request.Context())))
}

// Get /v1/products
// Filters the catalog by search text and repeated category, size and color parameters.
func (api *CatalogAPI) ListProducts(c *gin.Context) {
	limit, ok := parseLimit(c)
	if !ok {
		return
	}
	query := catalogports.ListQuery{
		Criteria: catalogdomain.Criteria{
			Search:     c.Query("q"),
			Categories: c.QueryArray("category"),
			Sizes:      c.QueryArray("size"),
			Colors:     c.QueryArray("color"),
		},
		Limit: limit,
	}
	products, err := api.service.ListProducts(c.Request.Context(), query)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProducts(products))
}

// Get /v1/products/:productId
func (api *CatalogAPI) GetProduct(c *gin.Context) {
	product, err := api.service.GetProduct(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProduct(product))
}

// Get /v1/products/:productId/recommendations
func (api *CatalogAPI) Recommendations(c *gin.Context) {
	products, err := api.service.Recommendations(c.Request.Context(), c.Param("productId"))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, catalogmapper.FromDomainProducts(products))
}

func parseLimit(c *gin.Context) (int, bool) {
	raw := c.Query("limit")
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		respondError(c, http.StatusBadRequest, err)
		return 0, false
	}
	return limit, true
}
