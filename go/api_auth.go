package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	accountmapper "github.com/Apurer/go-gin-storefront/internal/domains/accounts/adapters/http/mapper"
	accountports "github.com/Apurer/go-gin-storefront/internal/domains/accounts/ports"
)

// AuthAPI serves the mock login and signup forms.
type AuthAPI struct {
	service accountports.Service
}

func NewAuthAPI(service accountports.Service) AuthAPI {
	return AuthAPI{service: service}
}

// Post /v1/auth/login
func (api *AuthAPI) Login(c *gin.Context) {
	var payload accountmapper.Login
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	out, err := api.service.Login(c.Request.Context(), sessionID(c), accountmapper.ToLoginForm(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accountmapper.FromOutcome(out))
}

// Post /v1/auth/signup
func (api *AuthAPI) Signup(c *gin.Context) {
	var payload accountmapper.Signup
	if err := c.ShouldBindJSON(&payload); err != nil {
		respondError(c, http.StatusBadRequest, err)
		return
	}
	out, err := api.service.Signup(c.Request.Context(), sessionID(c), accountmapper.ToSignupForm(payload))
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, accountmapper.FromOutcome(out))
}

// Post /v1/auth/logout
func (api *AuthAPI) Logout(c *gin.Context) {
	if err := api.service.Logout(c.Request.Context(), sessionID(c)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, accountmapper.Session{Authenticated: false})
}
