package storefrontserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HealthAPI answers liveness probes.
type HealthAPI struct{}

// Get /healthz
func (HealthAPI) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
