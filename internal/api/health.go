package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// HomeMessage is the plaintext body of GET /.
const HomeMessage = "Stock API (Real-time Optimized) is running!"

// HealthHandler provides liveness endpoints for the service.
//
// Responsibilities:
//   - /: plaintext banner, used by simple uptime checks.
//   - /healthz: JSON liveness probe.
//
// There is no readiness probe: the service holds no connections of its own and
// upstream outages only degrade individual prices to null.
type HealthHandler struct{}

// NewHealthHandler constructs a HealthHandler.
func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

// Register mounts the health endpoints into the provided Gin router.
func (h *HealthHandler) Register(r *gin.Engine) {
	// Banner
	// @Summary      Service banner
	// @Description  Returns a fixed confirmation string
	// @Tags         health
	// @Produce      plain
	// @Success      200  {string}  string
	// @Router       / [get]
	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, HomeMessage)
	})

	// Liveness probe
	// @Summary      Liveness probe
	// @Description  Always returns OK if the service is running
	// @Tags         health
	// @Produce      json
	// @Success      200  {object}  map[string]string
	// @Router       /healthz [get]
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
