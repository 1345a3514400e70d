package controllers

import (
	"net/http"

	"github.com/AndersonMairnck/frontFynanceo/repository"
	"github.com/AndersonMairnck/frontFynanceo/utils"

	"github.com/gin-gonic/gin"
)

type HealthController struct{ API *repository.APIClient }

func NewHealthController(api *repository.APIClient) *HealthController {
	return &HealthController{API: api}
}

// GET /health
func (h *HealthController) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GET /api/health/upstream
func (h *HealthController) Upstream(c *gin.Context) {
	if !h.API.Ping(utils.RequestContext(c)) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ok": false, "error": "API não está respondendo", "baseUrl": h.API.BaseURL})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "baseUrl": h.API.BaseURL})
}
