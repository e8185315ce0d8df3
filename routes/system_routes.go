package routes

import (
	"net/http"

	"pkl-management-backend/app/service"

	"github.com/gin-gonic/gin"
)

type SystemHandler struct {
	systemService service.SystemService
}

func NewSystemHandler(systemService service.SystemService) *SystemHandler {
	return &SystemHandler{systemService: systemService}
}

func (h *SystemHandler) SetupSystemRoutes(r *gin.Engine) {
	r.GET("/schema", h.Schema)
	r.GET("/test", h.Test)
}

func (h *SystemHandler) Schema(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"collections": h.systemService.Collections()})
}

// Test memeriksa koneksi database. Selalu 200; status database ada di body.
func (h *SystemHandler) Test(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, h.systemService.Probe(ctx.Request.Context()))
}
