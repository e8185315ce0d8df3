package routes

import (
	"net/http"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/service"

	"github.com/gin-gonic/gin"
)

// ActivityHandler melayani logbook harian dan presensi.
type ActivityHandler struct {
	activityService service.ActivityService
}

func NewActivityHandler(activityService service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

func (h *ActivityHandler) SetupActivityRoutes(r *gin.Engine) {
	r.POST("/logs", h.CreateLog)
	r.GET("/logs", h.ListLogs)
	r.POST("/attendance", h.CreateAttendance)
	r.GET("/attendance", h.ListAttendance)
}

func (h *ActivityHandler) CreateLog(ctx *gin.Context) {
	var input model.Log
	if !bindJSON(ctx, &input) {
		return
	}
	id, err := h.activityService.CreateLog(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *ActivityHandler) ListLogs(ctx *gin.Context) {
	logs, err := h.activityService.ListLogs(ctx.Request.Context(), ctx.Query("placement_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, logs)
}

func (h *ActivityHandler) CreateAttendance(ctx *gin.Context) {
	var input model.Attendance
	if !bindJSON(ctx, &input) {
		return
	}
	id, err := h.activityService.CreateAttendance(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *ActivityHandler) ListAttendance(ctx *gin.Context) {
	records, err := h.activityService.ListAttendance(ctx.Request.Context(), ctx.Query("placement_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, records)
}
