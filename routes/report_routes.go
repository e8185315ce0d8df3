package routes

import (
	"net/http"

	"pkl-management-backend/app/repository"
	"pkl-management-backend/app/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	reportService service.ReportService
}

func NewReportHandler(reportService service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) SetupReportRoutes(r *gin.Engine) {
	// GET /reports/placements?period_id=&company_id=
	r.GET("/reports/placements", h.PlacementStatistics)
}

func (h *ReportHandler) PlacementStatistics(ctx *gin.Context) {
	report, err := h.reportService.PlacementStatistics(ctx.Request.Context(), repository.ReportFilter{
		PeriodID:  ctx.Query("period_id"),
		CompanyID: ctx.Query("company_id"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, report)
}
