package routes

import (
	"net/http"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/service"

	"github.com/gin-gonic/gin"
)

// MasterHandler melayani data master perusahaan dan periode.
type MasterHandler struct {
	masterService service.MasterService
}

func NewMasterHandler(masterService service.MasterService) *MasterHandler {
	return &MasterHandler{masterService: masterService}
}

func (h *MasterHandler) SetupMasterRoutes(r *gin.Engine) {
	r.POST("/companies", h.CreateCompany)
	r.GET("/companies", h.ListCompanies)
	r.POST("/periods", h.CreatePeriod)
	r.GET("/periods", h.ListPeriods)
}

func (h *MasterHandler) CreateCompany(ctx *gin.Context) {
	var input model.Company
	if !bindJSON(ctx, &input) {
		return
	}
	id, err := h.masterService.CreateCompany(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *MasterHandler) ListCompanies(ctx *gin.Context) {
	companies, err := h.masterService.ListCompanies(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, companies)
}

func (h *MasterHandler) CreatePeriod(ctx *gin.Context) {
	var input model.Period
	if !bindJSON(ctx, &input) {
		return
	}
	id, err := h.masterService.CreatePeriod(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

func (h *MasterHandler) ListPeriods(ctx *gin.Context) {
	periods, err := h.masterService.ListPeriods(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, periods)
}
