package routes

import (
	"errors"
	"net/http"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"
	"pkl-management-backend/app/service"
	"pkl-management-backend/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PlacementHandler melayani pengajuan dan perubahan status penempatan PKL.
type PlacementHandler struct {
	placementService service.PlacementService
}

func NewPlacementHandler(placementService service.PlacementService) *PlacementHandler {
	return &PlacementHandler{placementService: placementService}
}

func (h *PlacementHandler) SetupPlacementRoutes(r *gin.Engine) {
	group := r.Group("/placements")
	{
		group.POST("", h.Create)
		group.GET("", h.List)
		group.PATCH("/:id", h.Update)
	}
}

func (h *PlacementHandler) Create(ctx *gin.Context) {
	var input model.Placement
	if !bindJSON(ctx, &input) {
		return
	}
	id, err := h.placementService.Create(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

// List mendukung filter ?student_id= dan ?status=.
func (h *PlacementHandler) List(ctx *gin.Context) {
	placements, err := h.placementService.List(ctx.Request.Context(), service.PlacementFilter{
		StudentID: ctx.Query("student_id"),
		Status:    ctx.Query("status"),
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, placements)
}

// Update menerapkan perubahan parsial. Respon {"updated": 1} bila dokumen berubah, 0 bila tidak.
func (h *PlacementHandler) Update(ctx *gin.Context) {
	id := ctx.Param("id")
	if !primitive.IsValidObjectID(id) {
		respondError(ctx, repository.ErrInvalidID)
		return
	}

	var input model.PlacementUpdate
	if !bindJSON(ctx, &input) {
		return
	}

	res, err := h.placementService.Update(ctx.Request.Context(), id, input)
	if errors.Is(err, repository.ErrNotFound) {
		ctx.JSON(http.StatusNotFound, utils.BuildResponseFailed("Penempatan tidak ditemukan", nil))
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	updated := 0
	if res.Modified {
		updated = 1
	}
	ctx.JSON(http.StatusOK, gin.H{"updated": updated})
}
