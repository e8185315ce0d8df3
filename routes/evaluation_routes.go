package routes

import (
	"net/http"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/service"

	"github.com/gin-gonic/gin"
)

type EvaluationHandler struct {
	evaluationService service.EvaluationService
}

func NewEvaluationHandler(evaluationService service.EvaluationService) *EvaluationHandler {
	return &EvaluationHandler{evaluationService: evaluationService}
}

func (h *EvaluationHandler) SetupEvaluationRoutes(r *gin.Engine) {
	r.POST("/evaluations", h.Create)
	r.GET("/evaluations", h.List)
}

// Create menyimpan penilaian dan mengembalikan total hasil hitungan server.
func (h *EvaluationHandler) Create(ctx *gin.Context) {
	var input model.Evaluation
	if !bindJSON(ctx, &input) {
		return
	}
	id, total, err := h.evaluationService.Create(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id, "total": total})
}

func (h *EvaluationHandler) List(ctx *gin.Context) {
	evaluations, err := h.evaluationService.List(ctx.Request.Context(), ctx.Query("placement_id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, evaluations)
}
