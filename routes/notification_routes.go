package routes

import (
	"net/http"
	"strconv"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/service"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationService service.NotificationService
}

func NewNotificationHandler(notificationService service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationService: notificationService}
}

func (h *NotificationHandler) SetupNotificationRoutes(r *gin.Engine) {
	r.POST("/notifications", h.Create)
	r.GET("/notifications", h.List)
}

func (h *NotificationHandler) Create(ctx *gin.Context) {
	var input model.Notification
	if !bindJSON(ctx, &input) {
		return
	}
	id, err := h.notificationService.Create(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

// List mendukung ?user_id= dan ?unread_only=true.
func (h *NotificationHandler) List(ctx *gin.Context) {
	unreadOnly := false
	if raw := ctx.Query("unread_only"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			respondError(ctx, &model.ValidationError{Fields: map[string]string{
				"unread_only": "harus bernilai true atau false",
			}})
			return
		}
		unreadOnly = v
	}

	notifications, err := h.notificationService.List(ctx.Request.Context(), ctx.Query("user_id"), unreadOnly)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, notifications)
}
