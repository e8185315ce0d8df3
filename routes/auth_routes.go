package routes

import (
	"errors"
	"net/http"
	"time"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/service"
	"pkl-management-backend/middleware"
	"pkl-management-backend/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler menangani register, login, dan profil user yang sedang login.
type AuthHandler struct {
	authService service.AuthService
	secret      []byte
	tokenTTL    time.Duration
}

func NewAuthHandler(authService service.AuthService, secret []byte, tokenTTL time.Duration) *AuthHandler {
	return &AuthHandler{authService: authService, secret: secret, tokenTTL: tokenTTL}
}

func (h *AuthHandler) SetupAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
		authGroup.GET("/me", middleware.AuthMiddleware(h.secret), h.Me)
	}
}

// Register mendaftarkan user baru. Respon: {"id": "..."}.
func (h *AuthHandler) Register(ctx *gin.Context) {
	var input model.User
	if !bindJSON(ctx, &input) {
		return
	}

	id, err := h.authService.Register(ctx.Request.Context(), &input)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"id": id})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login mencari akun berdasarkan email lalu menerbitkan token.
// Password wajib dikirim tetapi belum dicocokkan dengan hash.
func (h *AuthHandler) Login(ctx *gin.Context) {
	var input loginRequest
	if !bindJSON(ctx, &input) {
		return
	}

	user, err := h.authService.Login(ctx.Request.Context(), input.Email)
	if errors.Is(err, service.ErrUserNotFound) {
		ctx.JSON(http.StatusUnauthorized, utils.BuildResponseFailed(service.ErrUserNotFound.Error(), nil))
		return
	}
	if err != nil {
		respondError(ctx, err)
		return
	}

	token, err := utils.GenerateToken(h.secret, h.tokenTTL, user.ID.Hex(), string(user.Role))
	if err != nil {
		respondError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"message": "Login berhasil",
		"user": gin.H{
			"id":   user.ID.Hex(),
			"name": user.Name,
			"role": user.Role,
		},
		"token": token,
	})
}

// Me mengembalikan user pemilik token.
func (h *AuthHandler) Me(ctx *gin.Context) {
	user, err := h.authService.FindByID(ctx.Request.Context(), ctx.GetString("userID"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"user": user.View()})
}
