package routes

import (
	"errors"
	"log"
	"net/http"

	"pkl-management-backend/app/model"
	"pkl-management-backend/app/repository"
	"pkl-management-backend/app/service"
	"pkl-management-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondError memetakan error dari service/repository ke status HTTP dan amplop gagal.
func respondError(c *gin.Context, err error) {
	var verr *model.ValidationError
	var berr *repository.BackendError

	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusUnprocessableEntity, utils.BuildResponseFailed("Validasi gagal", verr.Fields))
	case errors.Is(err, service.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, utils.BuildResponseFailed(service.ErrDuplicateEmail.Error(), nil))
	case errors.Is(err, repository.ErrInvalidID):
		c.JSON(http.StatusBadRequest, utils.BuildResponseFailed(repository.ErrInvalidID.Error(), nil))
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, utils.BuildResponseFailed("Data tidak ditemukan", nil))
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, utils.BuildResponseFailed(service.ErrUserNotFound.Error(), nil))
	case errors.Is(err, repository.ErrStorageUnavailable):
		c.JSON(http.StatusInternalServerError, utils.BuildResponseFailed("Database not available", nil))
	case errors.As(err, &berr):
		log.Printf("[ERR] %s %s: %v", c.Request.Method, c.Request.URL.Path, berr)
		c.JSON(http.StatusInternalServerError, utils.BuildResponseFailed("Gagal mengakses database",
			repository.Truncate(berr.Cause.Error(), 50)))
	default:
		log.Printf("[ERR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.JSON(http.StatusInternalServerError, utils.BuildResponseFailed("Terjadi kesalahan server",
			repository.Truncate(err.Error(), 50)))
	}
}

// bindJSON mengisi dst dari body JSON. Body rusak atau gagal validasi langsung dijawab 422.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		respondError(c, model.NewValidationError(err))
		return false
	}
	return true
}
