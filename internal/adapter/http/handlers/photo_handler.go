package handlers

import (
	"errors"
	"net/http"

	request "field_estimator/internal/adapter/http/dto/request"
	response "field_estimator/internal/adapter/http/dto/response"
	"field_estimator/internal/usecase"
	"field_estimator/pkg"

	"github.com/gin-gonic/gin"
)

type PhotoHandler struct {
	usecase usecase.IPhotoUseCase
}

func NewPhotoHandler(uc usecase.IPhotoUseCase) *PhotoHandler {
	return &PhotoHandler{usecase: uc}
}

// UploadPhoto godoc
// @Summary  Attach a photo URL, optionally to a job
// @Tags     photos
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.PhotoRequest true "Photo"
// @Success  201 {object} response.PhotoResponse
// @Router   /estimate-photos [post]
func (h *PhotoHandler) UploadPhoto(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.PhotoRequest
	if !bindJSON(c, &req) {
		return
	}
	photo, err := h.usecase.Upload(c.Request.Context(), p, req.ToInput())
	if err != nil {
		writeError(c, mapPhotoError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPhoto(photo))
}

// ListJobPhotos godoc
// @Summary  Photos attached to a job
// @Tags     photos
// @Produce  json
// @Security Bearer
// @Param    id path int true "Job ID"
// @Success  200 {array} response.PhotoResponse
// @Router   /jobs/{id}/photos [get]
func (h *PhotoHandler) ListJobPhotos(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	jobID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	photos, err := h.usecase.ListByJob(c.Request.Context(), p, jobID)
	if err != nil {
		writeError(c, mapPhotoError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPhotos(photos))
}

func mapPhotoError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidPhoto):
		return pkg.NewDomainError("INVALID_PHOTO", err.Error(), err, http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
