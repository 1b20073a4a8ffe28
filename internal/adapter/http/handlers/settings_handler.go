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

type SettingsHandler struct {
	usecase usecase.ISettingsUseCase
}

func NewSettingsHandler(uc usecase.ISettingsUseCase) *SettingsHandler {
	return &SettingsHandler{usecase: uc}
}

// GetSettings godoc
// @Summary  Company settings, or the defaults when none were saved
// @Tags     settings
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.SettingsResponse
// @Router   /settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	s, err := h.usecase.Get(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(s))
}

// SaveSettings godoc
// @Summary  Update company settings
// @Tags     settings
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.SettingsRequest true "Settings"
// @Success  200 {object} response.SettingsResponse
// @Router   /settings [put]
func (h *SettingsHandler) SaveSettings(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.SettingsRequest
	if !bindJSON(c, &req) {
		return
	}
	s, err := h.usecase.Save(c.Request.Context(), p, req.ToInput())
	if err != nil {
		writeError(c, mapSettingsError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromSettings(s))
}

func mapSettingsError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	if errors.Is(err, usecase.ErrInvalidSettings) {
		return pkg.NewDomainError("INVALID_SETTINGS", err.Error(), err, http.StatusBadRequest)
	}
	return internalError(err)
}
