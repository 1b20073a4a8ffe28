package handlers

import (
	"errors"
	"net/http"

	request "field_estimator/internal/adapter/http/dto/request"
	response "field_estimator/internal/adapter/http/dto/response"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase"
	"field_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	usecase usecase.IAuthUseCase
}

func NewAuthHandler(uc usecase.IAuthUseCase) *AuthHandler {
	return &AuthHandler{usecase: uc}
}

// Login godoc
// @Summary Exchange username and password for a bearer token
// @Tags    auth
// @Accept  json
// @Produce json
// @Param   body body request.LoginRequest true "Credentials"
// @Success 200 {object} response.LoginResponse
// @Failure 401 {object} pkg.HTTPError
// @Router  /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.usecase.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		logger.FromContext(c.Request.Context()).Info("[auth][handler] login failed", zap.String("username", req.Username))
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromLogin(res))
}

// Me godoc
// @Summary  The authenticated user and membership
// @Tags     auth
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.MeResponse
// @Router   /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	u, m, err := h.usecase.Me(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapAuthError(err))
		return
	}
	c.JSON(http.StatusOK, response.MeResponse{User: response.FromUser(u), Membership: response.FromMember(m)})
}

func mapAuthError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidCredentials):
		return pkg.NewDomainErrorSimple("INVALID_CREDENTIALS", "Invalid username or password", http.StatusUnauthorized)
	case errors.Is(err, usecase.ErrUserNotFound):
		return pkg.NewDomainErrorSimple("USER_NOT_FOUND", "User not found", http.StatusNotFound)
	}
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	return internalError(err)
}
