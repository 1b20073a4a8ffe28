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

type InviteHandler struct {
	usecase usecase.IInviteUseCase
}

func NewInviteHandler(uc usecase.IInviteUseCase) *InviteHandler {
	return &InviteHandler{usecase: uc}
}

// CreateInvite godoc
// @Summary  Issue an invite link, e-mailing it when an address is given
// @Tags     invites
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.CreateInviteRequest true "Invite"
// @Success  201 {object} response.InviteResponse
// @Router   /invite/create [post]
func (h *InviteHandler) CreateInvite(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.CreateInviteRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.usecase.Create(c.Request.Context(), p, req.ToInput())
	if err != nil {
		writeError(c, mapInviteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromInviteResult(res))
}

// ListInvites godoc
// @Summary  List the company's invites
// @Tags     invites
// @Produce  json
// @Security Bearer
// @Success  200 {array} response.InviteResponse
// @Router   /invite/list [get]
func (h *InviteHandler) ListInvites(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	invites, err := h.usecase.List(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapInviteError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromInvites(invites))
}

// AcceptInvite godoc
// @Summary Redeem an invite, creating the user and signing them in
// @Tags    invites
// @Accept  json
// @Produce json
// @Param   body body request.AcceptInviteRequest true "Invite token and credentials"
// @Success 201 {object} response.LoginResponse
// @Failure 410 {object} pkg.HTTPError
// @Router  /invite/accept [post]
func (h *InviteHandler) AcceptInvite(c *gin.Context) {
	var req request.AcceptInviteRequest
	if !bindJSON(c, &req) {
		return
	}
	res, err := h.usecase.Accept(c.Request.Context(), req.ToInput())
	if err != nil {
		writeError(c, mapInviteError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromLogin(res))
}

func mapInviteError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInviteNotFound):
		return pkg.NewDomainErrorSimple("INVITE_NOT_FOUND", "Invite not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInviteExpired):
		return pkg.NewDomainErrorSimple("INVITE_EXPIRED", "Invite expired", http.StatusGone)
	case errors.Is(err, usecase.ErrInviteUsed):
		return pkg.NewDomainErrorSimple("INVITE_USED", "Invite already used", http.StatusGone)
	case errors.Is(err, usecase.ErrUsernameTaken):
		return pkg.NewDomainErrorSimple("USERNAME_TAKEN", "Username already taken", http.StatusConflict)
	case errors.Is(err, usecase.ErrUsernameReserved):
		return pkg.NewDomainErrorSimple("USERNAME_RESERVED", "Username is reserved", http.StatusConflict)
	case errors.Is(err, usecase.ErrPasswordTooShort):
		return pkg.NewDomainErrorSimple("PASSWORD_TOO_SHORT", "Password must have at least 4 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidInvite):
		return pkg.NewDomainError("INVALID_INVITE", err.Error(), err, http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
