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

// MemberHandler administers company memberships. Every route needs
// canManageUsers, which the use case enforces.
type MemberHandler struct {
	usecase usecase.IMemberUseCase
}

func NewMemberHandler(uc usecase.IMemberUseCase) *MemberHandler {
	return &MemberHandler{usecase: uc}
}

// ListMembers godoc
// @Summary  List company members
// @Tags     members
// @Produce  json
// @Security Bearer
// @Success  200 {array} response.MemberResponse
// @Router   /admin/users [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	members, err := h.usecase.List(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMembers(members))
}

// UpdatePermissions godoc
// @Summary  Replace a member's company permissions
// @Tags     members
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    userId path int                        true "User ID"
// @Param    body   body request.PermissionsRequest true "Permissions"
// @Success  200 {object} response.MemberResponse
// @Router   /admin/users/{userId}/permissions [patch]
func (h *MemberHandler) UpdatePermissions(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	var req request.PermissionsRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.usecase.UpdatePermissions(c.Request.Context(), p, userID, req.ToEntity())
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMember(m))
}

// SetActive godoc
// @Summary  Activate or deactivate a member
// @Tags     members
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    userId path int                         true "User ID"
// @Param    body   body request.MemberActiveRequest true "Active flag"
// @Success  200 {object} response.MemberResponse
// @Router   /employees/{userId}/active [put]
func (h *MemberHandler) SetActive(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	var req request.MemberActiveRequest
	if !bindJSON(c, &req) {
		return
	}
	m, err := h.usecase.SetActive(c.Request.Context(), p, userID, *req.IsActive)
	if err != nil {
		writeError(c, mapMemberError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromMember(m))
}

func mapMemberError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrMemberNotFound):
		return pkg.NewDomainErrorSimple("MEMBER_NOT_FOUND", "Member not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOwnerImmutable):
		return pkg.NewDomainErrorSimple("OWNER_IMMUTABLE", "The company owner cannot be modified", http.StatusConflict)
	case errors.Is(err, usecase.ErrSelfDeactivate):
		return pkg.NewDomainErrorSimple("SELF_DEACTIVATE", "Members cannot deactivate themselves", http.StatusConflict)
	case errors.Is(err, usecase.ErrSelfPermissions):
		return pkg.NewDomainErrorSimple("SELF_PERMISSIONS", "Members cannot change their own permissions", http.StatusConflict)
	default:
		return internalError(err)
	}
}
