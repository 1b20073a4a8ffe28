package handlers

import (
	"net/http"
	"strconv"

	"field_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	usecase usecase.IAuditUseCase
}

func NewAuditHandler(uc usecase.IAuditUseCase) *AuditHandler {
	return &AuditHandler{usecase: uc}
}

// ListAudit godoc
// @Summary  Recent audit entries of the company, newest first
// @Tags     audit
// @Produce  json
// @Security Bearer
// @Param    limit query int false "Max entries"
// @Success  200 {array} entities.AuditLogEntry
// @Router   /audit [get]
func (h *AuditHandler) ListAudit(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			writeError(c, errInvalidRequest)
			return
		}
		limit = n
	}
	entries, err := h.usecase.List(c.Request.Context(), p, limit)
	if err != nil {
		if appErr := mapSharedError(err); appErr != nil {
			writeError(c, appErr)
			return
		}
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, entries)
}
