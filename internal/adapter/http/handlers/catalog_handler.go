package handlers

import (
	"net/http"

	response "field_estimator/internal/adapter/http/dto/response"
	"field_estimator/internal/usecase"
	"field_estimator/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves trades, specialties, regions and company services.
type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// ListTrades godoc
// @Summary List trades
// @Tags    catalog
// @Produce json
// @Success 200 {array} entities.Trade
// @Router  /trades [get]
func (h *CatalogHandler) ListTrades(c *gin.Context) {
	trades, err := h.usecase.ListTrades(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, trades)
}

// ListSpecialties serves both /specialties?tradeId= and
// /trades/:tradeId/specialties.
func (h *CatalogHandler) ListSpecialties(c *gin.Context) {
	tradeID, ok := tradeFilter(c)
	if !ok {
		return
	}
	specialties, err := h.usecase.ListSpecialties(c.Request.Context(), tradeID)
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, specialties)
}

func (h *CatalogHandler) ListRegions(c *gin.Context) {
	regions, err := h.usecase.ListRegions(c.Request.Context())
	if err != nil {
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, regions)
}

// ListServices serves /services, /trades/:tradeId/services and
// /specialties/:specialtyId/services.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	tradeID, ok := tradeFilter(c)
	if !ok {
		return
	}
	filter := interfaces.ServiceFilter{TradeID: tradeID}
	if c.Param("specialtyId") != "" {
		id, ok := uintParam(c, "specialtyId")
		if !ok {
			return
		}
		filter.SpecialtyID = &id
	}

	services, err := h.usecase.ListServices(c.Request.Context(), p, filter)
	if err != nil {
		if appErr := mapSharedError(err); appErr != nil {
			writeError(c, appErr)
			return
		}
		writeError(c, internalError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromServices(services))
}

// tradeFilter reads the trade from the path, falling back to ?tradeId=.
func tradeFilter(c *gin.Context) (*uint, bool) {
	if c.Param("tradeId") != "" {
		id, ok := uintParam(c, "tradeId")
		return &id, ok
	}
	return optionalUintQuery(c, "tradeId")
}
