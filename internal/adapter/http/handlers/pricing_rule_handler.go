package handlers

import (
	"errors"
	"net/http"

	request "field_estimator/internal/adapter/http/dto/request"
	response "field_estimator/internal/adapter/http/dto/response"
	"field_estimator/internal/usecase"
	"field_estimator/internal/usecase/interfaces"
	"field_estimator/pkg"

	"github.com/gin-gonic/gin"
)

type PricingRuleHandler struct {
	usecase usecase.IPricingRuleUseCase
}

func NewPricingRuleHandler(uc usecase.IPricingRuleUseCase) *PricingRuleHandler {
	return &PricingRuleHandler{usecase: uc}
}

// ListRules godoc
// @Summary  List pricing rules
// @Tags     pricing
// @Produce  json
// @Security Bearer
// @Param    regionId query int false "Region filter"
// @Param    tradeId  query int false "Trade filter"
// @Success  200 {array} response.PricingRuleResponse
// @Router   /pricing-rules [get]
func (h *PricingRuleHandler) ListRules(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	regionID, ok := optionalUintQuery(c, "regionId")
	if !ok {
		return
	}
	tradeID, ok := optionalUintQuery(c, "tradeId")
	if !ok {
		return
	}
	rules, err := h.usecase.List(c.Request.Context(), p, interfaces.PricingRuleFilter{RegionID: regionID, TradeID: tradeID})
	if err != nil {
		writeError(c, mapPricingRuleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPricingRules(rules))
}

// CreateRule godoc
// @Summary  Create a pricing rule
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.CreatePricingRuleRequest true "Rule"
// @Success  201 {object} response.PricingRuleResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /pricing-rules [post]
func (h *PricingRuleHandler) CreateRule(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.CreatePricingRuleRequest
	if !bindJSON(c, &req) {
		return
	}
	rule, err := req.ToEntity()
	if err != nil {
		writeError(c, mapPricingRuleError(err))
		return
	}
	created, err := h.usecase.Create(c.Request.Context(), p, rule)
	if err != nil {
		writeError(c, mapPricingRuleError(err))
		return
	}
	c.JSON(http.StatusCreated, response.FromPricingRule(created))
}

// UpdateRule godoc
// @Summary  Partially update a pricing rule
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id   path int                              true "Rule ID"
// @Param    body body request.UpdatePricingRuleRequest true "Changes"
// @Success  200 {object} response.PricingRuleResponse
// @Router   /pricing-rules/{id} [put]
func (h *PricingRuleHandler) UpdateRule(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req request.UpdatePricingRuleRequest
	if !bindJSON(c, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		writeError(c, mapPricingRuleError(err))
		return
	}
	updated, err := h.usecase.Update(c.Request.Context(), p, id, patch)
	if err != nil {
		writeError(c, mapPricingRuleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromPricingRule(updated))
}

// Quote godoc
// @Summary  Resolve a rule and compute the unit price
// @Tags     pricing
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.QuoteRequest true "Quote input"
// @Success  200 {object} response.QuoteResponse
// @Failure  422 {object} pkg.HTTPError
// @Router   /pricing-rules/quote [post]
func (h *PricingRuleHandler) Quote(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.QuoteRequest
	if !bindJSON(c, &req) {
		return
	}
	q, err := h.usecase.Quote(c.Request.Context(), p, req.ToInput())
	if err != nil {
		writeError(c, mapPricingRuleError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromQuote(q))
}

func mapPricingRuleError(err error) *pkg.AppError {
	// Checked first: it wraps pricing.ErrConfiguration.
	if errors.Is(err, usecase.ErrRegionNotConfigured) {
		return pkg.NewDomainErrorSimple("REGION_NOT_CONFIGURED", "Company settings have no pricing region", http.StatusUnprocessableEntity)
	}
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrPricingRuleNotFound):
		return pkg.NewDomainErrorSimple("PRICING_RULE_NOT_FOUND", "Pricing rule not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPricingRuleExists):
		return pkg.NewDomainErrorSimple("PRICING_RULE_EXISTS", "A pricing rule already exists for this key", http.StatusConflict)
	case errors.Is(err, usecase.ErrInvalidPricingRule):
		return pkg.NewDomainError("INVALID_PRICING_RULE", err.Error(), err, http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
