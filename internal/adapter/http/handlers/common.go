package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"field_estimator/internal/adapter/http/middleware"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase"
	"field_estimator/pkg"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

var (
	errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	errUnauthorized   = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
)

// principal returns the authenticated caller, writing a 401 when the
// route was mounted without the auth middleware.
func principal(c *gin.Context) (entities.Principal, bool) {
	p, ok := middleware.PrincipalFrom(c)
	if !ok {
		writeError(c, errUnauthorized)
	}
	return p, ok
}

// uintParam parses a positive id path parameter, writing a 400 on failure.
func uintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+name, http.StatusBadRequest))
		return 0, false
	}
	return uint(v), true
}

// optionalUintQuery returns nil for an absent query parameter.
func optionalUintQuery(c *gin.Context, name string) (*uint, bool) {
	raw, ok := c.GetQuery(name)
	if !ok || raw == "" {
		return nil, true
	}
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || v == 0 {
		writeError(c, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid "+name, http.StatusBadRequest))
		return nil, false
	}
	id := uint(v)
	return &id, true
}

func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		logger.FromContext(c.Request.Context()).Info("[http][handler] invalid body", zap.Error(err))
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPErrorWithField(fieldErrs[0].Field()))
			return false
		}
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest))
		return false
	}
	return true
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("[http][handler] request failed",
			zap.String("code", appErr.Code), zap.Error(appErr.Err))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapSharedError covers errors any use case can return. It yields nil for
// anything it does not recognise.
func mapSharedError(err error) *pkg.AppError {
	var cfgErr *pricing.ConfigurationError
	switch {
	case errors.Is(err, usecase.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Permission denied", http.StatusForbidden)
	case errors.Is(err, usecase.ErrNotCompanyUser):
		return pkg.NewDomainErrorSimple("NOT_COMPANY_USER", "User is not an active member of the company", http.StatusForbidden)
	case errors.Is(err, pricing.ErrRuleNotFound):
		return pkg.NewDomainError("PRICING_RULE_NOT_FOUND", "No pricing rule matches this region, trade and unit", err, http.StatusUnprocessableEntity)
	case errors.As(err, &cfgErr):
		return pkg.NewDomainError("PRICING_CONFIGURATION_ERROR", cfgErr.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrConfiguration):
		return pkg.NewDomainError("PRICING_CONFIGURATION_ERROR", err.Error(), err, http.StatusUnprocessableEntity)
	case errors.Is(err, pricing.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidJobTransition):
		return pkg.NewDomainError("INVALID_STATUS_TRANSITION", err.Error(), err, http.StatusConflict)
	case errors.Is(err, entities.ErrInvalidJobStatus),
		errors.Is(err, entities.ErrInvalidPermissions),
		errors.Is(err, entities.ErrInvalidRole),
		errors.Is(err, entities.ErrInvalidLanguage),
		errors.Is(err, entities.ErrInvalidUnit),
		errors.Is(err, entities.ErrInvalidMaterialTier),
		errors.Is(err, entities.ErrInvalidComplexityLevel):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	}
	return nil
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}
