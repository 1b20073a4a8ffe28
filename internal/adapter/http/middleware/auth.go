package middleware

import (
	"net/http"
	"strings"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const ContextPrincipal = "principal"

// TokenParser validates a bearer token and returns the caller it names.
type TokenParser interface {
	Parse(token string) (entities.Principal, error)
}

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)

// Auth requires a valid "Bearer <jwt>" header and stores the principal on
// the gin context.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		log := logger.FromContext(c.Request.Context())

		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || strings.TrimSpace(token) == "" {
			log.Warn("[http][auth] missing bearer token")
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		principal, err := parser.Parse(strings.TrimSpace(token))
		if err != nil {
			log.Warn("[http][auth] invalid token", zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextPrincipal, principal)
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(),
			log.With(zap.Uint("user_id", principal.UserID), zap.Uint("company_id", principal.CompanyID))))
		c.Next()
	}
}

// PrincipalFrom returns the caller stored by Auth.
func PrincipalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(ContextPrincipal)
	if !ok {
		return entities.Principal{}, false
	}
	p, ok := v.(entities.Principal)
	return p, ok
}
