package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims is the bearer token payload. The subject is the user id.
type Claims struct {
	CompanyID  uint   `json:"companyId"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	GlobalRole string `json:"globalRole,omitempty"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and validates HS256 tokens with a shared secret.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*TokenIssuer)(nil)

func NewTokenIssuer(secret string, ttl time.Duration, issuer string) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, issuer: issuer, now: time.Now}
}

func (t *TokenIssuer) Issue(p entities.Principal) (string, time.Time, error) {
	now := t.now().UTC()
	expiresAt := now.Add(t.ttl)
	claims := Claims{
		CompanyID:  p.CompanyID,
		Username:   p.Username,
		Role:       string(p.Role),
		GlobalRole: p.GlobalRole,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(p.UserID), 10),
			Issuer:    t.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// Parse validates the token and returns the principal it carries.
func (t *TokenIssuer) Parse(token string) (entities.Principal, error) {
	var claims Claims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(t.now),
	)
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return entities.Principal{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	return entities.Principal{
		UserID:     uint(userID),
		CompanyID:  claims.CompanyID,
		Username:   claims.Username,
		Role:       entities.Role(claims.Role),
		GlobalRole: claims.GlobalRole,
	}, nil
}
