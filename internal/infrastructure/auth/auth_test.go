package auth

import (
	"errors"
	"testing"
	"time"

	"field_estimator/internal/domain/entities"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", time.Hour, "field-estimator")
	p := entities.Principal{UserID: 7, CompanyID: 10, Username: "ana", Role: entities.RoleAdmin, GlobalRole: "user"}

	token, expiresAt, err := issuer.Issue(p)
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	got, err := issuer.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, p, got)
}

func TestTokenIssuer_Rejects(t *testing.T) {
	issuer := NewTokenIssuer("s3cret", time.Hour, "field-estimator")
	token, _, err := issuer.Issue(entities.Principal{UserID: 7, CompanyID: 10, Role: entities.RoleUser})
	require.NoError(t, err)

	t.Run("wrong secret", func(t *testing.T) {
		_, err := NewTokenIssuer("other", time.Hour, "").Parse(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("expired", func(t *testing.T) {
		late := NewTokenIssuer("s3cret", time.Hour, "")
		late.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		_, err := late.Parse(token)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := issuer.Parse("not-a-token")
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("other algorithm", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{Subject: "7", ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
		unsigned, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = issuer.Parse(unsigned)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := Claims{RegisteredClaims: jwt.RegisteredClaims{ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour))}}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
		require.NoError(t, err)
		_, err = issuer.Parse(signed)
		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}

func TestBcryptHasher(t *testing.T) {
	h := NewBcryptHasher(bcrypt.MinCost)
	hash, err := h.Hash("painter-pass")
	require.NoError(t, err)
	assert.NoError(t, h.Compare(hash, "painter-pass"))
	assert.Error(t, h.Compare(hash, "wrong"))

	assert.Equal(t, DefaultBcryptCost, NewBcryptHasher(0).cost)
}
