package config

import (
	"strconv"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := FromViper(viper.New())
	require.NoError(t, err)

	assert.True(t, cfg.IsDev())
	assert.Equal(t, "8080", cfg.APIPort)
	assert.Equal(t, 10*time.Minute, cfg.Redis.PricingCacheTTL)
	assert.Equal(t, "", cfg.Redis.Addr())
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiration)
	assert.NotEmpty(t, cfg.JWT.Secret)
	assert.Equal(t, "USD", cfg.Payments.Currency)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.SMTP.Enabled())
	assert.Equal(t, "host=localhost user=postgres password=postgres dbname=field_estimator port=5432 sslmode=disable", cfg.Database.DSN())
}

func TestFromViper_Overrides(t *testing.T) {
	v := viper.New()
	v.Set("RUN_MODE", "PRODUCTION")
	v.Set("JWT_SECRET", "s3cret")
	v.Set("REDIS_HOST", "cache")
	v.Set("PRICING_CACHE_TTL", "30s")
	v.Set("CURRENCY", "brl")
	v.Set("CORS_ALLOWED_ORIGINS", "https://a.example.com, ,https://b.example.com")
	v.Set("SMTP_HOST", "smtp.example.com")
	v.Set("SMTP_FROM", "noreply@example.com")

	cfg, err := FromViper(v)
	require.NoError(t, err)

	assert.False(t, cfg.IsDev())
	assert.Equal(t, "cache:6379", cfg.Redis.Addr())
	assert.Equal(t, 30*time.Second, cfg.Redis.PricingCacheTTL)
	assert.Equal(t, "BRL", cfg.Payments.Currency)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSAllowedOrigins)
	assert.True(t, cfg.SMTP.Enabled())
}

func TestFromViper_Rejects(t *testing.T) {
	t.Run("production without secret", func(t *testing.T) {
		v := viper.New()
		v.Set("RUN_MODE", "production")
		_, err := FromViper(v)
		assert.Error(t, err)
	})

	t.Run("unknown mode", func(t *testing.T) {
		v := viper.New()
		v.Set("RUN_MODE", "staging")
		_, err := FromViper(v)
		assert.Error(t, err)
	})

	t.Run("non positive expiration", func(t *testing.T) {
		v := viper.New()
		v.Set("JWT_EXPIRATION_MINUTES", 0)
		_, err := FromViper(v)
		assert.Error(t, err)
	})

	for _, origins := range []string{"", " , "} {
		t.Run("empty cors origins "+strconv.Quote(origins), func(t *testing.T) {
			v := viper.New()
			v.Set("CORS_ALLOWED_ORIGINS", origins)
			_, err := FromViper(v)
			assert.ErrorContains(t, err, "CORS_ALLOWED_ORIGINS")
		})
	}
}
