package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	ModeDev        = "dev"
	ModeProduction = "production"
)

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN returns the libpq keyword/value connection string.
func (d DatabaseConfig) DSN() string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		d.Host, d.User, d.Password, d.Name, d.Port, d.SSLMode)
}

type RedisConfig struct {
	Host            string
	Port            string
	Password        string
	DB              int
	PricingCacheTTL time.Duration
}

// Addr returns host:port, or "" when redis is not configured.
func (r RedisConfig) Addr() string {
	if r.Host == "" {
		return ""
	}
	return r.Host + ":" + r.Port
}

type DynamoConfig struct {
	Region           string
	Endpoint         string
	AccessKeyID      string
	SecretAccessKey  string
	AuditLogTable    string
	JobPaymentsTable string
}

type JWTConfig struct {
	Secret     string
	Expiration time.Duration
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Enabled reports whether invite e-mails can be sent.
func (s SMTPConfig) Enabled() bool {
	return s.Host != "" && s.From != ""
}

type PaymentsConfig struct {
	AccessToken string
	Mock        bool
	Currency    string
}

type AppConfig struct {
	Mode               string
	ServiceName        string
	APIPort            string
	LogLevel           string
	Database           DatabaseConfig
	Redis              RedisConfig
	Dynamo             DynamoConfig
	JWT                JWTConfig
	SMTP               SMTPConfig
	Payments           PaymentsConfig
	InviteBaseURL      string
	CORSAllowedOrigins []string
}

func (c AppConfig) IsDev() bool {
	return c.Mode != ModeProduction
}

var defaults = map[string]any{
	"RUN_MODE":                 ModeDev,
	"SERVICE_NAME":             "field-estimator",
	"API_PORT":                 "8080",
	"LOG_LEVEL":                "info",
	"DB_HOSTNAME":              "localhost",
	"DB_PORT":                  "5432",
	"DB_USERNAME":              "postgres",
	"DB_PASSWORD":              "postgres",
	"DB_NAME":                  "field_estimator",
	"DB_SSL_MODE":              "disable",
	"REDIS_HOST":               "",
	"REDIS_PORT":               "6379",
	"REDIS_PASSWORD":           "",
	"REDIS_DB":                 0,
	"PRICING_CACHE_TTL":        "10m",
	"AWS_REGION":               "us-east-1",
	"AWS_ACCESS_KEY_ID":        "local",
	"AWS_SECRET_ACCESS_KEY":    "local",
	"DYNAMODB_ENDPOINT":        "",
	"AUDIT_LOG_TABLE":          "audit_log",
	"JOB_PAYMENTS_TABLE":       "job_payments",
	"JWT_SECRET":               "",
	"JWT_EXPIRATION_MINUTES":   720,
	"SMTP_HOST":                "",
	"SMTP_PORT":                587,
	"SMTP_USERNAME":            "",
	"SMTP_PASSWORD":            "",
	"SMTP_FROM":                "",
	"INVITE_BASE_URL":          "http://localhost:5173",
	"MERCADOPAGO_ACCESS_TOKEN": "",
	"PAYMENT_GATEWAY_MOCK":     false,
	"CURRENCY":                 "USD",
	"CORS_ALLOWED_ORIGINS":     "http://localhost:5173",
}

// Load reads configuration from the environment, optionally layered over
// the file named by CONFIG_FILE.
func Load() (AppConfig, error) {
	v := viper.New()
	v.AutomaticEnv()
	if file := v.GetString("CONFIG_FILE"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return AppConfig{}, fmt.Errorf("reading config file %s: %w", file, err)
		}
	}
	return FromViper(v)
}

// FromViper builds an AppConfig from an already populated viper instance.
func FromViper(v *viper.Viper) (AppConfig, error) {
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	cfg := AppConfig{
		Mode:        strings.ToLower(v.GetString("RUN_MODE")),
		ServiceName: v.GetString("SERVICE_NAME"),
		APIPort:     v.GetString("API_PORT"),
		LogLevel:    v.GetString("LOG_LEVEL"),
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOSTNAME"),
			Port:     v.GetString("DB_PORT"),
			User:     v.GetString("DB_USERNAME"),
			Password: v.GetString("DB_PASSWORD"),
			Name:     v.GetString("DB_NAME"),
			SSLMode:  v.GetString("DB_SSL_MODE"),
		},
		Redis: RedisConfig{
			Host:            v.GetString("REDIS_HOST"),
			Port:            v.GetString("REDIS_PORT"),
			Password:        v.GetString("REDIS_PASSWORD"),
			DB:              v.GetInt("REDIS_DB"),
			PricingCacheTTL: v.GetDuration("PRICING_CACHE_TTL"),
		},
		Dynamo: DynamoConfig{
			Region:           v.GetString("AWS_REGION"),
			Endpoint:         v.GetString("DYNAMODB_ENDPOINT"),
			AccessKeyID:      v.GetString("AWS_ACCESS_KEY_ID"),
			SecretAccessKey:  v.GetString("AWS_SECRET_ACCESS_KEY"),
			AuditLogTable:    v.GetString("AUDIT_LOG_TABLE"),
			JobPaymentsTable: v.GetString("JOB_PAYMENTS_TABLE"),
		},
		JWT: JWTConfig{
			Secret:     v.GetString("JWT_SECRET"),
			Expiration: time.Duration(v.GetInt("JWT_EXPIRATION_MINUTES")) * time.Minute,
		},
		SMTP: SMTPConfig{
			Host:     v.GetString("SMTP_HOST"),
			Port:     v.GetInt("SMTP_PORT"),
			Username: v.GetString("SMTP_USERNAME"),
			Password: v.GetString("SMTP_PASSWORD"),
			From:     v.GetString("SMTP_FROM"),
		},
		Payments: PaymentsConfig{
			AccessToken: v.GetString("MERCADOPAGO_ACCESS_TOKEN"),
			Mock:        v.GetBool("PAYMENT_GATEWAY_MOCK"),
			Currency:    strings.ToUpper(v.GetString("CURRENCY")),
		},
		InviteBaseURL:      v.GetString("INVITE_BASE_URL"),
		CORSAllowedOrigins: splitList(v.GetString("CORS_ALLOWED_ORIGINS")),
	}

	if cfg.Mode != ModeDev && cfg.Mode != ModeProduction {
		return AppConfig{}, fmt.Errorf("RUN_MODE must be %q or %q, got %q", ModeDev, ModeProduction, cfg.Mode)
	}
	if cfg.JWT.Secret == "" {
		if !cfg.IsDev() {
			return AppConfig{}, fmt.Errorf("JWT_SECRET must be set in production")
		}
		cfg.JWT.Secret = "dev-secret-change-me"
	}
	if cfg.JWT.Expiration <= 0 {
		return AppConfig{}, fmt.Errorf("JWT_EXPIRATION_MINUTES must be positive")
	}
	// gin-contrib/cors panics on an empty allow-list.
	if len(cfg.CORSAllowedOrigins) == 0 {
		return AppConfig{}, fmt.Errorf("CORS_ALLOWED_ORIGINS must list at least one origin")
	}
	return cfg, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
