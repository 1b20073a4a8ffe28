package payments

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"field_estimator/internal/infrastructure/config"

	"go.uber.org/zap"
)

func TestNewMercadoPagoGateway_RequiresToken(t *testing.T) {
	_, err := NewMercadoPagoGateway(config.PaymentsConfig{}, zap.NewNop())
	if !errors.Is(err, ErrMissingMercadoPagoAccessToken) {
		t.Fatalf("expected ErrMissingMercadoPagoAccessToken, got %v", err)
	}
}

func TestMercadoPagoGateway_MockMode(t *testing.T) {
	g, err := NewMercadoPagoGateway(config.PaymentsConfig{Mock: true}, zap.NewNop())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fixed := time.Date(2026, 4, 1, 10, 0, 0, 0, time.UTC)
	g.now = func() time.Time { return fixed }

	id, status, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`{"transaction_amount":77.2,"external_reference":"job-10-5"}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status != "approved" || id == "" {
		t.Fatalf("unexpected mock result id=%q status=%q", id, status)
	}

	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid mock response: %v", err)
	}
	if body["external_reference"] != "job-10-5" {
		t.Fatalf("expected request fields echoed, got %v", body)
	}
	if body["date_approved"] != "2026-04-01T10:00:00Z" {
		t.Fatalf("unexpected date_approved %v", body["date_approved"])
	}
}

func TestMercadoPagoGateway_MockModeNonObjectPayload(t *testing.T) {
	g := &MercadoPagoGateway{mockMode: true, now: time.Now}
	_, _, raw, err := g.CreatePayment(context.Background(), json.RawMessage(`[]`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("invalid mock response: %v", err)
	}
	if body["request_payload_raw"] != "[]" {
		t.Fatalf("expected raw payload to be kept, got %v", body)
	}
}

func TestMercadoPagoGateway_NotConfigured(t *testing.T) {
	var g *MercadoPagoGateway
	if _, _, _, err := g.CreatePayment(context.Background(), nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
	if _, _, _, err := (&MercadoPagoGateway{}).CreatePayment(context.Background(), nil); !errors.Is(err, ErrMercadoPagoGatewayNotConfigured) {
		t.Fatalf("expected ErrMercadoPagoGatewayNotConfigured, got %v", err)
	}
}
