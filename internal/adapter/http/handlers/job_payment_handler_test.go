package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"field_estimator/internal/adapter/http/handlers/mocks"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestJobPaymentHandler_CreatePayment(t *testing.T) {
	setup := func(t *testing.T, mockMode bool) (*gin.Engine, *mocks.MockIJobPaymentUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobPaymentUseCase(ctrl)
		h := NewJobPaymentHandler(uc, mockMode)
		r := newRouter(t)
		r.POST("/api/jobs/:id/payments", h.CreatePayment)
		return r, uc
	}

	t.Run("invalid payload", func(t *testing.T) {
		r, _ := setup(t, false)
		w := do(r, http.MethodPost, "/api/jobs/5/payments", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty payload", func(t *testing.T) {
		r, uc := setup(t, true)
		uc.EXPECT().Create(gomock.Any(), testPrincipal, uint(5), json.RawMessage("{}")).
			Return(entities.JobPayment{ID: "pay-1", JobID: 5, Status: entities.PaymentStatusApproved}, nil)

		w := do(r, http.MethodPost, "/api/jobs/5/payments", "{")
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("invalid job id", func(t *testing.T) {
		r, _ := setup(t, false)
		w := do(r, http.MethodPost, "/api/jobs/abc/payments", "{}")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		r, uc := setup(t, false)
		uc.EXPECT().Create(gomock.Any(), testPrincipal, uint(5), gomock.Any()).Return(entities.JobPayment{}, usecase.ErrJobNotBillable)

		w := do(r, http.MethodPost, "/api/jobs/5/payments", `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if body := decodeBody(t, w); body["code"] != "JOB_NOT_APPROVED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("success unwraps mp_payload", func(t *testing.T) {
		r, uc := setup(t, false)
		now := time.Now().UTC()
		uc.EXPECT().Create(gomock.Any(), testPrincipal, uint(5), json.RawMessage(`{"payment_method_id":"pix"}`)).
			Return(entities.JobPayment{ID: "pay-1", JobID: 5, Amount: decimal.NewFromInt(120), Currency: "BRL", Date: now, Status: entities.PaymentStatusApproved}, nil)

		w := do(r, http.MethodPost, "/api/jobs/5/payments", `{"mp_payload":{"payment_method_id":"pix"}}`)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["id"] != "pay-1" || body["amount"] != "120.00" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestJobPaymentHandler_ListPayments(t *testing.T) {
	setup := func(t *testing.T) (*gin.Engine, *mocks.MockIJobPaymentUseCase) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockIJobPaymentUseCase(ctrl)
		h := NewJobPaymentHandler(uc, false)
		r := newRouter(t)
		r.GET("/api/jobs/:id/payments", h.ListPayments)
		r.GET("/api/payments/:paymentId", h.GetPayment)
		return r, uc
	}

	t.Run("list error", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ListByJob(gomock.Any(), testPrincipal, uint(5)).Return(nil, usecase.ErrJobNotFound)

		w := do(r, http.MethodGet, "/api/jobs/5/payments", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("empty list has null latest", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().ListByJob(gomock.Any(), testPrincipal, uint(5)).Return([]entities.JobPayment{}, nil)

		w := do(r, http.MethodGet, "/api/jobs/5/payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		body := decodeBody(t, w)
		if body["latest"] != nil {
			t.Fatalf("expected null latest, got %s", w.Body.String())
		}
	})

	t.Run("success returns latest first", func(t *testing.T) {
		r, uc := setup(t)
		latest := entities.JobPayment{ID: "latest", JobID: 5, Date: time.Now(), Status: entities.PaymentStatusApproved}
		old := entities.JobPayment{ID: "old", JobID: 5, Date: time.Now().Add(-time.Hour), Status: entities.PaymentStatusPending}
		uc.EXPECT().ListByJob(gomock.Any(), testPrincipal, uint(5)).Return([]entities.JobPayment{latest, old}, nil)

		w := do(r, http.MethodGet, "/api/jobs/5/payments", "")
		body := decodeBody(t, w)
		if body["latest"].(map[string]any)["id"] != "latest" || len(body["items"].([]any)) != 2 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get by id not found", func(t *testing.T) {
		r, uc := setup(t)
		uc.EXPECT().GetByID(gomock.Any(), testPrincipal, "pay-9").Return(entities.JobPayment{}, usecase.ErrJobPaymentNotFound)

		w := do(r, http.MethodGet, "/api/payments/pay-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReadMPPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readMPPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readMPPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readMPPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readMPPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readMPPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readMPPayload(makeCtx(`{"payment_method_id":"pix"}`))
	if err != nil || string(payload) != `{"payment_method_id":"pix"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapJobPaymentError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{usecase.ErrPaymentGatewayNotConfigured, http.StatusServiceUnavailable},
		{usecase.ErrJobNotFound, http.StatusNotFound},
		{usecase.ErrJobNotBillable, http.StatusConflict},
		{usecase.ErrNothingToCharge, http.StatusConflict},
		{usecase.ErrJobPaymentNotFound, http.StatusNotFound},
		{usecase.ErrForbidden, http.StatusForbidden},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapJobPaymentError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
