package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"field_estimator/internal/domain/entities"
	mock_interfaces "field_estimator/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type paymentFixture struct {
	repo     *mock_interfaces.MockIJobPaymentRepository
	jobs     *mock_interfaces.MockIJobRepository
	settings *mock_interfaces.MockICompanySettingsRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	members  *mock_interfaces.MockICompanyUserRepository
	uc       *JobPaymentUseCase
}

func newPaymentFixture(t *testing.T) paymentFixture {
	t.Setenv("PAYMENT_GATEWAY_MOCK", "")
	t.Setenv("MERCADOPAGO_MOCK", "")
	ctrl := gomock.NewController(t)
	f := paymentFixture{
		repo:     mock_interfaces.NewMockIJobPaymentRepository(ctrl),
		jobs:     mock_interfaces.NewMockIJobRepository(ctrl),
		settings: mock_interfaces.NewMockICompanySettingsRepository(ctrl),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
		members:  mock_interfaces.NewMockICompanyUserRepository(ctrl),
	}
	f.uc = NewJobPaymentUseCase(f.repo, f.jobs, f.settings, f.gateway, f.members, nil, "USD")
	return f
}

func approvedJob(total string) entities.Job {
	return entities.Job{
		ID:        5,
		CompanyID: testCompanyID,
		Status:    entities.JobStatusApproved,
		Items:     []entities.JobItem{entities.NewJobItem(1, dec("1"), dec(total), entities.UnitJob)},
	}
}

// billable wires an owner and an approved job priced at total.
func (f paymentFixture) billable(total string) {
	expectMember(f.members, ownerMember())
	f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(approvedJob(total), nil)
	f.settings.EXPECT().GetByCompanyID(gomock.Any(), testCompanyID).Return(entities.CompanySettings{}, nil)
}

const validPayload = `{"payment_method_id":"pix","payer":{"email":"x@test.com"}}`

func TestJobPaymentUseCase_Create_Validations(t *testing.T) {
	t.Run("empty payload", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, nil)
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("invalid json payload", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(`{`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		t.Setenv("PAYMENT_GATEWAY_MOCK", "")
		t.Setenv("MERCADOPAGO_MOCK", "")
		uc := NewJobPaymentUseCase(nil, nil, nil, nil, nil, nil, "USD")
		_, err := uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(validPayload))
		if !errors.Is(err, ErrPaymentGatewayNotConfigured) {
			t.Fatalf("expected ErrPaymentGatewayNotConfigured, got %v", err)
		}
	})

	t.Run("needs manage or edit permission", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, workerMember(entities.DefaultEmployeePermissions))
		_, err := f.uc.Create(context.Background(), workerPrincipal, 5, json.RawMessage(validPayload))
		if !errors.Is(err, ErrForbidden) {
			t.Fatalf("expected ErrForbidden, got %v", err)
		}
	})
}

func TestJobPaymentUseCase_Create_JobChecks(t *testing.T) {
	t.Run("job repo returns error", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, ownerMember())
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(entities.Job{}, errors.New("db"))

		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(validPayload))
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("job not found", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, ownerMember())
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(entities.Job{}, nil)

		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(validPayload))
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("job not approved", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, ownerMember())
		job := approvedJob("10")
		job.Status = entities.JobStatusSent
		f.jobs.EXPECT().GetByID(gomock.Any(), testCompanyID, uint(5)).Return(job, nil)

		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(validPayload))
		if !errors.Is(err, ErrJobNotBillable) {
			t.Fatalf("expected ErrJobNotBillable, got %v", err)
		}
	})

	t.Run("zero total", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.billable("0")

		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(validPayload))
		if !errors.Is(err, ErrNothingToCharge) {
			t.Fatalf("expected ErrNothingToCharge, got %v", err)
		}
	})
}

func TestJobPaymentUseCase_Create_PayloadValidation(t *testing.T) {
	t.Run("missing payment_method_id", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.billable("10")

		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(`{"payer":{"email":"x@test.com"}}`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})

	t.Run("missing payer", func(t *testing.T) {
		f := newPaymentFixture(t)
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		f.billable("10")

		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(`{"payment_method_id":"pix"}`))
		if !errors.Is(err, ErrInvalidPaymentPayload) {
			t.Fatalf("expected ErrInvalidPaymentPayload, got %v", err)
		}
	})
}

func TestJobPaymentUseCase_Create_GatewayErrorMapping(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want error
	}{
		{name: "customer not found", err: errors.New(`{"code":2002}`), want: ErrPaymentGatewayCustomerNotFound},
		{name: "invalid users", err: errors.New(`invalid users involved`), want: ErrPaymentGatewayInvalidUsers},
		{name: "unauthorized", err: errors.New(`{"error":"unauthorized"}`), want: ErrPaymentGatewayUnauthorized},
		{name: "bad request", err: errors.New(`{"status":400}`), want: ErrPaymentGatewayBadRequest},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPaymentFixture(t)
			f.billable("10")
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, tc.err)

			_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(validPayload))
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}

	t.Run("unknown gateway error", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.billable("10")
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("", "", nil, errors.New("boom"))

		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(validPayload))
		if err == nil || err.Error() != "boom" {
			t.Fatalf("expected boom, got %v", err)
		}
	})
}

func TestJobPaymentUseCase_Create_SuccessAndStatuses(t *testing.T) {
	cases := []struct {
		name           string
		providerStatus string
		want           entities.PaymentStatus
	}{
		{name: "approved", providerStatus: "approved", want: entities.PaymentStatusApproved},
		{name: "rejected", providerStatus: "rejected", want: entities.PaymentStatusRejected},
		{name: "pending default", providerStatus: "in_process", want: entities.PaymentStatusPending},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newPaymentFixture(t)
			t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-token")
			t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
			t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")
			f.billable("77.20")

			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
					var body map[string]any
					if err := json.Unmarshal(payload, &body); err != nil {
						t.Fatalf("payload should be valid json: %v", err)
					}
					if body["external_reference"] != "job-10-5" {
						t.Fatalf("external_reference not set: %v", body["external_reference"])
					}
					if body["description"] != "Job #5" {
						t.Fatalf("description not set")
					}
					if body["transaction_amount"] != float64(77.2) {
						t.Fatalf("transaction_amount should come from the job total, got %v", body["transaction_amount"])
					}
					payer := body["payer"].(map[string]any)
					if payer["email"] != "sandbox@test.com" {
						t.Fatalf("expected sandbox payer mapping, got %v", payer)
					}
					return "pay-1", tc.providerStatus, json.RawMessage(`{"id":123}`), nil
				},
			)

			f.repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.JobPayment{})).DoAndReturn(
				func(_ context.Context, p entities.JobPayment) (entities.JobPayment, error) {
					if p.ID != "pay-1" || p.JobID != 5 || p.CompanyID != testCompanyID || p.Status != tc.want {
						t.Fatalf("unexpected payment: %+v", p)
					}
					if p.Currency != "USD" || p.Amount.StringFixed(2) != "77.20" || p.Date.IsZero() {
						t.Fatalf("unexpected amount or date: %+v", p)
					}
					return p, nil
				},
			)

			res, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(`{"payment_method_id":"pix","payer":{"id":"123"},"transaction_amount":1}`))
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if res.Status != tc.want {
				t.Fatalf("expected status %s, got %s", tc.want, res.Status)
			}
		})
	}

	t.Run("repository create error", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.billable("11")
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Return("pay-1", "approved", json.RawMessage(`{"id":123}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.JobPayment{}, errors.New("db-create"))

		_, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(validPayload))
		if err == nil || err.Error() != "db-create" {
			t.Fatalf("expected db-create error, got %v", err)
		}
	})

	t.Run("non-object payload passes through", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.billable("42")
		f.gateway.EXPECT().CreatePayment(gomock.Any(), json.RawMessage(`[]`)).Return("pay-1", "approved", json.RawMessage(`{"id":1}`), nil)
		f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.JobPayment{ID: "pay-1", JobID: 5, Status: entities.PaymentStatusApproved}, nil)

		res, err := f.uc.Create(context.Background(), ownerPrincipal, 5, json.RawMessage(`[]`))
		if err != nil || res.ID != "pay-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestJobPaymentUseCase_Create_MockMode(t *testing.T) {
	f := newPaymentFixture(t)
	t.Setenv("PAYMENT_GATEWAY_MOCK", "true")
	f.billable("25")
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).Times(0)
	f.repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, p entities.JobPayment) (entities.JobPayment, error) {
		var body map[string]any
		if err := json.Unmarshal(p.ProviderPayloadRaw, &body); err != nil {
			t.Fatalf("mock response should be json: %v", err)
		}
		if body["status"] != "approved" || body["external_reference"] != "job-10-5" {
			t.Fatalf("unexpected mock response %v", body)
		}
		return p, nil
	})

	res, err := f.uc.Create(context.Background(), ownerPrincipal, 5, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Status != entities.PaymentStatusApproved || res.ID == "" {
		t.Fatalf("unexpected result %+v", res)
	}
}

func TestJobPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID blank", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, ownerMember())
		_, err := f.uc.GetByID(context.Background(), ownerPrincipal, " ")
		if !errors.Is(err, ErrJobPaymentNotFound) {
			t.Fatalf("expected ErrJobPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID repo error", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, ownerMember())
		f.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.JobPayment{}, errors.New("db"))

		_, err := f.uc.GetByID(context.Background(), ownerPrincipal, "id-1")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("GetByID other company", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, ownerMember())
		f.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.JobPayment{ID: "id-1", CompanyID: 99}, nil)

		_, err := f.uc.GetByID(context.Background(), ownerPrincipal, "id-1")
		if !errors.Is(err, ErrJobPaymentNotFound) {
			t.Fatalf("expected ErrJobPaymentNotFound, got %v", err)
		}
	})

	t.Run("GetByID success", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, ownerMember())
		f.repo.EXPECT().GetByID(gomock.Any(), "id-1").Return(entities.JobPayment{ID: "id-1", CompanyID: testCompanyID}, nil)

		res, err := f.uc.GetByID(context.Background(), ownerPrincipal, " id-1 ")
		if err != nil || res.ID != "id-1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})

	t.Run("ListByJob", func(t *testing.T) {
		f := newPaymentFixture(t)
		expectMember(f.members, workerMember(entities.DefaultEmployeePermissions))
		f.repo.EXPECT().ListByJob(gomock.Any(), testCompanyID, uint(5)).Return([]entities.JobPayment{{ID: "p1"}}, nil)

		res, err := f.uc.ListByJob(context.Background(), workerPrincipal, 5)
		if err != nil || len(res) != 1 || res[0].ID != "p1" {
			t.Fatalf("unexpected result err=%v res=%+v", err, res)
		}
	})
}

func TestJobPaymentUseCase_HelperFunctions(t *testing.T) {
	t.Run("hasNonEmptyString", func(t *testing.T) {
		if hasNonEmptyString(map[string]any{}, "x") {
			t.Fatalf("expected false")
		}
		if hasNonEmptyString(map[string]any{"x": 1}, "x") {
			t.Fatalf("expected false for non-string")
		}
		if hasNonEmptyString(map[string]any{"x": "   "}, "x") {
			t.Fatalf("expected false for empty string")
		}
		if !hasNonEmptyString(map[string]any{"x": "ok"}, "x") {
			t.Fatalf("expected true")
		}
	})

	t.Run("hasPayer and hasPayerID", func(t *testing.T) {
		if hasPayer(map[string]any{}) || hasPayer(map[string]any{"payer": "x"}) || hasPayer(map[string]any{"payer": map[string]any{}}) {
			t.Fatalf("expected false")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"email": "a@b.com"}}) {
			t.Fatalf("expected true with email")
		}
		if !hasPayer(map[string]any{"payer": map[string]any{"id": 10}}) {
			t.Fatalf("expected true with id")
		}
		if hasPayerID(map[string]any{"id": nil}) || hasPayerID(map[string]any{"id": " "}) {
			t.Fatalf("expected false for nil or blank id")
		}
	})

	t.Run("ensurePayerDefaults", func(t *testing.T) {
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "")
		body := map[string]any{}
		ensurePayerDefaults(body)
		if body["payer"].(map[string]any)["type"] != "customer" {
			t.Fatalf("expected type customer")
		}

		withEnv := map[string]any{"payer": map[string]any{}}
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "custom@test.com")
		ensurePayerDefaults(withEnv)
		if withEnv["payer"].(map[string]any)["email"] != "custom@test.com" {
			t.Fatalf("expected env email fallback")
		}

		sandbox := map[string]any{"payer": map[string]any{}}
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "")
		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		ensurePayerDefaults(sandbox)
		if sandbox["payer"].(map[string]any)["email"] != "test_user_br@testuser.com" {
			t.Fatalf("expected sandbox fallback email")
		}

		ensurePayerDefaults(map[string]any{"payer": "invalid"})
	})

	t.Run("normalizeSandboxPayerFromUserID", func(t *testing.T) {
		ctx := context.Background()
		normalizeSandboxPayerFromUserID(ctx, map[string]any{})
		normalizeSandboxPayerFromUserID(ctx, map[string]any{"payer": "invalid"})

		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "APP-123")
		live := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(ctx, live)
		if _, ok := live["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map for non TEST token")
		}

		t.Setenv("MERCADOPAGO_ACCESS_TOKEN", "TEST-123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_USER_ID", "123")
		t.Setenv("MERCADOPAGO_TEST_PAYER_EMAIL", "sandbox@test.com")
		mismatch := map[string]any{"payer": map[string]any{"id": "999"}}
		normalizeSandboxPayerFromUserID(ctx, mismatch)
		if _, ok := mismatch["payer"].(map[string]any)["email"]; ok {
			t.Fatalf("should not map mismatched id")
		}

		match := map[string]any{"payer": map[string]any{"id": "123"}}
		normalizeSandboxPayerFromUserID(ctx, match)
		payer := match["payer"].(map[string]any)
		if payer["email"] != "sandbox@test.com" {
			t.Fatalf("expected mapped email")
		}
		if _, ok := payer["id"]; ok {
			t.Fatalf("expected id removed")
		}
	})

	t.Run("gateway helper classifiers", func(t *testing.T) {
		if isGatewayBadRequest(nil) || isGatewayUnauthorized(nil) || isGatewayInvalidUsers(nil) || isGatewayCustomerNotFound(nil) {
			t.Fatalf("all nil checks should be false")
		}
		if !isGatewayBadRequest(errors.New(`{"error":"bad_request"}`)) || !isGatewayUnauthorized(errors.New(`{"status":401}`)) {
			t.Fatalf("expected status classifiers to match")
		}
		if !isGatewayInvalidUsers(errors.New(`{"code":2034}`)) || !isGatewayCustomerNotFound(errors.New(`customer not found`)) {
			t.Fatalf("expected code classifiers to match")
		}
	})

	t.Run("payment status mapping", func(t *testing.T) {
		if paymentStatusFromProvider(" Authorized ") != entities.PaymentStatusApproved {
			t.Fatalf("authorized should map to approved")
		}
		if paymentStatusFromProvider("charged_back") != entities.PaymentStatusRejected {
			t.Fatalf("charged_back should map to rejected")
		}
	})
}
