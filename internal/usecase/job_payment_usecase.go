package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase/interfaces"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrJobPaymentNotFound             = errors.New("job payment not found")
	ErrInvalidPaymentPayload          = errors.New("invalid payment payload")
	ErrJobNotBillable                 = errors.New("job is not approved for payment")
	ErrNothingToCharge                = errors.New("job total is zero")
	ErrPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
)

// IJobPaymentUseCase takes payments against approved jobs.
//
// The charged amount is always the server-computed job total; any
// transaction_amount in the client payload is overwritten.
type IJobPaymentUseCase interface {
	Create(ctx context.Context, p entities.Principal, jobID uint, payload json.RawMessage) (entities.JobPayment, error)
	GetByID(ctx context.Context, p entities.Principal, id string) (entities.JobPayment, error)
	ListByJob(ctx context.Context, p entities.Principal, jobID uint) ([]entities.JobPayment, error)
}

type JobPaymentUseCase struct {
	repo     interfaces.IJobPaymentRepository
	jobs     interfaces.IJobRepository
	settings interfaces.ICompanySettingsRepository
	gateway  interfaces.IPaymentGateway
	currency string
	access   access
	audit    auditTrail
}

var _ IJobPaymentUseCase = (*JobPaymentUseCase)(nil)

func NewJobPaymentUseCase(
	repo interfaces.IJobPaymentRepository,
	jobs interfaces.IJobRepository,
	settings interfaces.ICompanySettingsRepository,
	gateway interfaces.IPaymentGateway,
	members interfaces.ICompanyUserRepository,
	audit interfaces.IAuditLogRepository,
	currency string,
) *JobPaymentUseCase {
	return &JobPaymentUseCase{
		repo:     repo,
		jobs:     jobs,
		settings: settings,
		gateway:  gateway,
		currency: currency,
		access:   access{members: members},
		audit:    auditTrail{repo: audit},
	}
}

func (u *JobPaymentUseCase) Create(ctx context.Context, p entities.Principal, jobID uint, payload json.RawMessage) (entities.JobPayment, error) {
	log := logger.FromContext(ctx).With(zap.Uint("job_id", jobID), zap.Uint("company_id", p.CompanyID))
	log.Info("[payment][usecase] create start", zap.Int("payload_len", len(payload)))
	mockMode := isPaymentGatewayMockEnabled()

	if len(payload) == 0 || !json.Valid(payload) {
		if !mockMode {
			log.Info("[payment][usecase] invalid payload")
			return entities.JobPayment{}, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}
	if u.gateway == nil && !mockMode {
		log.Error("[payment][usecase] gateway not configured")
		return entities.JobPayment{}, ErrPaymentGatewayNotConfigured
	}
	if _, err := u.access.require(ctx, p, func(perms entities.Permissions) bool {
		return perms.CanManageUsers || perms.CanEditPrices
	}); err != nil {
		return entities.JobPayment{}, err
	}

	job, err := u.jobs.GetByID(ctx, p.CompanyID, jobID)
	if err != nil {
		log.Error("[payment][usecase] failed loading job", zap.Error(err))
		return entities.JobPayment{}, err
	}
	if job.ID == 0 {
		return entities.JobPayment{}, ErrJobNotFound
	}
	if !job.Status.IsBillable() {
		log.Info("[payment][usecase] job not billable", zap.String("status", string(job.Status)))
		return entities.JobPayment{}, ErrJobNotBillable
	}

	settings, err := u.settings.GetByCompanyID(ctx, p.CompanyID)
	if err != nil {
		return entities.JobPayment{}, err
	}
	if settings.CompanyID == 0 {
		settings = entities.DefaultCompanySettings(p.CompanyID)
	}
	totals, err := pricing.ComputeJobTotals(job.Items, settings)
	if err != nil {
		return entities.JobPayment{}, err
	}
	if !totals.Total.IsPositive() {
		return entities.JobPayment{}, ErrNothingToCharge
	}
	amount := totals.Total
	log.Info("[payment][usecase] job loaded", zap.String("status", string(job.Status)), zap.String("amount", amount.StringFixed(2)))

	reference := fmt.Sprintf("job-%d-%d", p.CompanyID, job.ID)
	var reqMap map[string]any
	if err := json.Unmarshal(payload, &reqMap); err == nil {
		if !mockMode && !hasNonEmptyString(reqMap, "payment_method_id") {
			log.Info("[payment][usecase] missing payment_method_id")
			return entities.JobPayment{}, ErrInvalidPaymentPayload
		}
		if !mockMode {
			normalizeSandboxPayerFromUserID(ctx, reqMap)
			ensurePayerDefaults(reqMap)
		}
		if !mockMode && !hasPayer(reqMap) {
			log.Info("[payment][usecase] missing/invalid payer")
			return entities.JobPayment{}, ErrInvalidPaymentPayload
		}

		if _, ok := reqMap["external_reference"]; !ok {
			reqMap["external_reference"] = reference
		}
		if _, ok := reqMap["description"]; !ok {
			reqMap["description"] = fmt.Sprintf("Job #%d", job.ID)
		}
		reqMap["transaction_amount"] = amount.InexactFloat64()
		if b, err := json.Marshal(reqMap); err == nil {
			payload = b
		}
	} else {
		log.Warn("[payment][usecase] payload unmarshal failed", zap.Error(err))
	}

	var (
		providerPaymentID string
		providerStatus    string
		providerResp      json.RawMessage
	)
	if mockMode {
		log.Info("[payment][usecase] mock mode enabled; skipping external payment gateway")
		providerPaymentID = strconv.FormatInt(time.Now().UTC().UnixNano(), 10)
		providerStatus = "approved"
		now := time.Now().UTC().Format(time.RFC3339Nano)
		mockResp := map[string]any{}
		_ = json.Unmarshal(payload, &mockResp)
		mockResp["id"] = providerPaymentID
		mockResp["status"] = providerStatus
		mockResp["status_detail"] = "accredited"
		mockResp["date_created"] = now
		mockResp["date_approved"] = now
		mockResp["external_reference"] = reference
		mockResp["transaction_amount"] = amount.InexactFloat64()
		b, mErr := json.Marshal(mockResp)
		if mErr != nil {
			return entities.JobPayment{}, mErr
		}
		providerResp = b
	} else {
		providerPaymentID, providerStatus, providerResp, err = u.gateway.CreatePayment(ctx, payload)
		if err != nil {
			log.Warn("[payment][usecase] payment gateway failed", zap.Error(err))
			return entities.JobPayment{}, classifyGatewayError(err)
		}
	}
	log.Info("[payment][usecase] payment gateway success",
		zap.String("provider_payment_id", providerPaymentID), zap.String("provider_status", providerStatus))

	id := providerPaymentID
	if id == "" {
		id = uuid.NewString()
	}
	created, err := u.repo.Create(ctx, entities.JobPayment{
		ID:                 id,
		CompanyID:          p.CompanyID,
		JobID:              job.ID,
		Amount:             amount,
		Currency:           u.currency,
		Date:               time.Now().UTC(),
		Status:             paymentStatusFromProvider(providerStatus),
		ProviderPaymentID:  providerPaymentID,
		ProviderPayloadRaw: providerResp,
	})
	if err != nil {
		log.Error("[payment][usecase] payment repository create failed", zap.String("payment_id", id), zap.Error(err))
		return entities.JobPayment{}, err
	}
	u.audit.record(ctx, p, entities.AuditPaymentCreated, uintRef(job.ID), map[string]string{
		"payment_id": created.ID,
		"amount":     created.Amount.StringFixed(2),
		"status":     string(created.Status),
	})
	log.Info("[payment][usecase] create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	return created, nil
}

func (u *JobPaymentUseCase) GetByID(ctx context.Context, p entities.Principal, id string) (entities.JobPayment, error) {
	if _, err := u.access.membership(ctx, p); err != nil {
		return entities.JobPayment{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.JobPayment{}, ErrJobPaymentNotFound
	}

	pay, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.JobPayment{}, err
	}
	if pay.ID == "" || pay.CompanyID != p.CompanyID {
		return entities.JobPayment{}, ErrJobPaymentNotFound
	}
	return pay, nil
}

// ListByJob returns the job's payments, newest first.
func (u *JobPaymentUseCase) ListByJob(ctx context.Context, p entities.Principal, jobID uint) ([]entities.JobPayment, error) {
	if _, err := u.access.require(ctx, p, canViewPrices); err != nil {
		return nil, err
	}
	return u.repo.ListByJob(ctx, p.CompanyID, jobID)
}

func paymentStatusFromProvider(status string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(status)) {
	case "approved", "authorized":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusRejected
	default:
		return entities.PaymentStatusPending
	}
}

func classifyGatewayError(err error) error {
	switch {
	case isGatewayCustomerNotFound(err):
		return ErrPaymentGatewayCustomerNotFound
	case isGatewayInvalidUsers(err):
		return ErrPaymentGatewayInvalidUsers
	case isGatewayUnauthorized(err):
		return ErrPaymentGatewayUnauthorized
	case isGatewayBadRequest(err):
		return ErrPaymentGatewayBadRequest
	}
	return err
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

func ensurePayerDefaults(m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}

	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}

	// Sandbox accepts either payer.id or payer.email; fill email only when both are missing.
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") {
		if email := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")); email != "" {
			payer["email"] = email
		} else if strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
			payer["email"] = "test_user_br@testuser.com"
		}
	}
}

func normalizeSandboxPayerFromUserID(ctx context.Context, m map[string]any) {
	v, ok := m["payer"]
	if !ok || v == nil {
		return
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if !hasPayerID(payer) || hasNonEmptyString(payer, "email") {
		return
	}
	if !strings.HasPrefix(strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")), "TEST-") {
		return
	}

	configuredUserID := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID"))
	configuredEmail := strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL"))
	if configuredUserID == "" || configuredEmail == "" {
		return
	}
	if rawID := strings.TrimSpace(fmt.Sprintf("%v", payer["id"])); rawID != configuredUserID {
		return
	}

	payer["email"] = configuredEmail
	delete(payer, "id")
	logger.FromContext(ctx).Debug("[payment][usecase] mapped sandbox payer user_id to payer.email")
}

func isPaymentGatewayMockEnabled() bool {
	for _, key := range []string{"PAYMENT_GATEWAY_MOCK", "MERCADOPAGO_MOCK"} {
		switch strings.ToLower(strings.TrimSpace(os.Getenv(key))) {
		case "1", "true", "yes", "on", "mock":
			return true
		}
	}
	return false
}

func isGatewayBadRequest(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400")
}

func isGatewayUnauthorized(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401")
}

func isGatewayInvalidUsers(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034")
}

func isGatewayCustomerNotFound(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002")
}
