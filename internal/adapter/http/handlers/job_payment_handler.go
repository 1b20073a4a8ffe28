package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "field_estimator/internal/adapter/http/dto/response"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase"
	"field_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobPaymentHandler takes payments against approved jobs.
type JobPaymentHandler struct {
	usecase  usecase.IJobPaymentUseCase
	mockMode bool
}

func NewJobPaymentHandler(uc usecase.IJobPaymentUseCase, mockMode bool) *JobPaymentHandler {
	return &JobPaymentHandler{usecase: uc, mockMode: mockMode}
}

// CreatePayment godoc
// @Summary     Charge the job total through the payment provider
// @Description The amount is always the server-computed job total. The body
// @Description is the provider payload, bare or wrapped in {"mp_payload": ...}.
// @Tags        payments
// @Accept      json
// @Produce     json
// @Security    Bearer
// @Param       id   path int                             true  "Job ID"
// @Param       body body request.JobPaymentCreateRequest false "Provider payload"
// @Success     201 {object} response.JobPaymentResponse
// @Failure     409 {object} pkg.HTTPError
// @Router      /jobs/{id}/payments [post]
func (h *JobPaymentHandler) CreatePayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	jobID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	log := logger.FromContext(c.Request.Context()).With(zap.Uint("job_id", jobID))
	log.Info("[payment][handler] create start")

	mpPayload, err := readMPPayload(c)
	if err != nil {
		if !h.mockMode {
			log.Info("[payment][handler] invalid payload", zap.Error(err))
			writeError(c, errInvalidRequest)
			return
		}
		log.Info("[payment][handler] payload invalid in mock mode; using empty payload", zap.Error(err))
		mpPayload = json.RawMessage("{}")
	}

	created, err := h.usecase.Create(c.Request.Context(), p, jobID, mpPayload)
	if err != nil {
		log.Warn("[payment][handler] create failed", zap.Error(err))
		writeError(c, mapJobPaymentError(err))
		return
	}
	log.Info("[payment][handler] create success", zap.String("payment_id", created.ID), zap.String("status", string(created.Status)))
	c.JSON(http.StatusCreated, response.FromJobPayment(created))
}

// ListPayments godoc
// @Summary  Payments of a job, newest first, plus the latest one
// @Tags     payments
// @Produce  json
// @Security Bearer
// @Param    id path int true "Job ID"
// @Success  200 {object} response.JobPaymentListResponse
// @Router   /jobs/{id}/payments [get]
func (h *JobPaymentHandler) ListPayments(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	jobID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	payments, err := h.usecase.ListByJob(c.Request.Context(), p, jobID)
	if err != nil {
		writeError(c, mapJobPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobPayments(payments))
}

// GetPayment godoc
// @Summary  A single payment
// @Tags     payments
// @Produce  json
// @Security Bearer
// @Param    paymentId path string true "Payment ID"
// @Success  200 {object} response.JobPaymentResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /payments/{paymentId} [get]
func (h *JobPaymentHandler) GetPayment(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	payment, err := h.usecase.GetByID(c.Request.Context(), p, c.Param("paymentId"))
	if err != nil {
		writeError(c, mapJobPaymentError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobPayment(payment))
}

// readMPPayload accepts an empty body, a bare provider payload or one
// wrapped in {"mp_payload": ...}.
func readMPPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			trimmed := strings.TrimSpace(string(wrapped))
			if trimmed == "" || trimmed == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}
	return json.RawMessage(raw), nil
}

func mapJobPaymentError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return errInvalidRequest
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrPaymentGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_NOT_CONFIGURED", "Payment provider not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobNotBillable):
		return pkg.NewDomainErrorSimple("JOB_NOT_APPROVED", "Job must be approved before it can be charged", http.StatusConflict)
	case errors.Is(err, usecase.ErrNothingToCharge):
		return pkg.NewDomainErrorSimple("NOTHING_TO_CHARGE", "Job total is zero", http.StatusConflict)
	case errors.Is(err, usecase.ErrJobPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
