package handlers

import (
	"errors"
	"net/http"

	request "field_estimator/internal/adapter/http/dto/request"
	response "field_estimator/internal/adapter/http/dto/response"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase"
	"field_estimator/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// JobHandler serves jobs (estimates), their totals, status and assignments.
type JobHandler struct {
	usecase  usecase.IJobUseCase
	currency string
}

func NewJobHandler(uc usecase.IJobUseCase, currency string) *JobHandler {
	return &JobHandler{usecase: uc, currency: currency}
}

// ListJobs godoc
// @Summary  List the company's jobs with per-status counts
// @Tags     jobs
// @Produce  json
// @Security Bearer
// @Success  200 {object} response.JobListResponse
// @Router   /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	list, err := h.usecase.List(c.Request.Context(), p)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobList(list))
}

// GetJob godoc
// @Summary  Get a job with items and computed totals
// @Tags     jobs
// @Produce  json
// @Security Bearer
// @Param    id  path int true "Job ID"
// @Success  200 {object} response.JobResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /jobs/{id} [get]
func (h *JobHandler) GetJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	detail, err := h.usecase.Get(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobDetail(detail))
}

// CreateJob godoc
// @Summary  Create a job, pricing any items sent with it
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    body body request.CreateJobRequest true "Job"
// @Success  201 {object} response.JobResponse
// @Failure  422 {object} pkg.HTTPError
// @Router   /jobs [post]
func (h *JobHandler) CreateJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	var req request.CreateJobRequest
	if !bindJSON(c, &req) {
		return
	}
	detail, err := h.usecase.Create(c.Request.Context(), p, req.ToInput())
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	logger.FromContext(c.Request.Context()).Info("[job][handler] created", zap.Uint("job_id", detail.Job.ID))
	c.JSON(http.StatusCreated, response.FromJobDetail(detail))
}

// UpdateJob godoc
// @Summary  Partially update a job; items, when sent, replace all lines
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id   path int                      true "Job ID"
// @Param    body body request.UpdateJobRequest true "Changes"
// @Success  200 {object} response.JobResponse
// @Router   /jobs/{id} [put]
func (h *JobHandler) UpdateJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req request.UpdateJobRequest
	if !bindJSON(c, &req) {
		return
	}
	detail, err := h.usecase.Update(c.Request.Context(), p, id, req.ToPatch())
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobDetail(detail))
}

// DeleteJob godoc
// @Summary  Delete a job
// @Tags     jobs
// @Security Bearer
// @Param    id path int true "Job ID"
// @Success  204
// @Router   /jobs/{id} [delete]
func (h *JobHandler) DeleteJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	if err := h.usecase.Delete(c.Request.Context(), p, id); err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// GetTotals godoc
// @Summary  Server-computed totals with locale display strings
// @Tags     jobs
// @Produce  json
// @Security Bearer
// @Param    id   path  int    true  "Job ID"
// @Param    lang query string false "en, pt or es; defaults to the company language"
// @Success  200 {object} response.JobTotalsResponse
// @Router   /jobs/{id}/totals [get]
func (h *JobHandler) GetTotals(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	view, err := h.usecase.Totals(c.Request.Context(), p, id, c.Query("lang"))
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobTotalsView(view, h.currency))
}

// ChangeStatus godoc
// @Summary  Move a job forward in its lifecycle
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id   path int                      true "Job ID"
// @Param    body body request.JobStatusRequest true "New status"
// @Success  200 {object} response.JobSummaryResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /jobs/{id}/status [patch]
func (h *JobHandler) ChangeStatus(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	var req request.JobStatusRequest
	if !bindJSON(c, &req) {
		return
	}
	status, err := entities.ParseJobStatus(req.Status)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	job, err := h.usecase.ChangeStatus(c.Request.Context(), p, id, status)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobSummary(job))
}

// AssignJob godoc
// @Summary  Grant a member job-level permissions
// @Tags     jobs
// @Accept   json
// @Produce  json
// @Security Bearer
// @Param    id     path int                        true "Job ID"
// @Param    userId path int                        true "User ID"
// @Param    body   body request.PermissionsRequest true "Permissions"
// @Success  200 {object} response.JobAssignmentResponse
// @Router   /jobs/{id}/assignments/{userId} [put]
func (h *JobHandler) AssignJob(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	jobID, ok := uintParam(c, "id")
	if !ok {
		return
	}
	userID, ok := uintParam(c, "userId")
	if !ok {
		return
	}
	var req request.PermissionsRequest
	if !bindJSON(c, &req) {
		return
	}
	a, err := h.usecase.Assign(c.Request.Context(), p, jobID, userID, req.ToEntity())
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromJobAssignment(a))
}

// MyPermissions godoc
// @Summary  The caller's effective permissions on a job
// @Tags     jobs
// @Produce  json
// @Security Bearer
// @Param    id path int true "Job ID"
// @Success  200 {object} entities.Permissions
// @Router   /jobs/{id}/permissions/me [get]
func (h *JobHandler) MyPermissions(c *gin.Context) {
	p, ok := principal(c)
	if !ok {
		return
	}
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}
	perms, err := h.usecase.MyPermissions(c.Request.Context(), p, id)
	if err != nil {
		writeError(c, mapJobError(err))
		return
	}
	c.JSON(http.StatusOK, perms)
}

func mapJobError(err error) *pkg.AppError {
	if appErr := mapSharedError(err); appErr != nil {
		return appErr
	}
	switch {
	case errors.Is(err, usecase.ErrJobNotFound):
		return pkg.NewDomainErrorSimple("JOB_NOT_FOUND", "Job not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrServiceNotFound):
		return pkg.NewDomainError("SERVICE_NOT_FOUND", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrAssigneeNotFound):
		return pkg.NewDomainErrorSimple("MEMBER_NOT_FOUND", "Assignee is not a member of the company", http.StatusNotFound)
	case errors.Is(err, usecase.ErrJobStatusConflict):
		return pkg.NewDomainError("JOB_STATUS_CONFLICT", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrJobDeleteForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Only the creator or a company manager can delete a job", http.StatusForbidden)
	case errors.Is(err, usecase.ErrInvalidJob), errors.Is(err, usecase.ErrInvalidJobItem):
		return pkg.NewDomainError("INVALID_JOB_INPUT", err.Error(), err, http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
