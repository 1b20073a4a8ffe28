package usecase

import (
	"context"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/domain/pricing"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase/interfaces"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrJobNotFound        = errors.New("job not found")
	ErrInvalidJob         = errors.New("invalid job")
	ErrInvalidJobItem     = errors.New("invalid job item")
	ErrServiceNotFound    = errors.New("service not found")
	ErrAssigneeNotFound   = errors.New("assignee is not a member of the company")
	ErrJobDeleteForbidden = errors.New("only the creator or a company manager can delete a job")
	ErrJobStatusConflict  = errors.New("job status changed concurrently")
)

// JobItemInput describes an item to add. Its unit price is decided once,
// at add time, in this order:
//   - UnitPrice when given (manual entry, needs canEditPrices)
//   - the rule-based price when MaterialTier and ComplexityLevel are given
//   - the service catalog price otherwise
type JobItemInput struct {
	ServiceID       uint
	Qty             decimal.Decimal
	UnitPrice       *decimal.Decimal
	MaterialTier    entities.MaterialTier
	ComplexityLevel entities.ComplexityLevel
}

type JobInput struct {
	TradeID     uint
	SpecialtyID *uint
	ClientName  string
	ClientPhone string
	ClientEmail string
	Address     string
	ScheduledAt *time.Time
	DoorCode    string
	Notes       string
	Items       []JobItemInput
}

// JobPatch is a partial update. Items replace the whole list when
// ReplaceItems is set.
type JobPatch struct {
	SpecialtyID   *uint
	ClientName    *string
	ClientPhone   *string
	ClientEmail   *string
	Address       *string
	AddressLocked *bool
	ScheduledAt   *time.Time
	DoorCode      *string
	Notes         *string
	ReplaceItems  bool
	Items         []JobItemInput
}

// JobDetail is a job as seen by the caller. When PricesVisible is false
// every monetary field is zeroed.
type JobDetail struct {
	Job           entities.Job
	Totals        pricing.JobTotals
	Permissions   entities.Permissions
	PricesVisible bool
}

type JobList struct {
	Items []entities.Job
	Stats entities.JobStats
}

// JobTotalsView carries the server-authoritative totals and the language
// they should be displayed in.
type JobTotalsView struct {
	JobID    uint
	Totals   pricing.JobTotals
	Language entities.Language
}

// IJobUseCase exposes job (estimate) operations.
//   - totals are always computed here, never by the client
//   - NotFound and ConfigurationError from pricing block the save
//   - status moves forward only
type IJobUseCase interface {
	List(ctx context.Context, p entities.Principal) (JobList, error)
	Get(ctx context.Context, p entities.Principal, id uint) (JobDetail, error)
	Create(ctx context.Context, p entities.Principal, in JobInput) (JobDetail, error)
	Update(ctx context.Context, p entities.Principal, id uint, patch JobPatch) (JobDetail, error)
	Delete(ctx context.Context, p entities.Principal, id uint) error
	Totals(ctx context.Context, p entities.Principal, id uint, lang string) (JobTotalsView, error)
	ChangeStatus(ctx context.Context, p entities.Principal, id uint, status entities.JobStatus) (entities.Job, error)
	Assign(ctx context.Context, p entities.Principal, jobID, userID uint, perms entities.Permissions) (entities.JobAssignment, error)
	MyPermissions(ctx context.Context, p entities.Principal, jobID uint) (entities.Permissions, error)
}

type JobUseCase struct {
	jobs        interfaces.IJobRepository
	assignments interfaces.IJobAssignmentRepository
	catalog     interfaces.ICatalogRepository
	settings    interfaces.ICompanySettingsRepository
	members     interfaces.ICompanyUserRepository
	rules       ruleSource
	access      access
	audit       auditTrail
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(
	jobs interfaces.IJobRepository,
	assignments interfaces.IJobAssignmentRepository,
	catalog interfaces.ICatalogRepository,
	settings interfaces.ICompanySettingsRepository,
	members interfaces.ICompanyUserRepository,
	rules interfaces.IPricingRuleRepository,
	cache interfaces.IPricingRuleCache,
	metrics interfaces.IPricingMetrics,
	audit interfaces.IAuditLogRepository,
) *JobUseCase {
	return &JobUseCase{
		jobs:        jobs,
		assignments: assignments,
		catalog:     catalog,
		settings:    settings,
		members:     members,
		rules:       ruleSource{rules: rules, cache: cache, metrics: metrics},
		access:      access{members: members, assignments: assignments},
		audit:       auditTrail{repo: audit},
	}
}

func (u *JobUseCase) List(ctx context.Context, p entities.Principal) (JobList, error) {
	m, err := u.access.membership(ctx, p)
	if err != nil {
		return JobList{}, err
	}
	jobs, err := u.jobs.ListByCompany(ctx, p.CompanyID)
	if err != nil {
		return JobList{}, err
	}

	if !m.Permissions.CanViewAllSpecialties {
		allowed, err := u.members.ListSpecialtyIDs(ctx, p.CompanyID, p.UserID)
		if err != nil {
			return JobList{}, err
		}
		visible := make([]entities.Job, 0, len(jobs))
		for _, j := range jobs {
			if jobVisible(j, p.UserID, allowed) {
				visible = append(visible, j)
			}
		}
		jobs = visible
	}
	return JobList{Items: jobs, Stats: entities.NewJobStats(jobs)}, nil
}

func (u *JobUseCase) Get(ctx context.Context, p entities.Principal, id uint) (JobDetail, error) {
	m, job, err := u.load(ctx, p, id)
	if err != nil {
		return JobDetail{}, err
	}
	return u.detail(ctx, m, job)
}

func (u *JobUseCase) Create(ctx context.Context, p entities.Principal, in JobInput) (JobDetail, error) {
	log := logger.FromContext(ctx)
	m, err := u.access.membership(ctx, p)
	if err != nil {
		return JobDetail{}, err
	}
	if in.TradeID == 0 {
		return JobDetail{}, fmt.Errorf("%w: tradeId is required", ErrInvalidJob)
	}

	now := time.Now().UTC()
	job := entities.Job{
		CompanyID:     p.CompanyID,
		TradeID:       in.TradeID,
		SpecialtyID:   in.SpecialtyID,
		CreatedBy:     p.UserID,
		Status:        entities.JobStatusDraft,
		ClientName:    strings.TrimSpace(in.ClientName),
		ClientPhone:   strings.TrimSpace(in.ClientPhone),
		ClientEmail:   strings.TrimSpace(in.ClientEmail),
		Address:       strings.TrimSpace(in.Address),
		AddressLocked: true,
		ScheduledAt:   in.ScheduledAt,
		DoorCode:      in.DoorCode,
		Notes:         in.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	// A new job has no assignments; the creator acts with their company grant.
	items, err := u.priceItems(ctx, job, m.Permissions, in.Items)
	if err != nil {
		log.Info("[job][usecase] create rejected", zap.Uint("company_id", p.CompanyID), zap.Error(err))
		return JobDetail{}, err
	}
	job.Items = items

	created, err := u.jobs.Create(ctx, job)
	if err != nil {
		return JobDetail{}, err
	}
	u.audit.record(ctx, p, entities.AuditJobCreated, uintRef(created.ID), map[string]string{"items": fmt.Sprint(len(created.Items))})
	log.Info("[job][usecase] created", zap.Uint("job_id", created.ID), zap.Uint("company_id", created.CompanyID))
	return u.detail(ctx, m, created)
}

func (u *JobUseCase) Update(ctx context.Context, p entities.Principal, id uint, patch JobPatch) (JobDetail, error) {
	m, job, err := u.load(ctx, p, id)
	if err != nil {
		return JobDetail{}, err
	}

	if patch.SpecialtyID != nil {
		job.SpecialtyID = patch.SpecialtyID
	}
	setString(&job.ClientName, patch.ClientName)
	setString(&job.ClientPhone, patch.ClientPhone)
	setString(&job.ClientEmail, patch.ClientEmail)
	setString(&job.Address, patch.Address)
	setString(&job.DoorCode, patch.DoorCode)
	setString(&job.Notes, patch.Notes)
	if patch.ScheduledAt != nil {
		job.ScheduledAt = patch.ScheduledAt
	}
	if patch.AddressLocked != nil && *patch.AddressLocked != job.AddressLocked {
		job.AddressLocked = *patch.AddressLocked
		if !job.AddressLocked {
			released := time.Now().UTC()
			job.AddressReleasedAt = &released
		}
	}

	if patch.ReplaceItems {
		perms, err := u.access.jobPermissions(ctx, m, job.ID)
		if err != nil {
			return JobDetail{}, err
		}
		items, err := u.priceItems(ctx, job, perms, patch.Items)
		if err != nil {
			logger.FromContext(ctx).Info("[job][usecase] update rejected", zap.Uint("job_id", job.ID), zap.Error(err))
			return JobDetail{}, err
		}
		for i := range items {
			items[i].JobID = job.ID
		}
		job.Items = items
	}
	job.UpdatedAt = time.Now().UTC()

	updated, err := u.jobs.Update(ctx, job, patch.ReplaceItems)
	if err != nil {
		return JobDetail{}, err
	}
	if updated.ID == 0 {
		return JobDetail{}, ErrJobNotFound
	}
	u.audit.record(ctx, p, entities.AuditJobUpdated, uintRef(updated.ID), map[string]string{"items_replaced": fmt.Sprint(patch.ReplaceItems)})
	return u.detail(ctx, m, updated)
}

func (u *JobUseCase) Delete(ctx context.Context, p entities.Principal, id uint) error {
	m, job, err := u.load(ctx, p, id)
	if err != nil {
		return err
	}
	if job.CreatedBy != p.UserID && !m.Role.IsManager() {
		return ErrJobDeleteForbidden
	}
	deleted, err := u.jobs.Delete(ctx, p.CompanyID, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrJobNotFound
	}
	u.audit.record(ctx, p, entities.AuditJobDeleted, uintRef(id), nil)
	return nil
}

func (u *JobUseCase) Totals(ctx context.Context, p entities.Principal, id uint, lang string) (JobTotalsView, error) {
	m, job, err := u.load(ctx, p, id)
	if err != nil {
		return JobTotalsView{}, err
	}
	perms, err := u.access.jobPermissions(ctx, m, job.ID)
	if err != nil {
		return JobTotalsView{}, err
	}
	if !perms.CanViewPrices {
		return JobTotalsView{}, ErrForbidden
	}

	settings, err := u.companySettings(ctx, p.CompanyID)
	if err != nil {
		return JobTotalsView{}, err
	}
	totals, err := pricing.ComputeJobTotals(job.Items, settings)
	if err != nil {
		return JobTotalsView{}, err
	}

	language := settings.DefaultLanguage
	if strings.TrimSpace(lang) != "" {
		if language, err = entities.ParseLanguage(lang); err != nil {
			return JobTotalsView{}, err
		}
	}
	return JobTotalsView{JobID: job.ID, Totals: totals, Language: language}, nil
}

func (u *JobUseCase) ChangeStatus(ctx context.Context, p entities.Principal, id uint, status entities.JobStatus) (entities.Job, error) {
	status, err := entities.ParseJobStatus(string(status))
	if err != nil {
		return entities.Job{}, err
	}
	_, job, err := u.load(ctx, p, id)
	if err != nil {
		return entities.Job{}, err
	}
	if job.Status == status {
		return job, nil
	}
	if !job.Status.CanTransitionTo(status) {
		return entities.Job{}, fmt.Errorf("%w: %s -> %s", entities.ErrInvalidJobTransition, job.Status, status)
	}

	updated, err := u.jobs.UpdateStatus(ctx, p.CompanyID, id, job.Status, status)
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == 0 {
		current, err := u.jobs.GetByID(ctx, p.CompanyID, id)
		if err != nil {
			return entities.Job{}, err
		}
		if current.ID == 0 {
			return entities.Job{}, ErrJobNotFound
		}
		logger.FromContext(ctx).Warn("[job][usecase] status changed concurrently",
			zap.Uint("job_id", id), zap.String("expected", string(job.Status)), zap.String("current", string(current.Status)))
		return entities.Job{}, fmt.Errorf("%w: job is now %s", ErrJobStatusConflict, current.Status)
	}
	u.audit.record(ctx, p, entities.AuditJobStatusChanged, uintRef(id), map[string]string{"from": string(job.Status), "to": string(status)})
	logger.FromContext(ctx).Info("[job][usecase] status changed",
		zap.Uint("job_id", id), zap.String("from", string(job.Status)), zap.String("to", string(status)))
	return updated, nil
}

func (u *JobUseCase) Assign(ctx context.Context, p entities.Principal, jobID, userID uint, perms entities.Permissions) (entities.JobAssignment, error) {
	if _, err := u.access.require(ctx, p, canManageUsers); err != nil {
		return entities.JobAssignment{}, err
	}
	job, err := u.jobs.GetByID(ctx, p.CompanyID, jobID)
	if err != nil {
		return entities.JobAssignment{}, err
	}
	if job.ID == 0 {
		return entities.JobAssignment{}, ErrJobNotFound
	}
	assignee, err := u.members.Get(ctx, p.CompanyID, userID)
	if err != nil {
		return entities.JobAssignment{}, err
	}
	if assignee.ID == 0 {
		return entities.JobAssignment{}, ErrAssigneeNotFound
	}

	// The grant is stored as requested; capping happens on every read so
	// that lowering the company ceiling later takes effect immediately.
	a, err := u.assignments.Upsert(ctx, entities.JobAssignment{
		JobID:       jobID,
		UserID:      userID,
		Permissions: perms,
		AssignedAt:  time.Now().UTC(),
	})
	if err != nil {
		return entities.JobAssignment{}, err
	}
	u.audit.record(ctx, p, entities.AuditJobAssigned, uintRef(jobID), map[string]string{"user_id": fmt.Sprint(userID)})
	return a, nil
}

func (u *JobUseCase) MyPermissions(ctx context.Context, p entities.Principal, jobID uint) (entities.Permissions, error) {
	m, job, err := u.load(ctx, p, jobID)
	if err != nil {
		return entities.Permissions{}, err
	}
	return u.access.jobPermissions(ctx, m, job.ID)
}

// load returns the caller's membership and the job, hiding jobs outside
// the caller's specialties behind ErrJobNotFound.
func (u *JobUseCase) load(ctx context.Context, p entities.Principal, id uint) (entities.CompanyUser, entities.Job, error) {
	m, err := u.access.membership(ctx, p)
	if err != nil {
		return entities.CompanyUser{}, entities.Job{}, err
	}
	if id == 0 {
		return entities.CompanyUser{}, entities.Job{}, ErrJobNotFound
	}
	job, err := u.jobs.GetByID(ctx, p.CompanyID, id)
	if err != nil {
		return entities.CompanyUser{}, entities.Job{}, err
	}
	if job.ID == 0 {
		return entities.CompanyUser{}, entities.Job{}, ErrJobNotFound
	}
	if !m.Permissions.CanViewAllSpecialties {
		allowed, err := u.members.ListSpecialtyIDs(ctx, p.CompanyID, p.UserID)
		if err != nil {
			return entities.CompanyUser{}, entities.Job{}, err
		}
		if !jobVisible(job, p.UserID, allowed) {
			return entities.CompanyUser{}, entities.Job{}, ErrJobNotFound
		}
	}
	return m, job, nil
}

func (u *JobUseCase) detail(ctx context.Context, m entities.CompanyUser, job entities.Job) (JobDetail, error) {
	perms, err := u.access.jobPermissions(ctx, m, job.ID)
	if err != nil {
		return JobDetail{}, err
	}
	if !perms.CanViewPrices {
		return JobDetail{Job: redactPrices(job), Permissions: perms}, nil
	}

	settings, err := u.companySettings(ctx, job.CompanyID)
	if err != nil {
		return JobDetail{}, err
	}
	totals, err := pricing.ComputeJobTotals(job.Items, settings)
	if err != nil {
		return JobDetail{}, err
	}
	return JobDetail{Job: job, Totals: totals, Permissions: perms, PricesVisible: true}, nil
}

func (u *JobUseCase) companySettings(ctx context.Context, companyID uint) (entities.CompanySettings, error) {
	s, err := u.settings.GetByCompanyID(ctx, companyID)
	if err != nil {
		return entities.CompanySettings{}, err
	}
	if s.CompanyID == 0 {
		return entities.DefaultCompanySettings(companyID), nil
	}
	return s, nil
}

// priceItems snapshots a unit price for every input. Any pricing failure
// aborts the whole save.
func (u *JobUseCase) priceItems(ctx context.Context, job entities.Job, perms entities.Permissions, inputs []JobItemInput) ([]entities.JobItem, error) {
	if len(inputs) == 0 {
		return nil, nil
	}

	var settings *entities.CompanySettings
	items := make([]entities.JobItem, 0, len(inputs))
	for i, in := range inputs {
		if in.Qty.IsNegative() {
			return nil, fmt.Errorf("%w: item %d: quantity must not be negative", ErrInvalidJobItem, i)
		}
		svc, err := u.catalog.GetService(ctx, job.CompanyID, in.ServiceID)
		if err != nil {
			return nil, err
		}
		if svc.ID == 0 {
			return nil, fmt.Errorf("%w: item %d: service %d", ErrServiceNotFound, i, in.ServiceID)
		}

		var unitPrice decimal.Decimal
		switch {
		case in.UnitPrice != nil:
			if !perms.CanEditPrices {
				return nil, ErrForbidden
			}
			if in.UnitPrice.IsNegative() {
				return nil, fmt.Errorf("%w: item %d: unit price must not be negative", ErrInvalidJobItem, i)
			}
			unitPrice = *in.UnitPrice
		case in.MaterialTier != "" || in.ComplexityLevel != "":
			if in.MaterialTier == "" || in.ComplexityLevel == "" {
				return nil, fmt.Errorf("%w: item %d: materialTier and complexityLevel go together", ErrInvalidJobItem, i)
			}
			if settings == nil {
				s, err := u.companySettings(ctx, job.CompanyID)
				if err != nil {
					return nil, err
				}
				settings = &s
			}
			if settings.RegionID == nil {
				return nil, ErrRegionNotConfigured
			}
			key := pricing.RuleKey{
				RegionID:    *settings.RegionID,
				TradeID:     job.TradeID,
				SpecialtyID: uintRef(svc.SpecialtyID),
				Unit:        svc.PricingUnit,
			}
			q, err := u.rules.quote(ctx, key, in.MaterialTier, in.ComplexityLevel)
			if err != nil {
				return nil, fmt.Errorf("item %d: %w", i, err)
			}
			unitPrice = q.UnitPrice
		default:
			unitPrice = svc.UnitPrice
		}
		items = append(items, entities.NewJobItem(svc.ID, in.Qty, unitPrice, svc.PricingUnit))
	}
	return items, nil
}

func jobVisible(j entities.Job, userID uint, allowedSpecialties []uint) bool {
	if j.CreatedBy == userID || j.SpecialtyID == nil {
		return true
	}
	return slices.Contains(allowedSpecialties, *j.SpecialtyID)
}

func redactPrices(j entities.Job) entities.Job {
	items := make([]entities.JobItem, len(j.Items))
	for i, it := range j.Items {
		it.UnitPrice = decimal.Zero
		it.LineTotal = decimal.Zero
		items[i] = it
	}
	j.Items = items
	return j
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = strings.TrimSpace(*v)
	}
}
