package usecase

import (
	"context"
	"errors"
	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"
	"fmt"
	"net/url"
	"strings"
	"time"
)

var ErrInvalidPhoto = errors.New("invalid photo")

type PhotoInput struct {
	URL   string
	Notes string
	JobID *uint
}

type IPhotoUseCase interface {
	Upload(ctx context.Context, p entities.Principal, in PhotoInput) (entities.EstimatePhoto, error)
	ListByJob(ctx context.Context, p entities.Principal, jobID uint) ([]entities.EstimatePhoto, error)
}

type PhotoUseCase struct {
	photos interfaces.IEstimatePhotoRepository
	jobs   interfaces.IJobRepository
	access access
	audit  auditTrail
}

var _ IPhotoUseCase = (*PhotoUseCase)(nil)

func NewPhotoUseCase(photos interfaces.IEstimatePhotoRepository, jobs interfaces.IJobRepository, members interfaces.ICompanyUserRepository, audit interfaces.IAuditLogRepository) *PhotoUseCase {
	return &PhotoUseCase{photos: photos, jobs: jobs, access: access{members: members}, audit: auditTrail{repo: audit}}
}

func (u *PhotoUseCase) Upload(ctx context.Context, p entities.Principal, in PhotoInput) (entities.EstimatePhoto, error) {
	if _, err := u.access.membership(ctx, p); err != nil {
		return entities.EstimatePhoto{}, err
	}
	raw := strings.TrimSpace(in.URL)
	parsed, err := url.Parse(raw)
	if raw == "" || err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https" && parsed.Scheme != "data") {
		return entities.EstimatePhoto{}, fmt.Errorf("%w: url must be http(s) or a data URI", ErrInvalidPhoto)
	}
	if in.JobID != nil {
		if err := u.ensureJob(ctx, p.CompanyID, *in.JobID); err != nil {
			return entities.EstimatePhoto{}, err
		}
	}

	photo, err := u.photos.Create(ctx, entities.EstimatePhoto{
		JobID:     in.JobID,
		CompanyID: p.CompanyID,
		URL:       raw,
		Notes:     strings.TrimSpace(in.Notes),
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return entities.EstimatePhoto{}, err
	}
	u.audit.record(ctx, p, entities.AuditPhotoUploaded, in.JobID, map[string]string{"photo_id": fmt.Sprint(photo.ID)})
	return photo, nil
}

func (u *PhotoUseCase) ListByJob(ctx context.Context, p entities.Principal, jobID uint) ([]entities.EstimatePhoto, error) {
	if _, err := u.access.membership(ctx, p); err != nil {
		return nil, err
	}
	if err := u.ensureJob(ctx, p.CompanyID, jobID); err != nil {
		return nil, err
	}
	return u.photos.ListByJob(ctx, p.CompanyID, jobID)
}

func (u *PhotoUseCase) ensureJob(ctx context.Context, companyID, jobID uint) error {
	job, err := u.jobs.GetByID(ctx, companyID, jobID)
	if err != nil {
		return err
	}
	if job.ID == 0 {
		return ErrJobNotFound
	}
	return nil
}
