package repository

import (
	"context"
	"time"

	"field_estimator/internal/domain/entities"
	"field_estimator/internal/usecase/interfaces"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// JobRepository persists jobs and their items in Postgres.
//
// Items are only ever written as a whole list: Create inserts them with
// the job and Update replaces them inside the same transaction.
type JobRepository struct {
	db *gorm.DB
}

var _ interfaces.IJobRepository = (*JobRepository)(nil)

func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

var jobUpdateColumns = []string{
	"specialty_id", "client_name", "client_phone", "client_email", "address",
	"address_locked", "address_released_at", "scheduled_at", "door_code", "notes", "updated_at",
}

func (r *JobRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	m := toJobModel(j)
	m.ID = 0
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return entities.Job{}, translateError(err)
	}
	return fromJobModel(m), nil
}

func (r *JobRepository) GetByID(ctx context.Context, companyID, id uint) (entities.Job, error) {
	return r.get(ctx, r.db, companyID, id)
}

func (r *JobRepository) get(ctx context.Context, db *gorm.DB, companyID, id uint) (entities.Job, error) {
	var m jobModel
	err := db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("job_items.id") }).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&m).Error
	if isNotFound(err) {
		return entities.Job{}, nil
	}
	if err != nil {
		return entities.Job{}, err
	}
	return fromJobModel(m), nil
}

func (r *JobRepository) ListByCompany(ctx context.Context, companyID uint) ([]entities.Job, error) {
	var ms []jobModel
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		Order("created_at DESC, id DESC").
		Find(&ms).Error
	if err != nil {
		return nil, err
	}
	out := make([]entities.Job, 0, len(ms))
	for _, m := range ms {
		out = append(out, fromJobModel(m))
	}
	return out, nil
}

func (r *JobRepository) Update(ctx context.Context, j entities.Job, replaceItems bool) (entities.Job, error) {
	m := toJobModel(j)
	var out entities.Job
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&jobModel{}).
			Where("company_id = ? AND id = ?", j.CompanyID, j.ID).
			Select(jobUpdateColumns).
			Omit(clause.Associations).
			Updates(&m)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}

		if replaceItems {
			if err := tx.Where("job_id = ?", j.ID).Delete(&jobItemModel{}).Error; err != nil {
				return err
			}
			if items := toJobItemModels(j.ID, j.Items); len(items) > 0 {
				if err := tx.Create(&items).Error; err != nil {
					return err
				}
			}
		}

		var err error
		out, err = r.get(ctx, tx, j.CompanyID, j.ID)
		return err
	})
	if err != nil {
		return entities.Job{}, translateError(err)
	}
	return out, nil
}

// UpdateStatus is a compare-and-set on the status column so two racing
// transitions cannot both apply.
func (r *JobRepository) UpdateStatus(ctx context.Context, companyID, id uint, from, to entities.JobStatus) (entities.Job, error) {
	res := r.db.WithContext(ctx).
		Model(&jobModel{}).
		Where("company_id = ? AND id = ? AND status = ?", companyID, id, string(from)).
		Updates(map[string]any{"status": string(to), "updated_at": time.Now().UTC()})
	if res.Error != nil {
		return entities.Job{}, res.Error
	}
	if res.RowsAffected == 0 {
		return entities.Job{}, nil
	}
	return r.GetByID(ctx, companyID, id)
}

func (r *JobRepository) Delete(ctx context.Context, companyID, id uint) (bool, error) {
	var deleted bool
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("company_id = ? AND id = ?", companyID, id).Delete(&jobModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		deleted = true
		if err := tx.Where("job_id = ?", id).Delete(&jobItemModel{}).Error; err != nil {
			return err
		}
		return tx.Where("job_id = ?", id).Delete(&jobAssignmentModel{}).Error
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}

type JobAssignmentRepository struct {
	db *gorm.DB
}

var _ interfaces.IJobAssignmentRepository = (*JobAssignmentRepository)(nil)

func NewJobAssignmentRepository(db *gorm.DB) *JobAssignmentRepository {
	return &JobAssignmentRepository{db: db}
}

func (r *JobAssignmentRepository) Upsert(ctx context.Context, a entities.JobAssignment) (entities.JobAssignment, error) {
	m := jobAssignmentModel{
		JobID:       a.JobID,
		UserID:      a.UserID,
		Permissions: a.Permissions.Encode(),
		AssignedAt:  a.AssignedAt,
	}
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "job_id"}, {Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"permissions", "assigned_at"}),
	}).Create(&m).Error
	if err != nil {
		return entities.JobAssignment{}, err
	}
	return r.Get(ctx, a.JobID, a.UserID)
}

func (r *JobAssignmentRepository) Get(ctx context.Context, jobID, userID uint) (entities.JobAssignment, error) {
	var m jobAssignmentModel
	err := r.db.WithContext(ctx).Where("job_id = ? AND user_id = ?", jobID, userID).First(&m).Error
	if isNotFound(err) {
		return entities.JobAssignment{}, nil
	}
	if err != nil {
		return entities.JobAssignment{}, err
	}
	return fromJobAssignmentModel(m)
}
