package interfaces

import (
	"context"
	"field_estimator/internal/domain/entities"
)

// IJobRepository abstracts relational persistence for jobs and their items.
//
// Every lookup is scoped to a company. A zero-value Job (ID == 0) means
// "not found".
//   - Create stores the job and its items atomically
//   - Update replaces the item list only when replaceItems is set
//   - ListByCompany does not load items

type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, companyID, id uint) (entities.Job, error)
	ListByCompany(ctx context.Context, companyID uint) ([]entities.Job, error)
	Update(ctx context.Context, j entities.Job, replaceItems bool) (entities.Job, error)
	// UpdateStatus moves the job from one status to another and yields a
	// zero value when the job is missing or no longer in from.
	UpdateStatus(ctx context.Context, companyID, id uint, from, to entities.JobStatus) (entities.Job, error)
	Delete(ctx context.Context, companyID, id uint) (bool, error)
}

// IJobAssignmentRepository stores job-level permission grants.
// Get returns a zero value when the user is not assigned to the job.
type IJobAssignmentRepository interface {
	Upsert(ctx context.Context, a entities.JobAssignment) (entities.JobAssignment, error)
	Get(ctx context.Context, jobID, userID uint) (entities.JobAssignment, error)
}
