// Package usecase defines the application service interfaces.
package usecase

import (
	"context"

	"garage/internal/domain/entity"
)

// JobNotifierUsecase reacts to job document changes and fans out push
// notifications to the affected stakeholders.
//
// Both operations treat "nothing to send" (unchanged status, unassigned
// job, empty recipient set, unresolved user) as a clean completion. A
// returned error means an external dependency failed: the directory lookup
// or the multicast call itself. Per-address delivery failures are logged,
// never returned.
type JobNotifierUsecase interface {
	// NotifyJobStatusChange handles an update to a job document and
	// notifies all admins when the status field changed.
	NotifyJobStatusChange(ctx context.Context, jobID string, before, after *entity.Job) error

	// NotifyJobAssignment handles a newly created job document and notifies
	// the assigned mechanic, if any.
	NotifyJobAssignment(ctx context.Context, jobID string, job *entity.Job) error
}
