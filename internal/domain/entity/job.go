// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

// Job is a read-only snapshot of a job document in the external job store.
// The store owns the record; this system only observes it at change time.
type Job struct {
	ID                 string  `json:"id"`
	Title              string  `json:"title,omitempty"`
	Status             *string `json:"status,omitempty"`             // nil when the document has no status field
	AssignedMechanicID string  `json:"assignedMechanicId,omitempty"` // empty when the job is unassigned
}

// UntitledJobName is the display fallback for jobs without a title.
const UntitledJobName = "Untitled Job"

// DisplayTitle returns the job title, falling back to the given default
// when the document carries no title.
func (j *Job) DisplayTitle(fallback string) string {
	if j == nil || j.Title == "" {
		return fallback
	}

	return j.Title
}

// StatusChanged reports whether the status differs between two snapshots.
// A status missing on both sides counts as unchanged.
func StatusChanged(before, after *Job) bool {
	var prev, next *string
	if before != nil {
		prev = before.Status
	}
	if after != nil {
		next = after.Status
	}

	if prev == nil && next == nil {
		return false
	}
	if prev == nil || next == nil {
		return true
	}

	return *prev != *next
}
