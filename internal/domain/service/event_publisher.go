package service

import (
	"context"

	"garage/internal/domain/entity"
)

// Job change event types carried in JobChangeEvent.Type.
const (
	EventTypeJobCreated = "job.created"
	EventTypeJobUpdated = "job.updated"
)

// JobChangeEvent is the wire form of one document change on the external
// job store: a before/after pair for updates, a single after snapshot for
// creations.
type JobChangeEvent struct {
	RequestID string      `json:"request_id,omitempty"` // For distributed tracing
	Type      string      `json:"type" validate:"required,oneof=job.created job.updated"`
	JobID     string      `json:"jobId" validate:"required"`
	Before    *entity.Job `json:"before,omitempty"`
	After     *entity.Job `json:"after" validate:"required"`
}

// EventPublisher defines the interface for publishing job change events to
// the worker's intake, either through a message queue or directly over HTTP.
type EventPublisher interface {
	// PublishJobChangeEvent publishes one change event for processing.
	PublishJobChangeEvent(ctx context.Context, event *JobChangeEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
