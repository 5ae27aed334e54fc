package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"garage/config"
	"garage/internal/domain/entity"
	"garage/internal/domain/service"
	"garage/internal/infra/pubsub"

	"github.com/google/uuid"
)

// Supported subcommands:
// - created: Publish a job.created event (assignment notification path)
// - updated: Publish a job.updated event (status change notification path)

func main() {
	createdCmd := flag.NewFlagSet("created", flag.ExitOnError)
	updatedCmd := flag.NewFlagSet("updated", flag.ExitOnError)

	// created parameters
	createdJobID := createdCmd.String("job", "", "Job document id (random when empty)")
	createdTitle := createdCmd.String("title", "", "Job title (empty to exercise the Untitled Job fallback)")
	createdMechanic := createdCmd.String("mechanic", "", "Assigned mechanic user id (empty for an unassigned job)")
	createdStatus := createdCmd.String("status", "pending", "Initial job status")

	// updated parameters
	updatedJobID := updatedCmd.String("job", "", "Job document id (random when empty)")
	updatedTitle := updatedCmd.String("title", "", "Job title")
	updatedOld := updatedCmd.String("old-status", "pending", "Status before the update (empty for no status field)")
	updatedNew := updatedCmd.String("new-status", "in-progress", "Status after the update (empty for no status field)")

	// shared publisher parameters, registered on both flag sets
	createdPub := registerPublisherFlags(createdCmd)
	updatedPub := registerPublisherFlags(updatedCmd)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	var event *service.JobChangeEvent
	var pub publisherFlags

	switch os.Args[1] {
	case "created":
		createdCmd.Parse(os.Args[2:])
		pub = createdPub
		event = &service.JobChangeEvent{
			RequestID: uuid.New().String(),
			Type:      service.EventTypeJobCreated,
			JobID:     orRandomJobID(*createdJobID),
			After: &entity.Job{
				Title:              *createdTitle,
				Status:             optionalStatus(*createdStatus),
				AssignedMechanicID: *createdMechanic,
			},
		}
	case "updated":
		updatedCmd.Parse(os.Args[2:])
		pub = updatedPub
		jobID := orRandomJobID(*updatedJobID)
		event = &service.JobChangeEvent{
			RequestID: uuid.New().String(),
			Type:      service.EventTypeJobUpdated,
			JobID:     jobID,
			Before: &entity.Job{
				Title:  *updatedTitle,
				Status: optionalStatus(*updatedOld),
			},
			After: &entity.Job{
				Title:  *updatedTitle,
				Status: optionalStatus(*updatedNew),
			},
		}
	default:
		printUsage()
		os.Exit(1)
	}

	event.After.ID = event.JobID
	if event.Before != nil {
		event.Before.ID = event.JobID
	}

	publisher, err := newPublisher(ctx, logger, pub)
	if err != nil {
		logger.Error("Failed to create publisher", slog.Any("error", err))
		os.Exit(1)
	}
	defer publisher.Close()

	if err := publisher.PublishJobChangeEvent(ctx, event); err != nil {
		logger.Error("Failed to publish event", slog.Any("error", err))
		os.Exit(1)
	}
}

type publisherFlags struct {
	provider *string
	endpoint *string
	project  *string
	topic    *string
}

func registerPublisherFlags(cmd *flag.FlagSet) publisherFlags {
	return publisherFlags{
		provider: cmd.String("provider", "local", "Publisher: local or google"),
		endpoint: cmd.String("endpoint", "http://localhost:8080/events/jobs", "Worker endpoint (local provider)"),
		project:  cmd.String("project", "", "GCP project id (google provider)"),
		topic:    cmd.String("topic", "", "Pub/Sub topic id (google provider)"),
	}
}

func newPublisher(ctx context.Context, logger *slog.Logger, pub publisherFlags) (service.EventPublisher, error) {
	return pubsub.NewPublisher(ctx, &config.PubSubConfig{
		Provider:      *pub.provider,
		ProjectID:     *pub.project,
		TopicID:       *pub.topic,
		LocalEndpoint: *pub.endpoint,
	}, logger)
}

func orRandomJobID(id string) string {
	if id != "" {
		return id
	}

	return "job-" + uuid.New().String()[:8]
}

func optionalStatus(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}

func printUsage() {
	fmt.Println("Usage: jobsim <created|updated> [flags]")
	fmt.Println()
	fmt.Println("  created  Publish a job.created event (assignment notification)")
	fmt.Println("  updated  Publish a job.updated event (status change notification)")
	fmt.Println()
	fmt.Println("Run 'jobsim <subcommand> -h' for flags.")
}
