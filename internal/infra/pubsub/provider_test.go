package pubsub

import (
	"context"
	"testing"

	"garage/config"
	"garage/internal/domain/entity"
	"garage/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPublisher_NotConfiguredUsesNoop(t *testing.T) {
	publisher, err := NewPublisher(context.Background(), nil, testLogger())

	require.NoError(t, err)
	require.NotNil(t, publisher)

	// The noop publisher accepts events without any transport behind it.
	err = publisher.PublishJobChangeEvent(context.Background(), &service.JobChangeEvent{
		Type:  service.EventTypeJobCreated,
		JobID: "job-1",
		After: &entity.Job{ID: "job-1"},
	})
	require.NoError(t, err)
	require.NoError(t, publisher.Close())
}

func TestNewPublisher_Local(t *testing.T) {
	publisher, err := NewPublisher(context.Background(), &config.PubSubConfig{
		Provider:      "local",
		LocalEndpoint: "http://localhost:8080/events/jobs",
	}, testLogger())

	require.NoError(t, err)
	assert.IsType(t, &localHTTPPublisher{}, publisher)
}

func TestNewPublisher_LocalWithoutEndpoint(t *testing.T) {
	_, err := NewPublisher(context.Background(), &config.PubSubConfig{
		Provider: "local",
	}, testLogger())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "local endpoint is required")
}

func TestNewPublisher_GoogleWithoutProject(t *testing.T) {
	_, err := NewPublisher(context.Background(), &config.PubSubConfig{
		Provider: "google",
		TopicID:  "job-events",
	}, testLogger())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "project ID is required")
}

func TestNewPublisher_GoogleWithoutTopic(t *testing.T) {
	_, err := NewPublisher(context.Background(), &config.PubSubConfig{
		Provider:  "google",
		ProjectID: "garage-dev",
	}, testLogger())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "topic ID is required")
}

func TestNewPublisher_UnknownProvider(t *testing.T) {
	_, err := NewPublisher(context.Background(), &config.PubSubConfig{
		Provider: "kafka",
	}, testLogger())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown pubsub provider")
}
