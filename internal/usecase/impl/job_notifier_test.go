package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"garage/internal/domain/entity"
	mockRepo "garage/internal/mocks/repository"
	mockSvc "garage/internal/mocks/service"
	"garage/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestJobNotifier(t *testing.T) (
	usecase.JobNotifierUsecase,
	*mockRepo.MockUserRepository,
	*mockSvc.MockPushSender,
) {
	userRepo := mockRepo.NewMockUserRepository(t)
	sender := mockSvc.NewMockPushSender(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))

	notifier := NewJobNotifier(logger, userRepo, sender)

	return notifier, userRepo, sender
}

func strPtr(s string) *string {
	return &s
}

func TestJobNotifier_NotifyJobStatusChange_Success(t *testing.T) {
	notifier, userRepo, sender := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Title: "Replace brakes", Status: strPtr("pending")}
	after := &entity.Job{ID: "job-1", Title: "Replace brakes", Status: strPtr("in-progress")}

	userRepo.EXPECT().
		FindByRole(ctx, entity.RoleAdmin).
		Return([]*entity.User{
			{ID: "admin-1", Role: entity.RoleAdmin, FCMTokens: []string{"tok-1", "tok-2"}},
		}, nil)

	var sent *entity.PushNotification
	sender.EXPECT().
		SendMulticast(ctx, mock.Anything).
		Run(func(_ context.Context, msg *entity.PushNotification) {
			sent = msg
		}).
		Return([]entity.SendResult{
			{Token: "tok-1", Success: true},
			{Token: "tok-2", Success: true},
		}, nil)

	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "Job Status Update!", sent.Title)
	assert.Equal(t, `Job "Replace brakes" status changed to: in-progress`, sent.Body)
	assert.Equal(t, map[string]string{"jobId": "job-1", "newStatus": "in-progress"}, sent.Data)
	assert.Equal(t, []string{"tok-1", "tok-2"}, sent.Tokens)
}

func TestJobNotifier_NotifyJobStatusChange_Unchanged(t *testing.T) {
	notifier, _, _ := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Status: strPtr("pending")}
	after := &entity.Job{ID: "job-1", Status: strPtr("pending")}

	// No resolution and no send expectations: any call would fail the test.
	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	require.NoError(t, err)
}

func TestJobNotifier_NotifyJobStatusChange_StatusMissingOnBothSides(t *testing.T) {
	notifier, _, _ := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Title: "No status yet"}
	after := &entity.Job{ID: "job-1", Title: "No status yet"}

	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	require.NoError(t, err)
}

func TestJobNotifier_NotifyJobStatusChange_StatusAppears(t *testing.T) {
	notifier, userRepo, sender := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-2"}
	after := &entity.Job{ID: "job-2", Status: strPtr("pending")}

	userRepo.EXPECT().
		FindByRole(ctx, entity.RoleAdmin).
		Return([]*entity.User{
			{ID: "admin-1", Role: entity.RoleAdmin, FCMTokens: []string{"tok-1"}},
		}, nil)

	var sent *entity.PushNotification
	sender.EXPECT().
		SendMulticast(ctx, mock.Anything).
		Run(func(_ context.Context, msg *entity.PushNotification) {
			sent = msg
		}).
		Return([]entity.SendResult{{Token: "tok-1", Success: true}}, nil)

	err := notifier.NotifyJobStatusChange(ctx, "job-2", before, after)

	require.NoError(t, err)
	require.NotNil(t, sent)
	// No title on the job: the body falls back to the job id.
	assert.Equal(t, `Job "job-2" status changed to: pending`, sent.Body)
}

func TestJobNotifier_NotifyJobStatusChange_NoAdmins(t *testing.T) {
	notifier, userRepo, _ := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Status: strPtr("pending")}
	after := &entity.Job{ID: "job-1", Status: strPtr("done")}

	userRepo.EXPECT().
		FindByRole(ctx, entity.RoleAdmin).
		Return([]*entity.User{}, nil)

	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	require.NoError(t, err)
}

func TestJobNotifier_NotifyJobStatusChange_AdminsWithoutTokens(t *testing.T) {
	notifier, userRepo, _ := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Status: strPtr("pending")}
	after := &entity.Job{ID: "job-1", Status: strPtr("done")}

	userRepo.EXPECT().
		FindByRole(ctx, entity.RoleAdmin).
		Return([]*entity.User{
			{ID: "admin-1", Role: entity.RoleAdmin},
			{ID: "admin-2", Role: entity.RoleAdmin, FCMTokens: []string{}},
		}, nil)

	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	require.NoError(t, err)
}

func TestJobNotifier_NotifyJobStatusChange_FlattensTokensAcrossAdmins(t *testing.T) {
	notifier, userRepo, sender := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Status: strPtr("pending")}
	after := &entity.Job{ID: "job-1", Status: strPtr("done")}

	userRepo.EXPECT().
		FindByRole(ctx, entity.RoleAdmin).
		Return([]*entity.User{
			{ID: "admin-1", Role: entity.RoleAdmin, FCMTokens: []string{"a-1", "a-2"}},
			{ID: "admin-2", Role: entity.RoleAdmin},
			{ID: "admin-3", Role: entity.RoleAdmin, FCMTokens: []string{"c-1"}},
		}, nil)

	var sent *entity.PushNotification
	sender.EXPECT().
		SendMulticast(ctx, mock.Anything).
		Run(func(_ context.Context, msg *entity.PushNotification) {
			sent = msg
		}).
		Return([]entity.SendResult{
			{Token: "a-1", Success: true},
			{Token: "a-2", Success: true},
			{Token: "c-1", Success: true},
		}, nil)

	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, []string{"a-1", "a-2", "c-1"}, sent.Tokens)
}

func TestJobNotifier_NotifyJobStatusChange_LookupFailure(t *testing.T) {
	notifier, userRepo, _ := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Status: strPtr("pending")}
	after := &entity.Job{ID: "job-1", Status: strPtr("done")}

	userRepo.EXPECT().
		FindByRole(ctx, entity.RoleAdmin).
		Return(nil, errors.New("directory unreachable"))

	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query admin users")
}

func TestJobNotifier_NotifyJobStatusChange_SendFailure(t *testing.T) {
	notifier, userRepo, sender := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Status: strPtr("pending")}
	after := &entity.Job{ID: "job-1", Status: strPtr("done")}

	userRepo.EXPECT().
		FindByRole(ctx, entity.RoleAdmin).
		Return([]*entity.User{
			{ID: "admin-1", Role: entity.RoleAdmin, FCMTokens: []string{"tok-1"}},
		}, nil)

	sender.EXPECT().
		SendMulticast(ctx, mock.Anything).
		Return(nil, errors.New("push service unavailable"))

	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to send multicast notification")
}

func TestJobNotifier_NotifyJobStatusChange_PartialDeliveryFailure(t *testing.T) {
	notifier, userRepo, sender := createTestJobNotifier(t)

	ctx := context.Background()
	before := &entity.Job{ID: "job-1", Status: strPtr("pending")}
	after := &entity.Job{ID: "job-1", Status: strPtr("done")}

	userRepo.EXPECT().
		FindByRole(ctx, entity.RoleAdmin).
		Return([]*entity.User{
			{ID: "admin-1", Role: entity.RoleAdmin, FCMTokens: []string{"good-token", "stale-token"}},
		}, nil)

	// Per-token failures are logged, never surfaced as an error.
	sender.EXPECT().
		SendMulticast(ctx, mock.Anything).
		Return([]entity.SendResult{
			{Token: "good-token", Success: true},
			{Token: "stale-token", Success: false, Err: errors.New("unregistered token")},
		}, nil)

	err := notifier.NotifyJobStatusChange(ctx, "job-1", before, after)

	require.NoError(t, err)
}

func TestJobNotifier_NotifyJobAssignment_Success(t *testing.T) {
	notifier, userRepo, sender := createTestJobNotifier(t)

	ctx := context.Background()
	job := &entity.Job{ID: "job-9", AssignedMechanicID: "mech-42"}

	userRepo.EXPECT().
		FindByID(ctx, "mech-42").
		Return(&entity.User{
			ID:        "mech-42",
			Role:      entity.RoleMechanic,
			FCMTokens: []string{"tok-A", "tok-B"},
		}, nil)

	var sent *entity.PushNotification
	sender.EXPECT().
		SendMulticast(ctx, mock.Anything).
		Run(func(_ context.Context, msg *entity.PushNotification) {
			sent = msg
		}).
		Return([]entity.SendResult{
			{Token: "tok-A", Success: true},
			{Token: "tok-B", Success: true},
		}, nil)

	err := notifier.NotifyJobAssignment(ctx, "job-9", job)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "New Job Assigned!", sent.Title)
	assert.Equal(t, `You have been assigned a new job: "Untitled Job".`, sent.Body)
	assert.Equal(t, map[string]string{"jobId": "job-9"}, sent.Data)
	assert.Equal(t, []string{"tok-A", "tok-B"}, sent.Tokens)
}

func TestJobNotifier_NotifyJobAssignment_WithTitle(t *testing.T) {
	notifier, userRepo, sender := createTestJobNotifier(t)

	ctx := context.Background()
	job := &entity.Job{ID: "job-9", Title: "Oil change", AssignedMechanicID: "mech-1"}

	userRepo.EXPECT().
		FindByID(ctx, "mech-1").
		Return(&entity.User{ID: "mech-1", Role: entity.RoleMechanic, FCMTokens: []string{"tok"}}, nil)

	var sent *entity.PushNotification
	sender.EXPECT().
		SendMulticast(ctx, mock.Anything).
		Run(func(_ context.Context, msg *entity.PushNotification) {
			sent = msg
		}).
		Return([]entity.SendResult{{Token: "tok", Success: true}}, nil)

	err := notifier.NotifyJobAssignment(ctx, "job-9", job)

	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, `You have been assigned a new job: "Oil change".`, sent.Body)
}

func TestJobNotifier_NotifyJobAssignment_NoMechanic(t *testing.T) {
	notifier, _, _ := createTestJobNotifier(t)

	ctx := context.Background()
	job := &entity.Job{ID: "job-9", Title: "Unassigned work"}

	err := notifier.NotifyJobAssignment(ctx, "job-9", job)

	require.NoError(t, err)
}

func TestJobNotifier_NotifyJobAssignment_MechanicNotFound(t *testing.T) {
	notifier, userRepo, _ := createTestJobNotifier(t)

	ctx := context.Background()
	job := &entity.Job{ID: "job-9", AssignedMechanicID: "mech-ghost"}

	userRepo.EXPECT().
		FindByID(ctx, "mech-ghost").
		Return(nil, nil)

	err := notifier.NotifyJobAssignment(ctx, "job-9", job)

	require.NoError(t, err)
}

func TestJobNotifier_NotifyJobAssignment_MechanicWithoutTokens(t *testing.T) {
	notifier, userRepo, _ := createTestJobNotifier(t)

	ctx := context.Background()
	job := &entity.Job{ID: "job-9", AssignedMechanicID: "mech-7"}

	userRepo.EXPECT().
		FindByID(ctx, "mech-7").
		Return(&entity.User{ID: "mech-7", Role: entity.RoleMechanic}, nil)

	err := notifier.NotifyJobAssignment(ctx, "job-9", job)

	require.NoError(t, err)
}

func TestJobNotifier_NotifyJobAssignment_LookupFailure(t *testing.T) {
	notifier, userRepo, _ := createTestJobNotifier(t)

	ctx := context.Background()
	job := &entity.Job{ID: "job-9", AssignedMechanicID: "mech-1"}

	userRepo.EXPECT().
		FindByID(ctx, "mech-1").
		Return(nil, errors.New("directory unreachable"))

	err := notifier.NotifyJobAssignment(ctx, "job-9", job)

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch mechanic mech-1")
}
