package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "garage/internal/delivery/context"
	"garage/internal/domain/entity"
	"garage/internal/domain/repository"
	"garage/internal/domain/service"
	"garage/internal/usecase"

	"github.com/pkg/errors"
)

const (
	statusChangeTitle = "Job Status Update!"
	assignmentTitle   = "New Job Assigned!"
)

type jobNotifier struct {
	logger   *slog.Logger
	userRepo repository.UserRepository
	sender   service.PushSender
}

// NewJobNotifier creates a new job notifier instance
func NewJobNotifier(
	logger *slog.Logger,
	userRepo repository.UserRepository,
	sender service.PushSender,
) usecase.JobNotifierUsecase {
	return &jobNotifier{
		logger:   logger,
		userRepo: userRepo,
		sender:   sender,
	}
}

// NotifyJobStatusChange notifies all admins when a job's status field changed
func (n *jobNotifier) NotifyJobStatusChange(ctx context.Context, jobID string, before, after *entity.Job) error {
	logger := n.loggerFrom(ctx)

	if !entity.StatusChanged(before, after) {
		logger.Info("job status did not change, no notification sent",
			slog.String("job_id", jobID),
		)

		return nil
	}

	newStatus := statusOf(after)
	logger.Info("job status changed",
		slog.String("job_id", jobID),
		slog.String("old_status", statusOf(before)),
		slog.String("new_status", newStatus),
	)

	admins, err := n.userRepo.FindByRole(ctx, entity.RoleAdmin)
	if err != nil {
		return errors.Wrap(err, "failed to query admin users")
	}

	if len(admins) == 0 {
		logger.Info("no admin users found to notify", slog.String("job_id", jobID))

		return nil
	}

	tokens := collectTokens(admins)
	if len(tokens) == 0 {
		logger.Info("no FCM tokens found for admin users", slog.String("job_id", jobID))

		return nil
	}

	msg := &entity.PushNotification{
		Title: statusChangeTitle,
		Body:  fmt.Sprintf("Job %q status changed to: %s", after.DisplayTitle(jobID), newStatus),
		Data: map[string]string{
			"jobId":     jobID,
			"newStatus": newStatus,
		},
		Tokens: tokens,
	}

	return n.dispatch(ctx, msg)
}

// NotifyJobAssignment notifies the assigned mechanic of a newly created job
func (n *jobNotifier) NotifyJobAssignment(ctx context.Context, jobID string, job *entity.Job) error {
	logger := n.loggerFrom(ctx)

	mechanicID := ""
	if job != nil {
		mechanicID = job.AssignedMechanicID
	}
	if mechanicID == "" {
		logger.Info("job has no assigned mechanic, no notification sent",
			slog.String("job_id", jobID),
		)

		return nil
	}

	logger.Info("new job assigned",
		slog.String("job_id", jobID),
		slog.String("mechanic_id", mechanicID),
	)

	mechanic, err := n.userRepo.FindByID(ctx, mechanicID)
	if err != nil {
		return errors.Wrapf(err, "failed to fetch mechanic %s", mechanicID)
	}

	if mechanic == nil {
		logger.Info("assigned mechanic not found",
			slog.String("job_id", jobID),
			slog.String("mechanic_id", mechanicID),
		)

		return nil
	}

	if !mechanic.HasTokens() {
		logger.Info("no FCM tokens found for mechanic",
			slog.String("job_id", jobID),
			slog.String("mechanic_id", mechanicID),
		)

		return nil
	}

	msg := &entity.PushNotification{
		Title: assignmentTitle,
		Body:  fmt.Sprintf("You have been assigned a new job: %q.", job.DisplayTitle(entity.UntitledJobName)),
		Data: map[string]string{
			"jobId": jobID,
		},
		Tokens: mechanic.FCMTokens,
	}

	return n.dispatch(ctx, msg)
}

// dispatch sends the payload in one multicast call and logs each per-token
// outcome. Per-token failures are observational only; the batch already
// attempted every address.
func (n *jobNotifier) dispatch(ctx context.Context, msg *entity.PushNotification) error {
	logger := n.loggerFrom(ctx)

	results, err := n.sender.SendMulticast(ctx, msg)
	if err != nil {
		return errors.Wrap(err, "failed to send multicast notification")
	}

	for _, result := range results {
		if result.Success {
			logger.Info("notification delivered",
				slog.String("token", result.Token),
			)

			continue
		}

		logger.Error("notification delivery failed",
			slog.String("token", result.Token),
			slog.Any("error", result.Err),
		)
	}

	return nil
}

// collectTokens flattens the registered FCM tokens of all users into one
// ordered list.
func collectTokens(users []*entity.User) []string {
	tokens := make([]string, 0, len(users))
	for _, user := range users {
		tokens = append(tokens, user.FCMTokens...)
	}

	return tokens
}

func statusOf(job *entity.Job) string {
	if job == nil || job.Status == nil {
		return ""
	}

	return *job.Status
}

func (n *jobNotifier) loggerFrom(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, n.logger)
}
