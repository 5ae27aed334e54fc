// Package handler processes Pub/Sub push requests carrying job change events.
package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"garage/config"
	deliverycontext "garage/internal/delivery/context"
	"garage/internal/domain/constants"
	"garage/internal/domain/service"
	"garage/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// JobEventHandler handles Pub/Sub push messages for job document changes
type JobEventHandler struct {
	verifyPushAuth bool
	logger         *slog.Logger
	validate       *validator.Validate
	notifier       usecase.JobNotifierUsecase
}

// JobEventHandlerParams holds dependencies for the JobEventHandler
type JobEventHandlerParams struct {
	fx.In

	Config   *config.Config
	Logger   *slog.Logger
	Notifier usecase.JobNotifierUsecase
}

// NewJobEventHandler creates a new job change event handler
func NewJobEventHandler(params JobEventHandlerParams) *JobEventHandler {
	// Determine if we need to verify push auth based on config
	verifyPushAuth := params.Config.PubSub != nil &&
		params.Config.PubSub.Provider == constants.PubSubProviderGoogle &&
		params.Config.Env.Env != constants.EnvDevelop

	return &JobEventHandler{
		verifyPushAuth: verifyPushAuth,
		logger:         params.Logger,
		validate:       validator.New(),
		notifier:       params.Notifier,
	}
}

// HandleJobEvent handles incoming Pub/Sub push messages.
//
// Well-formed events are always acknowledged, even when processing fails:
// the system has no retry path, so a non-2xx response would only make the
// push infrastructure redeliver an event we will never handle differently.
func (h *JobEventHandler) HandleJobEvent(c echo.Context) error {
	ctx := c.Request().Context()

	// Verify Pub/Sub token in production for Google provider
	if h.verifyPushAuth {
		if err := verifyPubSubToken(c.Request()); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse job change event
	var event service.JobChangeEvent
	if err := json.Unmarshal(data, &event); err != nil {
		h.logger.Error("[Worker] Failed to parse job change event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.validate.Struct(&event); err != nil {
		h.logger.Error("[Worker] Invalid job change event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &event)

	// Create request-scoped logger with request_id
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	// Update context with request_id and logger
	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing job change event",
		slog.String("job_id", event.JobID),
		slog.String("type", event.Type),
	)

	if err := h.processEvent(ctx, &event); err != nil {
		// Logged and acknowledged: failures never propagate to the trigger
		// infrastructure (no retries by design).
		reqLogger.Error("[Worker] Failed to process job change event",
			slog.String("job_id", event.JobID),
			slog.String("type", event.Type),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusNoContent)
	}

	reqLogger.Info("[Worker] Job change event processed",
		slog.String("job_id", event.JobID),
	)

	return c.NoContent(http.StatusNoContent)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *JobEventHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, event *service.JobChangeEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if event.RequestID != "" {
		return event.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// processEvent routes the event to the matching notifier operation
func (h *JobEventHandler) processEvent(ctx context.Context, event *service.JobChangeEvent) error {
	switch event.Type {
	case service.EventTypeJobUpdated:
		return h.notifier.NotifyJobStatusChange(ctx, event.JobID, event.Before, event.After)
	case service.EventTypeJobCreated:
		return h.notifier.NotifyJobAssignment(ctx, event.JobID, event.After)
	default:
		return errors.Errorf("unknown event type: %s", event.Type)
	}
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request) error {
	// Get the Authorization header
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	// Extract Bearer token
	const bearerPrefix = "Bearer "
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return errors.New("invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, bearerPrefix)

	// Construct the expected audience (the push endpoint URL)
	scheme := "https"
	if req.TLS == nil {
		scheme = "http" // For local development
	}
	audience := fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)

	// Validate the token using Google's ID token validator
	ctx := req.Context()
	payload, err := idtoken.Validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	// Verify the token is from Google Pub/Sub
	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	// Verify email is verified (if email claim exists)
	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}
