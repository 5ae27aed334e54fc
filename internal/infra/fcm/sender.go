// Package fcm delivers push notifications through Firebase Cloud Messaging.
package fcm

import (
	"context"

	"garage/internal/domain/entity"
	"garage/internal/domain/service"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
)

// Firebase limits one multicast request to 500 tokens.
const maxTokensPerMulticast = 500

type sender struct {
	client *messaging.Client
}

// NewSender creates a push sender backed by Firebase Cloud Messaging
func NewSender(client *messaging.Client) service.PushSender {
	return &sender{client: client}
}

// SendMulticast sends the payload to all tokens in one multicast call and
// maps the response back to ordered per-token results
func (s *sender) SendMulticast(ctx context.Context, msg *entity.PushNotification) ([]entity.SendResult, error) {
	if len(msg.Tokens) > maxTokensPerMulticast {
		return nil, errors.Errorf("token count exceeds limit: %d (max %d)", len(msg.Tokens), maxTokensPerMulticast)
	}

	message := &messaging.MulticastMessage{
		Tokens: msg.Tokens,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: msg.Data,
	}

	response, err := s.client.SendEachForMulticast(ctx, message)
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	results := make([]entity.SendResult, len(response.Responses))
	for idx, sendResponse := range response.Responses {
		results[idx] = entity.SendResult{
			Token:   msg.Tokens[idx],
			Success: sendResponse.Success,
			Err:     sendResponse.Error,
		}
	}

	return results, nil
}
