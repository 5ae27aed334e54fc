// Package service defines the external service interfaces of the domain.
package service

import (
	"context"

	"garage/internal/domain/entity"
)

// PushSender delivers a notification payload to the external push service.
type PushSender interface {
	// SendMulticast sends the payload to all target tokens in one multicast
	// call and returns one result per input token, in input order. A non-nil
	// error means the call itself failed and no per-token results exist.
	SendMulticast(ctx context.Context, msg *entity.PushNotification) ([]entity.SendResult, error)
}
