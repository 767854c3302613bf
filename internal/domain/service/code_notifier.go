// Package service defines domain service contracts implemented by the infra layer.
package service

import (
	"context"
	"time"
)

// LoginCodeEvent is the payload handed to the mail-dispatch pipeline when a
// one-time login code is issued. The mailer itself is an external consumer of
// the topic; this service only publishes.
type LoginCodeEvent struct {
	RequestID     string `json:"request_id,omitempty"` // For distributed tracing
	Email         string `json:"email"`
	Code          string `json:"code"`
	Purpose       string `json:"purpose"`
	ExpiresInMins int    `json:"expires_in_mins"`
	IssuedAt      string `json:"issued_at"`
}

// LoginCodeNotifier dispatches issued login codes to the delivery channel.
type LoginCodeNotifier interface {
	// PublishLoginCode publishes a login-code event for async mail delivery.
	PublishLoginCode(ctx context.Context, event *LoginCodeEvent) error

	// Close releases any resources held by the notifier.
	Close() error
}

// NewLoginCodeEvent builds the event for a freshly issued code.
func NewLoginCodeEvent(email, code, purpose string, expiresIn time.Duration, issuedAt time.Time) *LoginCodeEvent {
	return &LoginCodeEvent{
		Email:         email,
		Code:          code,
		Purpose:       purpose,
		ExpiresInMins: int(expiresIn.Minutes()),
		IssuedAt:      issuedAt.UTC().Format(time.RFC3339),
	}
}
