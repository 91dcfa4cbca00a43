package service

import (
	"context"
	"log/slog"
)

// LogMailer is the default Mailer. Real delivery is owned by an external
// system; until it is wired in, reset requests are recorded in the audit
// log and nothing is sent.
type LogMailer struct{}

// NewLogMailer creates a LogMailer.
func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

// SendPasswordReset logs the dispatch and reports success.
func (m *LogMailer) SendPasswordReset(ctx context.Context, email string) error {
	slog.Info("password reset email queued", "email", email)
	return nil
}
