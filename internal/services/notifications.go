package services

import (
	"context"

	"github.com/mentormatch/mentormatch-api/internal/emails"
	"github.com/mentormatch/mentormatch-api/pkg/email"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"go.uber.org/zap"
)

// sendEmail delivers a rendered e-mail and reports whether the provider accepted it.
// Failures are logged and never returned.
func sendEmail(ctx context.Context, sender email.Sender, to, toName string, e emails.Email, fields ...zap.Field) bool {
	fields = append(fields, zap.String("template", e.Template))

	ok, err := sender.SendEmail(ctx, email.Message{
		To:       to,
		ToName:   toName,
		Subject:  e.Subject,
		HTML:     e.HTML,
		Text:     e.Text,
		Template: e.Template,
	})
	if err != nil {
		logger.Warn("Failed to send email", append(fields, zap.Error(err))...)
		return false
	}
	if !ok {
		logger.Warn("Email was not accepted by the provider", fields...)
	}
	return ok
}
