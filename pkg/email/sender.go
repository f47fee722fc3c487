// Package email delivers rendered messages through an external provider.
package email

import (
	"context"
	"strings"
	"time"

	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"go.uber.org/zap"
)

// Message is a single outgoing e-mail
type Message struct {
	To       string
	ToName   string
	Subject  string
	HTML     string
	Text     string
	Template string // metric label only
}

// Sender sends one message and reports whether the provider accepted it
type Sender interface {
	SendEmail(ctx context.Context, msg Message) (bool, error)
}

// Options are shared by every sender implementation
type Options struct {
	FromAddress string
	FromName    string
	// SafeRecipient replaces placeholder addresses (example.com, malformed) when set
	SafeRecipient string
}

// SafeAddress returns safeRecipient for test and malformed addresses, address otherwise.
// An empty safeRecipient disables the rewrite.
func SafeAddress(address, safeRecipient string) string {
	if safeRecipient == "" {
		return address
	}
	lower := strings.ToLower(strings.TrimSpace(address))
	if strings.HasSuffix(lower, "example.com") || !strings.Contains(lower, "@") || !strings.Contains(lower, ".") {
		return safeRecipient
	}
	return address
}

// LogSender writes messages to the log instead of delivering them
type LogSender struct {
	opts Options
}

// NewLogSender creates a sender for development without provider credentials
func NewLogSender(opts Options) *LogSender {
	return &LogSender{opts: opts}
}

func (s *LogSender) SendEmail(ctx context.Context, msg Message) (bool, error) {
	start := time.Now()
	to := SafeAddress(msg.To, s.opts.SafeRecipient)

	logger.Info("Email not delivered (log sender)",
		zap.String("to", to),
		zap.String("subject", msg.Subject),
		zap.String("template", msg.Template),
		zap.Int("html_bytes", len(msg.HTML)))

	metrics.EmailSendDuration.WithLabelValues("log").Observe(metrics.MeasureDuration(start))
	metrics.EmailsSent.WithLabelValues(templateLabel(msg.Template), "logged").Inc()
	return true, nil
}

func templateLabel(template string) string {
	if template == "" {
		return "custom"
	}
	return template
}

var _ Sender = (*LogSender)(nil)
