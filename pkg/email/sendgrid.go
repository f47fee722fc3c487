package email

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/mentormatch/mentormatch-api/pkg/circuitbreaker"
	"github.com/mentormatch/mentormatch-api/pkg/logger"
	"github.com/mentormatch/mentormatch-api/pkg/metrics"
	"github.com/mentormatch/mentormatch-api/pkg/retry"
	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/sony/gobreaker"
	"go.uber.org/zap"
)

// sendFunc matches sendgrid.Client.SendWithContext
type sendFunc func(ctx context.Context, msg *mail.SGMailV3) (*rest.Response, error)

// SendGridSender delivers messages through the SendGrid v3 API
type SendGridSender struct {
	opts    Options
	send    sendFunc
	retry   retry.Config
	breaker *gobreaker.CircuitBreaker
}

// NewSendGridSender creates a sender using apiKey
func NewSendGridSender(apiKey string, opts Options) *SendGridSender {
	client := sendgrid.NewSendClient(apiKey)
	return &SendGridSender{
		opts:    opts,
		send:    client.SendWithContext,
		retry:   retry.EmailConfig(),
		breaker: circuitbreaker.NewCircuitBreaker(breakerConfig("sendgrid")),
	}
}

// breakerConfig keeps rejected messages, such as a bad recipient, from tripping the breaker
func breakerConfig(name string) circuitbreaker.Config {
	cfg := circuitbreaker.DefaultConfig(name)
	cfg.IsSuccessful = func(err error) bool {
		return err == nil || retry.IsPermanent(err)
	}
	return cfg
}

// SendEmail sends msg. Provider 5xx responses are retried, 4xx are not.
// While the breaker is open the provider is not called.
func (s *SendGridSender) SendEmail(ctx context.Context, msg Message) (bool, error) {
	start := time.Now()
	operation := "sendEmail"
	to := SafeAddress(msg.To, s.opts.SafeRecipient)

	from := mail.NewEmail(s.opts.FromName, s.opts.FromAddress)
	recipient := mail.NewEmail(msg.ToName, to)
	message := mail.NewSingleEmail(from, msg.Subject, recipient, msg.Text, msg.HTML)

	_, err := circuitbreaker.Execute(s.breaker, func() (bool, error) {
		return true, s.deliver(ctx, operation, message)
	})

	duration := metrics.MeasureDuration(start)
	metrics.EmailSendDuration.WithLabelValues("sendgrid").Observe(duration)

	if err != nil {
		metrics.EmailsSent.WithLabelValues(templateLabel(msg.Template), "error").Inc()
		logger.LogAPICall("sendgrid", operation, "error", duration,
			zap.String("template", msg.Template),
			zap.Bool("breaker_open", circuitbreaker.IsOpen(err)),
			zap.Error(err))
		return false, err
	}

	metrics.EmailsSent.WithLabelValues(templateLabel(msg.Template), "success").Inc()
	logger.LogAPICall("sendgrid", operation, "success", duration,
		zap.String("template", msg.Template))
	return true, nil
}

func (s *SendGridSender) deliver(ctx context.Context, operation string, message *mail.SGMailV3) error {
	return retry.Do(ctx, s.retry, "sendgrid."+operation, func() error {
		response, err := s.send(ctx, message)
		if err != nil {
			return fmt.Errorf("failed to send email via SendGrid: %w", err)
		}
		switch {
		case response.StatusCode == http.StatusAccepted || response.StatusCode == http.StatusOK:
			return nil
		case response.StatusCode >= 500 || response.StatusCode == http.StatusTooManyRequests:
			return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
		default:
			return retry.Permanent(fmt.Errorf("unexpected SendGrid status code: %d, body: %s",
				response.StatusCode, response.Body))
		}
	})
}

var _ Sender = (*SendGridSender)(nil)
