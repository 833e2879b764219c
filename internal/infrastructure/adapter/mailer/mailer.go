package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/resend/resend-go/v2"

	coreport "github.com/amirhossein-jamali/loyalty-service/internal/domain/port/core"
	"github.com/amirhossein-jamali/loyalty-service/internal/domain/port/notification"
)

// ErrMissingAPIKey is returned when the Resend mailer has no API key
var ErrMissingAPIKey = errors.New("resend api key is required")

// ResendMailer delivers email through the Resend API
type ResendMailer struct {
	client *resend.Client
	from   string
	logger coreport.Logger
}

var _ notification.Mailer = (*ResendMailer)(nil)

// NewResendMailer creates a ResendMailer sending as from
func NewResendMailer(apiKey, from string, logger coreport.Logger) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return newResendMailer(resend.NewClient(apiKey), from, logger), nil
}

func newResendMailer(client *resend.Client, from string, logger coreport.Logger) *ResendMailer {
	return &ResendMailer{client: client, from: from, logger: logger}
}

// Send implements notification.Mailer
func (m *ResendMailer) Send(ctx context.Context, email notification.Email) error {
	sent, err := m.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    m.from,
		To:      []string{email.To},
		Subject: email.Subject,
		Html:    email.HTML,
	})
	if err != nil {
		return fmt.Errorf("send email: %w", err)
	}

	m.logger.Debug("Email sent", map[string]any{
		"to":         email.To,
		"subject":    email.Subject,
		"message_id": sent.Id,
	})
	return nil
}

// LogMailer writes emails to the log instead of sending them. Used in development.
type LogMailer struct {
	logger coreport.Logger
}

var _ notification.Mailer = (*LogMailer)(nil)

// NewLogMailer creates a LogMailer
func NewLogMailer(logger coreport.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send implements notification.Mailer
func (m *LogMailer) Send(ctx context.Context, email notification.Email) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Info("Email not sent, log mailer active", map[string]any{
		"to":      email.To,
		"subject": email.Subject,
		"html":    email.HTML,
	})
	return nil
}
