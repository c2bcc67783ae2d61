package notify

import (
	"context"
	"fmt"

	"reserva/pkg/logger"

	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

// EmailMessage is a single outbound email.
type EmailMessage struct {
	To      string
	ToName  string
	Subject string
	HTML    string
}

// Sender is the email collaborator. Send failures are the caller's to
// swallow; the sender itself only reports them.
type Sender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SendGridSender sends via the SendGrid API.
type SendGridSender struct {
	client    *sendgrid.Client
	fromEmail string
	fromName  string
	log       *logger.Logger
}

func NewSendGridSender(apiKey, fromEmail, fromName string, log *logger.Logger) (*SendGridSender, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("sendgrid API key cannot be empty")
	}
	if fromEmail == "" {
		return nil, fmt.Errorf("from address cannot be empty")
	}

	return &SendGridSender{
		client:    sendgrid.NewSendClient(apiKey),
		fromEmail: fromEmail,
		fromName:  fromName,
		log:       log,
	}, nil
}

func (s *SendGridSender) Send(ctx context.Context, msg EmailMessage) error {
	from := mail.NewEmail(s.fromName, s.fromEmail)
	to := mail.NewEmail(msg.ToName, msg.To)
	message := mail.NewSingleEmail(from, msg.Subject, to, msg.HTML, msg.HTML)

	response, err := s.client.SendWithContext(ctx, message)
	if err != nil {
		return fmt.Errorf("sendgrid send failed: %w", err)
	}
	if response.StatusCode >= 400 {
		return fmt.Errorf("sendgrid returned status %d", response.StatusCode)
	}

	s.log.Debug("Email sent", "to", msg.To, "subject", msg.Subject, "status", response.StatusCode)
	return nil
}

// LogSender logs instead of sending. Used when SendGrid is not
// configured, so booking creation still works in development.
type LogSender struct {
	log *logger.Logger
}

func NewLogSender(log *logger.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg EmailMessage) error {
	s.log.Info("Email delivery skipped (no sender configured)", "to", msg.To, "subject", msg.Subject)
	return nil
}
