package email

import (
	"context"
	"fmt"
	"time"

	"github.com/mailgun/mailgun-go/v4"

	"github.com/tripdesk/tripdesk-api/internal/application/auth"
	"github.com/tripdesk/tripdesk-api/pkg/config"
	"github.com/tripdesk/tripdesk-api/pkg/logger"
)

var _ auth.MailSender = (*MailgunSender)(nil)

const sendTimeout = 30 * time.Second

// MailgunSender delivers auth emails through Mailgun. With no API key
// configured it degrades to logging the link, which keeps local development
// working without a Mailgun account.
type MailgunSender struct {
	mg   *mailgun.MailgunImpl
	from string
	log  *logger.Logger
}

// NewMailgunSender builds the sender from config. mg is nil when no API key
// is set.
func NewMailgunSender(cfg config.MailConfig, log *logger.Logger) *MailgunSender {
	var mg *mailgun.MailgunImpl
	if cfg.APIKey != "" {
		mg = mailgun.NewMailgun(cfg.Domain, cfg.APIKey)
	}
	return &MailgunSender{mg: mg, from: cfg.From, log: log}
}

// SendPasswordReset mails the reset link.
func (s *MailgunSender) SendPasswordReset(ctx context.Context, to, name, link string) error {
	subject := "Reset your password"
	body := fmt.Sprintf("Hi %s,\n\nUse the link below to set a new password. It expires in one hour.\n\n%s\n", name, link)
	return s.send(ctx, to, subject, body, link)
}

// SendEmailChange mails the verification link to the new address.
func (s *MailgunSender) SendEmailChange(ctx context.Context, to, name, link string) error {
	subject := "Confirm your new email address"
	body := fmt.Sprintf("Hi %s,\n\nConfirm this address for your account with the link below. It expires in one hour.\n\n%s\n", name, link)
	return s.send(ctx, to, subject, body, link)
}

func (s *MailgunSender) send(ctx context.Context, to, subject, body, link string) error {
	if s.mg == nil {
		s.log.Info().Str("to", to).Str("link", link).Msg("mailgun disabled, link not sent")
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()

	message := mailgun.NewMessage(s.from, subject, body, to)
	_, id, err := s.mg.Send(ctx, message)
	if err != nil {
		return fmt.Errorf("mailgun send: %w", err)
	}
	s.log.Debug().Str("to", to).Str("message_id", id).Msg("email queued")
	return nil
}
