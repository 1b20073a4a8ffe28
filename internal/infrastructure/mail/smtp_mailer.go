package mail

import (
	"context"
	"errors"
	"fmt"

	"field_estimator/internal/infrastructure/config"
	"field_estimator/internal/infrastructure/logger"
	"field_estimator/internal/usecase/interfaces"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

var ErrNoRecipient = errors.New("no recipient specified")

// SMTPMailer sends plain-text transactional mail through the configured
// SMTP relay.
type SMTPMailer struct {
	cfg config.SMTPConfig
}

var _ interfaces.IMailer = (*SMTPMailer)(nil)

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg}
}

// NewMailer returns an SMTP mailer, or nil when SMTP is not configured.
// A nil mailer makes invites link-only.
func NewMailer(cfg config.SMTPConfig) interfaces.IMailer {
	if !cfg.Enabled() {
		return nil
	}
	return NewSMTPMailer(cfg)
}

func (s *SMTPMailer) Send(ctx context.Context, msg interfaces.MailMessage) error {
	m, err := s.buildMessage(msg)
	if err != nil {
		return err
	}

	client, err := gomail.NewClient(s.cfg.Host, s.options()...)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	logger.FromContext(ctx).Info("[invite][mail] email sent", zap.String("to", msg.To), zap.String("subject", msg.Subject))
	return nil
}

func (s *SMTPMailer) buildMessage(msg interfaces.MailMessage) (*gomail.Msg, error) {
	if msg.To == "" {
		return nil, ErrNoRecipient
	}
	from := s.cfg.From
	if from == "" {
		from = s.cfg.Username
	}

	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, fmt.Errorf("failed to set from: %w", err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("failed to set to: %w", err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.TextBody)
	return m, nil
}

func (s *SMTPMailer) options() []gomail.Option {
	opts := []gomail.Option{
		gomail.WithPort(s.cfg.Port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if s.cfg.Password != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(s.cfg.Username),
			gomail.WithPassword(s.cfg.Password),
		)
	}
	return opts
}
