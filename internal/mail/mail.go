// Package mail sends outbound email through a configured SMTP relay.
package mail

import (
	"context"

	gomail "github.com/wneessen/go-mail"

	"github.com/planetary/planetary-api/internal/config"
)

// Sender dispatches a single plain-text email.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPSender sends mail through an SMTP relay using go-mail.
type SMTPSender struct {
	client *gomail.Client
	from   string
}

// NewSMTPSender creates an SMTP sender from the mail configuration.
func NewSMTPSender(cfg config.Config) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.MailPort),
	}

	if cfg.MailUsername != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.MailUsername),
			gomail.WithPassword(cfg.MailPassword),
		)
	}

	switch {
	case cfg.MailUseSSL:
		opts = append(opts, gomail.WithSSLPort(false))
	case cfg.MailUseTLS:
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	default:
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.NoTLS))
	}

	client, err := gomail.NewClient(cfg.MailHost, opts...)
	if err != nil {
		return nil, err
	}

	return &SMTPSender{client: client, from: cfg.MailSender}, nil
}

// Send dispatches a plain-text message. The call blocks until the relay
// accepts or rejects the message.
func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMsg()
	if err := msg.From(s.from); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextPlain, body)

	return s.client.DialAndSendWithContext(ctx, msg)
}
