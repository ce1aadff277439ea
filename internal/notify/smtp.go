package notify

import (
	"context"
	"fmt"
	"time"

	"github.com/wneessen/go-mail"
)

// SMTPMailer delivers messages over SMTP. It exists for deployments that
// have a mailbox but no SendGrid account; selection happens in main via
// EMAIL_PROVIDER.
type SMTPMailer struct {
	host     string
	port     int
	username string
	password string
	timeout  time.Duration
}

// NewSMTPMailer creates an SMTPMailer. STARTTLS is mandatory; port 587 is
// the usual choice.
func NewSMTPMailer(host string, port int, username, password string) *SMTPMailer {
	if port == 0 {
		port = 587
	}
	return &SMTPMailer{
		host:     host,
		port:     port,
		username: username,
		password: password,
		timeout:  30 * time.Second,
	}
}

var _ Mailer = (*SMTPMailer)(nil)

// Send delivers one HTML message. The context bounds the whole dial-and-send
// exchange so a slow SMTP server cannot hang the request indefinitely.
func (m *SMTPMailer) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	msg := mail.NewMsg()
	if err := msg.From(from); err != nil {
		return fmt.Errorf("smtp: invalid from address: %w", err)
	}
	if err := msg.To(to); err != nil {
		return fmt.Errorf("smtp: invalid to address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextHTML, htmlBody)

	opts := []mail.Option{
		mail.WithPort(m.port),
		mail.WithTimeout(m.timeout),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	}
	if m.username != "" {
		opts = append(opts,
			mail.WithSMTPAuth(mail.SMTPAuthPlain),
			mail.WithUsername(m.username),
			mail.WithPassword(m.password),
		)
	}

	c, err := mail.NewClient(m.host, opts...)
	if err != nil {
		return fmt.Errorf("smtp: failed to create client: %w", err)
	}
	if err := c.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp: failed to send: %w", err)
	}
	return nil
}
