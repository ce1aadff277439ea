// Package notify sends the two contact-form notification emails (operator
// alert and submitter confirmation) on a strictly best-effort basis: by the
// time Notify runs the message is already persisted, so every failure here
// degrades to email_sent=false instead of failing the request.
package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log/slog"
	"strings"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/pkg/sendgrid"
)

// maxDebugBody bounds the provider error excerpt echoed in debug mode.
const maxDebugBody = 1000

// Config is the notifier's construction-time configuration. All fields are
// optional; missing values skip sending rather than erroring.
type Config struct {
	FromEmail string // sender for both messages
	ToEmail   string // operator inbox
	Debug     bool   // include bounded provider error details in the outcome
}

// Mailer delivers a single HTML message. Both the SendGrid client and the
// SMTP mailer satisfy it.
type Mailer interface {
	Send(ctx context.Context, from, to, subject, htmlBody string) error
}

// Outcome reports how notification went. Debug is nil unless debug mode is
// on and a send failed.
type Outcome struct {
	EmailSent bool
	Debug     map[string]any
}

// Notifier builds and dispatches the notification emails for an accepted,
// already-persisted contact message.
type Notifier struct {
	cfg    Config
	mailer Mailer // nil when no provider is configured
}

// New creates a Notifier. A nil mailer is valid and means every Notify call
// reports EmailSent=false.
func New(cfg Config, mailer Mailer) *Notifier {
	return &Notifier{cfg: cfg, mailer: mailer}
}

// Notify attempts both notification messages. The operator alert and the
// confirmation are independent: a failure in one does not prevent the other,
// and EmailSent is true only when both went out. Never returns an error.
func (n *Notifier) Notify(ctx context.Context, msg *model.ContactMessage) Outcome {
	if n.mailer == nil {
		slog.Error("email provider credentials not configured")
		slog.Info("contact saved without email", "name", msg.Name, "email", msg.Email)
		return Outcome{}
	}
	if n.cfg.FromEmail == "" || n.cfg.ToEmail == "" {
		slog.Error("notification sender/recipient not configured")
		slog.Info("contact saved without email", "name", msg.Name, "email", msg.Email)
		return Outcome{}
	}

	operatorErr := n.mailer.Send(ctx, n.cfg.FromEmail, n.cfg.ToEmail,
		"New contact message: "+msg.Name, operatorBody(msg))
	confirmErr := n.mailer.Send(ctx, n.cfg.FromEmail, msg.Email,
		"We received your message - Estudio Carcon", confirmationBody(msg))

	err := operatorErr
	if err == nil {
		err = confirmErr
	}
	if err == nil {
		slog.Info("notification emails sent", "operator", n.cfg.ToEmail, "confirm", msg.Email)
		return Outcome{EmailSent: true}
	}
	return n.degrade(msg, err)
}

// degrade logs a failed send and builds the non-fatal outcome.
func (n *Notifier) degrade(msg *model.ContactMessage, err error) Outcome {
	out := Outcome{EmailSent: false}

	var apiErr *sendgrid.APIError
	switch {
	case errors.As(err, &apiErr):
		slog.Error("email provider rejected message",
			"status", apiErr.StatusCode,
			"body", apiErr.Body,
			"headers", fmt.Sprintf("%v", apiErr.Headers),
		)
		if n.cfg.Debug {
			out.Debug = map[string]any{
				"sendgrid_status": apiErr.StatusCode,
				"sendgrid_body":   truncate(apiErr.Body, maxDebugBody),
			}
		}
	case errors.Is(err, sendgrid.ErrNotConfigured):
		slog.Error("email provider credentials not configured")
	default:
		slog.Error("unexpected error sending email",
			"error_type", fmt.Sprintf("%T", err),
			"error", err.Error(),
		)
		if n.cfg.Debug {
			out.Debug = map[string]any{
				"exception_type": fmt.Sprintf("%T", err),
				"exception":      err.Error(),
				"hint":           "on TLS certificate verification errors, point SSL_CERT_FILE at the correct CA bundle (proxy/antivirus)",
			}
		}
	}

	slog.Warn("contact saved but email not sent", "name", msg.Name, "email", msg.Email)
	return out
}

// escapeForHTML makes submitter-controlled text safe for interpolation into
// an email body: HTML-escape, then turn newlines into line breaks. This is
// the sole XSS defense for the pipeline; stored records keep the raw text.
func escapeForHTML(s string) string {
	return strings.ReplaceAll(html.EscapeString(s), "\n", "<br>")
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func operatorBody(msg *model.ContactMessage) string {
	project := escapeForHTML(msg.ProjectRef)
	if project == "" {
		project = "not specified"
	}
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>New contact message</title></head>
<body style="margin:0; padding:20px; background:#f6f6f6; font-family:Arial, Helvetica, sans-serif;">
  <div style="max-width:600px; margin:0 auto; background:#ffffff; border:1px solid #e6e6e6; padding:20px;">
    <div style="font-size:13px; letter-spacing:0.12em; text-transform:uppercase; color:#666;">Estudio Carcon</div>
    <div style="font-size:20px; color:#111; font-weight:bold; margin:6px 0 14px;">New contact message</div>
    <table width="100%%" cellspacing="0" cellpadding="8" style="border-collapse:collapse; font-size:13px; color:#111;">
      <tr><td style="background:#fafafa; border:1px solid #ededed; width:140px;">Name</td><td style="border:1px solid #ededed;">%s</td></tr>
      <tr><td style="background:#fafafa; border:1px solid #ededed;">Email</td><td style="border:1px solid #ededed;">%s</td></tr>
      <tr><td style="background:#fafafa; border:1px solid #ededed;">Project</td><td style="border:1px solid #ededed;">%s</td></tr>
    </table>
    <div style="margin-top:14px; font-size:12px; letter-spacing:0.10em; text-transform:uppercase; color:#666;">Message</div>
    <div style="margin-top:6px; padding:12px; border:1px solid #e6e6e6; font-size:14px; line-height:20px; color:#111;">%s</div>
    <p style="margin-top:14px; font-size:12px; color:#777;">Received from the website contact form.</p>
  </div>
</body>
</html>`,
		escapeForHTML(msg.Name),
		escapeForHTML(msg.Email),
		project,
		escapeForHTML(msg.Message),
	)
}

func confirmationBody(msg *model.ContactMessage) string {
	return fmt.Sprintf(`<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>We received your message</title></head>
<body style="margin:0; padding:20px; background:#f6f6f6; font-family:Arial, Helvetica, sans-serif;">
  <div style="max-width:600px; margin:0 auto; background:#ffffff; border:1px solid #e6e6e6; padding:20px;">
    <div style="font-size:13px; letter-spacing:0.12em; text-transform:uppercase; color:#666;">Estudio Carcon</div>
    <div style="font-size:20px; color:#111; font-weight:bold; margin:6px 0 14px;">We received your message</div>
    <p style="font-size:14px; line-height:20px; color:#111; margin:0;">Hi %s,</p>
    <p style="font-size:14px; line-height:20px; color:#444; margin:10px 0 0;">
      Thanks for writing to us. We received your message and will get back to you as soon as possible.
    </p>
    <div style="margin-top:14px; font-size:12px; letter-spacing:0.10em; text-transform:uppercase; color:#666;">Summary</div>
    <div style="margin-top:6px; padding:12px; border:1px solid #e6e6e6; font-size:14px; line-height:20px; color:#111;">%s</div>
    <p style="font-size:14px; line-height:20px; color:#444; margin:14px 0 0;">
      Best regards,<br><span style="color:#111; font-weight:bold;">The Estudio Carcon team</span>
    </p>
    <p style="margin-top:14px; font-size:11px; color:#888;">If you don't recognize this message, you can ignore it.</p>
  </div>
</body>
</html>`,
		escapeForHTML(msg.Name),
		escapeForHTML(msg.Message),
	)
}
