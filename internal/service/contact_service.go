package service

import (
	"context"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/internal/notify"
)

// ContactService runs the contact-form intake pipeline: normalize, validate,
// persist, then best-effort notification.
type ContactService interface {
	// Submit processes one submission. A *ValidationError return means the
	// input was rejected and nothing was stored; any other error means the
	// store rejected the write. On success the result reports whether the
	// notification emails actually went out.
	Submit(ctx context.Context, sub model.ContactSubmission) (*SubmitResult, error)
}

// ContactNotifier dispatches the notification emails for a persisted message.
// Satisfied by *notify.Notifier; mocked in tests.
type ContactNotifier interface {
	Notify(ctx context.Context, msg *model.ContactMessage) notify.Outcome
}

// SubmitResult is the outcome of an accepted submission.
type SubmitResult struct {
	Message   *model.ContactMessage
	EmailSent bool
	Debug     map[string]any // provider error details, debug mode only
}

// ValidationError rejects a submission before any side effect. Reason is
// surfaced verbatim to the caller; Honeypot marks spam rejections for
// logging without distinguishing them in the response.
type ValidationError struct {
	Reason   string
	Honeypot bool
}

func (e *ValidationError) Error() string { return e.Reason }
