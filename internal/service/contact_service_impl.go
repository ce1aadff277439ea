package service

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strings"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/internal/repository"
)

// Field length limits, matching the stored column sizes.
const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxMessageLen = 5000
	maxProjectLen = 100
)

// Simplified RFC 5322 address check: local@domain.tld with a TLD of at
// least two letters.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// NormalizeSubmission trims surrounding whitespace from every field and
// truncates to the declared maximum lengths (by runes). Overlong values are
// cut, not rejected. This stage never fails; acceptability is the
// validator's concern.
func NormalizeSubmission(sub model.ContactSubmission) model.ContactSubmission {
	return model.ContactSubmission{
		Name:       sanitizeInput(sub.Name, maxNameLen),
		Email:      sanitizeInput(sub.Email, maxEmailLen),
		Message:    sanitizeInput(sub.Message, maxMessageLen),
		ProjectRef: sanitizeInput(sub.ProjectRef, maxProjectLen),
		Honeypot:   sanitizeInput(sub.Honeypot, 0),
	}
}

// sanitizeInput trims and, when maxLen > 0, truncates to maxLen runes.
func sanitizeInput(s string, maxLen int) string {
	s = strings.TrimSpace(s)
	if maxLen > 0 {
		if r := []rune(s); len(r) > maxLen {
			s = string(r[:maxLen])
		}
	}
	return s
}

// validateSubmission checks a normalized submission. The first failing check
// determines the reported reason; an accepted submission is not mutated.
func validateSubmission(sub model.ContactSubmission) *ValidationError {
	if sub.Honeypot != "" {
		return &ValidationError{Reason: "invalid request", Honeypot: true}
	}
	if sub.Name == "" || sub.Email == "" || sub.Message == "" {
		return &ValidationError{Reason: "all fields are required"}
	}
	if !emailPattern.MatchString(sub.Email) {
		return &ValidationError{Reason: "invalid email"}
	}
	return nil
}

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo     repository.ContactRepository
	notifier ContactNotifier
}

// NewContactService creates a ContactService backed by the given repository
// and notifier.
func NewContactService(repo repository.ContactRepository, notifier ContactNotifier) ContactService {
	return &contactServiceImpl{repo: repo, notifier: notifier}
}

// Submit runs the pipeline. Validation failures stop it with no side
// effects; a failed save stops it before notification, because the durable
// record is the primary deliverable. Notification failures never propagate
// since the record already exists.
func (s *contactServiceImpl) Submit(ctx context.Context, sub model.ContactSubmission) (*SubmitResult, error) {
	sub = NormalizeSubmission(sub)

	if verr := validateSubmission(sub); verr != nil {
		if verr.Honeypot {
			slog.Warn("contact blocked by honeypot")
		}
		return nil, verr
	}

	msg := &model.ContactMessage{
		Name:       sub.Name,
		Email:      sub.Email,
		Message:    sub.Message,
		ProjectRef: sub.ProjectRef,
	}
	if err := s.repo.Save(ctx, msg); err != nil {
		return nil, fmt.Errorf("save contact message: %w", err)
	}

	out := s.notifier.Notify(ctx, msg)
	return &SubmitResult{Message: msg, EmailSent: out.EmailSent, Debug: out.Debug}, nil
}
