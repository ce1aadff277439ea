package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/internal/notify"
)

// ---------------------------------------------------------------------------
// Mocks
// ---------------------------------------------------------------------------

type mockContactRepo struct {
	saveFunc func(ctx context.Context, msg *model.ContactMessage) error
	saved    []*model.ContactMessage
}

func (m *mockContactRepo) Save(ctx context.Context, msg *model.ContactMessage) error {
	if m.saveFunc != nil {
		if err := m.saveFunc(ctx, msg); err != nil {
			return err
		}
	}
	msg.ID = int64(len(m.saved) + 1)
	msg.SubmittedAt = time.Now()
	m.saved = append(m.saved, msg)
	return nil
}

type mockNotifier struct {
	outcome  notify.Outcome
	notified []*model.ContactMessage
}

func (m *mockNotifier) Notify(ctx context.Context, msg *model.ContactMessage) notify.Outcome {
	m.notified = append(m.notified, msg)
	return m.outcome
}

func validSubmission() model.ContactSubmission {
	return model.ContactSubmission{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Hola",
	}
}

// ---------------------------------------------------------------------------
// Normalization
// ---------------------------------------------------------------------------

func TestNormalizeSubmission_TrimsAndTruncates(t *testing.T) {
	sub := NormalizeSubmission(model.ContactSubmission{
		Name:     "  " + strings.Repeat("a", 250) + "  ",
		Email:    " ana@example.com ",
		Message:  "\n hola \n",
		Honeypot: "   ",
	})

	if len([]rune(sub.Name)) != 100 {
		t.Errorf("expected name truncated to 100 runes, got %d", len([]rune(sub.Name)))
	}
	if sub.Email != "ana@example.com" {
		t.Errorf("expected trimmed email, got %q", sub.Email)
	}
	if sub.Message != "hola" {
		t.Errorf("expected trimmed message, got %q", sub.Message)
	}
	if sub.Honeypot != "" {
		t.Errorf("whitespace-only honeypot must normalize to empty, got %q", sub.Honeypot)
	}
}

func TestNormalizeSubmission_TruncatesByRunesNotBytes(t *testing.T) {
	sub := NormalizeSubmission(model.ContactSubmission{Name: strings.Repeat("ñ", 150)})
	if got := len([]rune(sub.Name)); got != 100 {
		t.Errorf("expected 100 runes, got %d", got)
	}
}

func TestNormalizeSubmission_AbsentFieldsBecomeEmpty(t *testing.T) {
	sub := NormalizeSubmission(model.ContactSubmission{})
	if sub.Name != "" || sub.Email != "" || sub.Message != "" || sub.ProjectRef != "" {
		t.Errorf("expected all-empty submission, got %+v", sub)
	}
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

func TestValidateSubmission_HoneypotWins(t *testing.T) {
	// Honeypot is checked before everything else, even with other fields broken.
	verr := validateSubmission(model.ContactSubmission{Honeypot: "bot", Email: "not-an-email"})
	if verr == nil {
		t.Fatal("expected rejection")
	}
	if verr.Reason != "invalid request" {
		t.Errorf("expected reason %q, got %q", "invalid request", verr.Reason)
	}
	if !verr.Honeypot {
		t.Error("expected internal honeypot signal")
	}
}

func TestValidateSubmission_RequiredFields(t *testing.T) {
	cases := []model.ContactSubmission{
		{Email: "a@b.com", Message: "x"},
		{Name: "Ana", Message: "x"},
		{Name: "Ana", Email: "a@b.com"},
	}
	for _, sub := range cases {
		verr := validateSubmission(sub)
		if verr == nil || verr.Reason != "all fields are required" {
			t.Errorf("submission %+v: expected required-fields rejection, got %v", sub, verr)
		}
		if verr != nil && verr.Honeypot {
			t.Error("required-field rejection must not carry the honeypot signal")
		}
	}
}

func TestValidateSubmission_EmailPattern(t *testing.T) {
	valid := []string{"a@b.co", "user.name+tag@sub.example.com", "A_B%c@example.org"}
	invalid := []string{"not-an-email", "a@b", "a@b.c", "@example.com", "a b@example.com", "a@exa mple.com"}

	for _, email := range valid {
		sub := validSubmission()
		sub.Email = email
		if verr := validateSubmission(sub); verr != nil {
			t.Errorf("email %q: expected acceptance, got %q", email, verr.Reason)
		}
	}
	for _, email := range invalid {
		sub := validSubmission()
		sub.Email = email
		verr := validateSubmission(sub)
		if verr == nil || verr.Reason != "invalid email" {
			t.Errorf("email %q: expected invalid-email rejection, got %v", email, verr)
		}
	}
}

// ---------------------------------------------------------------------------
// Pipeline
// ---------------------------------------------------------------------------

func TestContactService_Submit_Success(t *testing.T) {
	repo := &mockContactRepo{}
	notifier := &mockNotifier{outcome: notify.Outcome{EmailSent: true}}
	svc := NewContactService(repo, notifier)

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(repo.saved))
	}
	if !result.EmailSent {
		t.Error("expected EmailSent=true from notifier")
	}
	if len(notifier.notified) != 1 || notifier.notified[0] != repo.saved[0] {
		t.Error("expected the persisted message to be handed to the notifier")
	}
}

func TestContactService_Submit_Honeypot_NoSideEffects(t *testing.T) {
	repo := &mockContactRepo{}
	notifier := &mockNotifier{}
	svc := NewContactService(repo, notifier)

	sub := validSubmission()
	sub.Honeypot = "filled"
	_, err := svc.Submit(context.Background(), sub)

	var verr *ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected *ValidationError, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Error("honeypot rejection must not create a record")
	}
	if len(notifier.notified) != 0 {
		t.Error("honeypot rejection must not notify")
	}
}

func TestContactService_Submit_InvalidEmail_NoRecord(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, &mockNotifier{})

	sub := validSubmission()
	sub.Email = "not-an-email"
	_, err := svc.Submit(context.Background(), sub)

	var verr *ValidationError
	if !errors.As(err, &verr) || verr.Reason != "invalid email" {
		t.Fatalf("expected invalid-email rejection, got %v", err)
	}
	if len(repo.saved) != 0 {
		t.Error("rejected submission must not create a record")
	}
}

func TestContactService_Submit_StoresRawTextUnescaped(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, &mockNotifier{})

	sub := validSubmission()
	sub.Name = "<script>x</script>"
	_, err := svc.Submit(context.Background(), sub)
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	// Escaping happens only at notification time, never at rest.
	if repo.saved[0].Name != "<script>x</script>" {
		t.Errorf("expected literal script text in storage, got %q", repo.saved[0].Name)
	}
}

func TestContactService_Submit_TruncatesStoredFields(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, &mockNotifier{})

	sub := model.ContactSubmission{
		Name:       strings.Repeat("n", 250),
		Email:      "ana@example.com",
		Message:    strings.Repeat("m", 6000),
		ProjectRef: strings.Repeat("p", 150),
	}
	if _, err := svc.Submit(context.Background(), sub); err != nil {
		t.Fatalf("expected success, got %v", err)
	}

	saved := repo.saved[0]
	if len([]rune(saved.Name)) != 100 {
		t.Errorf("expected stored name length 100, got %d", len([]rune(saved.Name)))
	}
	if len([]rune(saved.Message)) != 5000 {
		t.Errorf("expected stored message length 5000, got %d", len([]rune(saved.Message)))
	}
	if len([]rune(saved.ProjectRef)) != 100 {
		t.Errorf("expected stored project ref length 100, got %d", len([]rune(saved.ProjectRef)))
	}
}

func TestContactService_Submit_SaveFailure_NoNotification(t *testing.T) {
	repo := &mockContactRepo{
		saveFunc: func(ctx context.Context, msg *model.ContactMessage) error {
			return errors.New("connection refused")
		},
	}
	notifier := &mockNotifier{}
	svc := NewContactService(repo, notifier)

	_, err := svc.Submit(context.Background(), validSubmission())
	if err == nil {
		t.Fatal("expected error on save failure")
	}
	var verr *ValidationError
	if errors.As(err, &verr) {
		t.Error("a persistence failure must not look like a validation failure")
	}
	if len(notifier.notified) != 0 {
		t.Error("a failed save must not trigger notification")
	}
}

func TestContactService_Submit_NotificationFailureIsSoft(t *testing.T) {
	repo := &mockContactRepo{}
	notifier := &mockNotifier{outcome: notify.Outcome{
		EmailSent: false,
		Debug:     map[string]any{"sendgrid_status": 403},
	}}
	svc := NewContactService(repo, notifier)

	result, err := svc.Submit(context.Background(), validSubmission())
	if err != nil {
		t.Fatalf("notification failure must not fail the request, got %v", err)
	}
	if result.EmailSent {
		t.Error("expected EmailSent=false")
	}
	if result.Debug["sendgrid_status"] != 403 {
		t.Errorf("expected debug passthrough, got %v", result.Debug)
	}
	if len(repo.saved) != 1 {
		t.Error("the record must survive a notification failure")
	}
}

func TestContactService_Submit_NoDeduplication(t *testing.T) {
	repo := &mockContactRepo{}
	svc := NewContactService(repo, &mockNotifier{})

	for i := 0; i < 2; i++ {
		if _, err := svc.Submit(context.Background(), validSubmission()); err != nil {
			t.Fatalf("submit %d: %v", i, err)
		}
	}
	if len(repo.saved) != 2 {
		t.Errorf("identical resubmission must create a second record, got %d", len(repo.saved))
	}
}
