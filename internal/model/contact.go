package model

import "time"

// ContactSubmission is the ephemeral, per-request form payload. Values are
// raw until normalized by the contact service; the honeypot field is expected
// to stay empty for human submitters.
type ContactSubmission struct {
	Name       string
	Email      string
	Message    string
	ProjectRef string // free-form label of the project the sender refers to
	Honeypot   string
}

// ContactMessage is the durable record created for each accepted submission.
// Text is stored trimmed/truncated but never HTML-escaped; escaping happens
// only when notification bodies are built.
type ContactMessage struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Message     string    `json:"message"`
	ProjectRef  string    `json:"project_ref,omitempty"`
	SubmittedAt time.Time `json:"submitted_at"`
}
