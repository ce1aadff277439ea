// Package sendgrid provides a lightweight SendGrid v3 Mail Send client.
// Uses raw HTTP calls (no SDK) to minimize external dependencies.
package sendgrid

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultBaseURL = "https://api.sendgrid.com"

// maxErrorBody bounds how much of a provider error body is retained.
const maxErrorBody = 64 << 10

// ErrNotConfigured is returned when no API key is set.
var ErrNotConfigured = errors.New("sendgrid: not configured")

// APIError is a non-2xx response from the SendGrid API. Status, body and
// headers are preserved so callers can log and report delivery failures.
type APIError struct {
	StatusCode int
	Body       string
	Headers    http.Header
}

func (e *APIError) Error() string {
	return fmt.Sprintf("sendgrid: API error status=%d", e.StatusCode)
}

// Client calls the SendGrid v3 Mail Send endpoint.
type Client struct {
	APIKey     string
	BaseURL    string // defaults to the public API; overridable for tests
	httpClient *http.Client
}

// NewClient creates a Client with the given API key. An empty key produces a
// client whose Send always returns ErrNotConfigured.
func NewClient(apiKey string) *Client {
	return &Client{
		APIKey:     apiKey,
		BaseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type emailAddress struct {
	Email string `json:"email"`
}

type personalization struct {
	To []emailAddress `json:"to"`
}

type sendRequest struct {
	Personalizations []personalization `json:"personalizations"`
	From             emailAddress      `json:"from"`
	Subject          string            `json:"subject"`
	Content          []contentPart     `json:"content"`
}

type contentPart struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

// Send delivers one HTML message. A non-2xx response is returned as an
// *APIError; transport failures are returned as-is.
func (c *Client) Send(ctx context.Context, from, to, subject, htmlBody string) error {
	if c.APIKey == "" {
		return ErrNotConfigured
	}

	payload := sendRequest{
		Personalizations: []personalization{{To: []emailAddress{{Email: to}}}},
		From:             emailAddress{Email: from},
		Subject:          subject,
		Content:          []contentPart{{Type: "text/html", Value: htmlBody}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.BaseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.APIKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	return &APIError{
		StatusCode: resp.StatusCode,
		Body:       string(respBody),
		Headers:    resp.Header.Clone(),
	}
}
