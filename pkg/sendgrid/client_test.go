package sendgrid

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Send_Success(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody sendRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		_ = json.NewDecoder(r.Body).Decode(&gotBody)
		w.WriteHeader(http.StatusAccepted)
	}))
	defer srv.Close()

	c := NewClient("SG.test-key")
	c.BaseURL = srv.URL

	err := c.Send(context.Background(), "studio@example.com", "ops@example.com", "New message", "<p>hi</p>")
	if err != nil {
		t.Fatalf("expected success, got: %v", err)
	}
	if gotAuth != "Bearer SG.test-key" {
		t.Errorf("expected bearer auth header, got %q", gotAuth)
	}
	if gotPath != "/v3/mail/send" {
		t.Errorf("expected /v3/mail/send, got %q", gotPath)
	}
	if gotBody.From.Email != "studio@example.com" {
		t.Errorf("expected from studio@example.com, got %q", gotBody.From.Email)
	}
	if len(gotBody.Personalizations) != 1 || len(gotBody.Personalizations[0].To) != 1 ||
		gotBody.Personalizations[0].To[0].Email != "ops@example.com" {
		t.Errorf("unexpected personalizations: %+v", gotBody.Personalizations)
	}
	if len(gotBody.Content) != 1 || gotBody.Content[0].Type != "text/html" {
		t.Errorf("expected one text/html content part, got %+v", gotBody.Content)
	}
}

func TestClient_Send_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Request-Id", "req-123")
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"errors":[{"message":"The from address does not match a verified Sender Identity"}]}`))
	}))
	defer srv.Close()

	c := NewClient("SG.test-key")
	c.BaseURL = srv.URL

	err := c.Send(context.Background(), "bad@example.com", "ops@example.com", "s", "<p>x</p>")
	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T: %v", err, err)
	}
	if apiErr.StatusCode != http.StatusForbidden {
		t.Errorf("expected status 403, got %d", apiErr.StatusCode)
	}
	if apiErr.Body == "" || apiErr.Headers.Get("X-Request-Id") != "req-123" {
		t.Errorf("expected body and headers preserved, got body=%q headers=%v", apiErr.Body, apiErr.Headers)
	}
}

func TestClient_Send_NotConfigured(t *testing.T) {
	c := NewClient("")
	err := c.Send(context.Background(), "a@b.com", "c@d.com", "s", "body")
	if !errors.Is(err, ErrNotConfigured) {
		t.Errorf("expected ErrNotConfigured, got %v", err)
	}
}
