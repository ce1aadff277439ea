package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/internal/service"
)

// ContactHandler handles contact form submission.
type ContactHandler struct {
	contactService service.ContactService
}

// NewContactHandler creates a ContactHandler with the given service.
func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{contactService: contactService}
}

// submitRequest is the expected JSON body for POST /api/contact. Field names
// follow the site's existing frontend contract.
type submitRequest struct {
	Name       string `json:"nombre"`
	Email      string `json:"correo"`
	Message    string `json:"mensaje"`
	ProjectRef string `json:"proyecto"`
	Honeypot   string `json:"hp"`
}

type submitErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

type submitOKResponse struct {
	OK        bool           `json:"ok"`
	Message   string         `json:"message"`
	EmailSent bool           `json:"email_sent"`
	Debug     map[string]any `json:"debug,omitempty"`
}

// Submit handles POST /api/contact. A rejected submission gets a 400 with
// the validation reason; a failed save gets a 500; once the record is
// stored the response is 200 regardless of how notification went, so the
// frontend never prompts a resubmission for an email-only failure.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, submitErrorResponse{Error: "invalid JSON"})
		return
	}

	result, err := h.contactService.Submit(r.Context(), model.ContactSubmission{
		Name:       req.Name,
		Email:      req.Email,
		Message:    req.Message,
		ProjectRef: req.ProjectRef,
		Honeypot:   req.Honeypot,
	})
	if err != nil {
		var verr *service.ValidationError
		if errors.As(err, &verr) {
			writeJSON(w, http.StatusBadRequest, submitErrorResponse{Error: verr.Reason})
			return
		}
		slog.Error("error saving contact message", "error", err)
		writeJSON(w, http.StatusInternalServerError, submitErrorResponse{Error: "error saving message"})
		return
	}

	if !result.EmailSent {
		writeJSON(w, http.StatusOK, submitOKResponse{
			OK:        true,
			Message:   "saved; email may not have been sent",
			EmailSent: false,
			Debug:     result.Debug,
		})
		return
	}
	writeJSON(w, http.StatusOK, submitOKResponse{
		OK:        true,
		Message:   "sent successfully",
		EmailSent: true,
	})
}
