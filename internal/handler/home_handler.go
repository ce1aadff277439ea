package handler

import (
	"net/http"

	"github.com/despacho/backend/internal/service"
)

// HomeHandler serves the landing-page content.
type HomeHandler struct {
	homeService service.HomeService
}

// NewHomeHandler creates a HomeHandler with the given service.
func NewHomeHandler(homeService service.HomeService) *HomeHandler {
	return &HomeHandler{homeService: homeService}
}

// Get handles GET /api/inicio.
func (h *HomeHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, err := h.homeService.Get(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, page)
}
