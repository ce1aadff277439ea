package handler

import (
	"net/http"

	"github.com/despacho/backend/internal/service"
)

// TeamHandler serves the about-page content.
type TeamHandler struct {
	teamService service.TeamService
}

// NewTeamHandler creates a TeamHandler with the given service.
func NewTeamHandler(teamService service.TeamService) *TeamHandler {
	return &TeamHandler{teamService: teamService}
}

// About handles GET /api/equipo.
func (h *TeamHandler) About(w http.ResponseWriter, r *http.Request) {
	page, err := h.teamService.About(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, page)
}
