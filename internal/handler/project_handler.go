package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/despacho/backend/internal/model"
	"github.com/despacho/backend/internal/repository"
	"github.com/despacho/backend/internal/service"
	"github.com/go-chi/chi/v5"
)

// ProjectHandler serves the public portfolio endpoints.
type ProjectHandler struct {
	projectService service.ProjectService
}

// NewProjectHandler creates a ProjectHandler with the given service.
func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles GET /api/proyectos.
// Query params: categoria, sub (exact, case-insensitive), q (name substring),
// page, page_size. Non-numeric pagination values fall back to defaults.
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := model.ProjectListOptions{
		Category:    q.Get("categoria"),
		Subcategory: q.Get("sub"),
		Query:       q.Get("q"),
	}
	if n, err := strconv.Atoi(q.Get("page")); err == nil && n > 0 {
		opts.Page = n
	}
	if n, err := strconv.Atoi(q.Get("page_size")); err == nil && n > 0 {
		opts.PageSize = n
	}

	result, err := h.projectService.List(r.Context(), opts)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, result)
}

// Get handles GET /api/proyectos/{id}.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid id"})
		return
	}

	project, err := h.projectService.GetByID(r.Context(), id)
	if errors.Is(err, repository.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
		return
	}
	writeJSON(w, http.StatusOK, project)
}
