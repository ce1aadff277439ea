package model

import "time"

// Project is a portfolio entry. JSON keys follow the site's existing API
// contract, which the frontend consumes in Spanish.
type Project struct {
	ID          int64          `json:"id"`
	Name        string         `json:"nombre"`
	Description string         `json:"descripcion"`
	Category    string         `json:"categoria"`
	Subcategory string         `json:"subcategoria"`
	ImageURL    string         `json:"-"` // legacy single-image field, used as gallery fallback
	Images      []ProjectImage `json:"imagenes"`
	CreatedAt   time.Time      `json:"fecha_creacion"`
}

// ProjectImage is one gallery image of a project, ordered by SortOrder.
type ProjectImage struct {
	URL       string `json:"imagen"`
	SortOrder int    `json:"-"`
}

// ProjectListOptions carries the filter and pagination parameters for the
// project listing. Category and Subcategory match exactly (case-insensitive);
// Query matches the name as a case-insensitive substring.
type ProjectListOptions struct {
	Category    string
	Subcategory string
	Query       string
	Page        int
	PageSize    int
}

// ProjectListResult is the paginated listing projection.
type ProjectListResult struct {
	Count    int        `json:"count"`
	Page     int        `json:"page"`
	Pages    int        `json:"pages"`
	PageSize int        `json:"page_size"`
	Results  []*Project `json:"results"`
}
