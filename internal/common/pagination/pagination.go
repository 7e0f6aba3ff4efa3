// Package pagination implements page/per_page query parsing and the
// paginated list envelope returned by collection endpoints.
package pagination

import (
	"net/http"
	"strconv"
)

// DefaultPerPage is the page size used when the client does not ask for one.
const DefaultPerPage = 20

// MaxPerPage caps the page size a client may request.
const MaxPerPage = 100

// Params holds normalized pagination parameters for a list request.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Limit   int `json:"-"`
	Offset  int `json:"-"`
}

// Response is the envelope wrapping a paginated collection.
type Response[T any] struct {
	Page         int `json:"page"`
	PerPage      int `json:"per_page"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
	Results      []T `json:"results"`
}

// ParseParams extracts and clamps pagination parameters from the request
// query string.
func ParseParams(r *http.Request) Params {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}

	perPage, _ := strconv.Atoi(r.URL.Query().Get("per_page"))
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	if perPage > MaxPerPage {
		perPage = MaxPerPage
	}

	return Params{
		Page:    page,
		PerPage: perPage,
		Limit:   perPage,
		Offset:  (page - 1) * perPage,
	}
}

// NewResponse builds the envelope for one page of results.
func NewResponse[T any](results []T, p Params, totalResults int) Response[T] {
	return Response[T]{
		Page:         p.Page,
		PerPage:      p.PerPage,
		TotalPages:   totalPages(totalResults, p.PerPage),
		TotalResults: totalResults,
		Results:      results,
	}
}

func totalPages(totalResults, perPage int) int {
	if perPage <= 0 {
		return 0
	}
	pages := (totalResults + perPage - 1) / perPage
	if pages < 1 {
		return 1
	}
	return pages
}
