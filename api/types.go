package api

import (
	"net/http"
	"strconv"
)

// routeHandlers contains all the handlers for different route types
type routeHandlers struct {
	projectHandler    projectHandler
	studentHandler    studentHandler
	technologyHandler technologyHandler
	contactHandler    contactHandler
	userHandler       userHandler
	authHandler       authHandler
}

// Collection is the envelope every paginated list endpoint returns.
type Collection struct {
	Member     []any `json:"member"`
	TotalItems int64 `json:"totalItems"`
}

// ErrorResponse represents an error response from the API
// @Description Error response structure
type ErrorResponse struct {
	Error      string `json:"error" example:"Internal Server Error"`
	Status     string `json:"status" example:"error"`
	Field      string `json:"field,omitempty" example:"title"`
	Details    string `json:"details,omitempty" example:"Additional error details"`
	Violations []any  `json:"violations,omitempty"`
}

const (
	defaultItemsPerPage = 30
	maxItemsPerPage     = 100
)

// pageParams reads the page/itemsPerPage query parameters with bounds applied.
func pageParams(r *http.Request) (page, perPage int) {
	page = queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}

	perPage = queryInt(r, "itemsPerPage", defaultItemsPerPage)
	if perPage < 1 {
		perPage = defaultItemsPerPage
	}
	if perPage > maxItemsPerPage {
		perPage = maxItemsPerPage
	}
	return page, perPage
}

func queryInt(r *http.Request, key string, fallback int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
