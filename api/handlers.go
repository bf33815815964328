package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/student-showcase/portfolio-backend/auth"
	"github.com/student-showcase/portfolio-backend/database"
	"github.com/student-showcase/portfolio-backend/errs"
)

// initializeHandlers creates and returns all handlers organized in a routeHandlers struct
func initializeHandlers(db database.Database, tokens *auth.TokenManager) *routeHandlers {
	return &routeHandlers{
		projectHandler:    newProjectHandler(db.ProjectRepo(), db.Relationships()),
		studentHandler:    newStudentHandler(db.StudentRepo()),
		technologyHandler: newTechnologyHandler(db.TechnologyRepo()),
		contactHandler:    newContactHandler(db.ContactRequestRepo()),
		userHandler:       newUserHandler(db.UserRepo()),
		authHandler:       newAuthHandler(db.UserRepo(), tokens),
	}
}

// parseID reads a positive integer id from the named URL parameter.
func parseID(r *http.Request, name string) (uint, error) {
	raw := chi.URLParam(r, name)
	if raw == "" {
		return 0, errs.NewBadRequestError("missing " + name)
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, errs.NewBadRequestError("invalid " + name)
	}
	return uint(id), nil
}

// decodeJSON decodes the request body, rejecting malformed payloads.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errs.NewBadRequestError("malformed request body")
	}
	return nil
}
