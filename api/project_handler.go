package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/student-showcase/portfolio-backend/auth"
	"github.com/student-showcase/portfolio-backend/database"
	"github.com/student-showcase/portfolio-backend/errs"
	"github.com/student-showcase/portfolio-backend/models"
)

type projectHandler struct {
	responder     Responder
	logger        zerolog.Logger
	projectRepo   *database.ProjectRepo
	relationships *database.RelationshipManager
}

func newProjectHandler(projectRepo *database.ProjectRepo, relationships *database.RelationshipManager) projectHandler {
	logger := log.With().Str("handlerName", "projectHandler").Logger()

	return projectHandler{
		responder:     NewResponder(logger),
		logger:        logger,
		projectRepo:   projectRepo,
		relationships: relationships,
	}
}

// projectPayload is the write shape for create and partial update. Absent
// fields keep their stored values on update.
type projectPayload struct {
	Title            *string   `json:"title"`
	Description      *string   `json:"description"`
	ShortDescription *string   `json:"shortDescription"`
	Images           *[]string `json:"images"`
	MainImage        *string   `json:"mainImage"`
	Year             *string   `json:"year"`
	LiveURL          *string   `json:"liveUrl"`
	GithubURL        *string   `json:"githubUrl"`
	Status           *string   `json:"status"`
}

func (p projectPayload) apply(target *models.Project) {
	if p.Title != nil {
		target.Title = *p.Title
	}
	if p.Description != nil {
		target.Description = *p.Description
	}
	if p.ShortDescription != nil {
		target.ShortDescription = *p.ShortDescription
	}
	if p.Images != nil {
		target.Images = *p.Images
	}
	if p.MainImage != nil {
		target.MainImage = *p.MainImage
	}
	if p.Year != nil {
		target.Year = *p.Year
	}
	if p.LiveURL != nil {
		target.LiveURL = *p.LiveURL
	}
	if p.GithubURL != nil {
		target.GithubURL = *p.GithubURL
	}
	if p.Status != nil {
		target.Status = *p.Status
	}
}

// listProjects returns the paginated collection. Anonymous callers only see
// published projects; admins see every status, or can filter by one.
func (h projectHandler) listProjects() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())

		if term := r.URL.Query().Get("search"); term != "" && isAdmin(claims) {
			projects, err := h.projectRepo.Search(term)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("search", "projects", err))
				return
			}
			h.writeCollection(w, claims, projects, int64(len(projects)))
			return
		}

		page, perPage := pageParams(r)

		var (
			projects []*models.Project
			total    int64
			err      error
		)
		switch {
		case !isAdmin(claims):
			projects, total, err = h.projectRepo.FindPageByStatus(models.ProjectStatusPublished, page, perPage)
		case r.URL.Query().Get("status") != "":
			projects, total, err = h.projectRepo.FindPageByStatus(r.URL.Query().Get("status"), page, perPage)
		default:
			projects, total, err = h.projectRepo.FindPage(page, perPage)
		}
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "projects", err))
			return
		}

		h.writeCollection(w, claims, projects, total)
	}
}

func (h projectHandler) writeCollection(w http.ResponseWriter, claims *auth.Claims, projects []*models.Project, total int64) {
	member := lo.Map(projects, func(p *models.Project, _ int) any {
		return projectViewFor(claims, p)
	})
	h.responder.WriteJSON(w, Collection{Member: member, TotalItems: total})
}

// getProject retrieves a single project; anonymous callers cannot see
// unpublished ones.
func (h projectHandler) getProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		claims := claimsFrom(r.Context())
		if !project.IsPublished() && !isAdmin(claims) {
			h.responder.WriteError(w, errs.NewNotFound("project"))
			return
		}

		h.responder.WriteJSON(w, projectViewFor(claims, project))
	}
}

// createProject creates a new project (admin only, gated upstream)
func (h projectHandler) createProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload projectPayload
		if err := decodeJSON(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project := models.Project{Status: models.ProjectStatusDraft}
		payload.apply(&project)

		if violations := models.Validate(&project); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.projectRepo.Add(&project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "project", err))
			return
		}

		created, err := h.projectRepo.FindByID(project.ID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find created", "project", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, projectViewFor(claimsFrom(r.Context()), created))
	}
}

// updateProject applies a partial update to an existing project
func (h projectHandler) updateProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		project, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		var payload projectPayload
		if err := decodeJSON(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		payload.apply(project)

		if violations := models.Validate(project); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.projectRepo.Update(project); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "project", err))
			return
		}

		updated, err := h.projectRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find updated", "project", err))
			return
		}

		h.responder.WriteJSON(w, projectViewFor(claimsFrom(r.Context()), updated))
	}
}

// deleteProject deletes a project by ID, join rows included
func (h projectHandler) deleteProject() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.projectRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "project", err))
			return
		}

		if err := h.projectRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "project", err))
			return
		}

		h.responder.WriteNoContent(w)
	}
}

// recordView bumps the view counter. This is the only endpoint that ever
// changes views; no other write path touches it.
func (h projectHandler) recordView() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.projectRepo.IncrementViews(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("record view on", "project", err))
			return
		}

		h.responder.WriteNoContent(w)
	}
}

// projectStats returns the project count per status (admin only)
func (h projectHandler) projectStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.projectRepo.CountByStatus()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "projects", err))
			return
		}
		h.responder.WriteJSON(w, counts)
	}
}

// attachStudent links an existing student to a project; re-attaching is a no-op
func (h projectHandler) attachStudent() http.HandlerFunc {
	return h.relate("studentID", h.relationships.AttachStudent)
}

// detachStudent unlinks a student from a project; absent relation is a no-op
func (h projectHandler) detachStudent() http.HandlerFunc {
	return h.relate("studentID", h.relationships.DetachStudent)
}

// attachTechnology links an existing technology to a project
func (h projectHandler) attachTechnology() http.HandlerFunc {
	return h.relate("technologyID", h.relationships.AttachTechnology)
}

// detachTechnology unlinks a technology from a project
func (h projectHandler) detachTechnology() http.HandlerFunc {
	return h.relate("technologyID", h.relationships.DetachTechnology)
}

func (h projectHandler) relate(param string, op func(projectID, targetID uint) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		projectID, err := parseID(r, "projectID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}
		targetID, err := parseID(r, param)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := op(projectID, targetID); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteNoContent(w)
	}
}
