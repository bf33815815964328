package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/student-showcase/portfolio-backend/database"
	"github.com/student-showcase/portfolio-backend/errs"
	"github.com/student-showcase/portfolio-backend/models"
)

type technologyHandler struct {
	responder      Responder
	logger         zerolog.Logger
	technologyRepo *database.TechnologyRepo
}

func newTechnologyHandler(technologyRepo *database.TechnologyRepo) technologyHandler {
	logger := log.With().Str("handlerName", "technologyHandler").Logger()

	return technologyHandler{
		responder:      NewResponder(logger),
		logger:         logger,
		technologyRepo: technologyRepo,
	}
}

type technologyPayload struct {
	Name     *string `json:"name"`
	Category *string `json:"category"`
	Icon     *string `json:"icon"`
}

func (p technologyPayload) apply(target *models.Technology) {
	if p.Name != nil {
		target.Name = *p.Name
	}
	if p.Category != nil {
		target.Category = *p.Category
	}
	if p.Icon != nil {
		target.Icon = *p.Icon
	}
}

// listTechnologies returns the collection, optionally filtered by category
// or matched against a search term
func (h technologyHandler) listTechnologies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if category := r.URL.Query().Get("category"); category != "" {
			technologies, err := h.technologyRepo.FindByCategory(category)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "technologies", err))
				return
			}
			h.writeCollection(w, technologies, int64(len(technologies)))
			return
		}

		if term := r.URL.Query().Get("search"); term != "" {
			technologies, err := h.technologyRepo.SearchByName(term)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("search", "technologies", err))
				return
			}
			h.writeCollection(w, technologies, int64(len(technologies)))
			return
		}

		page, perPage := pageParams(r)
		technologies, total, err := h.technologyRepo.FindPage(page, perPage)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technologies", err))
			return
		}

		h.writeCollection(w, technologies, total)
	}
}

func (h technologyHandler) writeCollection(w http.ResponseWriter, technologies []*models.Technology, total int64) {
	member := lo.Map(technologies, func(t *models.Technology, _ int) any {
		return newTechnologyView(t)
	})
	h.responder.WriteJSON(w, Collection{Member: member, TotalItems: total})
}

// listCategories returns the distinct technology categories in use
func (h technologyHandler) listCategories() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		categories, err := h.technologyRepo.Categories()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "categories", err))
			return
		}
		h.responder.WriteJSON(w, categories)
	}
}

// getTechnology retrieves a technology by ID
func (h technologyHandler) getTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.technologyRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technology", err))
			return
		}

		h.responder.WriteJSON(w, newTechnologyView(technology))
	}
}

// createTechnology creates a new technology (admin only, gated upstream)
func (h technologyHandler) createTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload technologyPayload
		if err := decodeJSON(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		var technology models.Technology
		payload.apply(&technology)

		if violations := models.Validate(&technology); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.technologyRepo.Add(&technology); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "technology", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newTechnologyView(&technology))
	}
}

// updateTechnology applies a partial update to an existing technology
func (h technologyHandler) updateTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		technology, err := h.technologyRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technology", err))
			return
		}

		var payload technologyPayload
		if err := decodeJSON(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		payload.apply(technology)

		if violations := models.Validate(technology); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.technologyRepo.Update(technology); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "technology", err))
			return
		}

		h.responder.WriteJSON(w, newTechnologyView(technology))
	}
}

// deleteTechnology deletes a technology by ID, join rows included
func (h technologyHandler) deleteTechnology() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "technologyID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.technologyRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "technology", err))
			return
		}

		if err := h.technologyRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "technology", err))
			return
		}

		h.responder.WriteNoContent(w)
	}
}
