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

type contactHandler struct {
	responder   Responder
	logger      zerolog.Logger
	contactRepo *database.ContactRequestRepo
}

func newContactHandler(contactRepo *database.ContactRequestRepo) contactHandler {
	logger := log.With().Str("handlerName", "contactHandler").Logger()

	return contactHandler{
		responder:   NewResponder(logger),
		logger:      logger,
		contactRepo: contactRepo,
	}
}

// contactSubmission is the public write shape. Status and adminNotes are not
// writable by the submitter: status is forced to "new" on create.
type contactSubmission struct {
	FirstName         string `json:"firstName"`
	LastName          string `json:"lastName"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	Message           string `json:"message"`
	InterestedProgram string `json:"interestedProgram"`
	GdprConsent       bool   `json:"gdprConsent"`
}

// contactAdminPatch is the admin write shape for updates.
type contactAdminPatch struct {
	FirstName         *string `json:"firstName"`
	LastName          *string `json:"lastName"`
	Email             *string `json:"email"`
	Phone             *string `json:"phone"`
	Message           *string `json:"message"`
	InterestedProgram *string `json:"interestedProgram"`
	Status            *string `json:"status"`
	AdminNotes        *string `json:"adminNotes"`
}

func (p contactAdminPatch) apply(target *models.ContactRequest) {
	if p.FirstName != nil {
		target.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		target.LastName = *p.LastName
	}
	if p.Email != nil {
		target.Email = *p.Email
	}
	if p.Phone != nil {
		target.Phone = *p.Phone
	}
	if p.Message != nil {
		target.Message = *p.Message
	}
	if p.InterestedProgram != nil {
		target.InterestedProgram = *p.InterestedProgram
	}
	if p.Status != nil {
		target.Status = *p.Status
	}
	if p.AdminNotes != nil {
		target.AdminNotes = *p.AdminNotes
	}
}

// listContactRequests returns the paginated collection (admin only, gated
// upstream), with optional status, search and last-days filters
func (h contactHandler) listContactRequests() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())

		if term := r.URL.Query().Get("search"); term != "" {
			requests, err := h.contactRepo.Search(term)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("search", "contact requests", err))
				return
			}
			h.writeCollection(w, claims, requests, int64(len(requests)))
			return
		}

		if status := r.URL.Query().Get("status"); status != "" {
			requests, err := h.contactRepo.FindByStatus(status)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "contact requests", err))
				return
			}
			h.writeCollection(w, claims, requests, int64(len(requests)))
			return
		}

		if days := queryInt(r, "days", 0); days > 0 {
			requests, err := h.contactRepo.FindFromLastDays(days)
			if err != nil {
				h.responder.WriteError(w, wrapDatabaseError("find", "contact requests", err))
				return
			}
			h.writeCollection(w, claims, requests, int64(len(requests)))
			return
		}

		page, perPage := pageParams(r)
		requests, total, err := h.contactRepo.FindPage(page, perPage)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact requests", err))
			return
		}

		h.writeCollection(w, claims, requests, total)
	}
}

func (h contactHandler) writeCollection(w http.ResponseWriter, claims *auth.Claims, requests []*models.ContactRequest, total int64) {
	member := lo.Map(requests, func(c *models.ContactRequest, _ int) any {
		return contactViewFor(claims, c)
	})
	h.responder.WriteJSON(w, Collection{Member: member, TotalItems: total})
}

// contactStats returns the count per status plus the unread total (admin only)
func (h contactHandler) contactStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		counts, err := h.contactRepo.CountByStatus()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count", "contact requests", err))
			return
		}

		unread, err := h.contactRepo.CountUnread()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("count unread", "contact requests", err))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"byStatus": counts,
			"unread":   unread,
		})
	}
}

// getContactRequest retrieves a contact request by ID (admin only)
func (h contactHandler) getContactRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "requestID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := h.contactRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact request", err))
			return
		}

		h.responder.WriteJSON(w, contactViewFor(claimsFrom(r.Context()), request))
	}
}

// submitContactRequest is the public admissions form endpoint. GDPR consent
// is mandatory; a submission without it is rejected citing the consent field.
func (h contactHandler) submitContactRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var submission contactSubmission
		if err := decodeJSON(r, &submission); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request := models.ContactRequest{
			FirstName:         submission.FirstName,
			LastName:          submission.LastName,
			Email:             submission.Email,
			Phone:             submission.Phone,
			Message:           submission.Message,
			InterestedProgram: submission.InterestedProgram,
			GdprConsent:       submission.GdprConsent,
			Status:            models.ContactStatusNew,
		}

		if violations := models.Validate(&request); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.contactRepo.Add(&request); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "contact request", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, contactViewFor(claimsFrom(r.Context()), &request))
	}
}

// updateContactRequest applies an admin patch (status, notes, fields)
func (h contactHandler) updateContactRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "requestID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		request, err := h.contactRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact request", err))
			return
		}

		var patch contactAdminPatch
		if err := decodeJSON(r, &patch); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		patch.apply(request)

		if violations := models.Validate(request); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.contactRepo.Update(request); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "contact request", err))
			return
		}

		h.responder.WriteJSON(w, contactViewFor(claimsFrom(r.Context()), request))
	}
}

// deleteContactRequest deletes a contact request by ID (admin only)
func (h contactHandler) deleteContactRequest() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "requestID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.contactRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "contact request", err))
			return
		}

		if err := h.contactRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "contact request", err))
			return
		}

		h.responder.WriteNoContent(w)
	}
}
