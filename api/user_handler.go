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

type userHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
}

func newUserHandler(userRepo *database.UserRepo) userHandler {
	logger := log.With().Str("handlerName", "userHandler").Logger()

	return userHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
	}
}

type registerPayload struct {
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Roles     []string `json:"roles"`
}

type profilePayload struct {
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	FirstName *string `json:"firstName"`
	LastName  *string `json:"lastName"`
	IsActive  *bool   `json:"isActive"`
}

// listUsers returns every account (admin only, gated upstream). Any other
// caller was already rejected with Forbidden, never handed a filtered list.
func (h userHandler) listUsers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := h.userRepo.FindAll()
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "users", err))
			return
		}

		member := lo.Map(users, func(u *models.User, _ int) any {
			return newUserView(u)
		})
		h.responder.WriteJSON(w, Collection{Member: member, TotalItems: int64(len(users))})
	}
}

// getUser retrieves an account by ID (admin only)
func (h userHandler) getUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		h.responder.WriteJSON(w, newUserView(user))
	}
}

// register creates a new account (admin only, gated upstream). The admin role
// is only granted when explicitly requested.
func (h userHandler) register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload registerPayload
		if err := decodeJSON(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if payload.Password == "" {
			h.responder.WriteError(w, errs.NewValidationError([]errs.Violation{
				{Field: "password", Message: "This value should not be blank"},
			}))
			return
		}

		hashed, err := auth.HashPassword(payload.Password)
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("could not hash password"))
			return
		}

		roles := []string{models.RoleUser}
		if lo.Contains(payload.Roles, models.RoleAdmin) {
			roles = append(roles, models.RoleAdmin)
		}

		user := models.User{
			Email:     payload.Email,
			Password:  hashed,
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Roles:     roles,
			IsActive:  true,
		}

		if violations := models.Validate(&user); violations != nil {
			h.responder.WriteError(w, errs.NewValidationError(violations))
			return
		}

		if err := h.userRepo.Add(&user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("create", "user", err))
			return
		}

		h.responder.WriteJSONStatus(w, http.StatusCreated, newUserView(&user))
	}
}

// updateUser applies an admin patch to an account
func (h userHandler) updateUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByID(id)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if err := h.applyProfilePatch(r, user); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.userRepo.Update(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, newUserView(user))
	}
}

// deleteUser removes an account (admin only)
func (h userHandler) deleteUser() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "userID")
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if _, err := h.userRepo.FindByID(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if err := h.userRepo.Delete(id); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("delete", "user", err))
			return
		}

		h.responder.WriteNoContent(w)
	}
}

// getProfile returns the calling user's own account
func (h userHandler) getProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())

		user, err := h.userRepo.FindByID(claims.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		h.responder.WriteJSON(w, newUserView(user))
	}
}

// updateProfile lets the calling user change their own fields
func (h userHandler) updateProfile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := claimsFrom(r.Context())

		user, err := h.userRepo.FindByID(claims.UserID)
		if err != nil {
			h.responder.WriteError(w, wrapDatabaseError("find", "user", err))
			return
		}

		if err := h.applyProfilePatch(r, user); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		if err := h.userRepo.Update(user); err != nil {
			h.responder.WriteError(w, wrapDatabaseError("update", "user", err))
			return
		}

		h.responder.WriteJSON(w, newUserView(user))
	}
}

func (h userHandler) applyProfilePatch(r *http.Request, user *models.User) error {
	var payload profilePayload
	if err := decodeJSON(r, &payload); err != nil {
		return err
	}

	if payload.Email != nil {
		user.Email = *payload.Email
	}
	if payload.FirstName != nil {
		user.FirstName = *payload.FirstName
	}
	if payload.LastName != nil {
		user.LastName = *payload.LastName
	}
	if payload.IsActive != nil {
		user.IsActive = *payload.IsActive
	}
	if payload.Password != nil && *payload.Password != "" {
		hashed, err := auth.HashPassword(*payload.Password)
		if err != nil {
			return errs.NewInternalError("could not hash password")
		}
		user.Password = hashed
	}

	if violations := models.Validate(user); violations != nil {
		return errs.NewValidationError(violations)
	}
	return nil
}
