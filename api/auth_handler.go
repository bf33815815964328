package api

import (
	"net/http"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/student-showcase/portfolio-backend/auth"
	"github.com/student-showcase/portfolio-backend/database"
	"github.com/student-showcase/portfolio-backend/errs"
)

type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	userRepo  *database.UserRepo
	tokens    *auth.TokenManager
}

func newAuthHandler(userRepo *database.UserRepo, tokens *auth.TokenManager) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		userRepo:  userRepo,
		tokens:    tokens,
	}
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string   `json:"token"`
	User  userView `json:"user"`
}

// login verifies credentials and issues a bearer token. Bad email and bad
// password produce the same generic failure.
func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload loginPayload
		if err := decodeJSON(r, &payload); err != nil {
			h.responder.WriteError(w, err)
			return
		}

		user, err := h.userRepo.FindByEmail(payload.Email)
		if err != nil || !auth.CheckPassword(user.Password, payload.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid credentials"))
			return
		}

		if !user.IsActive {
			h.responder.WriteError(w, errs.NewUnauthorizedError("account disabled"))
			return
		}

		token, err := h.tokens.Issue(user)
		if err != nil {
			h.logger.Error().Err(err).Msg("failed to issue token")
			h.responder.WriteError(w, errs.NewInternalError("could not issue token"))
			return
		}

		h.responder.WriteJSON(w, loginResponse{Token: token, User: newUserView(user)})
	}
}

// me returns the identity encoded in the presented credential
func (h authHandler) me() http.HandlerFunc {
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
