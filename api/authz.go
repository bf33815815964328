package api

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/student-showcase/portfolio-backend/errs"
	"github.com/student-showcase/portfolio-backend/models"
)

// Operation names the kind of access a route performs on a resource.
type Operation string

const (
	OpList   Operation = "list"
	OpRead   Operation = "read"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
	OpStats  Operation = "stats"
)

// Access is the minimum caller level an operation requires.
type Access int

const (
	AccessPublic Access = iota
	AccessUser
	AccessAdmin
)

// accessTable is the full authorization predicate: resource × operation →
// required access, evaluated by a single gate before any handler or
// repository work. A route missing from the table denies by default.
var accessTable = map[string]map[Operation]Access{
	"projects": {
		OpList:   AccessPublic,
		OpRead:   AccessPublic,
		OpCreate: AccessAdmin,
		OpUpdate: AccessAdmin,
		OpDelete: AccessAdmin,
		OpStats:  AccessAdmin,
	},
	"students": {
		OpList:   AccessPublic,
		OpRead:   AccessPublic,
		OpCreate: AccessAdmin,
		OpUpdate: AccessAdmin,
		OpDelete: AccessAdmin,
	},
	"technologies": {
		OpList:   AccessPublic,
		OpRead:   AccessPublic,
		OpCreate: AccessAdmin,
		OpUpdate: AccessAdmin,
		OpDelete: AccessAdmin,
	},
	"contact-requests": {
		OpList: AccessAdmin,
		OpRead: AccessAdmin,
		// The public admissions form is the one open write in the system.
		OpCreate: AccessPublic,
		OpUpdate: AccessAdmin,
		OpDelete: AccessAdmin,
	},
	"users": {
		OpList:   AccessAdmin,
		OpRead:   AccessAdmin,
		OpCreate: AccessAdmin,
		OpUpdate: AccessAdmin,
		OpDelete: AccessAdmin,
	},
}

// requiredAccess looks up the predicate table; unknown pairs deny.
func requiredAccess(resource string, op Operation) Access {
	ops, ok := accessTable[resource]
	if !ok {
		return AccessAdmin
	}
	access, ok := ops[op]
	if !ok {
		return AccessAdmin
	}
	return access
}

// requireAccess gates a route on the predicate table. It short-circuits
// before any repository access: an unauthorized request produces no reads,
// no writes, and nothing beyond a generic 401/403 signal.
func requireAccess(resource string, op Operation) func(http.Handler) http.Handler {
	responder := NewResponder(log.With().Str("handlerName", "authorizationGate").Logger())

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			required := requiredAccess(resource, op)
			if required == AccessPublic {
				next.ServeHTTP(w, r)
				return
			}

			claims := claimsFrom(r.Context())
			if claims == nil {
				responder.WriteError(w, errs.NewMissingTokenError())
				return
			}

			if required == AccessAdmin && !claims.IsAdmin() {
				responder.WriteError(w, errs.NewInsufficientRoleError(models.RoleAdmin))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
