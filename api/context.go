package api

import (
	"context"

	"github.com/student-showcase/portfolio-backend/auth"
)

type keyType string

const (
	claimsKey    keyType = "claims"
	requestIDKey keyType = "requestID"
)

// ctxWithClaims attaches the verified credential claims to the context
func ctxWithClaims(ctx context.Context, claims *auth.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// claimsFrom retrieves the caller's claims; nil means an anonymous caller
func claimsFrom(ctx context.Context) *auth.Claims {
	claims, _ := ctx.Value(claimsKey).(*auth.Claims)
	return claims
}

// ctxWithRequestID tags the context with the request correlation id
func ctxWithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
