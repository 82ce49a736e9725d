// Package utils provides helpers shared by the transport and service layers:
// request-scoped context values, JSON request and response bodies, locale
// negotiation, the outbound HTTP client, access tokens and ID generation.
package utils

import (
	"context"
)

type contextKey struct{ name string }

func (c *contextKey) String() string {
	return "recipe-keeper context value " + c.name
}

var userIDCtxKey = &contextKey{"user-id"}

// WithUserID returns a copy of ctx carrying the authenticated user's ID.
func WithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDCtxKey, userID)
}

// GetUserIDFromContext returns the user ID stored by [WithUserID]. ok is false
// when there is none or it is not a positive ID.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	userID, ok := ctx.Value(userIDCtxKey).(int64)
	return userID, ok && userID > 0
}
