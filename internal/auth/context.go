package auth

import (
	"context"
)

type ctxKey string

const (
	userKey ctxKey = "userClaims"
	capsKey ctxKey = "userCapabilities"
)

type Claims struct {
	Subject string
	JWTID   string
}

// Capabilities are the two derived booleans resolved from the user_roles
// table. The zero value grants nothing.
type Capabilities struct {
	IsAdmin bool
	IsStaff bool
}

func WithClaims(ctx context.Context, c Claims) context.Context {
	return context.WithValue(ctx, userKey, c)
}

func FromContext(ctx context.Context) Claims {
	if v, ok := ctx.Value(userKey).(Claims); ok {
		return v
	}
	return Claims{}
}

func Subject(ctx context.Context) string {
	return FromContext(ctx).Subject
}

func WithCapabilities(ctx context.Context, c Capabilities) context.Context {
	return context.WithValue(ctx, capsKey, c)
}

func CapabilitiesFromContext(ctx context.Context) (Capabilities, bool) {
	v, ok := ctx.Value(capsKey).(Capabilities)
	return v, ok
}
