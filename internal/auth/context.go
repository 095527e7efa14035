package auth

import "context"

type contextKey struct{}

// Principal identifies the authenticated parent for one request. It is
// carried in the request context by the session middleware; handlers never
// read ambient globals.
type Principal struct {
	UserID    int64
	SessionID int64
}

func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

func FromContext(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(contextKey{}).(Principal)
	return p, ok
}

// UserID is a shorthand for the authenticated user's id.
func UserID(ctx context.Context) (int64, bool) {
	p, ok := FromContext(ctx)
	return p.UserID, ok
}
