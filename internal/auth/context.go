package auth

import "context"

type contextKey string

const (
	accountIDKey contextKey = "accountid"
	usernameKey  contextKey = "username"
)

// SetUserContext sets the authenticated identity into context (called by middleware).
func SetUserContext(ctx context.Context, accountID, username string) context.Context {
	ctx = context.WithValue(ctx, accountIDKey, accountID)
	ctx = context.WithValue(ctx, usernameKey, username)
	return ctx
}

// AccountIDFromContext retrieves the authenticated account id safely.
func AccountIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(accountIDKey).(string)
	if !ok || id == "" {
		return "", false
	}
	return id, true
}

func UsernameFromContext(ctx context.Context) string {
	name, _ := ctx.Value(usernameKey).(string)
	return name
}
