package utils

import (
	"context"
	"time"
)

// SessionData is the authenticated identity carried through the request
// context once the session middleware has validated the cookie.
type SessionData struct {
	Username  string
	Role      string
	ExpiresAt time.Time
}

type contextKey string

const ContextSessionKey contextKey = "session"

func GetSessionFromContext(ctx context.Context) (SessionData, bool) {
	session, ok := ctx.Value(ContextSessionKey).(SessionData)
	return session, ok
}
