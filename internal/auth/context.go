package auth

import "context"

type ctxKey int

const sessionKey ctxKey = iota

// ContextWithSession attaches the resolved session to the request context.
func ContextWithSession(ctx context.Context, sess *Session) context.Context {
	return context.WithValue(ctx, sessionKey, sess)
}

// SessionFromContext returns the session placed by the auth middleware,
// or nil when the request is unauthenticated.
func SessionFromContext(ctx context.Context) *Session {
	sess, _ := ctx.Value(sessionKey).(*Session)
	return sess
}
