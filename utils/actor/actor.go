package actor

import (
	"context"

	"github.com/abmshq/abms-backend/constant"
)

// FromContext returns the authenticated username placed in the context
// by the auth middleware. The second result is false for
// unauthenticated requests.
func FromContext(ctx context.Context) (string, bool) {
	v := ctx.Value(constant.ActorKey)
	if v == nil {
		return "", false
	}
	user, ok := v.(string)
	if !ok || user == "" {
		return "", false
	}
	return user, true
}

// WithActor embeds the authenticated username into ctx.
func WithActor(ctx context.Context, user string) context.Context {
	return context.WithValue(ctx, constant.ActorKey, user)
}
