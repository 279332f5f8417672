package adapter

import "context"

type refreshCtxKey struct{}

// WithoutRefresh marks requests made with ctx so that [RefreshTransport]
// passes them through untouched. The login call uses it to avoid refreshing
// from inside a refresh.
func WithoutRefresh(ctx context.Context) context.Context {
	return context.WithValue(ctx, refreshCtxKey{}, true)
}

func refreshDisabled(ctx context.Context) bool {
	disabled, _ := ctx.Value(refreshCtxKey{}).(bool)
	return disabled
}
