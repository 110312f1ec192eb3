package padmenu

import "context"

type abortKey struct{}

func withAbortSource(ctx context.Context, src AbortSource) context.Context {
	if src == nil {
		return ctx
	}
	return context.WithValue(ctx, abortKey{}, src)
}

// AbortRequested lets a long running hook check whether the user asked to abort
// the activation. The hook decides what it has already committed; nothing is
// rolled back.
func AbortRequested(ctx context.Context) bool {
	if ctx.Err() != nil {
		return true
	}
	src, ok := ctx.Value(abortKey{}).(AbortSource)
	return ok && src.AbortRequested()
}
