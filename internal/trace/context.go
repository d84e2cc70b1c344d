package trace

import "context"

type requestIDKey struct{}

// WithRequestID returns a copy of ctx carrying the given request ID.
//
// The request ID is included automatically in the start/end logs emitted by
// [Begin] and [Op.End] when present.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom extracts the request ID stored by [WithRequestID].
// Returns ("", false) if ctx carries none.
func RequestIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey{}).(string)
	return id, ok
}
