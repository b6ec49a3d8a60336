package content

import (
	"context"
	"strings"
)

type visitorKey struct{}

// WithVisitor scopes ctx to one site visitor. Sources that keep per-visitor
// posts read it back with VisitorFrom.
func WithVisitor(ctx context.Context, visitorID string) context.Context {
	return context.WithValue(ctx, visitorKey{}, strings.TrimSpace(visitorID))
}

// VisitorFrom returns the visitor set by WithVisitor, or "".
func VisitorFrom(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(visitorKey{}).(string)
	return id
}
