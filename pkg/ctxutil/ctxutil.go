package ctxutil

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey string

const (
	reviewerIDKey ctxKey = "reviewer_id"
	requestIDKey  ctxKey = "request_id"
)

// WithReviewerID binds the authenticated reviewer's ID to the context.
// Handlers downstream use it as the default identity on review decisions.
func WithReviewerID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, reviewerIDKey, id)
}

// ReviewerIDFromCtx reports the reviewer bound to the context. The second
// return is false when no reviewer is set, the value is uuid.Nil, or the
// stored value has the wrong type.
func ReviewerIDFromCtx(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(reviewerIDKey).(uuid.UUID)
	if !ok || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}

// WithRequestID binds the request ID to the context.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

// RequestIDFromCtx returns the request ID bound to the context, or "" when
// absent.
func RequestIDFromCtx(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
