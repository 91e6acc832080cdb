package services

import "context"

type contextKey string

const (
	channelIDKey contextKey = "channel_id"
	passIDKey    contextKey = "pass_id"
)

// WithChannelID annotates context with the channel being processed.
func WithChannelID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, channelIDKey, id)
}

// ChannelIDFromContext extracts the channel identifier if present.
func ChannelIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(channelIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithPassID annotates context with the reconciliation pass correlation identifier.
func WithPassID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, passIDKey, id)
}

// PassIDFromContext extracts the pass correlation identifier if present.
func PassIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(passIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
