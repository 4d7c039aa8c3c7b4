// Description: This file contains the context package which is used to set and retrieve data from the context.
package common

import (
	"context"

	"github.com/mugiliam/hatchcatalogctl/internal/types"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// ctxRequestIdKeyType represents the key type for the request ID in the context.
type ctxRequestIdKeyType string

const ctxRequestIdKey ctxRequestIdKeyType = "CatalogCtlRequestId"

// ctxProfileKeyType represents the key type for the active profile in the context.
type ctxProfileKeyType string

const ctxProfileKey ctxProfileKeyType = "CatalogCtlProfile"

// SetRequestIdInContext sets the request ID in the provided context.
func SetRequestIdInContext(ctx context.Context, requestId types.RequestId) context.Context {
	return context.WithValue(ctx, ctxRequestIdKey, requestId)
}

// RequestIdFromContext retrieves the request ID from the provided context.
func RequestIdFromContext(ctx context.Context) types.RequestId {
	if requestId, ok := ctx.Value(ctxRequestIdKey).(types.RequestId); ok {
		return requestId
	}
	return types.RequestId{}
}

// SetProfileInContext sets the active profile name in the provided context.
func SetProfileInContext(ctx context.Context, profile types.ProfileName) context.Context {
	return context.WithValue(ctx, ctxProfileKey, profile)
}

// ProfileFromContext retrieves the active profile name from the provided context.
func ProfileFromContext(ctx context.Context) types.ProfileName {
	if profile, ok := ctx.Value(ctxProfileKey).(types.ProfileName); ok {
		return profile
	}
	return ""
}

// NewRequestContext assigns a fresh request ID to ctx and returns a context whose logger carries
// it. The logger is taken from ctx, or the global logger when ctx has none.
func NewRequestContext(ctx context.Context) context.Context {
	id := types.NewRequestId()
	ctx = SetRequestIdInContext(ctx, id)
	l := zerolog.Ctx(ctx)
	if l.GetLevel() == zerolog.Disabled {
		l = &log.Logger
	}
	logger := l.With().Str("request_id", id.String()).Logger()
	return logger.WithContext(ctx)
}
