package cli

import (
	"context"
	"io"
	"strings"
	"time"

	"github.com/mugiliam/hatchcatalogctl/internal/common"
	"github.com/rs/zerolog"
)

// newLogger returns a console logger on w. An empty or unknown level means info.
func newLogger(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339, NoColor: true}).
		Level(lvl).
		With().Timestamp().Logger()
}

// requestContext attaches the logger and a fresh request ID to ctx.
func requestContext(ctx context.Context, logger zerolog.Logger) context.Context {
	return common.NewRequestContext(logger.WithContext(ctx))
}
