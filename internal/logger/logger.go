package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"

	pkgctx "github.com/baechuer/board-service/internal/pkg/context"
)

var Logger zerolog.Logger

func Init() {
	InitWithWriter(os.Stdout)
}

func InitWithWriter(w io.Writer) {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	level, err := zerolog.ParseLevel(logLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}

	format := os.Getenv("LOG_FORMAT") // "json" or "console"
	if format == "" {
		format = "console"
	}

	if format == "json" {
		Logger = zerolog.New(w).With().Timestamp().Str("service", "board-service").Logger().Level(level)
	} else {
		Logger = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(level)
	}

	// set global
	zlog.Logger = Logger
}

// WithCtx returns the package logger enriched with the request id and the
// authenticated user id, if any.
func WithCtx(ctx context.Context) *zerolog.Logger {
	reqID := pkgctx.GetRequestID(ctx)
	userID, authed := pkgctx.GetUserID(ctx)
	if reqID == "" && !authed {
		return &Logger
	}

	c := Logger.With()
	if reqID != "" {
		c = c.Str("request_id", reqID)
	}
	if authed {
		c = c.Int64("user_id", userID)
	}
	l := c.Logger()
	return &l
}
