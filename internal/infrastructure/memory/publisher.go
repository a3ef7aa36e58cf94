package memory

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/baechuer/board-service/internal/application/user"
)

// NoopPublisher stands in for the broker when RABBIT_URL is unset.
type NoopPublisher struct {
	log zerolog.Logger
}

func NewNoopPublisher(log zerolog.Logger) *NoopPublisher {
	return &NoopPublisher{log: log.With().Str("component", "noop-pub").Logger()}
}

func (p *NoopPublisher) PublishUserRegistered(ctx context.Context, evt user.UserRegisteredEvent) error {
	p.log.Debug().
		Int64("user_id", evt.UserID).
		Str("display_name", evt.DisplayName).
		Msg("user.registered (not published)")
	return nil
}
