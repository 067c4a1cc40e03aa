package messaging

import (
	"context"

	"github.com/rs/zerolog/log"
)

// Notify publishes an event after the state change it describes has been
// committed. Failures are logged and never reach the caller.
func Notify(ctx context.Context, p Publisher, eventType string, payload interface{}) {
	if p == nil {
		return
	}
	if err := p.Publish(ctx, eventType, payload); err != nil {
		log.Warn().Err(err).Str("event_type", eventType).Msg("failed to publish event")
	}
}
