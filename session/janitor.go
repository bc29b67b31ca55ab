package session

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// RunJanitor sweeps expired entries from e every interval until ctx is done.
func RunJanitor(ctx context.Context, name string, e Expirer, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := e.DeleteExpired(ctx)
			if err != nil {
				log.Err(err).Str("store", name).Msg("Failed to sweep expired entries")
				continue
			}
			if removed > 0 {
				log.Debug().Str("store", name).Int("removed", removed).Msg("Swept expired entries")
			}
		}
	}
}
