package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog/log"
)

// Pinger checks connectivity to the store
type Pinger interface {
	Ping(ctx context.Context) error
}

// Health handles GET /health
func Health(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := db.Ping(ctx); err != nil {
			log.Error().Err(err).Msg("Health check failed")
			respond(w, http.StatusServiceUnavailable, map[string]any{
				"message": "Database unavailable",
				"success": false,
			})
			return
		}
		respond(w, http.StatusOK, map[string]any{
			"message": "OK",
			"success": true,
		})
	}
}
