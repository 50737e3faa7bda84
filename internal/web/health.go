package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

// Pinger checks liveness of a backing store.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service and database status. All pingers must
// succeed for the database to count as connected.
func HealthHandler(environment string, pingers ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		for _, p := range pingers {
			if err := p.Ping(r.Context()); err != nil {
				log.Error().Err(err).Msg("health check failed")
				JSON(w, http.StatusInternalServerError, map[string]interface{}{
					"status":      "error",
					"message":     "Database connection failed",
					"environment": environment,
					"database":    "disconnected",
					"error":       err.Error(),
				})
				return
			}
		}
		OK(w, map[string]interface{}{
			"status":      "ok",
			"message":     "Server is running",
			"environment": environment,
			"database":    "connected",
		})
	}
}
