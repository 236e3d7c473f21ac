package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"humspot-backend/internal/config"
)

// CORSHandler returns a configured CORS handler for Chi
func CORSHandler(cfg config.CORSConfig) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: cfg.AllowedOrigins,
		AllowedMethods: cfg.AllowedMethods,
		AllowedHeaders: cfg.AllowedHeaders,
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300, // 5 minutes
	})
}
