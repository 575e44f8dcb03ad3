package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/eurofurence/reg-paypal-adapter/internal/config"
)

// CorsHeadersMiddleware answers preflight requests and sets the cors headers
// according to the security configuration. With cors disabled (local
// development setups), every origin is let through.
func CorsHeadersMiddleware(conf *config.SecurityConfig) func(http.Handler) http.Handler {
	if conf.Cors.DisableCors {
		return cors.AllowAll().Handler
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{conf.Cors.AllowOrigin},
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Api-Key", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
	})

	return corsHandler.Handler
}
