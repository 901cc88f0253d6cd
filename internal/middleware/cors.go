package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin. The API backs a public chatbot widget, so the
// browser surface is open; credentials stay disabled, as a wildcard origin
// requires.
func CORS() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: false,
		MaxAge:           300,
	})
}
