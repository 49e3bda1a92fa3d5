package router

import (
	"net/http"

	"github.com/rs/cors"

	"github.com/processmind/process-mind/assistant"
	"github.com/processmind/process-mind/handlers"
	"github.com/processmind/process-mind/middleware"
	"github.com/processmind/process-mind/store"
)

// New wires the handlers into the route table and wraps everything
// with CORS for browser-based dashboards.
func New(st *store.Store, a *assistant.Assistant) http.Handler {
	mux := http.NewServeMux()

	authHandler := handlers.NewAuthHandler(st)
	dataHandler := handlers.NewDataHandler(st)
	chatHandler := handlers.NewChatHandler(st, a)

	// Liveness check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Authentication
	mux.HandleFunc("POST /login", middleware.WithLogging(authHandler.Login))

	// Per-domain read operations
	mux.HandleFunc("GET /municipalities/{id}/health", middleware.WithLogging(dataHandler.Health))
	mux.HandleFunc("GET /municipalities/{id}/health-facilities", middleware.WithLogging(dataHandler.HealthFacilities))
	mux.HandleFunc("GET /municipalities/{id}/education", middleware.WithLogging(dataHandler.Education))
	mux.HandleFunc("GET /municipalities/{id}/schools", middleware.WithLogging(dataHandler.Schools))
	mux.HandleFunc("GET /municipalities/{id}/security", middleware.WithLogging(dataHandler.Security))
	mux.HandleFunc("GET /municipalities/{id}/security-units", middleware.WithLogging(dataHandler.SecurityUnits))
	mux.HandleFunc("GET /municipalities/{id}/demographics", middleware.WithLogging(dataHandler.Demographics))

	// Assistant
	mux.HandleFunc("POST /municipalities/{id}/chat", middleware.WithLogging(chatHandler.Ask))
	mux.HandleFunc("GET /municipalities/{id}/chat", middleware.WithLogging(chatHandler.History))

	// Root endpoint; {$} keeps this from catching every unmatched GET
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("process-mind API v1"))
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "Content-Length", "Authorization"},
	})

	return c.Handler(mux)
}
