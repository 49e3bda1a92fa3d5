/*
Package router defines HTTP routes for the PROCESS MIND API.

# Route Registration

New creates a configured handler with all endpoints:

	handler := router.New(st, assistant)

# Endpoints

Health:

	GET /health

Authentication:

	POST /login

Municipal data (read-only, by municipality id):

	GET /municipalities/{id}/health            - Monthly health series
	GET /municipalities/{id}/health-facilities - CNES facility registry
	GET /municipalities/{id}/education         - Annual education series
	GET /municipalities/{id}/schools           - School registry
	GET /municipalities/{id}/security          - Monthly per-region crime series
	GET /municipalities/{id}/security-units    - Security unit registry
	GET /municipalities/{id}/demographics      - Annual demographic snapshots

Assistant:

	POST /municipalities/{id}/chat - Ask a question (JSON or multipart PDF)
	GET  /municipalities/{id}/chat - Conversation history

# Handler Initialization

The router creates handler instances with dependency injection:

	authHandler := handlers.NewAuthHandler(st)
	dataHandler := handlers.NewDataHandler(st)
	chatHandler := handlers.NewChatHandler(st, a)

The whole mux is wrapped with rs/cors so browser dashboards on other
origins can call the API directly.
*/
package router
