package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/lightdarktcg/companion/internal/api/handlers"
	"github.com/lightdarktcg/companion/internal/api/response"
	"github.com/lightdarktcg/companion/internal/version"
)

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	// Health check endpoint (no versioning)
	s.router.Get("/health", s.healthCheck)

	// WebSocket endpoint (no JSON content-type requirement)
	s.router.Get("/ws", s.wsHub.ServeWs)

	// API v1 routes
	s.router.Route("/api/v1", func(r chi.Router) {
		// Card catalog routes
		cardHandler := handlers.NewCardHandler(s.catalogs, s.recommender)
		r.Route("/cards", func(r chi.Router) {
			r.Get("/", cardHandler.SearchCards)
			r.Get("/archetypes", cardHandler.GetArchetypes)
			r.Get("/collections", cardHandler.GetCollections)
			r.Get("/{code}", cardHandler.GetCard)
			r.Get("/{code}/related", cardHandler.GetRelated)
		})

		// Deck routes
		deckHandler := handlers.NewDeckHandler(s.catalogs)
		r.Route("/decks", func(r chi.Router) {
			r.Post("/validate", deckHandler.Validate)
			r.Post("/stats", deckHandler.Stats)
			r.Post("/export", deckHandler.Export)
			r.Post("/import", deckHandler.Import)
			r.Post("/charts/curve", deckHandler.CostCurveChart)
			r.Post("/charts/types", deckHandler.TypeDistributionChart)

			if s.db != nil {
				sharedHandler := handlers.NewSharedDeckHandler(s.db, s.catalogs, s.wsHub)
				r.Route("/shared", func(r chi.Router) {
					r.Get("/", sharedHandler.ListRecent)
					r.Post("/", sharedHandler.Share)
					r.Get("/{deckID}", sharedHandler.Get)
					r.Delete("/{deckID}", sharedHandler.Delete)
				})
			}
		})

		// Field reference routes
		fieldHandler := handlers.NewFieldHandler()
		r.Get("/field/zones", fieldHandler.GetZones)
	})
}

// healthCheck returns the server health status.
func (s *Server) healthCheck(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": version.GetVersion(),
		"cards":   s.catalogs.Catalog().Len(),
	})
}
