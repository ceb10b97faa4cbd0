package reviews

import "github.com/go-chi/chi/v5"

func RegisterRoutes(r chi.Router, h *Handler) {
	r.Post("/api/reviews/generate", h.HandleGenerate)
	r.Get("/api/reviews", h.HandleList)
}
