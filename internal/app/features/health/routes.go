package health

import "github.com/go-chi/chi/v5"

// Routes mounts the health endpoints.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/live", h.ServeLive)
	r.Get("/ready", h.ServeReady)
	return r
}
