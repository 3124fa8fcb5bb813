package countries

import (
	"github.com/go-chi/chi/v5"

	"github.com/ashiquzzaman/mongocms/internal/app/system/auth"
)

// Routes mounts all Country routes under the base path (typically
// "/countries" from bootstrap). Reads are open; writes are admin-only.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.ServeList)
	r.Get("/{id}", h.ServeView)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Use(auth.RequireRole("admin"))

		pr.Post("/", h.HandleCreate)
		pr.Put("/{id}", h.HandleEdit)
		pr.Delete("/{id}", h.HandleDelete)
	})

	return r
}
