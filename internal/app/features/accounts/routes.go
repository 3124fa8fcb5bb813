package accounts

import (
	"github.com/go-chi/chi/v5"

	"github.com/ashiquzzaman/mongocms/internal/app/system/auth"
)

// Routes mounts all Account routes under the base path (typically
// "/accounts" from bootstrap).
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()

	r.Post("/register", h.HandleRegister)
	r.Post("/login", h.HandleLogin)
	r.Post("/logout", h.HandleLogout)

	r.Group(func(pr chi.Router) {
		pr.Use(auth.RequireSignedIn)
		pr.Get("/me", h.ServeMe)
	})

	return r
}
