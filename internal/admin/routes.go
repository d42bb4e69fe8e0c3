package admin

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/insuredesk/insure-backend/internal/middleware"
)

func SetupRoutes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/login", h.Login)
	r.Get("/check", h.Check)
	r.Get("/logout", h.Logout)

	r.Group(func(r chi.Router) {
		r.Use(middleware.SessionGuard(h.Sessions, h.Cookie.Name))
		r.Get("/data", h.Data)
	})

	return r
}
