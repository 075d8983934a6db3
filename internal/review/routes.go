package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/dashboard", h.Dashboard)
	r.Get("/summary", h.Summary)
	r.Post("/priority", h.Priority)

	return r
}
