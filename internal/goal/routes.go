package goal

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.List)
	r.Get("/progress", h.AreaProgress)
	r.Get("/checkins/pending", h.PendingCheckIns)
	r.Get("/{id}/progress", h.Progress)
	r.Get("/{id}/checkins/summary", h.MonthlySummary)
	r.Get("/{id}/checkins", h.CheckInHistory)
	r.Post("/{id}/checkins", h.RecordCheckIn)

	return r
}
