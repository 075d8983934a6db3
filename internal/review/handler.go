package review

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/saulo-duarte/lifeboard/internal/auth"
	"github.com/saulo-duarte/lifeboard/internal/config"
)

type Handler struct {
	service Service
	now     func() time.Time
}

func NewHandler(service Service) *Handler {
	return &Handler{service: service, now: time.Now}
}

type PriorityResponse struct {
	Priority       Level `json:"priority"`
	DaysSince      int   `json:"days_since"`
	NeedsAttention bool  `json:"needs_attention"`
}

func (h *Handler) Dashboard(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	config.JSON(w, http.StatusOK, h.service.Dashboard(r.Context(), userID, h.now()))
}

func (h *Handler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	config.JSON(w, http.StatusOK, h.service.Summary(r.Context(), userID, h.now()))
}

// Priority classifies an arbitrary area snapshot.
func (h *Handler) Priority(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var in Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	now := h.now()
	level := Classify(in, now)
	config.JSON(w, http.StatusOK, PriorityResponse{
		Priority:       level,
		DaysSince:      DaysSince(in.LastUpdated, now),
		NeedsAttention: NeedsAttention(level),
	})
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		config.WithContext(r.Context()).Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}
