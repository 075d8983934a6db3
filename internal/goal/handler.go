package goal

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
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

func (h *Handler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	log := config.WithContext(r.Context())

	claims, err := auth.GetUserClaimsFromContext(r.Context())
	if err != nil {
		log.Warn("User not authenticated")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		log.WithError(err).Warn("Token user id is not a uuid")
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

func goalIDParam(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	idStr := chi.URLParam(r, "id")
	if idStr == "" {
		http.Error(w, "id required", http.StatusBadRequest)
		return uuid.Nil, false
	}
	id, err := uuid.Parse(idStr)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrGoalNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, ErrDuplicateCheckIn):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, ErrInvalidCheckInDate),
		errors.Is(err, ErrInvalidCheckInCount),
		errors.Is(err, ErrInvalidMonth):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	filter := ListFilter{
		Status: GoalStatus(r.URL.Query().Get("status")),
		Area:   GoalArea(r.URL.Query().Get("area")),
	}

	responses, err := h.service.List(r.Context(), userID, filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, responses)
}

func (h *Handler) Progress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(w, r)
	if !ok {
		return
	}

	progress, err := h.service.Progress(r.Context(), userID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, progress)
}

func (h *Handler) AreaProgress(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	area := GoalArea(r.URL.Query().Get("area"))
	if area != "" && !area.IsValid() {
		http.Error(w, "invalid area", http.StatusBadRequest)
		return
	}

	progress, err := h.service.AreaProgress(r.Context(), userID, area)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, progress)
}

func (h *Handler) MonthlySummary(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(w, r)
	if !ok {
		return
	}

	now := h.now()
	year, month := now.Year(), now.Month()
	if v := r.URL.Query().Get("year"); v != "" {
		y, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid year", http.StatusBadRequest)
			return
		}
		year = y
	}
	if v := r.URL.Query().Get("month"); v != "" {
		m, err := strconv.Atoi(v)
		if err != nil {
			http.Error(w, "invalid month", http.StatusBadRequest)
			return
		}
		month = time.Month(m)
	}

	summary, err := h.service.MonthlySummary(r.Context(), userID, goalID, year, month)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, summary)
}

func (h *Handler) CheckInHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(w, r)
	if !ok {
		return
	}

	checkIns, err := h.service.CheckInHistory(r.Context(), userID, goalID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, checkIns)
}

func (h *Handler) RecordCheckIn(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	userID, ok := h.userID(w, r)
	if !ok {
		return
	}
	goalID, ok := goalIDParam(w, r)
	if !ok {
		return
	}

	var dto CreateCheckInDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Error("Invalid request body")
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	checkIn, err := h.service.RecordCheckIn(r.Context(), userID, goalID, dto)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusCreated, checkIn)
}

func (h *Handler) PendingCheckIns(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	pending, err := h.service.PendingCheckIns(r.Context(), userID, h.now())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	config.JSON(w, http.StatusOK, pending)
}
