package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/lifeboard/internal/auth"
	"github.com/saulo-duarte/lifeboard/internal/config"
	"github.com/saulo-duarte/lifeboard/internal/goal"
	"github.com/saulo-duarte/lifeboard/internal/middlewares"
	"github.com/saulo-duarte/lifeboard/internal/review"
)

type RouterConfig struct {
	AllowedOrigins []string
	GoalHandler    *goal.Handler
	ReviewHandler  *review.Handler
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.AllowedOrigins))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.AuthMiddleware)

		r.Mount("/goals", goal.Routes(cfg.GoalHandler))
		r.Mount("/review", review.Routes(cfg.ReviewHandler))
	})
	return r
}
