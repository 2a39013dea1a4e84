package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/toolscout/toolscout/internal/catalog"
	"github.com/toolscout/toolscout/internal/compare"
	"github.com/toolscout/toolscout/internal/events"
	"github.com/toolscout/toolscout/internal/quiz"
	"github.com/toolscout/toolscout/internal/store"
)

func NewRouter(engine *quiz.Engine, cat *catalog.Catalog, reg *compare.Registry, s store.Store, ev events.Client, adminToken string, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(RequestLogger(logger))
	r.Use(RateLimitMiddleware(120))

	quizHandler := NewQuizHandler(engine, cat, s, ev)
	compareHandler := NewCompareHandler(reg, ev)
	toolsHandler := NewToolsHandler(cat, s, ev)
	admin := NewAdminHandler(s)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/quiz/questions", quizHandler.Questions)
		r.Post("/quiz/score", quizHandler.Score)

		r.Get("/compare/{slug}", compareHandler.Resolve)

		r.Get("/tools", toolsHandler.List)
		r.Get("/tools/{slug}", toolsHandler.Get)

		r.Group(func(r chi.Router) {
			r.Use(AdminAuthMiddleware(adminToken))
			r.Get("/stats", admin.Stats)
		})
	})

	r.Get("/go/{slug}", toolsHandler.Redirect)

	return r
}

func NewMetricsRouter() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())
	return r
}
