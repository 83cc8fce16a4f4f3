package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/saulo-duarte/mocktest-lambda/internal/aiquiz"
	"github.com/saulo-duarte/mocktest-lambda/internal/config"
	"github.com/saulo-duarte/mocktest-lambda/internal/middlewares"
	"github.com/saulo-duarte/mocktest-lambda/internal/mocktest"
)

type RouterConfig struct {
	MockTestHandler *mocktest.Handler
	AIQuizHandler   *aiquiz.Handler
	CorsOrigins     []string
}

func New(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middlewares.RequestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middlewares.Cors(cfg.CorsOrigins))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		config.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Mount("/tests", mocktest.Routes(cfg.MockTestHandler))
		r.Mount("/", aiquiz.Routes(cfg.AIQuizHandler))
	})
	return r
}
