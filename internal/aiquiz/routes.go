package aiquiz

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Post("/generate-paper", h.GeneratePaper)
	r.Post("/parse-text", h.ParseText)
	r.Post("/generate-similar", h.GenerateSimilar)
	return r
}
