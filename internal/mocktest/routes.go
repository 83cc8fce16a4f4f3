package mocktest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func Routes(h *Handler) http.Handler {
	r := chi.NewRouter()

	r.Get("/", h.ListTests)
	r.Post("/", h.CreateTest)
	r.Delete("/{id}", h.DeleteTest)
	return r
}
