package mocktest

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/saulo-duarte/mocktest-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) ListTests(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	tests, err := h.service.ListTests(r.Context())
	if err != nil {
		log.WithError(err).Error("Failed to list tests")
		config.Error(w, http.StatusInternalServerError, "failed to load tests")
		return
	}

	config.JSON(w, http.StatusOK, tests)
}

func (h *Handler) CreateTest(w http.ResponseWriter, r *http.Request) {
	log := config.WithContext(r.Context())

	var dto CreateTestDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		log.WithError(err).Warn("Invalid request body for test")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	test, err := dto.ToRecord()
	if err != nil {
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	if err := h.service.CreateTest(r.Context(), test); err != nil {
		config.Error(w, http.StatusInternalServerError, "failed to save test")
		return
	}

	config.JSON(w, http.StatusOK, CreateTestResponse{Status: "success", TestID: test.ID})
}

func (h *Handler) DeleteTest(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if unescaped, err := url.PathUnescape(id); err == nil {
		id = unescaped
	}

	if err := h.service.DeleteTest(r.Context(), id); err != nil {
		if errors.Is(err, ErrTestNotFound) {
			config.Error(w, http.StatusNotFound, "Test not found")
			return
		}
		config.Error(w, http.StatusInternalServerError, "failed to delete test")
		return
	}

	config.JSON(w, http.StatusOK, DeleteTestResponse{Status: "success", DeletedID: id})
}
