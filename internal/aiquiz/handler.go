package aiquiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/saulo-duarte/mocktest-lambda/internal/config"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) GeneratePaper(w http.ResponseWriter, r *http.Request) {
	var req PaperRequest
	if !decodeBody(w, r, &req) {
		return
	}

	paper, err := h.service.GeneratePaper(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, paper)
}

func (h *Handler) ParseText(w http.ResponseWriter, r *http.Request) {
	var req ParseRequest
	if !decodeBody(w, r, &req) {
		return
	}

	questions, err := h.service.ParseText(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func (h *Handler) GenerateSimilar(w http.ResponseWriter, r *http.Request) {
	var req SimilarRequest
	if !decodeBody(w, r, &req) {
		return
	}

	questions, err := h.service.GenerateSimilar(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	config.JSON(w, http.StatusOK, questions)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		config.WithContext(r.Context()).WithError(err).Warn("Invalid request body")
		config.Error(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// writeError maps gateway and validation failures to responses. A paper with
// a missing questionText is reported with status 200 and an "error" field.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := config.WithContext(r.Context())

	var (
		missingText *MissingQuestionTextError
		cfgErr      *ConfigurationError
		providerErr *ProviderError
		blocked     *BlockedError
		malformed   *MalformedResponseError
	)

	switch {
	case errors.As(err, &missingText):
		config.JSON(w, http.StatusOK, map[string]any{
			"error":        missingText.Error(),
			"raw_response": missingText.Response,
		})
	case errors.Is(err, ErrInvalidArgument):
		config.Error(w, http.StatusUnprocessableEntity, err.Error())
	case errors.As(err, &cfgErr):
		log.WithError(err).Error("Gemini is not configured")
		config.Error(w, http.StatusInternalServerError, cfgErr.Error())
	case errors.As(err, &providerErr):
		config.Error(w, providerErr.StatusCode, providerErr.Error())
	case errors.As(err, &blocked):
		config.Error(w, http.StatusBadRequest, blocked.Error())
	case errors.As(err, &malformed):
		config.Error(w, http.StatusInternalServerError, malformed.Error())
	case errors.Is(err, ErrProviderUnreachable):
		config.Error(w, http.StatusBadGateway, "failed to reach the AI provider")
	default:
		log.WithError(err).Error("Failed to call the AI provider")
		config.Error(w, http.StatusInternalServerError, "internal server error")
	}
}
