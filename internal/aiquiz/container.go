package aiquiz

import (
	"net/http"

	"github.com/saulo-duarte/mocktest-lambda/internal/config"
)

type AIQuizContainer struct {
	Handler *Handler
}

func NewAIQuizContainer(cfg config.GeminiConfig) *AIQuizContainer {
	provider := NewGeminiProvider(cfg, &http.Client{})
	service := NewService(provider)
	handler := NewHandler(service)

	return &AIQuizContainer{
		Handler: handler,
	}
}
