package aiquiz

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"google.golang.org/genai"

	"github.com/saulo-duarte/mocktest-lambda/internal/config"
)

// Provider sends one prompt to a generative model and returns the JSON value
// it produced. It does not check that value against the prompt's schema.
type Provider interface {
	SendPrompt(ctx context.Context, prompt Prompt) (any, error)
}

type geminiProvider struct {
	cfg    config.GeminiConfig
	client *http.Client
}

func NewGeminiProvider(cfg config.GeminiConfig, client *http.Client) Provider {
	if client == nil {
		client = &http.Client{}
	}
	return &geminiProvider{cfg: cfg, client: client}
}

type generateContentRequest struct {
	Contents         []requestContent `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type requestContent struct {
	Parts []requestPart `json:"parts"`
}

type requestPart struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string        `json:"responseMimeType"`
	ResponseSchema   *genai.Schema `json:"responseSchema,omitempty"`
}

func (p *geminiProvider) SendPrompt(ctx context.Context, prompt Prompt) (any, error) {
	log := config.WithContext(ctx)

	if p.cfg.APIKey == "" {
		return nil, &ConfigurationError{Setting: "GEMINI_API_KEY"}
	}

	payload, err := json.Marshal(generateContentRequest{
		Contents: []requestContent{{Parts: []requestPart{{Text: prompt.Text}}}},
		GenerationConfig: generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   prompt.Schema,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to encode gemini request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint(), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("failed to build gemini request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", p.cfg.APIKey)

	resp, err := p.client.Do(req)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Gemini request failed")
		return nil, fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Failed to read Gemini response")
		return nil, fmt.Errorf("%w: %v", ErrProviderUnreachable, err)
	}

	log.WithField("status", resp.StatusCode).
		WithField("raw_response", string(body)).
		Info("[AIQUIZ] Gemini raw response")

	if resp.StatusCode != http.StatusOK {
		return nil, &ProviderError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	value, err := decodeEnvelope(body)
	if err != nil {
		log.WithError(err).Error("[AIQUIZ] Could not use Gemini response")
		return nil, err
	}
	return value, nil
}

// endpoint must not carry the API key: transport errors embed the URL.
func (p *geminiProvider) endpoint() string {
	return fmt.Sprintf("%s/models/%s:generateContent", p.cfg.BaseURL, url.PathEscape(p.cfg.Model))
}
