package aiquiz

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidArgument     = errors.New("invalid argument")
	ErrProviderUnreachable = errors.New("gemini endpoint unreachable")
)

type ConfigurationError struct {
	Setting string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("Google AI API key is not configured (%s)", e.Setting)
}

// ProviderError is a non-2xx answer from the provider.
type ProviderError struct {
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("API call failed: %s", e.Body)
}

// BlockedError means the provider refused the prompt on safety grounds.
type BlockedError struct {
	Reason string
}

func (e *BlockedError) Error() string {
	return fmt.Sprintf("Request blocked by API: %s", e.Reason)
}

// MalformedResponseError keeps the raw envelope so the failure can be
// diagnosed later. Envelope is empty when the JSON itself parsed but had the
// wrong top-level shape.
type MalformedResponseError struct {
	Cause    error
	Envelope []byte
}

func (e *MalformedResponseError) Error() string {
	return fmt.Sprintf("Invalid response structure from AI: %v", e.Cause)
}

func (e *MalformedResponseError) Unwrap() error { return e.Cause }

// MissingQuestionTextError aborts a whole generated paper. Response is the
// paper exactly as the model returned it.
type MissingQuestionTextError struct {
	Response any
}

func (e *MissingQuestionTextError) Error() string {
	return "AI response missing questionText in one or more questions."
}
