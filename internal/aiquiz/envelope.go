package aiquiz

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
)

// decodeEnvelope turns a generateContent response body into the JSON value
// the model wrote at candidates[0].content.parts[0].text. Every level is
// checked for presence and type; any mismatch is a MalformedResponseError.
func decodeEnvelope(body []byte) (any, error) {
	malformed := func(cause error) error {
		return &MalformedResponseError{Cause: cause, Envelope: body}
	}

	root, err := decodeJSON(body)
	if err != nil {
		return nil, malformed(fmt.Errorf("envelope is not valid JSON: %w", err))
	}
	envelope, ok := root.(map[string]any)
	if !ok {
		return nil, malformed(errors.New("envelope is not a JSON object"))
	}

	if feedback, ok := envelope["promptFeedback"].(map[string]any); ok {
		if reason, blocked := feedback["blockReason"]; blocked {
			return nil, &BlockedError{Reason: fmt.Sprint(reason)}
		}
	}

	candidate, err := firstObject(envelope, "candidates")
	if err != nil {
		return nil, malformed(err)
	}
	content, ok := candidate["content"].(map[string]any)
	if !ok {
		return nil, malformed(errors.New("candidates[0].content is missing or not an object"))
	}
	part, err := firstObject(content, "parts")
	if err != nil {
		return nil, malformed(fmt.Errorf("candidates[0].content.%w", err))
	}
	text, ok := part["text"].(string)
	if !ok {
		return nil, malformed(errors.New("candidates[0].content.parts[0].text is missing or not a string"))
	}

	value, err := decodeJSON([]byte(stripCodeFence(text)))
	if err != nil {
		return nil, malformed(fmt.Errorf("model text is not valid JSON: %w", err))
	}
	return value, nil
}

func firstObject(parent map[string]any, key string) (map[string]any, error) {
	list, ok := parent[key].([]any)
	if !ok {
		return nil, fmt.Errorf("%s is missing or not an array", key)
	}
	if len(list) == 0 {
		return nil, fmt.Errorf("%s is empty", key)
	}
	first, ok := list[0].(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%s[0] is not an object", key)
	}
	return first, nil
}

// decodeJSON parses exactly one JSON value, keeping numbers as json.Number so
// integers and fractions stay distinguishable.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, errors.New("unexpected data after JSON value")
	}
	return v, nil
}

func stripCodeFence(s string) string {
	clean := strings.TrimSpace(s)
	clean = strings.TrimPrefix(clean, "```json")
	clean = strings.TrimPrefix(clean, "```")
	clean = strings.TrimSuffix(clean, "```")
	return strings.TrimSpace(clean)
}
