package aiquiz

import (
	"encoding/json"

	"google.golang.org/genai"
)

type PaperRequest struct {
	ExamName      string `json:"examName"`
	Duration      *int   `json:"duration,omitempty"`
	QuestionCount *int   `json:"questionCount,omitempty"`
}

// ParseRequest carries free text copied from a printed or digital paper.
type ParseRequest struct {
	Text *string `json:"text"`
}

type SimilarRequest struct {
	Questions json.RawMessage `json:"questions"`
}

// Prompt is the instruction sent to the model together with the JSON shape
// the model has to answer in.
type Prompt struct {
	Text   string
	Schema *genai.Schema
}
