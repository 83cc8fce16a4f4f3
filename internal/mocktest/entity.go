package mocktest

import (
	"encoding/json"
	"math"
	"strings"
)

// TestRecord is a saved mock exam. The id is chosen by the client and is
// not checked for uniqueness.
type TestRecord struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Duration  int              `json:"duration"`
	Questions []QuestionRecord `json:"questions"`
	CreatedAt string           `json:"createdAt"`
}

// QuestionRecord is kept as the JSON object the client sent. The usual keys
// are questionText, options (4 strings), correctOptionIndex and explanation;
// bilingual text is written as "English (Hindi)".
type QuestionRecord map[string]any

func (q QuestionRecord) QuestionText() (string, bool) {
	s, ok := q["questionText"].(string)
	return s, ok
}

// HasQuestionText reports whether questionText is a string with visible content.
func (q QuestionRecord) HasQuestionText() bool {
	s, ok := q.QuestionText()
	return ok && strings.TrimSpace(s) != ""
}

func (q QuestionRecord) Options() []any {
	opts, _ := q["options"].([]any)
	return opts
}

// AnswerIndex returns correctOptionIndex when it holds an integer.
// Fractional numbers, strings, booleans and null are not integers.
func (q QuestionRecord) AnswerIndex() (int64, bool) {
	switch v := q["correctOptionIndex"].(type) {
	case json.Number:
		n, err := v.Int64()
		return n, err == nil
	case float64:
		if v != math.Trunc(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return int64(v), true
	case int:
		return int64(v), true
	case int64:
		return v, true
	default:
		return 0, false
	}
}
