package aiquiz

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/saulo-duarte/mocktest-lambda/internal/mocktest"
)

// AnswerIndexWarning flags a question whose correctOptionIndex is not an
// integer pointing into its options.
type AnswerIndexWarning struct {
	QuestionNumber int
	Value          any
}

func (w AnswerIndexWarning) String() string {
	value, err := json.Marshal(w.Value)
	if err != nil {
		value = []byte(fmt.Sprint(w.Value))
	}
	return fmt.Sprintf("Question %d: correctOptionIndex %s is out of range.", w.QuestionNumber, value)
}

func (w AnswerIndexWarning) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

// ValidatePaper checks a generated paper before it goes back to the client.
// A question without text rejects the whole paper; bad answer indexes only
// add entries under "warnings".
func ValidatePaper(result any) (map[string]any, error) {
	paper, ok := result.(map[string]any)
	if !ok {
		return nil, &MalformedResponseError{Cause: errors.New("paper is not a JSON object")}
	}

	items, _ := paper["questions"].([]any)

	var warnings []AnswerIndexWarning
	for i, item := range items {
		obj, _ := item.(map[string]any)
		q := mocktest.QuestionRecord(obj)

		if !q.HasQuestionText() {
			return nil, &MissingQuestionTextError{Response: paper}
		}

		options := q.Options()
		idx, isInt := q.AnswerIndex()
		if !isInt || idx < 0 || idx >= int64(len(options)) {
			warnings = append(warnings, AnswerIndexWarning{QuestionNumber: i + 1, Value: q["correctOptionIndex"]})
			continue
		}

		text, _ := q.QuestionText()
		_ = checkAnswerMentioned(text, options[idx])
	}

	if len(warnings) > 0 {
		paper["warnings"] = warnings
	}
	return paper, nil
}

// checkAnswerMentioned is a hook for spotting answers that look unrelated to
// their question. Its result is not acted on: it neither warns nor rejects.
func checkAnswerMentioned(questionText string, answer any) bool {
	s, ok := answer.(string)
	if !ok {
		return true
	}
	english, _, _ := strings.Cut(s, "(")
	english = strings.ToLower(strings.TrimSpace(english))
	if english == "" {
		return true
	}
	return strings.Contains(strings.ToLower(questionText), english)
}
