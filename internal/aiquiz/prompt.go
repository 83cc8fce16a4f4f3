package aiquiz

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/saulo-duarte/mocktest-lambda/internal/mocktest"
)

const bilingualRule = `"English Text (हिन्दी टेक्स्ट)"`

func BuildPaperPrompt(req PaperRequest) Prompt {
	var b strings.Builder

	fmt.Fprintf(&b, `
You are an expert exam paper setter. Build a complete, realistic mock test for the exam named below, following the real exam's pattern as closely as you can.
Exam Name: %q
Instructions:
1. Work out the official pattern of this exam, including its standard number of questions.
2. Generate exactly that many questions and keep to the official pattern.`, req.ExamName)

	if req.QuestionCount != nil && *req.QuestionCount != 0 {
		fmt.Fprintf(&b, `
   2a. Override: generate exactly %d questions, whatever the official pattern says.`, *req.QuestionCount)
	}

	b.WriteString(`
3. Give the test a fitting title and a duration in minutes taken from the official time limit.`)

	if req.Duration != nil && *req.Duration != 0 {
		fmt.Fprintf(&b, `
   3a. Override: set the duration to exactly %d minutes.`, *req.Duration)
	}

	fmt.Fprintf(&b, `
4. Bilingual content: every question and every option must carry the English text followed by a good Hindi translation, formatted as %s.
5. Return one valid JSON object and nothing else.
6. Every entry of "questions" MUST have:
   - a non-empty "questionText" holding the full question itself; never leave it empty and never put the options or the answer in it,
   - an "options" array with exactly 4 entries,
   - a "correctOptionIndex" (0 to 3).
   If you cannot produce a proper question, put an error message in "questionText" instead of leaving it blank.
7. Double-check every question: the option at "correctOptionIndex" must really be the correct answer to that question. If you are unsure, put an error message in "questionText".
8. Add a short English "explanation" of why the correct answer is correct.
Generate the full mock test now.
`, bilingualRule)

	return Prompt{Text: b.String(), Schema: paperSchema()}
}

func BuildParsePrompt(text string) Prompt {
	prompt := fmt.Sprintf(`
You are an expert test editor and translator. Read the text below and turn it into questions.
Tasks:
1. Extract each question's text and its options. The correct option is marked in the source with '⭕' or '*'; use that mark to set "correctOptionIndex".
2. Normalize: every question must end up with exactly 4 options; strip enumeration markers such as '(A)', 'A.' or '1)' from the option text.
3. Translate: where a question or option is only in English, translate it into Hindi.
4. Format: merge both languages into %s.
5. Return a valid JSON array of question objects and nothing else.
Now parse:
---
%s
---
`, bilingualRule, text)

	return Prompt{Text: prompt, Schema: parsedQuestionsSchema()}
}

func BuildSimilarPrompt(existing []mocktest.QuestionRecord) (Prompt, error) {
	if existing == nil {
		return Prompt{}, fmt.Errorf("%w: questions must be an array of question objects", ErrInvalidArgument)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(existing); err != nil {
		return Prompt{}, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	prompt := fmt.Sprintf(`
You are an expert question writer. Write a new set of multiple-choice questions that match the examples below in topic, style and difficulty. They must not be copies of the examples.
Existing questions (for reference):
%s
Instructions:
1. Study the subject, format and difficulty of the examples.
2. Write exactly %d new questions, the same number as provided.
3. Keep the bilingual format: each question and each of its 4 options written as %s.
4. Do not repeat any example's wording, numbers or answer.
5. Return a valid JSON array of question objects and nothing else.
6. Add a short English "explanation" of why the correct answer is correct.
Write the new questions now.
`, strings.TrimSpace(buf.String()), len(existing), bilingualRule)

	return Prompt{Text: prompt, Schema: similarQuestionsSchema()}, nil
}

// DecodeQuestionList accepts only a JSON array whose items are all objects.
func DecodeQuestionList(raw json.RawMessage) ([]mocktest.QuestionRecord, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: questions must be an array", ErrInvalidArgument)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(trimmed, &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	questions := make([]mocktest.QuestionRecord, 0, len(items))
	for i, item := range items {
		var q mocktest.QuestionRecord
		if err := json.Unmarshal(item, &q); err != nil || q == nil {
			return nil, fmt.Errorf("%w: questions[%d] must be an object", ErrInvalidArgument, i)
		}
		questions = append(questions, q)
	}
	return questions, nil
}

func questionSchema(withExplanation bool) *genai.Schema {
	properties := map[string]*genai.Schema{
		"questionText": {Type: genai.TypeString},
		"options": {
			Type:     genai.TypeArray,
			Items:    &genai.Schema{Type: genai.TypeString},
			MinItems: genai.Ptr[int64](4),
			MaxItems: genai.Ptr[int64](4),
		},
		"correctOptionIndex": {Type: genai.TypeInteger},
	}
	required := []string{"questionText", "options", "correctOptionIndex"}

	if withExplanation {
		properties["explanation"] = &genai.Schema{Type: genai.TypeString}
		required = append(required, "explanation")
	}

	return &genai.Schema{
		Type:       genai.TypeObject,
		Properties: properties,
		Required:   required,
	}
}

func paperSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":    {Type: genai.TypeString},
			"duration": {Type: genai.TypeNumber},
			"questions": {
				Type:  genai.TypeArray,
				Items: questionSchema(true),
			},
		},
		Required: []string{"title", "duration", "questions"},
	}
}

func parsedQuestionsSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: questionSchema(false)}
}

func similarQuestionsSchema() *genai.Schema {
	return &genai.Schema{Type: genai.TypeArray, Items: questionSchema(true)}
}
