package aiquiz

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDecode(t *testing.T, s string) any {
	t.Helper()
	v, err := decodeJSON([]byte(s))
	require.NoError(t, err)
	return v
}

const samplePaper = `{"title":"Sample Exam Mock Test","duration":60,"questions":[` +
	`{"questionText":"Q1? (प्र1?)","options":["A","B","C","D"],"correctOptionIndex":0,"explanation":"..."},` +
	`{"questionText":"Q2? (प्र2?)","options":["A","B","C","D"],"correctOptionIndex":1,"explanation":"..."}]}`

func TestValidatePaperClean(t *testing.T) {
	paper, err := ValidatePaper(mustDecode(t, samplePaper))
	require.NoError(t, err)

	assert.NotContains(t, paper, "warnings")

	out, err := json.Marshal(paper)
	require.NoError(t, err)
	assert.JSONEq(t, samplePaper, string(out))
}

func TestValidatePaperOutOfRange(t *testing.T) {
	raw := `{"title":"T","duration":30,"questions":[` +
		`{"questionText":"Q1","options":["A","B","C","D"],"correctOptionIndex":5},` +
		`{"questionText":"Q2","options":["A","B","C","D"],"correctOptionIndex":3}]}`

	paper, err := ValidatePaper(mustDecode(t, raw))
	require.NoError(t, err)

	warnings, ok := paper["warnings"].([]AnswerIndexWarning)
	require.True(t, ok)
	require.Len(t, warnings, 1)
	assert.Equal(t, 1, warnings[0].QuestionNumber)
	assert.Equal(t, json.Number("5"), warnings[0].Value)

	out, err := json.Marshal(paper)
	require.NoError(t, err)
	assert.Contains(t, string(out), `"warnings":["Question 1: correctOptionIndex 5 is out of range."]`)
}

func TestValidatePaperNonIntegerIndexes(t *testing.T) {
	raw := `{"questions":[` +
		`{"questionText":"Q1","options":["A","B","C","D"],"correctOptionIndex":1.5},` +
		`{"questionText":"Q2","options":["A","B","C","D"],"correctOptionIndex":"2"},` +
		`{"questionText":"Q3","options":["A","B","C","D"]},` +
		`{"questionText":"Q4","options":["A","B","C","D"],"correctOptionIndex":-1},` +
		`{"questionText":"Q5","options":["A","B","C","D"],"correctOptionIndex":2}]}`

	paper, err := ValidatePaper(mustDecode(t, raw))
	require.NoError(t, err)

	warnings := paper["warnings"].([]AnswerIndexWarning)
	var got []string
	for _, w := range warnings {
		got = append(got, w.String())
	}
	assert.Equal(t, []string{
		"Question 1: correctOptionIndex 1.5 is out of range.",
		`Question 2: correctOptionIndex "2" is out of range.`,
		"Question 3: correctOptionIndex null is out of range.",
		"Question 4: correctOptionIndex -1 is out of range.",
	}, got)
}

func TestValidatePaperMissingQuestionText(t *testing.T) {
	raw := `{"title":"T","duration":30,"questions":[` +
		`{"questionText":"Q1","options":["A","B","C","D"],"correctOptionIndex":9},` +
		`{"questionText":"","options":["A","B","C","D"],"correctOptionIndex":0},` +
		`{"questionText":"Q3","options":["A","B","C","D"],"correctOptionIndex":0}]}`
	original := mustDecode(t, raw)

	_, err := ValidatePaper(original)

	var missing *MissingQuestionTextError
	require.ErrorAs(t, err, &missing)

	out, err := json.Marshal(missing.Response)
	require.NoError(t, err)
	assert.JSONEq(t, raw, string(out))
	assert.NotContains(t, missing.Response, "warnings")
}

func TestValidatePaperWhitespaceAndMissingText(t *testing.T) {
	for _, raw := range []string{
		`{"questions":[{"questionText":"   \n","options":["A","B","C","D"],"correctOptionIndex":0}]}`,
		`{"questions":[{"options":["A","B","C","D"],"correctOptionIndex":0}]}`,
		`{"questions":[{"questionText":7,"options":["A","B","C","D"],"correctOptionIndex":0}]}`,
		`{"questions":["not an object"]}`,
	} {
		_, err := ValidatePaper(mustDecode(t, raw))
		var missing *MissingQuestionTextError
		assert.ErrorAs(t, err, &missing, raw)
	}
}

func TestValidatePaperShape(t *testing.T) {
	_, err := ValidatePaper(mustDecode(t, `[1,2,3]`))
	var malformed *MalformedResponseError
	assert.ErrorAs(t, err, &malformed)

	paper, err := ValidatePaper(mustDecode(t, `{"title":"No questions"}`))
	require.NoError(t, err)
	assert.NotContains(t, paper, "warnings")
}

func TestCheckAnswerMentioned(t *testing.T) {
	assert.True(t, checkAnswerMentioned("Is Delhi the capital of India?", "Delhi (दिल्ली)"))
	assert.False(t, checkAnswerMentioned("Capital of India?", "Delhi (दिल्ली)"))
	assert.True(t, checkAnswerMentioned("Anything", "(केवल हिन्दी)"))
	assert.True(t, checkAnswerMentioned("Anything", 42))
}
