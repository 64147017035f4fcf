package genai

import (
	"errors"
	"testing"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const examJSON = `{
  "examDetails": {
    "title": "TOEIC Practice Test 1",
    "type": "TOEIC",
    "duration": 120,
    "sections": [{"sectionName": "Part 5", "description": "Incomplete sentences"}]
  },
  "questions": [
    {
      "category": "TOEIC",
      "part": 5,
      "format": "MULTIPLE_CHOICE",
      "subQuestions": [{
        "content": "The report ___ by Friday.",
        "options": ["finish", "finished", "will be finished", "finishing"],
        "correctAnswer": ["will be finished"],
        "explanation": "Future passive is required."
      }],
      "metadata": {"level": "Medium"}
    }
  ]
}`

func TestParseGeneratedExamPlainJSON(t *testing.T) {
	payload, err := ParseGeneratedExam(examJSON)

	require.NoError(t, err)
	require.NotNil(t, payload.ExamDetails)
	assert.Equal(t, "TOEIC Practice Test 1", payload.ExamDetails.Title)
	assert.Equal(t, 120, payload.ExamDetails.Duration)
	require.Len(t, payload.Questions, 1)
	require.NotNil(t, payload.Questions[0].Part)
	assert.Equal(t, 5, *payload.Questions[0].Part)
}

func TestParseGeneratedExamFencedEqualsPlain(t *testing.T) {
	fenced := "```json\n" + examJSON + "\n```"

	plain, err := ParseGeneratedExam(examJSON)
	require.NoError(t, err)
	wrapped, err := ParseGeneratedExam(fenced)
	require.NoError(t, err)

	assert.Equal(t, plain, wrapped)
}

func TestParseGeneratedExamBareFence(t *testing.T) {
	fenced := "```\n" + examJSON + "\n```"

	payload, err := ParseGeneratedExam(fenced)

	require.NoError(t, err)
	assert.Equal(t, "TOEIC", payload.ExamDetails.Type)
}

func TestParseGeneratedExamMalformed(t *testing.T) {
	_, err := ParseGeneratedExam("I could not parse the document, sorry!")

	require.Error(t, err)
	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeUpstreamFormat, domainErr.Code)
}

func TestParseGeneratedQuestion(t *testing.T) {
	raw := "```json\n" + `{
  "category": "ACADEMIC",
  "part": 0,
  "format": "FILL_IN",
  "subQuestions": [{
    "content": "The capital of France is ___.",
    "correctAnswer": ["Paris"],
    "explanation": "Paris has been the capital since 987."
  }],
  "metadata": {"level": "Easy"}
}` + "\n```"

	payload, err := ParseGeneratedQuestion(raw)

	require.NoError(t, err)
	assert.Equal(t, "ACADEMIC", payload.Category)
	require.NotNil(t, payload.Part)
	assert.Equal(t, 0, *payload.Part)
	require.Len(t, payload.SubQuestions, 1)
	assert.Equal(t, []string{"Paris"}, payload.SubQuestions[0].CorrectAnswer)
}

func TestParseGeneratedQuestionMalformed(t *testing.T) {
	_, err := ParseGeneratedQuestion("```json\n{not json}\n```")

	var domainErr *domain.DomainError
	require.True(t, errors.As(err, &domainErr))
	assert.Equal(t, domain.CodeUpstreamFormat, domainErr.Code)
}

func TestCleanResponseWhitespaceOnlyWrapper(t *testing.T) {
	assert.Equal(t, `{"a":1}`, CleanResponse("\n  {\"a\":1}  \n"))
}
