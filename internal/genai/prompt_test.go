package genai

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildExamImportPromptDeterministic(t *testing.T) {
	text := "TOEIC Practice Test\nQuestion 1. ..."

	first := BuildExamImportPrompt(text)
	second := BuildExamImportPrompt(text)

	assert.Equal(t, first, second)
}

func TestBuildExamImportPromptEmbedsText(t *testing.T) {
	text := "UNIQUE-EXAM-BODY-MARKER"

	prompt := BuildExamImportPrompt(text)

	assert.Contains(t, prompt, text)
	assert.Contains(t, prompt, `"examDetails"`)
	assert.Contains(t, prompt, `"questions"`)
	assert.Contains(t, prompt, `"correctAnswer"`)
	assert.Contains(t, prompt, "explanation")
	// The model is told to answer with bare JSON, no prose or fences.
	assert.Contains(t, prompt, "single, clean JSON object")
}

func TestBuildQuestionPromptDeterministic(t *testing.T) {
	params := QuestionPromptParams{
		Topic:    "phrasal verbs",
		Level:    "Hard",
		Part:     5,
		Category: "TOEIC",
		Format:   "MULTIPLE_CHOICE",
	}

	assert.Equal(t, BuildQuestionPrompt(params), BuildQuestionPrompt(params))
}

func TestBuildQuestionPromptEmbedsParams(t *testing.T) {
	prompt := BuildQuestionPrompt(QuestionPromptParams{
		Topic:    "  conditional sentences ",
		Level:    "Medium",
		Part:     0,
		Category: "ACADEMIC",
		Format:   "FILL_IN",
	})

	assert.Contains(t, prompt, "conditional sentences")
	assert.False(t, strings.Contains(prompt, "  conditional sentences "), "topic is trimmed")
	assert.Contains(t, prompt, "Medium")
	assert.Contains(t, prompt, "ACADEMIC")
	assert.Contains(t, prompt, "FILL_IN")
	assert.Contains(t, prompt, `"part": 0`)
}
