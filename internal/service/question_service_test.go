package service

import (
	"context"
	"testing"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestionPayload() dto.QuestionPayload {
	part := 5
	return dto.QuestionPayload{
		Category: domain.CategoryTOEIC,
		Part:     &part,
		Format:   domain.FormatMultipleChoice,
		SubQuestions: []dto.SubQuestionPayload{
			{
				Content:       "Choose the best answer.",
				Options:       []string{"A", "B", "C", "D"},
				CorrectAnswer: []string{"B"},
			},
		},
		Metadata: &dto.QuestionMetadataPayload{Level: domain.LevelMedium},
	}
}

func TestBulkImportQuestionsHappyPath(t *testing.T) {
	repo := &recordingQuestionRepo{}
	svc := NewQuestionService(repo, &stubGenerator{})

	ids, err := svc.BulkImportQuestions(context.Background(), []dto.QuestionPayload{
		validQuestionPayload(), validQuestionPayload(),
	})
	require.NoError(t, err)

	assert.Len(t, ids, 2)
	require.Len(t, repo.saved, 1)
	assert.Len(t, repo.saved[0], 2)
}

func TestBulkImportQuestionsEmptyBatch(t *testing.T) {
	repo := &recordingQuestionRepo{}
	svc := NewQuestionService(repo, &stubGenerator{})

	_, err := svc.BulkImportQuestions(context.Background(), nil)

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
}

func TestBulkImportQuestionsRejectsWholeBatch(t *testing.T) {
	invalid := validQuestionPayload()
	invalid.SubQuestions[0].CorrectAnswer = nil

	repo := &recordingQuestionRepo{}
	svc := NewQuestionService(repo, &stubGenerator{})

	_, err := svc.BulkImportQuestions(context.Background(), []dto.QuestionPayload{
		validQuestionPayload(), invalid,
	})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeValidation, domainErr.Code)
	assert.Empty(t, repo.saved, "a batch with any invalid question must not be written")
}

func TestGenerateQuestionHappyPath(t *testing.T) {
	generator := &stubGenerator{response: `{
		"category": "TOEIC",
		"part": 5,
		"format": "MULTIPLE_CHOICE",
		"subQuestions": [{
			"content": "Pick one.",
			"options": ["A", "B", "C", "D"],
			"correctAnswer": ["C"],
			"explanation": "why"
		}],
		"metadata": {"level": "Hard"}
	}`}
	repo := &recordingQuestionRepo{}
	svc := NewQuestionService(repo, generator)

	question, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{
		Topic:    "business vocabulary",
		Level:    domain.LevelHard,
		Part:     5,
		Category: domain.CategoryTOEIC,
		Format:   domain.FormatMultipleChoice,
	})
	require.NoError(t, err)

	assert.NotEmpty(t, question.ID)
	assert.Equal(t, domain.CategoryTOEIC, question.Category)
	assert.Equal(t, 5, question.Part)
	require.Len(t, question.SubQuestions, 1)
	assert.Equal(t, []string{"C"}, question.SubQuestions[0].CorrectAnswer)
	require.Len(t, generator.prompts, 1)
	assert.Contains(t, generator.prompts[0], "business vocabulary")
}

func TestGenerateQuestionRequiresTopic(t *testing.T) {
	generator := &stubGenerator{}
	svc := NewQuestionService(&recordingQuestionRepo{}, generator)

	_, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{Topic: "   "})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
	assert.Empty(t, generator.prompts)
}

func TestGenerateQuestionRejectsInvalidModelOutput(t *testing.T) {
	// Correct answer is not among the options.
	generator := &stubGenerator{response: `{
		"category": "TOEIC",
		"part": 5,
		"format": "MULTIPLE_CHOICE",
		"subQuestions": [{
			"content": "Pick one.",
			"options": ["A", "B", "C", "D"],
			"correctAnswer": ["E"]
		}],
		"metadata": {"level": "Easy"}
	}`}
	repo := &recordingQuestionRepo{}
	svc := NewQuestionService(repo, generator)

	_, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{Topic: "grammar"})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeValidation, domainErr.Code)
	assert.Empty(t, repo.saved)
}

func TestGenerateQuestionMalformedModelOutput(t *testing.T) {
	generator := &stubGenerator{response: "```json\n{broken"}
	svc := NewQuestionService(&recordingQuestionRepo{}, generator)

	_, err := svc.GenerateQuestion(context.Background(), dto.GenerateQuestionRequest{Topic: "grammar"})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeUpstreamFormat, domainErr.Code)
}
