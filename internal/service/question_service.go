package service

import (
	"context"
	"strings"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"
	"github.com/dohuubinh-oss/quizBinhBE/internal/genai"
	"github.com/dohuubinh-oss/quizBinhBE/internal/logger"
	"github.com/dohuubinh-oss/quizBinhBE/internal/validation"

	"go.uber.org/zap"
)

// QuestionService manages standalone question creation.
type QuestionService interface {
	BulkImportQuestions(ctx context.Context, payloads []dto.QuestionPayload) ([]string, error)
	GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*domain.Question, error)
}

type questionService struct {
	questionRepo domain.QuestionRepository
	generator    domain.ContentGenerator
}

func NewQuestionService(questionRepo domain.QuestionRepository, generator domain.ContentGenerator) QuestionService {
	return &questionService{
		questionRepo: questionRepo,
		generator:    generator,
	}
}

// BulkImportQuestions validates the whole batch first and rejects it in
// full when any question fails, reporting every message at once. Returns
// the created IDs in submission order.
func (s *questionService) BulkImportQuestions(ctx context.Context, payloads []dto.QuestionPayload) ([]string, error) {
	if len(payloads) == 0 {
		return nil, domain.NewInvalidInputError("No questions provided.")
	}

	if messages := validation.ValidateQuestions(payloads); len(messages) > 0 {
		return nil, domain.NewValidationError(messages)
	}

	questions := make([]*domain.Question, 0, len(payloads))
	for _, payload := range payloads {
		questions = append(questions, payload.ToDomainQuestion())
	}

	ids, err := s.questionRepo.SaveQuestions(ctx, questions)
	if err != nil {
		return ids, err
	}

	logger.Get().Info("Bulk imported questions", zap.Int("count", len(ids)))
	return ids, nil
}

// GenerateQuestion asks the generation model for a single question on the
// given topic, validates it like any other candidate, and persists it.
func (s *questionService) GenerateQuestion(ctx context.Context, req dto.GenerateQuestionRequest) (*domain.Question, error) {
	if strings.TrimSpace(req.Topic) == "" {
		return nil, domain.NewInvalidInputError("Topic is required.")
	}

	prompt := genai.BuildQuestionPrompt(genai.QuestionPromptParams{
		Topic:    req.Topic,
		Level:    req.Level,
		Part:     req.Part,
		Category: req.Category,
		Format:   req.Format,
	})

	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, err
	}

	payload, err := genai.ParseGeneratedQuestion(raw)
	if err != nil {
		return nil, err
	}

	if messages := validation.ValidateQuestion(*payload, 0); len(messages) > 0 {
		return nil, domain.NewValidationError(messages)
	}

	question := payload.ToDomainQuestion()
	ids, err := s.questionRepo.SaveQuestions(ctx, []*domain.Question{question})
	if err != nil {
		return nil, err
	}
	question.ID = ids[0]

	logger.Get().Info("Generated question",
		zap.String("questionId", question.ID),
		zap.String("topic", req.Topic))
	return question, nil
}
