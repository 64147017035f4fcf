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

// ImportService turns an uploaded exam document into a persisted exam.
type ImportService interface {
	ImportExamFromDocument(ctx context.Context, fileData []byte, authorID string) (*domain.Exam, int, error)
}

type importService struct {
	extractor    domain.TextExtractor
	generator    domain.ContentGenerator
	questionRepo domain.QuestionRepository
	examRepo     domain.ExamRepository
}

func NewImportService(
	extractor domain.TextExtractor,
	generator domain.ContentGenerator,
	questionRepo domain.QuestionRepository,
	examRepo domain.ExamRepository,
) ImportService {
	return &importService{
		extractor:    extractor,
		generator:    generator,
		questionRepo: questionRepo,
		examRepo:     examRepo,
	}
}

// ImportExamFromDocument runs the import pipeline: extract text, ask the
// generation model to structure it, validate every question, persist the
// questions and then the exam. Any failure aborts the import before the
// first write, so no partial exam is ever stored. Returns the persisted
// exam and the number of questions created.
func (s *importService) ImportExamFromDocument(ctx context.Context, fileData []byte, authorID string) (*domain.Exam, int, error) {
	if len(fileData) == 0 {
		return nil, 0, domain.NewInvalidInputError("No file uploaded.")
	}

	text, err := s.extractor.ExtractText(fileData)
	if err != nil {
		return nil, 0, domain.NewInvalidInputError("Failed to extract text from the uploaded document.")
	}
	if strings.TrimSpace(text) == "" {
		return nil, 0, domain.NewInvalidInputError("The document contains no extractable text.")
	}

	prompt := genai.BuildExamImportPrompt(text)
	raw, err := s.generator.GenerateContent(ctx, prompt)
	if err != nil {
		return nil, 0, err
	}

	generated, err := genai.ParseGeneratedExam(raw)
	if err != nil {
		return nil, 0, err
	}
	if generated.ExamDetails == nil {
		return nil, 0, domain.NewUpstreamFormatError("model response is missing exam details", nil)
	}
	if len(generated.Questions) == 0 {
		return nil, 0, domain.NewUpstreamFormatError("model response contains no questions", nil)
	}

	if messages := validation.ValidateQuestions(generated.Questions); len(messages) > 0 {
		return nil, 0, domain.NewValidationError(messages)
	}

	questions := make([]*domain.Question, 0, len(generated.Questions))
	for _, payload := range generated.Questions {
		questions = append(questions, payload.ToDomainQuestion())
	}

	questionIDs, err := s.questionRepo.SaveQuestions(ctx, questions)
	if err != nil {
		return nil, 0, err
	}

	exam := buildImportedExam(generated.ExamDetails, questionIDs, authorID)
	if err := s.examRepo.SaveExam(ctx, exam); err != nil {
		// Questions are already stored; the exam record is not. Surface
		// the failure with the write counts so operators can reconcile.
		logger.Get().Error("Exam save failed after questions were persisted",
			zap.Int("questionsWritten", len(questionIDs)), zap.Error(err))
		return nil, 0, domain.NewStorageError("failed to save imported exam", err, len(questionIDs), len(questionIDs)+1)
	}

	logger.Get().Info("Imported exam from document",
		zap.String("examId", exam.ID),
		zap.String("title", exam.Title),
		zap.Int("questions", len(questionIDs)))
	return exam, len(questionIDs), nil
}

// buildImportedExam maps the model's exam details onto a new exam. All
// created question IDs land in the first section; imported exams start
// unpublished with the default difficulty.
func buildImportedExam(details *dto.ExamDetails, questionIDs []string, authorID string) *domain.Exam {
	exam := &domain.Exam{
		Title:    details.Title,
		Type:     details.Type,
		Duration: details.Duration,
		AuthorID: authorID,
		Metadata: domain.ExamMetadata{
			IsPublished: false,
			IsPublic:    false,
			Difficulty:  domain.DefaultDifficulty,
		},
	}

	for _, section := range details.Sections {
		exam.Sections = append(exam.Sections, domain.Section{
			SectionName: section.SectionName,
			Description: section.Description,
		})
	}
	if len(exam.Sections) == 0 {
		exam.Sections = []domain.Section{{SectionName: "Section 1"}}
	}
	exam.Sections[0].QuestionList = questionIDs

	return exam
}
