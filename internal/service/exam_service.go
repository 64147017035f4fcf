package service

import (
	"context"
	"strings"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"
	"github.com/dohuubinh-oss/quizBinhBE/internal/logger"

	"go.uber.org/zap"
)

// ExamService manages hand-authored exams.
type ExamService interface {
	ListExams(ctx context.Context, filter domain.ExamFilter) ([]*domain.Exam, error)
	GetExam(ctx context.Context, id string) (*domain.Exam, []*domain.Question, error)
	CreateExam(ctx context.Context, req dto.CreateExamRequest, authorID string) (*domain.Exam, error)
	UpdateExam(ctx context.Context, id string, req dto.UpdateExamRequest) (*domain.Exam, error)
	DeleteExam(ctx context.Context, id string) error
}

type examService struct {
	examRepo     domain.ExamRepository
	questionRepo domain.QuestionRepository
	snapshots    ExamSnapshotInvalidator
}

func NewExamService(
	examRepo domain.ExamRepository,
	questionRepo domain.QuestionRepository,
	snapshots ExamSnapshotInvalidator,
) ExamService {
	return &examService{
		examRepo:     examRepo,
		questionRepo: questionRepo,
		snapshots:    snapshots,
	}
}

func (s *examService) ListExams(ctx context.Context, filter domain.ExamFilter) ([]*domain.Exam, error) {
	exams, err := s.examRepo.ListExams(ctx, filter)
	if err != nil {
		return nil, domain.NewStorageError("failed to list exams", err, 0, 0)
	}
	return exams, nil
}

// GetExam returns the exam along with every question it references.
func (s *examService) GetExam(ctx context.Context, id string) (*domain.Exam, []*domain.Question, error) {
	exam, err := s.examRepo.GetExamByID(ctx, id)
	if err != nil {
		return nil, nil, domain.NewStorageError("failed to load exam", err, 0, 0)
	}
	if exam == nil {
		return nil, nil, domain.NewExamNotFoundError(id)
	}

	questions, err := s.questionRepo.GetQuestionsByIDs(ctx, exam.QuestionIDs())
	if err != nil {
		return nil, nil, domain.NewStorageError("failed to load exam questions", err, 0, 0)
	}
	return exam, questions, nil
}

func (s *examService) CreateExam(ctx context.Context, req dto.CreateExamRequest, authorID string) (*domain.Exam, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, domain.NewInvalidInputError("Exam title is required.")
	}
	if strings.TrimSpace(req.Type) == "" {
		return nil, domain.NewInvalidInputError("Exam type is required.")
	}
	if req.Duration <= 0 {
		return nil, domain.NewInvalidInputError("Exam duration must be positive.")
	}

	exam := &domain.Exam{
		Title:    req.Title,
		Type:     req.Type,
		Duration: req.Duration,
		AuthorID: authorID,
		Sections: sectionsFromPayload(req.Sections),
		Metadata: domain.ExamMetadata{
			Difficulty: domain.DefaultDifficulty,
		},
	}
	if req.Metadata != nil {
		exam.Metadata.IsPublished = req.Metadata.IsPublished
		exam.Metadata.IsPublic = req.Metadata.IsPublic
		if req.Metadata.Difficulty != "" {
			exam.Metadata.Difficulty = req.Metadata.Difficulty
		}
	}

	if err := s.examRepo.SaveExam(ctx, exam); err != nil {
		return nil, domain.NewStorageError("failed to save exam", err, 0, 1)
	}
	return exam, nil
}

// UpdateExam applies the non-nil fields of the request to an existing
// exam and drops its cached snapshot.
func (s *examService) UpdateExam(ctx context.Context, id string, req dto.UpdateExamRequest) (*domain.Exam, error) {
	exam, err := s.examRepo.GetExamByID(ctx, id)
	if err != nil {
		return nil, domain.NewStorageError("failed to load exam", err, 0, 0)
	}
	if exam == nil {
		return nil, domain.NewExamNotFoundError(id)
	}

	if req.Title != nil {
		exam.Title = *req.Title
	}
	if req.Type != nil {
		exam.Type = *req.Type
	}
	if req.Duration != nil {
		exam.Duration = *req.Duration
	}
	if req.Sections != nil {
		exam.Sections = sectionsFromPayload(req.Sections)
	}
	if req.Metadata != nil {
		exam.Metadata.IsPublished = req.Metadata.IsPublished
		exam.Metadata.IsPublic = req.Metadata.IsPublic
		if req.Metadata.Difficulty != "" {
			exam.Metadata.Difficulty = req.Metadata.Difficulty
		}
	}

	if err := s.examRepo.UpdateExam(ctx, exam); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)
	return exam, nil
}

func (s *examService) DeleteExam(ctx context.Context, id string) error {
	if err := s.examRepo.DeleteExam(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)
	return nil
}

func (s *examService) invalidate(ctx context.Context, examID string) {
	if s.snapshots == nil {
		return
	}
	if err := s.snapshots.Invalidate(ctx, examID); err != nil {
		logger.Get().Warn("Failed to invalidate exam snapshot",
			zap.String("examId", examID), zap.Error(err))
	}
}

func sectionsFromPayload(payloads []dto.SectionPayload) []domain.Section {
	sections := make([]domain.Section, 0, len(payloads))
	for _, p := range payloads {
		sections = append(sections, domain.Section{
			SectionName:  p.SectionName,
			Description:  p.Description,
			QuestionList: p.QuestionList,
		})
	}
	return sections
}
