package service

import (
	"context"
	"math"
	"strings"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/logger"
	"github.com/dohuubinh-oss/quizBinhBE/internal/util"

	"go.uber.org/zap"
)

// GradingService scores exam submissions.
type GradingService interface {
	GradeExam(ctx context.Context, examID string, answers map[string]string) (*domain.GradingResult, error)
}

type gradingService struct {
	snapshots ExamSnapshotProvider
}

func NewGradingService(snapshots ExamSnapshotProvider) GradingService {
	return &gradingService{snapshots: snapshots}
}

// GradeExam compares a submission against the exam's answer key and
// returns the score plus a per-question breakdown. Questions are graded
// in section order; the first correct answer of the first sub-question
// is the authoritative one. Grading never mutates stored data.
func (s *gradingService) GradeExam(ctx context.Context, examID string, answers map[string]string) (*domain.GradingResult, error) {
	if answers == nil {
		return nil, domain.NewInvalidInputError("Invalid answers format.")
	}

	snapshot, err := s.snapshots.GetSnapshot(ctx, examID)
	if err != nil {
		return nil, err
	}

	exam := snapshot.Exam
	details := make([]domain.QuestionResult, 0)
	correctCount := 0
	totalQuestions := 0

	for _, section := range exam.Sections {
		for _, questionID := range section.QuestionList {
			totalQuestions++

			question, found := snapshot.Questions[questionID]
			if !found {
				logger.Get().Warn("Exam references a missing question",
					zap.String("examId", examID), zap.String("questionId", questionID))
				details = append(details, domain.QuestionResult{
					QuestionID: questionID,
					UserAnswer: domain.NotAnsweredPlaceholder,
					IsCorrect:  false,
				})
				continue
			}

			details = append(details, gradeQuestion(question, answers))
		}
	}

	for _, detail := range details {
		if detail.IsCorrect {
			correctCount++
		}
	}

	return &domain.GradingResult{
		ExamID:          exam.ID,
		ExamTitle:       exam.Title,
		Score:           scoreForType(exam.Type, correctCount, totalQuestions),
		CorrectAnswers:  correctCount,
		TotalQuestions:  totalQuestions,
		DetailedResults: details,
	}, nil
}

func gradeQuestion(question *domain.Question, answers map[string]string) domain.QuestionResult {
	correctAnswer := authoritativeAnswer(question)
	userAnswer := answers[question.ID]

	result := domain.QuestionResult{
		QuestionID:    question.ID,
		CorrectAnswer: correctAnswer,
		UserAnswer:    userAnswer,
	}
	if len(question.SubQuestions) > 0 {
		result.Content = question.SubQuestions[0].Content
		result.Explanation = question.SubQuestions[0].Explanation
	}

	if userAnswer == "" {
		result.UserAnswer = domain.NotAnsweredPlaceholder
		return result
	}

	result.IsCorrect = strings.EqualFold(
		strings.TrimSpace(userAnswer),
		strings.TrimSpace(correctAnswer),
	)
	return result
}

// authoritativeAnswer is the first correct answer of the first
// sub-question. Validation guarantees both exist for stored questions.
func authoritativeAnswer(question *domain.Question) string {
	if len(question.SubQuestions) == 0 {
		return ""
	}
	if len(question.SubQuestions[0].CorrectAnswer) == 0 {
		return ""
	}
	return question.SubQuestions[0].CorrectAnswer[0]
}

// scoreForType converts a correct count into the exam type's scale:
// TOEIC maps to 0-990 rounded to the nearest integer, THPT to 0-10
// rounded to two decimals, and everything else reports the raw count.
func scoreForType(examType string, correct, total int) float64 {
	if total == 0 {
		return 0
	}

	ratio := float64(correct) / float64(total)
	switch examType {
	case domain.ExamTypeTOEIC:
		return math.Round(ratio * 990)
	case domain.ExamTypeTHPT:
		return util.Round2(ratio * 10)
	default:
		return float64(correct)
	}
}
