package dto

import (
	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
)

// GeneratedExam is the parsed intermediate form of the generation model's
// import response, before mapping into Exam/Question entities.
type GeneratedExam struct {
	ExamDetails *ExamDetails      `json:"examDetails"`
	Questions   []QuestionPayload `json:"questions"`
}

type ExamDetails struct {
	Title    string           `json:"title"`
	Type     string           `json:"type"`
	Duration int              `json:"duration"`
	Sections []SectionPayload `json:"sections"`
}

type SectionPayload struct {
	SectionName  string   `json:"sectionName"`
	Description  string   `json:"description,omitempty"`
	QuestionList []string `json:"questionList,omitempty"`
}

type ExamMetadataPayload struct {
	IsPublished bool   `json:"isPublished"`
	IsPublic    bool   `json:"isPublic"`
	Difficulty  string `json:"difficulty,omitempty"`
}

// CreateExamRequest is the body of POST /api/exams.
type CreateExamRequest struct {
	Title    string               `json:"title"`
	Type     string               `json:"type"`
	Duration int                  `json:"duration"`
	Sections []SectionPayload     `json:"sections"`
	Metadata *ExamMetadataPayload `json:"metadata,omitempty"`
}

// UpdateExamRequest is the body of PATCH /api/exams/:id. Nil fields are
// left untouched.
type UpdateExamRequest struct {
	Title    *string              `json:"title,omitempty"`
	Type     *string              `json:"type,omitempty"`
	Duration *int                 `json:"duration,omitempty"`
	Sections []SectionPayload     `json:"sections,omitempty"`
	Metadata *ExamMetadataPayload `json:"metadata,omitempty"`
}

// ExamResponse is a persisted exam in API responses.
type ExamResponse struct {
	ID       string              `json:"id"`
	Title    string              `json:"title"`
	Type     string              `json:"type"`
	Duration int                 `json:"duration"`
	Author   string              `json:"author"`
	Sections []SectionPayload    `json:"sections"`
	Metadata ExamMetadataPayload `json:"metadata"`
}

// NewExamResponse maps a domain exam into its API representation.
func NewExamResponse(e *domain.Exam) ExamResponse {
	resp := ExamResponse{
		ID:       e.ID,
		Title:    e.Title,
		Type:     e.Type,
		Duration: e.Duration,
		Author:   e.AuthorID,
		Metadata: ExamMetadataPayload{
			IsPublished: e.Metadata.IsPublished,
			IsPublic:    e.Metadata.IsPublic,
			Difficulty:  e.Metadata.Difficulty,
		},
	}
	for _, s := range e.Sections {
		resp.Sections = append(resp.Sections, SectionPayload{
			SectionName:  s.SectionName,
			Description:  s.Description,
			QuestionList: s.QuestionList,
		})
	}
	return resp
}

// ExamDetailResponse is an exam with its referenced questions resolved.
type ExamDetailResponse struct {
	Exam      ExamResponse       `json:"exam"`
	Questions []QuestionResponse `json:"questions"`
}

// ExamListResponse wraps a page of exams.
type ExamListResponse struct {
	Results int            `json:"results"`
	Exams   []ExamResponse `json:"exams"`
}

// ImportExamResponse is the 201 body of POST /api/exams/import-word.
type ImportExamResponse struct {
	Message string       `json:"message"`
	Exam    ExamResponse `json:"exam"`
}

// GradeExamRequest is the body of POST /api/exams/:id/grade. Answers maps
// question IDs to submitted answer text; a nil map means the field was
// absent from the request.
type GradeExamRequest struct {
	Answers map[string]string `json:"answers"`
}

// GradeExamResponse is the grading report returned to the learner.
type GradeExamResponse struct {
	ExamID          string                  `json:"examId"`
	ExamTitle       string                  `json:"examTitle"`
	Score           float64                 `json:"score"`
	CorrectAnswers  int                     `json:"correctAnswers"`
	TotalQuestions  int                     `json:"totalQuestions"`
	DetailedResults []domain.QuestionResult `json:"detailedResults"`
}

// NewGradeExamResponse maps a grading result into its API representation.
func NewGradeExamResponse(r *domain.GradingResult) GradeExamResponse {
	return GradeExamResponse{
		ExamID:          r.ExamID,
		ExamTitle:       r.ExamTitle,
		Score:           r.Score,
		CorrectAnswers:  r.CorrectAnswers,
		TotalQuestions:  r.TotalQuestions,
		DetailedResults: r.DetailedResults,
	}
}

// ErrorResponse represents an error in the API response.
type ErrorResponse struct {
	Error string `json:"error"`
}
