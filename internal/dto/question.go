package dto

import (
	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
)

// QuestionPayload is a candidate question record before persistence,
// either parsed from the generation model's output or supplied by a bulk
// import request. Part is a pointer so an absent value is distinguishable
// from a legitimate part number of zero.
type QuestionPayload struct {
	Category     string                   `json:"category"`
	Part         *int                     `json:"part"`
	Format       string                   `json:"format"`
	Resource     *ResourcePayload         `json:"resource,omitempty"`
	SubQuestions []SubQuestionPayload     `json:"subQuestions"`
	Metadata     *QuestionMetadataPayload `json:"metadata"`
}

type ResourcePayload struct {
	AudioURL string   `json:"audioUrl,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Passages []string `json:"passages,omitempty"`
}

type SubQuestionPayload struct {
	Content       string   `json:"content"`
	SubText       string   `json:"subText,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer []string `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

type QuestionMetadataPayload struct {
	Level string `json:"level"`
}

// ToDomainQuestion maps a validated payload onto the domain entity.
// Callers must run the payload through validation first; absent optional
// parts default to their zero values here.
func (p *QuestionPayload) ToDomainQuestion() *domain.Question {
	q := &domain.Question{
		Category: p.Category,
		Format:   p.Format,
	}
	if p.Part != nil {
		q.Part = *p.Part
	}
	if p.Resource != nil {
		q.Resource = domain.Resource{
			AudioURL: p.Resource.AudioURL,
			ImageURL: p.Resource.ImageURL,
			Passages: p.Resource.Passages,
		}
	}
	if p.Metadata != nil {
		q.Metadata = domain.QuestionMetadata{Level: p.Metadata.Level}
	}
	for _, sq := range p.SubQuestions {
		q.SubQuestions = append(q.SubQuestions, domain.SubQuestion{
			Content:       sq.Content,
			SubText:       sq.SubText,
			Options:       sq.Options,
			CorrectAnswer: sq.CorrectAnswer,
			Explanation:   sq.Explanation,
			Tags:          sq.Tags,
		})
	}
	return q
}

// BulkImportQuestionsRequest is the body of POST /api/questions/import.
type BulkImportQuestionsRequest struct {
	Questions []QuestionPayload `json:"questions"`
}

// BulkImportQuestionsResponse reports how many questions were created.
type BulkImportQuestionsResponse struct {
	Message string   `json:"message"`
	Created []string `json:"created"`
}

// GenerateQuestionRequest is the body of POST /api/questions/generate.
type GenerateQuestionRequest struct {
	Topic    string `json:"topic"`
	Level    string `json:"level"`
	Part     int    `json:"part"`
	Category string `json:"category"`
	Format   string `json:"format"`
}

// QuestionResponse is a persisted question in API responses.
type QuestionResponse struct {
	ID           string                   `json:"id"`
	Category     string                   `json:"category"`
	Part         int                      `json:"part"`
	Format       string                   `json:"format"`
	Resource     *ResourcePayload         `json:"resource,omitempty"`
	SubQuestions []SubQuestionPayload     `json:"subQuestions"`
	Metadata     *QuestionMetadataPayload `json:"metadata,omitempty"`
}

// NewQuestionResponse maps a domain question into its API representation.
func NewQuestionResponse(q *domain.Question) QuestionResponse {
	resp := QuestionResponse{
		ID:       q.ID,
		Category: q.Category,
		Part:     q.Part,
		Format:   q.Format,
		Metadata: &QuestionMetadataPayload{Level: q.Metadata.Level},
	}
	if q.Resource.AudioURL != "" || q.Resource.ImageURL != "" || len(q.Resource.Passages) > 0 {
		resp.Resource = &ResourcePayload{
			AudioURL: q.Resource.AudioURL,
			ImageURL: q.Resource.ImageURL,
			Passages: q.Resource.Passages,
		}
	}
	for _, sq := range q.SubQuestions {
		resp.SubQuestions = append(resp.SubQuestions, SubQuestionPayload{
			Content:       sq.Content,
			SubText:       sq.SubText,
			Options:       sq.Options,
			CorrectAnswer: sq.CorrectAnswer,
			Explanation:   sq.Explanation,
			Tags:          sq.Tags,
		})
	}
	return resp
}
