package domain

import (
	"context"
	"errors"
	"time"
)

// QuestionRepository persists and resolves questions.
type QuestionRepository interface {
	// SaveQuestions inserts a batch as an unordered bulk write and returns
	// the created IDs. A partial failure is reported as a STORAGE_FAILURE
	// DomainError carrying written/requested counts.
	SaveQuestions(ctx context.Context, questions []*Question) ([]string, error)
	GetQuestionsByIDs(ctx context.Context, ids []string) ([]*Question, error)
}

// ExamFilter narrows exam listings.
type ExamFilter struct {
	Type      string
	Published *bool
	Page      int
	Limit     int
}

// ExamRepository persists exams. Question references are stored by ID.
type ExamRepository interface {
	SaveExam(ctx context.Context, exam *Exam) error
	GetExamByID(ctx context.Context, id string) (*Exam, error)
	ListExams(ctx context.Context, filter ExamFilter) ([]*Exam, error)
	UpdateExam(ctx context.Context, exam *Exam) error
	DeleteExam(ctx context.Context, id string) error
}

// ContentGenerator is the single synchronous call to the external
// generation model: text in, text out. No streaming, no retries.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

// TextExtractor converts an uploaded binary document into plain text.
type TextExtractor interface {
	ExtractText(data []byte) (string, error)
}

// ErrCacheMiss is returned by Cache.Get when the key is absent.
var ErrCacheMiss = errors.New("cache miss")

// Cache is a string key/value store with TTL semantics.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
