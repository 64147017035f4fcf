package domain

import (
	"strings"
	"time"
)

// Question categories.
const (
	CategoryTOEIC     = "TOEIC"
	CategoryAcademic  = "ACADEMIC"
	CategoryPlacement = "PLACEMENT"
)

// Question formats.
const (
	FormatMultipleChoice = "MULTIPLE_CHOICE"
	FormatFillIn         = "FILL_IN"
	FormatTransform      = "TRANSFORM"
	FormatWriting        = "WRITING"
)

// Difficulty levels for question metadata.
const (
	LevelEasy   = "Easy"
	LevelMedium = "Medium"
	LevelHard   = "Hard"
)

// IsValidLevel reports whether level belongs to the allowed set.
// Comparison is case-insensitive; the generation model is only instructed
// by example ("e.g., Medium") and may vary the casing.
func IsValidLevel(level string) bool {
	for _, allowed := range []string{LevelEasy, LevelMedium, LevelHard} {
		if strings.EqualFold(level, allowed) {
			return true
		}
	}
	return false
}

// Resource is the shared context (audio/image/passages) for a question's
// sub-questions.
type Resource struct {
	AudioURL string   `json:"audioUrl,omitempty"`
	ImageURL string   `json:"imageUrl,omitempty"`
	Passages []string `json:"passages,omitempty"`
}

// SubQuestion is one gradable prompt within a Question.
type SubQuestion struct {
	Content       string   `json:"content"`
	SubText       string   `json:"subText,omitempty"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer []string `json:"correctAnswer"`
	Explanation   string   `json:"explanation,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

type QuestionMetadata struct {
	Level string `json:"level"`
}

// Question is a reusable assessment item. Identity is immutable once
// persisted; exams reference questions by ID, never by copy.
type Question struct {
	ID           string
	Category     string
	Part         int
	Format       string
	Resource     Resource
	SubQuestions []SubQuestion
	Metadata     QuestionMetadata
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
