package domain

import "time"

// Exam types that select a scoring formula. Any other type falls back to
// raw correct-answer counting.
const (
	ExamTypeTOEIC = "TOEIC"
	ExamTypeTHPT  = "THPT"
)

// Default metadata applied to imported exams.
const (
	DefaultDifficulty = "Medium"
)

// Section is an ordered slice of an exam, listing question references.
type Section struct {
	SectionName  string   `json:"sectionName"`
	Description  string   `json:"description,omitempty"`
	QuestionList []string `json:"questionList"`
}

type ExamMetadata struct {
	IsPublished bool   `json:"isPublished"`
	IsPublic    bool   `json:"isPublic"`
	Difficulty  string `json:"difficulty,omitempty"`
}

// Exam is a named, timed assessment composed of ordered sections.
type Exam struct {
	ID        string
	Title     string
	Type      string
	Duration  int // minutes
	AuthorID  string
	Sections  []Section
	Metadata  ExamMetadata
	CreatedAt time.Time
	UpdatedAt time.Time
}

// QuestionIDs returns every referenced question ID in section order.
func (e *Exam) QuestionIDs() []string {
	var ids []string
	for _, section := range e.Sections {
		ids = append(ids, section.QuestionList...)
	}
	return ids
}
