package models

import (
	"database/sql"
	"time"
)

// Exam is the database row for an exam. Sections (including ordered
// question ID lists) are stored as JSON in a CLOB column; Oracle has no
// boolean type, so flags are NUMBER(1) columns.
type Exam struct {
	ID          string       `db:"id"`
	Title       string       `db:"title"`
	Type        string       `db:"exam_type"`
	Duration    int          `db:"duration"`
	AuthorID    string       `db:"author_id"`
	Sections    string       `db:"sections"`
	IsPublished int          `db:"is_published"`
	IsPublic    int          `db:"is_public"`
	Difficulty  string       `db:"difficulty"`
	CreatedAt   time.Time    `db:"created_at"`
	UpdatedAt   time.Time    `db:"updated_at"`
	DeletedAt   sql.NullTime `db:"deleted_at"`
}

func (Exam) TableName() string {
	return "exams"
}
