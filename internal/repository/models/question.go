package models

import (
	"database/sql"
	"time"
)

// Question is the database row for a question. Nested structures
// (resource, sub-questions) are stored as JSON in CLOB columns.
type Question struct {
	ID           string       `db:"id"`
	Category     string       `db:"category"`
	Part         int          `db:"part"`
	Format       string       `db:"format"`
	Resource     string       `db:"resource"`
	SubQuestions string       `db:"sub_questions"`
	Level        string       `db:"difficulty_level"`
	CreatedAt    time.Time    `db:"created_at"`
	UpdatedAt    time.Time    `db:"updated_at"`
	DeletedAt    sql.NullTime `db:"deleted_at"`
}

func (Question) TableName() string {
	return "questions"
}
