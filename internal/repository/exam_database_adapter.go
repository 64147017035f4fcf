package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/repository/models"
	"github.com/dohuubinh-oss/quizBinhBE/internal/util"

	"github.com/jmoiron/sqlx"
)

const examColumns = `
		id "id",
		title "title",
		exam_type "exam_type",
		duration "duration",
		author_id "author_id",
		sections "sections",
		is_published "is_published",
		is_public "is_public",
		difficulty "difficulty",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// ExamDatabaseAdapter implements domain.ExamRepository using sqlx.
type ExamDatabaseAdapter struct {
	db *sqlx.DB
}

func NewExamDatabaseAdapter(db *sqlx.DB) domain.ExamRepository {
	return &ExamDatabaseAdapter{db: db}
}

// SaveExam inserts a new exam, assigning its ID and timestamps.
func (a *ExamDatabaseAdapter) SaveExam(ctx context.Context, exam *domain.Exam) error {
	modelExam, err := toModelExam(exam)
	if err != nil {
		return err
	}
	modelExam.ID = util.NewULID()
	modelExam.CreatedAt = time.Now()
	modelExam.UpdatedAt = modelExam.CreatedAt

	query := `INSERT INTO exams (
		id, title, exam_type, duration, author_id, sections,
		is_published, is_public, difficulty, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9, :10, :11
	)`

	_, err = a.db.ExecContext(ctx, query,
		modelExam.ID,
		modelExam.Title,
		modelExam.Type,
		modelExam.Duration,
		modelExam.AuthorID,
		modelExam.Sections,
		modelExam.IsPublished,
		modelExam.IsPublic,
		modelExam.Difficulty,
		modelExam.CreatedAt,
		modelExam.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save exam: %w", err)
	}

	exam.ID = modelExam.ID
	exam.CreatedAt = modelExam.CreatedAt
	exam.UpdatedAt = modelExam.UpdatedAt
	return nil
}

// GetExamByID returns nil, nil when no exam matches.
func (a *ExamDatabaseAdapter) GetExamByID(ctx context.Context, id string) (*domain.Exam, error) {
	var modelExam models.Exam
	query := fmt.Sprintf(`SELECT %s
	FROM exams
	WHERE id = :1
	AND deleted_at IS NULL`, examColumns)

	err := a.db.GetContext(ctx, &modelExam, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get exam by ID %s: %w", id, err)
	}
	return toDomainExam(&modelExam)
}

// ListExams returns a page of exams matching the filter, newest first.
func (a *ExamDatabaseAdapter) ListExams(ctx context.Context, filter domain.ExamFilter) ([]*domain.Exam, error) {
	query := fmt.Sprintf(`SELECT %s FROM exams WHERE deleted_at IS NULL`, examColumns)
	var args []interface{}
	bind := 0

	if filter.Type != "" {
		bind++
		query += fmt.Sprintf(" AND exam_type = :%d", bind)
		args = append(args, filter.Type)
	}
	if filter.Published != nil {
		bind++
		query += fmt.Sprintf(" AND is_published = :%d", bind)
		published := 0
		if *filter.Published {
			published = 1
		}
		args = append(args, published)
	}

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 20
	}
	bind++
	query += fmt.Sprintf(" ORDER BY created_at DESC OFFSET :%d ROWS", bind)
	args = append(args, (page-1)*limit)
	bind++
	query += fmt.Sprintf(" FETCH NEXT :%d ROWS ONLY", bind)
	args = append(args, limit)

	rows, err := a.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list exams: %w", err)
	}
	defer rows.Close()

	exams := []*domain.Exam{}
	for rows.Next() {
		var modelExam models.Exam
		if err := rows.StructScan(&modelExam); err != nil {
			return nil, fmt.Errorf("failed to scan exam row: %w", err)
		}
		domainExam, err := toDomainExam(&modelExam)
		if err != nil {
			return nil, err
		}
		exams = append(exams, domainExam)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during exam rows iteration: %w", err)
	}
	return exams, nil
}

// UpdateExam rewrites the mutable fields of an existing exam.
func (a *ExamDatabaseAdapter) UpdateExam(ctx context.Context, exam *domain.Exam) error {
	modelExam, err := toModelExam(exam)
	if err != nil {
		return err
	}
	if modelExam.ID == "" {
		return fmt.Errorf("cannot update exam with empty ID")
	}
	modelExam.UpdatedAt = time.Now()

	query := `UPDATE exams SET
		title = :1,
		exam_type = :2,
		duration = :3,
		sections = :4,
		is_published = :5,
		is_public = :6,
		difficulty = :7,
		updated_at = :8
	WHERE id = :9
	AND deleted_at IS NULL`

	result, err := a.db.ExecContext(ctx, query,
		modelExam.Title,
		modelExam.Type,
		modelExam.Duration,
		modelExam.Sections,
		modelExam.IsPublished,
		modelExam.IsPublic,
		modelExam.Difficulty,
		modelExam.UpdatedAt,
		modelExam.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update exam: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewExamNotFoundError(exam.ID)
	}
	exam.UpdatedAt = modelExam.UpdatedAt
	return nil
}

// DeleteExam soft-deletes an exam.
func (a *ExamDatabaseAdapter) DeleteExam(ctx context.Context, id string) error {
	query := `UPDATE exams SET deleted_at = :1 WHERE id = :2 AND deleted_at IS NULL`

	result, err := a.db.ExecContext(ctx, query, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to delete exam: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return domain.NewExamNotFoundError(id)
	}
	return nil
}

func toModelExam(d *domain.Exam) (*models.Exam, error) {
	if d == nil {
		return nil, fmt.Errorf("cannot convert nil exam")
	}
	sectionsJSON, err := json.Marshal(d.Sections)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sections: %w", err)
	}
	m := &models.Exam{
		ID:         d.ID,
		Title:      d.Title,
		Type:       d.Type,
		Duration:   d.Duration,
		AuthorID:   d.AuthorID,
		Sections:   string(sectionsJSON),
		Difficulty: d.Metadata.Difficulty,
		CreatedAt:  d.CreatedAt,
		UpdatedAt:  d.UpdatedAt,
	}
	if d.Metadata.IsPublished {
		m.IsPublished = 1
	}
	if d.Metadata.IsPublic {
		m.IsPublic = 1
	}
	return m, nil
}

func toDomainExam(m *models.Exam) (*domain.Exam, error) {
	if m == nil {
		return nil, fmt.Errorf("cannot convert nil exam model")
	}
	e := &domain.Exam{
		ID:       m.ID,
		Title:    m.Title,
		Type:     m.Type,
		Duration: m.Duration,
		AuthorID: m.AuthorID,
		Metadata: domain.ExamMetadata{
			IsPublished: m.IsPublished == 1,
			IsPublic:    m.IsPublic == 1,
			Difficulty:  m.Difficulty,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Sections != "" {
		if err := json.Unmarshal([]byte(m.Sections), &e.Sections); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sections: %w", err)
		}
	}
	return e, nil
}
