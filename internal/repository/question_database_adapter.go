package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/logger"
	"github.com/dohuubinh-oss/quizBinhBE/internal/repository/models"
	"github.com/dohuubinh-oss/quizBinhBE/internal/util"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

const questionColumns = `
		id "id",
		category "category",
		part "part",
		format "format",
		resource "resource",
		sub_questions "sub_questions",
		difficulty_level "difficulty_level",
		created_at "created_at",
		updated_at "updated_at",
		deleted_at "deleted_at"`

// QuestionDatabaseAdapter implements domain.QuestionRepository using sqlx.
type QuestionDatabaseAdapter struct {
	db *sqlx.DB
}

func NewQuestionDatabaseAdapter(db *sqlx.DB) domain.QuestionRepository {
	return &QuestionDatabaseAdapter{db: db}
}

const insertQuestionQuery = `INSERT INTO questions (
		id, category, part, format, resource, sub_questions,
		difficulty_level, created_at, updated_at
	) VALUES (
		:1, :2, :3, :4, :5, :6, :7, :8, :9
	)`

// SaveQuestions inserts the batch row by row without a wrapping
// transaction, mirroring an unordered bulk write: a failing row does not
// stop the rest. Pre-insert validation is the primary defense; if rows
// still fail, the error carries the written/requested counts.
func (a *QuestionDatabaseAdapter) SaveQuestions(ctx context.Context, questions []*domain.Question) ([]string, error) {
	l := logger.Get()
	createdIDs := make([]string, 0, len(questions))
	var rowErrs []string

	for i, question := range questions {
		modelQuestion, err := toModelQuestion(question)
		if err != nil {
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}
		modelQuestion.ID = util.NewULID()
		modelQuestion.CreatedAt = time.Now()
		modelQuestion.UpdatedAt = modelQuestion.CreatedAt

		_, err = a.db.ExecContext(ctx, insertQuestionQuery,
			modelQuestion.ID,
			modelQuestion.Category,
			modelQuestion.Part,
			modelQuestion.Format,
			modelQuestion.Resource,
			modelQuestion.SubQuestions,
			modelQuestion.Level,
			modelQuestion.CreatedAt,
			modelQuestion.UpdatedAt,
		)
		if err != nil {
			l.Error("Failed to insert question in batch",
				zap.Int("row", i+1),
				zap.Error(err))
			rowErrs = append(rowErrs, fmt.Sprintf("row %d: %v", i+1, err))
			continue
		}

		question.ID = modelQuestion.ID
		question.CreatedAt = modelQuestion.CreatedAt
		question.UpdatedAt = modelQuestion.UpdatedAt
		createdIDs = append(createdIDs, modelQuestion.ID)
	}

	if len(rowErrs) > 0 {
		return createdIDs, domain.NewStorageError(
			fmt.Sprintf("bulk question insert failed for %d of %d rows: %s",
				len(rowErrs), len(questions), strings.Join(rowErrs, "; ")),
			nil, len(createdIDs), len(questions))
	}
	return createdIDs, nil
}

// GetQuestionsByIDs resolves question references. Result order is not
// guaranteed; callers traverse in their own section order.
func (a *QuestionDatabaseAdapter) GetQuestionsByIDs(ctx context.Context, ids []string) ([]*domain.Question, error) {
	if len(ids) == 0 {
		return []*domain.Question{}, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]interface{}, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf(":%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`SELECT %s
	FROM questions
	WHERE id IN (%s)
	AND deleted_at IS NULL`, questionColumns, strings.Join(placeholders, ", "))

	rows, err := a.db.QueryxContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query questions by IDs: %w", err)
	}
	defer rows.Close()

	questions := make([]*domain.Question, 0, len(ids))
	for rows.Next() {
		var modelQuestion models.Question
		if err := rows.StructScan(&modelQuestion); err != nil {
			return nil, fmt.Errorf("failed to scan question row: %w", err)
		}
		domainQuestion, err := toDomainQuestion(&modelQuestion)
		if err != nil {
			return nil, fmt.Errorf("failed to convert question %s: %w", modelQuestion.ID, err)
		}
		questions = append(questions, domainQuestion)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error during question rows iteration: %w", err)
	}

	return questions, nil
}

func toModelQuestion(d *domain.Question) (*models.Question, error) {
	if d == nil {
		return nil, fmt.Errorf("cannot convert nil question")
	}
	resourceJSON, err := json.Marshal(d.Resource)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal resource: %w", err)
	}
	subQuestionsJSON, err := json.Marshal(d.SubQuestions)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal sub-questions: %w", err)
	}
	return &models.Question{
		ID:           d.ID,
		Category:     d.Category,
		Part:         d.Part,
		Format:       d.Format,
		Resource:     string(resourceJSON),
		SubQuestions: string(subQuestionsJSON),
		Level:        d.Metadata.Level,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}, nil
}

func toDomainQuestion(m *models.Question) (*domain.Question, error) {
	if m == nil {
		return nil, fmt.Errorf("cannot convert nil question model")
	}
	q := &domain.Question{
		ID:        m.ID,
		Category:  m.Category,
		Part:      m.Part,
		Format:    m.Format,
		Metadata:  domain.QuestionMetadata{Level: m.Level},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
	if m.Resource != "" {
		if err := json.Unmarshal([]byte(m.Resource), &q.Resource); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resource: %w", err)
		}
	}
	if m.SubQuestions != "" {
		if err := json.Unmarshal([]byte(m.SubQuestions), &q.SubQuestions); err != nil {
			return nil, fmt.Errorf("failed to unmarshal sub-questions: %w", err)
		}
	}
	return q, nil
}
