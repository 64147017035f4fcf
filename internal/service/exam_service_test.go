package service

import (
	"context"
	"testing"
	"time"

	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type crudExamRepo struct {
	exams   map[string]*domain.Exam
	updated []*domain.Exam
	deleted []string
}

func newCrudExamRepo(exams ...*domain.Exam) *crudExamRepo {
	repo := &crudExamRepo{exams: map[string]*domain.Exam{}}
	for _, e := range exams {
		repo.exams[e.ID] = e
	}
	return repo
}

func (r *crudExamRepo) SaveExam(_ context.Context, exam *domain.Exam) error {
	exam.ID = "exam-new"
	exam.CreatedAt = time.Now()
	exam.UpdatedAt = exam.CreatedAt
	r.exams[exam.ID] = exam
	return nil
}

func (r *crudExamRepo) GetExamByID(_ context.Context, id string) (*domain.Exam, error) {
	return r.exams[id], nil
}

func (r *crudExamRepo) ListExams(_ context.Context, _ domain.ExamFilter) ([]*domain.Exam, error) {
	exams := make([]*domain.Exam, 0, len(r.exams))
	for _, e := range r.exams {
		exams = append(exams, e)
	}
	return exams, nil
}

func (r *crudExamRepo) UpdateExam(_ context.Context, exam *domain.Exam) error {
	if _, ok := r.exams[exam.ID]; !ok {
		return domain.NewExamNotFoundError(exam.ID)
	}
	r.exams[exam.ID] = exam
	r.updated = append(r.updated, exam)
	return nil
}

func (r *crudExamRepo) DeleteExam(_ context.Context, id string) error {
	if _, ok := r.exams[id]; !ok {
		return domain.NewExamNotFoundError(id)
	}
	delete(r.exams, id)
	r.deleted = append(r.deleted, id)
	return nil
}

type recordingInvalidator struct {
	invalidated []string
}

func (r *recordingInvalidator) Invalidate(_ context.Context, examID string) error {
	r.invalidated = append(r.invalidated, examID)
	return nil
}

func existingExam() *domain.Exam {
	return &domain.Exam{
		ID:       "exam-1",
		Title:    "Final",
		Type:     domain.ExamTypeTHPT,
		Duration: 60,
		AuthorID: "author-1",
		Sections: []domain.Section{
			{SectionName: "Section 1", QuestionList: []string{"q1"}},
		},
		Metadata: domain.ExamMetadata{Difficulty: domain.DefaultDifficulty},
	}
}

func TestCreateExamDefaultsDifficulty(t *testing.T) {
	repo := newCrudExamRepo()
	svc := NewExamService(repo, &fakeQuestionRepo{}, &recordingInvalidator{})

	exam, err := svc.CreateExam(context.Background(), dto.CreateExamRequest{
		Title:    "Placement Test",
		Type:     "PLACEMENT",
		Duration: 30,
	}, "author-9")
	require.NoError(t, err)

	assert.Equal(t, "exam-new", exam.ID)
	assert.Equal(t, "author-9", exam.AuthorID)
	assert.Equal(t, domain.DefaultDifficulty, exam.Metadata.Difficulty)
	assert.False(t, exam.Metadata.IsPublished)
}

func TestCreateExamRejectsMissingFields(t *testing.T) {
	svc := NewExamService(newCrudExamRepo(), &fakeQuestionRepo{}, &recordingInvalidator{})

	cases := []dto.CreateExamRequest{
		{Type: "TOEIC", Duration: 30},
		{Title: "T", Duration: 30},
		{Title: "T", Type: "TOEIC"},
	}
	for _, req := range cases {
		_, err := svc.CreateExam(context.Background(), req, "author-1")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInvalidInput, domainErr.Code)
	}
}

func TestGetExamPopulatesQuestions(t *testing.T) {
	questionRepo := &fakeQuestionRepo{questions: []*domain.Question{{ID: "q1"}}}
	svc := NewExamService(newCrudExamRepo(existingExam()), questionRepo, &recordingInvalidator{})

	exam, questions, err := svc.GetExam(context.Background(), "exam-1")
	require.NoError(t, err)

	assert.Equal(t, "Final", exam.Title)
	require.Len(t, questions, 1)
	assert.Equal(t, "q1", questions[0].ID)
}

func TestGetExamNotFound(t *testing.T) {
	svc := NewExamService(newCrudExamRepo(), &fakeQuestionRepo{}, &recordingInvalidator{})

	_, _, err := svc.GetExam(context.Background(), "missing")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExamNotFound, domainErr.Code)
}

func TestUpdateExamAppliesPartialChanges(t *testing.T) {
	repo := newCrudExamRepo(existingExam())
	invalidator := &recordingInvalidator{}
	svc := NewExamService(repo, &fakeQuestionRepo{}, invalidator)

	newTitle := "Final v2"
	published := dto.ExamMetadataPayload{IsPublished: true, Difficulty: domain.LevelHard}
	exam, err := svc.UpdateExam(context.Background(), "exam-1", dto.UpdateExamRequest{
		Title:    &newTitle,
		Metadata: &published,
	})
	require.NoError(t, err)

	assert.Equal(t, "Final v2", exam.Title)
	assert.Equal(t, domain.ExamTypeTHPT, exam.Type, "unset fields stay untouched")
	assert.Equal(t, 60, exam.Duration)
	assert.True(t, exam.Metadata.IsPublished)
	assert.Equal(t, domain.LevelHard, exam.Metadata.Difficulty)
	assert.Equal(t, []string{"exam-1"}, invalidator.invalidated)
}

func TestUpdateExamNotFound(t *testing.T) {
	invalidator := &recordingInvalidator{}
	svc := NewExamService(newCrudExamRepo(), &fakeQuestionRepo{}, invalidator)

	title := "X"
	_, err := svc.UpdateExam(context.Background(), "missing", dto.UpdateExamRequest{Title: &title})

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExamNotFound, domainErr.Code)
	assert.Empty(t, invalidator.invalidated)
}

func TestDeleteExamInvalidatesSnapshot(t *testing.T) {
	repo := newCrudExamRepo(existingExam())
	invalidator := &recordingInvalidator{}
	svc := NewExamService(repo, &fakeQuestionRepo{}, invalidator)

	require.NoError(t, svc.DeleteExam(context.Background(), "exam-1"))

	assert.Equal(t, []string{"exam-1"}, repo.deleted)
	assert.Equal(t, []string{"exam-1"}, invalidator.invalidated)
}

func TestDeleteExamNotFound(t *testing.T) {
	svc := NewExamService(newCrudExamRepo(), &fakeQuestionRepo{}, &recordingInvalidator{})

	err := svc.DeleteExam(context.Background(), "missing")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExamNotFound, domainErr.Code)
}
