package service

import (
	"context"
	"testing"
	"time"

	"github.com/dohuubinh-oss/quizBinhBE/internal/cache"
	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	entries map[string]string
	gets    int
	sets    int
	deletes int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: map[string]string{}}
}

func (c *memoryCache) Get(_ context.Context, key string) (string, error) {
	c.gets++
	value, ok := c.entries[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return value, nil
}

func (c *memoryCache) Set(_ context.Context, key, value string, _ time.Duration) error {
	c.sets++
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.deletes++
	delete(c.entries, key)
	return nil
}

type fakeExamRepo struct {
	exam  *domain.Exam
	calls int
}

func (r *fakeExamRepo) GetExamByID(_ context.Context, _ string) (*domain.Exam, error) {
	r.calls++
	return r.exam, nil
}

func (r *fakeExamRepo) SaveExam(_ context.Context, _ *domain.Exam) error                  { return nil }
func (r *fakeExamRepo) UpdateExam(_ context.Context, _ *domain.Exam) error                { return nil }
func (r *fakeExamRepo) DeleteExam(_ context.Context, _ string) error                      { return nil }
func (r *fakeExamRepo) ListExams(_ context.Context, _ domain.ExamFilter) ([]*domain.Exam, error) {
	return nil, nil
}

type fakeQuestionRepo struct {
	questions []*domain.Question
	calls     int
}

func (r *fakeQuestionRepo) GetQuestionsByIDs(_ context.Context, _ []string) ([]*domain.Question, error) {
	r.calls++
	return r.questions, nil
}

func (r *fakeQuestionRepo) SaveQuestions(_ context.Context, _ []*domain.Question) ([]string, error) {
	return nil, nil
}

func snapshotFixtures() (*fakeExamRepo, *fakeQuestionRepo) {
	examRepo := &fakeExamRepo{exam: &domain.Exam{
		ID:    "exam-1",
		Title: "Final",
		Type:  domain.ExamTypeTOEIC,
		Sections: []domain.Section{
			{SectionName: "Section 1", QuestionList: []string{"q1", "q2"}},
		},
	}}
	questionRepo := &fakeQuestionRepo{questions: []*domain.Question{
		{ID: "q1", SubQuestions: []domain.SubQuestion{{Content: "one", CorrectAnswer: []string{"A"}}}},
		{ID: "q2", SubQuestions: []domain.SubQuestion{{Content: "two", CorrectAnswer: []string{"B"}}}},
	}}
	return examRepo, questionRepo
}

func TestGetSnapshotLoadsAndCaches(t *testing.T) {
	examRepo, questionRepo := snapshotFixtures()
	cacheClient := newMemoryCache()
	svc := NewExamSnapshotService(cacheClient, examRepo, questionRepo, time.Minute)

	snapshot, err := svc.GetSnapshot(context.Background(), "exam-1")
	require.NoError(t, err)

	assert.Equal(t, "Final", snapshot.Exam.Title)
	require.Len(t, snapshot.Questions, 2)
	assert.Equal(t, "one", snapshot.Questions["q1"].SubQuestions[0].Content)
	assert.Equal(t, 1, cacheClient.sets)
	assert.Contains(t, cacheClient.entries, cache.ExamSnapshotKey("exam-1"))
}

func TestGetSnapshotServesFromCache(t *testing.T) {
	examRepo, questionRepo := snapshotFixtures()
	cacheClient := newMemoryCache()
	svc := NewExamSnapshotService(cacheClient, examRepo, questionRepo, time.Minute)

	_, err := svc.GetSnapshot(context.Background(), "exam-1")
	require.NoError(t, err)
	snapshot, err := svc.GetSnapshot(context.Background(), "exam-1")
	require.NoError(t, err)

	assert.Equal(t, "exam-1", snapshot.Exam.ID)
	assert.Equal(t, 1, examRepo.calls, "second read must come from cache")
	assert.Equal(t, 1, questionRepo.calls)
}

func TestGetSnapshotCorruptEntryIsReloaded(t *testing.T) {
	examRepo, questionRepo := snapshotFixtures()
	cacheClient := newMemoryCache()
	cacheClient.entries[cache.ExamSnapshotKey("exam-1")] = "{not json"
	svc := NewExamSnapshotService(cacheClient, examRepo, questionRepo, time.Minute)

	snapshot, err := svc.GetSnapshot(context.Background(), "exam-1")
	require.NoError(t, err)

	assert.Equal(t, "Final", snapshot.Exam.Title)
	assert.Equal(t, 1, examRepo.calls)
}

func TestGetSnapshotUnknownExam(t *testing.T) {
	svc := NewExamSnapshotService(newMemoryCache(), &fakeExamRepo{}, &fakeQuestionRepo{}, time.Minute)

	_, err := svc.GetSnapshot(context.Background(), "missing")

	var domainErr *domain.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, domain.CodeExamNotFound, domainErr.Code)
}

func TestGetSnapshotWorksWithoutCache(t *testing.T) {
	examRepo, questionRepo := snapshotFixtures()
	svc := NewExamSnapshotService(nil, examRepo, questionRepo, time.Minute)

	snapshot, err := svc.GetSnapshot(context.Background(), "exam-1")
	require.NoError(t, err)
	assert.Len(t, snapshot.Questions, 2)
}

func TestInvalidateDeletesCachedSnapshot(t *testing.T) {
	examRepo, questionRepo := snapshotFixtures()
	cacheClient := newMemoryCache()
	svc := NewExamSnapshotService(cacheClient, examRepo, questionRepo, time.Minute)

	_, err := svc.GetSnapshot(context.Background(), "exam-1")
	require.NoError(t, err)
	require.NoError(t, svc.Invalidate(context.Background(), "exam-1"))

	assert.NotContains(t, cacheClient.entries, cache.ExamSnapshotKey("exam-1"))

	_, err = svc.GetSnapshot(context.Background(), "exam-1")
	require.NoError(t, err)
	assert.Equal(t, 2, examRepo.calls, "invalidation must force a reload")
}
