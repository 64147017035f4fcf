package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dohuubinh-oss/quizBinhBE/internal/cache"
	"github.com/dohuubinh-oss/quizBinhBE/internal/domain"
	"github.com/dohuubinh-oss/quizBinhBE/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ExamSnapshot is a resolved exam: the exam record plus every referenced
// question, keyed by ID. It is what the grader consumes.
type ExamSnapshot struct {
	Exam      *domain.Exam                `json:"exam"`
	Questions map[string]*domain.Question `json:"questions"`
}

// ExamSnapshotProvider loads resolved exams.
type ExamSnapshotProvider interface {
	GetSnapshot(ctx context.Context, examID string) (*ExamSnapshot, error)
}

// ExamSnapshotInvalidator drops cached snapshots after exam mutations.
type ExamSnapshotInvalidator interface {
	Invalidate(ctx context.Context, examID string) error
}

// ExamSnapshotService caches resolved exams in Redis and deduplicates
// concurrent cold loads of the same exam with singleflight.
type ExamSnapshotService struct {
	cacheClient  domain.Cache
	examRepo     domain.ExamRepository
	questionRepo domain.QuestionRepository
	ttl          time.Duration
	group        singleflight.Group
}

// NewExamSnapshotService creates the snapshot loader. cacheClient may be
// nil, in which case every call loads from the repositories.
func NewExamSnapshotService(
	cacheClient domain.Cache,
	examRepo domain.ExamRepository,
	questionRepo domain.QuestionRepository,
	ttl time.Duration,
) *ExamSnapshotService {
	return &ExamSnapshotService{
		cacheClient:  cacheClient,
		examRepo:     examRepo,
		questionRepo: questionRepo,
		ttl:          ttl,
	}
}

func (s *ExamSnapshotService) GetSnapshot(ctx context.Context, examID string) (*ExamSnapshot, error) {
	l := logger.Get()
	key := cache.ExamSnapshotKey(examID)

	if s.cacheClient != nil {
		cached, err := s.cacheClient.Get(ctx, key)
		if err == nil {
			var snapshot ExamSnapshot
			if unmarshalErr := json.Unmarshal([]byte(cached), &snapshot); unmarshalErr == nil {
				return &snapshot, nil
			}
			// A corrupt entry is dropped and reloaded.
			l.Warn("Dropping corrupt exam snapshot cache entry", zap.String("key", key))
			_ = s.cacheClient.Delete(ctx, key)
		} else if err != domain.ErrCacheMiss {
			l.Warn("Exam snapshot cache read failed, falling back to storage",
				zap.String("key", key), zap.Error(err))
		}
	}

	result, err, _ := s.group.Do(examID, func() (interface{}, error) {
		return s.load(ctx, examID, key)
	})
	if err != nil {
		return nil, err
	}
	snapshot, ok := result.(*ExamSnapshot)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight for exam %s: %T", examID, result)
	}
	return snapshot, nil
}

func (s *ExamSnapshotService) load(ctx context.Context, examID, key string) (*ExamSnapshot, error) {
	exam, err := s.examRepo.GetExamByID(ctx, examID)
	if err != nil {
		return nil, domain.NewStorageError("failed to load exam", err, 0, 0)
	}
	if exam == nil {
		return nil, domain.NewExamNotFoundError(examID)
	}

	questions, err := s.questionRepo.GetQuestionsByIDs(ctx, exam.QuestionIDs())
	if err != nil {
		return nil, domain.NewStorageError("failed to load exam questions", err, 0, 0)
	}

	snapshot := &ExamSnapshot{
		Exam:      exam,
		Questions: make(map[string]*domain.Question, len(questions)),
	}
	for _, q := range questions {
		snapshot.Questions[q.ID] = q
	}

	if s.cacheClient != nil {
		if encoded, marshalErr := json.Marshal(snapshot); marshalErr == nil {
			if setErr := s.cacheClient.Set(ctx, key, string(encoded), s.ttl); setErr != nil {
				logger.Get().Warn("Failed to cache exam snapshot",
					zap.String("key", key), zap.Error(setErr))
			}
		}
	}

	return snapshot, nil
}

// Invalidate removes the cached snapshot for an exam. Called after exam
// updates and deletes; a failed invalidation is returned so callers can
// log it, but the underlying mutation has already happened.
func (s *ExamSnapshotService) Invalidate(ctx context.Context, examID string) error {
	if s.cacheClient == nil {
		return nil
	}
	return s.cacheClient.Delete(ctx, cache.ExamSnapshotKey(examID))
}
