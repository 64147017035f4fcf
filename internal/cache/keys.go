package cache

import "fmt"

const examSnapshotPrefix = "exam:snapshot"

// ExamSnapshotKey is the cache key for a resolved exam snapshot
// (exam plus its referenced questions).
func ExamSnapshotKey(examID string) string {
	return fmt.Sprintf("%s:%s", examSnapshotPrefix, examID)
}
