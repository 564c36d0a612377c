package usage

import (
	"testing"
	"time"

	"hananav-be/internal/pkg/logger"
)

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }
func (nopLogger) GetLogs(level string, limit, offset int) ([]logger.LogEntry, error) {
	return nil, nil
}

func TestTrackerSeedAndSnapshotOrdering(t *testing.T) {
	tr := NewTracker(nopLogger{})
	snapshot := tr.Snapshot()

	if len(snapshot) != 6 {
		t.Fatalf("expected 6 seeded buckets, got %d", len(snapshot))
	}
	for i := 1; i < len(snapshot); i++ {
		prev, cur := snapshot[i-1], snapshot[i]
		if prev.Hour > cur.Hour || (prev.Hour == cur.Hour && prev.Department > cur.Department) {
			t.Fatalf("snapshot out of order at %d: %v before %v", i, prev, cur)
		}
	}
}

func TestTrackerRecordIncrementsCurrentHourBucket(t *testing.T) {
	tr := NewTracker(nopLogger{})
	hour := time.Now().Format("15:00")

	tr.Record("인사")
	tr.Record("인사")
	tr.Record("") // empty department counts against the catch-all bucket

	var hrCount, allCount int
	for _, b := range tr.Snapshot() {
		if b.Hour != hour {
			continue
		}
		switch b.Department {
		case "인사":
			hrCount = b.Queries
		case "전체":
			allCount = b.Queries
		}
	}

	if hrCount < 2 {
		t.Errorf("expected at least 2 queries in 인사 bucket for %s, got %d", hour, hrCount)
	}
	if allCount != 1 {
		t.Errorf("expected 1 query in 전체 bucket for %s, got %d", hour, allCount)
	}
}
