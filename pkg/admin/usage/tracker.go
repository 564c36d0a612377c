package usage

import (
	"sort"
	"sync"
	"time"

	"hananav-be/internal/entity"
	"hananav-be/internal/pkg/logger"
)

// Tracker keeps the hourly per-department query counters behind the admin
// usage histogram. Seeded with sample data; answered queries increment live
// buckets through the event consumer.
type Tracker struct {
	mu      sync.Mutex
	buckets map[bucketKey]int
	logger  logger.ILogger
}

type bucketKey struct {
	hour       string
	department string
}

func NewTracker(logger logger.ILogger) *Tracker {
	t := &Tracker{
		buckets: make(map[bucketKey]int),
		logger:  logger,
	}
	t.seed()
	return t
}

func (t *Tracker) seed() {
	samples := []entity.UsageBucket{
		{Hour: "09:00", Department: "인사", Queries: 45},
		{Hour: "10:00", Department: "재무", Queries: 67},
		{Hour: "11:00", Department: "IT", Queries: 89},
		{Hour: "14:00", Department: "영업", Queries: 123},
		{Hour: "15:00", Department: "리스크", Queries: 98},
		{Hour: "16:00", Department: "인사", Queries: 76},
	}
	for _, s := range samples {
		t.buckets[bucketKey{hour: s.Hour, department: s.Department}] = s.Queries
	}
}

// Record counts one answered query against the current hour.
func (t *Tracker) Record(department string) {
	if department == "" || department == "all" {
		department = "전체"
	}
	hour := time.Now().Format("15:00")

	t.mu.Lock()
	defer t.mu.Unlock()
	t.buckets[bucketKey{hour: hour, department: department}]++
}

// Snapshot returns the histogram ordered by hour then department.
func (t *Tracker) Snapshot() []entity.UsageBucket {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]entity.UsageBucket, 0, len(t.buckets))
	for key, count := range t.buckets {
		out = append(out, entity.UsageBucket{
			Hour:       key.hour,
			Department: key.department,
			Queries:    count,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Hour != out[j].Hour {
			return out[i].Hour < out[j].Hour
		}
		return out[i].Department < out[j].Department
	})
	return out
}
