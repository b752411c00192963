package report

import (
	"sort"
	"time"

	"github.com/BobbingAlong/twitter-watch/internal/utils"
	"github.com/BobbingAlong/twitter-watch/pkg/records"
)

// Bucket pairs one UTC detection date with the records detected on it, ranked
// for rendering. Unknown counts suspension rows whose account identity was
// never resolved; they have no table row but count toward the date's total.
type Bucket[T records.Record] struct {
	Date    time.Time
	Records []T
	Unknown int
}

// Total is the number of changes detected on the bucket's date, including
// records below the follower cutoff and unknown-identity rows.
func (b Bucket[T]) Total() int {
	return len(b.Records) + b.Unknown
}

// Engine accumulates records by detection date and produces the ordered
// bucket sequence the renderer consumes. It owns the date map exclusively
// until Finalize hands the buckets off.
type Engine[T records.Record] struct {
	byDate  map[time.Time][]T
	unknown map[time.Time]int
}

func NewEngine[T records.Record]() *Engine[T] {
	return &Engine[T]{
		byDate:  make(map[time.Time][]T),
		unknown: make(map[time.Time]int),
	}
}

func (e *Engine[T]) Add(r T) {
	day := r.Day()
	e.byDate[day] = append(e.byDate[day], r)
}

// AddUnknown counts an unknown-identity row for the given detection date.
func (e *Engine[T]) AddUnknown(day time.Time) {
	e.unknown[day]++
}

// Finalize sorts each bucket descending by follower count (ties ascending by
// user id) and orders the buckets most recent first. The engine's maps are
// consumed; the returned buckets are the sole remaining owner of the records.
func (e *Engine[T]) Finalize() []Bucket[T] {
	days := make(map[time.Time]struct{}, len(e.byDate))
	for day := range e.byDate {
		days[day] = struct{}{}
	}
	for day := range e.unknown {
		days[day] = struct{}{}
	}

	buckets := make([]Bucket[T], 0, len(days))
	for day := range days {
		recs := e.byDate[day]
		sort.Slice(recs, func(i, j int) bool {
			if recs[i].Followers() != recs[j].Followers() {
				return recs[i].Followers() > recs[j].Followers()
			}
			return recs[i].ID() < recs[j].ID()
		})
		buckets = append(buckets, Bucket[T]{
			Date:    day,
			Records: recs,
			Unknown: e.unknown[day],
		})
	}

	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Date.After(buckets[j].Date)
	})

	utils.Log.Debug("finalized ", len(buckets), " date buckets")

	e.byDate = nil
	e.unknown = nil
	return buckets
}

// retain caps the bucket sequence at the configured number of most recent
// dates. Older dates drop out of this run entirely; the full history stays in
// data.csv.
func retain[T records.Record](buckets []Bucket[T], limit int) []Bucket[T] {
	if len(buckets) > limit {
		return buckets[:limit]
	}
	return buckets
}
