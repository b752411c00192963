// Package report turns the parsed change records into the grouped, ranked
// Markdown reports published from this repository.
package report

const (
	DefaultDatesLimit      = 10
	DefaultFollowersCutoff = 200

	headerDateFormat = "2 January 2006"
	dayFormat        = "2006-01-02"
)

// Config carries the per-run report settings. It is frozen by the caller
// before the pipeline starts; nothing below reads ambient state.
type Config struct {
	// DatesLimit is how many of the most recent detection dates to render.
	DatesLimit int
	// FollowersCutoff is the minimum follower count for a record to get its
	// own table row. Records below it still count toward per-date totals.
	FollowersCutoff uint64
}

func DefaultConfig() Config {
	return Config{
		DatesLimit:      DefaultDatesLimit,
		FollowersCutoff: DefaultFollowersCutoff,
	}
}
