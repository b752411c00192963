// Package records defines the typed change records parsed from the raw
// data.csv rows, one variant per report kind.
package records

import "time"

// Record is the common shape the grouping engine needs from any record kind.
type Record interface {
	// Day returns the UTC calendar date the change was detected on.
	Day() time.Time
	Followers() uint64
	ID() uint64
}

// ScreenNameRecord is one detected screen name change.
type ScreenNameRecord struct {
	DetectedAt     time.Time
	UserID         uint64
	Verified       bool
	Protected      bool
	FollowersCount uint64
	PreviousName   string
	NewName        string
	AvatarURL      string
}

func (r ScreenNameRecord) Day() time.Time    { return DayOf(r.DetectedAt) }
func (r ScreenNameRecord) Followers() uint64 { return r.FollowersCount }
func (r ScreenNameRecord) ID() uint64        { return r.UserID }

// SuspensionRecord is one detected account suspension. ReversedAt is set only
// when the suspension was later seen reversed, possibly on a different date.
type SuspensionRecord struct {
	DetectedAt       time.Time
	ReversedAt       *time.Time
	UserID           uint64
	AccountCreatedAt time.Time
	ScreenName       string
	Verified         bool
	Protected        bool
	FollowersCount   uint64
	AvatarURL        string
}

func (r SuspensionRecord) Day() time.Time    { return DayOf(r.DetectedAt) }
func (r SuspensionRecord) Followers() uint64 { return r.FollowersCount }
func (r SuspensionRecord) ID() uint64        { return r.UserID }

// DayOf truncates a timestamp to its UTC calendar date.
func DayOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
