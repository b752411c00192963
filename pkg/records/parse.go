package records

import (
	"fmt"
	"strconv"
	"time"
)

const (
	screenNameFieldCount = 8
	suspensionFieldCount = 9
)

// InvalidRecordError reports a row that does not fit its expected shape. The
// raw row is kept verbatim so the operator can find it in data.csv.
type InvalidRecordError struct {
	Row []string
}

func (e *InvalidRecordError) Error() string {
	return fmt.Sprintf("invalid record: %q", e.Row)
}

// ParseScreenName converts one raw CSV row into a ScreenNameRecord. Rows must
// have exactly 8 fields: detection timestamp (unix seconds), user id,
// verified, protected, follower count, previous name, new name, avatar URL.
func ParseScreenName(row []string) (ScreenNameRecord, error) {
	if len(row) != screenNameFieldCount {
		return ScreenNameRecord{}, &InvalidRecordError{Row: row}
	}

	detectedAt, err := parseEpoch(row[0])
	if err != nil {
		return ScreenNameRecord{}, &InvalidRecordError{Row: row}
	}
	userID, err := strconv.ParseUint(row[1], 10, 64)
	if err != nil {
		return ScreenNameRecord{}, &InvalidRecordError{Row: row}
	}
	verified, err := strconv.ParseBool(row[2])
	if err != nil {
		return ScreenNameRecord{}, &InvalidRecordError{Row: row}
	}
	protected, err := strconv.ParseBool(row[3])
	if err != nil {
		return ScreenNameRecord{}, &InvalidRecordError{Row: row}
	}
	followers, err := strconv.ParseUint(row[4], 10, 64)
	if err != nil {
		return ScreenNameRecord{}, &InvalidRecordError{Row: row}
	}

	return ScreenNameRecord{
		DetectedAt:     detectedAt,
		UserID:         userID,
		Verified:       verified,
		Protected:      protected,
		FollowersCount: followers,
		PreviousName:   row[5],
		NewName:        row[6],
		AvatarURL:      row[7],
	}, nil
}

// ParseSuspension converts one raw CSV row into a SuspensionRecord. Rows must
// have exactly 9 fields: detection timestamp, reversal timestamp (empty when
// the suspension stands), user id, account creation timestamp, screen name,
// verified, protected, follower count, avatar URL. The reversal field is the
// only one allowed to be empty.
func ParseSuspension(row []string) (SuspensionRecord, error) {
	if len(row) != suspensionFieldCount {
		return SuspensionRecord{}, &InvalidRecordError{Row: row}
	}

	detectedAt, err := parseEpoch(row[0])
	if err != nil {
		return SuspensionRecord{}, &InvalidRecordError{Row: row}
	}
	var reversedAt *time.Time
	if row[1] != "" {
		t, err := parseEpoch(row[1])
		if err != nil {
			return SuspensionRecord{}, &InvalidRecordError{Row: row}
		}
		reversedAt = &t
	}
	userID, err := strconv.ParseUint(row[2], 10, 64)
	if err != nil {
		return SuspensionRecord{}, &InvalidRecordError{Row: row}
	}
	createdAt, err := parseEpoch(row[3])
	if err != nil {
		return SuspensionRecord{}, &InvalidRecordError{Row: row}
	}
	verified, err := strconv.ParseBool(row[5])
	if err != nil {
		return SuspensionRecord{}, &InvalidRecordError{Row: row}
	}
	protected, err := strconv.ParseBool(row[6])
	if err != nil {
		return SuspensionRecord{}, &InvalidRecordError{Row: row}
	}
	followers, err := strconv.ParseUint(row[7], 10, 64)
	if err != nil {
		return SuspensionRecord{}, &InvalidRecordError{Row: row}
	}

	return SuspensionRecord{
		DetectedAt:       detectedAt,
		ReversedAt:       reversedAt,
		UserID:           userID,
		AccountCreatedAt: createdAt,
		ScreenName:       row[4],
		Verified:         verified,
		Protected:        protected,
		FollowersCount:   followers,
		AvatarURL:        row[8],
	}, nil
}

// IsUnknownSuspension reports whether a raw suspension row is the
// unknown-identity sentinel: a full-width row whose user id field is empty.
// The check is positional and must track the suspensions column order.
func IsUnknownSuspension(row []string) bool {
	return len(row) == suspensionFieldCount && row[2] == ""
}

// UnknownSuspensionDay extracts the UTC detection date from an
// unknown-identity sentinel row, the only field such rows must carry.
func UnknownSuspensionDay(row []string) (time.Time, error) {
	detectedAt, err := parseEpoch(row[0])
	if err != nil {
		return time.Time{}, &InvalidRecordError{Row: row}
	}
	return DayOf(detectedAt), nil
}

func parseEpoch(s string) (time.Time, error) {
	secs, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return time.Time{}, err
	}
	return time.Unix(secs, 0).UTC(), nil
}
