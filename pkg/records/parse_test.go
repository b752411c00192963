package records

import (
	"errors"
	"strconv"
	"testing"
	"time"
)

func TestParseScreenName(t *testing.T) {
	row := []string{"1609459200", "42", "true", "false", "500", "oldname", "newname", "https://pbs.twimg.com/profile_images/42/abc_normal.jpg"}

	rec, err := ParseScreenName(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.UserID != 42 {
		t.Fatalf("expected user id 42, got %d", rec.UserID)
	}
	if !rec.Verified || rec.Protected {
		t.Fatalf("expected verified=true protected=false, got %t/%t", rec.Verified, rec.Protected)
	}
	if rec.FollowersCount != 500 {
		t.Fatalf("expected 500 followers, got %d", rec.FollowersCount)
	}
	if rec.PreviousName != "oldname" || rec.NewName != "newname" {
		t.Fatalf("unexpected names: %q -> %q", rec.PreviousName, rec.NewName)
	}
	want := time.Date(2021, time.January, 1, 0, 0, 0, 0, time.UTC)
	if !rec.Day().Equal(want) {
		t.Fatalf("expected detection day %v, got %v", want, rec.Day())
	}
}

func TestParseScreenName_RoundTrip(t *testing.T) {
	row := []string{"1609459200", "42", "true", "false", "500", "old", "new", "url"}

	rec, err := ParseScreenName(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := strconv.FormatInt(rec.DetectedAt.Unix(), 10); got != row[0] {
		t.Fatalf("timestamp round-trip mismatch: %s != %s", got, row[0])
	}
	if got := strconv.FormatUint(rec.UserID, 10); got != row[1] {
		t.Fatalf("user id round-trip mismatch: %s != %s", got, row[1])
	}
	if got := strconv.FormatBool(rec.Verified); got != row[2] {
		t.Fatalf("verified round-trip mismatch: %s != %s", got, row[2])
	}
	if got := strconv.FormatBool(rec.Protected); got != row[3] {
		t.Fatalf("protected round-trip mismatch: %s != %s", got, row[3])
	}
	if got := strconv.FormatUint(rec.FollowersCount, 10); got != row[4] {
		t.Fatalf("followers round-trip mismatch: %s != %s", got, row[4])
	}
}

func TestParseScreenName_WrongFieldCount(t *testing.T) {
	row := []string{"1609459200", "42", "true", "false", "500", "oldname", "newname"}

	_, err := ParseScreenName(row)
	if err == nil {
		t.Fatal("expected an error for a 7-field row")
	}
	var invalid *InvalidRecordError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidRecordError, got %T", err)
	}
	if len(invalid.Row) != 7 || invalid.Row[0] != "1609459200" {
		t.Fatalf("expected the raw row to be preserved, got %q", invalid.Row)
	}
}

func TestParseScreenName_BadFollowers(t *testing.T) {
	row := []string{"1609459200", "42", "true", "false", "lots", "old", "new", "url"}

	_, err := ParseScreenName(row)
	var invalid *InvalidRecordError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidRecordError, got %v", err)
	}
}

func TestParseSuspension_EmptyReversal(t *testing.T) {
	row := []string{"1609459200", "", "42", "1262304000", "somebody", "true", "true", "900", "url"}

	rec, err := ParseSuspension(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ReversedAt != nil {
		t.Fatalf("expected nil ReversedAt, got %v", rec.ReversedAt)
	}
	if rec.ScreenName != "somebody" {
		t.Fatalf("expected screen name 'somebody', got %q", rec.ScreenName)
	}
	if rec.AccountCreatedAt.Year() != 2010 {
		t.Fatalf("expected account created in 2010, got %v", rec.AccountCreatedAt)
	}
}

func TestParseSuspension_WithReversal(t *testing.T) {
	row := []string{"1609459200", "1609891200", "42", "1262304000", "somebody", "false", "false", "900", "url"}

	rec, err := ParseSuspension(row)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rec.ReversedAt == nil {
		t.Fatal("expected ReversedAt to be set")
	}
	want := time.Date(2021, time.January, 6, 0, 0, 0, 0, time.UTC)
	if !rec.ReversedAt.Equal(want) {
		t.Fatalf("expected reversal at %v, got %v", want, rec.ReversedAt)
	}
}

func TestParseSuspension_BadVerified(t *testing.T) {
	row := []string{"1609459200", "", "42", "1262304000", "somebody", "yes", "false", "900", "url"}

	_, err := ParseSuspension(row)
	var invalid *InvalidRecordError
	if !errors.As(err, &invalid) {
		t.Fatalf("expected InvalidRecordError, got %v", err)
	}
}

func TestIsUnknownSuspension(t *testing.T) {
	sentinel := []string{"1609459200", "", "", "", "", "", "", "", ""}
	if !IsUnknownSuspension(sentinel) {
		t.Fatal("expected sentinel row to be detected")
	}

	full := []string{"1609459200", "", "42", "1262304000", "somebody", "true", "true", "900", "url"}
	if IsUnknownSuspension(full) {
		t.Fatal("row with a user id must not be treated as a sentinel")
	}

	short := []string{"1609459200", "", ""}
	if IsUnknownSuspension(short) {
		t.Fatal("short rows must go through the strict parse path")
	}
}

func TestUnknownSuspensionDay(t *testing.T) {
	sentinel := []string{"1609545600", "", "", "", "", "", "", "", ""}

	day, err := UnknownSuspensionDay(sentinel)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2021, time.January, 2, 0, 0, 0, 0, time.UTC)
	if !day.Equal(want) {
		t.Fatalf("expected %v, got %v", want, day)
	}

	bad := []string{"not-a-timestamp", "", "", "", "", "", "", "", ""}
	if _, err := UnknownSuspensionDay(bad); err == nil {
		t.Fatal("expected an error for an unparseable detection timestamp")
	}
}
