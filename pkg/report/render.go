package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BobbingAlong/twitter-watch/pkg/records"
)

// reportWriter carries the first write error so the render path stays a
// straight line of printf calls.
type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...interface{}) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}

func (rw *reportWriter) println(line string) {
	rw.printf("%s\n", line)
}

func headerDate(t time.Time) string {
	return t.Format(headerDateFormat)
}

func headerAnchor(t time.Time) string {
	return strings.ReplaceAll(strings.TrimSpace(headerDate(t)), " ", "-")
}

// statusGlyphs renders the lock/checkmark status column, concatenated with no
// separator.
func statusGlyphs(protected, verified bool) string {
	var s strings.Builder
	if protected {
		s.WriteString("🔒")
	}
	if verified {
		s.WriteString("✔️")
	}
	return s.String()
}

func thumbnailCell(avatarURL, base string) string {
	src := ResolveThumbnail(avatarURL, base)
	return fmt.Sprintf(`<a href="%s"><img src="%s" width="40px" height="40px" align="center"/></a>`, avatarURL, src)
}

func userIDCell(id uint64) string {
	return fmt.Sprintf(`<a href="https://twitter.com/intent/user?user_id=%d">%d</a>`, id, id)
}

func profileCell(screenName string) string {
	return fmt.Sprintf(`<a href="https://twitter.com/%s">%s</a>`, screenName, screenName)
}

// contents emits the linked index of retained dates, each entry carrying the
// date's full detected total.
func contents[T records.Record](rw *reportWriter, buckets []Bucket[T], noun string) {
	rw.println("## Contents")
	for _, b := range buckets {
		rw.printf("* [%s (%d %s found)](#%s)\n", headerDate(b.Date), b.Total(), noun, headerAnchor(b.Date))
	}
}

// included counts the bucket records meeting the follower cutoff. The bucket
// is sorted descending by follower count, so this is exactly the length of
// the prefix the table renders.
func included[T records.Record](b Bucket[T], cutoff uint64) int {
	n := 0
	for _, r := range b.Records {
		if r.Followers() >= cutoff {
			n++
		}
	}
	return n
}
