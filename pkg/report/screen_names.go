package report

import (
	"io"

	"github.com/BobbingAlong/twitter-watch/internal/utils"
	"github.com/BobbingAlong/twitter-watch/pkg/records"
)

// ScreenNames reads <base>/data.csv and renders the screen name changes
// report to w. Any read or parse failure aborts the run; output already
// written to w stays written.
func ScreenNames(w io.Writer, base string, cfg Config) error {
	utils.Log.Debug("rendering screen name report from ", base)
	buckets, err := loadScreenNames(base)
	if err != nil {
		return err
	}
	return renderScreenNames(w, retain(buckets, cfg.DatesLimit), base, cfg)
}

func renderScreenNames(w io.Writer, buckets []Bucket[records.ScreenNameRecord], base string, cfg Config) error {
	rw := &reportWriter{w: w}

	rw.println("# Screen name changes")
	rw.println("This report tracks screen name changes for several million far-right and far-right adjacent accounts on Twitter")
	rw.println("(including a lot of crypto / NFT shit, some spam, antivaxxers, etc.).")
	rw.println("")
	rw.printf("This page presents the last %d days of available data for all users with more than %d followers.\n", cfg.DatesLimit, cfg.FollowersCutoff)
	rw.println("Please note:")
	rw.println("* The date listed indicates the day the change was detected, and in some cases it may have happened earlier.")
	rw.println(`* The "Twitter ID" column provides a stable link for the account in cases where the screen name has been changed again.`)
	rw.println("* Some accounts may have been suspended or deactivated since being added to the report.")
	rw.println("* There's a lot of potentially offensive content here, including racial slurs and obscenity.")
	rw.println("")

	contents(rw, buckets, "changes")

	for _, b := range buckets {
		rw.printf("\n## %s\n", headerDate(b.Date))
		rw.printf("Found %d screen name changes, with %d included here.\n", b.Total(), included(b, cfg.FollowersCutoff))
		rw.println("<table>")
		rw.println(`<tr><th></th><th align="left">Twitter ID</th><th align="left">Previous screen name</th>`)
		rw.println(`<th align="left">New screen name</th><th align="left">Status</th><th align="left">Follower count</th></tr>`)
		for _, r := range b.Records {
			if r.FollowersCount < cfg.FollowersCutoff {
				break
			}
			rw.printf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td align=\"center\">%s</td><td>%d</td></tr>\n",
				thumbnailCell(r.AvatarURL, base),
				userIDCell(r.UserID),
				r.PreviousName,
				profileCell(r.NewName),
				statusGlyphs(r.Protected, r.Verified),
				r.FollowersCount,
			)
		}
		rw.println("</table>")
	}

	rw.println("")
	rw.println("The full history of all detected changes for all tracked users is available in the [`data.csv`](./data.csv) file.")

	return rw.err
}
