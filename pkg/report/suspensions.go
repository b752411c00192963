package report

import (
	"io"

	"github.com/BobbingAlong/twitter-watch/internal/utils"
	"github.com/BobbingAlong/twitter-watch/pkg/records"
)

// Suspensions reads <base>/data.csv and renders the account suspensions
// report to w. Failure semantics match ScreenNames.
func Suspensions(w io.Writer, base string, cfg Config) error {
	utils.Log.Debug("rendering suspensions report from ", base)
	buckets, err := loadSuspensions(base)
	if err != nil {
		return err
	}
	return renderSuspensions(w, retain(buckets, cfg.DatesLimit), base, cfg)
}

func renderSuspensions(w io.Writer, buckets []Bucket[records.SuspensionRecord], base string, cfg Config) error {
	rw := &reportWriter{w: w}

	rw.println("# Suspensions")
	rw.println("This report tracks suspensions (and suspension reversals) for several million far-right and far-right adjacent accounts on Twitter")
	rw.println("(including a lot of crypto / NFT shit, some spam, antivaxxers, etc.).")
	rw.println("")
	rw.printf("This page presents the last %d days of available data for all users with more than %d followers.\n", cfg.DatesLimit, cfg.FollowersCutoff)
	rw.println("Please note:")
	rw.println("* The date listed indicates the day the suspension was detected, and in some cases it may have happened earlier.")
	rw.println(`* The "Twitter ID" column provides a stable link for the account if the suspension is later reversed.`)
	rw.println(`* The "Reversed" column shows the date a reversal was detected, and is empty while the suspension stands.`)
	rw.println("* Some suspensions are only known from a detected reversal; these count toward the daily totals but have no row below.")
	rw.println("* There's a lot of potentially offensive content here, including racial slurs and obscenity.")
	rw.println("")

	contents(rw, buckets, "suspensions")

	for _, b := range buckets {
		rw.printf("\n## %s\n", headerDate(b.Date))
		rw.printf("Found %d suspensions, with %d included here.\n", b.Total(), included(b, cfg.FollowersCutoff))
		rw.println("<table>")
		rw.println(`<tr><th></th><th align="left">Twitter ID</th><th align="left">Screen name</th><th align="left">Account created</th>`)
		rw.println(`<th align="left">Reversed</th><th align="left">Status</th><th align="left">Follower count</th></tr>`)
		for _, r := range b.Records {
			if r.FollowersCount < cfg.FollowersCutoff {
				break
			}
			reversed := ""
			if r.ReversedAt != nil {
				reversed = r.ReversedAt.UTC().Format(dayFormat)
			}
			rw.printf("<tr><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td>%s</td><td align=\"center\">%s</td><td>%d</td></tr>\n",
				thumbnailCell(r.AvatarURL, base),
				userIDCell(r.UserID),
				profileCell(r.ScreenName),
				r.AccountCreatedAt.UTC().Format(dayFormat),
				reversed,
				statusGlyphs(r.Protected, r.Verified),
				r.FollowersCount,
			)
		}
		rw.println("</table>")
	}

	rw.println("")
	rw.println("The full history of all detected suspensions for all tracked users is available in the [`data.csv`](./data.csv) file.")

	return rw.err
}
