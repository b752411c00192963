package report

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
)

var thumbnailPattern = regexp.MustCompile(`^https?://[^/]+/profile_images/(\d+)/(.*)_normal(\.[a-zA-Z0-9-]+)?$`)

// ResolveThumbnail maps a remote avatar URL to a pre-fetched local thumbnail
// under <base>/thumbnails/ when one exists, and falls back to the remote URL
// otherwise. A missing file is a normal condition, not an error.
func ResolveThumbnail(avatarURL, base string) string {
	m := thumbnailPattern.FindStringSubmatch(avatarURL)
	if m == nil {
		return avatarURL
	}

	// m[3] is the extension including the dot, or empty when the source URL
	// had none.
	rel := fmt.Sprintf("./thumbnails/%s-%s_400x400%s", m[1], m[2], m[3])
	if _, err := os.Stat(filepath.Join(base, rel)); err != nil {
		return avatarURL
	}
	return rel
}
