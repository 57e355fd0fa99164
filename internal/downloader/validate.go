package downloader

import (
	"net/url"
	"regexp"
)

// Recognized YouTube URL shapes, tried in order. Each pattern captures
// the video ID.
var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`youtube\.com/v/([^&\n?#]+)`),
}

// decodeURL undoes percent-encoding a client may have applied to the
// url parameter. PathUnescape keeps literal "+" intact. A string that
// fails to decode is used as-is.
func decodeURL(raw string) string {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// extractVideoID matches a decoded URL against the known shapes and
// returns the captured video ID, or "" when the string is not a
// recognized YouTube video URL. No network access.
func extractVideoID(decoded string) string {
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(decoded); m != nil {
			return m[1]
		}
	}
	return ""
}
