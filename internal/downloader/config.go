package downloader

import "time"

// Config is the read-only per-process configuration. A value is built
// once at startup and shared by every request.
type Config struct {
	APIKey         string
	MaxDuration    int // seconds, videos longer than this are rejected
	YtDlpPath      string
	ExtractTimeout time.Duration
}

const (
	DefaultMaxDuration    = 3600
	DefaultYtDlpPath      = "yt-dlp"
	DefaultExtractTimeout = 30 * time.Second
)
