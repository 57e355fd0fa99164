package downloader

import (
	"context"
	"net/http"
	"os"
)

// Extractor resolves a video page URL into metadata and, in resolve
// mode, the full format catalog. Implementations call out to an
// external tool; tests substitute a mock.
type Extractor interface {
	// Probe fetches metadata only, no format catalog.
	Probe(ctx context.Context, url string) (*VideoMetadata, error)

	// Resolve re-fetches with a format-selection hint and returns the
	// complete catalog of formats the platform reports for the video.
	Resolve(ctx context.Context, url, hint string) (*VideoMetadata, []Format, error)
}

type Server struct {
	extractor Extractor
	cfg       Config
}

func NewServer(e Extractor, cfg Config) *Server {
	if cfg.MaxDuration <= 0 {
		cfg.MaxDuration = DefaultMaxDuration
	}
	return &Server{
		extractor: e,
		cfg:       cfg,
	}
}

func (s *Server) HandleHealth(w http.ResponseWriter, r *http.Request) {
	instance := os.Getenv("RENDER_SERVICE_ID")
	if instance == "" {
		instance = "local"
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "healthy",
		"service":   "YouTube Downloader API",
		"timestamp": instance,
	})
}

func (s *Server) HandleHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "YouTube Downloader API",
		"version": "1.0.0",
		"endpoints": map[string]string{
			"download": "/api/youtube-downloader",
			"info":     "/api/video-info",
		},
		"usage": map[string]string{
			"download": "/api/youtube-downloader?url=YOUTUBE_URL&apikey=YOUR_API_KEY&format=mp4&quality=720p",
			"info":     "/api/video-info?url=YOUTUBE_URL&apikey=YOUR_API_KEY",
		},
		"parameters": map[string]string{
			"url":     "YouTube video URL (required)",
			"apikey":  "API authentication key (required)",
			"format":  "Output format: mp4, mp3, webm (optional, default: mp4)",
			"quality": "Video quality: 144p, 240p, 360p, 480p, 720p, 1080p, best (optional, default: best)",
		},
	})
}

func (s *Server) HandleNotFound(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, map[string]any{
		"error":  "Endpoint not found",
		"status": "failed",
		"available_endpoints": []string{
			"/api/youtube-downloader",
			"/api/video-info",
			"/health",
		},
	})
}
