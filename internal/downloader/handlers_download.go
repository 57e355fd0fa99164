package downloader

import (
	"context"
	"net/http"
	"strings"
)

// probeMeta runs a metadata-only extraction and enforces the duration
// ceiling. The ceiling is policy, not a malfunction, so it maps to a
// client error.
func (s *Server) probeMeta(ctx context.Context, url string) (*VideoMetadata, error) {
	meta, err := s.extractor.Probe(ctx, url)
	if err != nil {
		return nil, errBadRequest("%s", err.Error())
	}
	if meta.Duration > s.cfg.MaxDuration {
		return nil, errBadRequest("Video too long (%ds). Maximum allowed: %ds",
			meta.Duration, s.cfg.MaxDuration)
	}
	return meta, nil
}

func (s *Server) HandleDownload(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	rawURL := q.Get("url")
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "URL parameter is required")
		return
	}

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = "mp4"
	}
	quality := strings.ToLower(q.Get("quality"))
	if quality == "" {
		quality = "best"
	}

	target := decodeURL(rawURL)
	if extractVideoID(target) == "" {
		writeError(w, http.StatusBadRequest, "Invalid YouTube URL")
		return
	}

	// Probe first: the duration check must happen before committing to
	// the full-format extraction.
	if _, err := s.probeMeta(r.Context(), target); err != nil {
		writeAPIError(w, err)
		return
	}

	meta, formats, err := s.extractor.Resolve(r.Context(), target, formatHint(format, quality))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	var links []DownloadLink
	if formats == nil {
		// Some platforms report no per-format catalog, only one
		// resolved URL.
		links = singleLink(meta, format, quality)
	} else {
		links = selectLinks(formats, format)
	}

	writeJSON(w, http.StatusOK, DownloadResponse{
		Status: "success",
		VideoInfo: VideoInfo{
			ID:          meta.ID,
			Title:       meta.Title,
			Uploader:    meta.Uploader,
			Duration:    meta.Duration,
			ViewCount:   meta.ViewCount,
			Description: truncateDescription(meta.Description),
			Thumbnail:   meta.Thumbnail,
			UploadDate:  meta.UploadDate,
		},
		DownloadLinks:    links,
		RequestedFormat:  format,
		RequestedQuality: quality,
	})
}

// truncateDescription caps the description at 500 characters and marks
// the cut. Empty stays empty.
func truncateDescription(s string) string {
	if s == "" {
		return ""
	}
	runes := []rune(s)
	if len(runes) > 500 {
		runes = runes[:500]
	}
	return string(runes) + "..."
}
