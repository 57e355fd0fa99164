package downloader

import "net/http"

const maxTags = 10

func (s *Server) HandleInfo(w http.ResponseWriter, r *http.Request) {
	rawURL := r.URL.Query().Get("url")
	if rawURL == "" {
		writeError(w, http.StatusBadRequest, "URL parameter is required")
		return
	}

	target := decodeURL(rawURL)
	if extractVideoID(target) == "" {
		writeError(w, http.StatusBadRequest, "Invalid YouTube URL")
		return
	}

	// Metadata only, no format catalog.
	meta, err := s.probeMeta(r.Context(), target)
	if err != nil {
		writeAPIError(w, err)
		return
	}

	tags := meta.Tags
	if len(tags) > maxTags {
		tags = tags[:maxTags]
	}

	writeJSON(w, http.StatusOK, InfoResponse{
		Status: "success",
		VideoInfo: FullVideoInfo{
			ID:          meta.ID,
			Title:       meta.Title,
			Uploader:    meta.Uploader,
			Duration:    meta.Duration,
			ViewCount:   meta.ViewCount,
			LikeCount:   meta.LikeCount,
			Description: meta.Description,
			Thumbnail:   meta.Thumbnail,
			UploadDate:  meta.UploadDate,
			Categories:  nonNil(meta.Categories),
			Tags:        nonNil(tags),
			WebpageURL:  meta.WebpageURL,
		},
	})
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
