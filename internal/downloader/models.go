package downloader

// VideoMetadata is the per-request snapshot of what the extractor
// reports about a video. URL carries the top-level resolved media URL
// for the single-link fallback case.
type VideoMetadata struct {
	ID          string
	Title       string
	Uploader    string
	Duration    int // seconds
	ViewCount   int64
	LikeCount   int64
	Description string
	Thumbnail   string
	UploadDate  string
	Categories  []string
	Tags        []string
	WebpageURL  string
	URL         string
}

// Format is one entry of the raw format catalog as reported by the
// extractor. A vcodec/acodec value of "none" marks the absent track.
type Format struct {
	FormatID   string
	URL        string
	Ext        string
	FormatNote string
	Filesize   int64
	Width      int
	Height     int
	FPS        float64
	VCodec     string
	ACodec     string
	ABR        float64 // average audio bitrate, kbps
	ASR        int     // audio sample rate, Hz
}

// DownloadLink is the client-facing view of a selected format.
// Kind-specific fields are omitted for the other kind.
type DownloadLink struct {
	FormatID   string  `json:"format_id"`
	URL        string  `json:"url"`
	Ext        string  `json:"ext"`
	Quality    string  `json:"quality"`
	Filesize   int64   `json:"filesize,omitempty"`
	Resolution string  `json:"resolution,omitempty"`
	FPS        float64 `json:"fps,omitempty"`
	VCodec     string  `json:"vcodec,omitempty"`
	ACodec     string  `json:"acodec,omitempty"`
	Bitrate    float64 `json:"bitrate,omitempty"`
	SampleRate int     `json:"sample_rate,omitempty"`
}

// VideoInfo is the video_info block of the download response.
type VideoInfo struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Uploader    string `json:"uploader"`
	Duration    int    `json:"duration"`
	ViewCount   int64  `json:"view_count"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	UploadDate  string `json:"upload_date"`
}

// FullVideoInfo is the richer video_info block of the info endpoint.
type FullVideoInfo struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Uploader    string   `json:"uploader"`
	Duration    int      `json:"duration"`
	ViewCount   int64    `json:"view_count"`
	LikeCount   int64    `json:"like_count"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail"`
	UploadDate  string   `json:"upload_date"`
	Categories  []string `json:"categories"`
	Tags        []string `json:"tags"`
	WebpageURL  string   `json:"webpage_url"`
}

type DownloadResponse struct {
	Status           string         `json:"status"`
	VideoInfo        VideoInfo      `json:"video_info"`
	DownloadLinks    []DownloadLink `json:"download_links"`
	RequestedFormat  string         `json:"requested_format"`
	RequestedQuality string         `json:"requested_quality"`
}

type InfoResponse struct {
	Status    string        `json:"status"`
	VideoInfo FullVideoInfo `json:"video_info"`
}
