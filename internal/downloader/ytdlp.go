package downloader

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// YtDlpExtractor shells out to the yt-dlp binary with -J, which dumps
// the full metadata document as a single JSON object without
// downloading any payload.
type YtDlpExtractor struct {
	path    string
	timeout time.Duration
}

func NewYtDlpExtractor(path string, timeout time.Duration) *YtDlpExtractor {
	if path == "" {
		path = DefaultYtDlpPath
	}
	if timeout <= 0 {
		timeout = DefaultExtractTimeout
	}
	return &YtDlpExtractor{
		path:    path,
		timeout: timeout,
	}
}

var _ Extractor = (*YtDlpExtractor)(nil)

// ytDlpJSON matches the subset of yt-dlp's JSON output the service
// consumes.
type ytDlpJSON struct {
	ID          string        `json:"id"`
	Title       string        `json:"title"`
	Uploader    string        `json:"uploader"`
	Duration    float64       `json:"duration"`
	ViewCount   int64         `json:"view_count"`
	LikeCount   int64         `json:"like_count"`
	Description string        `json:"description"`
	Thumbnail   string        `json:"thumbnail"`
	UploadDate  string        `json:"upload_date"`
	Categories  []string      `json:"categories"`
	Tags        []string      `json:"tags"`
	WebpageURL  string        `json:"webpage_url"`
	URL         string        `json:"url"`
	Formats     []ytDlpFormat `json:"formats"`
}

type ytDlpFormat struct {
	FormatID   string  `json:"format_id"`
	URL        string  `json:"url"`
	Ext        string  `json:"ext"`
	FormatNote string  `json:"format_note"`
	Filesize   int64   `json:"filesize"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	FPS        float64 `json:"fps"`
	VCodec     string  `json:"vcodec"`
	ACodec     string  `json:"acodec"`
	ABR        float64 `json:"abr"`
	ASR        int     `json:"asr"`
}

func (x *YtDlpExtractor) Probe(ctx context.Context, url string) (*VideoMetadata, error) {
	data, err := x.run(ctx, "best", url)
	if err != nil {
		return nil, err
	}
	return data.metadata(), nil
}

func (x *YtDlpExtractor) Resolve(ctx context.Context, url, hint string) (*VideoMetadata, []Format, error) {
	data, err := x.run(ctx, hint, url)
	if err != nil {
		return nil, nil, err
	}
	meta := data.metadata()
	if data.Formats == nil {
		// Single-URL extraction, no catalog reported.
		return meta, nil, nil
	}
	formats := make([]Format, 0, len(data.Formats))
	for _, f := range data.Formats {
		formats = append(formats, Format{
			FormatID:   f.FormatID,
			URL:        f.URL,
			Ext:        f.Ext,
			FormatNote: f.FormatNote,
			Filesize:   f.Filesize,
			Width:      f.Width,
			Height:     f.Height,
			FPS:        f.FPS,
			VCodec:     f.VCodec,
			ACodec:     f.ACodec,
			ABR:        f.ABR,
			ASR:        f.ASR,
		})
	}
	return meta, formats, nil
}

func (x *YtDlpExtractor) run(ctx context.Context, hint, url string) (*ytDlpJSON, error) {
	ctx, cancel := context.WithTimeout(ctx, x.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, x.path,
		"-J",
		"--no-playlist",
		"--no-warnings",
		"-f", hint,
		url,
	)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return nil, fmt.Errorf("yt-dlp: %s", msg)
	}

	var data ytDlpJSON
	if err := json.Unmarshal(stdout.Bytes(), &data); err != nil {
		return nil, fmt.Errorf("yt-dlp: invalid JSON output: %w", err)
	}
	return &data, nil
}

func (d *ytDlpJSON) metadata() *VideoMetadata {
	return &VideoMetadata{
		ID:          d.ID,
		Title:       d.Title,
		Uploader:    d.Uploader,
		Duration:    int(d.Duration),
		ViewCount:   d.ViewCount,
		LikeCount:   d.LikeCount,
		Description: d.Description,
		Thumbnail:   d.Thumbnail,
		UploadDate:  d.UploadDate,
		Categories:  d.Categories,
		Tags:        d.Tags,
		WebpageURL:  d.WebpageURL,
		URL:         d.URL,
	}
}
