package downloader

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYtDlpJSONMetadata(t *testing.T) {
	raw := `{
		"id": "dQw4w9WgXcQ",
		"title": "Test Video",
		"uploader": "Test Channel",
		"duration": 212.5,
		"view_count": 1000,
		"like_count": 42,
		"description": "desc",
		"thumbnail": "https://img.example/t.jpg",
		"upload_date": "20240101",
		"categories": ["Music"],
		"tags": ["a", "b"],
		"webpage_url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		"url": "https://cdn.example/direct",
		"formats": [
			{"format_id": "22", "url": "https://cdn.example/22", "ext": "mp4", "format_note": "720p", "width": 1280, "height": 720, "fps": 30, "vcodec": "avc1", "acodec": "mp4a", "filesize": 1048576},
			{"format_id": "251", "url": "https://cdn.example/251", "ext": "webm", "vcodec": "none", "acodec": "opus", "abr": 160, "asr": 48000}
		]
	}`

	var data ytDlpJSON
	assert.NoError(t, json.Unmarshal([]byte(raw), &data))

	meta := data.metadata()
	assert.Equal(t, "dQw4w9WgXcQ", meta.ID)
	assert.Equal(t, 212, meta.Duration) // fractional seconds dropped
	assert.Equal(t, int64(1000), meta.ViewCount)
	assert.Equal(t, int64(42), meta.LikeCount)
	assert.Equal(t, []string{"a", "b"}, meta.Tags)
	assert.Equal(t, "https://cdn.example/direct", meta.URL)

	assert.Len(t, data.Formats, 2)
	assert.Equal(t, "avc1", data.Formats[0].VCodec)
	assert.Equal(t, int64(1048576), data.Formats[0].Filesize)
	assert.Equal(t, 160.0, data.Formats[1].ABR)
}

func TestYtDlpJSONMissingCatalog(t *testing.T) {
	var data ytDlpJSON
	assert.NoError(t, json.Unmarshal([]byte(`{"id": "x", "url": "https://cdn.example/only"}`), &data))
	assert.Nil(t, data.Formats)

	// An explicitly empty catalog is not the single-URL fallback.
	var withEmpty ytDlpJSON
	assert.NoError(t, json.Unmarshal([]byte(`{"id": "x", "formats": []}`), &withEmpty))
	assert.NotNil(t, withEmpty.Formats)
	assert.Empty(t, withEmpty.Formats)
}

func TestNewYtDlpExtractorDefaults(t *testing.T) {
	x := NewYtDlpExtractor("", 0)
	assert.Equal(t, DefaultYtDlpPath, x.path)
	assert.Equal(t, DefaultExtractTimeout, x.timeout)

	x = NewYtDlpExtractor("/opt/yt-dlp", 5*time.Second)
	assert.Equal(t, "/opt/yt-dlp", x.path)
	assert.Equal(t, 5*time.Second, x.timeout)
}
