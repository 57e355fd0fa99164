package downloader

import (
	"fmt"
	"sort"
	"strings"
)

const maxLinks = 5

// isAudioOnly reports whether a format carries audio but no video.
func isAudioOnly(f Format) bool {
	return f.VCodec == "none" && f.ACodec != "none"
}

// hasVideo reports whether a format carries a video track.
func hasVideo(f Format) bool {
	return f.VCodec != "none"
}

// formatHint builds the yt-dlp format-selection expression for a
// resolve-mode call. "best" and unrecognized tiers never reach the
// integer parse.
func formatHint(format, quality string) string {
	if format == "mp3" {
		return "bestaudio/best"
	}
	switch quality {
	case "144p", "240p", "360p", "480p", "720p", "1080p":
		return fmt.Sprintf("best[height<=%s]", strings.TrimSuffix(quality, "p"))
	default:
		return "best"
	}
}

// selectLinks filters the raw catalog by the requested output format,
// ranks the survivors by quality and returns at most maxLinks links.
//
// mp3 keeps audio-only formats ranked by average bitrate; everything
// else keeps formats with a video track ranked by height. mp4 and webm
// share the video filter: the platform catalog does not label container
// separately from codec, so the requested format is only echoed back.
func selectLinks(formats []Format, format string) []DownloadLink {
	audio := format == "mp3"

	kept := make([]Format, 0, len(formats))
	for _, f := range formats {
		if f.URL == "" {
			continue
		}
		if audio {
			if isAudioOnly(f) {
				kept = append(kept, f)
			}
		} else if hasVideo(f) {
			kept = append(kept, f)
		}
	}

	// Stable: catalog order breaks ties.
	sort.SliceStable(kept, func(i, j int) bool {
		if audio {
			return kept[i].ABR > kept[j].ABR
		}
		return kept[i].Height > kept[j].Height
	})

	if len(kept) > maxLinks {
		kept = kept[:maxLinks]
	}

	links := make([]DownloadLink, 0, len(kept))
	for _, f := range kept {
		links = append(links, buildLink(f, audio))
	}
	return links
}

func buildLink(f Format, audio bool) DownloadLink {
	quality := f.FormatNote
	if quality == "" {
		quality = "Unknown"
	}

	link := DownloadLink{
		FormatID: f.FormatID,
		URL:      f.URL,
		Ext:      f.Ext,
		Quality:  quality,
		Filesize: f.Filesize,
	}

	if audio {
		link.Bitrate = f.ABR
		link.SampleRate = f.ASR
		return link
	}

	link.Resolution = fmt.Sprintf("%sx%s", dimension(f.Width), dimension(f.Height))
	link.FPS = f.FPS
	link.VCodec = f.VCodec
	link.ACodec = f.ACodec
	return link
}

func dimension(v int) string {
	if v <= 0 {
		return "Unknown"
	}
	return fmt.Sprintf("%d", v)
}

// singleLink covers extractions where the platform reports no format
// catalog at all, only one resolved top-level URL.
func singleLink(meta *VideoMetadata, format, quality string) []DownloadLink {
	return []DownloadLink{{
		FormatID: "single",
		URL:      meta.URL,
		Ext:      format,
		Quality:  quality,
	}}
}
