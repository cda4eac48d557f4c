package acquirer

import "errors"

var (
	// ErrUnsupportedFormat means the file extension is not on the allowlist.
	ErrUnsupportedFormat = errors.New("unsupported video format")

	// ErrDownloaderMissing means yt-dlp is not installed.
	ErrDownloaderMissing = errors.New("yt-dlp is not installed (install from https://github.com/yt-dlp/yt-dlp)")

	// ErrMediaToolMissing means ffmpeg is required to merge streams but absent.
	ErrMediaToolMissing = errors.New("ffmpeg is required (install from https://ffmpeg.org/download.html)")

	// ErrSourceUnavailable means the remote video is private, deleted,
	// age-restricted or region-blocked.
	ErrSourceUnavailable = errors.New("video is unavailable (private, deleted, age-restricted or region-blocked)")

	// ErrDownloadFailed is the generic download failure; the wrapping error
	// carries a truncated diagnostic.
	ErrDownloadFailed = errors.New("download failed")
)

// maxDiagnosticLen caps the downloader diagnostic carried on ErrDownloadFailed.
const maxDiagnosticLen = 200

func truncateDiagnostic(s string) string {
	if len(s) > maxDiagnosticLen {
		return s[:maxDiagnosticLen]
	}
	return s
}
