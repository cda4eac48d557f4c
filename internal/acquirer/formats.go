package acquirer

import (
	"path/filepath"
	"strings"
)

// supportedVideoFormats is the container allowlist, compared case-insensitively
// against the filename's dot-suffix.
var supportedVideoFormats = map[string]bool{
	".mp4": true, ".avi": true, ".mkv": true, ".mov": true, ".webm": true,
	".wmv": true, ".flv": true, ".m4v": true, ".mpg": true, ".mpeg": true,
	".3gp": true, ".3g2": true, ".ogv": true, ".mts": true, ".m2ts": true,
	".vob": true, ".ts": true, ".divx": true, ".f4v": true, ".asf": true,
}

// downloadedMediaExtensions are the containers yt-dlp is expected to leave in
// its output directory, audio-only m4a included.
var downloadedMediaExtensions = []string{".mp4", ".mkv", ".webm", ".m4a"}

// IsSupportedVideo reports whether the filename carries a supported video
// container extension.
func IsSupportedVideo(filename string) bool {
	return supportedVideoFormats[strings.ToLower(filepath.Ext(filename))]
}

// IsVideoURL reports whether the string looks like a supported hosting URL.
func IsVideoURL(url string) bool {
	u := strings.ToLower(strings.TrimSpace(url))
	if u == "" {
		return false
	}
	return strings.Contains(u, "youtube.com") || strings.Contains(u, "youtu.be")
}
