package acquirer

import (
	"context"
	"io"

	"github.com/videobrief/videobrief/internal/models"
)

// Acquirer resolves an input video from an upload, a local path or a remote
// URL into a probed VideoSource.
type Acquirer interface {
	// SaveUpload persists uploaded bytes under a fresh temp directory,
	// preserving the original extension.
	SaveUpload(ctx context.Context, r io.Reader, filename string) (*models.VideoSource, error)

	// Download fetches a remote video with yt-dlp into a fresh temp directory.
	Download(ctx context.Context, url string) (*models.VideoSource, error)

	// FromPath wraps an existing local file. The caller keeps ownership of
	// the file; only upload/download sources are cleaned up by sessions.
	FromPath(ctx context.Context, path string) (*models.VideoSource, error)
}
