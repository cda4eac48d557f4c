package executor

import "context"

// Executor defines the interface for running external media tools so that
// pipeline stages can be tested without ffmpeg, yt-dlp or whisper installed.
type Executor interface {
	Execute(ctx context.Context, name string, args ...string) (string, error)
	ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error)
	LookPath(name string) (string, error)
}
