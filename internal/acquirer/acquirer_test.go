package acquirer

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/logger"
)

const probeJSON = `{
	"streams": [{"width": 1280, "height": 720, "avg_frame_rate": "30000/1001"}],
	"format": {"duration": "10.500000"}
}`

type fakeExecutor struct {
	execute  func(ctx context.Context, name string, args ...string) (string, error)
	lookPath func(name string) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.execute(ctx, name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.execute(ctx, name, args...)
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	if f.lookPath != nil {
		return f.lookPath(name)
	}
	return "/usr/bin/" + name, nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Paths: config.PathsConfig{Temp: t.TempDir()},
	}
}

func TestSaveUpload(t *testing.T) {
	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			if name == "ffprobe" {
				return probeJSON, nil
			}
			return "", nil
		},
	}
	a := New(testConfig(t), exec, logger.New("error"))

	src, err := a.SaveUpload(context.Background(), strings.NewReader("video-bytes"), "Lecture One.MP4")
	if err != nil {
		t.Fatalf("SaveUpload() error = %v", err)
	}
	if src.TempDir == "" {
		t.Error("TempDir should be set for uploads")
	}
	if filepath.Ext(src.Path) != ".MP4" {
		t.Errorf("upload should preserve the original extension, got %s", src.Path)
	}
	data, err := os.ReadFile(src.Path)
	if err != nil {
		t.Fatalf("uploaded file not written: %v", err)
	}
	if string(data) != "video-bytes" {
		t.Errorf("uploaded content = %q", data)
	}
	if src.Duration != 10.5 || src.Width != 1280 || src.Height != 720 {
		t.Errorf("probed metadata = %+v", src)
	}
	if src.FrameRate < 29.9 || src.FrameRate > 30.0 {
		t.Errorf("FrameRate = %v, want ~29.97", src.FrameRate)
	}
}

func TestSaveUploadUnsupportedFormat(t *testing.T) {
	a := New(testConfig(t), &fakeExecutor{}, logger.New("error"))

	_, err := a.SaveUpload(context.Background(), strings.NewReader("x"), "podcast.mp3")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestSaveUploadProbeFailureIsNotFatal(t *testing.T) {
	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			return "", errors.New("ffprobe exploded")
		},
	}
	a := New(testConfig(t), exec, logger.New("error"))

	src, err := a.SaveUpload(context.Background(), strings.NewReader("x"), "clip.mp4")
	if err != nil {
		t.Fatalf("SaveUpload() error = %v", err)
	}
	if src.Duration != 0 || src.Width != 0 {
		t.Errorf("metadata should be zero-valued on probe failure, got %+v", src)
	}
}

func TestFromPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "talk.mp4")
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			return probeJSON, nil
		},
	}
	a := New(testConfig(t), exec, logger.New("error"))

	src, err := a.FromPath(context.Background(), path)
	if err != nil {
		t.Fatalf("FromPath() error = %v", err)
	}
	if src.TempDir != "" {
		t.Error("TempDir must stay empty for caller-owned files")
	}

	if _, err := a.FromPath(context.Background(), filepath.Join(dir, "missing.mp4")); err == nil {
		t.Error("FromPath should fail for a missing file")
	}
}

func TestDownloadDownloaderMissing(t *testing.T) {
	exec := &fakeExecutor{
		lookPath: func(name string) (string, error) {
			return "", errors.New("not found")
		},
	}
	a := New(testConfig(t), exec, logger.New("error"))

	_, err := a.Download(context.Background(), "https://youtu.be/abc")
	if !errors.Is(err, ErrDownloaderMissing) {
		t.Errorf("error = %v, want ErrDownloaderMissing", err)
	}
}

func TestDownload(t *testing.T) {
	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			if name == "ffprobe" {
				return probeJSON, nil
			}
			// Drop the downloaded file where the output template points.
			for i, arg := range args {
				if arg == "--output" {
					dir := filepath.Dir(args[i+1])
					if err := os.WriteFile(filepath.Join(dir, "video.mp4"), []byte("v"), 0644); err != nil {
						t.Fatal(err)
					}
				}
			}
			return "", nil
		},
	}
	a := New(testConfig(t), exec, logger.New("error"))

	src, err := a.Download(context.Background(), "https://youtu.be/abc")
	if err != nil {
		t.Fatalf("Download() error = %v", err)
	}
	if filepath.Base(src.Path) != "video.mp4" {
		t.Errorf("Path = %s, want video.mp4", src.Path)
	}
	if src.TempDir == "" {
		t.Error("TempDir should be set for downloads")
	}
}

func TestClassifyDownloadError(t *testing.T) {
	tests := []struct {
		name string
		msg  string
		want error
	}{
		{"ffmpeg missing", "ERROR: FFmpeg is required to merge", ErrMediaToolMissing},
		{"private", "ERROR: Private video. Sign in", ErrSourceUnavailable},
		{"unavailable", "ERROR: Video unavailable", ErrSourceUnavailable},
		{"generic", "ERROR: something else entirely", ErrDownloadFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := classifyDownloadError(errors.New(tt.msg))
			if !errors.Is(got, tt.want) {
				t.Errorf("classifyDownloadError(%q) = %v, want %v", tt.msg, got, tt.want)
			}
		})
	}
}

func TestClassifyDownloadErrorTruncatesDiagnostic(t *testing.T) {
	long := strings.Repeat("x", 500)
	got := classifyDownloadError(errors.New(long))
	if !errors.Is(got, ErrDownloadFailed) {
		t.Fatalf("error = %v, want ErrDownloadFailed", got)
	}
	if len(got.Error()) > len(ErrDownloadFailed.Error())+2+maxDiagnosticLen {
		t.Errorf("diagnostic not truncated: %d chars", len(got.Error()))
	}
}

func TestFindDownloadedMediaEmptyDir(t *testing.T) {
	_, err := findDownloadedMedia(t.TempDir())
	if !errors.Is(err, ErrDownloadFailed) {
		t.Errorf("error = %v, want ErrDownloadFailed", err)
	}
}

func TestParseFrameRate(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"30/1", 30},
		{"25", 25},
		{"0/0", 0},
		{"garbage", 0},
	}
	for _, tt := range tests {
		if got := parseFrameRate(tt.in); got != tt.want {
			t.Errorf("parseFrameRate(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
