package media

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/videobrief/videobrief/internal/config"
	"github.com/videobrief/videobrief/internal/logger"
)

type fakeExecutor struct {
	execute func(ctx context.Context, name string, args ...string) (string, error)
}

func (f *fakeExecutor) Execute(ctx context.Context, name string, args ...string) (string, error) {
	return f.execute(ctx, name, args...)
}

func (f *fakeExecutor) ExecuteInDir(ctx context.Context, dir string, name string, args ...string) (string, error) {
	return f.execute(ctx, name, args...)
}

func (f *fakeExecutor) LookPath(name string) (string, error) {
	return "/usr/bin/" + name, nil
}

func testConfig() *config.Config {
	return &config.Config{
		FFmpeg: config.FFmpegConfig{AudioCodec: "mp3", SampleRate: 16000},
	}
}

func writeVideoFixture(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "input.mp4")
	if err := os.WriteFile(path, []byte("fake video"), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestExtractAudio(t *testing.T) {
	dir := t.TempDir()
	video := writeVideoFixture(t, dir)

	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			// ffmpeg writes to the last positional arg.
			out := args[len(args)-1]
			if err := os.WriteFile(out, []byte("audio"), 0644); err != nil {
				t.Fatal(err)
			}
			return "", nil
		},
	}
	m := New(testConfig(), exec, logger.New("error"))

	audioPath, err := m.ExtractAudio(context.Background(), video, dir)
	if err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}
	if filepath.Ext(audioPath) != ".mp3" {
		t.Errorf("audio path = %s, want .mp3 extension", audioPath)
	}
	if _, err := os.Stat(audioPath); err != nil {
		t.Errorf("audio file missing: %v", err)
	}
}

func TestExtractAudioSourceNotFound(t *testing.T) {
	m := New(testConfig(), &fakeExecutor{}, logger.New("error"))

	_, err := m.ExtractAudio(context.Background(), filepath.Join(t.TempDir(), "nope.mp4"), t.TempDir())
	if !errors.Is(err, ErrSourceNotFound) {
		t.Errorf("error = %v, want ErrSourceNotFound", err)
	}
}

func TestExtractAudioRemovesPartialOutput(t *testing.T) {
	dir := t.TempDir()
	video := writeVideoFixture(t, dir)

	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			out := args[len(args)-1]
			if err := os.WriteFile(out, []byte("truncated"), 0644); err != nil {
				t.Fatal(err)
			}
			return "", errors.New("decode error")
		},
	}
	m := New(testConfig(), exec, logger.New("error"))

	_, err := m.ExtractAudio(context.Background(), video, dir)
	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("error = %v, want ErrExtractionFailed", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "audio.mp3")); !os.IsNotExist(err) {
		t.Error("partial audio file should have been removed")
	}
}

func TestExtractAudioUnknownCodecFallsBackToMP3(t *testing.T) {
	dir := t.TempDir()
	video := writeVideoFixture(t, dir)

	cfg := testConfig()
	cfg.FFmpeg.AudioCodec = "flac"
	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			out := args[len(args)-1]
			return "", os.WriteFile(out, []byte("audio"), 0644)
		},
	}
	m := New(cfg, exec, logger.New("error"))

	audioPath, err := m.ExtractAudio(context.Background(), video, dir)
	if err != nil {
		t.Fatalf("ExtractAudio() error = %v", err)
	}
	if filepath.Ext(audioPath) != ".mp3" {
		t.Errorf("audio path = %s, want mp3 fallback", audioPath)
	}
}

func TestCaptureFramesDropsOutOfRange(t *testing.T) {
	dir := t.TempDir()
	video := writeVideoFixture(t, dir)

	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			out := args[len(args)-1]
			return "", os.WriteFile(out, []byte("jpeg"), 0644)
		},
	}
	m := New(testConfig(), exec, logger.New("error"))

	frames := m.CaptureFrames(context.Background(), video, 10.0, []float64{5.0, 50.0, -1.0}, filepath.Join(dir, "frames"))
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if frames[0].Timestamp != 5.0 {
		t.Errorf("Timestamp = %v, want 5.0", frames[0].Timestamp)
	}
	if _, err := os.Stat(frames[0].ImagePath); err != nil {
		t.Errorf("frame image missing: %v", err)
	}
}

func TestCaptureFramesClampsSeekNearEnd(t *testing.T) {
	dir := t.TempDir()
	video := writeVideoFixture(t, dir)

	var seek float64
	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			for i, arg := range args {
				if arg == "-ss" {
					seek, _ = strconv.ParseFloat(args[i+1], 64)
				}
			}
			out := args[len(args)-1]
			return "", os.WriteFile(out, []byte("jpeg"), 0644)
		},
	}
	m := New(testConfig(), exec, logger.New("error"))

	frames := m.CaptureFrames(context.Background(), video, 10.0, []float64{9.999}, filepath.Join(dir, "frames"))
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if seek > 9.995 {
		t.Errorf("seek = %v, should be clamped below %v", seek, 10.0-endOfStreamEpsilon)
	}
	if frames[0].Timestamp != 9.999 {
		t.Errorf("Timestamp = %v, want the original 9.999", frames[0].Timestamp)
	}
}

func TestCaptureFramesSkipsFailedCaptures(t *testing.T) {
	dir := t.TempDir()
	video := writeVideoFixture(t, dir)

	call := 0
	exec := &fakeExecutor{
		execute: func(ctx context.Context, name string, args ...string) (string, error) {
			call++
			if call == 1 {
				return "", errors.New("decode error")
			}
			out := args[len(args)-1]
			return "", os.WriteFile(out, []byte("jpeg"), 0644)
		},
	}
	m := New(testConfig(), exec, logger.New("error"))

	frames := m.CaptureFrames(context.Background(), video, 10.0, []float64{2.0, 4.0}, filepath.Join(dir, "frames"))
	if len(frames) != 1 {
		t.Fatalf("got %d frames, want 1", len(frames))
	}
	if frames[0].Timestamp != 4.0 {
		t.Errorf("surviving frame timestamp = %v, want 4.0", frames[0].Timestamp)
	}
}
