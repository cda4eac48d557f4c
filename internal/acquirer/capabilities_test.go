package acquirer

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/videobrief/videobrief/internal/config"
)

func TestDetectCapabilities(t *testing.T) {
	dir := t.TempDir()
	binary := filepath.Join(dir, "whisper-cli")
	if err := os.WriteFile(binary, []byte("#!/bin/sh"), 0755); err != nil {
		t.Fatal(err)
	}
	modelDir := filepath.Join(dir, "models")
	if err := os.MkdirAll(modelDir, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(modelDir, "ggml-base.bin"), []byte("model"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg := &config.Config{
		Whisper: config.WhisperConfig{BinaryPath: binary, ModelDir: modelDir, Quality: "balanced"},
	}

	exec := &fakeExecutor{
		lookPath: func(name string) (string, error) {
			if name == "yt-dlp" {
				return "", errors.New("not found")
			}
			return "/usr/bin/" + name, nil
		},
	}

	caps := DetectCapabilities(cfg, exec)
	if !caps.FFmpeg || !caps.FFprobe {
		t.Errorf("ffmpeg/ffprobe should be detected: %+v", caps)
	}
	if caps.Downloader {
		t.Error("yt-dlp should be reported missing")
	}
	if !caps.Whisper || !caps.WhisperModel {
		t.Errorf("whisper binary and model should be detected: %+v", caps)
	}
}

func TestDetectCapabilitiesMissingModel(t *testing.T) {
	cfg := &config.Config{
		Whisper: config.WhisperConfig{BinaryPath: "whisper-cli", ModelDir: t.TempDir(), Quality: "balanced"},
	}
	caps := DetectCapabilities(cfg, &fakeExecutor{})
	if caps.WhisperModel {
		t.Error("model should be reported missing for an empty model dir")
	}
}
