package config

import "fmt"

type Config struct {
	Whisper     WhisperConfig     `yaml:"whisper"`
	FFmpeg      FFmpegConfig      `yaml:"ffmpeg"`
	OpenAI      OpenAIConfig      `yaml:"openai"`
	Paths       PathsConfig       `yaml:"paths"`
	Logging     LoggingConfig     `yaml:"logging"`
	Performance PerformanceConfig `yaml:"performance"`
	Server      ServerConfig      `yaml:"server"`
	Export      ExportConfig      `yaml:"export"`
}

type WhisperConfig struct {
	BinaryPath string `yaml:"binary_path"`
	ModelDir   string `yaml:"model_dir"`
	Language   string `yaml:"language"`
	Quality    string `yaml:"quality"`
	Threads    int    `yaml:"threads"`
}

type FFmpegConfig struct {
	AudioCodec string `yaml:"audio_codec"`
	SampleRate int    `yaml:"sample_rate"`
}

type OpenAIConfig struct {
	Model          string `yaml:"model"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type PathsConfig struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	Temp   string `yaml:"temp"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type PerformanceConfig struct {
	MaxConcurrent int `yaml:"max_concurrent"`
}

type ServerConfig struct {
	Port        int `yaml:"port"`
	MaxUploadMB int `yaml:"max_upload_mb"`
}

type ExportConfig struct {
	Word              *bool `yaml:"word"`
	PDF               *bool `yaml:"pdf"`
	CaptureHighlights *bool `yaml:"capture_highlights"`
	MaxHighlights     int   `yaml:"max_highlights"`
}

// Quality tiers accepted by whisper.quality, ordered fastest to most accurate.
var QualityTiers = []string{"fastest", "balanced", "accurate", "most-accurate"}

func (c *Config) Validate() error {
	if c.Whisper.BinaryPath == "" {
		return fmt.Errorf("whisper.binary_path is required")
	}
	if c.Whisper.ModelDir == "" {
		return fmt.Errorf("whisper.model_dir is required")
	}
	if c.Paths.Output == "" {
		return fmt.Errorf("paths.output is required")
	}

	if c.Whisper.Quality == "" {
		c.Whisper.Quality = "balanced"
	}
	if !validQuality(c.Whisper.Quality) {
		return fmt.Errorf("whisper.quality must be one of %v", QualityTiers)
	}
	if c.Whisper.Threads == 0 {
		c.Whisper.Threads = 4
	}
	if c.FFmpeg.AudioCodec == "" {
		c.FFmpeg.AudioCodec = "mp3"
	}
	if c.FFmpeg.SampleRate == 0 {
		c.FFmpeg.SampleRate = 16000
	}
	if c.OpenAI.Model == "" {
		c.OpenAI.Model = "gpt-4o-mini"
	}
	if c.OpenAI.TimeoutSeconds == 0 {
		c.OpenAI.TimeoutSeconds = 120
	}
	if c.Paths.Input == "" {
		c.Paths.Input = "data/input"
	}
	if c.Paths.Temp == "" {
		c.Paths.Temp = "data/temp"
	}
	if c.Performance.MaxConcurrent == 0 {
		c.Performance.MaxConcurrent = 2
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.MaxUploadMB == 0 {
		c.Server.MaxUploadMB = 5120
	}
	if c.Export.Word == nil {
		c.Export.Word = boolPtr(true)
	}
	if c.Export.PDF == nil {
		c.Export.PDF = boolPtr(true)
	}
	if c.Export.CaptureHighlights == nil {
		c.Export.CaptureHighlights = boolPtr(true)
	}
	if c.Export.MaxHighlights == 0 {
		c.Export.MaxHighlights = 6
	}

	return nil
}

func validQuality(q string) bool {
	for _, tier := range QualityTiers {
		if q == tier {
			return true
		}
	}
	return false
}

func boolPtr(b bool) *bool { return &b }
