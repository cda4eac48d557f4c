package transcriber

import "errors"

var (
	// ErrAudioNotFound means the audio path does not exist.
	ErrAudioNotFound = errors.New("audio file not found")

	// ErrModelUnavailable means the whisper binary or model file is missing.
	ErrModelUnavailable = errors.New("speech model unavailable")
)

// qualityModels maps the quality tier (fastest to most accurate) onto
// whisper.cpp ggml model files.
var qualityModels = map[string]string{
	"fastest":       "ggml-tiny.bin",
	"balanced":      "ggml-base.bin",
	"accurate":      "ggml-small.bin",
	"most-accurate": "ggml-medium.bin",
}

// ModelFileForQuality returns the ggml model filename for a quality tier,
// falling back to the balanced tier for unknown values.
func ModelFileForQuality(quality string) string {
	if f, ok := qualityModels[quality]; ok {
		return f
	}
	return qualityModels["balanced"]
}
