package models

// VideoSource describes an acquired input video and its probed metadata.
// TempDir is set when the acquirer owns the file's lifetime (uploads and
// downloads); it is empty for caller-supplied local paths.
type VideoSource struct {
	Path      string  `json:"path"`
	TempDir   string  `json:"-"`
	Duration  float64 `json:"duration"`
	Width     int     `json:"width"`
	Height    int     `json:"height"`
	FrameRate float64 `json:"frame_rate"`
}

// Segment is a time-bounded slice of transcribed speech.
type Segment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

// TranscriptionResult is the immutable output of the transcriber.
// Segments are ordered by start time; overlapping segments from the speech
// model are accepted as-is.
type TranscriptionResult struct {
	FullText string    `json:"full_text"`
	Segments []Segment `json:"segments"`
}

// Highlight is a model-selected moment of interest.
type Highlight struct {
	Timestamp   float64 `json:"timestamp"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
}

// AnalysisResult is the structured output of the analyzer. Field sizes are
// descriptive hints from the model, not contractual. Summary and KeyPoints
// are compatibility fields derived when the model omits them.
type AnalysisResult struct {
	MainPurpose           string      `json:"main_purpose"`
	KeyInsights           []string    `json:"key_insights"`
	ImportantConcepts     []string    `json:"important_concepts"`
	StructuredSummary     string      `json:"structured_summary"`
	Keywords              []string    `json:"keywords"`
	TimestampedHighlights []Highlight `json:"timestamped_highlights"`

	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`

	// ParseError is set when the model response could not be parsed and a
	// degraded result was substituted.
	ParseError string `json:"_parse_error,omitempty"`
}

// Frame is a still image captured at a highlight timestamp.
type Frame struct {
	Timestamp float64 `json:"timestamp"`
	ImagePath string  `json:"image_path"`
}

// ExportBundle is the read-only aggregate handed to the document renderers.
type ExportBundle struct {
	Name          string               `json:"name"`
	Analysis      *AnalysisResult      `json:"analysis"`
	Transcription *TranscriptionResult `json:"transcription"`
	Refined       string               `json:"refined_transcription"`
	Frames        []Frame              `json:"frames"`
	Duration      float64              `json:"duration"`
}
