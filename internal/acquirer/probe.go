package acquirer

import (
	"context"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/videobrief/videobrief/internal/models"
)

type probeOutput struct {
	Streams []struct {
		Width        int    `json:"width"`
		Height       int    `json:"height"`
		AvgFrameRate string `json:"avg_frame_rate"`
	} `json:"streams"`
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// probe reads container metadata with ffprobe. Metadata failures are not
// fatal: the pipeline can run without dimensions, so a zero-valued source is
// returned and the failure logged.
func (a *implAcquirer) probe(ctx context.Context, path string) *models.VideoSource {
	src := &models.VideoSource{Path: path}

	out, err := a.executor.Execute(ctx, "ffprobe",
		"-v", "error",
		"-select_streams", "v:0",
		"-show_entries", "stream=width,height,avg_frame_rate",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	)
	if err != nil {
		a.logger.Warn(ctx, "ffprobe failed for %s: %v", path, err)
		return src
	}

	var probed probeOutput
	if err := json.Unmarshal([]byte(out), &probed); err != nil {
		a.logger.Warn(ctx, "ffprobe output parse failed for %s: %v", path, err)
		return src
	}

	if d, err := strconv.ParseFloat(probed.Format.Duration, 64); err == nil {
		src.Duration = d
	}
	if len(probed.Streams) > 0 {
		s := probed.Streams[0]
		src.Width = s.Width
		src.Height = s.Height
		src.FrameRate = parseFrameRate(s.AvgFrameRate)
	}

	return src
}

// parseFrameRate converts ffprobe's fractional rate ("30000/1001") to a float.
func parseFrameRate(rate string) float64 {
	num, den, found := strings.Cut(rate, "/")
	if !found {
		f, _ := strconv.ParseFloat(rate, 64)
		return f
	}
	n, err1 := strconv.ParseFloat(num, 64)
	d, err2 := strconv.ParseFloat(den, 64)
	if err1 != nil || err2 != nil || d == 0 {
		return 0
	}
	return n / d
}
