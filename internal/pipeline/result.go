package pipeline

import (
	"image"

	"github.com/MeKo-Tech/snapocr/internal/ocr"
	"github.com/MeKo-Tech/snapocr/internal/theme"
)

// RunResult is the aggregate output of one pipeline execution. It is owned
// by the caller; every fragment it holds passed the configured confidence
// floor, lines are in top-to-bottom reading order, and the overlay has the
// dimensions of the scaled source image.
type RunResult struct {
	Theme     theme.Theme    `json:"theme"`
	Lines     []string       `json:"lines"`
	Fragments []ocr.Fragment `json:"fragments"`
	Overlay   *image.RGBA    `json:"-"`
	Summary   Summary        `json:"summary"`
}

// Summary condenses a run for display: the detected theme, how many
// fragments and lines survived filtering, and the mean confidence of the
// surviving fragments.
type Summary struct {
	Theme         theme.Theme `json:"theme"`
	Words         int         `json:"words"`
	Lines         int         `json:"lines"`
	AvgConfidence float64     `json:"avg_confidence"`
}

func summarize(res *RunResult) Summary {
	s := Summary{
		Theme: res.Theme,
		Words: len(res.Fragments),
		Lines: len(res.Lines),
	}
	if len(res.Fragments) > 0 {
		var sum float64
		for _, f := range res.Fragments {
			sum += f.Confidence
		}
		s.AvgConfidence = sum / float64(len(res.Fragments))
	}
	return s
}
