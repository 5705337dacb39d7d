// Package lines clusters detected text fragments into reading-order lines:
// top-to-bottom, left-to-right, the way an editor would lay them out.
package lines

import (
	"math"
	"sort"
	"strings"

	"github.com/MeKo-Tech/snapocr/internal/ocr"
)

// Empirically tuned clustering constants. They are defaults rather than
// invariants; a recognition engine with a different fragment granularity
// may need different values.
const (
	baseTolerance = 18.0 // vertical tolerance in pixels at the reference scale
	refScale      = 2.5  // upscale factor the base tolerance was tuned at
	minScaleRatio = 0.6  // floor for the tolerance when scale is small
)

// Config controls the vertical clustering behavior.
type Config struct {
	// YTol is the maximum distance in pixels (at the upscaled resolution)
	// between a fragment's vertical center and a cluster's running center
	// for the fragment to join that cluster.
	YTol float64

	// Smoothing is the weight of a new fragment's center when updating a
	// cluster's running center. The complement dampens the estimate so a
	// single outlier fragment cannot drag the whole line, while genuine
	// line drift is still tracked.
	Smoothing float64
}

// DefaultConfig returns the tuned clustering defaults.
func DefaultConfig() Config {
	return Config{YTol: baseTolerance, Smoothing: 0.3}
}

// ToleranceForScale derives the vertical tolerance for a given upscale
// factor: larger effective resolution means proportionally larger vertical
// spacing between lines.
func ToleranceForScale(scale float64) float64 {
	return baseTolerance * math.Max(scale/refScale, minScaleRatio)
}

type member struct {
	x    float64
	text string
}

type cluster struct {
	center  float64
	members []member
}

// Reconstruct groups fragments into ordered line strings. Fragments are
// sorted by (top, left) so every fragment is only ever compared against
// clusters opened at or above its level; assignment is first-match within
// YTol, a deliberate stability/determinism trade-off over globally optimal
// clustering. Cluster open order equals top-to-bottom visual order, and
// within a line members are sorted left-to-right and joined by a single
// space. An empty input yields an empty output.
func Reconstruct(frags []ocr.Fragment, cfg Config) []string {
	type item struct {
		y1, cy, x1 float64
		text       string
	}

	items := make([]item, 0, len(frags))
	for _, f := range frags {
		b := f.Bounds()
		items = append(items, item{y1: b.MinY, cy: b.CenterY(), x1: b.MinX, text: f.Text})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].y1 == items[j].y1 {
			return items[i].x1 < items[j].x1
		}
		return items[i].y1 < items[j].y1
	})

	var clusters []*cluster
	for _, it := range items {
		placed := false
		for _, c := range clusters {
			if math.Abs(it.cy-c.center) <= cfg.YTol {
				c.members = append(c.members, member{x: it.x1, text: it.text})
				c.center = (1-cfg.Smoothing)*c.center + cfg.Smoothing*it.cy
				placed = true
				break
			}
		}
		if !placed {
			clusters = append(clusters, &cluster{
				center:  it.cy,
				members: []member{{x: it.x1, text: it.text}},
			})
		}
	}

	out := make([]string, 0, len(clusters))
	for _, c := range clusters {
		sort.SliceStable(c.members, func(i, j int) bool { return c.members[i].x < c.members[j].x })
		parts := make([]string, len(c.members))
		for i, m := range c.members {
			parts[i] = m.text
		}
		out = append(out, strings.TrimRight(strings.Join(parts, " "), " \t"))
	}
	return out
}
