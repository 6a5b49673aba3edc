// Package effects models the decorative animations of the site: stat
// counters that count up to their target and the drifting background
// particles.
package effects

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Counter animation defaults.
const (
	DefaultCounterDuration = 2 * time.Second
	DefaultFrameInterval   = 16 * time.Millisecond
)

// Stat is a headline number that animates from zero when scrolled into
// view.
type Stat struct {
	Label  string `json:"label"`
	Target int64  `json:"target"`
	Suffix string `json:"suffix,omitempty"`
}

// Stats are the headline numbers of the landing page.
var Stats = []Stat{
	{Label: "ARGO Floats Tracked", Target: 3900},
	{Label: "Ocean Measurements", Target: 2500000, Suffix: "+"},
	{Label: "Research Institutions", Target: 150, Suffix: "+"},
	{Label: "Years of Data", Target: 25},
}

// CounterFrames returns the value shown on every frame of a counter
// animation. Each frame adds target/(duration/frame) to a running total,
// clamps it at target and floors it, so the last frame always equals
// target. A non-positive target yields the single frame target.
func CounterFrames(target int64, duration, frame time.Duration) []int64 {
	if target <= 0 || duration <= 0 || frame <= 0 {
		return []int64{target}
	}
	step := float64(target) / (float64(duration) / float64(frame))
	if step <= 0 {
		return []int64{target}
	}

	var frames []int64
	current := 0.0
	for {
		current += step
		if current >= float64(target) {
			frames = append(frames, target)
			return frames
		}
		frames = append(frames, int64(math.Floor(current)))
	}
}

// FormatCount renders n with thousands separators.
func FormatCount(n int64) string {
	return humanize.Comma(n)
}
