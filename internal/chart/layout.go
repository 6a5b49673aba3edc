package chart

import (
	"errors"
	"math"
)

// DefaultPadding is the margin kept free on every side of a surface.
const DefaultPadding = 40.0

// horizontalDivisions is the number of equal bands between horizontal grid lines.
const horizontalDivisions = 5

// headroom is the fraction added above the maximum and below the minimum
// sample so that markers never touch the plot border.
const headroom = 0.1

var (
	// ErrNoSamples is returned when a layout is requested for an empty series.
	ErrNoSamples = errors.New("chart: no samples")

	// ErrNonFinite is returned when a series contains NaN or an infinity.
	ErrNonFinite = errors.New("chart: non-finite sample")

	// ErrNonFiniteLayout is returned when the surface size or padding maps a
	// sample outside the float64 range.
	ErrNonFiniteLayout = errors.New("chart: non-finite coordinate")
)

// Point is a sample mapped into surface coordinates.
type Point struct {
	X     float64
	Y     float64
	Value float64
}

// Layout is the geometry of one chart frame.
type Layout struct {
	Width   float64
	Height  float64
	Padding float64

	// MinValue and MaxValue bound the plotted value band (data extremes
	// widened by the headroom fraction).
	MinValue float64
	MaxValue float64

	// HorizontalGrid holds the y coordinate of each horizontal grid line,
	// VerticalGrid the x coordinate of each vertical one.
	HorizontalGrid []float64
	VerticalGrid   []float64

	Points []Point
}

// DrawableWidth is the surface width minus the padding on both sides.
func (l Layout) DrawableWidth() float64 { return l.Width - 2*l.Padding }

// DrawableHeight is the surface height minus the padding on both sides.
func (l Layout) DrawableHeight() float64 { return l.Height - 2*l.Padding }

// ValueRange is the span of the plotted value band. It is +Inf for bands
// wider than the float64 range; Compute does not rely on it.
func (l Layout) ValueRange() float64 { return l.MaxValue - l.MinValue }

// Compute maps samples onto a width x height surface.
//
// A single sample is placed on the horizontal centre of the drawable area.
// When the value band collapses to zero (every sample is 0) all points are
// placed on the vertical centre line.
func Compute(samples []float64, width, height int, padding float64) (Layout, error) {
	if len(samples) == 0 {
		return Layout{}, ErrNoSamples
	}
	lo, hi := samples[0], samples[0]
	for _, v := range samples {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Layout{}, ErrNonFinite
		}
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	l := Layout{
		Width:    float64(width),
		Height:   float64(height),
		Padding:  padding,
		MaxValue: clampFinite(hi + math.Abs(hi)*headroom),
		MinValue: clampFinite(lo - math.Abs(lo)*headroom),
	}

	dw, dh := l.DrawableWidth(), l.DrawableHeight()
	for k := 0; k <= horizontalDivisions; k++ {
		l.HorizontalGrid = append(l.HorizontalGrid, padding+(dh/horizontalDivisions)*float64(k))
	}

	n := len(samples)
	// Halved so that bands close to the float64 limits do not overflow.
	halfRange := l.MaxValue/2 - l.MinValue/2
	l.Points = make([]Point, n)
	l.VerticalGrid = make([]float64, n)
	for i, v := range samples {
		x := padding + dw/2
		if n > 1 {
			x = padding + (dw/float64(n-1))*float64(i)
		}
		y := l.Height - padding - dh/2
		if halfRange > 0 {
			y = (l.Height - padding) - ((v/2-l.MinValue/2)/halfRange)*dh
		}
		if !finite(x) || !finite(y) {
			return Layout{}, ErrNonFiniteLayout
		}
		l.Points[i] = Point{X: x, Y: y, Value: v}
		l.VerticalGrid[i] = x
	}
	for _, g := range l.HorizontalGrid {
		if !finite(g) {
			return Layout{}, ErrNonFiniteLayout
		}
	}
	return l, nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// clampFinite pulls an overflowed band edge back to the largest float64.
func clampFinite(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}
