package chart

import (
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/sirupsen/logrus"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

var (
	gridColor  = color.NRGBA{R: 255, G: 255, B: 255, A: 26}
	labelColor = color.NRGBA{R: 255, G: 255, B: 255, A: 204}
)

const (
	gridLineWidth   = 1.0
	seriesLineWidth = 3.0
	markerRadius    = 4.0
	labelOffset     = 10.0
)

// Renderer draws line charts into the surfaces of a board. It keeps no
// state between calls.
type Renderer struct {
	board   *Board
	padding float64
	face    font.Face
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPadding overrides DefaultPadding.
func WithPadding(p float64) Option {
	return func(r *Renderer) { r.padding = p }
}

// NewRenderer creates a renderer drawing into board.
func NewRenderer(board *Board, opts ...Option) *Renderer {
	r := &Renderer{
		board:   board,
		padding: DefaultPadding,
		face:    basicfont.Face7x13,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Board returns the board the renderer draws into.
func (r *Renderer) Board() *Board { return r.board }

// Render clears the named surface and draws samples into it as a line
// chart in the given color ("#rrggbb"). An unknown surface or an invalid
// sample set makes the call a no-op.
func (r *Renderer) Render(surfaceID, label string, samples []float64, hexColor string) {
	s, ok := r.board.Lookup(surfaceID)
	if !ok {
		return
	}
	if err := r.Draw(s, label, samples, hexColor); err != nil {
		logrus.WithField("surface", surfaceID).Debugf("chart: skipped render: %v", err)
	}
}

// Draw renders directly into s and reports invalid input.
func (r *Renderer) Draw(s *Surface, label string, samples []float64, hexColor string) error {
	l, err := Compute(samples, s.Width(), s.Height(), r.padding)
	if err != nil {
		return fmt.Errorf("layout for %s: %w", s.id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dc := gg.NewContextForRGBA(s.img)
	dc.SetColor(color.Transparent)
	dc.Clear()

	r.drawGrid(dc, l)
	r.drawSeries(dc, l, hexColor)
	r.drawLabels(dc, l)

	s.label = label
	return nil
}

func (r *Renderer) drawGrid(dc *gg.Context, l Layout) {
	dc.SetColor(gridColor)
	dc.SetLineWidth(gridLineWidth)
	for _, y := range l.HorizontalGrid {
		dc.MoveTo(l.Padding, y)
		dc.LineTo(l.Width-l.Padding, y)
		dc.Stroke()
	}
	for _, x := range l.VerticalGrid {
		dc.MoveTo(x, l.Padding)
		dc.LineTo(x, l.Height-l.Padding)
		dc.Stroke()
	}
}

func (r *Renderer) drawSeries(dc *gg.Context, l Layout, hexColor string) {
	dc.SetHexColor(hexColor)
	dc.SetLineWidth(seriesLineWidth)
	for i, p := range l.Points {
		if i == 0 {
			dc.MoveTo(p.X, p.Y)
			continue
		}
		dc.LineTo(p.X, p.Y)
	}
	dc.Stroke()

	for _, p := range l.Points {
		dc.DrawCircle(p.X, p.Y, markerRadius)
		dc.Fill()
	}
}

func (r *Renderer) drawLabels(dc *gg.Context, l Layout) {
	dc.SetFontFace(r.face)
	dc.SetColor(labelColor)
	for _, p := range l.Points {
		dc.DrawStringAnchored(FormatValue(p.Value), p.X, p.Y-labelOffset, 0.5, 0)
	}
}

// FormatValue formats a sample the way chart labels show it.
func FormatValue(v float64) string {
	// Avoid printing "-0.0" for tiny negative values.
	if math.Abs(v) < 0.05 {
		v = 0
	}
	return fmt.Sprintf("%.1f", v)
}
