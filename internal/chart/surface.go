package chart

import (
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"sort"
	"sync"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrDuplicateSurface is returned when a surface ID is registered twice.
var ErrDuplicateSurface = errors.New("chart: duplicate surface")

// Surface is a fixed-size RGBA bitmap addressed by a stable ID.
type Surface struct {
	id    string
	mu    sync.RWMutex
	img   *image.RGBA
	label string
}

// NewSurface creates a transparent surface that belongs to no board.
func NewSurface(id string, width, height int) (*Surface, error) {
	if id == "" {
		return nil, fmt.Errorf("chart: surface id is required")
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("chart: invalid surface size %dx%d", width, height)
	}
	return &Surface{id: id, img: image.NewRGBA(image.Rect(0, 0, width, height))}, nil
}

// ID returns the surface identifier.
func (s *Surface) ID() string { return s.id }

// Width returns the surface width in pixels.
func (s *Surface) Width() int { return s.img.Bounds().Dx() }

// Height returns the surface height in pixels.
func (s *Surface) Height() int { return s.img.Bounds().Dy() }

// Label returns the label of the series last drawn into the surface.
func (s *Surface) Label() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.label
}

// Snapshot returns a copy of the current pixels.
func (s *Surface) Snapshot() *image.RGBA {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cp := image.NewRGBA(s.img.Bounds())
	copy(cp.Pix, s.img.Pix)
	return cp
}

// EncodePNG writes the current frame as PNG.
func (s *Surface) EncodePNG(w io.Writer) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("encoding surface %s: %w", s.id, err)
	}
	return nil
}

// Board owns a set of named surfaces.
type Board struct {
	mu       sync.RWMutex
	surfaces map[string]*Surface
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{surfaces: make(map[string]*Surface)}
}

// Add registers a new transparent surface of the given size.
func (b *Board) Add(id string, width, height int) (*Surface, error) {
	s, err := NewSurface(id, width, height)
	if err != nil {
		return nil, err
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.surfaces[id]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateSurface, id)
	}
	b.surfaces[id] = s
	return s, nil
}

// Lookup resolves a surface ID.
func (b *Board) Lookup(id string) (*Surface, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	s, ok := b.surfaces[id]
	return s, ok
}

// IDs returns all surface IDs in lexical order.
func (b *Board) IDs() []string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	ids := make([]string, 0, len(b.surfaces))
	for id := range b.surfaces {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Match returns the IDs matching a doublestar glob such as "*Chart" or
// "{ph,oxygen}Chart", in lexical order.
func (b *Board) Match(pattern string) ([]string, error) {
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("chart: invalid pattern %q", pattern)
	}
	var out []string
	for _, id := range b.IDs() {
		if ok, _ := doublestar.Match(pattern, id); ok {
			out = append(out, id)
		}
	}
	return out, nil
}
