package ocean

// Series is a fixed-length sliding window of samples, oldest first.
type Series struct {
	values []float64
}

// NewSeries creates a window holding a copy of initial. The window length
// is fixed to len(initial) for the lifetime of the series.
func NewSeries(initial ...float64) *Series {
	v := make([]float64, len(initial))
	copy(v, initial)
	return &Series{values: v}
}

// Len returns the window length.
func (s *Series) Len() int { return len(s.values) }

// Push drops the oldest sample and appends v. A zero-length window stays empty.
func (s *Series) Push(v float64) {
	if len(s.values) == 0 {
		return
	}
	copy(s.values, s.values[1:])
	s.values[len(s.values)-1] = v
}

// Values returns a copy of the window, oldest first.
func (s *Series) Values() []float64 {
	out := make([]float64, len(s.values))
	copy(out, s.values)
	return out
}

// Latest returns the newest sample, or false for an empty window.
func (s *Series) Latest() (float64, bool) {
	if len(s.values) == 0 {
		return 0, false
	}
	return s.values[len(s.values)-1], true
}
