package facts

import (
	"math/rand/v2"
	"sync"
)

// Rotator shows one fact at a time, replacing it with a random pick on
// every Next call. The same fact may be picked twice in a row.
type Rotator struct {
	mu      sync.Mutex
	facts   []string
	rng     *rand.Rand
	current int
}

// NewRotator creates a rotator over facts starting with the first one.
func NewRotator(facts []string, src rand.Source) *Rotator {
	return &Rotator{facts: facts, rng: rand.New(src)}
}

// Current returns the fact on display, or "" when there are none.
func (r *Rotator) Current() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.facts) == 0 {
		return ""
	}
	return r.facts[r.current]
}

// Next picks a random fact and returns it.
func (r *Rotator) Next() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.facts) == 0 {
		return ""
	}
	r.current = r.rng.IntN(len(r.facts))
	return r.facts[r.current]
}

// Carousel cycles through gallery slides in order, exactly one active.
type Carousel struct {
	mu     sync.Mutex
	slides []Slide
	active int
}

// NewCarousel creates a carousel with the first slide active.
func NewCarousel(slides []Slide) *Carousel {
	return &Carousel{slides: slides}
}

// Active returns the index and content of the active slide. ok is false
// for an empty carousel.
func (c *Carousel) Active() (int, Slide, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return 0, Slide{}, false
	}
	return c.active, c.slides[c.active], true
}

// Advance deactivates the current slide and activates the next one,
// wrapping around after the last.
func (c *Carousel) Advance() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.slides) == 0 {
		return 0
	}
	c.active = (c.active + 1) % len(c.slides)
	return c.active
}

// Len returns the number of slides.
func (c *Carousel) Len() int { return len(c.slides) }
