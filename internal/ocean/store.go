package ocean

import (
	"math/rand/v2"
)

// Store holds the sliding window of every measurement kind.
type Store struct {
	Temperature *Series
	Salinity    *Series
	PH          *Series
	Oxygen      *Series
}

// NewStore creates a store seeded with the built-in initial windows.
func NewStore() *Store {
	return &Store{
		Temperature: NewSeries(specs[Temperature].Initial...),
		Salinity:    NewSeries(specs[Salinity].Initial...),
		PH:          NewSeries(specs[PH].Initial...),
		Oxygen:      NewSeries(specs[Oxygen].Initial...),
	}
}

// Series returns the window of k, or nil for an unknown kind.
func (s *Store) Series(k Kind) *Series {
	switch k {
	case Temperature:
		return s.Temperature
	case Salinity:
		return s.Salinity
	case PH:
		return s.PH
	case Oxygen:
		return s.Oxygen
	}
	return nil
}

// Push appends one reading to every window.
func (s *Store) Push(r Reading) {
	for _, k := range Kinds {
		s.Series(k).Push(r.Value(k))
	}
}

// Latest returns the newest value of every window as a Reading.
func (s *Store) Latest() Reading {
	var r Reading
	r.Temperature, _ = s.Temperature.Latest()
	r.Salinity, _ = s.Salinity.Latest()
	r.PH, _ = s.PH.Latest()
	r.Oxygen, _ = s.Oxygen.Latest()
	return r
}

// Sampler draws simulated readings from a seedable random source.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler using src.
func NewSampler(src rand.Source) *Sampler {
	return &Sampler{rng: rand.New(src)}
}

// NewSeededSampler creates a sampler with a deterministic PCG source.
func NewSeededSampler(seed uint64) *Sampler {
	return NewSampler(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Draw returns a uniform value in b.
func (sm *Sampler) Draw(b Band) float64 {
	return b.Min + sm.rng.Float64()*(b.Max-b.Min)
}

// Sample draws one reading per kind from its band.
func (sm *Sampler) Sample() Reading {
	return Reading{
		Temperature: sm.Draw(specs[Temperature].Band),
		Salinity:    sm.Draw(specs[Salinity].Band),
		PH:          sm.Draw(specs[PH].Band),
		Oxygen:      sm.Draw(specs[Oxygen].Band),
	}
}

// Resample draws a new reading and slides it into every window of store.
func Resample(store *Store, sampler *Sampler) Reading {
	r := sampler.Sample()
	store.Push(r)
	return r
}
