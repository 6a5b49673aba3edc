package ocean

import "fmt"

// Kind identifies a measured ocean quantity.
type Kind string

const (
	Temperature Kind = "temperature"
	Salinity    Kind = "salinity"
	PH          Kind = "ph"
	Oxygen      Kind = "oxygen"
)

// Kinds lists every measurement kind in display order.
var Kinds = []Kind{Temperature, Salinity, PH, Oxygen}

// Band is the closed-open interval simulated readings are drawn from.
type Band struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Spec describes how a kind is simulated and displayed.
type Spec struct {
	Kind      Kind
	SurfaceID string
	Label     string
	Color     string
	Unit      string
	Band      Band
	Initial   []float64
}

var specs = map[Kind]Spec{
	Temperature: {
		Kind:      Temperature,
		SurfaceID: "temperatureChart",
		Label:     "Temperature (°C)",
		Color:     "#0891b2",
		Unit:      "°C",
		Band:      Band{Min: 23.0, Max: 26.0},
		Initial:   []float64{24.5, 23.8, 25.2, 24.1, 23.9, 24.7},
	},
	Salinity: {
		Kind:      Salinity,
		SurfaceID: "salinityChart",
		Label:     "Salinity (PSU)",
		Color:     "#06b6d4",
		Unit:      " PSU",
		Band:      Band{Min: 34.5, Max: 35.5},
		Initial:   []float64{35.2, 35.1, 35.3, 35.0, 35.4, 35.2},
	},
	PH: {
		Kind:      PH,
		SurfaceID: "phChart",
		Label:     "pH Level",
		Color:     "#0ea5e9",
		Band:      Band{Min: 7.8, Max: 8.4},
		Initial:   []float64{8.1, 8.0, 8.2, 8.1, 8.0, 8.1},
	},
	Oxygen: {
		Kind:      Oxygen,
		SurfaceID: "oxygenChart",
		Label:     "Dissolved Oxygen (mg/L)",
		Color:     "#22d3ee",
		Unit:      " mg/L",
		Band:      Band{Min: 6.0, Max: 7.5},
		Initial:   []float64{6.5, 6.3, 6.8, 6.4, 6.6, 6.7},
	},
}

// SpecFor returns the display and simulation parameters of k.
func SpecFor(k Kind) (Spec, bool) {
	s, ok := specs[k]
	return s, ok
}

// ParseKind validates a kind name.
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if _, ok := specs[k]; !ok {
		return "", fmt.Errorf("unknown measurement kind %q", s)
	}
	return k, nil
}

// Reading is one simulated value per kind.
type Reading struct {
	Temperature float64 `json:"temperature"`
	Salinity    float64 `json:"salinity"`
	PH          float64 `json:"ph"`
	Oxygen      float64 `json:"oxygen"`
}

// Value returns the reading for k.
func (r Reading) Value(k Kind) float64 {
	switch k {
	case Temperature:
		return r.Temperature
	case Salinity:
		return r.Salinity
	case PH:
		return r.PH
	case Oxygen:
		return r.Oxygen
	}
	return 0
}

// Format renders the reading for k as a current-reading label, e.g.
// "24.1°C", "35.0 PSU", "8.1" or "6.5 mg/L".
func (r Reading) Format(k Kind) string {
	return fmt.Sprintf("%.1f%s", r.Value(k), specs[k].Unit)
}
