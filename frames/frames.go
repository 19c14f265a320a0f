// Package frames relates the observer/horizon, equatorial (inertial)
// and ecliptic reference frames of the celestial sphere. A Parameters
// snapshot fixes the geometry; the transform methods carry vectors and
// curve batches between frames by composing axis rotations, never by
// pre-multiplied matrices, so each step keeps its frame meaning.
package frames

import (
	"errors"
	"math"
)

var (
	// ErrInvalidViewMode is returned when an unrecognized view mode
	// reaches the transform pipeline.
	ErrInvalidViewMode = errors.New("frames: invalid view mode")

	// ErrInvalidDayMode is returned when an unrecognized day mode
	// reaches the transform pipeline.
	ErrInvalidDayMode = errors.New("frames: invalid day mode")

	// ErrInvalidFrame is returned when a tagged vector carries an
	// unrecognized frame tag.
	ErrInvalidFrame = errors.New("frames: invalid frame tag")
)

// ViewMode selects the frame the scene is ultimately expressed in.
type ViewMode int

const (
	ViewEcliptic ViewMode = iota
	ViewEquator
	ViewHorizon
)

// Cycle returns the next view mode, wrapping around the closed set.
func (m ViewMode) Cycle() ViewMode {
	switch m {
	case ViewEcliptic:
		return ViewEquator
	case ViewEquator:
		return ViewHorizon
	default:
		return ViewEcliptic
	}
}

func (m ViewMode) String() string {
	switch m {
	case ViewEcliptic:
		return "ecliptic"
	case ViewEquator:
		return "equator"
	case ViewHorizon:
		return "horizon"
	default:
		return "invalid"
	}
}

// ParseViewMode converts a mode name to a ViewMode.
func ParseViewMode(s string) (ViewMode, error) {
	switch s {
	case "ecliptic":
		return ViewEcliptic, nil
	case "equator":
		return ViewEquator, nil
	case "horizon":
		return ViewHorizon, nil
	default:
		return 0, ErrInvalidViewMode
	}
}

// DayMode selects whether time of day is counted against the stars or
// against the mean Sun. On a solar-day clock the mean Sun stays fixed
// relative to the observer's noon meridian.
type DayMode int

const (
	DaySidereal DayMode = iota
	DaySolar
)

// Cycle returns the next day mode, wrapping around the closed set.
func (m DayMode) Cycle() DayMode {
	if m == DaySidereal {
		return DaySolar
	}
	return DaySidereal
}

func (m DayMode) String() string {
	switch m {
	case DaySidereal:
		return "sidereal"
	case DaySolar:
		return "solar"
	default:
		return "invalid"
	}
}

// ParseDayMode converts a mode name to a DayMode.
func ParseDayMode(s string) (DayMode, error) {
	switch s {
	case "sidereal":
		return DaySidereal, nil
	case "solar":
		return DaySolar, nil
	default:
		return 0, ErrInvalidDayMode
	}
}

// Parameters is an immutable snapshot of the scalar state driving the
// transform pipeline. The interactive owner mutates its own copy and
// passes a fresh value into every computation; nothing here is retained.
type Parameters struct {
	Obliquity  float64 // radians, [0, pi]
	Latitude   float64 // radians, [-pi/2, pi/2]
	TimeOfDay  float64 // radians, [-pi, pi], rotation phase
	TimeOfYear float64 // radians, [-pi, pi], mean orbital phase
	Day        DayMode
	View       ViewMode
}

// Colatitude returns pi/2 - latitude.
func (p Parameters) Colatitude() float64 {
	return math.Pi/2 - p.Latitude
}

// Valid reports the first mode error in p, if any.
func (p Parameters) Valid() error {
	if p.Day != DaySidereal && p.Day != DaySolar {
		return ErrInvalidDayMode
	}
	switch p.View {
	case ViewEcliptic, ViewEquator, ViewHorizon:
		return nil
	default:
		return ErrInvalidViewMode
	}
}
