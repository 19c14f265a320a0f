package astro

import (
	"math"
	"time"

	"github.com/EdwinChan/celestial-sphere/frames"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/sidereal"
	"github.com/soniakeys/meeus/v3/solar"
)

// DefaultParameters returns the canonical starting snapshot: Earth's
// obliquity, a mid-northern observer, both time angles at the June
// solstice / upper culmination.
func DefaultParameters() frames.Parameters {
	return frames.Parameters{
		Obliquity: EarthObliquity,
		Latitude:  math.Pi / 180 * 40,
		Day:       frames.DaySidereal,
		View:      frames.ViewEcliptic,
	}
}

// ParametersAt derives the mean frame angles for a wall-clock instant
// and an observer at the given latitude and east longitude (radians).
//
// Time of year is the Sun's ecliptic longitude measured from the June
// solstice direction; time of day comes from the local sidereal angle,
// with the orbital phase subtracted out on a solar-day clock. Both are
// mean angles: the snapshot places the mean Sun, not the true one,
// consistent with the circular-orbit model.
func ParametersAt(t time.Time, latitude, longitude float64, day frames.DayMode) (frames.Parameters, error) {
	jd := julian.TimeToJD(t.UTC())

	// Apparent RA/Dec of the Sun, then its ecliptic longitude under
	// the fixed mean obliquity.
	ra, dec := solar.ApparentEquatorial(jd)
	sinE, cosE := math.Sincos(EarthObliquity)
	lambda := math.Atan2(ra.Sin()*cosE+dec.Tan()*sinE, ra.Cos())
	timeOfYear := wrapAngle(lambda - math.Pi/2)

	// Local sidereal rotation angle; the frame's zero meridian sits a
	// quarter turn behind the vernal equinox (RA 6h lies along +x).
	gmst := sidereal.Apparent0UT(jd)
	theta := wrapAngle(gmst.Angle().Rad() + longitude - math.Pi/2)

	var timeOfDay float64
	switch day {
	case frames.DaySidereal:
		timeOfDay = theta
	case frames.DaySolar:
		timeOfDay = wrapAngle(theta - timeOfYear)
	default:
		return frames.Parameters{}, frames.ErrInvalidDayMode
	}

	return frames.Parameters{
		Obliquity:  EarthObliquity,
		Latitude:   latitude,
		TimeOfDay:  timeOfDay,
		TimeOfYear: timeOfYear,
		Day:        day,
		View:       frames.ViewEcliptic,
	}, nil
}

// wrapAngle maps an angle into [-pi, pi].
func wrapAngle(a float64) float64 {
	a = math.Mod(a+math.Pi, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	return a - math.Pi
}
