// Package astro holds the closed-form solar formulas of the model:
// declination, the diurnal sun path, the sunlit fraction of a solar
// day, and the sunrise azimuth. The Sun moves on a circle with a fixed
// axial tilt; eccentricity, nutation and aberration are not modeled.
package astro

import (
	"math"

	"github.com/EdwinChan/celestial-sphere/vectors"
)

// EarthObliquity is Earth's axial tilt, radians.
const EarthObliquity = math.Pi / 180 * 23.4392811

// Declination returns the Sun's declination for an obliquity and a
// time of year measured as the mean orbital phase from the June
// solstice. The result is bounded by [-obliquity, obliquity].
func Declination(obliquity, timeOfYear float64) float64 {
	return math.Asin(math.Cos(timeOfYear) * math.Sin(obliquity))
}

// SunPath returns the diurnal circle the Sun traces in the observer's
// horizon frame at the given obliquity, time of year and latitude,
// sampled with n+1 points.
func SunPath(obliquity, timeOfYear, latitude float64, n int) vectors.Batch {
	d := Declination(obliquity, timeOfYear)
	sinL, cosL := math.Sincos(latitude)
	sinD, cosD := math.Sincos(d)
	out := vectors.NewBatch(n + 1)
	for i := 0; i <= n; i++ {
		p := -math.Pi + 2*math.Pi*float64(i)/float64(n)
		sinP, cosP := math.Sincos(p)
		out.X[i] = sinL*cosD*cosP + cosL*sinD
		out.Y[i] = cosD * sinP
		out.Z[i] = -cosL*cosD*cosP + sinL*sinD
	}
	return out
}

// hourAngleCos returns cos of the half-arc the Sun spends below the
// horizon, clamped so polar day and polar night saturate instead of
// leaving the inverse-trig domain.
func hourAngleCos(latitude, declination float64) float64 {
	return clamp(math.Tan(latitude)*math.Tan(declination), -1, 1)
}

// SunlitFraction returns the fraction of the solar day the Sun is
// above the horizon: 1 during polar day, 0 during polar night, 0.5
// everywhere on the equator.
func SunlitFraction(latitude, declination float64) float64 {
	f := hourAngleCos(latitude, declination)
	return 1 - math.Acos(f)/math.Pi
}

// SunriseAzimuth returns the clockwise angle from north at which the
// Sun crosses the horizon, in [0, pi].
func SunriseAzimuth(latitude, declination float64) float64 {
	f := hourAngleCos(latitude, declination)
	return math.Atan2(
		math.Sqrt(1-f*f),
		math.Sin(latitude)*f+math.Cos(latitude)*math.Tan(declination))
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
