package scene

import (
	"fmt"
	"math"

	"github.com/EdwinChan/celestial-sphere/astro"
	"github.com/EdwinChan/celestial-sphere/colors"
)

// Series is one styled line of a 2D chart.
type Series struct {
	X, Y   []float64
	Color  colors.Color4
	Legend string
}

// Chart is a set of series over a common x range, with axis titles.
type Chart struct {
	Series []Series
	Title  string
	XLabel string
	YLabel string
}

// chartSamples is the resolution of the annual sweep, one point per
// degree of orbital phase.
const chartSamples = 361

// chartLatitudes is the number of latitude bands in the annual charts:
// the equator up to 75 degrees in 15-degree steps.
const chartLatitudes = 6

// latitudeColor grades the per-latitude lines from warm at the equator
// to cool near the pole, darkened a little to read against white.
func latitudeColor(f float64) colors.Color4 {
	return colors.Red().Mix(colors.Blue(), f).Scale(0.85).WithAlpha(1)
}

// annualChart sweeps the orbital phase over a full year for each
// latitude band and plots f(latitude, declination), with the x axis in
// fractions of a tropical year from the June solstice.
func annualChart(obliquity float64, f func(latitude, declination float64) float64) []Series {
	series := make([]Series, 0, chartLatitudes)
	for k := 0; k < chartLatitudes; k++ {
		latitude := math.Pi / 2 * float64(k) / chartLatitudes
		s := Series{
			X:      make([]float64, chartSamples),
			Y:      make([]float64, chartSamples),
			Color:  latitudeColor(float64(k) / (chartLatitudes - 1)),
			Legend: fmt.Sprintf("lat %.0f", latitude*180/math.Pi),
		}
		for i := range s.X {
			t := -math.Pi + 2*math.Pi*float64(i)/(chartSamples-1)
			s.X[i] = t / (2 * math.Pi)
			s.Y[i] = f(latitude, astro.Declination(obliquity, t))
		}
		series = append(series, s)
	}
	return series
}

// InsolationChart charts the sunlit fraction of the solar day over a
// year, one line per latitude band.
func InsolationChart(obliquity float64) Chart {
	return Chart{
		Series: annualChart(obliquity, astro.SunlitFraction),
		Title:  "annual variation of insolation for different latitudes",
		XLabel: "fraction of tropical year from June solstice",
		YLabel: "sunlit fraction of solar day",
	}
}

// SunriseAzimuthChart charts the azimuth at which the Sun rises over a
// year, one line per latitude band.
func SunriseAzimuthChart(obliquity float64) Chart {
	return Chart{
		Series: annualChart(obliquity, astro.SunriseAzimuth),
		Title:  "annual motion of the sunrise position for different latitudes",
		XLabel: "fraction of tropical year from June solstice",
		YLabel: "azimuth of sunrise (clockwise angle from north)",
	}
}
