package scene_test

import (
	"math"
	"testing"

	"github.com/EdwinChan/celestial-sphere/astro"
	"github.com/EdwinChan/celestial-sphere/scene"
)

func TestInsolationChart(t *testing.T) {
	c := scene.InsolationChart(astro.EarthObliquity)

	if len(c.Series) != 6 {
		t.Fatalf("series: %d, want 6", len(c.Series))
	}
	wantLegends := []string{"lat 0", "lat 15", "lat 30", "lat 45", "lat 60", "lat 75"}
	for k, s := range c.Series {
		if s.Legend != wantLegends[k] {
			t.Errorf("series %d legend: %q, want %q", k, s.Legend, wantLegends[k])
		}
		if len(s.X) != 361 || len(s.Y) != 361 {
			t.Fatalf("series %d: %d x %d points, want 361", k, len(s.X), len(s.Y))
		}
		if math.Abs(s.X[0]+0.5) > 1e-12 || math.Abs(s.X[360]-0.5) > 1e-12 {
			t.Errorf("series %d x range [%v, %v], want [-0.5, 0.5]", k, s.X[0], s.X[360])
		}
		for i := range s.Y {
			if s.Y[i] < 0 || s.Y[i] > 1 {
				t.Fatalf("series %d point %d: fraction %v out of [0,1]", k, i, s.Y[i])
			}
			// declination is even in the orbital phase, so the year
			// is symmetric about the solstice
			if mirror := s.Y[360-i]; math.Abs(s.Y[i]-mirror) > 1e-9 {
				t.Fatalf("series %d point %d: %v vs mirrored %v", k, i, s.Y[i], mirror)
			}
		}
	}

	// the equator stays at half a day year-round
	for i, y := range c.Series[0].Y {
		if math.Abs(y-0.5) > 1e-12 {
			t.Fatalf("equator point %d: %v, want 0.5", i, y)
		}
	}

	// 75 degrees north saturates: polar day at the June solstice,
	// polar night at the December solstice
	high := c.Series[5]
	if math.Abs(high.Y[180]-1) > 1e-12 {
		t.Errorf("lat 75 at June solstice: %v, want 1", high.Y[180])
	}
	if math.Abs(high.Y[0]) > 1e-12 {
		t.Errorf("lat 75 at December solstice: %v, want 0", high.Y[0])
	}

	if c.Series[0].Color == c.Series[5].Color {
		t.Error("equator and polar series share a color")
	}
	if c.Title == "" || c.XLabel == "" || c.YLabel == "" {
		t.Error("chart is missing axis titles")
	}
}

func TestSunriseAzimuthChart(t *testing.T) {
	c := scene.SunriseAzimuthChart(astro.EarthObliquity)

	if len(c.Series) != 6 {
		t.Fatalf("series: %d, want 6", len(c.Series))
	}
	for k, s := range c.Series {
		for i, y := range s.Y {
			if y < 0 || y > math.Pi {
				t.Fatalf("series %d point %d: azimuth %v out of [0, pi]", k, i, y)
			}
		}
		// at the equinoxes the Sun rises due east everywhere
		if math.Abs(s.Y[90]-math.Pi/2) > 1e-9 || math.Abs(s.Y[270]-math.Pi/2) > 1e-9 {
			t.Errorf("series %d equinox azimuths %v, %v, want pi/2", k, s.Y[90], s.Y[270])
		}
	}

	// on the equator the sunrise azimuth is the co-declination
	equator := c.Series[0]
	if got, want := equator.Y[180], math.Pi/2-astro.EarthObliquity; math.Abs(got-want) > 1e-12 {
		t.Errorf("equator at June solstice: %v, want %v", got, want)
	}
}
