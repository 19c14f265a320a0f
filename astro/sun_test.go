package astro_test

import (
	"math"
	"testing"

	"github.com/EdwinChan/celestial-sphere/astro"
)

const deg = math.Pi / 180

func TestDeclinationExtremes(t *testing.T) {
	o := astro.EarthObliquity
	tests := []struct {
		name       string
		timeOfYear float64
		want       float64
	}{
		{"June solstice", 0, o},
		{"December solstice", math.Pi, -o},
		{"equinox", math.Pi / 2, 0},
		{"equinox (other)", -math.Pi / 2, 0},
	}
	for _, tt := range tests {
		got := astro.Declination(o, tt.timeOfYear)
		if math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: Declination = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestDeclinationBoundedByObliquity(t *testing.T) {
	for _, o := range []float64{0, 0.1, astro.EarthObliquity, 1.2} {
		for k := 0; k <= 360; k++ {
			ty := -math.Pi + 2*math.Pi*float64(k)/360
			if d := astro.Declination(o, ty); math.Abs(d) > o+1e-12 {
				t.Fatalf("Declination(%v, %v) = %v exceeds obliquity", o, ty, d)
			}
		}
	}
}

func TestSunlitFractionEquator(t *testing.T) {
	for _, d := range []float64{-astro.EarthObliquity, -0.1, 0, 0.2, astro.EarthObliquity} {
		if got := astro.SunlitFraction(0, d); math.Abs(got-0.5) > 1e-12 {
			t.Errorf("SunlitFraction(0, %v) = %v, want 0.5", d, got)
		}
	}
}

func TestSunlitFractionPolarSaturation(t *testing.T) {
	tests := []struct {
		name     string
		lat, dec float64
		want     float64
	}{
		{"polar day", 80 * deg, 23 * deg, 1},
		{"polar night", 80 * deg, -23 * deg, 0},
		{"southern polar day", -80 * deg, -23 * deg, 1},
		{"southern polar night", -80 * deg, 23 * deg, 0},
	}
	for _, tt := range tests {
		if got := astro.SunlitFraction(tt.lat, tt.dec); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s: SunlitFraction(%v, %v) = %v, want %v",
				tt.name, tt.lat, tt.dec, got, tt.want)
		}
	}
}

func TestSunlitFractionSeasons(t *testing.T) {
	// Mid-northern latitude: long days in June, short in December.
	lat := 40 * deg
	june := astro.SunlitFraction(lat, astro.EarthObliquity)
	december := astro.SunlitFraction(lat, -astro.EarthObliquity)
	if june <= 0.5 || december >= 0.5 {
		t.Errorf("seasons inverted: june %v, december %v", june, december)
	}
	if math.Abs(june+december-1) > 1e-12 {
		t.Errorf("solstice fractions should mirror around 0.5: %v + %v", june, december)
	}
}

func TestSunriseAzimuthScenario(t *testing.T) {
	// June solstice at 40 degrees north, checked against the
	// independent rising-azimuth identity cos(A) = sin(dec)/cos(lat).
	o := 23.4392811 * deg
	d := astro.Declination(o, 0)
	if math.Abs(d-o) > 1e-9 {
		t.Fatalf("solstice declination = %v, want %v", d, o)
	}

	lat := 40 * deg
	got := astro.SunriseAzimuth(lat, d)
	want := math.Acos(math.Sin(d) / math.Cos(lat))
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("SunriseAzimuth = %.12f, want %.12f", got, want)
	}
	// north of east in June
	if got >= math.Pi/2 {
		t.Errorf("June sunrise azimuth %v should be north of east", got)
	}
}

func TestSunriseAzimuthRangeAndEquinox(t *testing.T) {
	for _, lat := range []float64{-80 * deg, -40 * deg, 0, 40 * deg, 80 * deg} {
		for _, dec := range []float64{-23 * deg, -5 * deg, 0, 5 * deg, 23 * deg} {
			a := astro.SunriseAzimuth(lat, dec)
			if a < 0 || a > math.Pi {
				t.Fatalf("SunriseAzimuth(%v, %v) = %v out of [0, pi]", lat, dec, a)
			}
		}
		// at the equinoxes the Sun rises due east everywhere
		if a := astro.SunriseAzimuth(lat, 0); math.Abs(a-math.Pi/2) > 1e-12 {
			t.Errorf("equinox sunrise at lat %v: azimuth %v, want pi/2", lat, a)
		}
	}
}

func TestSunPathOnUnitSphere(t *testing.T) {
	const n = 100
	path := astro.SunPath(astro.EarthObliquity, 0.7, 40*deg, n)
	if path.Len() != n+1 {
		t.Fatalf("SunPath: %d points, want %d", path.Len(), n+1)
	}
	for i := 0; i < path.Len(); i++ {
		if norm := path.At(i).Norm(); math.Abs(norm-1) > 1e-12 {
			t.Fatalf("SunPath point %d: norm %v", i, norm)
		}
	}
	if path.At(0).Sub(path.At(path.Len() - 1)).Norm() > 1e-9 {
		t.Errorf("SunPath should close on itself")
	}
}

func TestSunPathCulmination(t *testing.T) {
	// At p = 0 the path passes through its lowest point, and the
	// culmination altitude matches 90 - lat + dec degrees at p = +-pi.
	lat := 40 * deg
	o := astro.EarthObliquity
	path := astro.SunPath(o, 0, lat, 100)
	d := astro.Declination(o, 0)

	low := path.At(50) // p = 0
	wantLowZ := -math.Cos(lat)*math.Cos(d) + math.Sin(lat)*math.Sin(d)
	if math.Abs(low.Z-wantLowZ) > 1e-12 {
		t.Errorf("midnight altitude: z = %v, want %v", low.Z, wantLowZ)
	}

	high := path.At(0) // p = -pi
	wantHighZ := math.Sin(math.Pi/2 - lat + d)
	if math.Abs(high.Z-wantHighZ) > 1e-9 {
		t.Errorf("culmination altitude: z = %v, want %v", high.Z, wantHighZ)
	}
}
