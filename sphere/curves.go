// Package sphere generates discretized curves on the unit sphere:
// meridians, parallels, and wireframe globes built from both.
package sphere

import (
	"errors"
	"math"

	"github.com/EdwinChan/celestial-sphere/vectors"
)

// DefaultSamples is the curve resolution used when callers have no
// reason to pick another one.
const DefaultSamples = 100

// ErrInvalidGridSize is returned by Globe for negative subdivision counts.
var ErrInvalidGridSize = errors.New("sphere: grid subdivision counts must be non-negative")

// Meridian samples n+1 points along colatitude q in [-pi, pi] at fixed
// longitude lon. The symmetric sweep covers the great circle twice over
// the poles, so the curve closes on itself.
func Meridian(lon float64, n int) vectors.Batch {
	sinLon, cosLon := math.Sin(lon), math.Cos(lon)
	out := vectors.NewBatch(n + 1)
	for i := 0; i <= n; i++ {
		q := -math.Pi + 2*math.Pi*float64(i)/float64(n)
		sinQ, cosQ := math.Sincos(q)
		out.X[i] = sinQ * cosLon
		out.Y[i] = sinQ * sinLon
		out.Z[i] = cosQ
	}
	return out
}

// Parallel samples n+1 points along longitude p in [-pi, pi] at fixed
// colatitude colat, a closed circle at height cos(colat).
func Parallel(colat float64, n int) vectors.Batch {
	sinQ, cosQ := math.Sin(colat), math.Cos(colat)
	out := vectors.NewBatch(n + 1)
	for i := 0; i <= n; i++ {
		p := -math.Pi + 2*math.Pi*float64(i)/float64(n)
		sinP, cosP := math.Sincos(p)
		out.X[i] = sinQ * cosP
		out.Y[i] = sinQ * sinP
		out.Z[i] = cosQ
	}
	return out
}

// Globe returns a wireframe sphere grid: 2i-1 parallels at colatitudes
// evenly spaced in (0, pi) excluding the poles, followed by 2j meridians
// evenly spaced over the full sphere with no duplicate at the seam.
// Each curve is sampled with n+1 points.
func Globe(i, j, n int) ([]vectors.Batch, error) {
	if i < 0 || j < 0 {
		return nil, ErrInvalidGridSize
	}
	out := make([]vectors.Batch, 0, 2*i+2*j)
	for k := 1; k < 2*i; k++ {
		q := math.Pi * float64(k) / float64(2*i)
		out = append(out, Parallel(q, n))
	}
	for k := 0; k < 2*j; k++ {
		p := math.Pi * float64(k) / float64(2*j)
		out = append(out, Meridian(p, n))
	}
	return out, nil
}
