// Package scene assembles the display list for one parameter snapshot:
// every curve is generated in its native frame, carried through
// inertial -> ecliptic -> view, and handed to the renderer as plain
// point sequences with styling. The package owns no mutable state
// beyond a cache of the static wireframes.
package scene

import (
	"fmt"
	"math"

	lru "github.com/hashicorp/golang-lru"

	"github.com/EdwinChan/celestial-sphere/astro"
	"github.com/EdwinChan/celestial-sphere/colors"
	"github.com/EdwinChan/celestial-sphere/frames"
	"github.com/EdwinChan/celestial-sphere/sphere"
	"github.com/EdwinChan/celestial-sphere/vectors"
)

// Curve is a styled polyline in the view frame.
type Curve struct {
	Points vectors.Batch
	Color  colors.Color4
	Legend string // non-empty entries appear in the figure legend
}

// Marker is a styled point in the view frame.
type Marker struct {
	At     vectors.Vec3
	Color  colors.Color4
	Legend string
}

// Label is a text annotation anchored to a point in the view frame.
type Label struct {
	At   vectors.Vec3
	Text string
}

// Scene is everything a rendering collaborator needs for one frame.
type Scene struct {
	Curves  []Curve
	Markers []Marker
	Labels  []Label
	Status  string
}

// Builder produces scenes. The globe wireframes depend only on their
// grid shape, so decoded copies are kept in a small LRU and re-read on
// every build; transforms never mutate their input, which keeps the
// cached batches shareable.
type Builder struct {
	wireframes *lru.Cache // gridKey -> []vectors.Batch
}

type gridKey struct {
	i, j, n int
}

// NewBuilder returns a Builder with an empty wireframe cache.
func NewBuilder() *Builder {
	cache, _ := lru.New(8) // lru.New only fails for a non-positive size
	return &Builder{wireframes: cache}
}

func (b *Builder) globe(i, j, n int) ([]vectors.Batch, error) {
	key := gridKey{i, j, n}
	if cached, ok := b.wireframes.Get(key); ok {
		return cached.([]vectors.Batch), nil
	}
	grid, err := sphere.Globe(i, j, n)
	if err != nil {
		return nil, err
	}
	b.wireframes.Add(key, grid)
	return grid, nil
}

// Build assembles the celestial-sphere scene for p: the RA/Dec grid
// with its pole and hour labels, the ecliptic, the Sun's declination
// circle and the Sun itself, and the observer's horizon, zenith and
// compass points.
func (b *Builder) Build(p frames.Parameters) (Scene, error) {
	if err := p.Valid(); err != nil {
		return Scene{}, err
	}
	n := sphere.DefaultSamples
	var s Scene

	// equatorial coordinate grid, native to the inertial frame
	grid, err := b.globe(3, 3, n)
	if err != nil {
		return Scene{}, err
	}
	for k, curve := range grid {
		legend := ""
		if k == 0 {
			legend = "RA/Dec"
		}
		out, err := p.EclipticToViewBatch(p.InertialToEclipticBatch(curve))
		if err != nil {
			return Scene{}, err
		}
		s.Curves = append(s.Curves, Curve{
			Points: out,
			Color:  colors.Black().WithAlpha(0.05),
			Legend: legend,
		})
	}
	poleAndHourLabels := []struct {
		text string
		at   vectors.Vec3
	}{
		{"+90", vectors.Vec3{X: 0, Y: 0, Z: 1}},
		{"-90", vectors.Vec3{X: 0, Y: 0, Z: -1}},
		{"0h", vectors.Vec3{X: 0, Y: -1, Z: 0}},
		{"6h", vectors.Vec3{X: 1, Y: 0, Z: 0}},
		{"12h", vectors.Vec3{X: 0, Y: 1, Z: 0}},
		{"18h", vectors.Vec3{X: -1, Y: 0, Z: 0}},
	}
	for _, l := range poleAndHourLabels {
		at, err := p.ToView(frames.In(frames.FrameInertial, l.at))
		if err != nil {
			return Scene{}, err
		}
		s.Labels = append(s.Labels, Label{At: at.Vec, Text: l.text})
	}

	// ecliptic circle, already in its native frame
	ecliptic, err := p.EclipticToViewBatch(sphere.Parallel(math.Pi/2, n))
	if err != nil {
		return Scene{}, err
	}
	s.Curves = append(s.Curves, Curve{
		Points: ecliptic,
		Color:  colors.Red().WithAlpha(0.2),
		Legend: "ecliptic",
	})

	// the Sun's declination circle, a parallel of the inertial frame
	sunColat := math.Pi/2 - astro.Declination(p.Obliquity, p.TimeOfYear)
	sunCircle, err := p.EclipticToViewBatch(
		p.InertialToEclipticBatch(sphere.Parallel(sunColat, n)))
	if err != nil {
		return Scene{}, err
	}
	s.Curves = append(s.Curves, Curve{
		Points: sunCircle,
		Color:  colors.Red(),
	})

	// the Sun itself, on the ecliptic at the orbital phase
	sunPos := vectors.Vec3{X: 1}.RotateZ(p.TimeOfYear)
	sun, err := p.ToView(frames.In(frames.FrameEcliptic, sunPos))
	if err != nil {
		return Scene{}, err
	}
	s.Markers = append(s.Markers, Marker{
		At:     sun.Vec,
		Color:  colors.Red(),
		Legend: "sun path",
	})

	// horizon circle, native to the observer frame
	horizon, err := b.observerCurve(p, sphere.Parallel(math.Pi/2, n))
	if err != nil {
		return Scene{}, err
	}
	s.Curves = append(s.Curves, Curve{
		Points: horizon,
		Color:  colors.Blue().WithAlpha(0.2),
		Legend: "horizon",
	})

	// zenith ray from the origin
	ray := vectors.NewBatch(2)
	ray.Set(1, vectors.Vec3{Z: 1})
	zenithRay, err := b.observerCurve(p, ray)
	if err != nil {
		return Scene{}, err
	}
	s.Curves = append(s.Curves, Curve{
		Points: zenithRay,
		Color:  colors.Blue().WithAlpha(0.2),
	})

	// compass points on the horizon
	compass := []struct {
		text string
		at   vectors.Vec3
	}{
		{"N", vectors.Vec3{X: -1}},
		{"E", vectors.Vec3{Y: 1}},
		{"S", vectors.Vec3{X: 1}},
		{"W", vectors.Vec3{Y: -1}},
	}
	for _, l := range compass {
		at, err := p.ToView(frames.In(frames.FrameObserver, l.at))
		if err != nil {
			return Scene{}, err
		}
		s.Labels = append(s.Labels, Label{At: at.Vec, Text: l.text})
	}

	// the zenith's diurnal circle, a parallel at the observer's
	// colatitude in the inertial frame
	diurnal, err := p.EclipticToViewBatch(
		p.InertialToEclipticBatch(sphere.Parallel(p.Colatitude(), n)))
	if err != nil {
		return Scene{}, err
	}
	s.Curves = append(s.Curves, Curve{
		Points: diurnal,
		Color:  colors.Blue(),
	})

	// zenith marker
	zenith, err := p.ToView(frames.In(frames.FrameObserver, vectors.Vec3{Z: 1}))
	if err != nil {
		return Scene{}, err
	}
	s.Markers = append(s.Markers, Marker{
		At:     zenith.Vec,
		Color:  colors.Blue(),
		Legend: "zenith",
	})

	s.Status = fmt.Sprintf("view: %s\nday: %s", p.View, p.Day)
	return s, nil
}

// observerCurve carries an observer-native batch through the full
// native -> ecliptic -> view chain.
func (b *Builder) observerCurve(p frames.Parameters, curve vectors.Batch) (vectors.Batch, error) {
	inertial, err := p.ObserverToInertialBatch(curve)
	if err != nil {
		return vectors.Batch{}, err
	}
	return p.EclipticToViewBatch(p.InertialToEclipticBatch(inertial))
}

// BuildSunPaths assembles the three-season sun-path figure: the
// diurnal circles for the June solstice, the equinoxes and the
// December solstice in the observer's horizon frame, over a reference
// globe with compass labels.
func (b *Builder) BuildSunPaths(obliquity, latitude float64) (Scene, error) {
	n := sphere.DefaultSamples
	var s Scene

	grid, err := b.globe(3, 3, n)
	if err != nil {
		return Scene{}, err
	}
	for _, curve := range grid {
		s.Curves = append(s.Curves, Curve{
			Points: curve,
			Color:  colors.Black().WithAlpha(0.05),
		})
	}

	seasons := []struct {
		timeOfYear float64
		color      colors.Color4
		legend     string
	}{
		{0, colors.Red(), "June solstice"},
		{math.Pi / 2, colors.New(0, 0.5, 0, 1), "equinoxes"},
		{math.Pi, colors.Blue(), "December solstice"},
	}
	for _, season := range seasons {
		s.Curves = append(s.Curves, Curve{
			Points: astro.SunPath(obliquity, season.timeOfYear, latitude, n),
			Color:  season.color,
			Legend: season.legend,
		})
	}

	compass := []struct {
		text string
		at   vectors.Vec3
	}{
		{"N", vectors.Vec3{X: 1}},
		{"E", vectors.Vec3{Y: -1}},
		{"S", vectors.Vec3{X: -1}},
		{"W", vectors.Vec3{Y: 1}},
		{"Z", vectors.Vec3{Z: 1}},
	}
	for _, l := range compass {
		s.Labels = append(s.Labels, Label{At: l.at, Text: l.text})
	}
	return s, nil
}
