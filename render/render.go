// Package render rasterizes scenes into images: anti-aliased polylines
// for the curves, filled dots for the markers, and bitmap-font text for
// labels, legend and status. It is one possible consumer of the scene
// display list, not part of the geometric core.
package render

import (
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
	"golang.org/x/sync/errgroup"

	"github.com/EdwinChan/celestial-sphere/colors"
	"github.com/EdwinChan/celestial-sphere/frames"
	"github.com/EdwinChan/celestial-sphere/scene"
)

// viewExtent is the half-width of the projected region in sphere
// units; the unit sphere plus a margin for labels.
const viewExtent = 1.25

// Options controls rasterization.
type Options struct {
	Size         int // output is Size x Size pixels
	Background   colors.Color4
	LineWidth    float64 // pixels
	MarkerRadius float64 // pixels
}

// DefaultOptions returns the options used by the CLI.
func DefaultOptions() Options {
	return Options{
		Size:         640,
		Background:   colors.White(),
		LineWidth:    1.5,
		MarkerRadius: 4,
	}
}

// Draw renders s through cam into a square image.
func Draw(s scene.Scene, cam Camera, opt Options) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	draw.Draw(img, img.Bounds(),
		image.NewUniform(opt.Background.ToNRGBA()), image.Point{}, draw.Src)

	half := float64(opt.Size) / 2
	toScreen := func(x, y float64) (float64, float64) {
		return half + x/viewExtent*half, half - y/viewExtent*half
	}

	for _, c := range s.Curves {
		pts := make([][2]float64, c.Points.Len())
		for i := 0; i < c.Points.Len(); i++ {
			x, y, _ := cam.Project(c.Points.At(i))
			px, py := toScreen(x, y)
			pts[i] = [2]float64{px, py}
		}
		strokePolyline(img, pts, opt.LineWidth, c.Color)
	}

	for _, m := range s.Markers {
		x, y, _ := cam.Project(m.At)
		px, py := toScreen(x, y)
		fillCircle(img, px, py, opt.MarkerRadius, m.Color)
	}

	// labels sit a little above their anchor along screen-up so the
	// glyphs clear the curve they annotate
	const labelLift = 0.04
	for _, l := range s.Labels {
		x, y, _ := cam.Project(l.At.Add(cam.up.Scale(labelLift)))
		px, py := toScreen(x, y)
		drawTextCentered(img, l.Text, px, py, colors.Black())
	}

	drawStatus(img, s.Status)
	drawLegend(img, s, opt)
	return img
}

// Views renders one image per view mode, sharing the builder's
// wireframe cache; the three scenes are independent, so they render in
// parallel.
func Views(b *scene.Builder, p frames.Parameters, cam Camera, opt Options) (map[frames.ViewMode]*image.NRGBA, error) {
	modes := []frames.ViewMode{frames.ViewEcliptic, frames.ViewEquator, frames.ViewHorizon}
	imgs := make([]*image.NRGBA, len(modes))

	var g errgroup.Group
	for i, mode := range modes {
		i, mode := i, mode
		q := p
		q.View = mode
		g.Go(func() error {
			built, err := b.Build(q)
			if err != nil {
				return err
			}
			imgs[i] = Draw(built, cam, opt)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make(map[frames.ViewMode]*image.NRGBA, len(modes))
	for i, mode := range modes {
		out[mode] = imgs[i]
	}
	return out, nil
}

// strokePolyline draws the polyline as one filled path of per-segment
// quads. Joints are left butt-ended; at the widths used here the seams
// are below the anti-aliasing threshold.
func strokePolyline(img *image.NRGBA, pts [][2]float64, width float64, c colors.Color4) {
	if len(pts) < 2 {
		return
	}
	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	halfW := width / 2
	for i := 1; i < len(pts); i++ {
		x0, y0 := pts[i-1][0], pts[i-1][1]
		x1, y1 := pts[i][0], pts[i][1]
		dx, dy := x1-x0, y1-y0
		length := math.Hypot(dx, dy)
		if length == 0 {
			continue
		}
		// unit normal of the segment
		nx, ny := -dy/length*halfW, dx/length*halfW
		r.MoveTo(float32(x0+nx), float32(y0+ny))
		r.LineTo(float32(x1+nx), float32(y1+ny))
		r.LineTo(float32(x1-nx), float32(y1-ny))
		r.LineTo(float32(x0-nx), float32(y0-ny))
		r.ClosePath()
	}
	r.Draw(img, img.Bounds(), image.NewUniform(c.ToNRGBA()), image.Point{})
}

// fillCircle draws a filled dot as a 16-gon.
func fillCircle(img *image.NRGBA, cx, cy, radius float64, c colors.Color4) {
	const sides = 16
	r := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	r.MoveTo(float32(cx+radius), float32(cy))
	for i := 1; i <= sides; i++ {
		a := 2 * math.Pi * float64(i) / sides
		r.LineTo(float32(cx+radius*math.Cos(a)), float32(cy+radius*math.Sin(a)))
	}
	r.ClosePath()
	r.Draw(img, img.Bounds(), image.NewUniform(c.ToNRGBA()), image.Point{})
}

func textDrawer(img *image.NRGBA, c colors.Color4) *font.Drawer {
	return &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c.ToNRGBA()),
		Face: basicfont.Face7x13,
	}
}

func drawTextCentered(img *image.NRGBA, text string, px, py float64, c colors.Color4) {
	d := textDrawer(img, c)
	w := d.MeasureString(text)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(px*64) - w/2,
		Y: fixed.Int26_6(py*64) + fixed.I(basicfont.Face7x13.Ascent-basicfont.Face7x13.Height/2),
	}
	d.DrawString(text)
}

// drawStatus prints the status block in the top-left corner.
func drawStatus(img *image.NRGBA, status string) {
	if status == "" {
		return
	}
	d := textDrawer(img, colors.Black())
	line := 0
	start := 0
	for i := 0; i <= len(status); i++ {
		if i == len(status) || status[i] == '\n' {
			d.Dot = fixed.P(8, 16+line*(basicfont.Face7x13.Height+2))
			d.DrawString(status[start:i])
			line++
			start = i + 1
		}
	}
}

// drawLegend prints the legend entries, bottom-right, in curve color.
func drawLegend(img *image.NRGBA, s scene.Scene, opt Options) {
	type entry struct {
		text  string
		color colors.Color4
	}
	var entries []entry
	for _, c := range s.Curves {
		if c.Legend != "" {
			entries = append(entries, entry{c.Legend, c.Color.WithAlpha(1)})
		}
	}
	for _, m := range s.Markers {
		if m.Legend != "" {
			entries = append(entries, entry{m.Legend, m.Color.WithAlpha(1)})
		}
	}
	for i, e := range entries {
		d := textDrawer(img, e.color)
		w := d.MeasureString(e.text)
		y := opt.Size - 8 - (len(entries)-1-i)*(basicfont.Face7x13.Height+2)
		d.Dot = fixed.Point26_6{
			X: fixed.I(opt.Size-8) - w,
			Y: fixed.I(y),
		}
		d.DrawString(e.text)
	}
}
