package render

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/EdwinChan/celestial-sphere/colors"
	"github.com/EdwinChan/celestial-sphere/scene"
)

// Chart plot margins in pixels: room for the y tick labels on the
// left, the title and y axis label on top, the x ticks and label below.
const (
	chartLeft   = 56
	chartRight  = 16
	chartTop    = 48
	chartBottom = 48
)

// DrawChart renders a 2D line chart into a square image.
func DrawChart(c scene.Chart, opt Options) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, opt.Size, opt.Size))
	draw.Draw(img, img.Bounds(),
		image.NewUniform(opt.Background.ToNRGBA()), image.Point{}, draw.Src)

	xmin, xmax := math.Inf(1), math.Inf(-1)
	ymin, ymax := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for i := range s.X {
			xmin, xmax = math.Min(xmin, s.X[i]), math.Max(xmax, s.X[i])
			ymin, ymax = math.Min(ymin, s.Y[i]), math.Max(ymax, s.Y[i])
		}
	}
	if xmin > xmax {
		return img
	}
	if xmax == xmin {
		xmax = xmin + 1
	}
	// pad the value range so extremes clear the frame
	pad := (ymax - ymin) * 0.05
	if pad == 0 {
		pad = 0.5
	}
	ymin, ymax = ymin-pad, ymax+pad

	x0, x1 := float64(chartLeft), float64(opt.Size-chartRight)
	y0, y1 := float64(chartTop), float64(opt.Size-chartBottom)
	toPlot := func(x, y float64) (float64, float64) {
		return x0 + (x-xmin)/(xmax-xmin)*(x1-x0),
			y1 - (y-ymin)/(ymax-ymin)*(y1-y0)
	}

	frameColor := colors.Black().Mix(colors.White(), 0.5)
	strokePolyline(img, [][2]float64{
		{x0, y0}, {x1, y0}, {x1, y1}, {x0, y1}, {x0, y0},
	}, 1, frameColor)

	for _, s := range c.Series {
		pts := make([][2]float64, len(s.X))
		for i := range s.X {
			px, py := toPlot(s.X[i], s.Y[i])
			pts[i] = [2]float64{px, py}
		}
		strokePolyline(img, pts, opt.LineWidth, s.Color)
	}

	half := float64(opt.Size) / 2
	drawTextCentered(img, c.Title, half, 16, colors.Black())
	drawTextCentered(img, c.XLabel, half, float64(opt.Size)-14, colors.Black())

	// basicfont has no rotated variant, so the y axis label sits
	// horizontally above the frame
	d := textDrawer(img, colors.Black())
	d.Dot = fixed.P(8, 34)
	d.DrawString(c.YLabel)

	drawTextCentered(img, fmt.Sprintf("%.2g", xmin), x0, y1+14, colors.Black())
	drawTextCentered(img, fmt.Sprintf("%.2g", xmax), x1, y1+14, colors.Black())
	drawTextCentered(img, fmt.Sprintf("%.2g", ymin+pad), x0-24, y1, colors.Black())
	drawTextCentered(img, fmt.Sprintf("%.2g", ymax-pad), x0-24, y0, colors.Black())

	for i, s := range c.Series {
		if s.Legend == "" {
			continue
		}
		d := textDrawer(img, s.Color)
		w := d.MeasureString(s.Legend)
		d.Dot = fixed.Point26_6{
			X: fixed.I(int(x1) - 8) - w,
			Y: fixed.I(int(y0) + 16 + i*(basicfont.Face7x13.Height+2)),
		}
		d.DrawString(s.Legend)
	}
	return img
}
