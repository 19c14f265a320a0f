package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"math"
	"os"
	"strings"
	"time"

	"github.com/EdwinChan/celestial-sphere/astro"
	"github.com/EdwinChan/celestial-sphere/frames"
	"github.com/EdwinChan/celestial-sphere/render"
	"github.com/EdwinChan/celestial-sphere/scene"
)

type config struct {
	mode *string

	obliquity, lat, lon   *float64
	timeOfYear, timeOfDay *float64
	view, day             *string
	timeStr               *string

	size       *int
	elev, azim *float64

	out *string

	showHelp *bool
}

func defineFlags() config {
	return config{
		mode: flag.String("mode", "sphere", "Figure to render: sphere, sunpaths, insolation, or sunrise"),

		obliquity:  flag.Float64("obliquity", 23.4392811, "Axial tilt in degrees"),
		lat:        flag.Float64("lat", 40.0, "Observer latitude in degrees"),
		lon:        flag.Float64("lon", 0.0, "Observer longitude in degrees (east positive, used with -time)"),
		timeOfYear: flag.Float64("tyear", 0.0, "Time of year in degrees from the June solstice"),
		timeOfDay:  flag.Float64("tday", 0.0, "Time of day in degrees of rotation phase"),
		view:       flag.String("view", "ecliptic", "View frame: ecliptic, equator, horizon, or all"),
		day:        flag.String("day", "sidereal", "Day type: sidereal or solar"),
		timeStr:    flag.String("time", "", "Time in RFC3339 format (e.g., 2025-08-02T15:04:05Z); overrides -tyear/-tday"),

		size: flag.Int("size", 640, "Output image size (width/height in pixels)"),
		elev: flag.Float64("elev", 10.0, "Camera elevation in degrees"),
		azim: flag.Float64("azim", -90.0, "Camera azimuth in degrees"),

		out: flag.String("out", "celestial.png", "Output PNG file path"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Celestial Sphere - Reference Frame Renderer

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Figure Options", []string{"mode", "view", "day"})
	printGroup("Geometry Options", []string{"obliquity", "lat", "lon", "tyear", "tday", "time"})
	printGroup("Rendering Options", []string{"size", "elev", "azim"})
	printGroup("Output", []string{"out"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-10s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	day, err := frames.ParseDayMode(*cfg.day)
	if err != nil {
		log.Fatalf("Invalid -day %q: %v", *cfg.day, err)
	}

	params, err := buildParameters(cfg, day)
	if err != nil {
		log.Fatal(err)
	}

	builder := scene.NewBuilder()
	camera := render.NewCamera(*cfg.elev, *cfg.azim)
	opt := render.DefaultOptions()
	opt.Size = *cfg.size

	switch *cfg.mode {
	case "sunpaths":
		s, err := builder.BuildSunPaths(params.Obliquity, params.Latitude)
		if err != nil {
			log.Fatal(err)
		}
		writeImage(*cfg.out, render.Draw(s, camera, opt))

	case "insolation":
		writeImage(*cfg.out, render.DrawChart(scene.InsolationChart(params.Obliquity), opt))

	case "sunrise":
		writeImage(*cfg.out, render.DrawChart(scene.SunriseAzimuthChart(params.Obliquity), opt))

	case "sphere":
		if *cfg.view == "all" {
			imgs, err := render.Views(builder, params, camera, opt)
			if err != nil {
				log.Fatal(err)
			}
			for mode, img := range imgs {
				writeImage(outName(*cfg.out, mode.String()), img)
			}
			return
		}
		view, err := frames.ParseViewMode(*cfg.view)
		if err != nil {
			log.Fatalf("Invalid -view %q: %v", *cfg.view, err)
		}
		params.View = view
		s, err := builder.Build(params)
		if err != nil {
			log.Fatal(err)
		}
		writeImage(*cfg.out, render.Draw(s, camera, opt))

	default:
		log.Fatalf("Invalid -mode %q: want sphere, sunpaths, insolation, or sunrise", *cfg.mode)
	}
}

// buildParameters assembles the frame parameters from the flags,
// preferring a wall-clock instant when one is given.
func buildParameters(cfg config, day frames.DayMode) (frames.Parameters, error) {
	deg := math.Pi / 180

	if *cfg.timeStr != "" {
		t, err := time.Parse(time.RFC3339, *cfg.timeStr)
		if err != nil {
			return frames.Parameters{}, fmt.Errorf("invalid time format: %w", err)
		}
		return astro.ParametersAt(t, *cfg.lat*deg, *cfg.lon*deg, day)
	}

	return frames.Parameters{
		Obliquity:  *cfg.obliquity * deg,
		Latitude:   *cfg.lat * deg,
		TimeOfYear: *cfg.timeOfYear * deg,
		TimeOfDay:  *cfg.timeOfDay * deg,
		Day:        day,
	}, nil
}

// outName inserts a view suffix before the extension: a.png -> a-horizon.png.
func outName(path, suffix string) string {
	if i := strings.LastIndex(path, "."); i > 0 {
		return path[:i] + "-" + suffix + path[i:]
	}
	return path + "-" + suffix
}

func writeImage(path string, img image.Image) {
	fmt.Println("Generating " + path)
	if err := writePNG(path, img); err != nil {
		log.Fatalf("Failed to write PNG: %v", err)
	}
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img)
}
