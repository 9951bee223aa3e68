package main

import (
	"flag"
	"fmt"
	"image/jpeg"
	"image/png"
	"log"
	"log/slog"
	"math/rand"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/echoflaresat/spheretrace/ppm"
	"github.com/echoflaresat/spheretrace/render"
	"github.com/echoflaresat/spheretrace/scene"
	"github.com/echoflaresat/spheretrace/vectors"
	"github.com/google/uuid"
	"golang.org/x/image/tiff"
	"golang.org/x/sync/errgroup"
)

type config struct {
	scenes, file         *string
	width, height        *int
	samples, depth       *int
	vfov, defocus, focus *float64
	from, at, up         *vecFlag
	seed                 *int64
	out                  *string
	jobs                 *int
	verbose, showHelp    *bool
}

// vecFlag parses "x,y,z".
type vecFlag struct {
	v vectors.Vec3
}

func (f *vecFlag) String() string {
	if f == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f *vecFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return fmt.Errorf("expected x,y,z, got %q", s)
	}
	var xs [3]float64
	for i, p := range parts {
		x, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return fmt.Errorf("component %d: %w", i, err)
		}
		xs[i] = x
	}
	f.v = vectors.New(xs[0], xs[1], xs[2])
	return nil
}

func newVecFlag(name string, def vectors.Vec3, usage string) *vecFlag {
	f := &vecFlag{v: def}
	flag.Var(f, name, usage)
	return f
}

func defineFlags() config {
	def := render.DefaultOptions()
	return config{
		scenes: flag.String("scene", "reference", "Comma-separated preset names ("+strings.Join(scene.PresetNames(), ", ")+")"),
		file:   flag.String("file", "", "YAML scene file; overrides -scene"),

		width:   flag.Int("width", def.ImageWidth, "Image width in pixels"),
		height:  flag.Int("height", def.ImageHeight, "Image height in pixels"),
		samples: flag.Int("samples", def.SamplesPerPixel, "Samples per pixel"),
		depth:   flag.Int("depth", def.MaxDepth, "Maximum ray bounces"),

		vfov:    flag.Float64("vfov", def.VFOV, "Vertical field of view in degrees"),
		defocus: flag.Float64("defocus", def.DefocusAngle, "Defocus (aperture) angle in degrees; 0 disables blur"),
		focus:   flag.Float64("focus", def.FocusDist, "Focus distance"),
		from:    newVecFlag("from", def.LookFrom, "Camera position x,y,z"),
		at:      newVecFlag("at", def.LookAt, "Point the camera looks at x,y,z"),
		up:      newVecFlag("up", def.Up, "Camera up vector x,y,z"),

		seed: flag.Int64("seed", 0, "Random seed; 0 picks one from the clock"),
		jobs: flag.Int("jobs", runtime.GOMAXPROCS(0), "Scenes rendered at once in batch mode"),

		out: flag.String("out", "image.ppm", "Output path; extension selects .ppm, .png, .jpg or .tif"),

		verbose:  flag.Bool("v", false, "Log render progress"),
		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `spheretrace - stochastic sphere ray tracer

Usage:
  %[1]s [options]

Camera and image flags given explicitly override the scene's own settings.

`, os.Args[0])

	for _, g := range helpGroups {
		printGroup(g.title, g.keys)
	}
}

var helpGroups = []struct {
	title string
	keys  []string
}{
	{"Scene", []string{"scene", "file"}},
	{"Image", []string{"width", "height", "samples", "depth"}},
	{"Camera", []string{"vfov", "defocus", "focus", "from", "at", "up"}},
	{"Rendering", []string{"seed", "jobs"}},
	{"Output", []string{"out"}},
	{"Misc", []string{"v", "h"}},
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-8s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

// job is one scene to render to one file.
type job struct {
	name  string
	world *scene.Scene
	opts  render.Options
	out   string
	seed  int64
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	level := slog.LevelInfo
	if *cfg.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	seed := *cfg.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	jobs, err := buildJobs(cfg, setFlags(), seed)
	if err != nil {
		log.Fatal(err)
	}

	g := new(errgroup.Group)
	g.SetLimit(max(1, *cfg.jobs))
	for _, j := range jobs {
		g.Go(func() error {
			return runJob(j, logger)
		})
	}
	if err := g.Wait(); err != nil {
		log.Fatal(err)
	}
}

// setFlags returns the names of flags given on the command line.
func setFlags() map[string]bool {
	set := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set
}

func buildJobs(cfg config, set map[string]bool, seed int64) ([]job, error) {
	if *cfg.file != "" {
		world, opts, err := scene.Load(*cfg.file)
		if err != nil {
			return nil, err
		}
		name := strings.TrimSuffix(filepath.Base(*cfg.file), filepath.Ext(*cfg.file))
		return []job{{name: name, world: world, opts: applyOverrides(cfg, set, opts), out: *cfg.out, seed: seed}}, nil
	}

	names := strings.Split(*cfg.scenes, ",")
	jobs := make([]job, 0, len(names))
	for i, name := range names {
		name = strings.TrimSpace(name)
		// layout randomness is seeded too, so a seed reproduces the whole image
		world, opts, err := scene.Preset(name, rand.New(rand.NewSource(seed+int64(i))))
		if err != nil {
			return nil, err
		}
		out := *cfg.out
		if len(names) > 1 {
			ext := filepath.Ext(out)
			out = strings.TrimSuffix(out, ext) + "-" + name + ext
		}
		jobs = append(jobs, job{name: name, world: world, opts: applyOverrides(cfg, set, opts), out: out, seed: seed + int64(i)})
	}
	return jobs, nil
}

// applyOverrides replaces scene camera settings with flags the user set.
func applyOverrides(cfg config, set map[string]bool, opts render.Options) render.Options {
	if set["width"] {
		opts.ImageWidth = *cfg.width
	}
	if set["height"] {
		opts.ImageHeight = *cfg.height
	}
	if set["samples"] {
		opts.SamplesPerPixel = *cfg.samples
	}
	if set["depth"] {
		opts.MaxDepth = *cfg.depth
	}
	if set["vfov"] {
		opts.VFOV = *cfg.vfov
	}
	if set["defocus"] {
		opts.DefocusAngle = *cfg.defocus
	}
	if set["focus"] {
		opts.FocusDist = *cfg.focus
	}
	if set["from"] {
		opts.LookFrom = cfg.from.v
	}
	if set["at"] {
		opts.LookAt = cfg.at.v
	}
	if set["up"] {
		opts.Up = cfg.up.v
	}
	return opts
}

func runJob(j job, logger *slog.Logger) error {
	runID := uuid.NewString()
	j.opts.Logger = logger.With("run_id", runID, "scene", j.name)

	cam, err := render.NewCamera(j.opts)
	if err != nil {
		return fmt.Errorf("scene %s: %w", j.name, err)
	}
	j.opts.Logger.Info("rendering", "out", j.out, "seed", j.seed)

	if err := renderToFile(cam, j.world, j.out, rand.New(rand.NewSource(j.seed))); err != nil {
		return fmt.Errorf("scene %s: %w", j.name, err)
	}
	return nil
}

// renderToFile streams PPM directly; other formats are rendered into memory
// and encoded once complete.
func renderToFile(cam *render.Camera, world render.World, path string, rng vectors.Source) error {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ppm", "":
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := cam.Render(world, ppm.NewWriter(f), rng); err != nil {
			return err
		}
		return f.Close()
	case ".png", ".jpg", ".jpeg", ".tif", ".tiff":
		sink := render.NewImageSink()
		if err := cam.Render(world, sink, rng); err != nil {
			return err
		}
		return writeImage(path, sink)
	default:
		return fmt.Errorf("unsupported output format: %s", ext)
	}
}

func writeImage(path string, sink *render.ImageSink) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	img := sink.Image()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = (&png.Encoder{CompressionLevel: png.BestSpeed}).Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, &tiff.Options{Compression: tiff.Deflate, Predictor: true})
	default:
		err = fmt.Errorf("unsupported output format: %s", filepath.Ext(path))
	}
	if err != nil {
		return err
	}
	return f.Close()
}
