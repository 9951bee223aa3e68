package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/material"
	"github.com/echoflaresat/spheretrace/render"
	"github.com/echoflaresat/spheretrace/vectors"
	"gopkg.in/yaml.v3"
)

var (
	ErrInvalidScene    = errors.New("invalid scene file")
	ErrUnknownMaterial = errors.New("unknown material")
)

// File is the YAML layout of a scene description.
type File struct {
	Camera    CameraSpec              `yaml:"camera"`
	Materials map[string]MaterialSpec `yaml:"materials"`
	Spheres   []SphereSpec            `yaml:"spheres"`
}

// CameraSpec fields left at zero keep the render.DefaultOptions value.
type CameraSpec struct {
	Width        int       `yaml:"width"`
	Height       int       `yaml:"height"`
	Samples      int       `yaml:"samples"`
	Depth        int       `yaml:"depth"`
	LookFrom     []float64 `yaml:"look_from"`
	LookAt       []float64 `yaml:"look_at"`
	Up           []float64 `yaml:"up"`
	VFOV         float64   `yaml:"vfov"`
	DefocusAngle float64   `yaml:"defocus_angle"`
	FocusDist    float64   `yaml:"focus_dist"`
}

type MaterialSpec struct {
	Type   string    `yaml:"type"`
	Albedo []float64 `yaml:"albedo"`
	Fuzz   float64   `yaml:"fuzz"`
	IOR    float64   `yaml:"ior"`
}

type SphereSpec struct {
	Center   []float64 `yaml:"center"`
	Radius   float64   `yaml:"radius"`
	Material string    `yaml:"material"`
}

// Load reads a YAML scene file from disk.
func Load(path string) (*Scene, render.Options, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, render.Options{}, err
	}
	defer f.Close()

	s, opts, err := Parse(f)
	if err != nil {
		return nil, render.Options{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, opts, nil
}

// Parse decodes a YAML scene description.
func Parse(r io.Reader) (*Scene, render.Options, error) {
	var file File
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		return nil, render.Options{}, fmt.Errorf("%w: %v", ErrInvalidScene, err)
	}
	return file.Build()
}

// Build turns the decoded description into a scene. Materials get indices
// in name order so the same file always produces the same table.
func (f File) Build() (*Scene, render.Options, error) {
	opts, err := f.Camera.options()
	if err != nil {
		return nil, render.Options{}, err
	}

	s := New()
	names := make([]string, 0, len(f.Materials))
	for name := range f.Materials {
		names = append(names, name)
	}
	sort.Strings(names)

	ids := make(map[string]geom.MaterialID, len(names))
	for _, name := range names {
		m, err := f.Materials[name].material()
		if err != nil {
			return nil, render.Options{}, fmt.Errorf("material %q: %w", name, err)
		}
		ids[name] = s.AddMaterial(m)
	}

	for i, sp := range f.Spheres {
		id, ok := ids[sp.Material]
		if !ok {
			return nil, render.Options{}, fmt.Errorf("sphere %d: %w %q", i, ErrUnknownMaterial, sp.Material)
		}
		center, err := vec(sp.Center)
		if err != nil {
			return nil, render.Options{}, fmt.Errorf("sphere %d center: %w", i, err)
		}
		if sp.Radius == 0 {
			return nil, render.Options{}, fmt.Errorf("%w: sphere %d has zero radius", ErrInvalidScene, i)
		}
		s.AddSphere(center, sp.Radius, id)
	}
	return s, opts, nil
}

func (m MaterialSpec) material() (material.Material, error) {
	switch m.Type {
	case "diffuse", "lambertian":
		albedo, err := vec(m.Albedo)
		if err != nil {
			return nil, fmt.Errorf("albedo: %w", err)
		}
		return material.NewDiffuse(albedo), nil
	case "metal":
		albedo, err := vec(m.Albedo)
		if err != nil {
			return nil, fmt.Errorf("albedo: %w", err)
		}
		return material.NewMetal(albedo, m.Fuzz), nil
	case "dielectric", "glass":
		if m.IOR <= 0 {
			return nil, fmt.Errorf("%w: refractive index must be positive, got %g", ErrInvalidScene, m.IOR)
		}
		return material.NewDielectric(m.IOR), nil
	default:
		return nil, fmt.Errorf("%w: type %q", ErrUnknownMaterial, m.Type)
	}
}

func (c CameraSpec) options() (render.Options, error) {
	opts := render.DefaultOptions()
	if c.Width != 0 {
		opts.ImageWidth = c.Width
	}
	if c.Height != 0 {
		opts.ImageHeight = c.Height
	}
	if c.Samples != 0 {
		opts.SamplesPerPixel = c.Samples
	}
	if c.Depth != 0 {
		opts.MaxDepth = c.Depth
	}
	if c.VFOV != 0 {
		opts.VFOV = c.VFOV
	}
	if c.DefocusAngle != 0 {
		opts.DefocusAngle = c.DefocusAngle
	}
	if c.FocusDist != 0 {
		opts.FocusDist = c.FocusDist
	}

	for _, field := range []struct {
		name string
		src  []float64
		dst  *vectors.Vec3
	}{
		{"look_from", c.LookFrom, &opts.LookFrom},
		{"look_at", c.LookAt, &opts.LookAt},
		{"up", c.Up, &opts.Up},
	} {
		if field.src == nil {
			continue
		}
		v, err := vec(field.src)
		if err != nil {
			return render.Options{}, fmt.Errorf("camera %s: %w", field.name, err)
		}
		*field.dst = v
	}
	return opts, nil
}

func vec(xs []float64) (vectors.Vec3, error) {
	if len(xs) != 3 {
		return vectors.Vec3{}, fmt.Errorf("%w: expected 3 components, got %d", ErrInvalidScene, len(xs))
	}
	return vectors.New(xs[0], xs[1], xs[2]), nil
}
