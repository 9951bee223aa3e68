package scene

import (
	"errors"
	"fmt"
	"sort"

	"github.com/echoflaresat/spheretrace/material"
	"github.com/echoflaresat/spheretrace/render"
	"github.com/echoflaresat/spheretrace/vectors"
)

var ErrUnknownPreset = errors.New("unknown scene preset")

// Builder constructs a scene and the camera settings it was composed for.
// rng only drives scene layout (e.g. random sphere placement).
type Builder func(rng vectors.Source) (*Scene, render.Options)

var presets = map[string]Builder{
	"reference": Reference,
	"materials": Materials,
	"cover":     Cover,
}

// Preset looks up a built-in scene by name.
func Preset(name string, rng vectors.Source) (*Scene, render.Options, error) {
	b, ok := presets[name]
	if !ok {
		return nil, render.Options{}, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPreset, name, PresetNames())
	}
	s, opts := b(rng)
	return s, opts, nil
}

func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Reference is a small diffuse sphere resting on a large ground sphere,
// viewed from the origin down -Z.
func Reference(_ vectors.Source) (*Scene, render.Options) {
	s := New()
	ground := s.AddMaterial(material.NewDiffuse(vectors.New(0.8, 0.8, 0.0)))
	center := s.AddMaterial(material.NewDiffuse(vectors.New(0.7, 0.3, 0.3)))

	s.AddSphere(vectors.New(0, -100.5, -1), 100, ground)
	s.AddSphere(vectors.New(0, 0, -1), 0.5, center)

	opts := render.DefaultOptions()
	opts.ImageWidth, opts.ImageHeight = 400, 225
	return s, opts
}

// Materials shows one sphere per material kind. The left glass sphere holds
// a negative-radius shell, which renders as a hollow bubble.
func Materials(_ vectors.Source) (*Scene, render.Options) {
	s := New()
	ground := s.AddMaterial(material.NewDiffuse(vectors.New(0.8, 0.8, 0.0)))
	center := s.AddMaterial(material.NewDiffuse(vectors.New(0.1, 0.2, 0.5)))
	glass := s.AddMaterial(material.NewDielectric(1.5))
	metal := s.AddMaterial(material.NewMetal(vectors.New(0.8, 0.6, 0.2), 0.0))

	s.AddSphere(vectors.New(0, -100.5, -1), 100, ground)
	s.AddSphere(vectors.New(0, 0, -1), 0.5, center)
	s.AddSphere(vectors.New(-1, 0, -1), 0.5, glass)
	s.AddSphere(vectors.New(-1, 0, -1), -0.4, glass)
	s.AddSphere(vectors.New(1, 0, -1), 0.5, metal)

	opts := render.DefaultOptions()
	opts.LookFrom = vectors.New(-2, 2, 1)
	opts.LookAt = vectors.New(0, 0, -1)
	opts.VFOV = 20
	opts.DefocusAngle = 10
	opts.FocusDist = 3.4
	return s, opts
}

// Cover is a field of small random spheres around three large ones.
func Cover(rng vectors.Source) (*Scene, render.Options) {
	s := New()
	ground := s.AddMaterial(material.NewDiffuse(vectors.New(0.5, 0.5, 0.5)))
	s.AddSphere(vectors.New(0, -1000, 0), 1000, ground)

	glass := s.AddMaterial(material.NewDielectric(1.5))
	clearing := vectors.New(4, 0.2, 0)

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			choose := rng.Float64()
			center := vectors.New(float64(a)+0.9*rng.Float64(), 0.2, float64(b)+0.9*rng.Float64())
			if vectors.Distance(center, clearing) <= 0.9 {
				continue
			}

			switch {
			case choose < 0.8:
				albedo := vectors.Random(rng).Mul(vectors.Random(rng))
				s.AddSphere(center, 0.2, s.AddMaterial(material.NewDiffuse(albedo)))
			case choose < 0.95:
				albedo := vectors.RandomIn(rng, 0.5, 1)
				fuzz := vectors.RandomRange(rng, 0, 0.5)
				s.AddSphere(center, 0.2, s.AddMaterial(material.NewMetal(albedo, fuzz)))
			default:
				s.AddSphere(center, 0.2, glass)
			}
		}
	}

	s.AddSphere(vectors.New(0, 1, 0), 1.0, glass)
	s.AddSphere(vectors.New(-4, 1, 0), 1.0, s.AddMaterial(material.NewDiffuse(vectors.New(0.4, 0.2, 0.1))))
	s.AddSphere(vectors.New(4, 1, 0), 1.0, s.AddMaterial(material.NewMetal(vectors.New(0.7, 0.6, 0.5), 0.0)))

	opts := render.DefaultOptions()
	opts.ImageWidth, opts.ImageHeight = 1200, 675
	opts.SamplesPerPixel = 500
	opts.LookFrom = vectors.New(13, 2, 3)
	opts.LookAt = vectors.New(0, 0, 0)
	opts.VFOV = 20
	opts.DefocusAngle = 0.6
	opts.FocusDist = 10.0
	return s, opts
}
