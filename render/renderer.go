package render

import (
	"fmt"
	"math"
	"time"

	"github.com/echoflaresat/spheretrace/colors"
	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/material"
	"github.com/echoflaresat/spheretrace/vectors"
)

// ShadowAcneBias is the smallest accepted hit parameter. Hits closer than
// this are treated as the ray re-hitting the surface it just left.
const ShadowAcneBias = 0.001

// World is the read-only scene handed to the renderer: surfaces to intersect
// and the material table their hit records index into.
type World interface {
	geom.Hittable
	Material(id geom.MaterialID) material.Material
}

// Sink receives pixels in row-major order, top row first.
type Sink interface {
	Begin(width, height int) error
	WritePixel(c colors.RGB8) error
	End() error
}

// Sky is the background environment light: a vertical gradient from white at
// the horizon-down to sky blue overhead.
func Sky(direction vectors.Vec3) vectors.Vec3 {
	unit := direction.Unit()
	a := 0.5 * (unit.Y + 1.0)
	return colors.Mix(colors.White(), colors.SkyBlue(), a)
}

// RayColor traces r through world for at most depth bounces and returns the
// linear radiance it carries back.
func RayColor(r geom.Ray, world World, depth int, rng vectors.Source) vectors.Vec3 {
	if depth <= 0 {
		return colors.Black()
	}

	rec, ok := world.Hit(r, geom.NewInterval(ShadowAcneBias, math.Inf(1)))
	if !ok {
		return Sky(r.Direction)
	}

	mat := world.Material(rec.Material)
	if mat == nil {
		return colors.Black()
	}
	attenuation, scattered, ok := mat.Scatter(r, rec, rng)
	if !ok {
		return colors.Black()
	}
	return attenuation.Mul(RayColor(scattered, world, depth-1, rng))
}

// PixelColor averages SamplesPerPixel jittered samples of pixel (i, j).
func (c *Camera) PixelColor(i, j int, world World, rng vectors.Source) colors.RGB8 {
	sum := colors.Black()
	for s := 0; s < c.opts.SamplesPerPixel; s++ {
		r := c.Ray(i, j, rng)
		sum = sum.Add(RayColor(r, world, c.opts.MaxDepth, rng))
	}
	return colors.FromSamples(sum, c.opts.SamplesPerPixel)
}

// Render traces every pixel and streams it to sink. It runs on the calling
// goroutine; rng is the only source of randomness, so a seeded rng makes the
// output reproducible.
func (c *Camera) Render(world World, sink Sink, rng vectors.Source) error {
	W, H := c.opts.ImageWidth, c.opts.ImageHeight
	log := c.opts.logger()

	if err := sink.Begin(W, H); err != nil {
		return fmt.Errorf("begin output: %w", err)
	}

	log.Info("render started",
		"width", W,
		"height", H,
		"samples", c.opts.SamplesPerPixel,
		"max_depth", c.opts.MaxDepth,
	)
	start := time.Now()
	progressMilestone := 0

	for j := 0; j < H; j++ {
		progress := (j * 100) / H
		if progress >= progressMilestone {
			log.Debug("render progress", "percent", progressMilestone, "rows_remaining", H-j)
			progressMilestone += 10
		}

		for i := 0; i < W; i++ {
			if err := sink.WritePixel(c.PixelColor(i, j, world, rng)); err != nil {
				return fmt.Errorf("write pixel (%d,%d): %w", i, j, err)
			}
		}
	}

	if err := sink.End(); err != nil {
		return fmt.Errorf("finish output: %w", err)
	}
	log.Info("render finished", "elapsed", time.Since(start))
	return nil
}
