package material

import (
	"github.com/echoflaresat/spheretrace/colors"
	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/vectors"
)

// Metal is a specular reflector. Fuzz in [0,1] perturbs the mirror direction
// to give a glossy finish.
type Metal struct {
	Albedo vectors.Vec3
	Fuzz   float64
}

// NewMetal clamps fuzz into [0,1].
func NewMetal(albedo vectors.Vec3, fuzz float64) Metal {
	return Metal{Albedo: albedo, Fuzz: colors.Clamp(fuzz, 0, 1)}
}

// Scatter always scatters. A fuzzed direction may end up below the surface;
// it is traced as is, which darkens grazing reflections slightly.
func (m Metal) Scatter(in geom.Ray, hit geom.HitRecord, rng vectors.Source) (vectors.Vec3, geom.Ray, bool) {
	reflected := in.Direction.Unit().Reflect(hit.Normal)
	reflected = reflected.Add(vectors.RandomUnitVector(rng).Scale(m.Fuzz))
	return m.Albedo, geom.Ray{Origin: hit.Point, Direction: reflected}, true
}
