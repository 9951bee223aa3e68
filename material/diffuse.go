package material

import (
	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/vectors"
)

// Diffuse is a Lambertian surface.
type Diffuse struct {
	Albedo vectors.Vec3
}

func NewDiffuse(albedo vectors.Vec3) Diffuse {
	return Diffuse{Albedo: albedo}
}

// Scatter sends the ray along normal + a random unit vector, which
// approximates a cosine-weighted lobe.
func (d Diffuse) Scatter(_ geom.Ray, hit geom.HitRecord, rng vectors.Source) (vectors.Vec3, geom.Ray, bool) {
	direction := hit.Normal.Add(vectors.RandomUnitVector(rng))
	if direction.NearZero() {
		direction = hit.Normal
	}
	return d.Albedo, geom.Ray{Origin: hit.Point, Direction: direction}, true
}
