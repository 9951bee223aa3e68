package material

import (
	"math"

	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/vectors"
)

// Dielectric is a clear refractive material such as glass or water.
type Dielectric struct {
	RefractiveIndex float64
}

func NewDielectric(refractiveIndex float64) Dielectric {
	return Dielectric{RefractiveIndex: refractiveIndex}
}

// Scatter reflects on total internal reflection, otherwise picks reflection
// with the Schlick probability and refraction the rest of the time. Glass
// never tints and never absorbs.
func (d Dielectric) Scatter(in geom.Ray, hit geom.HitRecord, rng vectors.Source) (vectors.Vec3, geom.Ray, bool) {
	ratio := d.RefractiveIndex
	if hit.FrontFace {
		ratio = 1.0 / d.RefractiveIndex
	}

	unitDirection := in.Direction.Unit()
	cosTheta := math.Min(unitDirection.Neg().Dot(hit.Normal), 1.0)
	sinTheta := math.Sqrt(1.0 - cosTheta*cosTheta)

	var direction vectors.Vec3
	if ratio*sinTheta > 1.0 || Reflectance(cosTheta, ratio) > rng.Float64() {
		direction = unitDirection.Reflect(hit.Normal)
	} else {
		direction = unitDirection.Refract(hit.Normal, ratio)
	}
	return vectors.One(), geom.Ray{Origin: hit.Point, Direction: direction}, true
}

// Reflectance is Schlick's approximation of the Fresnel term:
// r0 + (1-r0)(1-cos)^5 with r0 = ((1-η)/(1+η))².
func Reflectance(cosine, refractionRatio float64) float64 {
	r0 := (1 - refractionRatio) / (1 + refractionRatio)
	r0 = r0 * r0
	return r0 + (1-r0)*math.Pow(1-cosine, 5)
}
