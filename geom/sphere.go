package geom

import (
	"math"

	"github.com/echoflaresat/spheretrace/vectors"
)

// Sphere is an analytic sphere. A negative Radius flips the outward normal,
// turning the sphere into an inward-facing shell (used for hollow glass).
type Sphere struct {
	Center   vectors.Vec3
	Radius   float64
	Material MaterialID
}

func NewSphere(center vectors.Vec3, radius float64, material MaterialID) Sphere {
	return Sphere{Center: center, Radius: radius, Material: material}
}

// Hit solves |O + tD - C|² = r² with the half-b form of the quadratic and
// returns the smaller root inside rayT, falling back to the larger one.
func (s Sphere) Hit(r Ray, rayT Interval) (HitRecord, bool) {
	oc := r.Origin.Sub(s.Center)
	a := r.Direction.LengthSquared()
	halfB := oc.Dot(r.Direction)
	c := oc.LengthSquared() - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return HitRecord{}, false
	}
	sqrtD := math.Sqrt(discriminant)

	root := (-halfB - sqrtD) / a
	if !rayT.Surrounds(root) {
		root = (-halfB + sqrtD) / a
		if !rayT.Surrounds(root) {
			return HitRecord{}, false
		}
	}

	rec := HitRecord{
		T:        root,
		Point:    r.At(root),
		Material: s.Material,
	}
	outwardNormal := rec.Point.Sub(s.Center).Div(s.Radius)
	rec.SetFaceNormal(r, outwardNormal)
	return rec, true
}
