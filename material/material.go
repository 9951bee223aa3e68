package material

import (
	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/vectors"
)

// Material decides how an incoming ray leaves a surface. ok == false means
// the ray was absorbed.
type Material interface {
	Scatter(in geom.Ray, hit geom.HitRecord, rng vectors.Source) (attenuation vectors.Vec3, scattered geom.Ray, ok bool)
}
