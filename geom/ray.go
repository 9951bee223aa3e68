package geom

import "github.com/echoflaresat/spheretrace/vectors"

// Ray is the half-line Origin + t*Direction.
type Ray struct {
	Origin    vectors.Vec3
	Direction vectors.Vec3
}

// At returns the point on the ray at parameter t.
func (r Ray) At(t float64) vectors.Vec3 {
	return r.Origin.Add(r.Direction.Scale(t))
}
