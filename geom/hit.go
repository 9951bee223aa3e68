package geom

import "github.com/echoflaresat/spheretrace/vectors"

// MaterialID indexes the material table owned by the scene. Hit records
// carry the index rather than the material itself.
type MaterialID int

// HitRecord describes a ray-surface intersection. Normal is unit length and
// always faces against the incoming ray.
type HitRecord struct {
	Point     vectors.Vec3
	Normal    vectors.Vec3
	T         float64
	FrontFace bool
	Material  MaterialID
}

// SetFaceNormal orients the normal against r given the geometric outward
// normal (assumed unit length).
func (h *HitRecord) SetFaceNormal(r Ray, outwardNormal vectors.Vec3) {
	h.FrontFace = r.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Neg()
	}
}

// Hittable is anything a ray can intersect. Hit returns the nearest
// intersection whose parameter lies strictly inside rayT.
type Hittable interface {
	Hit(r Ray, rayT Interval) (HitRecord, bool)
}
