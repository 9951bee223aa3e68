package scene

import (
	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/material"
	"github.com/echoflaresat/spheretrace/vectors"
)

// Scene owns every material and surface. Surfaces refer to materials by
// index, so hit records never hold a material directly.
type Scene struct {
	materials []material.Material
	surfaces  geom.List
}

func New() *Scene {
	return &Scene{}
}

// AddMaterial stores m and returns the index surfaces use to refer to it.
func (s *Scene) AddMaterial(m material.Material) geom.MaterialID {
	s.materials = append(s.materials, m)
	return geom.MaterialID(len(s.materials) - 1)
}

func (s *Scene) AddSphere(center vectors.Vec3, radius float64, mat geom.MaterialID) {
	s.surfaces.Add(geom.NewSphere(center, radius, mat))
}

// Material returns nil for an unknown id.
func (s *Scene) Material(id geom.MaterialID) material.Material {
	if id < 0 || int(id) >= len(s.materials) {
		return nil
	}
	return s.materials[id]
}

func (s *Scene) Hit(r geom.Ray, rayT geom.Interval) (geom.HitRecord, bool) {
	return s.surfaces.Hit(r, rayT)
}

func (s *Scene) NumMaterials() int {
	return len(s.materials)
}

func (s *Scene) NumSurfaces() int {
	return s.surfaces.Len()
}
