package scene

import (
	"errors"
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/material"
	"github.com/echoflaresat/spheretrace/render"
	"github.com/echoflaresat/spheretrace/vectors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ render.World = (*Scene)(nil)

func TestScene_MaterialTable(t *testing.T) {
	s := New()
	red := s.AddMaterial(material.NewDiffuse(vectors.New(1, 0, 0)))
	glass := s.AddMaterial(material.NewDielectric(1.5))

	assert.Equal(t, geom.MaterialID(0), red)
	assert.Equal(t, geom.MaterialID(1), glass)
	assert.Equal(t, material.NewDielectric(1.5), s.Material(glass))
	assert.Nil(t, s.Material(-1))
	assert.Nil(t, s.Material(2))
	assert.Equal(t, 2, s.NumMaterials())
}

func TestScene_HitResolvesMaterial(t *testing.T) {
	s := New()
	near := s.AddMaterial(material.NewDiffuse(vectors.New(1, 0, 0)))
	far := s.AddMaterial(material.NewMetal(vectors.One(), 0))
	s.AddSphere(vectors.New(0, 0, -6), 1, far)
	s.AddSphere(vectors.New(0, 0, -3), 1, near)

	r := geom.Ray{Origin: vectors.Zero(), Direction: vectors.New(0, 0, -1)}
	rec, ok := s.Hit(r, geom.NewInterval(0.001, math.Inf(1)))
	require.True(t, ok)
	assert.Equal(t, near, rec.Material)
	assert.IsType(t, material.Diffuse{}, s.Material(rec.Material))
	assert.Equal(t, 2, s.NumSurfaces())
}

func TestPresets(t *testing.T) {
	for _, name := range PresetNames() {
		t.Run(name, func(t *testing.T) {
			s, opts, err := Preset(name, rand.New(rand.NewSource(1)))
			require.NoError(t, err)
			require.NoError(t, opts.Validate())
			assert.Greater(t, s.NumSurfaces(), 0)

			_, err = render.NewCamera(opts)
			require.NoError(t, err)
		})
	}

	_, _, err := Preset("nope", rand.New(rand.NewSource(1)))
	assert.True(t, errors.Is(err, ErrUnknownPreset))
}

func TestCover_DeterministicLayout(t *testing.T) {
	a, _ := Cover(rand.New(rand.NewSource(4)))
	b, _ := Cover(rand.New(rand.NewSource(4)))
	assert.Equal(t, a, b)
	assert.Greater(t, a.NumSurfaces(), 300)
}

func TestLoad(t *testing.T) {
	s, opts, err := Load("testdata/bubble.yaml")
	require.NoError(t, err)

	assert.Equal(t, 160, opts.ImageWidth)
	assert.Equal(t, 90, opts.ImageHeight)
	assert.Equal(t, 16, opts.SamplesPerPixel)
	assert.Equal(t, 10, opts.MaxDepth)
	assert.Equal(t, vectors.New(-2, 2, 1), opts.LookFrom)
	assert.Equal(t, vectors.New(0, 1, 0), opts.Up, "up falls back to the default")
	assert.Equal(t, 3.4, opts.FocusDist)

	assert.Equal(t, 3, s.NumMaterials())
	assert.Equal(t, 4, s.NumSurfaces())
	// name order: glass, gold, ground
	assert.Equal(t, material.NewDielectric(1.5), s.Material(0))
	assert.Equal(t, material.NewMetal(vectors.New(0.8, 0.6, 0.2), 0.3), s.Material(1))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want error
	}{
		{
			name: "unknown material reference",
			src:  "materials: {a: {type: glass, ior: 1.5}}\nspheres: [{center: [0,0,0], radius: 1, material: b}]",
			want: ErrUnknownMaterial,
		},
		{
			name: "unknown material type",
			src:  "materials: {a: {type: plastic}}",
			want: ErrUnknownMaterial,
		},
		{
			name: "short vector",
			src:  "materials: {a: {type: diffuse, albedo: [1, 1]}}",
			want: ErrInvalidScene,
		},
		{
			name: "unknown field",
			src:  "lights: []",
			want: ErrInvalidScene,
		},
		{
			name: "zero radius",
			src:  "materials: {a: {type: glass, ior: 1.5}}\nspheres: [{center: [0,0,0], radius: 0, material: a}]",
			want: ErrInvalidScene,
		},
		{
			name: "bad ior",
			src:  "materials: {a: {type: dielectric}}",
			want: ErrInvalidScene,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(strings.NewReader(tt.src))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.want), "got %v", err)
		})
	}
}
