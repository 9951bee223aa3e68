package colors

import (
	"image/color"
	"math"
	"testing"

	"github.com/echoflaresat/spheretrace/vectors"
	"github.com/stretchr/testify/assert"
)

func TestFromSamples(t *testing.T) {
	tests := []struct {
		name    string
		sum     vectors.Vec3
		samples int
		want    RGB8
	}{
		{"black", vectors.Zero(), 1, RGB8{0, 0, 0}},
		{"white saturates at 255", vectors.One(), 1, RGB8{255, 255, 255}},
		{"overbright clamps", vectors.New(4, 9, 100), 1, RGB8{255, 255, 255}},
		{"negative clamps to zero", vectors.New(-1, -0.5, 0), 1, RGB8{0, 0, 0}},
		// sqrt(0.25) = 0.5 -> 128
		{"gamma two", vectors.New(0.25, 0.25, 0.25), 1, RGB8{128, 128, 128}},
		{"averaged", vectors.New(1, 0.5, 0), 2, RGB8{181, 128, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FromSamples(tt.sum, tt.samples))
		})
	}
}

func TestLinearToGamma(t *testing.T) {
	assert.Equal(t, 0.0, LinearToGamma(-1))
	assert.Equal(t, 0.0, LinearToGamma(0))
	assert.InDelta(t, math.Sqrt(0.3), LinearToGamma(0.3), 1e-15)
}

func TestMix(t *testing.T) {
	assert.Equal(t, White(), Mix(White(), SkyBlue(), 0))
	assert.Equal(t, SkyBlue(), Mix(White(), SkyBlue(), 1))
	half := Mix(White(), SkyBlue(), 0.5)
	assert.InDelta(t, 0.75, half.X, 1e-15)
	assert.InDelta(t, 0.85, half.Y, 1e-15)
	assert.InDelta(t, 1.0, half.Z, 1e-15)
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 0.5, Clamp(0.5, 0.0, 1.0))
	assert.Equal(t, 0.0, Clamp(-2.0, 0.0, 1.0))
	assert.Equal(t, 255, Clamp(300, 0, 255))
}

func TestRGB8_Color(t *testing.T) {
	c := RGB8{10, 20, 30}
	assert.Equal(t, color.NRGBA{10, 20, 30, 255}, c.NRGBA())
	r, g, b, a := c.RGBA()
	assert.Equal(t, [4]uint32{10 * 0x101, 20 * 0x101, 30 * 0x101, 0xffff}, [4]uint32{r, g, b, a})
}
