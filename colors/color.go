package colors

import (
	"image/color"
	"math"

	"github.com/echoflaresat/spheretrace/vectors"
	"golang.org/x/exp/constraints"
)

// Linear radiance travels through the renderer as vectors.Vec3 (R,G,B in
// X,Y,Z). RGB8 is the display-ready result after averaging, gamma and
// quantization.
type RGB8 struct {
	R, G, B uint8
}

func (c RGB8) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func (c RGB8) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

func White() vectors.Vec3 {
	return vectors.New(1, 1, 1)
}

func Black() vectors.Vec3 {
	return vectors.New(0, 0, 0)
}

func SkyBlue() vectors.Vec3 {
	return vectors.New(0.5, 0.7, 1.0)
}

// Mix returns lerp(c, o, t) = c*(1-t) + o*t.
func Mix(c, o vectors.Vec3, t float64) vectors.Vec3 {
	return c.Scale(1.0 - t).Add(o.Scale(t))
}

// LinearToGamma applies gamma 2 (square root). Non-positive input maps to 0.
func LinearToGamma(x float64) float64 {
	if x > 0 {
		return math.Sqrt(x)
	}
	return 0
}

// FromSamples averages an accumulated sum of samples, gamma-corrects each
// channel and quantizes it to 0..255.
func FromSamples(sum vectors.Vec3, samples int) RGB8 {
	avg := sum.Scale(1.0 / float64(samples))
	return RGB8{
		R: to8bit(LinearToGamma(avg.X)),
		G: to8bit(LinearToGamma(avg.Y)),
		B: to8bit(LinearToGamma(avg.Z)),
	}
}

// Clamp pins x into [lo, hi].
func Clamp[T constraints.Integer | constraints.Float](x, lo, hi T) T {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// to8bit clamps to [0, 0.999] and truncates 256*x, so 1.0 lands on 255.
func to8bit(x float64) uint8 {
	return uint8(256 * Clamp(x, 0.0, 0.999))
}
