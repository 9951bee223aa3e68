package render

import (
	"math"

	"github.com/echoflaresat/spheretrace/geom"
	"github.com/echoflaresat/spheretrace/vectors"
	"github.com/go-gl/mathgl/mgl64"
)

// Camera is a thin-lens camera. All fields are derived once in NewCamera and
// never change afterwards.
type Camera struct {
	opts Options

	Center      vectors.Vec3
	Pixel00     vectors.Vec3 // centre of the top-left pixel
	PixelDeltaU vectors.Vec3 // one pixel to the right
	PixelDeltaV vectors.Vec3 // one pixel down

	// Camera frame: U right, V up, W backwards (away from LookAt).
	U, V, W vectors.Vec3

	DefocusDiskU vectors.Vec3
	DefocusDiskV vectors.Vec3
}

// NewCamera validates opts and derives the viewport and lens geometry.
func NewCamera(opts Options) (*Camera, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	center := opts.LookFrom
	theta := mgl64.DegToRad(opts.VFOV)
	h := math.Tan(theta / 2)
	viewportHeight := 2 * h * opts.FocusDist
	viewportWidth := viewportHeight * float64(opts.ImageWidth) / float64(opts.ImageHeight)

	w := opts.LookFrom.Sub(opts.LookAt).Unit()
	u := opts.Up.Cross(w).Unit()
	v := w.Cross(u)

	// viewport edges; V runs down the image
	viewportU := u.Scale(viewportWidth)
	viewportV := v.Neg().Scale(viewportHeight)

	pixelDeltaU := viewportU.Div(float64(opts.ImageWidth))
	pixelDeltaV := viewportV.Div(float64(opts.ImageHeight))

	upperLeft := center.
		Sub(w.Scale(opts.FocusDist)).
		Sub(viewportU.Scale(0.5)).
		Sub(viewportV.Scale(0.5))
	pixel00 := upperLeft.Add(pixelDeltaU.Add(pixelDeltaV).Scale(0.5))

	defocusRadius := opts.FocusDist * math.Tan(mgl64.DegToRad(opts.DefocusAngle/2))

	return &Camera{
		opts:         opts,
		Center:       center,
		Pixel00:      pixel00,
		PixelDeltaU:  pixelDeltaU,
		PixelDeltaV:  pixelDeltaV,
		U:            u,
		V:            v,
		W:            w,
		DefocusDiskU: u.Scale(defocusRadius),
		DefocusDiskV: v.Scale(defocusRadius),
	}, nil
}

// PixelCenter returns the world position of pixel (i, j)'s centre on the
// focus plane.
func (c *Camera) PixelCenter(i, j int) vectors.Vec3 {
	return c.Pixel00.
		Add(c.PixelDeltaU.Scale(float64(i))).
		Add(c.PixelDeltaV.Scale(float64(j)))
}

// Ray returns a randomly jittered sample ray through pixel (i, j). The
// origin is the lens centre, or a point on the defocus disk when the
// aperture is open.
func (c *Camera) Ray(i, j int, rng vectors.Source) geom.Ray {
	sample := c.PixelCenter(i, j).Add(c.sampleSquare(rng))

	origin := c.Center
	if c.opts.DefocusAngle > 0 {
		origin = c.defocusDiskSample(rng)
	}
	return geom.Ray{Origin: origin, Direction: sample.Sub(origin)}
}

// sampleSquare returns an offset uniform in [-0.5, 0.5) pixels on each axis.
func (c *Camera) sampleSquare(rng vectors.Source) vectors.Vec3 {
	px := rng.Float64() - 0.5
	py := rng.Float64() - 0.5
	return c.PixelDeltaU.Scale(px).Add(c.PixelDeltaV.Scale(py))
}

func (c *Camera) defocusDiskSample(rng vectors.Source) vectors.Vec3 {
	p := vectors.RandomInUnitDisk(rng)
	return c.Center.Add(c.DefocusDiskU.Scale(p.X)).Add(c.DefocusDiskV.Scale(p.Y))
}
