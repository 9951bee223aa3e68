package render

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/echoflaresat/spheretrace/vectors"
)

var ErrInvalidOptions = errors.New("invalid camera options")

// Options configures a Camera. Everything the camera derives is computed once
// from these values in NewCamera.
type Options struct {
	ImageWidth      int
	ImageHeight     int
	SamplesPerPixel int
	MaxDepth        int

	LookFrom vectors.Vec3
	LookAt   vectors.Vec3
	Up       vectors.Vec3

	// VFOV is the vertical field of view in degrees.
	VFOV float64
	// DefocusAngle is the aperture cone angle in degrees; 0 disables blur.
	DefocusAngle float64
	// FocusDist is the distance from LookFrom to the plane of perfect focus.
	FocusDist float64

	Logger *slog.Logger
}

// DefaultOptions looks down -Z from the origin with a 90° field of view.
func DefaultOptions() Options {
	return Options{
		ImageWidth:      400,
		ImageHeight:     225,
		SamplesPerPixel: 100,
		MaxDepth:        50,
		LookFrom:        vectors.New(0, 0, 0),
		LookAt:          vectors.New(0, 0, -1),
		Up:              vectors.New(0, 1, 0),
		VFOV:            90,
		DefocusAngle:    0,
		FocusDist:       1,
	}
}

// Validate reports the first problem that would make rendering meaningless.
func (o Options) Validate() error {
	switch {
	case o.ImageWidth <= 0:
		return fmt.Errorf("%w: image width must be positive, got %d", ErrInvalidOptions, o.ImageWidth)
	case o.ImageHeight <= 0:
		return fmt.Errorf("%w: image height must be positive, got %d", ErrInvalidOptions, o.ImageHeight)
	case o.SamplesPerPixel <= 0:
		return fmt.Errorf("%w: samples per pixel must be positive, got %d", ErrInvalidOptions, o.SamplesPerPixel)
	case o.MaxDepth <= 0:
		return fmt.Errorf("%w: max depth must be positive, got %d", ErrInvalidOptions, o.MaxDepth)
	case o.VFOV <= 0 || o.VFOV >= 180:
		return fmt.Errorf("%w: vertical field of view must be in (0, 180) degrees, got %g", ErrInvalidOptions, o.VFOV)
	case o.DefocusAngle < 0 || o.DefocusAngle >= 180:
		return fmt.Errorf("%w: defocus angle must be in [0, 180) degrees, got %g", ErrInvalidOptions, o.DefocusAngle)
	case o.FocusDist <= 0:
		return fmt.Errorf("%w: focus distance must be positive, got %g", ErrInvalidOptions, o.FocusDist)
	}

	view := o.LookFrom.Sub(o.LookAt)
	if view.NearZero() {
		return fmt.Errorf("%w: look-from and look-at coincide at %v", ErrInvalidOptions, o.LookFrom)
	}
	if o.Up.Cross(view).NearZero() {
		return fmt.Errorf("%w: up vector %v is parallel to the view direction", ErrInvalidOptions, o.Up)
	}
	return nil
}

func (o Options) logger() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return slog.Default()
}
