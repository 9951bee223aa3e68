package render

import (
	"errors"
	"image"

	"github.com/echoflaresat/spheretrace/colors"
)

var errImageFull = errors.New("image sink: more pixels than width*height")

// ImageSink collects rendered pixels into an in-memory image for PNG or TIFF
// encoding.
type ImageSink struct {
	img *image.NRGBA
	n   int
}

func NewImageSink() *ImageSink {
	return &ImageSink{}
}

func (s *ImageSink) Begin(width, height int) error {
	s.img = image.NewNRGBA(image.Rect(0, 0, width, height))
	s.n = 0
	return nil
}

func (s *ImageSink) WritePixel(c colors.RGB8) error {
	if s.img == nil {
		return errors.New("image sink: WritePixel before Begin")
	}
	w := s.img.Bounds().Dx()
	if s.n >= w*s.img.Bounds().Dy() {
		return errImageFull
	}
	s.img.SetNRGBA(s.n%w, s.n/w, c.NRGBA())
	s.n++
	return nil
}

func (s *ImageSink) End() error {
	return nil
}

// Image returns the collected image; nil before Begin.
func (s *ImageSink) Image() *image.NRGBA {
	return s.img
}
