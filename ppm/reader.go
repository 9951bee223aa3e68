package ppm

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"strconv"

	"github.com/echoflaresat/spheretrace/colors"
)

var ErrInvalidHeader = errors.New("invalid PPM header")

// MaxPixels bounds width*height so a tiny header cannot force a huge
// allocation.
const MaxPixels = 1 << 26

// Decode reads a P3 image. Comments ("#" to end of line) and arbitrary
// whitespace between tokens are accepted; channels are rescaled to 8 bits
// when the file's maximum value is not 255.
func Decode(r io.Reader) (*image.NRGBA, error) {
	tr := &tokenReader{r: bufio.NewReader(r)}
	magic, err := tr.next()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if magic != "P3" {
		return nil, fmt.Errorf("%w: unsupported magic %q", ErrInvalidHeader, magic)
	}

	width, err := tr.int()
	if err != nil {
		return nil, fmt.Errorf("%w: width: %v", ErrInvalidHeader, err)
	}
	height, err := tr.int()
	if err != nil {
		return nil, fmt.Errorf("%w: height: %v", ErrInvalidHeader, err)
	}
	maxVal, err := tr.int()
	if err != nil {
		return nil, fmt.Errorf("%w: max value: %v", ErrInvalidHeader, err)
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid dimensions %dx%d", ErrInvalidHeader, width, height)
	}
	if width > MaxPixels/height {
		return nil, fmt.Errorf("%w: %dx%d exceeds %d pixels", ErrInvalidHeader, width, height, MaxPixels)
	}
	if maxVal <= 0 || maxVal > 65535 {
		return nil, fmt.Errorf("%w: invalid max value %d", ErrInvalidHeader, maxVal)
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var ch [3]uint8
			for k := range ch {
				v, err := tr.int()
				if err != nil {
					return nil, fmt.Errorf("pixel (%d,%d): %w", x, y, err)
				}
				if v < 0 || v > maxVal {
					return nil, fmt.Errorf("pixel (%d,%d): channel %d out of range [0,%d]", x, y, v, maxVal)
				}
				ch[k] = uint8(v * 255 / maxVal)
			}
			img.SetNRGBA(x, y, colors.RGB8{R: ch[0], G: ch[1], B: ch[2]}.NRGBA())
		}
	}
	return img, nil
}

type tokenReader struct {
	r   *bufio.Reader
	buf []byte
}

// next returns the next whitespace-separated token, skipping comments.
func (t *tokenReader) next() (string, error) {
	t.buf = t.buf[:0]
	for {
		b, err := t.r.ReadByte()
		if err == io.EOF {
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
			return "", io.ErrUnexpectedEOF
		}
		if err != nil {
			return "", err
		}

		switch {
		case b == '#' && len(t.buf) == 0:
			if _, err := t.r.ReadString('\n'); err != nil && err != io.EOF {
				return "", err
			}
		case isSpace(b):
			if len(t.buf) > 0 {
				return string(t.buf), nil
			}
		default:
			t.buf = append(t.buf, b)
		}
	}
}

func (t *tokenReader) int() (int, error) {
	tok, err := t.next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(tok)
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r' || b == '\v' || b == '\f'
}
