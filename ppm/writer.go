// Package ppm reads and writes plain-text "P3" portable pixmaps.
package ppm

import (
	"bufio"
	"fmt"
	"io"

	"github.com/echoflaresat/spheretrace/colors"
)

// MaxValue is the only channel maximum written.
const MaxValue = 255

// Writer streams a P3 image: a "P3" line, "<width> <height>", "255", then one
// "<r> <g> <b>" line per pixel.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (p *Writer) Begin(width, height int) error {
	_, err := fmt.Fprintf(p.w, "P3\n%d %d\n%d\n", width, height, MaxValue)
	return err
}

func (p *Writer) WritePixel(c colors.RGB8) error {
	_, err := fmt.Fprintf(p.w, "%d %d %d\n", c.R, c.G, c.B)
	return err
}

// End flushes buffered output. It does not close the underlying writer.
func (p *Writer) End() error {
	return p.w.Flush()
}
