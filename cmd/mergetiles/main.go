// Command mergetiles stitches equally sized rendered tiles into one image.
//
//	mergetiles <cols>x<rows> <output.png|.jpg|.tif> <tile1> <tile2> ...
//
// Tiles are placed row-major, left to right. PPM, TIFF, PNG and JPEG tiles
// are accepted.
package main

import (
	"bytes"
	"fmt"
	"image"
	"image/draw"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/echoflaresat/spheretrace/ppm"
	etiff "github.com/echoflaresat/tiff"
	"golang.org/x/image/tiff"
)

func main() {
	if len(os.Args) < 4 {
		fmt.Fprintf(os.Stderr, "Usage: %s <cols>x<rows> <output.png> <tile1> <tile2> ...\n", os.Args[0])
		os.Exit(1)
	}

	cols, rows, err := parseLayout(os.Args[1])
	if err != nil {
		log.Fatal(err)
	}

	output := os.Args[2]
	canvas, err := mergeTiles(cols, rows, os.Args[3:])
	if err != nil {
		log.Fatal(err)
	}
	if err := save(output, canvas); err != nil {
		log.Fatalf("Could not write %s: %v", output, err)
	}
}

func parseLayout(s string) (cols, rows int, err error) {
	parts := strings.Split(s, "x")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid tile layout %q (expected NxM)", s)
	}
	if cols, err = strconv.Atoi(parts[0]); err != nil || cols <= 0 {
		return 0, 0, fmt.Errorf("invalid cols in %q", s)
	}
	if rows, err = strconv.Atoi(parts[1]); err != nil || rows <= 0 {
		return 0, 0, fmt.Errorf("invalid rows in %q", s)
	}
	return cols, rows, nil
}

// mergeTiles draws each tile into its grid cell. Every tile must match the
// size of the first.
func mergeTiles(cols, rows int, paths []string) (*image.NRGBA, error) {
	if len(paths) != cols*rows {
		return nil, fmt.Errorf("expected %d input files, got %d", cols*rows, len(paths))
	}

	var canvas *image.NRGBA
	var tileW, tileH int
	for idx, path := range paths {
		slog.Info("processing tile", "path", path, "index", idx)
		tile, err := loadImage(path)
		if err != nil {
			return nil, fmt.Errorf("could not load %q: %w", path, err)
		}

		if canvas == nil {
			tileW = tile.Bounds().Dx()
			tileH = tile.Bounds().Dy()
			canvas = image.NewNRGBA(image.Rect(0, 0, cols*tileW, rows*tileH))
		} else if tileW != tile.Bounds().Dx() || tileH != tile.Bounds().Dy() {
			return nil, fmt.Errorf("tile size mismatch for %q: expected %dx%d, got %dx%d",
				path, tileW, tileH, tile.Bounds().Dx(), tile.Bounds().Dy())
		}

		x := (idx % cols) * tileW
		y := (idx / cols) * tileH
		draw.Draw(canvas, image.Rect(x, y, x+tileW, y+tileH), tile, tile.Bounds().Min, draw.Over)
	}
	return canvas, nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return decode(f, strings.ToLower(filepath.Ext(path)))
}

func decode(r io.Reader, ext string) (image.Image, error) {
	switch ext {
	case ".ppm":
		return ppm.Decode(r)
	case ".tif", ".tiff":
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		// Strip-based tiles decode directly; compressed ones go through x/image.
		if img, err := etiff.Decode(bytes.NewReader(data)); err == nil {
			return img, nil
		}
		return tiff.Decode(bytes.NewReader(data))
	default:
		img, _, err := image.Decode(r)
		return img, err
	}
}

func save(output string, canvas *image.NRGBA) error {
	slog.Info("creating output", "path", output)
	outFile, err := os.Create(output)
	if err != nil {
		return err
	}
	defer outFile.Close()

	switch ext := strings.ToLower(filepath.Ext(output)); ext {
	case ".png":
		err = png.Encode(outFile, canvas)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(outFile, canvas, &jpeg.Options{Quality: 95})
	case ".tif", ".tiff":
		err = tiff.Encode(outFile, canvas, nil)
	default:
		err = fmt.Errorf("unsupported output format: %s", ext)
	}
	if err != nil {
		return err
	}
	return outFile.Close()
}
