/*
Package vgabytes is a library for converting images into raw VGA text mode
cell data, where each pixel becomes one cell whose background color is the
closest color in the 16 color VGA palette.
*/
package vgabytes

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/bodgit/vgabytes/attr"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrInput wraps any failure to read or decode the source image
	ErrInput = errors.New("input error")
	// ErrOutput wraps any failure to write the destination file
	ErrOutput = errors.New("output error")
)

type wrappedError struct {
	kind error
	err  error
}

func (e *wrappedError) Error() string {
	return e.err.Error()
}

func (e *wrappedError) Unwrap() error {
	return e.err
}

func (e *wrappedError) Is(target error) bool {
	return target == e.kind
}

func inputError(format string, a ...interface{}) error {
	return &wrappedError{ErrInput, fmt.Errorf(format, a...)}
}

func outputError(format string, a ...interface{}) error {
	return &wrappedError{ErrOutput, fmt.Errorf(format, a...)}
}

// Shape describes the dimensions of a decoded image.
type Shape struct {
	Height, Width, Channels int
}

func (s Shape) String() string {
	return fmt.Sprintf("(%d, %d, %d)", s.Height, s.Width, s.Channels)
}

// ShapeOf returns the shape of m.
func ShapeOf(m image.Image) (Shape, error) {
	c, err := attr.Channels(m)
	if err != nil {
		return Shape{}, err
	}
	b := m.Bounds()
	return Shape{
		Height:   b.Dy(),
		Width:    b.Dx(),
		Channels: c,
	}, nil
}

// Converter converts image files into VGA text mode cell files.
type Converter struct {
	w      io.Writer
	logger *log.Logger
}

// New returns a Converter that prints the shape of each image it decodes
// to w.
func New(w io.Writer, logger *log.Logger) *Converter {
	return &Converter{
		w:      w,
		logger: logger,
	}
}

const (
	pngHeaderSize     = 26 // Signature and IHDR up to the color type
	pngColorType      = 25
	pngGray           = 0
	pngGrayscaleAlpha = 4
)

func pngGrayscale(hdr []byte) bool {
	if len(hdr) < pngHeaderSize {
		return false
	}
	switch hdr[pngColorType] {
	case pngGray, pngGrayscaleAlpha:
		return true
	}
	return false
}

func decodeFile(file string) (image.Image, string, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, "", err
	}
	defer f.Close()

	r := bufio.NewReader(f)

	// Short reads are left for image.Decode to report
	hdr, _ := r.Peek(pngHeaderSize)

	m, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", file, err)
	}

	// The png package expands gray with alpha to NRGBA
	if format == "png" && pngGrayscale(hdr) {
		return nil, "", fmt.Errorf("%s: %w", file, attr.ErrGrayscale)
	}

	return m, format, nil
}

// Convert reads the image in src and writes the cell data to dst. Nothing is
// written to dst unless the image was decoded and converted successfully.
func (c *Converter) Convert(src, dst string) error {
	m, format, err := decodeFile(src)
	if err != nil {
		return inputError("%w", err)
	}
	c.logger.Printf("Decoded %s image %q\n", format, src)

	shape, err := ShapeOf(m)
	if err != nil {
		return inputError("%s: %w", src, err)
	}
	fmt.Fprintln(c.w, shape)

	if shape.Width != attr.ScreenWidth || shape.Height != attr.ScreenHeight {
		c.logger.Printf("Image is %dx%d, a text mode screen is %dx%d\n", shape.Width, shape.Height, attr.ScreenWidth, attr.ScreenHeight)
	}

	b := new(bytes.Buffer)
	if err := attr.Encode(b, m); err != nil {
		return inputError("%s: %w", src, err)
	}

	f, err := os.Create(dst)
	if err != nil {
		return outputError("%w", err)
	}

	if _, err = f.Write(b.Bytes()); err != nil {
		f.Close()
		return outputError("%w", err)
	}

	if err = f.Close(); err != nil {
		return outputError("%w", err)
	}

	c.logger.Printf("Wrote %d bytes to %q\n", b.Len(), dst)

	return nil
}
