/*
Package attr implements an encoder and decoder for raw VGA text mode cell
data where the picture is carried by the background color of each cell.

Each cell is a 16-bit little-endian word. The low byte is the character and
the high byte is the attribute; the upper nibble of the attribute selects the
background color from the 16 color VGA palette and the lower nibble the
foreground color. The encoder writes character 0 and foreground 0 so every
word is the palette index shifted left by 12.

There is no header. Cells are stored in row-major order, one per pixel, so
an image W pixels wide and H pixels high produces exactly 2*W*H bytes. A full
text mode screen is 80 by 25 cells.
*/
package attr

import (
	"encoding/binary"
	"errors"
	"image"
	"image/color"
)

const (
	// ScreenWidth is the number of cells in a text mode row
	ScreenWidth = 80
	// ScreenHeight is the number of rows on a text mode screen
	ScreenHeight = 25
	// CellSize is the size in bytes of each cell
	CellSize = 2

	backgroundShift = 12
)

// ByteOrder is the byte order of each cell.
var ByteOrder = binary.LittleEndian

var (
	// ErrGrayscale is returned for images with fewer than three channels
	ErrGrayscale = errors.New("attr: grayscale images are not supported")
	// ErrEmpty is returned for images or cell data with no pixels
	ErrEmpty = errors.New("attr: empty image")
	// ErrSize is returned when cell data doesn't fill whole rows
	ErrSize = errors.New("attr: cell data is not a whole number of rows")
	// ErrWidth is returned when decoding with a width less than one
	ErrWidth = errors.New("attr: invalid width")
)

func grayscale(m image.Image) bool {
	switch m.(type) {
	case *image.Gray, *image.Gray16, *image.Alpha, *image.Alpha16:
		return true
	}

	switch m.ColorModel() {
	case color.GrayModel, color.Gray16Model, color.AlphaModel, color.Alpha16Model:
		return true
	}

	return false
}

// Channels returns the number of color channels m carries, either 3 or 4.
// Grayscale images return ErrGrayscale.
func Channels(m image.Image) (int, error) {
	if grayscale(m) {
		return 0, ErrGrayscale
	}

	switch m := m.(type) {
	case *image.YCbCr:
		return 3, nil
	case *image.RGBA:
		// Decoders only produce premultiplied images for formats without
		// an alpha channel, unless it's actually used
		return opaqueChannels(m.Opaque()), nil
	case *image.RGBA64:
		return opaqueChannels(m.Opaque()), nil
	case *image.Paletted:
		for _, c := range m.Palette {
			if _, _, _, a := c.RGBA(); a != 0xffff {
				return 4, nil
			}
		}
		return 3, nil
	}

	// Includes CMYK
	return 4, nil
}

func opaqueChannels(opaque bool) int {
	if opaque {
		return 3
	}
	return 4
}

func cell(index uint8) uint16 {
	return uint16(index&0x0f) << backgroundShift
}

func background(c uint16) uint8 {
	return uint8(c >> backgroundShift)
}
