/*
Package palette implements the fixed 16 color VGA palette and the nearest
color search used to map arbitrary RGB values onto it.

The palette is built from the four VGA intensity levels, 0, 1/3, 2/3 and 1,
scaled to the 0-255 range. Colors are matched by squared euclidean distance
over the red, green and blue channels only.
*/
package palette

import (
	"image/color"
	"math"
)

// Size is the number of colors in the palette.
const Size = 16

// Color is a palette entry. Channels are in the range 0-255 and are kept as
// floating point so matching is never affected by rounding.
type Color struct {
	R, G, B float64
}

// RGBA implements the color.Color interface.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(math.Round(c.R)) * 0x101
	g = uint32(math.Round(c.G)) * 0x101
	b = uint32(math.Round(c.B)) * 0x101
	a = 0xffff
	return
}

var levels = [4]float64{0, 1.0 / 3, 2.0 / 3, 1}

// Red, green and blue of each entry as an index into levels
var entries = [Size][3]int{
	{0, 0, 0},
	{0, 0, 2},
	{0, 2, 0},
	{0, 2, 2},
	{2, 0, 0},
	{2, 0, 2},
	{2, 1, 0},
	{2, 2, 2},

	{1, 1, 1},
	{1, 1, 3},
	{1, 3, 1},
	{1, 3, 3},
	{3, 1, 1},
	{3, 1, 3},
	{3, 3, 1},
	{3, 3, 3},
}

// VGA holds the palette in index order.
var VGA [Size]Color

// Palette is VGA rounded to 8-bit colors, for use as the color model of
// paletted images. It is not used for matching.
var Palette color.Palette

// Names gives a readable name for each palette index.
var Names = [Size]string{
	"black",
	"blue",
	"green",
	"cyan",
	"red",
	"magenta",
	"brown",
	"light gray",
	"dark gray",
	"light blue",
	"light green",
	"light cyan",
	"light red",
	"light magenta",
	"yellow",
	"white",
}

func init() {
	Palette = make(color.Palette, Size)
	for i, e := range entries {
		scale := 255.0
		VGA[i] = Color{
			R: levels[e[0]] * scale,
			G: levels[e[1]] * scale,
			B: levels[e[2]] * scale,
		}
		Palette[i] = color.RGBAModel.Convert(VGA[i])
	}
}

// Distance returns the squared euclidean distance between the color r, g, b
// and palette entry k.
func Distance(r, g, b uint8, k int) float64 {
	dr := float64(r) - VGA[k].R
	dg := float64(g) - VGA[k].G
	db := float64(b) - VGA[k].B
	return dr*dr + dg*dg + db*db
}

// Index returns the index of the palette entry closest to r, g, b. When more
// than one entry is equally close the lowest index wins.
func Index(r, g, b uint8) int {
	best, bestDist := 0, math.Inf(1)
	for k := range VGA {
		if d := Distance(r, g, b, k); d < bestDist {
			best, bestDist = k, d
		}
	}
	return best
}
