package attr

import (
	"image"
	"image/color"
	"io"

	"github.com/bodgit/vgabytes/palette"
)

// Read the non-premultiplied 8-bit red, green and blue of the pixel at x, y
// so the alpha channel never influences the match
func rgbAt(m image.Image, x, y int) (uint8, uint8, uint8) {
	switch m := m.(type) {
	case *image.NRGBA:
		i := m.PixOffset(x, y)
		return m.Pix[i+0], m.Pix[i+1], m.Pix[i+2]
	case *image.NRGBA64:
		i := m.PixOffset(x, y)
		return m.Pix[i+0], m.Pix[i+2], m.Pix[i+4]
	}
	c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
	return c.R, c.G, c.B
}

// Quantize maps every pixel of m to the index of the closest VGA palette
// color. The result has the same dimensions as m with the top-left corner at
// (0, 0).
func Quantize(m image.Image) (*image.Paletted, error) {
	if grayscale(m) {
		return nil, ErrGrayscale
	}

	b := m.Bounds()
	if b.Empty() {
		return nil, ErrEmpty
	}

	p := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.Palette)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl := rgbAt(m, x, y)
			p.SetColorIndex(x-b.Min.X, y-b.Min.Y, uint8(palette.Index(r, g, bl)))
		}
	}

	return p, nil
}

// Append packs the index grid p as cells in row-major order and appends them
// to dst.
func Append(dst []byte, p *image.Paletted) []byte {
	b := p.Bounds()
	var tmp [CellSize]byte
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			ByteOrder.PutUint16(tmp[:], cell(p.ColorIndexAt(x, y)))
			dst = append(dst, tmp[:]...)
		}
	}
	return dst
}

// Encode writes the Image m to w as VGA text mode cells.
func Encode(w io.Writer, m image.Image) error {
	p, err := Quantize(m)
	if err != nil {
		return err
	}

	// Build the whole buffer before anything is written
	b := p.Bounds()
	buf := Append(make([]byte, 0, b.Dx()*b.Dy()*CellSize), p)

	_, err = w.Write(buf)
	return err
}
