package attr

import (
	"image"
	"io"
	"io/ioutil"

	"github.com/bodgit/vgabytes/palette"
)

type decoder struct {
	width, height int

	image *image.Paletted
	tmp   []byte
}

func (d *decoder) decode(r io.Reader, width int) error {
	if width < 1 {
		return ErrWidth
	}
	d.width = width

	var err error
	if d.tmp, err = ioutil.ReadAll(r); err != nil {
		return err
	}

	switch {
	case len(d.tmp) == 0:
		return ErrEmpty
	case len(d.tmp)%(CellSize*width) != 0:
		return ErrSize
	}
	d.height = len(d.tmp) / (CellSize * width)

	d.image = image.NewPaletted(image.Rect(0, 0, d.width, d.height), palette.Palette)

	for i := range d.image.Pix {
		// Character and foreground are ignored
		d.image.Pix[i] = background(ByteOrder.Uint16(d.tmp[i*CellSize:]))
	}

	return nil
}

// Decode reads VGA text mode cells from r, arranged in rows of width cells,
// and returns an image of the background colors.
func Decode(r io.Reader, width int) (*image.Paletted, error) {
	var d decoder
	if err := d.decode(r, width); err != nil {
		return nil, err
	}
	return d.image, nil
}
