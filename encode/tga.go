package encode

import (
	"fmt"
	"image"
	"image/draw"
	"io"
)

// tgaEncoder writes uncompressed 32-bit true-color TGA. No library in
// use here encodes TGA, and the format stores pixels as BGRA, so the
// RGBA to BGRA byte-order conversion is done explicitly before writing.
type tgaEncoder struct{}

func (tgaEncoder) Encode(w io.Writer, img image.Image) error {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	if width > 0xffff || height > 0xffff {
		return fmt.Errorf("image %dx%d exceeds TGA size limit", width, height)
	}

	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(bounds)
		draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)
	}

	// 18-byte header: uncompressed true-color (type 2), 32 bpp,
	// top-left origin, 8 alpha bits in the descriptor.
	header := [18]byte{
		2: 2,
		12: byte(width), 13: byte(width >> 8),
		14: byte(height), 15: byte(height >> 8),
		16: 32,
		17: 0x28,
	}
	if _, err := w.Write(header[:]); err != nil {
		return err
	}

	row := make([]byte, width*4)
	for y := 0; y < height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		for x := 0; x < width; x++ {
			row[x*4+0] = src[x*4+2] // B
			row[x*4+1] = src[x*4+1] // G
			row[x*4+2] = src[x*4+0] // R
			row[x*4+3] = src[x*4+3] // A
		}
		if _, err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}
