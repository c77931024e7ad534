package encode

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"gocv.io/x/gocv"
)

// webpEncoder goes through OpenCV's imencode, the one encoder in the
// stack that writes WebP. OpenCV expects BGRA channel order.
type webpEncoder struct{}

func (webpEncoder) Encode(w io.Writer, img image.Image) error {
	mat, err := matFromImage(img)
	if err != nil {
		return err
	}
	defer mat.Close()

	buf, err := gocv.IMEncode(gocv.FileExt(".webp"), mat)
	if err != nil {
		return fmt.Errorf("imencode: %w", err)
	}
	defer buf.Close()

	_, err = w.Write(buf.GetBytes())
	return err
}

// matFromImage builds a 4-channel BGRA Mat from any image.
func matFromImage(img image.Image) (gocv.Mat, error) {
	bounds := img.Bounds()
	nrgba, ok := img.(*image.NRGBA)
	if !ok {
		nrgba = image.NewNRGBA(bounds)
		draw.Draw(nrgba, bounds, img, bounds.Min, draw.Src)
	}

	width := bounds.Dx()
	height := bounds.Dy()
	bgra := make([]byte, width*height*4)
	for y := 0; y < height; y++ {
		src := nrgba.Pix[y*nrgba.Stride : y*nrgba.Stride+width*4]
		dst := bgra[y*width*4:]
		for x := 0; x < width; x++ {
			dst[x*4+0] = src[x*4+2]
			dst[x*4+1] = src[x*4+1]
			dst[x*4+2] = src[x*4+0]
			dst[x*4+3] = src[x*4+3]
		}
	}

	mat, err := gocv.NewMatFromBytes(height, width, gocv.MatTypeCV8UC4, bgra)
	if err != nil {
		return gocv.Mat{}, fmt.Errorf("mat from bytes: %w", err)
	}
	return mat, nil
}
