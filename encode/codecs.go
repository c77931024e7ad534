package encode

import (
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// JPEG output is always written at fixed quality.
const jpegQuality = 95

type pngEncoder struct{}

func (pngEncoder) Encode(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

type jpegEncoder struct{}

func (jpegEncoder) Encode(w io.Writer, img image.Image) error {
	return jpeg.Encode(w, img, &jpeg.Options{Quality: jpegQuality})
}

type bmpEncoder struct{}

func (bmpEncoder) Encode(w io.Writer, img image.Image) error {
	return bmp.Encode(w, img)
}

type tiffEncoder struct{}

func (tiffEncoder) Encode(w io.Writer, img image.Image) error {
	return tiff.Encode(w, img, nil)
}
