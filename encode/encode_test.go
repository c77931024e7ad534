package encode

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

func TestFormatForPath(t *testing.T) {
	cases := []struct {
		path string
		want Format
	}{
		{"out.png", FormatPNG},
		{"out.PNG", FormatPNG},
		{"out.jpg", FormatJPEG},
		{"out.jpeg", FormatJPEG},
		{"out.webp", FormatWebP},
		{"out.bmp", FormatBMP},
		{"out.tga", FormatTGA},
		{"out.tiff", FormatTIFF},
		{"out.tif", FormatTIFF},
		{"out.xyz", FormatPNG},
		{"out", FormatPNG},
		{"dir.tga/out", FormatPNG},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, FormatForPath(tc.path), tc.path)
	}
}

func TestFormatExtension(t *testing.T) {
	require.Equal(t, ".png", FormatPNG.Extension())
	require.Equal(t, ".jpg", FormatJPEG.Extension())
	require.Equal(t, ".tiff", FormatTIFF.Extension())
}

func testImage() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: byte(x * 40), G: byte(y * 80), B: 200, A: 255})
		}
	}
	return img
}

func TestEncodePNGRoundtrip(t *testing.T) {
	src := testImage()
	data, err := Encode(src, FormatPNG)
	require.NoError(t, err)

	decoded, err := png.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), decoded.Bounds())
	require.Equal(t, src.At(3, 1), color.NRGBAModel.Convert(decoded.At(3, 1)))
}

func TestEncodeBMPRoundtrip(t *testing.T) {
	src := testImage()
	data, err := Encode(src, FormatBMP)
	require.NoError(t, err)

	decoded, err := bmp.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), decoded.Bounds())
}

func TestEncodeTIFFRoundtrip(t *testing.T) {
	src := testImage()
	data, err := Encode(src, FormatTIFF)
	require.NoError(t, err)

	decoded, err := tiff.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, src.Bounds(), decoded.Bounds())
}

func TestEncodeJPEGDecodable(t *testing.T) {
	data, err := Encode(testImage(), FormatJPEG)
	require.NoError(t, err)
	require.Equal(t, []byte{0xff, 0xd8}, data[:2], "JPEG SOI marker")

	decoded, err := jpeg.Decode(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 4, 2), decoded.Bounds())
}

func TestEncodeTGA(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	src.SetNRGBA(0, 0, color.NRGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetNRGBA(1, 0, color.NRGBA{R: 40, G: 50, B: 60, A: 128})

	data, err := Encode(src, FormatTGA)
	require.NoError(t, err)
	require.Len(t, data, 18+2*4)

	header := data[:18]
	require.EqualValues(t, 2, header[2], "uncompressed true-color")
	require.EqualValues(t, 2, header[12], "width low byte")
	require.EqualValues(t, 0, header[13], "width high byte")
	require.EqualValues(t, 1, header[14], "height low byte")
	require.EqualValues(t, 32, header[16], "bits per pixel")
	require.EqualValues(t, 0x28, header[17], "top-left origin, 8 alpha bits")

	// Pixels are BGRA.
	require.Equal(t, []byte{30, 20, 10, 255}, data[18:22])
	require.Equal(t, []byte{60, 50, 40, 128}, data[22:26])
}

func TestEncodeTGARejectsOversize(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 0x10000, 1))
	_, err := Encode(img, FormatTGA)
	require.Error(t, err)
}
