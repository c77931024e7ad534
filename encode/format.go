// Package encode serializes a composed image to one of the supported
// output formats. Encoding always happens into an in-memory buffer, so
// a failure never leaves a partial file behind.
package encode

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"
)

// Format is the enumerated output format tag, resolved once from the
// requested file extension.
type Format int

const (
	FormatPNG Format = iota
	FormatJPEG
	FormatWebP
	FormatBMP
	FormatTGA
	FormatTIFF
)

func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatWebP:
		return "webp"
	case FormatBMP:
		return "bmp"
	case FormatTGA:
		return "tga"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// Extension returns the canonical file extension for the format.
func (f Format) Extension() string {
	switch f {
	case FormatJPEG:
		return ".jpg"
	case FormatWebP:
		return ".webp"
	case FormatBMP:
		return ".bmp"
	case FormatTGA:
		return ".tga"
	case FormatTIFF:
		return ".tiff"
	default:
		return ".png"
	}
}

// FormatForPath resolves the output format from the path's extension.
// Unrecognized extensions fall back to PNG.
func FormatForPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".webp":
		return FormatWebP
	case ".bmp":
		return FormatBMP
	case ".tga":
		return FormatTGA
	case ".tiff", ".tif":
		return FormatTIFF
	case ".png":
		return FormatPNG
	default:
		return FormatPNG
	}
}

// Encoder serializes an image into a writer.
type Encoder interface {
	Encode(w io.Writer, img image.Image) error
}

func encoderFor(f Format) Encoder {
	switch f {
	case FormatJPEG:
		return jpegEncoder{}
	case FormatWebP:
		return webpEncoder{}
	case FormatBMP:
		return bmpEncoder{}
	case FormatTGA:
		return tgaEncoder{}
	case FormatTIFF:
		return tiffEncoder{}
	default:
		return pngEncoder{}
	}
}

// Encode serializes img to the requested format and returns the raw
// encoded bytes.
func Encode(img image.Image, f Format) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoderFor(f).Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode %s: %w", f, err)
	}
	return buf.Bytes(), nil
}
