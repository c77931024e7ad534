// Package pipeline handles the file-facing ends of the tool: decoding
// source images into sequence entries and writing the composed export.
package pipeline

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gocv.io/x/gocv"

	"github.com/rs/zerolog"

	// Decoder registrations for the supported source formats.
	_ "image/jpeg"
	_ "image/png"

	_ "github.com/ftrvxmtrx/tga"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"flipbook-creator/flipbook"
)

// Source image extensions the loader picks up from a folder.
var supportedExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
	".bmp":  true,
	".tga":  true,
}

// Loader decodes source files into sequence entries. Files that fail to
// decode are skipped with a warning; the rest of the batch proceeds.
type Loader struct {
	log zerolog.Logger
}

func NewLoader(log zerolog.Logger) *Loader {
	return &Loader{log: log.With().Str("component", "loader").Logger()}
}

// LoadFolder returns entries for every supported image in dir, sorted
// by filename case-insensitively. An unreadable directory is an error;
// an undecodable file is not.
func (l *Loader) LoadFolder(dir string) ([]flipbook.Entry, error) {
	items, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read folder: %w", err)
	}

	names := make([]string, 0, len(items))
	for _, item := range items {
		if item.IsDir() {
			continue
		}
		if supportedExts[strings.ToLower(filepath.Ext(item.Name()))] {
			names = append(names, item.Name())
		}
	}
	sort.Slice(names, func(i, j int) bool {
		return strings.ToLower(names[i]) < strings.ToLower(names[j])
	})

	paths := make([]string, len(names))
	for i, name := range names {
		paths[i] = filepath.Join(dir, name)
	}
	entries := l.LoadFiles(paths)
	l.log.Info().Str("dir", dir).Int("found", len(names)).Int("loaded", len(entries)).Msg("folder loaded")
	return entries, nil
}

// LoadFiles decodes each path into an entry, skipping failures.
func (l *Loader) LoadFiles(paths []string) []flipbook.Entry {
	entries := make([]flipbook.Entry, 0, len(paths))
	for _, path := range paths {
		img, err := l.decode(path)
		if err != nil {
			l.log.Warn().Str("path", path).Err(err).Msg("could not decode image, skipped")
			continue
		}
		entries = append(entries, flipbook.NewEntry(img, filepath.Base(path), path))
	}
	return entries
}

// decode tries the registered Go decoders first, then OpenCV for
// anything they reject.
func (l *Loader) decode(path string) (image.Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err == nil {
		l.log.Debug().Str("path", path).Str("format", format).Msg("decoded")
		return img, nil
	}
	stdErr := err

	mat, err := gocv.IMDecode(data, gocv.IMReadUnchanged)
	if err != nil {
		return nil, fmt.Errorf("decode: %w (opencv: %v)", stdErr, err)
	}
	defer mat.Close()
	if mat.Empty() {
		return nil, fmt.Errorf("decode: %w (opencv: empty mat)", stdErr)
	}

	img, err = mat.ToImage()
	if err != nil {
		return nil, fmt.Errorf("mat to image: %w", err)
	}
	l.log.Debug().Str("path", path).Str("format", "opencv").Msg("decoded via fallback")
	return img, nil
}
