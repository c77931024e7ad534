package flipbook

import (
	"image"

	"github.com/google/uuid"
)

// Entry is one source image in the sequence. Entries are immutable once
// created; reordering operations replace positions, never entry fields.
type Entry struct {
	ID     string
	Image  image.Image
	Name   string
	Path   string
	Width  int
	Height int
}

// NewEntry wraps a decoded image with its display name and origin path.
func NewEntry(img image.Image, name, path string) Entry {
	bounds := img.Bounds()
	return Entry{
		ID:     uuid.NewString(),
		Image:  img,
		Name:   name,
		Path:   path,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
	}
}
