package gui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"flipbook-creator/flipbook"
)

var selectionColor = color.NRGBA{R: 0x3f, G: 0x51, B: 0xb5, A: 0x90}

// thumbnail is one entry in the grid. Primary click selects (with
// ctrl/shift modifiers), secondary click asks the host to move the
// current selection in front of this entry.
type thumbnail struct {
	widget.BaseWidget

	id       string
	index    int
	selected bool

	highlight *canvas.Rectangle
	img       *canvas.Image
	name      *widget.Label

	onPress func(index int, ev *desktop.MouseEvent)
}

var _ desktop.Mouseable = (*thumbnail)(nil)

func newThumbnail(entry flipbook.Entry, size float32,
	onPress func(index int, ev *desktop.MouseEvent)) *thumbnail {

	t := &thumbnail{
		id:      entry.ID,
		index:   -1,
		onPress: onPress,
	}

	t.highlight = canvas.NewRectangle(color.Transparent)
	t.highlight.CornerRadius = 6

	t.img = canvas.NewImageFromImage(entry.Image)
	t.img.FillMode = canvas.ImageFillContain
	t.img.SetMinSize(fyne.NewSize(size, size))

	t.name = widget.NewLabel(entry.Name)
	t.name.Alignment = fyne.TextAlignCenter
	t.name.Truncation = fyne.TextTruncateEllipsis

	t.ExtendBaseWidget(t)
	return t
}

// update moves the thumbnail to its position in the current order and
// applies the selection highlight.
func (t *thumbnail) update(index int, selected bool) {
	t.index = index
	if selected == t.selected {
		return
	}
	t.selected = selected
	if selected {
		t.highlight.FillColor = selectionColor
	} else {
		t.highlight.FillColor = color.Transparent
	}
	t.highlight.Refresh()
}

func (t *thumbnail) CreateRenderer() fyne.WidgetRenderer {
	content := container.NewStack(
		t.highlight,
		container.NewBorder(nil, t.name, nil, nil, t.img),
	)
	return widget.NewSimpleRenderer(content)
}

func (t *thumbnail) MouseDown(ev *desktop.MouseEvent) {
	if t.onPress != nil {
		t.onPress(t.index, ev)
	}
}

func (t *thumbnail) MouseUp(*desktop.MouseEvent) {}

// GridView shows the sequence as a wrapping grid of thumbnails with a
// trailing move-to-end target. Thumbnails are cached by entry ID, so
// reorders and selection changes reuse the existing canvas images
// instead of rebuilding every widget.
type GridView struct {
	scroll    *container.Scroll
	wrap      *fyne.Container
	thumbSize float32
	cache     map[string]*thumbnail

	onPress     func(index int, ev *desktop.MouseEvent)
	onMoveToEnd func()
}

func NewGridView(thumbSize float32,
	onPress func(index int, ev *desktop.MouseEvent),
	onMoveToEnd func()) *GridView {

	g := &GridView{
		thumbSize:   thumbSize,
		cache:       make(map[string]*thumbnail),
		onPress:     onPress,
		onMoveToEnd: onMoveToEnd,
	}
	g.wrap = container.New(layout.NewGridWrapLayout(g.cellSize()))
	g.scroll = container.NewVScroll(g.wrap)
	return g
}

func (g *GridView) cellSize() fyne.Size {
	return fyne.NewSize(g.thumbSize+20, g.thumbSize+56)
}

// SetEntries rebuilds the grid for the given order and selection,
// reusing cached thumbnails for entries that are still present.
func (g *GridView) SetEntries(entries []flipbook.Entry, selected map[int]bool) {
	g.wrap.RemoveAll()
	next := make(map[string]*thumbnail, len(entries))
	for i, entry := range entries {
		t, ok := g.cache[entry.ID]
		if !ok {
			t = newThumbnail(entry, g.thumbSize, g.onPress)
		}
		t.update(i, selected[i])
		next[entry.ID] = t
		g.wrap.Add(t)
	}
	g.cache = next

	if len(entries) > 0 {
		end := widget.NewButton("+", g.onMoveToEnd)
		end.Importance = widget.LowImportance
		g.wrap.Add(container.NewCenter(end))
	}
	g.wrap.Refresh()
}

// SetThumbnailSize changes the cell size and invalidates the cache;
// the caller pushes entries again to rebuild at the new size.
func (g *GridView) SetThumbnailSize(size float32) {
	g.thumbSize = size
	g.cache = make(map[string]*thumbnail)
	g.wrap.Layout = layout.NewGridWrapLayout(g.cellSize())
	g.wrap.Refresh()
}

func (g *GridView) GetContainer() fyne.CanvasObject {
	return g.scroll
}
