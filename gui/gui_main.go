// Package gui builds the Fyne interface for the flipbook editor. It is
// a dumb view: every user action is forwarded to the host through the
// Callbacks struct, and the host pushes state back in.
package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"flipbook-creator/flipbook"
)

// Callbacks are the host-side handlers for user actions.
type Callbacks struct {
	OnLoadFolder func()
	OnAddImages  func()
	OnExport     func()

	OnUndo   func()
	OnRedo   func()
	OnDelete func()

	// OnThumbnailPress receives raw press events from grid thumbnails;
	// the host decides between select, toggle, range and move.
	OnThumbnailPress func(index int, ev *desktop.MouseEvent)
	OnMoveToEnd      func()

	OnGridChange       func(columns, rows int)
	OnBackgroundChange func(solid bool)
	OnPickColor        func()
	OnScaleChange      func(percent int)

	// OnThumbnailSizeChange fires from the zoom slider; the host
	// resizes the grid and pushes the entries again.
	OnThumbnailSizeChange func(size int)
}

type MainInterface struct {
	window        fyne.Window
	layoutManager *LayoutManager
	gridView      *GridView
	controlsPanel *ControlsPanel
	statusBar     *StatusBar
}

func NewMainInterface(window fyne.Window, thumbSize float32, cb Callbacks) *MainInterface {
	gridView := NewGridView(thumbSize, cb.OnThumbnailPress, cb.OnMoveToEnd)
	controlsPanel := NewControlsPanel(
		thumbSize,
		cb.OnLoadFolder, cb.OnAddImages,
		cb.OnGridChange,
		cb.OnBackgroundChange,
		cb.OnPickColor,
		cb.OnScaleChange,
		cb.OnThumbnailSizeChange,
		cb.OnUndo, cb.OnRedo, cb.OnDelete, cb.OnExport,
	)
	statusBar := NewStatusBar()

	return &MainInterface{
		window:        window,
		layoutManager: NewLayoutManager(gridView, controlsPanel, statusBar),
		gridView:      gridView,
		controlsPanel: controlsPanel,
		statusBar:     statusBar,
	}
}

func (gui *MainInterface) Initialize() {
	gui.layoutManager.Initialize()
}

func (gui *MainInterface) GetMainContainer() *fyne.Container {
	return gui.layoutManager.GetMainContainer()
}

// SetEntries rebuilds the thumbnail grid from the current sequence
// order and selection.
func (gui *MainInterface) SetEntries(entries []flipbook.Entry, selected map[int]bool) {
	gui.gridView.SetEntries(entries, selected)
	gui.statusBar.SetCounts(len(entries), len(selected))
}

func (gui *MainInterface) UpdateStatus(status string) {
	gui.statusBar.SetStatus(status)
}

func (gui *MainInterface) SetResolution(text string) {
	gui.controlsPanel.SetResolution(text)
}

// SetGrid reflects clamped grid values back into the controls.
func (gui *MainInterface) SetGrid(columns, rows int) {
	gui.controlsPanel.SetGrid(columns, rows)
}

func (gui *MainInterface) Grid() (columns, rows int) {
	return gui.controlsPanel.Grid()
}

func (gui *MainInterface) Scale() int {
	return gui.controlsPanel.Scale()
}

// SetThumbnailSize resizes the grid cells; the host pushes entries
// again afterwards so thumbnails rebuild at the new size.
func (gui *MainInterface) SetThumbnailSize(size float32) {
	gui.gridView.SetThumbnailSize(size)
}

func (gui *MainInterface) SetHistoryState(canUndo, canRedo bool) {
	gui.controlsPanel.SetHistoryState(canUndo, canRedo)
}

func (gui *MainInterface) SetDeleteEnabled(enabled bool) {
	gui.controlsPanel.SetDeleteEnabled(enabled)
}

func (gui *MainInterface) SetExportEnabled(enabled bool) {
	gui.controlsPanel.SetExportEnabled(enabled)
}
