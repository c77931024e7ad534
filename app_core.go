package main

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/rs/zerolog"

	"flipbook-creator/compose"
	"flipbook-creator/config"
	"flipbook-creator/flipbook"
	"flipbook-creator/gui"
	"flipbook-creator/pipeline"
)

const (
	AppName    = "Flipbook Creator"
	AppID      = "com.flipbook.creator"
	AppVersion = "1.0.0"
)

// Default background color for solid fills, matching the editor theme.
var defaultBackgroundColor = color.NRGBA{R: 42, G: 42, B: 42, A: 255}

type FlipbookApp struct {
	fyneApp fyne.App
	window  fyne.Window
	mainGUI *gui.MainInterface

	manager  *flipbook.Manager
	loader   *pipeline.Loader
	exporter *pipeline.Exporter

	background compose.Background

	cfg config.Config
	log zerolog.Logger
}

func NewFlipbookApp(cfg config.Config, log zerolog.Logger) *FlipbookApp {
	fyneApp := app.NewWithID(AppID)

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))

	fa := &FlipbookApp{
		fyneApp:    fyneApp,
		window:     window,
		manager:    flipbook.NewManager(log, cfg.HistoryCap),
		loader:     pipeline.NewLoader(log),
		exporter:   pipeline.NewExporter(log),
		background: compose.Background{Mode: compose.BackgroundTransparent, Color: defaultBackgroundColor},
		cfg:        cfg,
		log:        log.With().Str("component", "app").Logger(),
	}

	fa.mainGUI = gui.NewMainInterface(window, float32(cfg.ThumbnailSize), gui.Callbacks{
		OnLoadFolder:       fa.handleLoadFolder,
		OnAddImages:        fa.handleAddImages,
		OnExport:           fa.handleExport,
		OnUndo:             fa.handleUndo,
		OnRedo:             fa.handleRedo,
		OnDelete:           fa.handleDelete,
		OnThumbnailPress:   fa.handleThumbnailPress,
		OnMoveToEnd:        fa.handleMoveToEnd,
		OnGridChange:       fa.handleGridChange,
		OnBackgroundChange: fa.handleBackgroundChange,
		OnPickColor:        fa.handlePickColor,
		OnScaleChange:      fa.handleScaleChange,

		OnThumbnailSizeChange: fa.handleThumbnailSizeChange,
	})

	return fa
}

func (fa *FlipbookApp) Run() {
	fa.setupMenus()
	fa.setupShortcuts()

	fa.window.SetContent(fa.mainGUI.GetMainContainer())
	fa.mainGUI.Initialize()

	fa.window.ShowAndRun()
}

// renderSpec gathers the current export parameters, with the grid
// clamped so every entry has a cell.
func (fa *FlipbookApp) renderSpec() compose.RenderSpec {
	columns, rows := fa.mainGUI.Grid()
	return compose.RenderSpec{
		Grid:         compose.GridSpec{Columns: columns, Rows: rows}.ClampFor(fa.manager.Len()),
		ScalePercent: fa.mainGUI.Scale(),
		Background:   fa.background,
	}
}

// refresh pushes the full manager state into the GUI.
func (fa *FlipbookApp) refresh() {
	selected := make(map[int]bool)
	for _, i := range fa.manager.Selected() {
		selected[i] = true
	}
	fa.mainGUI.SetEntries(fa.manager.Entries(), selected)
	fa.mainGUI.SetHistoryState(fa.manager.CanUndo(), fa.manager.CanRedo())
	fa.mainGUI.SetDeleteEnabled(fa.manager.HasSelection())
	fa.mainGUI.SetExportEnabled(fa.manager.Len() > 0)
	fa.updateResolution()
}

// autoGrid resets the grid controls to the smallest squarish grid that
// holds the sequence. MinGrid keeps rows >= cols; the longer side feeds
// the column control so the sheet lays out landscape.
func (fa *FlipbookApp) autoGrid() {
	r, c := compose.MinGrid(fa.manager.Len())
	fa.mainGUI.SetGrid(r, c)
}

func (fa *FlipbookApp) updateResolution() {
	entries := fa.manager.Entries()
	spec := fa.renderSpec()
	w, h := compose.OutputSize(entries, spec)
	cw, ch := compose.CellSize(entries, spec)
	fa.mainGUI.SetResolution(fmt.Sprintf("Output: %d x %d (Cell: %d x %d)", w, h, cw, ch))
}
