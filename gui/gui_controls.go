package gui

import (
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ControlsPanel is the left column: folder loading, grid shape,
// background policy, output scale, history and export actions.
type ControlsPanel struct {
	container *fyne.Container

	columnsSlider *widget.Slider
	columnsLabel  *widget.Label
	rowsSlider    *widget.Slider
	rowsLabel     *widget.Label

	backgroundSelect *widget.Select
	colorButton      *widget.Button

	scaleSlider     *widget.Slider
	scaleLabel      *widget.Label
	resolutionLabel *widget.Label

	thumbSlider *widget.Slider
	thumbLabel  *widget.Label

	undoButton   *widget.Button
	redoButton   *widget.Button
	deleteButton *widget.Button
	exportButton *widget.Button

	// set while the host pushes values into the sliders, so the
	// OnChanged callbacks don't echo them back as user edits
	updating bool

	initialThumbSize float32

	onLoadFolder       func()
	onAddImages        func()
	onGridChange       func(columns, rows int)
	onBackgroundChange func(solid bool)
	onPickColor        func()
	onScaleChange      func(percent int)
	onThumbSizeChange  func(size int)
	onUndo             func()
	onRedo             func()
	onDelete           func()
	onExport           func()
}

func NewControlsPanel(
	thumbSize float32,
	onLoadFolder, onAddImages func(),
	onGridChange func(columns, rows int),
	onBackgroundChange func(solid bool),
	onPickColor func(),
	onScaleChange func(percent int),
	onThumbSizeChange func(size int),
	onUndo, onRedo, onDelete, onExport func()) *ControlsPanel {

	panel := &ControlsPanel{
		initialThumbSize:   thumbSize,
		onLoadFolder:       onLoadFolder,
		onAddImages:        onAddImages,
		onGridChange:       onGridChange,
		onBackgroundChange: onBackgroundChange,
		onPickColor:        onPickColor,
		onScaleChange:      onScaleChange,
		onThumbSizeChange:  onThumbSizeChange,
		onUndo:             onUndo,
		onRedo:             onRedo,
		onDelete:           onDelete,
		onExport:           onExport,
	}
	panel.setupControls()
	return panel
}

func (cp *ControlsPanel) setupControls() {
	folderButton := widget.NewButton("Select Folder", cp.onLoadFolder)
	addButton := widget.NewButton("Add Images", cp.onAddImages)

	cp.columnsLabel = widget.NewLabel("Columns: 4")
	cp.columnsSlider = widget.NewSlider(1, 100)
	cp.columnsSlider.SetValue(4)
	cp.columnsSlider.OnChanged = func(value float64) {
		cp.columnsLabel.SetText("Columns: " + strconv.Itoa(int(value)))
		if !cp.updating {
			cp.onGridChange(int(value), int(cp.rowsSlider.Value))
		}
	}

	cp.rowsLabel = widget.NewLabel("Rows: 4")
	cp.rowsSlider = widget.NewSlider(1, 100)
	cp.rowsSlider.SetValue(4)
	cp.rowsSlider.OnChanged = func(value float64) {
		cp.rowsLabel.SetText("Rows: " + strconv.Itoa(int(value)))
		if !cp.updating {
			cp.onGridChange(int(cp.columnsSlider.Value), int(value))
		}
	}

	cp.backgroundSelect = widget.NewSelect([]string{"Transparency", "Solid Color"}, func(value string) {
		solid := value == "Solid Color"
		if solid {
			cp.colorButton.Show()
		} else {
			cp.colorButton.Hide()
		}
		if !cp.updating {
			cp.onBackgroundChange(solid)
		}
	})
	cp.colorButton = widget.NewButton("Pick Color...", cp.onPickColor)
	cp.colorButton.Hide()

	cp.scaleLabel = widget.NewLabel("100%")
	cp.scaleSlider = widget.NewSlider(1, 100)
	cp.scaleSlider.SetValue(100)
	cp.scaleSlider.OnChanged = func(value float64) {
		cp.scaleLabel.SetText(strconv.Itoa(int(value)) + "%")
		if !cp.updating {
			cp.onScaleChange(int(value))
		}
	}
	cp.resolutionLabel = widget.NewLabel("Output: 0 x 0")

	cp.thumbLabel = widget.NewLabel("Size: " + strconv.Itoa(int(cp.initialThumbSize)))
	cp.thumbSlider = widget.NewSlider(64, 256)
	cp.thumbSlider.SetValue(float64(cp.initialThumbSize))
	cp.thumbSlider.OnChanged = func(value float64) {
		cp.thumbLabel.SetText("Size: " + strconv.Itoa(int(value)))
		if !cp.updating {
			cp.onThumbSizeChange(int(value))
		}
	}

	cp.undoButton = widget.NewButton("Undo", cp.onUndo)
	cp.redoButton = widget.NewButton("Redo", cp.onRedo)
	cp.deleteButton = widget.NewButton("Delete", cp.onDelete)
	cp.undoButton.Disable()
	cp.redoButton.Disable()
	cp.deleteButton.Disable()

	cp.exportButton = widget.NewButton("Export Flipbook", cp.onExport)
	cp.exportButton.Importance = widget.HighImportance
	cp.exportButton.Disable()

	shortcuts := widget.NewLabel("Ctrl+Z - Undo\nCtrl+Y - Redo\nDelete - Remove selected\nCtrl+Click - Multi-select\nShift+Click - Range select\nRight-Click - Move selection here")
	shortcuts.TextStyle = fyne.TextStyle{Italic: true}

	cp.container = container.NewVBox(
		folderButton,
		addButton,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Grid Layout", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		cp.columnsLabel, cp.columnsSlider,
		cp.rowsLabel, cp.rowsSlider,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Background", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		cp.backgroundSelect,
		cp.colorButton,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Output Scale", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		cp.scaleLabel, cp.scaleSlider,
		cp.resolutionLabel,
		widget.NewSeparator(),
		widget.NewLabelWithStyle("Thumbnails", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		cp.thumbLabel, cp.thumbSlider,
		widget.NewSeparator(),
		container.NewHBox(cp.undoButton, cp.redoButton, cp.deleteButton),
		cp.exportButton,
		widget.NewSeparator(),
		shortcuts,
	)
}

func (cp *ControlsPanel) Initialize() {
	cp.backgroundSelect.SetSelected("Transparency")
}

func (cp *ControlsPanel) GetContainer() *fyne.Container {
	return cp.container
}

// SetGrid pushes clamped grid values into the sliders without firing
// the change callback back at the host.
func (cp *ControlsPanel) SetGrid(columns, rows int) {
	cp.updating = true
	cp.columnsSlider.SetValue(float64(columns))
	cp.rowsSlider.SetValue(float64(rows))
	cp.updating = false
}

func (cp *ControlsPanel) Grid() (columns, rows int) {
	return int(cp.columnsSlider.Value), int(cp.rowsSlider.Value)
}

func (cp *ControlsPanel) Scale() int {
	return int(cp.scaleSlider.Value)
}

func (cp *ControlsPanel) SetResolution(text string) {
	cp.resolutionLabel.SetText(text)
}

func (cp *ControlsPanel) SetHistoryState(canUndo, canRedo bool) {
	setEnabled(cp.undoButton, canUndo)
	setEnabled(cp.redoButton, canRedo)
}

func (cp *ControlsPanel) SetDeleteEnabled(enabled bool) {
	setEnabled(cp.deleteButton, enabled)
}

func (cp *ControlsPanel) SetExportEnabled(enabled bool) {
	setEnabled(cp.exportButton, enabled)
}

func setEnabled(b *widget.Button, enabled bool) {
	if enabled {
		b.Enable()
	} else {
		b.Disable()
	}
}
