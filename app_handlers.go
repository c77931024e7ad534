package main

import (
	"errors"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"flipbook-creator/compose"
	"flipbook-creator/encode"
	"flipbook-creator/flipbook"
)

func (fa *FlipbookApp) handleLoadFolder() {
	dialog.ShowFolderOpen(func(list fyne.ListableURI, err error) {
		if err != nil {
			fa.showError("Folder Open Error", err)
			return
		}
		if list == nil {
			return
		}
		dir := list.Path()

		fa.mainGUI.UpdateStatus("Loading images...")
		go func() {
			entries, loadErr := fa.loader.LoadFolder(dir)
			fyne.Do(func() {
				if loadErr != nil {
					fa.showError("Folder Load Error", loadErr)
					fa.mainGUI.UpdateStatus("Ready")
					return
				}
				fa.manager.ReplaceAll(entries)
				fa.autoGrid()
				fa.refresh()
				fa.mainGUI.UpdateStatus(fmt.Sprintf("Loaded %d images", len(entries)))
			})
		}()
	}, fa.window)
}

// handleAddImages adds one file per invocation: Fyne's open dialog has
// no multi-select, so batches arrive by repeating the dialog. Folder
// loads and the headless path use LoadFiles' batch form directly.
func (fa *FlipbookApp) handleAddImages() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			fa.showError("File Open Error", err)
			return
		}
		if reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()

		fa.mainGUI.UpdateStatus("Loading image...")
		go func() {
			entries := fa.loader.LoadFiles([]string{path})
			fyne.Do(func() {
				if len(entries) == 0 {
					fa.mainGUI.UpdateStatus("Could not decode " + path)
					return
				}
				if err := fa.manager.Append(entries); err != nil {
					fa.mainGUI.UpdateStatus("Nothing to add")
					return
				}
				fa.autoGrid()
				fa.refresh()
				fa.mainGUI.UpdateStatus(fmt.Sprintf("Added %d image(s)", len(entries)))
			})
		}()
	}, fa.window)
}

func (fa *FlipbookApp) handleExport() {
	if fa.manager.Len() == 0 {
		fa.mainGUI.UpdateStatus("No images to export")
		return
	}

	// Snapshot order and parameters before handing off to the worker.
	entries := fa.manager.Entries()
	spec := fa.renderSpec()

	dialog.ShowFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			fa.showError("File Save Error", err)
			return
		}
		if writer == nil {
			return
		}

		format := encode.FormatForPath(writer.URI().Path())
		fa.mainGUI.UpdateStatus("Exporting flipbook...")

		go func() {
			exportErr := fa.exporter.Export(writer, entries, spec, format)
			writer.Close()
			fyne.Do(func() {
				if exportErr != nil {
					fa.showError("Export Error", exportErr)
					fa.mainGUI.UpdateStatus("Export failed")
					return
				}
				fa.mainGUI.UpdateStatus("Flipbook exported successfully")
			})
		}()
	}, fa.window)
}

// handleThumbnailPress routes a raw grid press: secondary button moves
// the selection in front of the pressed entry, primary selects with the
// usual ctrl/shift modifiers.
func (fa *FlipbookApp) handleThumbnailPress(index int, ev *desktop.MouseEvent) {
	if ev.Button == desktop.MouseButtonSecondary {
		fa.moveSelectionTo(index)
		return
	}

	var err error
	switch {
	case ev.Modifier&fyne.KeyModifierControl != 0:
		err = fa.manager.Toggle(index)
	case ev.Modifier&fyne.KeyModifierShift != 0:
		err = fa.manager.SelectRange(index)
	default:
		err = fa.manager.SelectSingle(index)
	}
	if err != nil {
		fa.log.Warn().Int("index", index).Err(err).Msg("selection ignored")
		return
	}
	fa.refresh()
}

func (fa *FlipbookApp) handleMoveToEnd() {
	fa.moveSelectionTo(fa.manager.Len())
}

func (fa *FlipbookApp) moveSelectionTo(target int) {
	sources := fa.manager.Selected()
	if len(sources) == 0 {
		return
	}
	if err := fa.manager.Move(sources, target); err != nil {
		fa.log.Warn().Int("target", target).Err(err).Msg("move ignored")
		return
	}
	fa.refresh()
}

func (fa *FlipbookApp) handleUndo() {
	if err := fa.manager.Undo(); err != nil {
		fa.mainGUI.UpdateStatus("Nothing to undo")
		return
	}
	fa.autoGrid()
	fa.refresh()
	fa.mainGUI.UpdateStatus("Undone")
}

func (fa *FlipbookApp) handleRedo() {
	if err := fa.manager.Redo(); err != nil {
		fa.mainGUI.UpdateStatus("Nothing to redo")
		return
	}
	fa.autoGrid()
	fa.refresh()
	fa.mainGUI.UpdateStatus("Redone")
}

func (fa *FlipbookApp) handleDelete() {
	if err := fa.manager.DeleteSelected(); err != nil {
		if errors.Is(err, flipbook.ErrEmptyOperation) {
			return
		}
		fa.log.Warn().Err(err).Msg("delete ignored")
		return
	}
	fa.autoGrid()
	fa.refresh()
	fa.mainGUI.UpdateStatus("Selected images removed")
}

func (fa *FlipbookApp) handleGridChange(columns, rows int) {
	clamped := compose.GridSpec{Columns: columns, Rows: rows}.ClampFor(fa.manager.Len())
	if clamped.Columns != columns || clamped.Rows != rows {
		fa.mainGUI.SetGrid(clamped.Columns, clamped.Rows)
	}
	fa.updateResolution()
}

func (fa *FlipbookApp) handleBackgroundChange(solid bool) {
	if solid {
		fa.background.Mode = compose.BackgroundSolid
	} else {
		fa.background.Mode = compose.BackgroundTransparent
	}
}

func (fa *FlipbookApp) handlePickColor() {
	dialog.ShowColorPicker("Background Color", "", func(c color.Color) {
		if c == nil {
			return
		}
		r, g, b, a := c.RGBA()
		fa.background.Color = color.NRGBA{
			R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8),
		}
	}, fa.window)
}

func (fa *FlipbookApp) handleScaleChange(int) {
	fa.updateResolution()
}

func (fa *FlipbookApp) handleThumbnailSizeChange(size int) {
	fa.mainGUI.SetThumbnailSize(float32(size))
	fa.refresh()
}

func (fa *FlipbookApp) showError(title string, err error) {
	fa.log.Error().Str("dialog", title).Err(err).Msg("operation failed")
	dialog.ShowError(err, fa.window)
}
