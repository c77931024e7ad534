package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (fa *FlipbookApp) setupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Folder...", func() {
			fa.handleLoadFolder()
		}),
		fyne.NewMenuItem("Add Images...", func() {
			fa.handleAddImages()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export Flipbook...", func() {
			fa.handleExport()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			fa.fyneApp.Quit()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			fa.handleUndo()
		}),
		fyne.NewMenuItem("Redo", func() {
			fa.handleRedo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Delete Selected", func() {
			fa.handleDelete()
		}),
	)

	mainMenu := fyne.NewMainMenu(fileMenu, editMenu)
	fa.window.SetMainMenu(mainMenu)
}

func (fa *FlipbookApp) setupShortcuts() {
	canvas := fa.window.Canvas()

	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		fa.handleUndo()
	})
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl}, func(fyne.Shortcut) {
		fa.handleRedo()
	})
	canvas.AddShortcut(&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl | fyne.KeyModifierShift}, func(fyne.Shortcut) {
		fa.handleRedo()
	})

	canvas.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		if ev.Name == fyne.KeyDelete {
			fa.handleDelete()
		}
	})
}
