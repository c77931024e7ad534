package gui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// LayoutManager coordinates the main application layout: controls on
// the left, thumbnail grid in the center, status bar at the bottom.
type LayoutManager struct {
	mainContainer *fyne.Container
	gridView      *GridView
	controlsPanel *ControlsPanel
	statusBar     *StatusBar
}

func NewLayoutManager(gridView *GridView, controlsPanel *ControlsPanel, statusBar *StatusBar) *LayoutManager {
	mainContainer := container.NewBorder(
		nil,                          // top
		statusBar.GetContainer(),     // bottom
		controlsPanel.GetContainer(), // left
		nil,                          // right
		gridView.GetContainer(),      // center
	)

	return &LayoutManager{
		mainContainer: mainContainer,
		gridView:      gridView,
		controlsPanel: controlsPanel,
		statusBar:     statusBar,
	}
}

func (lm *LayoutManager) GetMainContainer() *fyne.Container {
	return lm.mainContainer
}

func (lm *LayoutManager) Initialize() {
	lm.controlsPanel.Initialize()
}
