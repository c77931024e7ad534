package gui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

type StatusBar struct {
	container   *fyne.Container
	statusLabel *widget.Label
	countLabel  *widget.Label
}

func NewStatusBar() *StatusBar {
	statusBar := &StatusBar{}
	statusBar.setupStatusBar()
	return statusBar
}

func (sb *StatusBar) setupStatusBar() {
	sb.statusLabel = widget.NewLabel("Ready")
	sb.countLabel = widget.NewLabel("0 images")

	sb.container = container.NewBorder(
		nil, nil,
		sb.statusLabel,
		sb.countLabel,
	)
}

func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

func (sb *StatusBar) SetCounts(total, selected int) {
	if selected > 0 {
		sb.countLabel.SetText(fmt.Sprintf("%d images, %d selected", total, selected))
		return
	}
	sb.countLabel.SetText(fmt.Sprintf("%d images", total))
}

func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
