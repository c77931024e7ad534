package gui

import (
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"
)

func TestControlsThumbnailSlider(t *testing.T) {
	test.NewApp()

	var got int
	panel := NewControlsPanel(100,
		func() {}, func() {},
		func(int, int) {},
		func(bool) {},
		func() {},
		func(int) {},
		func(size int) { got = size },
		func() {}, func() {}, func() {}, func() {},
	)

	require.Equal(t, float64(100), panel.thumbSlider.Value)
	require.Equal(t, "Size: 100", panel.thumbLabel.Text)

	panel.thumbSlider.SetValue(128)
	require.Equal(t, 128, got)
	require.Equal(t, "Size: 128", panel.thumbLabel.Text)
}
