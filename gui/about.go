package gui

import (
	"fmt"
	"runtime"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ShowAboutUI is the footer with build information.
func ShowAboutUI(version string) fyne.CanvasObject {
	platform := fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH)
	lbl := widget.NewLabel(fmt.Sprintf("tf2cu %s, %s, %s", version, platform, runtime.Version()))
	lbl.Alignment = fyne.TextAlignCenter
	lbl.Importance = widget.LowImportance
	return container.NewCenter(lbl)
}
