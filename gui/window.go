package gui

import (
	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"
	"github.com/habedi/tf2cu/app"
	"github.com/habedi/tf2cu/messages"
	"github.com/rs/zerolog/log"
)

// Params is everything the window needs.
type Params struct {
	Version    string
	Controller *app.Controller
	Printer    *messages.Printer
	Theme      string
	// Remember is called with every location the user picks. May be nil.
	Remember func(root string)
}

func Run(p Params) {
	myApp := fyneapp.NewWithID("com.github.habedi.tf2cu")
	myApp.Settings().SetTheme(NewTheme(p.Theme))

	myWindow := myApp.NewWindow("TF2C Updater")
	v := newView(myWindow, p)
	go v.awaitManifest()

	myWindow.SetContent(container.NewBorder(nil, ShowAboutUI(p.Version), nil, nil, v.content))
	myWindow.Resize(fyne.NewSize(820, 480))
	myWindow.ShowAndRun()
}

// view renders one Controller. Every method except awaitManifest runs on
// the Fyne main thread.
type view struct {
	win      fyne.Window
	ctrl     *app.Controller
	printer  *messages.Printer
	remember func(string)

	button  *widget.Button
	lines   *fyne.Container
	content fyne.CanvasObject
}

func newView(win fyne.Window, p Params) *view {
	v := &view{win: win, ctrl: p.Controller, printer: p.Printer, remember: p.Remember}
	v.button = widget.NewButton("", v.pickLocation)
	v.button.Importance = widget.HighImportance
	v.lines = container.NewVBox()
	v.content = container.NewPadded(container.NewVBox(
		container.NewHBox(v.button),
		v.lines,
	))
	v.refresh()
	return v
}

func (v *view) refresh() {
	s := v.ctrl.Snapshot()
	v.button.SetText(v.printer.SelectButton(s))

	texts := v.printer.Lines(s)
	objects := make([]fyne.CanvasObject, 0, len(texts))
	for i, text := range texts {
		lbl := widget.NewLabel(text)
		lbl.Wrapping = fyne.TextWrapWord
		if i == len(texts)-1 && s.LocationErr != nil && !s.LocationErr.Kind.Benign() {
			lbl.Importance = widget.DangerImportance
		}
		objects = append(objects, lbl)
	}
	v.lines.Objects = objects
	v.lines.Refresh()
}

func (v *view) pickLocation() {
	d := dialog.NewFolderOpen(func(uri fyne.ListableURI, err error) {
		if err != nil {
			dialog.ShowError(err, v.win)
			return
		}
		if uri == nil {
			v.ctrl.Dispatch(app.LocationPickCancelled{})
			return
		}
		v.selectLocation(uri.Path())
	}, v.win)

	if root := v.ctrl.Snapshot().Root; root != "" {
		if lister, err := storage.ListerForURI(storage.NewFileURI(root)); err == nil {
			d.SetLocation(lister)
		}
	}
	d.Resize(fyne.NewSize(800, 600))
	d.Show()
}

func (v *view) selectLocation(path string) {
	v.ctrl.Dispatch(app.LocationChangeRequested{Path: path})
	if v.remember != nil {
		v.remember(path)
	}
	v.refresh()
}

// awaitManifest blocks until the manifest load ends and then hands the
// result to the main thread.
func (v *view) awaitManifest() {
	done := v.ctrl.Done()
	if done == nil {
		return
	}
	<-done
	runOnMain(v.onManifest)
}

func (v *view) onManifest() {
	if v.ctrl.Poll() {
		log.Debug().Msg("Manifest arrived, redrawing")
		v.refresh()
	}
}
