// Menu handler for file and session actions
package gui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"sequential-image-editor/internal/imaging"
	imgio "sequential-image-editor/internal/io"
)

// MenuHandler handles menu actions.
type MenuHandler struct {
	window fyne.Window
	images *imaging.ImageData
	loader *imgio.ImageLoader
	logger *slog.Logger

	onImageLoaded func(string)
	onExported    func(string)
	onReset       func()
}

func NewMenuHandler(window fyne.Window, images *imaging.ImageData, loader *imgio.ImageLoader, logger *slog.Logger) *MenuHandler {
	return &MenuHandler{
		window: window,
		images: images,
		loader: loader,
		logger: logger,
	}
}

// SetCallbacks installs the hooks fired after load, export and reset.
func (mh *MenuHandler) SetCallbacks(onImageLoaded, onExported func(string), onReset func()) {
	mh.onImageLoaded = onImageLoaded
	mh.onExported = onExported
	mh.onReset = onReset
}

func (mh *MenuHandler) GetMainMenu() *fyne.MainMenu {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Open Image...", mh.openImage),
		fyne.NewMenuItem("Export Result...", mh.exportResult),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Exit", func() {
			mh.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Reset to Original", func() {
			if mh.images.HasImage() && mh.onReset != nil {
				mh.logger.Info("resetting session to original image")
				mh.onReset()
			}
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mh.showAbout),
	)

	return fyne.NewMainMenu(fileMenu, editMenu, helpMenu)
}

func (mh *MenuHandler) openImage() {
	fileDialog := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		filepath := reader.URI().Path()
		mh.logger.Info("loading selected image", "filepath", filepath)

		mat, err := mh.loader.LoadImage(filepath)
		if err != nil {
			mh.showError("Failed to Load Image", err)
			return
		}
		defer mat.Close()

		if err := mh.images.SetOriginal(mat, filepath); err != nil {
			mh.showError("Invalid Image", err)
			return
		}

		if mh.onImageLoaded != nil {
			mh.onImageLoaded(filepath)
		}
	}, mh.window)

	fileDialog.SetFilter(storage.NewExtensionFileFilter(mh.loader.SupportedExtensions()))
	fileDialog.Show()
}

// exportResult saves the latest final image. Available only once a
// completed replay has produced one.
func (mh *MenuHandler) exportResult() {
	if !mh.images.HasFinal() {
		mh.showError("Nothing to Export", fmt.Errorf("no processed image available yet"))
		return
	}

	saveDialog := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil {
			mh.showError("File Dialog Error", err)
			return
		}
		if writer == nil {
			return
		}
		defer writer.Close()

		filepath := writer.URI().Path()
		final := mh.images.GetFinal()
		defer final.Close()

		if err := mh.loader.SaveImage(final, filepath); err != nil {
			mh.showError("Failed to Export Image", err)
			return
		}
		if mh.onExported != nil {
			mh.onExported(filepath)
		}
	}, mh.window)

	saveDialog.SetFileName(mh.loader.ExportName(mh.images.GetFilepath()))
	saveDialog.Show()
}

func (mh *MenuHandler) showAbout() {
	dialog.ShowInformation("About",
		"Sequential Image Editor\n\nCompose a chain of image operations with undo/redo\nand export the cumulative result.",
		mh.window)
}

func (mh *MenuHandler) showError(title string, err error) {
	mh.logger.Error(title, "error", err)
	dialog.ShowError(err, mh.window)
}
