// Side-by-side display of the original and the replayed result
package gui

import (
	"image"
	"image/color"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ImageCanvas shows the session original next to the latest final image.
type ImageCanvas struct {
	logger *slog.Logger

	split         *container.Split
	originalImage *canvas.Image
	resultImage   *canvas.Image
	originalView  *widget.Card
	resultView    *widget.Card
}

func NewImageCanvas(logger *slog.Logger) *ImageCanvas {
	ic := &ImageCanvas{logger: logger}
	ic.initializeUI()
	return ic
}

func (ic *ImageCanvas) initializeUI() {
	ic.originalImage = newPlaceholderImage()
	ic.originalView = widget.NewCard("Original", "", ic.originalImage)

	ic.resultImage = newPlaceholderImage()
	ic.resultView = widget.NewCard("Result", "", ic.resultImage)

	ic.split = container.NewHSplit(ic.originalView, ic.resultView)
	ic.split.SetOffset(0.5)
}

func newPlaceholderImage() *canvas.Image {
	placeholder := image.NewRGBA(image.Rect(0, 0, 200, 150))
	for y := 0; y < 150; y++ {
		for x := 0; x < 200; x++ {
			placeholder.Set(x, y, color.RGBA{240, 240, 240, 255})
		}
	}

	img := canvas.NewImageFromImage(placeholder)
	img.FillMode = canvas.ImageFillContain
	img.ScaleMode = canvas.ImageScalePixels
	img.SetMinSize(fyne.NewSize(200, 150))
	return img
}

func (ic *ImageCanvas) GetContainer() fyne.CanvasObject {
	return ic.split
}

func (ic *ImageCanvas) UpdateOriginal(img image.Image) {
	ic.originalImage.Image = img
	ic.originalImage.Refresh()
	ic.logger.Debug("original display updated",
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
}

func (ic *ImageCanvas) UpdateResult(img image.Image) {
	ic.resultImage.Image = img
	ic.resultImage.Refresh()
	ic.logger.Debug("result display updated",
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy())
}

func (ic *ImageCanvas) ClearResult() {
	placeholder := newPlaceholderImage()
	ic.resultImage.Image = placeholder.Image
	ic.resultImage.Refresh()
}
