// Quality metrics readout for the latest result
package gui

import (
	"fmt"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// MetricsPanel shows PSNR/SSIM/MSE of the latest final image against the
// original. Metrics are absent when the chain changed the image size.
type MetricsPanel struct {
	card  *widget.Card
	label *widget.Label
}

func NewMetricsPanel() *MetricsPanel {
	label := widget.NewLabel("No result yet")
	return &MetricsPanel{
		card:  widget.NewCard("Quality", "", label),
		label: label,
	}
}

func (mp *MetricsPanel) GetContainer() fyne.CanvasObject {
	return mp.card
}

func (mp *MetricsPanel) UpdateQuality(quality map[string]float64) {
	if len(quality) == 0 {
		mp.label.SetText("Not comparable (size changed)")
		return
	}

	text := ""
	if psnr, ok := quality["psnr"]; ok {
		if math.IsInf(psnr, 1) {
			text += "PSNR: identical\n"
		} else {
			text += fmt.Sprintf("PSNR: %.2f dB\n", psnr)
		}
	}
	if ssim, ok := quality["ssim"]; ok {
		text += fmt.Sprintf("SSIM: %.4f\n", ssim)
	}
	if mse, ok := quality["mse"]; ok {
		text += fmt.Sprintf("MSE: %.2f", mse)
	}
	mp.label.SetText(text)
}

func (mp *MetricsPanel) Clear() {
	mp.label.SetText("No result yet")
}
