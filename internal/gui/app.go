// Main application window and component wiring
package gui

import (
	"fmt"
	"image"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"sequential-image-editor/internal/config"
	"sequential-image-editor/internal/history"
	"sequential-image-editor/internal/imaging"
	imgio "sequential-image-editor/internal/io"
	"sequential-image-editor/internal/ops"
	"sequential-image-editor/internal/pipeline"
	"sequential-image-editor/internal/transform"
)

// Application wires the core components to the window: history changes
// feed the runner, runner results land on the canvas, and every control
// is gated on the state it needs (image loaded, past/future non-empty,
// final image present).
type Application struct {
	app    fyne.App
	window fyne.Window
	logger *slog.Logger
	cfg    config.Config

	// Core components
	images     *imaging.ImageData
	hist       *history.History
	capability *transform.Capability
	runner     *pipeline.Runner
	loader     *imgio.ImageLoader

	// GUI components
	canvas       *ImageCanvas
	opsPanel     *OperationsPanel
	stepsPanel   *StepsPanel
	metricsPanel *MetricsPanel
	menuHandler  *MenuHandler
	statusCard   *widget.Card
}

func NewApplication(app fyne.App, logger *slog.Logger, cfg config.Config) *Application {
	window := app.NewWindow("Sequential Image Editor")
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()

	a := &Application{
		app:    app,
		window: window,
		logger: logger,
		cfg:    cfg,
	}

	a.initializeCore()
	a.initializeGUI()
	a.setupLayout()
	a.setupCallbacks()

	// Kick off the one-shot capability warm-up; runs triggered before it
	// completes wait on the readiness gate.
	a.capability.Load()

	return a
}

func (a *Application) initializeCore() {
	a.images = imaging.NewImageData()
	a.hist = history.New()
	a.capability = transform.New(a.logger)
	a.loader = imgio.NewImageLoader(a.logger)
	a.runner = pipeline.NewRunner(a.capability, a.images, a.logger, a.cfg.PreviewDelay())
}

func (a *Application) initializeGUI() {
	a.canvas = NewImageCanvas(a.logger)
	a.opsPanel = NewOperationsPanel(a.logger)
	a.stepsPanel = NewStepsPanel(a.hist, a.logger)
	a.metricsPanel = NewMetricsPanel()
	a.menuHandler = NewMenuHandler(a.window, a.images, a.loader, a.logger)
	a.statusCard = widget.NewCard("Status", "", widget.NewLabel("Open an image to start editing"))
}

func (a *Application) setupLayout() {
	leftPanels := container.NewVSplit(
		container.NewScroll(a.opsPanel.GetContainer()),
		a.stepsPanel.GetContainer(),
	)
	leftPanels.SetOffset(0.65)

	rightPanels := container.NewVBox(
		a.statusCard,
		a.metricsPanel.GetContainer(),
	)

	centerAndRight := container.NewHSplit(
		container.NewPadded(a.canvas.GetContainer()),
		rightPanels,
	)
	centerAndRight.SetOffset(0.8)

	mainContent := container.NewHSplit(leftPanels, centerAndRight)
	mainContent.SetOffset(0.25)

	a.window.SetMainMenu(a.menuHandler.GetMainMenu())
	a.window.SetContent(mainContent)
}

func (a *Application) setupCallbacks() {
	// Runner callbacks arrive on the runner goroutine; hop to the UI
	// thread before touching widgets.
	a.runner.SetCallbacks(
		func(final image.Image, quality map[string]float64) {
			fyne.Do(func() {
				a.canvas.UpdateResult(final)
				a.metricsPanel.UpdateQuality(quality)
				a.updateStatusMessage(fmt.Sprintf("Replayed %d step(s)", a.hist.Len()))
			})
		},
		func(err error) {
			fyne.Do(func() {
				a.showError("Processing Error", err)
			})
		},
	)

	a.opsPanel.SetCallbacks(
		func(id ops.OpID, params ops.Params) {
			a.hist.AddStep(id, params)
			a.stepsPanel.Refresh()
			a.runner.Trigger(a.hist.Past())
			a.updateStatusMessage(fmt.Sprintf("Added: %s", id))
		},
		func(err error) {
			a.showError("Invalid Parameters", err)
		},
	)

	a.stepsPanel.SetHistoryChangedCallback(func() {
		a.runner.Trigger(a.hist.Past())
	})

	a.menuHandler.SetCallbacks(
		func(filepath string) {
			a.hist.Reset()
			a.stepsPanel.Refresh()
			a.metricsPanel.Clear()
			a.canvas.ClearResult()
			a.showOriginal()
			a.opsPanel.Enable()
			// replay the empty chain so the result pane and export
			// reflect the untouched original
			a.runner.Trigger(nil)
			a.updateStatusMessage(fmt.Sprintf("Loaded: %s", filepath))
		},
		func(filepath string) {
			a.updateStatusMessage(fmt.Sprintf("Exported: %s", filepath))
			dialog.ShowInformation("Image Exported",
				fmt.Sprintf("Result saved to:\n%s", filepath), a.window)
		},
		func() {
			a.hist.Reset()
			a.stepsPanel.Refresh()
			a.metricsPanel.Clear()
			a.runner.Trigger(nil)
			a.updateStatusMessage("Reset to original image")
		},
	)
}

func (a *Application) showOriginal() {
	original := a.images.GetOriginal()
	defer original.Close()
	if original.Empty() {
		return
	}
	img, err := original.ToImage()
	if err != nil {
		a.logger.Error("failed to convert original for display", "error", err)
		return
	}
	a.canvas.UpdateOriginal(img)
}

func (a *Application) updateStatusMessage(message string) {
	a.statusCard.SetContent(widget.NewLabel(message))
}

func (a *Application) showError(title string, err error) {
	a.logger.Error(title, "error", err)
	dialog.ShowError(err, a.window)
	a.updateStatusMessage(fmt.Sprintf("Error: %s", err.Error()))
}

func (a *Application) ShowAndRun() {
	a.logger.Info("showing main application window")

	a.window.SetCloseIntercept(func() {
		a.cleanup()
		a.app.Quit()
	})

	a.window.ShowAndRun()
}

func (a *Application) cleanup() {
	a.logger.Info("cleaning up application resources")
	a.runner.Stop()
	a.images.Close()
}
