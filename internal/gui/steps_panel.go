// Applied step list with undo/redo controls
package gui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"sequential-image-editor/internal/history"
)

// StepsPanel shows the applied chain and gates the undo/redo buttons on
// non-empty past/future.
type StepsPanel struct {
	hist   *history.History
	logger *slog.Logger

	box        *fyne.Container
	stepList   *widget.List
	undoButton *widget.Button
	redoButton *widget.Button
	countLabel *widget.Label

	steps []history.Step

	onHistoryChanged func()
}

func NewStepsPanel(hist *history.History, logger *slog.Logger) *StepsPanel {
	panel := &StepsPanel{hist: hist, logger: logger}
	panel.initializeUI()
	return panel
}

func (sp *StepsPanel) initializeUI() {
	sp.stepList = widget.NewList(
		func() int { return len(sp.steps) },
		func() fyne.CanvasObject { return widget.NewLabel("step") },
		func(i widget.ListItemID, obj fyne.CanvasObject) {
			if i < len(sp.steps) {
				obj.(*widget.Label).SetText(fmt.Sprintf("%d. %s", i+1, sp.steps[i].Op))
			}
		},
	)

	sp.undoButton = widget.NewButtonWithIcon("Undo", theme.ContentUndoIcon(), sp.undo)
	sp.redoButton = widget.NewButtonWithIcon("Redo", theme.ContentRedoIcon(), sp.redo)
	sp.countLabel = widget.NewLabel("No steps")

	controls := container.NewHBox(sp.undoButton, sp.redoButton)
	sp.box = container.NewBorder(
		container.NewVBox(controls, sp.countLabel),
		nil, nil, nil,
		sp.stepList,
	)

	sp.Refresh()
}

// SetHistoryChangedCallback installs the hook run after every successful
// undo/redo.
func (sp *StepsPanel) SetHistoryChangedCallback(cb func()) {
	sp.onHistoryChanged = cb
}

func (sp *StepsPanel) GetContainer() fyne.CanvasObject {
	return sp.box
}

func (sp *StepsPanel) undo() {
	if !sp.hist.Undo() {
		return
	}
	sp.logger.Info("step undone", "remaining", sp.hist.Len())
	sp.Refresh()
	if sp.onHistoryChanged != nil {
		sp.onHistoryChanged()
	}
}

func (sp *StepsPanel) redo() {
	if !sp.hist.Redo() {
		return
	}
	sp.logger.Info("step redone", "applied", sp.hist.Len())
	sp.Refresh()
	if sp.onHistoryChanged != nil {
		sp.onHistoryChanged()
	}
}

// Refresh re-reads the history and updates the list and button states.
func (sp *StepsPanel) Refresh() {
	sp.steps = sp.hist.Past()
	sp.stepList.Refresh()

	if sp.hist.CanUndo() {
		sp.undoButton.Enable()
	} else {
		sp.undoButton.Disable()
	}
	if sp.hist.CanRedo() {
		sp.redoButton.Enable()
	} else {
		sp.redoButton.Disable()
	}

	switch n := len(sp.steps); n {
	case 0:
		sp.countLabel.SetText("No steps")
	case 1:
		sp.countLabel.SetText("1 step")
	default:
		sp.countLabel.SetText(fmt.Sprintf("%d steps", n))
	}
}
