// Operation selector and generated parameter form
package gui

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sequential-image-editor/internal/ops"
)

// OperationsPanel lets the user pick one of the catalog operations, edit
// its parameters and append a step. The form is generated from the
// operation's parameter specs and edits a working snapshot; AddStep hands
// a by-value copy to the history, so further edits never touch steps that
// are already in the chain.
type OperationsPanel struct {
	logger *slog.Logger

	box        *fyne.Container
	opSelect   *widget.Select
	formArea   *fyne.Container
	scalesRow  *widget.Entry
	addButton  *widget.Button
	enabled    bool
	selectedOp ops.OpID
	working    ops.Params

	onAddStep func(ops.OpID, ops.Params)
	onError   func(error)
}

func NewOperationsPanel(logger *slog.Logger) *OperationsPanel {
	panel := &OperationsPanel{
		logger:     logger,
		working:    ops.Defaults(),
		selectedOp: ops.HistogramEqualization,
	}
	panel.initializeUI()
	return panel
}

func (op *OperationsPanel) initializeUI() {
	names := make([]string, 0, len(ops.All()))
	for _, id := range ops.All() {
		names = append(names, id.String())
	}

	op.formArea = container.NewVBox()

	op.opSelect = widget.NewSelect(names, func(name string) {
		id, ok := ops.FromString(name)
		if !ok {
			return
		}
		op.selectedOp = id
		op.rebuildForm()
	})

	op.addButton = widget.NewButton("Add Step", op.addStep)

	op.box = container.NewVBox(
		widget.NewCard("Operation", "", op.opSelect),
		widget.NewCard("Parameters", "", container.NewScroll(op.formArea)),
		op.addButton,
	)

	op.opSelect.SetSelected(names[0])
	op.Disable()
}

// SetCallbacks installs the add-step and error sinks.
func (op *OperationsPanel) SetCallbacks(onAddStep func(ops.OpID, ops.Params), onError func(error)) {
	op.onAddStep = onAddStep
	op.onError = onError
}

func (op *OperationsPanel) GetContainer() fyne.CanvasObject {
	return op.box
}

func (op *OperationsPanel) Enable() {
	op.enabled = true
	op.opSelect.Enable()
	op.addButton.Enable()
}

func (op *OperationsPanel) Disable() {
	op.enabled = false
	op.opSelect.Disable()
	op.addButton.Disable()
}

func (op *OperationsPanel) rebuildForm() {
	op.formArea.RemoveAll()
	op.scalesRow = nil

	specs := ops.Specs(op.selectedOp)
	if len(specs) == 0 {
		op.formArea.Add(widget.NewLabel("No parameters for this operation"))
		op.formArea.Refresh()
		return
	}

	for _, spec := range specs {
		spec := spec
		switch spec.Kind {
		case ops.KindFloat, ops.KindInt:
			value := spec.Get(&op.working)
			valueLabel := widget.NewLabel(formatValue(spec, value))
			slider := widget.NewSlider(spec.Min, spec.Max)
			slider.Step = spec.Step
			slider.SetValue(value)
			slider.OnChanged = func(v float64) {
				spec.Set(&op.working, v)
				valueLabel.SetText(formatValue(spec, v))
			}
			row := container.NewBorder(nil, nil, widget.NewLabel(spec.Label), valueLabel, slider)
			op.formArea.Add(row)

		case ops.KindEnum:
			choice := widget.NewSelect(spec.Options, func(selected string) {
				for i, name := range spec.Options {
					if name == selected {
						spec.Set(&op.working, float64(i))
						return
					}
				}
			})
			idx := int(spec.Get(&op.working))
			if idx >= 0 && idx < len(spec.Options) {
				choice.SetSelected(spec.Options[idx])
			}
			op.formArea.Add(container.NewBorder(nil, nil, widget.NewLabel(spec.Label), nil, choice))

		case ops.KindScaleList:
			entry := widget.NewEntry()
			entry.SetText(formatScales(op.working.RetinexScales))
			op.scalesRow = entry
			op.formArea.Add(container.NewBorder(nil, nil, widget.NewLabel(spec.Label), nil, entry))
		}
	}
	op.formArea.Refresh()
}

func (op *OperationsPanel) addStep() {
	if !op.enabled {
		return
	}

	if op.scalesRow != nil {
		scales, err := parseScales(op.scalesRow.Text)
		if err != nil {
			op.reportError(err)
			return
		}
		op.working.RetinexScales = scales
	}

	if err := ops.Validate(op.selectedOp, op.working); err != nil {
		op.reportError(err)
		return
	}

	op.logger.Info("step added from form", "operation", op.selectedOp.String())
	if op.onAddStep != nil {
		op.onAddStep(op.selectedOp, op.working)
	}
}

func (op *OperationsPanel) reportError(err error) {
	op.logger.Warn("rejected step", "operation", op.selectedOp.String(), "error", err)
	if op.onError != nil {
		op.onError(err)
	}
}

func formatValue(spec ops.ParamSpec, v float64) string {
	if spec.Kind == ops.KindInt {
		return strconv.Itoa(int(v))
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}

func formatScales(scales []float64) string {
	parts := make([]string, len(scales))
	for i, s := range scales {
		parts[i] = strconv.FormatFloat(s, 'f', -1, 64)
	}
	return strings.Join(parts, ", ")
}

func parseScales(text string) ([]float64, error) {
	parts := strings.Split(text, ",")
	scales := make([]float64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid blur scale %q", part)
		}
		scales = append(scales, v)
	}
	if len(scales) == 0 {
		return nil, fmt.Errorf("at least one blur scale is required")
	}
	return scales, nil
}
