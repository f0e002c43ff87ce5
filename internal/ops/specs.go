// Parameter descriptions for UI form generation
package ops

// SpecKind selects the widget a parameter needs.
type SpecKind int

const (
	KindFloat SpecKind = iota
	KindInt
	KindEnum      // choice over Options, value is the option index
	KindScaleList // variable-length list of positive floats
)

// ParamSpec describes one editable parameter of an operation. Scalar
// specs carry accessors into the working snapshot; the scale-list spec is
// special-cased by the form layer and edits Params.RetinexScales directly.
type ParamSpec struct {
	Label   string
	Kind    SpecKind
	Min     float64
	Max     float64
	Step    float64
	Options []string
	Get     func(*Params) float64
	Set     func(*Params, float64)
}

func floatSpec(label string, min, max, step float64, get func(*Params) float64, set func(*Params, float64)) ParamSpec {
	return ParamSpec{Label: label, Kind: KindFloat, Min: min, Max: max, Step: step, Get: get, Set: set}
}

func intSpec(label string, min, max float64, get func(*Params) float64, set func(*Params, float64)) ParamSpec {
	return ParamSpec{Label: label, Kind: KindInt, Min: min, Max: max, Step: 1, Get: get, Set: set}
}

func vec3Specs(label string, min, max, step float64, field func(*Params) *[3]float64) []ParamSpec {
	axes := [3]string{"R", "G", "B"}
	out := make([]ParamSpec, 0, 3)
	for i := 0; i < 3; i++ {
		i := i
		out = append(out, floatSpec(label+" "+axes[i], min, max, step,
			func(p *Params) float64 { return field(p)[i] },
			func(p *Params, v float64) { field(p)[i] = v },
		))
	}
	return out
}

// Specs returns the editable parameters for id, in display order. An
// empty slice means the operation has no tunables.
func Specs(id OpID) []ParamSpec {
	switch id {
	case HistogramEqualization, ColorInversion, FourierTransform:
		return nil
	case AdaptiveEqualization:
		return []ParamSpec{
			floatSpec("Clip limit", 0.1, 40, 0.1,
				func(p *Params) float64 { return p.ClipLimit },
				func(p *Params, v float64) { p.ClipLimit = v }),
			intSpec("Tile size", 1, 64,
				func(p *Params) float64 { return float64(p.TileSize) },
				func(p *Params, v float64) { p.TileSize = int(v) }),
		}
	case EdgeDetection:
		return []ParamSpec{
			floatSpec("Low threshold", 0, 255, 1,
				func(p *Params) float64 { return p.LowThreshold },
				func(p *Params, v float64) { p.LowThreshold = v }),
			floatSpec("High threshold", 0, 255, 1,
				func(p *Params) float64 { return p.HighThreshold },
				func(p *Params, v float64) { p.HighThreshold = v }),
		}
	case UnsharpMasking:
		return []ParamSpec{
			floatSpec("Sigma", 0.1, 20, 0.1,
				func(p *Params) float64 { return p.Sigma },
				func(p *Params, v float64) { p.Sigma = v }),
			floatSpec("Amount", 0, 5, 0.1,
				func(p *Params) float64 { return p.Amount },
				func(p *Params, v float64) { p.Amount = v }),
		}
	case HighPassFilter:
		return []ParamSpec{
			intSpec("Kernel size (odd)", 1, 31,
				func(p *Params) float64 { return float64(p.KernelSize) },
				func(p *Params, v float64) { p.KernelSize = int(v) }),
		}
	case LaplacianFilter:
		return []ParamSpec{
			intSpec("Kernel size (odd)", 1, 31,
				func(p *Params) float64 { return float64(p.KernelSize) },
				func(p *Params, v float64) { p.KernelSize = int(v) }),
			floatSpec("Scale", 0.1, 10, 0.1,
				func(p *Params) float64 { return p.Scale },
				func(p *Params, v float64) { p.Scale = v }),
		}
	case Thresholding:
		return []ParamSpec{
			floatSpec("Threshold", 0, 255, 1,
				func(p *Params) float64 { return p.Threshold },
				func(p *Params, v float64) { p.Threshold = v }),
		}
	case PseudocolorMapping:
		return []ParamSpec{
			{
				Label:   "Colormap",
				Kind:    KindEnum,
				Options: PaletteNames(),
				Get:     func(p *Params) float64 { return float64(p.Colormap) },
				Set:     func(p *Params, v float64) { p.Colormap = int(v) },
			},
		}
	case ColorBoosting:
		return vec3Specs("Boost", 0, 5, 0.1, func(p *Params) *[3]float64 { return &p.Boost })
	case ChannelMixing:
		rows := [3]string{"R out", "G out", "B out"}
		cols := [3]string{"R", "G", "B"}
		out := make([]ParamSpec, 0, 9)
		for i := 0; i < 3; i++ {
			for j := 0; j < 3; j++ {
				i, j := i, j
				out = append(out, floatSpec(rows[i]+" from "+cols[j], -2, 2, 0.05,
					func(p *Params) float64 { return p.Mix[i][j] },
					func(p *Params, v float64) { p.Mix[i][j] = v }))
			}
		}
		return out
	case ManualColorization:
		return vec3Specs("Tint", 0, 255, 1, func(p *Params) *[3]float64 { return &p.Tint })
	case MultiScaleRetinex:
		return []ParamSpec{{Label: "Blur scales", Kind: KindScaleList}}
	case GaborFilter:
		return []ParamSpec{
			intSpec("Kernel size (odd)", 3, 63,
				func(p *Params) float64 { return float64(p.GaborKernel) },
				func(p *Params, v float64) { p.GaborKernel = int(v) }),
			floatSpec("Sigma", 0.5, 20, 0.1,
				func(p *Params) float64 { return p.GaborSigma },
				func(p *Params, v float64) { p.GaborSigma = v }),
			floatSpec("Theta", 0, 3.1416, 0.05,
				func(p *Params) float64 { return p.GaborTheta },
				func(p *Params, v float64) { p.GaborTheta = v }),
			floatSpec("Lambda", 1, 60, 0.5,
				func(p *Params) float64 { return p.GaborLambda },
				func(p *Params, v float64) { p.GaborLambda = v }),
			floatSpec("Gamma", 0.05, 2, 0.05,
				func(p *Params) float64 { return p.GaborGamma },
				func(p *Params, v float64) { p.GaborGamma = v }),
			floatSpec("Psi", 0, 6.2832, 0.05,
				func(p *Params) float64 { return p.GaborPsi },
				func(p *Params, v float64) { p.GaborPsi = v }),
		}
	}
	return nil
}
