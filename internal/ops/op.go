// Operation catalog: the closed set of chain operations and their dispatch
package ops

import (
	"errors"
	"fmt"

	"gocv.io/x/gocv"
)

// OpID identifies one of the supported operations. The set is closed;
// dispatch is an exhaustive switch so an identifier outside the set is a
// hard error, never a silent pass-through.
type OpID int

const (
	HistogramEqualization OpID = iota
	AdaptiveEqualization
	EdgeDetection
	UnsharpMasking
	HighPassFilter
	LaplacianFilter
	ColorInversion
	Thresholding
	PseudocolorMapping
	FourierTransform
	ColorBoosting
	ChannelMixing
	ManualColorization
	MultiScaleRetinex
	GaborFilter

	opCount // sentinel, keep last
)

// ErrUnsupportedOperation is returned for identifiers outside the catalog.
var ErrUnsupportedOperation = errors.New("unsupported operation")

var opNames = [opCount]string{
	HistogramEqualization: "Histogram Equalization",
	AdaptiveEqualization:  "Adaptive Histogram Equalization",
	EdgeDetection:         "Edge Detection",
	UnsharpMasking:        "Unsharp Masking",
	HighPassFilter:        "High-Pass Filtering",
	LaplacianFilter:       "Laplacian Filtering",
	ColorInversion:        "Color Inversion",
	Thresholding:          "Thresholding",
	PseudocolorMapping:    "Pseudocolor Mapping",
	FourierTransform:      "Fourier Transform",
	ColorBoosting:         "Color Boosting",
	ChannelMixing:         "Channel Mixing",
	ManualColorization:    "Manual Colorization",
	MultiScaleRetinex:     "Multi-Scale Retinex",
	GaborFilter:           "Gabor Filter",
}

// Valid reports whether id is inside the catalog.
func (id OpID) Valid() bool {
	return id >= 0 && id < opCount
}

func (id OpID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("OpID(%d)", int(id))
	}
	return opNames[id]
}

// All returns every catalog identifier in display order.
func All() []OpID {
	out := make([]OpID, 0, opCount)
	for id := OpID(0); id < opCount; id++ {
		out = append(out, id)
	}
	return out
}

// FromString resolves a display name back to its identifier.
func FromString(name string) (OpID, bool) {
	for id := OpID(0); id < opCount; id++ {
		if opNames[id] == name {
			return id, true
		}
	}
	return 0, false
}

// Apply runs the transform for id over input and returns a newly owned
// output Mat. The input is never modified; the caller keeps ownership of
// it and is expected to release it once the output replaces it. On error
// the returned Mat is a closed zero value holding no resources.
func Apply(id OpID, input gocv.Mat, p Params) (gocv.Mat, error) {
	if input.Empty() {
		return gocv.Mat{}, fmt.Errorf("input image is empty")
	}
	if err := Validate(id, p); err != nil {
		return gocv.Mat{}, err
	}

	switch id {
	case HistogramEqualization:
		return applyEqualize(input)
	case AdaptiveEqualization:
		return applyCLAHE(input, p)
	case EdgeDetection:
		return applyEdges(input, p)
	case UnsharpMasking:
		return applyUnsharp(input, p)
	case HighPassFilter:
		return applyHighPass(input, p)
	case LaplacianFilter:
		return applyLaplacian(input, p)
	case ColorInversion:
		return applyInvert(input)
	case Thresholding:
		return applyThreshold(input, p)
	case PseudocolorMapping:
		return applyPseudocolor(input, p)
	case FourierTransform:
		return applyFourier(input)
	case ColorBoosting:
		return applyBoost(input, p)
	case ChannelMixing:
		return applyChannelMix(input, p)
	case ManualColorization:
		return applyColorize(input, p)
	case MultiScaleRetinex:
		return applyRetinex(input, p)
	case GaborFilter:
		return applyGabor(input, p)
	}
	return gocv.Mat{}, fmt.Errorf("%w: identifier %d", ErrUnsupportedOperation, int(id))
}

// Validate checks the parameter subset read by id. Fields the operation
// does not read are ignored.
func Validate(id OpID, p Params) error {
	switch id {
	case HistogramEqualization, ColorInversion, FourierTransform:
		return nil
	case AdaptiveEqualization:
		if p.ClipLimit <= 0 {
			return paramErr(id, "clip_limit", "must be positive")
		}
		if p.TileSize < 1 || p.TileSize > 64 {
			return paramErr(id, "tile_size", "must be between 1 and 64")
		}
		return nil
	case EdgeDetection:
		if p.LowThreshold < 0 || p.HighThreshold < 0 {
			return paramErr(id, "thresholds", "must not be negative")
		}
		if p.LowThreshold > p.HighThreshold {
			return paramErr(id, "low_threshold", "must not exceed high_threshold")
		}
		return nil
	case UnsharpMasking:
		if p.Sigma <= 0 {
			return paramErr(id, "sigma", "must be positive")
		}
		if p.Amount < 0 {
			return paramErr(id, "amount", "must not be negative")
		}
		return nil
	case HighPassFilter:
		if p.KernelSize < 1 || p.KernelSize%2 == 0 {
			return paramErr(id, "kernel_size", "must be odd and at least 1")
		}
		return nil
	case LaplacianFilter:
		if p.KernelSize < 1 || p.KernelSize > 31 || p.KernelSize%2 == 0 {
			return paramErr(id, "kernel_size", "must be odd, between 1 and 31")
		}
		if p.Scale <= 0 {
			return paramErr(id, "scale", "must be positive")
		}
		return nil
	case Thresholding:
		if p.Threshold < 0 || p.Threshold > 255 {
			return paramErr(id, "threshold", "must be between 0 and 255")
		}
		return nil
	case PseudocolorMapping:
		if p.Colormap < 0 || p.Colormap >= len(palettes) {
			return paramErr(id, "colormap", fmt.Sprintf("must be between 0 and %d", len(palettes)-1))
		}
		return nil
	case ColorBoosting:
		for _, v := range p.Boost {
			if v < 0 {
				return paramErr(id, "boost", "components must not be negative")
			}
		}
		return nil
	case ChannelMixing:
		return nil
	case ManualColorization:
		for _, v := range p.Tint {
			if v < 0 || v > 255 {
				return paramErr(id, "tint", "components must be between 0 and 255")
			}
		}
		return nil
	case MultiScaleRetinex:
		if len(p.RetinexScales) == 0 {
			return paramErr(id, "scales", "at least one blur scale is required")
		}
		for _, s := range p.RetinexScales {
			if s <= 0 {
				return paramErr(id, "scales", "every scale must be positive")
			}
		}
		return nil
	case GaborFilter:
		if p.GaborKernel < 3 || p.GaborKernel%2 == 0 {
			return paramErr(id, "gabor_kernel", "must be odd and at least 3")
		}
		if p.GaborSigma <= 0 {
			return paramErr(id, "gabor_sigma", "must be positive")
		}
		if p.GaborLambda <= 0 {
			return paramErr(id, "gabor_lambda", "must be positive")
		}
		if p.GaborGamma <= 0 {
			return paramErr(id, "gabor_gamma", "must be positive")
		}
		return nil
	}
	return fmt.Errorf("%w: identifier %d", ErrUnsupportedOperation, int(id))
}

func paramErr(id OpID, field, msg string) error {
	return fmt.Errorf("%s: parameter %q %s", id, field, msg)
}
