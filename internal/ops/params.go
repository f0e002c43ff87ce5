// Parameter snapshot shared by every operation
package ops

// Params carries every tunable field used by any operation in the
// catalog. A step stores the whole record; each operation reads only its
// own subset and ignores the rest. Steps capture the record by value at
// creation time (see Clone), so later edits in the parameter form never
// reach an already-added step.
type Params struct {
	// Adaptive histogram equalization
	ClipLimit float64
	TileSize  int

	// Edge detection
	LowThreshold  float64
	HighThreshold float64

	// Unsharp masking
	Sigma  float64
	Amount float64

	// High-pass and Laplacian filtering
	KernelSize int
	Scale      float64

	// Thresholding
	Threshold float64

	// Pseudocolor mapping: index into the palette list
	Colormap int

	// Color boosting, channel order R, G, B
	Boost [3]float64

	// Channel mixing: row-major, out_RGB = Mix * in_RGB
	Mix [3][3]float64

	// Manual colorization, channel order R, G, B
	Tint [3]float64

	// Multi-scale retinex blur scales
	RetinexScales []float64

	// Gabor kernel construction
	GaborKernel int
	GaborSigma  float64
	GaborTheta  float64
	GaborLambda float64
	GaborGamma  float64
	GaborPsi    float64
}

// Clone returns a value-independent copy. The scale list is the only
// reference field and is copied element-wise.
func (p Params) Clone() Params {
	out := p
	if p.RetinexScales != nil {
		out.RetinexScales = append([]float64(nil), p.RetinexScales...)
	}
	return out
}

// Defaults returns a snapshot pre-filled with a working value for every
// field, so any operation can be added without touching the form first.
func Defaults() Params {
	return Params{
		ClipLimit:     2.0,
		TileSize:      8,
		LowThreshold:  50,
		HighThreshold: 150,
		Sigma:         1.5,
		Amount:        1.0,
		KernelSize:    3,
		Scale:         1.0,
		Threshold:     127,
		Colormap:      2, // Jet
		Boost:         [3]float64{1.2, 1.0, 1.0},
		Mix: [3][3]float64{
			{1, 0, 0},
			{0, 1, 0},
			{0, 0, 1},
		},
		Tint:          [3]float64{40, 20, 10},
		RetinexScales: []float64{15, 80, 250},
		GaborKernel:   21,
		GaborSigma:    5,
		GaborTheta:    0,
		GaborLambda:   10,
		GaborGamma:    0.5,
		GaborPsi:      0,
	}
}
