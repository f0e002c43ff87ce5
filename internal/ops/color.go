// Per-channel and palette color operations
package ops

import (
	"gocv.io/x/gocv"
)

// palettes is the fixed pseudocolor lookup set. Params.Colormap indexes
// this list; validation rejects anything outside it.
var palettes = []struct {
	Name string
	Kind gocv.ColormapTypes
}{
	{"Autumn", gocv.ColormapAutumn},
	{"Bone", gocv.ColormapBone},
	{"Jet", gocv.ColormapJet},
	{"Winter", gocv.ColormapWinter},
	{"Rainbow", gocv.ColormapRainbow},
	{"Ocean", gocv.ColormapOcean},
	{"Summer", gocv.ColormapSummer},
	{"Spring", gocv.ColormapSpring},
	{"Cool", gocv.ColormapCool},
	{"HSV", gocv.ColormapHsv},
	{"Pink", gocv.ColormapPink},
	{"Hot", gocv.ColormapHot},
	{"Parula", gocv.ColormapParula},
}

// PaletteNames returns the pseudocolor palette names in index order.
func PaletteNames() []string {
	names := make([]string, len(palettes))
	for i, p := range palettes {
		names[i] = p.Name
	}
	return names
}

// applyInvert is involutive: applying it twice restores the input.
func applyInvert(input gocv.Mat) (gocv.Mat, error) {
	out := gocv.NewMat()
	gocv.BitwiseNot(input, &out)
	return out, nil
}

func applyThreshold(input gocv.Mat, p Params) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	out := gocv.NewMat()
	gocv.Threshold(gray, &out, float32(p.Threshold), 255, gocv.ThresholdBinary)
	return out, nil
}

func applyPseudocolor(input gocv.Mat, p Params) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	out := gocv.NewMat()
	gocv.ApplyColorMap(gray, &out, palettes[p.Colormap].Kind)
	return out, nil
}

// applyBoost scales the three color channels independently; an alpha
// channel passes through untouched. Results above 255 saturate.
func applyBoost(input gocv.Mat, p Params) (gocv.Mat, error) {
	work := input.Clone()
	if input.Channels() == 1 {
		work.Close()
		var err error
		work, err = toBGR(input)
		if err != nil {
			return gocv.Mat{}, err
		}
	}
	defer work.Close()

	channels := gocv.Split(work)
	defer closeAll(channels)

	// Mat layout is BGR; Boost is ordered R, G, B
	channels[0].MultiplyFloat(float32(p.Boost[2]))
	channels[1].MultiplyFloat(float32(p.Boost[1]))
	channels[2].MultiplyFloat(float32(p.Boost[0]))

	out := gocv.NewMat()
	gocv.Merge(channels, &out)
	return out, nil
}

// applyChannelMix recombines the color channels through a 3x3 weight
// matrix. The same input channel may feed several outputs; overflow
// saturates at 255.
func applyChannelMix(input gocv.Mat, p Params) (gocv.Mat, error) {
	bgr, err := toBGR(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer bgr.Close()

	kernel := gocv.NewMatWithSize(3, 3, gocv.MatTypeCV32F)
	defer kernel.Close()
	// Params.Mix is expressed in RGB order; the Mat is BGR, so both axes
	// are reversed when filling the transform matrix.
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			kernel.SetFloatAt(i, j, float32(p.Mix[2-i][2-j]))
		}
	}

	out := gocv.NewMat()
	gocv.Transform(bgr, &out, kernel)
	return out, nil
}

// applyColorize flattens the image to grayscale, expands it back to three
// channels and adds a flat tint. Tinted values above 255 saturate.
func applyColorize(input gocv.Mat, p Params) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	bgr := gocv.NewMat()
	gocv.CvtColor(gray, &bgr, gocv.ColorGrayToBGR)
	gray.Close()
	defer bgr.Close()

	// scalar order is B, G, R; Tint is ordered R, G, B
	tint := gocv.NewMatWithSizeFromScalar(
		gocv.NewScalar(p.Tint[2], p.Tint[1], p.Tint[0], 0),
		bgr.Rows(), bgr.Cols(), gocv.MatTypeCV8UC3)
	defer tint.Close()

	out := gocv.NewMat()
	gocv.Add(bgr, tint, &out)
	return out, nil
}
