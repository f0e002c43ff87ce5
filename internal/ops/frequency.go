// Frequency-domain magnitude spectrum
package ops

import (
	"image/color"

	"gocv.io/x/gocv"
)

// applyFourier pads the luma image to the optimal transform size, runs a
// 2-D DFT and returns the log-scaled magnitude spectrum normalized to
// 0-255. The output keeps the padded dimensions; it is not resized back
// to the input size, so later steps in the chain see the padded extent.
func applyFourier(input gocv.Mat) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	rows := gocv.GetOptimalDFTSize(gray.Rows())
	cols := gocv.GetOptimalDFTSize(gray.Cols())

	padded := gocv.NewMat()
	defer padded.Close()
	gocv.CopyMakeBorder(gray, &padded,
		0, rows-gray.Rows(), 0, cols-gray.Cols(),
		gocv.BorderConstant, color.RGBA{})

	f32 := gocv.NewMat()
	defer f32.Close()
	padded.ConvertTo(&f32, gocv.MatTypeCV32F)

	freq := gocv.NewMat()
	defer freq.Close()
	gocv.DFT(f32, &freq, gocv.DftComplexOutput)

	planes := gocv.Split(freq)
	defer closeAll(planes)

	mag := gocv.NewMat()
	defer mag.Close()
	gocv.Magnitude(planes[0], planes[1], &mag)

	// log(1+|F|) compresses the dynamic range before normalization
	mag.AddFloat(1)
	logMag := gocv.NewMat()
	defer logMag.Close()
	gocv.Log(mag, &logMag)

	gocv.Normalize(logMag, &logMag, 0, 255, gocv.NormMinMax)

	out := gocv.NewMat()
	logMag.ConvertTo(&out, gocv.MatTypeCV8U)
	return out, nil
}
