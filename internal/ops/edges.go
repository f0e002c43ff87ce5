// Gradient and second-derivative edge extraction
package ops

import (
	"gocv.io/x/gocv"
)

func applyEdges(input gocv.Mat, p Params) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	out := gocv.NewMat()
	gocv.Canny(gray, &out, float32(p.LowThreshold), float32(p.HighThreshold))
	return out, nil
}

// applyLaplacian computes the scaled second-derivative response. Output
// depth is unsigned 8-bit, so negative responses clip to zero.
func applyLaplacian(input gocv.Mat, p Params) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	out := gocv.NewMat()
	gocv.Laplacian(gray, &out, gocv.MatTypeCV8U, p.KernelSize, p.Scale, 0, gocv.BorderDefault)
	return out, nil
}
