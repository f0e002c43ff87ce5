// Multi-scale retinex illumination normalization
package ops

import (
	"image"

	"gocv.io/x/gocv"
)

// applyRetinex accumulates log(src) - log(blur(src, scale)) over every
// configured scale in float32 and min-max normalizes the sum to 0-255.
// The +1 offset keeps zero-valued pixels finite under the logarithm.
func applyRetinex(input gocv.Mat, p Params) (gocv.Mat, error) {
	src32 := gocv.NewMat()
	defer src32.Close()
	input.ConvertTo(&src32, gocv.MatTypeCV32F)
	src32.AddFloat(1)

	logSrc := gocv.NewMat()
	defer logSrc.Close()
	gocv.Log(src32, &logSrc)

	sum := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0),
		src32.Rows(), src32.Cols(), src32.Type())

	for _, scale := range p.RetinexScales {
		blur := gocv.NewMat()
		gocv.GaussianBlur(src32, &blur, image.Pt(0, 0), scale, scale, gocv.BorderDefault)

		logBlur := gocv.NewMat()
		gocv.Log(blur, &logBlur)
		blur.Close()

		diff := gocv.NewMat()
		gocv.Subtract(logSrc, logBlur, &diff)
		logBlur.Close()

		next := gocv.NewMat()
		gocv.Add(sum, diff, &next)
		diff.Close()
		sum.Close()
		sum = next
	}
	defer sum.Close()

	gocv.Normalize(sum, &sum, 0, 255, gocv.NormMinMax)

	out := gocv.NewMat()
	sum.ConvertTo(&out, gocv.MatTypeCV8U)
	return out, nil
}
