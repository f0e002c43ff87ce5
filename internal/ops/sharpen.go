// Blur-difference sharpening operations
package ops

import (
	"image"

	"gocv.io/x/gocv"
)

// applyUnsharp computes sharpened = (1+amount)*src - amount*blur(src).
// amount=0 is the identity regardless of sigma.
func applyUnsharp(input gocv.Mat, p Params) (gocv.Mat, error) {
	blur := gocv.NewMat()
	defer blur.Close()
	// kernel size 0 lets the blur derive its extent from sigma
	gocv.GaussianBlur(input, &blur, image.Pt(0, 0), p.Sigma, p.Sigma, gocv.BorderDefault)

	out := gocv.NewMat()
	gocv.AddWeighted(input, 1+p.Amount, blur, -p.Amount, 0, &out)
	return out, nil
}

func applyHighPass(input gocv.Mat, p Params) (gocv.Mat, error) {
	blur := gocv.NewMat()
	defer blur.Close()
	gocv.GaussianBlur(input, &blur, image.Pt(p.KernelSize, p.KernelSize), 0, 0, gocv.BorderDefault)

	out := gocv.NewMat()
	gocv.Subtract(input, blur, &out)
	return out, nil
}
