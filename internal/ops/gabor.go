// Orientation-selective Gabor filtering
package ops

import (
	"image"
	"math"

	"gocv.io/x/gocv"
)

func applyGabor(input gocv.Mat, p Params) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	kernel := gaborKernel(p.GaborKernel, p.GaborSigma, p.GaborTheta, p.GaborLambda, p.GaborGamma, p.GaborPsi)
	defer kernel.Close()

	out := gocv.NewMat()
	gocv.Filter2D(gray, &out, gocv.MatTypeCV8U, kernel, image.Pt(-1, -1), 0, gocv.BorderDefault)
	return out, nil
}

// gaborKernel builds a ksize x ksize CV32F convolution kernel: a cosine
// carrier of wavelength lambda at phase psi, oriented by theta, under an
// elliptical Gaussian envelope with standard deviation sigma and aspect
// ratio gamma. The sample at (0,0) in kernel coordinates lands at the
// matrix center, mirrored the way convolution expects.
func gaborKernel(ksize int, sigma, theta, lambda, gamma, psi float64) gocv.Mat {
	half := (ksize - 1) / 2
	sigmaX := sigma
	sigmaY := sigma / gamma
	ex := -0.5 / (sigmaX * sigmaX)
	ey := -0.5 / (sigmaY * sigmaY)
	carrier := 2 * math.Pi / lambda
	sin, cos := math.Sincos(theta)

	kernel := gocv.NewMatWithSize(ksize, ksize, gocv.MatTypeCV32F)
	for y := -half; y <= half; y++ {
		for x := -half; x <= half; x++ {
			xr := float64(x)*cos + float64(y)*sin
			yr := -float64(x)*sin + float64(y)*cos
			v := math.Exp(ex*xr*xr+ey*yr*yr) * math.Cos(carrier*xr+psi)
			kernel.SetFloatAt(half-y, half-x, float32(v))
		}
	}
	return kernel
}
