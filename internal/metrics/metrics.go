// Quality metrics shown alongside the final image
package metrics

import (
	"fmt"
	"math"

	"gocv.io/x/gocv"
)

// Evaluator computes full-reference quality metrics between the original
// and the final image of a completed replay.
type Evaluator struct{}

func NewEvaluator() *Evaluator {
	return &Evaluator{}
}

// Evaluate returns every metric that applies. Metrics that cannot be
// computed (e.g. after a size-changing step such as the Fourier spectrum)
// are skipped rather than reported as errors.
func (e *Evaluator) Evaluate(original, final gocv.Mat) map[string]float64 {
	results := make(map[string]float64)

	if mse, err := e.MSE(original, final); err == nil {
		results["mse"] = mse
	}
	if psnr, err := e.PSNR(original, final); err == nil {
		results["psnr"] = psnr
	}
	if ssim, err := e.SSIM(original, final); err == nil {
		results["ssim"] = ssim
	}
	return results
}

// MSE is the mean squared error over the luma channel.
func (e *Evaluator) MSE(original, final gocv.Mat) (float64, error) {
	gray1, gray2, err := grayPair(original, final)
	if err != nil {
		return 0, err
	}
	defer gray1.Close()
	defer gray2.Close()

	sum := 0.0
	for y := 0; y < gray1.Rows(); y++ {
		for x := 0; x < gray1.Cols(); x++ {
			diff := float64(gray1.GetUCharAt(y, x)) - float64(gray2.GetUCharAt(y, x))
			sum += diff * diff
		}
	}
	return sum / float64(gray1.Rows()*gray1.Cols()), nil
}

// PSNR is the peak signal-to-noise ratio in dB. Identical images yield
// +Inf.
func (e *Evaluator) PSNR(original, final gocv.Mat) (float64, error) {
	mse, err := e.MSE(original, final)
	if err != nil {
		return 0, err
	}
	if mse == 0 {
		return math.Inf(1), nil
	}
	return 20 * math.Log10(255/math.Sqrt(mse)), nil
}

// SSIM is the global structural similarity index over the luma channel.
func (e *Evaluator) SSIM(original, final gocv.Mat) (float64, error) {
	gray1, gray2, err := grayPair(original, final)
	if err != nil {
		return 0, err
	}
	defer gray1.Close()
	defer gray2.Close()

	n := float64(gray1.Rows() * gray1.Cols())

	var mean1, mean2 float64
	for y := 0; y < gray1.Rows(); y++ {
		for x := 0; x < gray1.Cols(); x++ {
			mean1 += float64(gray1.GetUCharAt(y, x))
			mean2 += float64(gray2.GetUCharAt(y, x))
		}
	}
	mean1 /= n
	mean2 /= n

	var var1, var2, covar float64
	for y := 0; y < gray1.Rows(); y++ {
		for x := 0; x < gray1.Cols(); x++ {
			d1 := float64(gray1.GetUCharAt(y, x)) - mean1
			d2 := float64(gray2.GetUCharAt(y, x)) - mean2
			var1 += d1 * d1
			var2 += d2 * d2
			covar += d1 * d2
		}
	}
	var1 /= n - 1
	var2 /= n - 1
	covar /= n - 1

	const (
		c1 = (0.01 * 255) * (0.01 * 255)
		c2 = (0.03 * 255) * (0.03 * 255)
	)
	num := (2*mean1*mean2 + c1) * (2*covar + c2)
	den := (mean1*mean1 + mean2*mean2 + c1) * (var1 + var2 + c2)
	return num / den, nil
}

// grayPair returns caller-owned luma copies of both inputs, or an error
// when the pair is not comparable.
func grayPair(a, b gocv.Mat) (gocv.Mat, gocv.Mat, error) {
	if a.Empty() || b.Empty() {
		return gocv.Mat{}, gocv.Mat{}, fmt.Errorf("empty image")
	}
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return gocv.Mat{}, gocv.Mat{}, fmt.Errorf("dimension mismatch: %dx%d vs %dx%d",
			a.Cols(), a.Rows(), b.Cols(), b.Rows())
	}
	return ensureGray(a), ensureGray(b), nil
}

func ensureGray(input gocv.Mat) gocv.Mat {
	if input.Channels() == 1 {
		return input.Clone()
	}
	gray := gocv.NewMat()
	gocv.CvtColor(input, &gray, gocv.ColorBGRToGray)
	return gray
}
