package ops

import (
	"fmt"

	"gocv.io/x/gocv"
)

// toGray returns a newly owned single-channel copy of input.
func toGray(input gocv.Mat) (gocv.Mat, error) {
	switch input.Channels() {
	case 1:
		return input.Clone(), nil
	case 3:
		gray := gocv.NewMat()
		gocv.CvtColor(input, &gray, gocv.ColorBGRToGray)
		return gray, nil
	case 4:
		gray := gocv.NewMat()
		gocv.CvtColor(input, &gray, gocv.ColorBGRAToGray)
		return gray, nil
	}
	return gocv.Mat{}, fmt.Errorf("unsupported channel count: %d", input.Channels())
}

// toBGR returns a newly owned three-channel copy of input.
func toBGR(input gocv.Mat) (gocv.Mat, error) {
	switch input.Channels() {
	case 1:
		bgr := gocv.NewMat()
		gocv.CvtColor(input, &bgr, gocv.ColorGrayToBGR)
		return bgr, nil
	case 3:
		return input.Clone(), nil
	case 4:
		bgr := gocv.NewMat()
		gocv.CvtColor(input, &bgr, gocv.ColorBGRAToBGR)
		return bgr, nil
	}
	return gocv.Mat{}, fmt.Errorf("unsupported channel count: %d", input.Channels())
}

func closeAll(mats []gocv.Mat) {
	for i := range mats {
		mats[i].Close()
	}
}
