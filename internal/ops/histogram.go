// Global and tiled histogram equalization
package ops

import (
	"image"

	"gocv.io/x/gocv"
)

func applyEqualize(input gocv.Mat) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	out := gocv.NewMat()
	gocv.EqualizeHist(gray, &out)
	return out, nil
}

func applyCLAHE(input gocv.Mat, p Params) (gocv.Mat, error) {
	gray, err := toGray(input)
	if err != nil {
		return gocv.Mat{}, err
	}
	defer gray.Close()

	clahe := gocv.NewCLAHEWithParams(p.ClipLimit, image.Pt(p.TileSize, p.TileSize))
	defer clahe.Close()

	out := gocv.NewMat()
	clahe.Apply(gray, &out)
	return out, nil
}
