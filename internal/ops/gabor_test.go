package ops

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestGaborKernelShapeAndCenter(t *testing.T) {
	k := gaborKernel(9, 3, 0, 8, 0.5, 0)
	defer k.Close()

	assert.Equal(t, 9, k.Rows())
	assert.Equal(t, 9, k.Cols())
	assert.Equal(t, gocv.MatTypeCV32F, k.Type())

	// at the origin the envelope is 1 and the carrier is cos(psi)
	assert.InDelta(t, 1.0, float64(k.GetFloatAt(4, 4)), 1e-6)

	shifted := gaborKernel(9, 3, 0, 8, 0.5, math.Pi)
	defer shifted.Close()
	assert.InDelta(t, -1.0, float64(shifted.GetFloatAt(4, 4)), 1e-6)
}

func TestGaborKernelSymmetry(t *testing.T) {
	// theta=0 with zero phase is even in both axes
	k := gaborKernel(7, 2, 0, 5, 0.7, 0)
	defer k.Close()

	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			assert.InDelta(t, float64(k.GetFloatAt(r, c)), float64(k.GetFloatAt(r, 6-c)), 1e-6)
			assert.InDelta(t, float64(k.GetFloatAt(r, c)), float64(k.GetFloatAt(6-r, c)), 1e-6)
		}
	}
}

func TestGaborKernelOrientation(t *testing.T) {
	// a quarter-turn of theta transposes the kernel
	horizontal := gaborKernel(7, 2, 0, 5, 0.7, 0)
	defer horizontal.Close()
	vertical := gaborKernel(7, 2, math.Pi/2, 5, 0.7, 0)
	defer vertical.Close()

	for r := 0; r < 7; r++ {
		for c := 0; c < 7; c++ {
			assert.InDelta(t, float64(horizontal.GetFloatAt(r, c)), float64(vertical.GetFloatAt(c, r)), 1e-5)
		}
	}
}

func TestGaborKernelEnvelopeDecays(t *testing.T) {
	k := gaborKernel(21, 3, 0, 40, 1, 0)
	defer k.Close()

	center := math.Abs(float64(k.GetFloatAt(10, 10)))
	corner := math.Abs(float64(k.GetFloatAt(0, 0)))
	assert.Greater(t, center, corner)
}

func TestGaborFilterPreservesDimensions(t *testing.T) {
	input := colorMat(t, 16)
	defer input.Close()

	p := Defaults()
	p.GaborKernel = 9
	out, err := Apply(GaborFilter, input, p)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, input.Rows(), out.Rows())
	assert.Equal(t, input.Cols(), out.Cols())
	assert.Equal(t, gocv.MatTypeCV8U, out.Type())
}
