package pipeline

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"

	"sequential-image-editor/internal/history"
	"sequential-image-editor/internal/ops"
)

func testImage(t *testing.T) gocv.Mat {
	t.Helper()
	m := gocv.NewMatWithSize(8, 8, gocv.MatTypeCV8UC3)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			m.SetUCharAt3(y, x, 0, uint8(x*30))
			m.SetUCharAt3(y, x, 1, uint8(y*30))
			m.SetUCharAt3(y, x, 2, uint8((x+y)*15))
		}
	}
	return m
}

func steps(ids ...ops.OpID) []history.Step {
	out := make([]history.Step, 0, len(ids))
	for _, id := range ids {
		out = append(out, history.Step{Op: id, Params: ops.Defaults()})
	}
	return out
}

func TestReplayWithoutStepsCopiesOriginal(t *testing.T) {
	original := testImage(t)
	defer original.Close()

	out, err := Replay(context.Background(), original, nil)
	require.NoError(t, err)
	defer out.Close()

	assert.Equal(t, original.ToBytes(), out.ToBytes())
}

func TestReplayIsPure(t *testing.T) {
	original := testImage(t)
	defer original.Close()

	chain := steps(ops.ColorInversion, ops.HistogramEqualization, ops.Thresholding)

	first, err := Replay(context.Background(), original, chain)
	require.NoError(t, err)
	defer first.Close()

	second, err := Replay(context.Background(), original, chain)
	require.NoError(t, err)
	defer second.Close()

	assert.Equal(t, first.ToBytes(), second.ToBytes())
}

func TestReplayLeavesOriginalUntouched(t *testing.T) {
	original := testImage(t)
	defer original.Close()
	before := original.ToBytes()

	out, err := Replay(context.Background(), original, steps(ops.ColorInversion, ops.GaborFilter))
	require.NoError(t, err)
	out.Close()

	assert.Equal(t, before, original.ToBytes())
}

func TestReplaySingleInversion(t *testing.T) {
	original := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8U)
	defer original.Close()
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			original.SetUCharAt(y, x, uint8(y*4+x))
		}
	}

	out, err := Replay(context.Background(), original, steps(ops.ColorInversion))
	require.NoError(t, err)
	defer out.Close()

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			assert.Equal(t, 255-original.GetUCharAt(y, x), out.GetUCharAt(y, x))
		}
	}
}

func TestReplayAbortsOnFailingStep(t *testing.T) {
	original := testImage(t)
	defer original.Close()

	bad := ops.Defaults()
	bad.KernelSize = 4 // even kernel is invalid for high-pass
	chain := []history.Step{
		{Op: ops.ColorInversion, Params: ops.Defaults()},
		{Op: ops.HighPassFilter, Params: bad},
		{Op: ops.Thresholding, Params: ops.Defaults()},
	}

	out, err := Replay(context.Background(), original, chain)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2")
	assert.True(t, out.Closed(), "a failed replay must not surface a partial result")
}

func TestReplayAbortsOnUnknownIdentifier(t *testing.T) {
	original := testImage(t)
	defer original.Close()

	out, err := Replay(context.Background(), original, []history.Step{{Op: ops.OpID(42)}})
	require.Error(t, err)
	assert.ErrorIs(t, err, ops.ErrUnsupportedOperation)
	assert.True(t, out.Closed())
}

func TestReplayRejectsEmptyOriginal(t *testing.T) {
	empty := gocv.NewMat()
	defer empty.Close()

	out, err := Replay(context.Background(), empty, steps(ops.ColorInversion))
	require.Error(t, err)
	assert.True(t, out.Closed())
}

func TestReplayHonorsCancellation(t *testing.T) {
	original := testImage(t)
	defer original.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	out, err := Replay(ctx, original, steps(ops.ColorInversion))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, out.Closed())
}
