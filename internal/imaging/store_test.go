package imaging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func sample(t *testing.T) gocv.Mat {
	t.Helper()
	return gocv.NewMatWithSizeFromScalar(gocv.NewScalar(10, 20, 30, 0), 6, 4, gocv.MatTypeCV8UC3)
}

func TestSetOriginalStoresCloneAndMetadata(t *testing.T) {
	img := NewImageData()
	defer img.Close()

	mat := sample(t)
	require.NoError(t, img.SetOriginal(mat, "/tmp/photo.png"))
	mat.Close() // the store must have its own copy

	assert.True(t, img.HasImage())
	assert.False(t, img.HasFinal())

	meta := img.GetMetadata()
	assert.Equal(t, 4, meta.Width)
	assert.Equal(t, 6, meta.Height)
	assert.Equal(t, 3, meta.Channels)
	assert.Equal(t, "png", meta.Format)
	assert.Equal(t, "/tmp/photo.png", img.GetFilepath())

	got := img.GetOriginal()
	defer got.Close()
	assert.False(t, got.Empty())
}

func TestSetOriginalRejectsInvalidInput(t *testing.T) {
	img := NewImageData()
	defer img.Close()

	empty := gocv.NewMat()
	defer empty.Close()
	assert.Error(t, img.SetOriginal(empty, "x.png"))
	assert.False(t, img.HasImage())

	twoChannel := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC2)
	defer twoChannel.Close()
	assert.Error(t, img.SetOriginal(twoChannel, "x.png"))
}

func TestFinalLifecycle(t *testing.T) {
	img := NewImageData()
	defer img.Close()

	final := sample(t)
	defer final.Close()

	// no final before an original exists
	assert.Error(t, img.SetFinal(final))

	orig := sample(t)
	defer orig.Close()
	require.NoError(t, img.SetOriginal(orig, "a.png"))

	require.NoError(t, img.SetFinal(final))
	assert.True(t, img.HasFinal())

	got := img.GetFinal()
	assert.False(t, got.Empty())
	got.Close()

	img.ClearFinal()
	assert.False(t, img.HasFinal())
	cleared := img.GetFinal()
	assert.True(t, cleared.Empty())
	cleared.Close()
}

func TestNewOriginalSupersedesFinal(t *testing.T) {
	img := NewImageData()
	defer img.Close()

	orig := sample(t)
	defer orig.Close()
	require.NoError(t, img.SetOriginal(orig, "a.png"))
	require.NoError(t, img.SetFinal(orig))

	next := sample(t)
	defer next.Close()
	require.NoError(t, img.SetOriginal(next, "b.png"))

	assert.False(t, img.HasFinal(), "loading a new original must drop the stale final image")
	assert.Equal(t, "b.png", img.GetFilepath())
}

func TestGetOriginalReturnsIndependentCopy(t *testing.T) {
	img := NewImageData()
	defer img.Close()

	orig := sample(t)
	defer orig.Close()
	require.NoError(t, img.SetOriginal(orig, "a.png"))

	copy1 := img.GetOriginal()
	copy1.SetUCharAt3(0, 0, 0, 99)
	copy1.Close()

	copy2 := img.GetOriginal()
	defer copy2.Close()
	assert.Equal(t, uint8(10), copy2.GetUCharAt3(0, 0, 0))
}

func TestValidateLimits(t *testing.T) {
	ok := sample(t)
	defer ok.Close()
	assert.NoError(t, Validate(ok))

	empty := gocv.NewMat()
	defer empty.Close()
	assert.Error(t, Validate(empty))
}
