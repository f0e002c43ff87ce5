package io

import (
	"io"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func testLoader() *ImageLoader {
	return NewImageLoader(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestExportNameFollowsSourceExtension(t *testing.T) {
	il := testLoader()

	assert.Equal(t, "processed_image.jpg", il.ExportName("/photos/cat.jpg"))
	assert.Equal(t, "processed_image.png", il.ExportName("scan.png"))
	assert.Equal(t, "processed_image.tiff", il.ExportName("doc.tiff"))
}

func TestExportNameDefaultsToPNG(t *testing.T) {
	il := testLoader()

	assert.Equal(t, "processed_image.png", il.ExportName(""))
	assert.Equal(t, "processed_image.png", il.ExportName("noextension"))
	assert.Equal(t, "processed_image.png", il.ExportName("animation.gif"))
}

func TestLoadRejectsUnsupportedFormat(t *testing.T) {
	il := testLoader()

	_, err := il.LoadImage("/tmp/file.gif")
	assert.Error(t, err)
}

func TestLoadRejectsMissingFile(t *testing.T) {
	il := testLoader()

	_, err := il.LoadImage(filepath.Join(t.TempDir(), "missing.png"))
	assert.Error(t, err)
}

func TestSaveRejectsEmptyImage(t *testing.T) {
	il := testLoader()

	empty := gocv.NewMat()
	defer empty.Close()
	assert.Error(t, il.SaveImage(empty, filepath.Join(t.TempDir(), "out.png")))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	il := testLoader()

	mat := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(10, 20, 30, 0), 8, 8, gocv.MatTypeCV8UC3)
	defer mat.Close()

	path := filepath.Join(t.TempDir(), "out.png")
	require.NoError(t, il.SaveImage(mat, path))

	loaded, err := il.LoadImage(path)
	require.NoError(t, err)
	defer loaded.Close()

	assert.Equal(t, 8, loaded.Rows())
	assert.Equal(t, 8, loaded.Cols())
	assert.Equal(t, mat.ToBytes(), loaded.ToBytes())
}
