// Image decode/encode and export naming
package io

import (
	"fmt"
	"log/slog"
	"strings"

	"gocv.io/x/gocv"
)

// ExportBaseName is the fixed basename used for exported results.
const ExportBaseName = "processed_image"

// ImageLoader handles image file operations.
type ImageLoader struct {
	logger *slog.Logger
}

func NewImageLoader(logger *slog.Logger) *ImageLoader {
	return &ImageLoader{logger: logger}
}

// LoadImage decodes the file at filepath into a caller-owned Mat. A
// malformed or unsupported file is reported before any processing step
// can run.
func (il *ImageLoader) LoadImage(filepath string) (gocv.Mat, error) {
	il.logger.Debug("loading image", "filepath", filepath)

	if !il.isSupportedImageFormat(filepath) {
		return gocv.Mat{}, fmt.Errorf("unsupported image format: %s", filepath)
	}

	mat := gocv.IMRead(filepath, gocv.IMReadColor)
	if mat.Empty() {
		mat.Close()
		return gocv.Mat{}, fmt.Errorf("failed to decode image: %s", filepath)
	}

	il.logger.Info("image loaded",
		"filepath", filepath,
		"width", mat.Cols(),
		"height", mat.Rows(),
		"channels", mat.Channels())
	return mat, nil
}

// SaveImage encodes mat to filepath; the format follows the extension.
func (il *ImageLoader) SaveImage(mat gocv.Mat, filepath string) error {
	if mat.Empty() {
		return fmt.Errorf("cannot save empty image")
	}
	if !il.isSupportedImageFormat(filepath) {
		return fmt.Errorf("unsupported image format: %s", filepath)
	}
	if !gocv.IMWrite(filepath, mat) {
		return fmt.Errorf("failed to save image: %s", filepath)
	}

	il.logger.Info("image saved",
		"filepath", filepath,
		"width", mat.Cols(),
		"height", mat.Rows())
	return nil
}

// ExportName builds the fixed-convention download name for a result
// derived from sourcePath, e.g. "processed_image.png".
func (il *ImageLoader) ExportName(sourcePath string) string {
	ext := strings.ToLower(fileExtension(sourcePath))
	if ext == "" || !il.isSupportedImageFormat(sourcePath) {
		ext = ".png"
	}
	return ExportBaseName + ext
}

func (il *ImageLoader) isSupportedImageFormat(filepath string) bool {
	ext := strings.ToLower(fileExtension(filepath))
	for _, format := range []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"} {
		if ext == format {
			return true
		}
	}
	return false
}

// SupportedExtensions returns the allow-list for file dialogs.
func (il *ImageLoader) SupportedExtensions() []string {
	return []string{".jpg", ".jpeg", ".png", ".tiff", ".tif", ".bmp"}
}

func fileExtension(filepath string) string {
	for i := len(filepath) - 1; i >= 0; i-- {
		if filepath[i] == '.' {
			return filepath[i:]
		}
		if filepath[i] == '/' || filepath[i] == '\\' {
			break
		}
	}
	return ""
}
