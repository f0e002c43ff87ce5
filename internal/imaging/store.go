// Thread-safe container for the original image and the derived final image
package imaging

import (
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// ImageData holds the immutable original of the current editing session
// and the latest fully recomputed final image. The final image has no
// identity of its own: it is superseded wholesale by every completed
// replay and never patched in place.
type ImageData struct {
	mu       sync.RWMutex
	original gocv.Mat
	final    gocv.Mat
	hasImage bool
	hasFinal bool
	filepath string
	metadata Metadata
}

// Metadata describes the loaded original.
type Metadata struct {
	Width    int
	Height   int
	Channels int
	Type     gocv.MatType
	Format   string
}

func NewImageData() *ImageData {
	return &ImageData{
		original: gocv.NewMat(),
		final:    gocv.NewMat(),
	}
}

// SetOriginal installs a new session original, replacing both buffers and
// clearing any previous final image.
func (img *ImageData) SetOriginal(mat gocv.Mat, filepath string) error {
	img.mu.Lock()
	defer img.mu.Unlock()

	if err := Validate(mat); err != nil {
		return err
	}

	if !img.original.Empty() {
		img.original.Close()
	}
	if !img.final.Empty() {
		img.final.Close()
	}

	img.original = mat.Clone()
	img.final = gocv.NewMat()
	img.hasImage = true
	img.hasFinal = false
	img.filepath = filepath
	img.metadata = Metadata{
		Width:    mat.Cols(),
		Height:   mat.Rows(),
		Channels: mat.Channels(),
		Type:     mat.Type(),
		Format:   formatFromPath(filepath),
	}
	return nil
}

// SetFinal replaces the final image with a clone of mat.
func (img *ImageData) SetFinal(mat gocv.Mat) error {
	img.mu.Lock()
	defer img.mu.Unlock()

	if !img.hasImage {
		return fmt.Errorf("no original image loaded")
	}
	if mat.Empty() {
		return fmt.Errorf("cannot set empty final image")
	}

	if !img.final.Empty() {
		img.final.Close()
	}
	img.final = mat.Clone()
	img.hasFinal = true
	return nil
}

// ClearFinal drops the final image, e.g. when the chain becomes empty.
func (img *ImageData) ClearFinal() {
	img.mu.Lock()
	defer img.mu.Unlock()

	if !img.final.Empty() {
		img.final.Close()
	}
	img.final = gocv.NewMat()
	img.hasFinal = false
}

// GetOriginal returns a caller-owned copy of the original.
func (img *ImageData) GetOriginal() gocv.Mat {
	img.mu.RLock()
	defer img.mu.RUnlock()

	if !img.hasImage || img.original.Empty() {
		return gocv.NewMat()
	}
	return img.original.Clone()
}

// GetFinal returns a caller-owned copy of the final image.
func (img *ImageData) GetFinal() gocv.Mat {
	img.mu.RLock()
	defer img.mu.RUnlock()

	if !img.hasFinal || img.final.Empty() {
		return gocv.NewMat()
	}
	return img.final.Clone()
}

func (img *ImageData) HasImage() bool {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.hasImage
}

// HasFinal reports whether a completed replay has produced an exportable
// image since the last original load.
func (img *ImageData) HasFinal() bool {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.hasFinal
}

func (img *ImageData) GetMetadata() Metadata {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.metadata
}

func (img *ImageData) GetFilepath() string {
	img.mu.RLock()
	defer img.mu.RUnlock()
	return img.filepath
}

// Clear releases both buffers and forgets the session.
func (img *ImageData) Clear() {
	img.mu.Lock()
	defer img.mu.Unlock()

	if !img.original.Empty() {
		img.original.Close()
	}
	if !img.final.Empty() {
		img.final.Close()
	}
	img.original = gocv.NewMat()
	img.final = gocv.NewMat()
	img.hasImage = false
	img.hasFinal = false
	img.filepath = ""
	img.metadata = Metadata{}
}

// Close releases all resources.
func (img *ImageData) Close() {
	img.Clear()
}

func formatFromPath(filepath string) string {
	for i := len(filepath) - 1; i >= 0; i-- {
		if filepath[i] == '.' {
			return filepath[i+1:]
		}
		if filepath[i] == '/' || filepath[i] == '\\' {
			break
		}
	}
	return "unknown"
}

// Validate checks a Mat for the basic requirements of a session original.
func Validate(mat gocv.Mat) error {
	if mat.Empty() {
		return fmt.Errorf("image is empty")
	}
	if mat.Cols() <= 0 || mat.Rows() <= 0 {
		return fmt.Errorf("invalid dimensions: %dx%d", mat.Cols(), mat.Rows())
	}
	channels := mat.Channels()
	if channels != 1 && channels != 3 && channels != 4 {
		return fmt.Errorf("unsupported channel count: %d", channels)
	}
	const maxDimension = 16384
	if mat.Cols() > maxDimension || mat.Rows() > maxDimension {
		return fmt.Errorf("image too large: %dx%d (max: %d)", mat.Cols(), mat.Rows(), maxDimension)
	}
	return nil
}
