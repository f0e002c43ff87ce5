// One-shot readiness gate for the OpenCV-backed transform capability
package transform

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"gocv.io/x/gocv"
)

// ErrUnavailable is reported when a run needs the capability before its
// warm-up has completed, or after the warm-up has failed.
var ErrUnavailable = errors.New("transform capability unavailable")

// Capability signals readiness of the image transform library exactly
// once. Load starts a background warm-up that exercises a tiny conversion
// roundtrip; the Ready channel is closed when it succeeds. The executor's
// startup gate consumes this signal instead of polling ambient state.
type Capability struct {
	logger *slog.Logger

	loadOnce sync.Once
	ready    chan struct{}
	failed   chan struct{}

	mu  sync.RWMutex
	err error
}

func New(logger *slog.Logger) *Capability {
	return &Capability{
		logger: logger,
		ready:  make(chan struct{}),
		failed: make(chan struct{}),
	}
}

// Load starts the warm-up. Subsequent calls are no-ops.
func (c *Capability) Load() {
	c.loadOnce.Do(func() {
		go func() {
			if err := selfCheck(); err != nil {
				c.mu.Lock()
				c.err = fmt.Errorf("%w: %v", ErrUnavailable, err)
				c.mu.Unlock()
				close(c.failed)
				c.logger.Error("transform capability warm-up failed", "error", err)
				return
			}
			c.logger.Info("transform capability ready", "opencv_version", gocv.OpenCVVersion())
			close(c.ready)
		}()
	})
}

// selfCheck runs a minimal conversion roundtrip through the library.
func selfCheck() error {
	probe := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC3)
	defer probe.Close()

	gray := gocv.NewMat()
	defer gray.Close()
	gocv.CvtColor(probe, &gray, gocv.ColorBGRToGray)

	if gray.Empty() || gray.Channels() != 1 {
		return errors.New("conversion probe produced unexpected output")
	}
	return nil
}

// Ready is closed once the capability can be used.
func (c *Capability) Ready() <-chan struct{} {
	return c.ready
}

// IsReady reports readiness without blocking.
func (c *Capability) IsReady() bool {
	select {
	case <-c.ready:
		return true
	default:
		return false
	}
}

// WaitReady blocks until the capability is usable, the warm-up fails, or
// ctx is cancelled.
func (c *Capability) WaitReady(ctx context.Context) error {
	select {
	case <-c.ready:
		return nil
	case <-c.failed:
		c.mu.RLock()
		defer c.mu.RUnlock()
		return c.err
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", ErrUnavailable, ctx.Err())
	}
}
