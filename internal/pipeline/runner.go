// Asynchronous replay scheduling with debounce and stale-run supersession
package pipeline

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"sequential-image-editor/internal/history"
	"sequential-image-editor/internal/imaging"
	"sequential-image-editor/internal/metrics"
	"sequential-image-editor/internal/transform"
)

// Runner owns the asynchronous side of the executor. Every trigger takes
// a snapshot of the step list, waits out a debounce delay, gates on the
// transform capability and then replays the full chain. Runs are tagged
// with a monotonically increasing generation; a run whose generation is
// no longer the latest when it finishes discards its result, so a fast
// double-edit can never let a stale result overwrite a newer one.
type Runner struct {
	capability *transform.Capability
	images     *imaging.ImageData
	evaluator  *metrics.Evaluator
	logger     *slog.Logger

	mu     sync.Mutex
	delay  time.Duration
	timer  *time.Timer
	gen    uint64
	cancel context.CancelFunc

	// Callbacks receive plain Go images and run on the runner goroutine;
	// the GUI layer is responsible for hopping to its own thread.
	onResult func(final image.Image, quality map[string]float64)
	onError  func(error)
}

func NewRunner(capability *transform.Capability, images *imaging.ImageData, logger *slog.Logger, delay time.Duration) *Runner {
	return &Runner{
		capability: capability,
		images:     images,
		evaluator:  metrics.NewEvaluator(),
		logger:     logger,
		delay:      delay,
	}
}

// SetCallbacks installs the result and error sinks.
func (r *Runner) SetCallbacks(onResult func(image.Image, map[string]float64), onError func(error)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.onResult = onResult
	r.onError = onError
}

// SetDelay adjusts the debounce delay for subsequent triggers.
func (r *Runner) SetDelay(d time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.delay = d
}

// Trigger schedules a replay of steps. Any pending or in-flight run is
// superseded: the pending timer is stopped, the in-flight context is
// cancelled (observed between steps), and the generation moves on so a
// run that still completes cannot land its result.
func (r *Runner) Trigger(steps []history.Step) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.timer != nil {
		r.timer.Stop()
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
	r.gen++
	gen := r.gen
	snapshot := append([]history.Step(nil), steps...)

	r.logger.Debug("replay scheduled", "generation", gen, "steps", len(snapshot), "delay", r.delay)
	r.timer = time.AfterFunc(r.delay, func() {
		r.run(gen, snapshot)
	})
}

// Stop invalidates every pending and in-flight run.
func (r *Runner) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.gen++
	if r.timer != nil {
		r.timer.Stop()
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}

func (r *Runner) run(gen uint64, steps []history.Step) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		return
	}
	r.cancel = cancel
	r.mu.Unlock()

	if err := r.capability.WaitReady(ctx); err != nil {
		r.report(gen, err)
		return
	}

	if !r.images.HasImage() {
		r.report(gen, fmt.Errorf("no image loaded"))
		return
	}
	original := r.images.GetOriginal()
	defer original.Close()

	start := time.Now()
	final, err := Replay(ctx, original, steps)
	if err != nil {
		r.report(gen, err)
		return
	}

	if r.stale(gen) {
		final.Close()
		r.logger.Debug("discarding stale replay result", "generation", gen)
		return
	}

	quality := r.evaluator.Evaluate(original, final)

	img, convErr := final.ToImage()
	if setErr := r.images.SetFinal(final); setErr != nil {
		r.logger.Warn("failed to store final image", "error", setErr)
	}
	final.Close()
	if convErr != nil {
		r.report(gen, fmt.Errorf("failed to convert final image: %w", convErr))
		return
	}

	r.logger.Info("replay completed",
		"generation", gen,
		"steps", len(steps),
		"duration", time.Since(start))

	r.mu.Lock()
	callback := r.onResult
	stale := gen != r.gen
	r.mu.Unlock()
	if !stale && callback != nil {
		callback(img, quality)
	}
}

func (r *Runner) stale(gen uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return gen != r.gen
}

// report surfaces err unless the run has already been superseded; errors
// from stale generations are logged and dropped.
func (r *Runner) report(gen uint64, err error) {
	r.mu.Lock()
	callback := r.onError
	stale := gen != r.gen
	r.mu.Unlock()

	if stale {
		r.logger.Debug("suppressing error from stale run", "generation", gen, "error", err)
		return
	}
	r.logger.Error("replay failed", "generation", gen, "error", err)
	if callback != nil {
		callback(err)
	}
}
