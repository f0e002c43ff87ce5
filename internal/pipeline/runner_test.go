package pipeline

import (
	"image"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sequential-image-editor/internal/history"
	"sequential-image-editor/internal/imaging"
	"sequential-image-editor/internal/ops"
	"sequential-image-editor/internal/transform"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func readyRunner(t *testing.T) (*Runner, *imaging.ImageData) {
	t.Helper()

	logger := discardLogger()
	capability := transform.New(logger)
	capability.Load()

	images := imaging.NewImageData()
	t.Cleanup(images.Close)

	original := testImage(t)
	defer original.Close()
	require.NoError(t, images.SetOriginal(original, "test.png"))

	return NewRunner(capability, images, logger, time.Millisecond), images
}

func TestRunnerDeliversResult(t *testing.T) {
	runner, images := readyRunner(t)

	results := make(chan image.Image, 1)
	runner.SetCallbacks(
		func(final image.Image, _ map[string]float64) { results <- final },
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)

	runner.Trigger(steps(ops.ColorInversion))

	select {
	case final := <-results:
		require.NotNil(t, final)
		assert.Equal(t, 8, final.Bounds().Dx())
		assert.True(t, images.HasFinal())
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for replay result")
	}
}

func TestRunnerReportsStepFailure(t *testing.T) {
	runner, images := readyRunner(t)

	errs := make(chan error, 1)
	runner.SetCallbacks(
		func(image.Image, map[string]float64) { t.Error("unexpected result for failing chain") },
		func(err error) { errs <- err },
	)

	runner.Trigger([]history.Step{{Op: ops.OpID(42)}})

	select {
	case err := <-errs:
		assert.ErrorIs(t, err, ops.ErrUnsupportedOperation)
		assert.False(t, images.HasFinal(), "a failed run must not install a final image")
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for replay error")
	}
}

func TestRunnerReportsMissingImage(t *testing.T) {
	logger := discardLogger()
	capability := transform.New(logger)
	capability.Load()

	images := imaging.NewImageData()
	defer images.Close()

	runner := NewRunner(capability, images, logger, time.Millisecond)

	errs := make(chan error, 1)
	runner.SetCallbacks(nil, func(err error) { errs <- err })

	runner.Trigger(steps(ops.ColorInversion))

	select {
	case err := <-errs:
		require.Error(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for error")
	}
}

func TestRunnerLatestTriggerWins(t *testing.T) {
	runner, _ := readyRunner(t)

	results := make(chan image.Image, 4)
	runner.SetCallbacks(
		func(final image.Image, _ map[string]float64) { results <- final },
		func(err error) { t.Errorf("unexpected error: %v", err) },
	)

	// rapid re-triggers within the debounce window collapse into the
	// last chain only
	runner.Trigger(steps(ops.ColorInversion))
	runner.Trigger(steps(ops.ColorInversion, ops.Thresholding))
	runner.Trigger(nil)

	select {
	case final := <-results:
		require.NotNil(t, final)
	case <-time.After(10 * time.Second):
		t.Fatal("timed out waiting for replay result")
	}

	select {
	case <-results:
		t.Fatal("superseded runs must not surface results")
	case <-time.After(200 * time.Millisecond):
	}
}

func TestRunnerStopSuppressesPendingRun(t *testing.T) {
	runner, _ := readyRunner(t)

	fired := make(chan struct{}, 1)
	runner.SetCallbacks(
		func(image.Image, map[string]float64) { fired <- struct{}{} },
		func(error) { fired <- struct{}{} },
	)

	runner.Trigger(steps(ops.ColorInversion))
	runner.Stop()

	select {
	case <-fired:
		t.Fatal("stopped runner must not deliver callbacks")
	case <-time.After(300 * time.Millisecond):
	}
}
