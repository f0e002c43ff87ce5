// Full-chain replay of the step history over the original image
package pipeline

import (
	"context"
	"fmt"

	"gocv.io/x/gocv"

	"sequential-image-editor/internal/history"
	"sequential-image-editor/internal/ops"
)

// Replay recomputes the final image from scratch: it clones original,
// applies every step in order, and releases each working buffer as soon
// as the next step's output replaces it. There is no incremental reuse
// between runs - every invocation is a cold replay, which keeps the
// output a pure function of (original, steps).
//
// The first failing step aborts the whole replay; no partial result is
// ever returned. On error the returned Mat is a closed zero value
// holding no resources. With zero steps the result is a plain copy of
// the original.
func Replay(ctx context.Context, original gocv.Mat, steps []history.Step) (gocv.Mat, error) {
	if original.Empty() {
		return gocv.Mat{}, fmt.Errorf("no original image")
	}

	working := original.Clone()
	for i, step := range steps {
		select {
		case <-ctx.Done():
			working.Close()
			return gocv.Mat{}, ctx.Err()
		default:
		}

		next, err := ops.Apply(step.Op, working, step.Params)
		if err != nil {
			working.Close()
			return gocv.Mat{}, fmt.Errorf("step %d (%s): %w", i+1, step.Op, err)
		}
		working.Close()
		working = next
	}
	return working, nil
}
