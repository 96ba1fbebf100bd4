package llm

import "context"

// AttemptFunc performs one completion against a single model.
type AttemptFunc func(ctx context.Context, model string) (*Completion, error)

// CompleteWithFallback runs attempt for each distinct non-empty model in order.
// It moves on only when a model is reported unavailable; any other error is
// returned immediately. When every candidate is unavailable the last error is
// returned, or ErrNoModelSucceeded if there were no candidates.
func CompleteWithFallback(ctx context.Context, models []string, attempt AttemptFunc) (*Completion, error) {
	var lastErr error
	for _, model := range uniqueModels(models) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		completion, err := attempt(ctx, model)
		if err == nil {
			return completion, nil
		}
		lastErr = err
		if !IsModelUnavailable(err) {
			return nil, err
		}
	}

	if lastErr == nil {
		lastErr = ErrNoModelSucceeded
	}
	return nil, lastErr
}
