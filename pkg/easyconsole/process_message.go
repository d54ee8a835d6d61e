package easyconsole

import (
	"context"
	"time"

	"github.com/BrandonKowalski/easyconsole/pkg/easyconsole/internal"
)

type ProcessMessageOptions struct {
	ShowElapsed bool // Append the run time to the result word
}

// ProcessMessage writes message, runs fn and finishes the line with "done" or
// "failed". The typed result of fn is returned unchanged.
func ProcessMessage[T any](ctx context.Context, c *Console, message string, options ProcessMessageOptions, fn func(ctx context.Context) (T, error)) (T, error) {
	c.Write(message + " ")
	started := time.Now()

	resultChan := make(chan struct {
		result T
		err    error
	}, 1)

	go func() {
		res, err := fn(ctx)
		resultChan <- struct {
			result T
			err    error
		}{result: res, err: err}
	}()

	var result T
	var fnError error
	select {
	case processResult := <-resultChan:
		result = processResult.result
		fnError = processResult.err
	case <-ctx.Done():
		fnError = ctx.Err()
	}

	theme := internal.GetTheme()
	status := localize(msgDone, nil)
	color := theme.SuccessColor
	if fnError != nil {
		status = localize(msgFailed, nil)
		color = theme.ErrorColor
	}
	if options.ShowElapsed {
		status += " (" + time.Since(started).Round(time.Millisecond).String() + ")"
	}
	c.WriteLineColor(color, status)

	internal.GetInternalLogger().Debug("Process finished", "message", message, "elapsed", time.Since(started), "error", fnError)
	return result, fnError
}
