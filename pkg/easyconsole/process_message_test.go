package easyconsole

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProcessMessage(t *testing.T) {
	c, out := newTestConsole("")

	n, err := ProcessMessage(context.Background(), c, "Counting...", ProcessMessageOptions{}, func(ctx context.Context) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, n)
	assert.Equal(t, "Counting... done\n", out.String())
}

func TestProcessMessageFailure(t *testing.T) {
	c, out := newTestConsole("")
	boom := errors.New("boom")

	_, err := ProcessMessage(context.Background(), c, "Working", ProcessMessageOptions{}, func(ctx context.Context) (string, error) {
		return "", boom
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, "Working failed\n", out.String())
}

func TestProcessMessageCancelled(t *testing.T) {
	c, out := newTestConsole("")
	ctx, cancel := context.WithCancel(context.Background())
	release := make(chan struct{})
	defer close(release)

	started := make(chan struct{})
	go func() {
		<-started
		cancel()
	}()

	_, err := ProcessMessage(ctx, c, "Waiting", ProcessMessageOptions{ShowElapsed: true}, func(ctx context.Context) (bool, error) {
		close(started)
		<-release
		return true, nil
	})
	require.ErrorIs(t, err, context.Canceled)
	assert.Contains(t, out.String(), "Waiting failed (")
}
