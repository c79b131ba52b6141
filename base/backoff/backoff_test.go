package backoff

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestExponentialNext(t *testing.T) {
	req := require.New(t)
	b := NewExponential(time.Millisecond, 4*time.Millisecond)

	want := []time.Duration{time.Millisecond, 2 * time.Millisecond, 4 * time.Millisecond, 4 * time.Millisecond}
	for _, w := range want {
		req.Equal(w, b.Next())
		req.NoError(b.Wait(context.Background()))
	}
	req.Equal(4, b.Attempts())

	b.Reset()
	req.Equal(time.Millisecond, b.Next())
}

func TestWaitCancelled(t *testing.T) {
	req := require.New(t)
	b := New(Constant, time.Hour, 0)
	c, cancel := context.WithCancel(context.Background())
	cancel()

	req.ErrorIs(b.Wait(c), context.Canceled)
	req.Equal(0, b.Attempts())
}
