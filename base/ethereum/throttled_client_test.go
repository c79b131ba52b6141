package ethereum

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestThrottledClientTokens(t *testing.T) {
	req := require.New(t)
	c := NewThrottledClient(nil, 1)

	req.NoError(c.acquire(context.Background()))

	timeout, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	req.ErrorIs(c.acquire(timeout), context.DeadlineExceeded)

	c.release()
	req.NoError(c.acquire(context.Background()))
}
