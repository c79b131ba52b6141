package ptr

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPtr(t *testing.T) {
	assert.Equal(t, "pending", *String("pending"))
	assert.Equal(t, 3, *Int(3))
	now := time.Now()
	assert.True(t, now.Equal(*Time(now)))
}
