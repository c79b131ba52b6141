package goroutine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecoverableGo(t *testing.T) {
	res := []string{}

	evt := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("boom")
		},
		WithName("watcher"),
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered", p.(string))
		}),
	)

	assert.Equal(t, []string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"boom",
	}, res)
	assert.Equal(t, "boom", evt.Panic)
	assert.NotEmpty(t, evt.Stack)
}

func TestRecoverableGoCleanExit(t *testing.T) {
	ran := false
	evt, ok := <-RecoverableGo(func() { ran = true })

	assert.True(t, ran)
	assert.False(t, ok)
	assert.Nil(t, evt)
}
