package ctx

import (
	"context"
	"time"

	"github.com/x-xyz/storefront/base/log"
)

// Ctx is passed as the first argument of every usecase and repository call.
// It carries the request scoped logger alongside the standard context.
type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent.Context, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	c, cancel := context.WithCancel(parent.Context)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	c, cancel := context.WithTimeout(parent.Context, timeout)
	return Ctx{Context: c, Logger: parent.Logger}, cancel
}

// Detach keeps the logger but drops the parent's deadline and cancellation.
// Background jobs started from a request use it so they outlive the response.
func Detach(parent Ctx) Ctx {
	return Ctx{Context: context.Background(), Logger: parent.Logger}
}
