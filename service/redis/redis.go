package redis

import (
	"errors"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
)

var (
	ErrNotFound = errors.New("redis key not found")
)

// Forever keeps a key without expiry
const Forever = time.Duration(0)

type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	// Set stores val, expire == Forever keeps the key without ttl
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	// SetNX is Set only when the key does not exist, it reports whether it stored val
	SetNX(context ctx.Ctx, key string, val []byte, expire time.Duration) (bool, error)
	Del(context ctx.Ctx, ks ...string) (int, error)
	Exists(context ctx.Ctx, key string) (bool, error)
	// TTL returns the remaining ttl in seconds, -1 when the key has no expiry
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
}
