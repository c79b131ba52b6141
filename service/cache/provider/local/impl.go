package local

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewLocal creates an in-process cache of sizeMB megabytes
func NewLocal(name string, sizeMB int) provider.Provider {
	return &impl{name, freecache.NewCache(sizeMB * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, ttl, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Get failed")
		return nil, 0, err
	}
	return val, remaining(ttl), nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	if err := im.cache.Set([]byte(key), value, int(ttl.Seconds())); err != nil {
		c.WithField("err", err).WithField("key", key).Error("freecache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}

// remaining converts freecache's absolute expiry to a ttl
func remaining(expireAt uint32) time.Duration {
	if expireAt == 0 {
		return 0
	}
	d := time.Until(time.Unix(int64(expireAt), 0))
	if d < 0 {
		return 0
	}
	return d.Truncate(time.Second)
}
