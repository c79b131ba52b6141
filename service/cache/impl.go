package cache

import (
	"encoding/json"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/cache/provider"
)

var met = metrics.New("cache")

type impl struct {
	cfg ServiceConfig
}

func New(config ServiceConfig) Service {
	if config.Serialize == nil {
		config.Serialize = json.Marshal
	}
	if config.Deserialize == nil {
		config.Deserialize = json.Unmarshal
	}
	return &impl{cfg: config}
}

func (im *impl) GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error {
	err := im.Get(c, key, container)
	if err == nil {
		met.BumpSum("hit", 1, "prefix", im.cfg.Pfx)
		return nil
	} else if err != ErrNotFound {
		c.WithField("err", err).WithField("key", key).Error("Get failed")
		return err
	}
	met.BumpSum("miss", 1, "prefix", im.cfg.Pfx)

	val, err := getter()
	if err != nil {
		return err
	}

	raw, err := im.cfg.Serialize(val)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}
	if err := im.cfg.Cache.Set(c, im.key(key), raw, im.cfg.Ttl); err != nil {
		// a failed fill still serves the fetched value
		c.WithField("err", err).WithField("key", key).Warn("cache.Set failed")
	}
	return im.cfg.Deserialize(raw, container)
}

func (im *impl) Get(c ctx.Ctx, key string, container interface{}) error {
	key = im.key(key)

	val, _, err := im.cfg.Cache.Get(c, key)
	if err == provider.ErrNotFound {
		return ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Get failed")
		return err
	}
	if err := im.cfg.Deserialize(val, container); err != nil {
		c.WithField("err", err).WithField("key", key).Error("deserialize failed")
		return err
	}
	return nil
}

func (im *impl) Set(c ctx.Ctx, key string, value interface{}) error {
	key = im.key(key)

	val, err := im.cfg.Serialize(value)
	if err != nil {
		c.WithField("err", err).WithField("key", key).Error("serialize failed")
		return err
	}
	if err := im.cfg.Cache.Set(c, key, val, im.cfg.Ttl); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	key = im.key(key)
	if err := im.cfg.Cache.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("cache.Del failed")
		return err
	}
	return nil
}

func (im *impl) key(key string) string {
	return keys.RedisKey(im.cfg.Pfx, key)
}
