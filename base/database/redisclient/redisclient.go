package redisclient

import (
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/x-xyz/storefront/base/log"
)

const (
	dialTimeout  = 2 * time.Second
	readTimeout  = 1500 * time.Millisecond
	writeTimeout = 1500 * time.Millisecond
	idleTimeout  = 240 * time.Second
	dialRetries  = 3
)

type Config struct {
	Uri       string
	Password  string
	MaxIdle   int
	MaxActive int
}

// MustConnect panics if redis can't be reached after retrying
func MustConnect(cfg Config) *redis.Pool {
	p, err := Connect(cfg)
	if err != nil {
		log.Log().WithFields(log.Fields{"redisURI": cfg.Uri, "err": err}).Panic("fail to dial redis")
	}
	return p
}

func Connect(cfg Config) (*redis.Pool, error) {
	opts := []redis.DialOption{
		redis.DialConnectTimeout(dialTimeout),
		redis.DialReadTimeout(readTimeout),
		redis.DialWriteTimeout(writeTimeout),
	}
	if cfg.Password != "" {
		opts = append(opts, redis.DialPassword(cfg.Password))
	}
	if cfg.MaxIdle == 0 {
		cfg.MaxIdle = 16
	}
	if cfg.MaxActive == 0 {
		cfg.MaxActive = 128
	}

	p := &redis.Pool{
		MaxIdle:     cfg.MaxIdle,
		MaxActive:   cfg.MaxActive,
		Wait:        true,
		IdleTimeout: idleTimeout,
		Dial: func() (redis.Conn, error) {
			return redis.Dial("tcp", cfg.Uri, opts...)
		},
		TestOnBorrow: func(c redis.Conn, t time.Time) error {
			if time.Since(t) < time.Second {
				return nil
			}
			_, err := c.Do("PING")
			return err
		},
	}

	var err error
	for i := 0; i < dialRetries; i++ {
		if i > 0 {
			time.Sleep(time.Duration(i) * time.Second)
		}
		if err = ping(p); err == nil {
			log.Log().WithField("redisURI", cfg.Uri).Info("redis connected")
			return p, nil
		}
		log.Log().WithFields(log.Fields{"redisURI": cfg.Uri, "err": err, "retry": i}).Warn("redis ping failed")
	}
	return nil, err
}

func ping(p *redis.Pool) error {
	c := p.Get()
	defer c.Close()
	_, err := c.Do("PING")
	return err
}
