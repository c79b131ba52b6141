package repository

import (
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	hcdomain "github.com/x-xyz/storefront/domain/healthcheck"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/chain"
	"github.com/x-xyz/storefront/service/query"
	"github.com/x-xyz/storefront/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	mongo      query.Mongo
	redisCache redis.Service
	chain      chain.Client
}

// New creates new healthCheckRepo object representation of healthcheck.Repo interface
func New(
	mongo query.Mongo,
	redisCache redis.Service,
	chain chain.Client,
) hcdomain.Repo {
	return &impl{
		mongo:      mongo,
		redisCache: redisCache,
		chain:      chain,
	}
}

func (im *impl) PingMongo(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.mongo.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}
	return nil
}

func (im *impl) PingRedis(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.redisCache.Set(ctx, keys.RedisKey(keys.PfxHealthCheck, "testset"), []byte("1"), 30*time.Second); err != nil {
		context.WithField("err", err).Error("test redis set failed")
		return err
	}
	return nil
}

func (im *impl) PingChain(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if _, err := im.chain.BlockNumber(ctx); err != nil {
		context.WithField("err", err).Error("chain.BlockNumber failed")
		return err
	}
	return nil
}
