package healthcheck

import (
	"github.com/x-xyz/storefront/base/ctx"
)

// Dependency is a backend the service needs to be healthy
type Dependency string

const (
	DepMongo Dependency = "mongo"
	DepRedis Dependency = "redis"
	DepChain Dependency = "chain"
)

type Usecase interface {
	// Check returns the failing dependencies, empty when healthy
	Check(ctx ctx.Ctx) map[Dependency]error
}

type Repo interface {
	PingMongo(ctx ctx.Ctx) error
	PingRedis(ctx ctx.Ctx) error
	PingChain(ctx ctx.Ctx) error
}
