package usecase

import (
	"sync"

	"github.com/x-xyz/storefront/base/ctx"
	hcdomain "github.com/x-xyz/storefront/domain/healthcheck"
)

type impl struct {
	deps map[hcdomain.Dependency]func(ctx.Ctx) error
}

// New creates new healthCheckUsecase object representation of healthcheck.Usecase interface
func New(repo hcdomain.Repo) hcdomain.Usecase {
	return &impl{
		deps: map[hcdomain.Dependency]func(ctx.Ctx) error{
			hcdomain.DepMongo: repo.PingMongo,
			hcdomain.DepRedis: repo.PingRedis,
			hcdomain.DepChain: repo.PingChain,
		},
	}
}

func (im *impl) Check(context ctx.Ctx) map[hcdomain.Dependency]error {
	mu := sync.Mutex{}
	wg := sync.WaitGroup{}
	failed := map[hcdomain.Dependency]error{}
	for dep, ping := range im.deps {
		dep, ping := dep, ping
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := ping(context); err != nil {
				mu.Lock()
				failed[dep] = err
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	return failed
}
