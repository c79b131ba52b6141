package ens

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	goens "github.com/wealdtech/go-ens/v3"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/ptr"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/cache"
)

type resolveFunc func(bind.ContractBackend, string) (common.Address, error)

type reverseResolveFunc func(bind.ContractBackend, common.Address) (string, error)

type impl struct {
	backend bind.ContractBackend
	cache   cache.Service

	resolve        resolveFunc
	reverseResolve reverseResolveFunc
}

// New resolves names against the ENS registry reachable through backend.
// Results, including misses, are kept in cache.
func New(backend bind.ContractBackend, cache cache.Service) ENS {
	return &impl{
		backend:        backend,
		cache:          cache,
		resolve:        goens.Resolve,
		reverseResolve: goens.ReverseResolve,
	}
}

func (im *impl) Resolve(ctx ctx.Ctx, name string) (domain.Address, error) {
	res := domain.Address("")
	key := keys.RedisKey("resolve", name)
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		addr, err := im.resolve(im.backend, name)
		if fmt.Sprint(err) == "unregistered name" {
			return domain.Address(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":  err,
				"name": name,
			}).Error("goens.Resolve failed")
			return nil, err
		}
		return domain.ToAddress(addr), nil
	})
	if err != nil {
		return "", err
	}
	return res, nil
}

func (im *impl) ReverseResolve(ctx ctx.Ctx, address domain.Address) (string, error) {
	res := ""
	key := keys.RedisKey("reverse-resolve", address.ToLowerStr())
	err := im.cache.GetByFunc(ctx, key, &res, func() (interface{}, error) {
		name, err := im.reverseResolve(im.backend, address.Common())
		if isNoName(err) {
			return ptr.String(""), nil
		}
		if err != nil {
			ctx.WithFields(log.Fields{
				"err":     err,
				"address": address,
			}).Error("goens.ReverseResolve failed")
			return nil, err
		}
		return &name, nil
	})
	if err != nil {
		return "", err
	}
	return res, nil
}

func isNoName(err error) bool {
	switch fmt.Sprint(err) {
	case "not a resolver", "no resolution":
		return true
	}
	return false
}
