package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/chain"
)

type Erc20Contract interface {
	Symbol(ctx bCtx.Ctx, addr domain.Address) (string, error)
	Decimals(ctx bCtx.Ctx, addr domain.Address) (int32, error)
	Allowance(ctx bCtx.Ctx, addr, owner, spender domain.Address) (*big.Int, error)
	Approve(ctx bCtx.Ctx, addr, spender domain.Address, amount *big.Int) (domain.TxHash, error)
}

type Erc20 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc20(chainService chain.Client) *Erc20 {
	return &Erc20{
		abi:          baseabi.ERC20ABI,
		chainService: chainService,
	}
}

func (e *Erc20) Symbol(ctx bCtx.Ctx, addr domain.Address) (string, error) {
	unpacked, err := e.chainService.Call(ctx, addr.Common(), nil, e.abi, "symbol")
	if err != nil {
		return "", err
	}
	return unpacked[0].(string), nil
}

func (e *Erc20) Decimals(ctx bCtx.Ctx, addr domain.Address) (int32, error) {
	unpacked, err := e.chainService.Call(ctx, addr.Common(), nil, e.abi, "decimals")
	if err != nil {
		return 0, err
	}
	return int32(unpacked[0].(uint8)), nil
}

func (e *Erc20) Allowance(ctx bCtx.Ctx, addr, owner, spender domain.Address) (*big.Int, error) {
	unpacked, err := e.chainService.Call(ctx, addr.Common(), nil, e.abi, "allowance", owner.Common(), spender.Common())
	if err != nil {
		return nil, err
	}
	return unpacked[0].(*big.Int), nil
}

func (e *Erc20) Approve(ctx bCtx.Ctx, addr, spender domain.Address, amount *big.Int) (domain.TxHash, error) {
	return e.chainService.Transact(ctx, addr.Common(), e.abi, nil, "approve", spender.Common(), amount)
}
