package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/service/chain"
)

type Erc721Contract interface {
	OwnerOf(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (domain.Address, error)
	TokenURI(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (string, error)
}

type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:          baseabi.ERC721ABI,
		chainService: chainService,
	}
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (domain.Address, error) {
	unpacked, err := e.chainService.Call(ctx, addr.Common(), nil, e.abi, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	owner, ok := unpacked[0].(common.Address)
	if !ok || owner == (common.Address{}) {
		return "", domain.ErrNotFound
	}
	return domain.ToAddress(owner), nil
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, addr domain.Address, tokenId *big.Int) (string, error) {
	unpacked, err := e.chainService.Call(ctx, addr.Common(), nil, e.abi, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	uri, ok := unpacked[0].(string)
	if !ok || uri == "" {
		return "", domain.ErrNotFound
	}
	return uri, nil
}
