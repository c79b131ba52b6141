package chain

import (
	"context"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/stretchr/testify/require"

	"github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type stubBackend struct {
	Backend
	out []byte
	err error
}

func (b *stubBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	return b.out, b.err
}

func TestClientCall(t *testing.T) {
	req := require.New(t)
	out, err := abi.MarketplaceV3ABI.Methods["totalListings"].Outputs.Pack(big.NewInt(7))
	req.NoError(err)

	c, err := NewClientWithBackend(&ClientCfg{ChainId: 5}, &stubBackend{out: out})
	req.NoError(err)
	req.Equal(domain.ChainId(5), c.ChainId())

	res, err := c.Call(bCtx.Background(), domain.EmptyAddress.Common(), nil, abi.MarketplaceV3ABI, "totalListings")
	req.NoError(err)
	req.Equal(0, big.NewInt(7).Cmp(res[0].(*big.Int)))

	_, err = c.Call(bCtx.Background(), domain.EmptyAddress.Common(), nil, abi.MarketplaceV3ABI, "unknownMethod")
	req.Error(err)
}

func TestClientSigner(t *testing.T) {
	req := require.New(t)

	c, err := NewClientWithBackend(&ClientCfg{ChainId: 5}, &stubBackend{})
	req.NoError(err)
	_, err = c.SignerAddress()
	req.ErrorIs(err, ErrNoSigner)
	_, err = c.Transact(bCtx.Background(), domain.EmptyAddress.Common(), abi.MarketplaceV3ABI, nil, "totalListings")
	req.ErrorIs(err, ErrNoSigner)

	c, err = NewClientWithBackend(&ClientCfg{
		ChainId:    5,
		PrivateKey: "0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80",
	}, &stubBackend{})
	req.NoError(err)
	addr, err := c.SignerAddress()
	req.NoError(err)
	req.Equal(domain.Address("0xf39fd6e51aad88f6f4ce6ab8827279cfffb92266"), addr)

	_, err = NewClientWithBackend(&ClientCfg{PrivateKey: "nothex"}, &stubBackend{})
	req.Error(err)
}
