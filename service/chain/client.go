package chain

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/ethclient"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	baseeth "github.com/x-xyz/storefront/base/ethereum"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
)

var ErrNoSigner = errors.New("no signer configured")

type ClientCfg struct {
	ChainId domain.ChainId
	RpcUrl  string
	// Throttle caps concurrent rpc calls
	Throttle int
	// PrivateKey is the hex key transactions are signed with, optional
	PrivateKey string
}

// Backend is the subset of an eth client the connector relies on
type Backend interface {
	bind.ContractBackend
	BlockNumber(ctx context.Context) (uint64, error)
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
}

type Client interface {
	ChainId() domain.ChainId
	Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// Transact signs and sends method with value attached. It returns once the node accepted the tx.
	Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, value *big.Int, method string, params ...interface{}) (domain.TxHash, error)
	FilterLogs(ctx bCtx.Ctx, q ethereum.FilterQuery) ([]types.Log, error)
	BlockNumber(ctx bCtx.Ctx) (uint64, error)
	TransactionReceipt(ctx bCtx.Ctx, txHash domain.TxHash) (*types.Receipt, error)
	SignerAddress() (domain.Address, error)
}

type clientImpl struct {
	chainId domain.ChainId
	backend Backend
	key     *ecdsa.PrivateKey
	signer  common.Address
}

func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	rpc, err := ethclient.DialContext(ctx, cfg.RpcUrl)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":     err,
			"chainId": cfg.ChainId,
			"url":     cfg.RpcUrl,
		}).Error("ethclient.DialContext failed")
		return nil, err
	}
	return NewClientWithBackend(cfg, baseeth.NewThrottledClient(rpc, cfg.Throttle))
}

func NewClientWithBackend(cfg *ClientCfg, backend Backend) (Client, error) {
	c := &clientImpl{
		chainId: cfg.ChainId,
		backend: backend,
	}
	if cfg.PrivateKey != "" {
		key, addr, err := baseeth.ParsePrivateKey(cfg.PrivateKey)
		if err != nil {
			return nil, err
		}
		c.key = key
		c.signer = addr
	}
	return c, nil
}

func (c *clientImpl) ChainId() domain.ChainId {
	return c.chainId
}

func (c *clientImpl) Call(ctx bCtx.Ctx, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := c.backend.CallContract(ctx, msg, blk)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
		}).Warn("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithField("err", err).Error("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) Transact(ctx bCtx.Ctx, addr common.Address, _abi abi.ABI, value *big.Int, method string, params ...interface{}) (domain.TxHash, error) {
	if c.key == nil {
		return "", ErrNoSigner
	}
	opts, err := bind.NewKeyedTransactorWithChainID(c.key, big.NewInt(int64(c.chainId)))
	if err != nil {
		ctx.WithField("err", err).Error("bind.NewKeyedTransactorWithChainID failed")
		return "", err
	}
	opts.Context = ctx
	opts.Value = value

	contract := bind.NewBoundContract(addr, _abi, c.backend, c.backend, c.backend)
	tx, err := contract.Transact(opts, method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"err":    err,
			"method": method,
			"to":     addr.Hex(),
		}).Warn("contract.Transact failed")
		return "", err
	}
	return domain.TxHash(tx.Hash().Hex()), nil
}

func (c *clientImpl) FilterLogs(ctx bCtx.Ctx, q ethereum.FilterQuery) ([]types.Log, error) {
	return c.backend.FilterLogs(ctx, q)
}

func (c *clientImpl) BlockNumber(ctx bCtx.Ctx) (uint64, error) {
	return c.backend.BlockNumber(ctx)
}

func (c *clientImpl) TransactionReceipt(ctx bCtx.Ctx, txHash domain.TxHash) (*types.Receipt, error) {
	return c.backend.TransactionReceipt(ctx, common.HexToHash(string(txHash)))
}

func (c *clientImpl) SignerAddress() (domain.Address, error) {
	if c.key == nil {
		return "", ErrNoSigner
	}
	return domain.ToAddress(c.signer), nil
}
