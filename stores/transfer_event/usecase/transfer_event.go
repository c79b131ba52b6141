package usecase

import (
	"math/big"
	"sort"
	"time"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	baseabi "github.com/x-xyz/storefront/base/abi"
	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/history"
	"github.com/x-xyz/storefront/service/chain"
)

const (
	defaultWindowSize    = 5000
	defaultWindowTimeout = 10 * time.Second
)

var (
	met           = metrics.New("transfer_event")
	transferTopic = baseabi.ERC721ABI.Events["Transfer"].ID
)

type Config struct {
	Chain chain.Client
	// FromBlock is the oldest block searched, usually the collection deployment
	FromBlock     uint64
	WindowSize    uint64
	WindowTimeout time.Duration
}

type transferEventUseCase struct {
	chain         chain.Client
	fromBlock     uint64
	windowSize    uint64
	windowTimeout time.Duration
}

func NewTransferEventUseCase(cfg *Config) history.Usecase {
	u := &transferEventUseCase{
		chain:         cfg.Chain,
		fromBlock:     cfg.FromBlock,
		windowSize:    cfg.WindowSize,
		windowTimeout: cfg.WindowTimeout,
	}
	if u.windowSize == 0 {
		u.windowSize = defaultWindowSize
	}
	if u.windowTimeout == 0 {
		u.windowTimeout = defaultWindowTimeout
	}
	return u
}

func (u *transferEventUseCase) Query(c bCtx.Ctx, contract domain.Address, tokenId domain.TokenId) (history.Iterator, error) {
	id, ok := tokenId.BigInt()
	if !ok || contract.IsEmpty() {
		return nil, domain.ErrBadParamInput
	}
	head, err := u.chain.BlockNumber(c)
	if err != nil {
		c.WithField("err", err).Error("chain.BlockNumber failed")
		return nil, err
	}
	it := &iterator{
		u: u,
		filter: ethereum.FilterQuery{
			Addresses: []common.Address{contract.Common()},
			Topics:    [][]common.Hash{{transferTopic}, nil, nil, {common.BigToHash(id)}},
		},
		fromBlock: u.fromBlock,
		cursor:    head,
		done:      head < u.fromBlock,
	}
	return it, nil
}

func (u *transferEventUseCase) List(c bCtx.Ctx, contract domain.Address, tokenId domain.TokenId, limit int) (*history.History, error) {
	defer met.BumpTime("time", "func", "List").End()

	it, err := u.Query(c, contract, tokenId)
	if err != nil {
		return nil, err
	}
	events := []history.TransferEvent{}
	for (limit <= 0 || len(events) <= limit) && it.Next(c) {
		events = append(events, it.Page()...)
	}
	if err := it.Err(); err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"tokenId":  tokenId,
		}).Error("iterator.Next failed")
		return nil, err
	}

	res := &history.History{Events: events, Complete: true}
	if limit > 0 && len(events) > limit {
		res.Events = events[:limit]
		res.Complete = false
	}
	history.LabelEvents(res.Events)
	return res, nil
}

type iterator struct {
	u         *transferEventUseCase
	filter    ethereum.FilterQuery
	fromBlock uint64
	// cursor is the newest block not yet searched
	cursor uint64
	done   bool
	page   []history.TransferEvent
	err    error
}

// Next fetches windows backwards until one holds events or the range is exhausted
func (it *iterator) Next(c bCtx.Ctx) bool {
	it.page = nil
	for !it.done && it.err == nil {
		begin := it.fromBlock
		if it.cursor-begin+1 > it.u.windowSize {
			begin = it.cursor - it.u.windowSize + 1
		}
		logs, err := it.fetch(c, newBlockRange(begin, it.cursor))
		if err != nil {
			it.err = err
			return false
		}
		if begin == it.fromBlock {
			it.done = true
		} else {
			it.cursor = begin - 1
		}
		if page := decode(c, logs); len(page) > 0 {
			it.page = page
			return true
		}
	}
	return false
}

func (it *iterator) Page() []history.TransferEvent {
	return it.page
}

func (it *iterator) Err() error {
	return it.err
}

// fetch splits ranges the node refuses to serve in one response
func (it *iterator) fetch(c bCtx.Ctx, r *blockRange) ([]types.Log, error) {
	ranges := []*blockRange{r}
	res := []types.Log{}
	for len(ranges) > 0 {
		idx := len(ranges) - 1
		r := ranges[idx]
		ranges = ranges[:idx]

		q := it.filter
		q.FromBlock = r.begin
		q.ToBlock = r.end
		tCtx, cancel := bCtx.WithTimeout(c, it.u.windowTimeout)
		logs, err := it.u.chain.FilterLogs(tCtx, q)
		cancel()
		if err != nil {
			if c.Err() != nil || r.single() {
				c.WithFields(log.Fields{
					"err":   err,
					"range": r.String(),
				}).Error("chain.FilterLogs failed")
				return nil, err
			}
			r1, r2 := r.split()
			ranges = append(ranges, r1, r2)
			c.WithFields(log.Fields{
				"originalRange": r.String(),
				"range1":        r1.String(),
				"range2":        r2.String(),
			}).Info("splitting blockRange")
			continue
		}
		res = append(res, logs...)
	}
	return res, nil
}

// decode keeps well formed ERC-721 transfers, newest first
func decode(c bCtx.Ctx, logs []types.Log) []history.TransferEvent {
	sort.SliceStable(logs, func(i, j int) bool {
		if logs[i].BlockNumber != logs[j].BlockNumber {
			return logs[i].BlockNumber > logs[j].BlockNumber
		}
		return logs[i].Index > logs[j].Index
	})
	res := make([]history.TransferEvent, 0, len(logs))
	for _, l := range logs {
		if l.Removed || len(l.Topics) != 4 || l.Topics[0] != transferTopic {
			c.WithFields(log.Fields{
				"txHash":   l.TxHash.Hex(),
				"logIndex": l.Index,
			}).Warn("dropped malformed transfer log")
			continue
		}
		from := common.BytesToAddress(l.Topics[1].Bytes())
		res = append(res, history.TransferEvent{
			TxHash:      domain.TxHash(l.TxHash.Hex()),
			From:        domain.ToAddress(from),
			To:          domain.ToAddress(common.BytesToAddress(l.Topics[2].Bytes())),
			TokenId:     domain.TokenId(new(big.Int).SetBytes(l.Topics[3].Bytes()).String()),
			BlockNumber: l.BlockNumber,
			LogIndex:    l.Index,
			Label:       history.LabelTransfer,
			FromZero:    from == (common.Address{}),
		})
	}
	return res
}
