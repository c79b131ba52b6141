package usecase

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/history"
	"github.com/x-xyz/storefront/service/chain/mocks"
)

var (
	grifters   = domain.Address("0x71c4658acc7b53ee814a29ce31100ff85ca23ca7")
	alice      = common.HexToAddress("0x00000000000000000000000000000000000a11ce")
	bob        = common.HexToAddress("0x0000000000000000000000000000000000000b0b")
	carol      = common.HexToAddress("0x00000000000000000000000000000000000ca201")
	errTooMany = errors.New("query returned more than 10000 results")
)

func transferLog(blk uint64, idx uint, from, to common.Address, tokenId int64) types.Log {
	return types.Log{
		Address:     grifters.Common(),
		Topics:      []common.Hash{transferTopic, common.BytesToHash(from.Bytes()), common.BytesToHash(to.Bytes()), common.BigToHash(big.NewInt(tokenId))},
		BlockNumber: blk,
		TxHash:      common.BigToHash(new(big.Int).SetUint64(blk*1000 + uint64(idx))),
		Index:       idx,
	}
}

// node serves logs within [FromBlock, ToBlock] and refuses ranges holding more than limit logs
type node struct {
	logs  []types.Log
	limit int
}

func (n *node) filterLogs(_ bCtx.Ctx, q ethereum.FilterQuery) []types.Log {
	res := []types.Log{}
	for _, l := range n.logs {
		if l.BlockNumber >= q.FromBlock.Uint64() && l.BlockNumber <= q.ToBlock.Uint64() {
			res = append(res, l)
		}
	}
	return res
}

func (n *node) filterErr(c bCtx.Ctx, q ethereum.FilterQuery) error {
	if n.limit > 0 && len(n.filterLogs(c, q)) > n.limit {
		return errTooMany
	}
	return nil
}

type transferEventSuite struct {
	suite.Suite
	chain *mocks.Client
	node  *node
	u     history.Usecase
}

func (s *transferEventSuite) SetupTest() {
	s.chain = &mocks.Client{}
	s.node = &node{
		logs: []types.Log{
			transferLog(105, 0, common.Address{}, alice, 7),
			transferLog(250, 3, alice, bob, 7),
			transferLog(250, 9, bob, carol, 7),
			transferLog(390, 1, carol, alice, 7),
		},
	}
	s.chain.On("BlockNumber", mock.Anything).Return(uint64(400), nil)
	s.chain.On("FilterLogs", mock.Anything, mock.Anything).Return(s.node.filterLogs, s.node.filterErr)
	s.u = NewTransferEventUseCase(&Config{
		Chain:      s.chain,
		FromBlock:  100,
		WindowSize: 100,
	})
}

func TestTransferEventSuite(t *testing.T) {
	suite.Run(t, new(transferEventSuite))
}

func (s *transferEventSuite) TestListLabelsMint() {
	res, err := s.u.List(bCtx.Background(), grifters, "7", 0)
	s.Require().NoError(err)
	s.True(res.Complete)
	s.Require().Len(res.Events, 4)

	s.Equal(uint64(390), res.Events[0].BlockNumber)
	s.Equal(uint(9), res.Events[1].LogIndex)
	s.Equal(uint(3), res.Events[2].LogIndex)
	s.Equal(uint64(105), res.Events[3].BlockNumber)

	for _, e := range res.Events[:3] {
		s.Equal(history.LabelTransfer, e.Label)
		s.False(e.FromZero)
	}
	s.Equal(history.LabelMint, res.Events[3].Label)
	s.True(res.Events[3].FromZero)
	s.Equal(domain.ToAddress(alice), res.Events[3].To)
	s.Equal(domain.TokenId("7"), res.Events[3].TokenId)
}

func (s *transferEventSuite) TestListLimit() {
	res, err := s.u.List(bCtx.Background(), grifters, "7", 2)
	s.Require().NoError(err)
	s.False(res.Complete)
	s.Require().Len(res.Events, 2)
	mints := 0
	for _, e := range res.Events {
		if e.Label == history.LabelMint {
			mints++
		}
	}
	s.Equal(1, mints)
	s.Equal(history.LabelTransfer, res.Events[0].Label)
	s.Equal(history.LabelMint, res.Events[1].Label)
}

func (s *transferEventSuite) TestSplitsOverflowingWindow() {
	s.node.limit = 2
	s.u = NewTransferEventUseCase(&Config{
		Chain:      s.chain,
		FromBlock:  100,
		WindowSize: 1000,
	})
	res, err := s.u.List(bCtx.Background(), grifters, "7", 0)
	s.Require().NoError(err)
	s.Require().Len(res.Events, 4)
	s.Equal(uint64(390), res.Events[0].BlockNumber)
	s.Equal(uint(9), res.Events[1].LogIndex)
	s.Equal(history.LabelMint, res.Events[3].Label)
}

func (s *transferEventSuite) TestSingleBlockOverflowFails() {
	s.node.logs = append(s.node.logs, transferLog(250, 11, carol, bob, 7))
	s.node.limit = 1
	_, err := s.u.List(bCtx.Background(), grifters, "7", 0)
	s.ErrorIs(err, errTooMany)
}

func (s *transferEventSuite) TestIteratorPages() {
	it, err := s.u.Query(bCtx.Background(), grifters, "7")
	s.Require().NoError(err)

	pages := [][]history.TransferEvent{}
	for it.Next(bCtx.Background()) {
		pages = append(pages, it.Page())
	}
	s.NoError(it.Err())
	s.Require().Len(pages, 3)
	s.Len(pages[0], 1)
	s.Len(pages[1], 2)
	s.Len(pages[2], 1)
	s.False(it.Next(bCtx.Background()))
}

func (s *transferEventSuite) TestDropsMalformedLogs() {
	erc20Style := transferLog(300, 0, alice, bob, 7)
	erc20Style.Topics = erc20Style.Topics[:3]
	s.node.logs = append(s.node.logs, erc20Style)

	res, err := s.u.List(bCtx.Background(), grifters, "7", 0)
	s.Require().NoError(err)
	s.Len(res.Events, 4)
}

func (s *transferEventSuite) TestBadInput() {
	_, err := s.u.Query(bCtx.Background(), grifters, "seven")
	s.ErrorIs(err, domain.ErrBadParamInput)
}
