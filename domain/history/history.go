package history

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type Label string

const (
	LabelMint     Label = "Mint"
	LabelTransfer Label = "Transfer"
)

type TransferEvent struct {
	TxHash      domain.TxHash  `json:"transactionHash"`
	From        domain.Address `json:"from"`
	To          domain.Address `json:"to"`
	TokenId     domain.TokenId `json:"tokenId"`
	BlockNumber uint64         `json:"blockNumber"`
	LogIndex    uint           `json:"logIndex"`
	Label       Label          `json:"label"`
	// FromZero is set when the event originates from the zero address
	FromZero bool `json:"fromZero"`
}

// Iterator walks transfer events newest first, one block window per page.
// It cannot be restarted; run a new query instead.
type Iterator interface {
	Next(ctx ctx.Ctx) bool
	Page() []TransferEvent
	Err() error
}

type History struct {
	Events []TransferEvent `json:"events"`
	// Complete is false when the sequence was cut at the requested limit
	Complete bool `json:"complete"`
}

type Usecase interface {
	Query(ctx ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (Iterator, error)
	// List drains a query up to limit events, limit <= 0 means no limit
	List(ctx ctx.Ctx, contract domain.Address, tokenId domain.TokenId, limit int) (*History, error)
}

// LabelEvents marks the last event of a newest first sequence as the mint
// and every preceding one as a transfer.
func LabelEvents(events []TransferEvent) {
	for i := range events {
		events[i].Label = LabelTransfer
	}
	if n := len(events); n > 0 {
		events[n-1].Label = LabelMint
	}
}
