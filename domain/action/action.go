package action

import (
	"errors"
	"time"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/notification"
)

var (
	// ErrNoValidListing wraps every failure of a submitted offer
	ErrNoValidListing = errors.New("No valid listing found for this NFT")
	ErrEmptyBid       = errors.New("Please enter a bid value")
	// ErrAccountNotAllowed and ErrSpendLimit are raised before anything is sent with the service signer
	ErrAccountNotAllowed = errors.New("Account is not allowed to trade with the service signer")
	ErrSpendLimit        = errors.New("Price exceeds the signer spend limit")
)

type Kind string

const (
	KindBuy   Kind = "buy"
	KindOffer Kind = "offer"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusConfirmed Status = "confirmed"
	StatusFailed    Status = "failed"
)

type Record struct {
	Id        string         `json:"id" bson:"_id"`
	Kind      Kind           `json:"kind" bson:"kind"`
	ChainId   domain.ChainId `json:"chainId" bson:"chainId"`
	ListingId string         `json:"listingId" bson:"listingId"`
	Account   domain.Address `json:"account" bson:"account"`
	BidValue  string         `json:"bidValue,omitempty" bson:"bidValue,omitempty"`
	TxHash    domain.TxHash  `json:"txHash" bson:"txHash"`
	Status    Status         `json:"status" bson:"status"`
	Reason    string         `json:"reason,omitempty" bson:"reason,omitempty"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt" bson:"updatedAt"`
}

type Updater struct {
	Status    *Status    `bson:"status,omitempty"`
	Reason    *string    `bson:"reason,omitempty"`
	UpdatedAt *time.Time `bson:"updatedAt,omitempty"`
}

// Result is what the client gets back for a dispatched action
type Result struct {
	Toast    notification.Toast `json:"toast"`
	ActionId string             `json:"actionId,omitempty"`
	TxHash   domain.TxHash      `json:"txHash,omitempty"`
	// Refetch names the page sections the client should reload once
	Refetch []string `json:"refetch,omitempty"`
}

type findAllOptions struct {
	Account *domain.Address
	Status  *Status
	Limit   *int64
}

type FindAllOptions func(*findAllOptions) error

func GetFindAllOptions(opts ...FindAllOptions) (findAllOptions, error) {
	res := findAllOptions{}
	for _, opt := range opts {
		if err := opt(&res); err != nil {
			return res, err
		}
	}
	return res, nil
}

func WithAccount(account domain.Address) FindAllOptions {
	return func(opts *findAllOptions) error {
		a := account.ToLower()
		opts.Account = &a
		return nil
	}
}

func WithStatus(status Status) FindAllOptions {
	return func(opts *findAllOptions) error {
		opts.Status = &status
		return nil
	}
}

func WithLimit(limit int64) FindAllOptions {
	return func(opts *findAllOptions) error {
		opts.Limit = &limit
		return nil
	}
}

type Repo interface {
	Insert(ctx ctx.Ctx, record *Record) error
	FindOne(ctx ctx.Ctx, id string) (*Record, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptions) ([]*Record, error)
	Update(ctx ctx.Ctx, id string, updater Updater) error
}

type Usecase interface {
	PlaceOffer(ctx ctx.Ctx, account domain.Address, listingId, bidValue string) (*Result, error)
	BuyListing(ctx ctx.Ctx, account domain.Address, listingId string) (*Result, error)
	Get(ctx ctx.Ctx, id string) (*Record, error)
	FindAll(ctx ctx.Ctx, opts ...FindAllOptions) ([]*Record, error)
}

// Watcher confirms submitted transactions in the background
type Watcher interface {
	Watch(ctx ctx.Ctx, record *Record)
}

// ToastOf renders the current state of a recorded action
func ToastOf(r *Record) notification.Toast {
	switch {
	case r.Kind == KindBuy && r.Status == StatusFailed:
		return notification.Error("Purchase failed! Reason: " + r.Reason)
	case r.Kind == KindBuy:
		return notification.Success("Purchase success!")
	case r.Status == StatusFailed:
		return notification.Error("Bid failed! Reason: " + r.Reason)
	default:
		return notification.Success("Bid success!")
	}
}
