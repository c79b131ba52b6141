package usecase

import (
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/base/price"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/action"
	"github.com/x-xyz/storefront/domain/currency"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/domain/notification"
	"github.com/x-xyz/storefront/service/chain"
	"github.com/x-xyz/storefront/service/chain/contract"
)

const SectionOffers = "offers"

var (
	met     = metrics.New("action")
	timeNow = time.Now
)

type Config struct {
	ChainId     domain.ChainId
	Chain       chain.Client
	Marketplace contract.Marketplace
	Erc20       contract.Erc20Contract
	Listing     listing.Usecase
	Currency    currency.Usecase
	Repo        action.Repo
	Watcher     action.Watcher

	// OfferCurrency is the ERC-20 every offer is denominated in
	OfferCurrency domain.Address
	OfferDuration time.Duration

	// AllowedAccounts may dispatch with the service signer, nobody else can
	AllowedAccounts []domain.Address
	// MaxValue caps the total price of a single dispatch per currency, in the currency's smallest unit
	MaxValue map[domain.Address]*big.Int
}

type impl struct {
	chainId       domain.ChainId
	chain         chain.Client
	marketplace   contract.Marketplace
	erc20         contract.Erc20Contract
	listing       listing.Usecase
	currency      currency.Usecase
	repo          action.Repo
	watcher       action.Watcher
	offerCurrency domain.Address
	offerDuration time.Duration
	allowed       map[domain.Address]bool
	maxValue      map[domain.Address]*big.Int
}

func New(cfg *Config) action.Usecase {
	allowed := make(map[domain.Address]bool, len(cfg.AllowedAccounts))
	for _, a := range cfg.AllowedAccounts {
		allowed[a.ToLower()] = true
	}
	maxValue := make(map[domain.Address]*big.Int, len(cfg.MaxValue))
	for cur, v := range cfg.MaxValue {
		maxValue[cur.ToLower()] = v
	}
	return &impl{
		chainId:       cfg.ChainId,
		chain:         cfg.Chain,
		marketplace:   cfg.Marketplace,
		erc20:         cfg.Erc20,
		listing:       cfg.Listing,
		currency:      cfg.Currency,
		repo:          cfg.Repo,
		watcher:       cfg.Watcher,
		offerCurrency: cfg.OfferCurrency,
		offerDuration: cfg.OfferDuration,
		allowed:       allowed,
		maxValue:      maxValue,
	}
}

func (im *impl) PlaceOffer(c ctx.Ctx, account domain.Address, listingId, bidValue string) (*action.Result, error) {
	defer met.BumpTime("time", "func", "PlaceOffer").End()

	if strings.TrimSpace(bidValue) == "" {
		return &action.Result{Toast: notification.Error(action.ErrEmptyBid.Error())}, nil
	}

	record := im.newRecord(action.KindOffer, account, listingId)
	record.BidValue = strings.TrimSpace(bidValue)

	txHash, err := im.makeOffer(c, account, listingId, record.BidValue)
	if err != nil {
		err = wrapFailure(err)
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
			"bidValue":  bidValue,
		}).Error("makeOffer failed")
	}
	res := im.finish(c, record, txHash, err)
	if err == nil {
		res.Refetch = []string{SectionOffers}
	}
	return res, nil
}

func (im *impl) makeOffer(c ctx.Ctx, account domain.Address, listingId, bidValue string) (domain.TxHash, error) {
	if err := im.checkAccount(account); err != nil {
		return "", err
	}
	l, err := im.listing.GetDirectListing(c, listingId)
	if err != nil {
		return "", err
	}
	tokenId, ok := l.TokenId.BigInt()
	if !ok {
		return "", domain.ErrBadParamInput
	}
	cur, err := im.currency.Get(c, im.offerCurrency)
	if err != nil {
		return "", err
	}
	amount, err := price.ToWei(bidValue, cur.Decimals)
	if err != nil {
		return "", err
	}
	if err := im.checkSpend(im.offerCurrency, amount); err != nil {
		return "", err
	}
	if err := im.ensureAllowance(c, im.offerCurrency, amount); err != nil {
		return "", err
	}
	return im.marketplace.MakeOffer(c, contract.OfferParams{
		AssetContract:       l.AssetContract.Common(),
		TokenId:             tokenId,
		Quantity:            big.NewInt(1),
		Currency:            im.offerCurrency.Common(),
		TotalPrice:          amount,
		ExpirationTimestamp: big.NewInt(timeNow().Add(im.offerDuration).Unix()),
	})
}

// ensureAllowance approves the marketplace to pull amount of an ERC-20 currency from the signer
func (im *impl) ensureAllowance(c ctx.Ctx, cur domain.Address, amount *big.Int) error {
	signer, err := im.chain.SignerAddress()
	if err != nil {
		return err
	}
	spender := domain.ToAddress(im.marketplace.Address())
	allowance, err := im.erc20.Allowance(c, cur, signer, spender)
	if err != nil {
		c.WithField("err", err).Error("erc20.Allowance failed")
		return err
	}
	if allowance.Cmp(amount) >= 0 {
		return nil
	}
	txHash, err := im.erc20.Approve(c, cur, spender, amount)
	if err != nil {
		c.WithField("err", err).Error("erc20.Approve failed")
		return err
	}
	c.WithFields(log.Fields{
		"txHash":   txHash,
		"currency": cur,
		"amount":   amount.String(),
	}).Info("approved marketplace allowance")
	return nil
}

func (im *impl) BuyListing(c ctx.Ctx, account domain.Address, listingId string) (*action.Result, error) {
	defer met.BumpTime("time", "func", "BuyListing").End()

	record := im.newRecord(action.KindBuy, account, listingId)
	txHash, err := im.buy(c, account, listingId)
	if err != nil {
		err = wrapFailure(err)
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": listingId,
		}).Error("buyFromListing failed")
	}
	return im.finish(c, record, txHash, err), nil
}

func (im *impl) buy(c ctx.Ctx, account domain.Address, listingId string) (domain.TxHash, error) {
	if account.IsEmpty() {
		return "", domain.ErrInvalidAddress
	}
	if err := im.checkAccount(account); err != nil {
		return "", err
	}
	l, err := im.listing.GetDirectListing(c, listingId)
	if err != nil {
		return "", err
	}
	id, ok := domain.TokenId(l.Id).BigInt()
	if !ok || l.Price == nil {
		return "", domain.ErrNotFound
	}
	total, ok := new(big.Int).SetString(l.Price.Amount, 10)
	if !ok {
		return "", domain.ErrBadParamInput
	}
	if err := im.checkSpend(l.Price.Currency, total); err != nil {
		return "", err
	}
	if !l.Price.Currency.IsNative() {
		if err := im.ensureAllowance(c, l.Price.Currency, total); err != nil {
			return "", err
		}
	}
	return im.marketplace.BuyFromListing(c, id, account.Common(), big.NewInt(1), l.Price.Currency.Common(), total)
}

func (im *impl) checkAccount(account domain.Address) error {
	if !im.allowed[account.ToLower()] {
		return action.ErrAccountNotAllowed
	}
	return nil
}

func (im *impl) checkSpend(cur domain.Address, amount *big.Int) error {
	limit, ok := im.maxValue[cur.ToLower()]
	if ok && amount.Cmp(limit) > 0 {
		return action.ErrSpendLimit
	}
	return nil
}

// wrapFailure keeps signer guard errors visible and folds everything else into ErrNoValidListing
func wrapFailure(err error) error {
	if xerrors.Is(err, action.ErrAccountNotAllowed) || xerrors.Is(err, action.ErrSpendLimit) {
		return err
	}
	return xerrors.Errorf("%w: %v", action.ErrNoValidListing, err)
}

func reasonOf(err error) string {
	switch {
	case xerrors.Is(err, action.ErrAccountNotAllowed):
		return action.ErrAccountNotAllowed.Error()
	case xerrors.Is(err, action.ErrSpendLimit):
		return action.ErrSpendLimit.Error()
	default:
		return action.ErrNoValidListing.Error()
	}
}

func (im *impl) newRecord(kind action.Kind, account domain.Address, listingId string) *action.Record {
	now := timeNow()
	return &action.Record{
		Id:        uuid.NewString(),
		Kind:      kind,
		ChainId:   im.chainId,
		ListingId: listingId,
		Account:   account.ToLower(),
		Status:    action.StatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// finish records the dispatched action and hands submitted transactions to the watcher
func (im *impl) finish(c ctx.Ctx, record *action.Record, txHash domain.TxHash, err error) *action.Result {
	record.TxHash = txHash
	if err != nil {
		record.Status = action.StatusFailed
		record.Reason = reasonOf(err)
	}
	res := &action.Result{Toast: action.ToastOf(record), TxHash: txHash}
	if err := im.repo.Insert(c, record); err != nil {
		c.WithFields(log.Fields{
			"err":    err,
			"record": *record,
		}).Error("repo.Insert failed")
		return res
	}
	res.ActionId = record.Id
	if record.Status == action.StatusPending {
		im.watcher.Watch(c, record)
	}
	return res
}

func (im *impl) Get(c ctx.Ctx, id string) (*action.Record, error) {
	r, err := im.repo.FindOne(c, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err": err,
				"id":  id,
			}).Error("repo.FindOne failed")
		}
		return nil, err
	}
	return r, nil
}

func (im *impl) FindAll(c ctx.Ctx, opts ...action.FindAllOptions) ([]*action.Record, error) {
	records, err := im.repo.FindAll(c, opts...)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	return records, nil
}
