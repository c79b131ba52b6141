package usecase

import (
	"sync"
	"time"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/base/metrics"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/action"
	"github.com/x-xyz/storefront/domain/asset"
	"github.com/x-xyz/storefront/domain/history"
	"github.com/x-xyz/storefront/domain/listing"
	"github.com/x-xyz/storefront/domain/offer"
	"github.com/x-xyz/storefront/domain/page"
	"github.com/x-xyz/storefront/service/chain/contract"
	"github.com/x-xyz/storefront/service/ens"
)

const (
	defaultSectionTimeout = 5 * time.Second
	// fetchTimeout bounds section fetches that outlive their request
	fetchTimeout    = 30 * time.Second
	scheduleTimeout = time.Second
)

var (
	met     = metrics.New("page")
	timeNow = time.Now
)

type Config struct {
	Display        Display
	SectionTimeout time.Duration
	HistoryLimit   int

	Listing listing.Usecase
	Offer   offer.Usecase
	History history.Usecase
	Asset   asset.Usecase
	Erc721  contract.Erc721Contract
	Ens     ens.ENS
	Action  action.Usecase
}

type impl struct {
	display        Display
	sectionTimeout time.Duration
	historyLimit   int

	listing listing.Usecase
	offer   offer.Usecase
	history history.Usecase
	asset   asset.Usecase
	erc721  contract.Erc721Contract
	ens     ens.ENS
	action  action.Usecase

	workerPool *goroutines.Pool
}

func New(cfg *Config) page.Usecase {
	im := &impl{
		display:        cfg.Display,
		sectionTimeout: cfg.SectionTimeout,
		historyLimit:   cfg.HistoryLimit,
		listing:        cfg.Listing,
		offer:          cfg.Offer,
		history:        cfg.History,
		asset:          cfg.Asset,
		erc721:         cfg.Erc721,
		ens:            cfg.Ens,
		action:         cfg.Action,
		workerPool:     goroutines.NewPool(64, goroutines.WithTaskQueueLength(1024), goroutines.WithPreAllocWorkers(8)),
	}
	if im.sectionTimeout <= 0 {
		im.sectionTimeout = defaultSectionTimeout
	}
	return im
}

// apply merges one finished section into the inputs; it runs on the request goroutine only
type apply func(in *Inputs)

func (im *impl) GetListingPage(c ctx.Ctx, req page.Request) (*page.ListingPage, error) {
	defer met.BumpTime("time", "func", "GetListingPage").End()

	in := Inputs{
		ListingId: req.ListingId,
		BidInput:  req.BidInput,
		Now:       timeNow(),
	}

	l, err := im.listing.GetDirectListing(c, req.ListingId)
	if err != nil && err != domain.ErrNotFound {
		c.WithFields(log.Fields{
			"err":       err,
			"listingId": req.ListingId,
		}).Error("listing.GetDirectListing failed")
	}
	in.Listing, in.ListingErr = l, err

	tasks := im.sectionTasks(l)
	if req.ActionId != "" {
		tasks = append(tasks, im.notificationTask(req.ActionId))
	}

	// sections keep running after the request returns, only their results are dropped
	fCtx, cancel := ctx.WithTimeout(ctx.Detach(c), fetchTimeout)
	results := make(chan apply, len(tasks))
	wg := sync.WaitGroup{}
	pending := 0
	for _, task := range tasks {
		task := task
		wg.Add(1)
		if err := im.workerPool.ScheduleWithTimeout(scheduleTimeout, func() {
			defer wg.Done()
			results <- task(fCtx)
		}); err != nil {
			wg.Done()
			c.WithField("err", err).Error("workerPool.ScheduleWithTimeout failed")
			continue
		}
		pending++
	}
	go func() {
		wg.Wait()
		cancel()
	}()

	timer := time.NewTimer(im.sectionTimeout)
	defer timer.Stop()
	for pending > 0 {
		select {
		case f := <-results:
			f(&in)
			pending--
		case <-timer.C:
			c.WithFields(log.Fields{
				"listingId": req.ListingId,
				"pending":   pending,
			}).Warn("sections timed out")
			pending = 0
		}
	}

	return Assemble(im.display, in), nil
}

func (im *impl) sectionTasks(l *listing.Listing) []func(ctx.Ctx) apply {
	if l == nil {
		return nil
	}
	return []func(ctx.Ctx) apply{
		func(c ctx.Ctx) apply {
			defer met.BumpTime("section", "name", "offers").End()
			offers, err := im.offer.GetAllValid(c, l.AssetContract, l.TokenId)
			return func(in *Inputs) {
				in.Offers, in.OffersResult = offers, Result{Done: true, Err: err}
			}
		},
		func(c ctx.Ctx) apply {
			defer met.BumpTime("section", "name", "history").End()
			h, err := im.history.List(c, l.AssetContract, l.TokenId, im.historyLimit)
			return func(in *Inputs) {
				in.History, in.HistoryResult = h, Result{Done: true, Err: err}
			}
		},
		func(c ctx.Ctx) apply {
			defer met.BumpTime("section", "name", "asset").End()
			a, err := im.asset.Get(c, l.AssetContract, l.TokenId)
			return func(in *Inputs) {
				in.Asset, in.AssetResult = a, Result{Done: true, Err: err}
			}
		},
		func(c ctx.Ctx) apply {
			defer met.BumpTime("section", "name", "owner").End()
			owner, name, err := im.owner(c, l)
			return func(in *Inputs) {
				in.Owner, in.EnsName, in.OwnerResult = owner, name, Result{Done: true, Err: err}
			}
		},
	}
}

func (im *impl) owner(c ctx.Ctx, l *listing.Listing) (domain.Address, string, error) {
	id, ok := l.TokenId.BigInt()
	if !ok {
		return "", "", domain.ErrBadParamInput
	}
	owner, err := im.erc721.OwnerOf(c, l.AssetContract, id)
	if err != nil {
		if err != domain.ErrNotFound {
			c.WithFields(log.Fields{
				"err":      err,
				"contract": l.AssetContract,
				"tokenId":  l.TokenId,
			}).Error("erc721.OwnerOf failed")
		}
		return "", "", err
	}
	name, err := im.ens.ReverseResolve(c, owner)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"owner": owner,
		}).Warn("ens.ReverseResolve failed")
		name = ""
	}
	return owner, name, nil
}

func (im *impl) notificationTask(actionId string) func(ctx.Ctx) apply {
	return func(c ctx.Ctx) apply {
		r, err := im.action.Get(c, actionId)
		if err != nil {
			if err != domain.ErrNotFound {
				c.WithFields(log.Fields{
					"err":      err,
					"actionId": actionId,
				}).Error("action.Get failed")
			}
			return func(*Inputs) {}
		}
		if r.Status == action.StatusPending {
			return func(*Inputs) {}
		}
		toast := action.ToastOf(r)
		return func(in *Inputs) {
			in.Notification = &toast
		}
	}
}
