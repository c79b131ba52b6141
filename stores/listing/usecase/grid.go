package usecase

import (
	"sort"
	"strings"

	"github.com/viney-shih/goroutines"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/asset"
	"github.com/x-xyz/storefront/domain/listing"
)

type GridConfig struct {
	Listing listing.Usecase
	Asset   asset.Usecase
	Grids   map[string]listing.GridConfig
	// Concurrency bounds the asset metadata batch of one grid
	Concurrency int
}

type gridImpl struct {
	listing     listing.Usecase
	asset       asset.Usecase
	grids       map[string]listing.GridConfig
	names       []string
	concurrency int
}

func NewGrid(cfg *GridConfig) listing.GridUsecase {
	if cfg.Concurrency == 0 {
		cfg.Concurrency = 8
	}
	grids := make(map[string]listing.GridConfig, len(cfg.Grids))
	for name, g := range cfg.Grids {
		grids[strings.ToLower(name)] = g
	}
	names := make([]string, 0, len(grids))
	for name := range grids {
		names = append(names, name)
	}
	sort.Strings(names)
	return &gridImpl{
		listing:     cfg.Listing,
		asset:       cfg.Asset,
		grids:       grids,
		names:       names,
		concurrency: cfg.Concurrency,
	}
}

func (im *gridImpl) GetNamedGrid(c ctx.Ctx, name string, withAsset bool) (*listing.Grid, error) {
	g, ok := im.grids[strings.ToLower(name)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	grid, err := im.getGrid(c, g.Contract, g.Kind, withAsset)
	if err != nil {
		return nil, err
	}
	if len(grid.Items) == 0 && g.EmptyText != "" {
		grid.EmptyText = g.EmptyText
	}
	return grid, nil
}

func (im *gridImpl) GetGrid(c ctx.Ctx, contract domain.Address, kind listing.Kind, withAsset bool) (*listing.Grid, error) {
	grid, err := im.getGrid(c, contract, kind, withAsset)
	if err != nil {
		return nil, err
	}
	if len(grid.Items) == 0 {
		grid.EmptyText = im.emptyTextOf(contract, kind)
	}
	return grid, nil
}

// emptyTextOf picks the first matching grid by name
func (im *gridImpl) emptyTextOf(contract domain.Address, kind listing.Kind) string {
	for _, name := range im.names {
		g := im.grids[name]
		if g.Contract.Equals(contract) && g.Kind == kind && g.EmptyText != "" {
			return g.EmptyText
		}
	}
	return listing.DefaultEmptyText
}

func (im *gridImpl) getGrid(c ctx.Ctx, contract domain.Address, kind listing.Kind, withAsset bool) (*listing.Grid, error) {
	defer met.BumpTime("time", "func", "GetGrid", "kind", string(kind)).End()

	var (
		ls  []listing.Listing
		err error
	)
	switch kind {
	case listing.KindAuction:
		ls, err = im.listing.GetValidAuctions(c, contract)
	case listing.KindDirect:
		ls, err = im.listing.GetValidDirectListings(c, contract)
	default:
		return nil, domain.ErrBadParamInput
	}
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"contract": contract,
			"kind":     kind,
		}).Error("listing.GetValid failed")
		return nil, err
	}

	items := make([]listing.GridItem, len(ls))
	for i := range ls {
		items[i].Listing = ls[i]
	}
	if withAsset && len(items) > 0 {
		im.attachAssets(c, items)
	}
	return &listing.Grid{Items: items}, nil
}

// attachAssets fills the asset of every item it can resolve, items whose
// metadata fails keep a nil asset
func (im *gridImpl) attachAssets(c ctx.Ctx, items []listing.GridItem) {
	b := goroutines.NewBatch(im.concurrency, goroutines.WithBatchSize(len(items)))
	defer b.Close()
	for i := range items {
		idx := i
		b.Queue(func() (interface{}, error) {
			l := items[idx].Listing
			a, err := im.asset.Get(c, l.AssetContract, l.TokenId)
			if err != nil {
				c.WithFields(log.Fields{
					"err":       err,
					"listingId": l.Id,
				}).Warn("asset.Get failed")
				return nil, err
			}
			items[idx].Asset = a
			return nil, nil
		})
	}
	b.QueueComplete()

	for range b.Results() {
	}
}
