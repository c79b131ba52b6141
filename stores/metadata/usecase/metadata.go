package usecase

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/asset"
	"github.com/x-xyz/storefront/domain/keys"
	"github.com/x-xyz/storefront/service/cache"
	"github.com/x-xyz/storefront/service/chain/contract"
)

type AssetUseCaseCfg struct {
	Erc721      contract.Erc721Contract
	WebResource domain.WebResourceUseCase
	Cache       cache.Service
	// DetectMedia fetches remote images to sniff their media type
	DetectMedia bool
}

type assetUseCase struct {
	erc721      contract.Erc721Contract
	webResource domain.WebResourceUseCase
	cache       cache.Service
	detectMedia bool
}

func NewAssetUseCase(cfg *AssetUseCaseCfg) asset.Usecase {
	return &assetUseCase{
		erc721:      cfg.Erc721,
		webResource: cfg.WebResource,
		cache:       cfg.Cache,
		detectMedia: cfg.DetectMedia,
	}
}

// rawMetadata accepts the loosely typed documents found in the wild
type rawMetadata struct {
	Name         json.RawMessage `json:"name"`
	Description  json.RawMessage `json:"description"`
	Image        string          `json:"image"`
	ImageUrl     string          `json:"image_url"`
	AnimationUrl string          `json:"animation_url"`
	ExternalUrl  string          `json:"external_url"`
	Attributes   []rawAttribute  `json:"attributes"`
}

type rawAttribute struct {
	TraitType json.RawMessage `json:"trait_type"`
	Value     json.RawMessage `json:"value"`
}

func (u *assetUseCase) Get(c bCtx.Ctx, contractAddr domain.Address, tokenId domain.TokenId) (*asset.Asset, error) {
	id, ok := tokenId.BigInt()
	if !ok {
		return nil, domain.ErrBadParamInput
	}

	res := asset.Asset{}
	key := keys.RedisKey(contractAddr.ToLowerStr(), tokenId.String())
	err := u.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		uri, err := u.erc721.TokenURI(c, contractAddr, id)
		if err != nil {
			return nil, err
		}
		return u.load(c, expandTokenUri(uri, tokenId))
	})
	if err != nil {
		c.WithFields(log.Fields{
			"err":      err,
			"contract": contractAddr,
			"tokenId":  tokenId,
		}).Warn("failed to load asset")
		return nil, err
	}
	return &res, nil
}

func (u *assetUseCase) load(c bCtx.Ctx, tokenUri string) (*asset.Asset, error) {
	data, err := u.webResource.GetJson(c, tokenUri)
	if err != nil {
		return nil, err
	}
	return u.parse(c, tokenUri, data)
}

func (u *assetUseCase) parse(c bCtx.Ctx, tokenUri string, data []byte) (*asset.Asset, error) {
	raw := rawMetadata{}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, xerrors.Errorf("%w: %v", domain.ErrInvalidJsonFormat, err)
	}

	image := raw.Image
	if image == "" {
		image = raw.ImageUrl
	}
	a := &asset.Asset{
		TokenUri:     tokenUri,
		Name:         scalar(raw.Name),
		Description:  scalar(raw.Description),
		Image:        u.webResource.HttpUrl(image),
		AnimationUrl: u.webResource.HttpUrl(raw.AnimationUrl),
		ExternalUrl:  raw.ExternalUrl,
		Attributes:   []asset.Attribute{},
	}
	for _, attr := range raw.Attributes {
		trait := scalar(attr.TraitType)
		if trait == "" {
			continue
		}
		a.Attributes = append(a.Attributes, asset.Attribute{TraitType: trait, Value: scalar(attr.Value)})
	}
	a.ImageMediaType = u.mediaType(c, image)
	return a, nil
}

func (u *assetUseCase) mediaType(c bCtx.Ctx, image string) string {
	if image == "" {
		return ""
	}
	if !strings.HasPrefix(image, "data:") && !u.detectMedia {
		return ""
	}
	data, err := u.webResource.Get(c, image)
	if err != nil {
		return ""
	}
	return mimetype.Detect(data).String()
}

// scalar renders a json string, number or bool as text, anything else as empty
func scalar(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var v interface{}
	if err := json.Unmarshal(raw, &v); err != nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	}
	return ""
}

// expandTokenUri substitutes the ERC-1155 style {id} placeholder
func expandTokenUri(uri string, tokenId domain.TokenId) string {
	if !strings.Contains(uri, "{id}") {
		return uri
	}
	id, _ := tokenId.BigInt()
	return strings.ReplaceAll(uri, "{id}", fmt.Sprintf("%064x", id))
}
