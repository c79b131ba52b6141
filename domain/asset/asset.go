package asset

import (
	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

// Asset is the token metadata document resolved from tokenURI
type Asset struct {
	TokenUri       string      `json:"tokenUri"`
	Name           string      `json:"name"`
	Description    string      `json:"description"`
	Image          string      `json:"image"`
	ImageMediaType string      `json:"imageMediaType,omitempty"`
	AnimationUrl   string      `json:"animationUrl,omitempty"`
	ExternalUrl    string      `json:"externalUrl,omitempty"`
	Attributes     []Attribute `json:"attributes"`
}

type Usecase interface {
	Get(ctx ctx.Ctx, contract domain.Address, tokenId domain.TokenId) (*Asset, error)
}
