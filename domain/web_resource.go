package domain

import (
	"github.com/x-xyz/storefront/base/ctx"
)

type WebResourceReaderRepository interface {
	Get(ctx.Ctx, string) ([]byte, error)
}

// WebResourceUseCase resolves http(s), ipfs and data uris to their content
type WebResourceUseCase interface {
	Get(ctx.Ctx, string) ([]byte, error)
	GetJson(ctx.Ctx, string) ([]byte, error)
	// HttpUrl rewrites ipfs uris to the configured gateway so browsers can load them
	HttpUrl(string) string
}
