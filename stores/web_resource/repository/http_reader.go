package repository

import (
	"net/http"
	"time"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

const defaultUserAgent = "storefront/1.0"

type httpReaderRepo struct {
	client  *http.Client
	timeout time.Duration
	headers map[string]string
}

// NewHttpReaderRepo fetches plain http(s) resources. Some metadata hosts
// reject the go default agent so one is always sent.
func NewHttpReaderRepo(client *http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	h := map[string]string{"User-Agent": defaultUserAgent}
	for k, v := range headers {
		h[k] = v
	}
	return &httpReaderRepo{client: client, timeout: timeout, headers: h}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, r.timeout)
	defer cancel()
	return fetch(ctx, r.client, url, r.headers)
}
