package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
)

const dataUriSchema = "data:"

var ErrEmptyDataUri = xerrors.New("no data part provided")

type dataUriReaderRepo struct{}

// NewDataUriReaderRepo decodes inline data: documents, mostly on-chain svg and json metadata
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

// Get decodes data:[<mediatype>][;base64],<data>
func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	rest := strings.TrimPrefix(uri, dataUriSchema)
	if rest == uri {
		return nil, xerrors.Errorf("%w: %.16s", domain.ErrUnsupportedSchema, uri)
	}
	idx := strings.IndexByte(rest, ',')
	if idx < 0 || idx == len(rest)-1 {
		return nil, ErrEmptyDataUri
	}
	header, payload := rest[:idx], rest[idx+1:]
	if len(payload) > maxBodySize {
		return nil, xerrors.Errorf("data uri exceeds %d bytes", maxBodySize)
	}

	if strings.HasSuffix(header, ";base64") {
		// some minters drop the padding
		if b, err := base64.StdEncoding.DecodeString(payload); err == nil {
			return b, nil
		}
		return base64.RawStdEncoding.DecodeString(strings.TrimRight(payload, "="))
	}
	if unescaped, err := url.PathUnescape(payload); err == nil {
		return []byte(unescaped), nil
	}
	return []byte(payload), nil
}
