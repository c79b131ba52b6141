package usecase

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strings"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/base/log"
	"github.com/x-xyz/storefront/domain"
)

const ipfsPrefix = "ipfs://"

var dedicatedPinataRegex = regexp.MustCompile(`^https://[^/]+\.mypinata\.cloud/ipfs/`)

var publicGateways = []string{
	"https://gateway.pinata.cloud/ipfs/",
	"https://ipfs.io/ipfs/",
	"https://cloudflare-ipfs.com/ipfs/",
	"https://nftstorage.link/ipfs/",
}

type WebResourceUseCaseCfg struct {
	HttpReader domain.WebResourceReaderRepository
	// IpfsReaders are tried in order, e.g. own node first then a public gateway
	IpfsReaders   []domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
	// IpfsGateway is the public base url used by HttpUrl, e.g. https://ipfs.io/ipfs
	IpfsGateway string
}

type webResourceUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	ipfsReaders   []domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
	ipfsGateway   string
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:    cfg.HttpReader,
		ipfsReaders:   cfg.IpfsReaders,
		dataUriReader: cfg.DataUriReader,
		ipfsGateway:   strings.TrimSuffix(cfg.IpfsGateway, "/"),
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Warn("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}
	return data, nil
}

func (u *webResourceUseCase) HttpUrl(rawUrl string) string {
	if strings.HasPrefix(rawUrl, ipfsPrefix) && u.ipfsGateway != "" {
		return u.ipfsGateway + "/" + ipfsPath(rawUrl)
	}
	return rawUrl
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("failed to parse url")
		return nil, domain.ErrUnsupportedSchema
	}

	var data []byte
	switch pUrl.Scheme {
	case "http", "https":
		data, err = u.httpReader.Get(c, rawUrl)
	case "ipfs":
		data, err = u.getIpfs(c, ipfsPath(rawUrl))
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}
	if err == nil {
		return data, nil
	}

	if pUrl.Scheme == "https" {
		if ipfsUrl := getIpfsUrl(rawUrl); len(ipfsUrl) > 0 {
			c.WithFields(log.Fields{
				"url":     rawUrl,
				"ipfsUrl": ipfsUrl,
			}).Info("falling back to ipfs")
			return u.get(c, ipfsUrl)
		}
	}

	c.WithFields(log.Fields{
		"schema": pUrl.Scheme,
		"url":    rawUrl,
		"err":    err,
	}).Warn("failed to fetch")
	return nil, err
}

func (u *webResourceUseCase) getIpfs(c bCtx.Ctx, path string) ([]byte, error) {
	err := domain.ErrNotFound
	for _, r := range u.ipfsReaders {
		var data []byte
		if data, err = r.Get(c, path); err == nil {
			return data, nil
		}
	}
	return nil, err
}

func ipfsPath(rawUrl string) string {
	p := strings.TrimPrefix(rawUrl, ipfsPrefix)
	// some collections double the prefix as ipfs://ipfs/<cid>
	return strings.TrimPrefix(p, "ipfs/")
}

func getIpfsUrl(url string) string {
	for _, p := range publicGateways {
		if strings.HasPrefix(url, p) {
			return strings.Replace(url, p, ipfsPrefix, 1)
		}
	}
	if dedicatedPinataRegex.MatchString(url) {
		return dedicatedPinataRegex.ReplaceAllLiteralString(url, ipfsPrefix)
	}
	return ""
}
