package usecase

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	bCtx "github.com/x-xyz/storefront/base/ctx"
	"github.com/x-xyz/storefront/domain"
	"github.com/x-xyz/storefront/domain/mocks"
)

func Test_getIpfsUrl(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{
			name: "pinata",
			url:  "https://gateway.pinata.cloud/ipfs/QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
			want: "ipfs://QmVVutd4A4i1jCQnJXR49miQdXLNLVeGwyo5wWznpgRGeH",
		},
		{
			name: "pinata dedicated",
			url:  "https://womenandweapons.mypinata.cloud/ipfs/QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
			want: "ipfs://QmTeTTMFgPYULCNkfxLcJSu5KByxDWh6JA4HFZY4CQnxdS",
		},
		{
			name: "ipfs.io",
			url:  "https://ipfs.io/ipfs/QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
			want: "ipfs://QmRM6jM1Agru6fgm9aae1oFukwSi5d3Kk71Lue2rYznEYm/0.png",
		},
		{
			name: "noop",
			url:  "https://some.url",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := getIpfsUrl(tt.url); got != tt.want {
				t.Errorf("getIpfsUrl() = %v, want %v", got, tt.want)
			}
		})
	}
}

type webResourceSuite struct {
	suite.Suite
	http *mocks.WebResourceReaderRepository
	node *mocks.WebResourceReaderRepository
	gw   *mocks.WebResourceReaderRepository
	data *mocks.WebResourceReaderRepository
	u    domain.WebResourceUseCase
}

func (s *webResourceSuite) SetupTest() {
	s.http = &mocks.WebResourceReaderRepository{}
	s.node = &mocks.WebResourceReaderRepository{}
	s.gw = &mocks.WebResourceReaderRepository{}
	s.data = &mocks.WebResourceReaderRepository{}
	s.u = NewWebResourceUseCase(&WebResourceUseCaseCfg{
		HttpReader:    s.http,
		IpfsReaders:   []domain.WebResourceReaderRepository{s.node, s.gw},
		DataUriReader: s.data,
		IpfsGateway:   "https://ipfs.io/ipfs/",
	})
}

func (s *webResourceSuite) TearDownTest() {
	for _, m := range []*mocks.WebResourceReaderRepository{s.http, s.node, s.gw, s.data} {
		m.AssertExpectations(s.T())
	}
}

func TestWebResourceSuite(t *testing.T) {
	suite.Run(t, new(webResourceSuite))
}

func (s *webResourceSuite) TestIpfsFallsBackToGateway() {
	s.node.On("Get", mock.Anything, "Qm1/1.json").Return(nil, errors.New("node down")).Once()
	s.gw.On("Get", mock.Anything, "Qm1/1.json").Return([]byte(`{"name":"a"}`), nil).Once()

	b, err := s.u.GetJson(bCtx.Background(), "ipfs://ipfs/Qm1/1.json")
	s.NoError(err)
	s.Equal([]byte(`{"name":"a"}`), b)
}

func (s *webResourceSuite) TestHttpsFallsBackToIpfs() {
	s.http.On("Get", mock.Anything, "https://ipfs.io/ipfs/Qm2").Return(nil, errors.New("429")).Once()
	s.node.On("Get", mock.Anything, "Qm2").Return([]byte("img"), nil).Once()

	b, err := s.u.Get(bCtx.Background(), "https://ipfs.io/ipfs/Qm2")
	s.NoError(err)
	s.Equal([]byte("img"), b)
}

func (s *webResourceSuite) TestInvalidJson() {
	s.data.On("Get", mock.Anything, "data:text/plain,hello").Return([]byte("hello"), nil).Once()
	_, err := s.u.GetJson(bCtx.Background(), "data:text/plain,hello")
	s.ErrorIs(err, domain.ErrInvalidJsonFormat)
}

func (s *webResourceSuite) TestUnsupportedSchema() {
	_, err := s.u.Get(bCtx.Background(), "ar://abc")
	s.ErrorIs(err, domain.ErrUnsupportedSchema)
}

func (s *webResourceSuite) TestHttpUrl() {
	s.Equal("https://ipfs.io/ipfs/Qm3/img.png", s.u.HttpUrl("ipfs://Qm3/img.png"))
	s.Equal("https://a.b/c.png", s.u.HttpUrl("https://a.b/c.png"))
}
