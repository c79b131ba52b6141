package repository

import (
	"testing"

	"github.com/stretchr/testify/require"

	bCtx "github.com/x-xyz/storefront/base/ctx"
)

func Test_dataUriReaderRepo_Get(t *testing.T) {
	tests := []struct {
		name    string
		uri     string
		want    []byte
		wantErr bool
	}{
		{
			name:    "invalid schema",
			uri:     "https://url",
			wantErr: true,
		},
		{
			name:    "empty data part",
			uri:     "data:application/json;base64,",
			wantErr: true,
		},
		{
			name:    "no data part",
			uri:     "data:application/json;base64",
			wantErr: true,
		},
		{
			name: "utf8 json",
			uri:  `data:application/json;utf8,{"name":"Grifter #1","attributes":[{"trait_type":"Mind","value":14}]}`,
			want: []byte(`{"name":"Grifter #1","attributes":[{"trait_type":"Mind","value":14}]}`),
		},
		{
			name: "percent encoded",
			uri:  `data:application/json,%7B%22name%22%3A%22a%20b%22%7D`,
			want: []byte(`{"name":"a b"}`),
		},
		{
			name: "base64 svg",
			uri:  "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciPjwvc3ZnPg==",
			want: []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`),
		},
		{
			name: "unpadded base64",
			uri:  "data:image/svg+xml;base64,PHN2ZyB4bWxucz0iaHR0cDovL3d3dy53My5vcmcvMjAwMC9zdmciPjwvc3ZnPg",
			want: []byte(`<svg xmlns="http://www.w3.org/2000/svg"></svg>`),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			got, err := NewDataUriReaderRepo().Get(bCtx.Background(), tt.uri)
			if tt.wantErr {
				req.Error(err)
				return
			}
			req.NoError(err)
			req.Equal(tt.want, got)
		})
	}
}
