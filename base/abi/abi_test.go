package abi

import (
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

func TestTransferEventTopic(t *testing.T) {
	evt, ok := ERC721ABI.Events["Transfer"]
	require.True(t, ok)
	require.Equal(t, common.HexToHash("0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"), evt.ID)
}

func TestMarketplaceMethods(t *testing.T) {
	for _, name := range []string{
		"totalListings", "getListing", "getAllValidListings", "buyFromListing",
		"totalAuctions", "getAllValidAuctions", "getWinningBid",
		"totalOffers", "getAllValidOffers", "makeOffer",
	} {
		_, ok := MarketplaceV3ABI.Methods[name]
		require.True(t, ok, name)
	}
	require.True(t, MarketplaceV3ABI.Methods["buyFromListing"].IsPayable())
}
