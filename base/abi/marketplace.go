package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// MarketplaceV3ABI is the subset of the marketplace-v3 direct listings,
// english auctions and offers extensions used by the storefront.
var MarketplaceV3ABI abi.ABI

func init() {
	var err error
	MarketplaceV3ABI, err = abi.JSON(strings.NewReader(marketplaceABIJson))
	if err != nil {
		panic(err)
	}
}

var marketplaceABIJson = `[{"type":"function","name":"totalListings","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},{"type":"function","name":"getListing","stateMutability":"view","inputs":[{"type":"uint256","name":"_listingId"}],"outputs":[{"type":"tuple","name":"listing","components":[{"type":"uint256","name":"listingId"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"pricePerToken"},{"type":"uint128","name":"startTimestamp"},{"type":"uint128","name":"endTimestamp"},{"type":"address","name":"listingCreator"},{"type":"address","name":"assetContract"},{"type":"address","name":"currency"},{"type":"uint8","name":"tokenType"},{"type":"uint8","name":"status"},{"type":"bool","name":"reserved"}]}]},{"type":"function","name":"getAllValidListings","stateMutability":"view","inputs":[{"type":"uint256","name":"_startId"},{"type":"uint256","name":"_endId"}],"outputs":[{"type":"tuple[]","name":"_validListings","components":[{"type":"uint256","name":"listingId"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"pricePerToken"},{"type":"uint128","name":"startTimestamp"},{"type":"uint128","name":"endTimestamp"},{"type":"address","name":"listingCreator"},{"type":"address","name":"assetContract"},{"type":"address","name":"currency"},{"type":"uint8","name":"tokenType"},{"type":"uint8","name":"status"},{"type":"bool","name":"reserved"}]}]},{"type":"function","name":"buyFromListing","stateMutability":"payable","inputs":[{"type":"uint256","name":"_listingId"},{"type":"address","name":"_buyFor"},{"type":"uint256","name":"_quantity"},{"type":"address","name":"_currency"},{"type":"uint256","name":"_expectedTotalPrice"}],"outputs":[]},{"type":"function","name":"totalAuctions","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},{"type":"function","name":"getAllValidAuctions","stateMutability":"view","inputs":[{"type":"uint256","name":"_startId"},{"type":"uint256","name":"_endId"}],"outputs":[{"type":"tuple[]","name":"_validAuctions","components":[{"type":"uint256","name":"auctionId"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"minimumBidAmount"},{"type":"uint256","name":"buyoutBidAmount"},{"type":"uint64","name":"timeBufferInSeconds"},{"type":"uint64","name":"bidBufferBps"},{"type":"uint64","name":"startTimestamp"},{"type":"uint64","name":"endTimestamp"},{"type":"address","name":"auctionCreator"},{"type":"address","name":"assetContract"},{"type":"address","name":"currency"},{"type":"uint8","name":"tokenType"},{"type":"uint8","name":"status"}]}]},{"type":"function","name":"getWinningBid","stateMutability":"view","inputs":[{"type":"uint256","name":"_auctionId"}],"outputs":[{"type":"address","name":"_bidder"},{"type":"address","name":"_currency"},{"type":"uint256","name":"_bidAmount"}]},{"type":"function","name":"totalOffers","stateMutability":"view","inputs":[],"outputs":[{"type":"uint256","name":""}]},{"type":"function","name":"getAllValidOffers","stateMutability":"view","inputs":[{"type":"uint256","name":"_startId"},{"type":"uint256","name":"_endId"}],"outputs":[{"type":"tuple[]","name":"_validOffers","components":[{"type":"uint256","name":"offerId"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"uint256","name":"totalPrice"},{"type":"uint256","name":"expirationTimestamp"},{"type":"address","name":"offeror"},{"type":"address","name":"assetContract"},{"type":"address","name":"currency"},{"type":"uint8","name":"tokenType"},{"type":"uint8","name":"status"}]}]},{"type":"function","name":"makeOffer","stateMutability":"nonpayable","inputs":[{"type":"tuple","name":"_params","components":[{"type":"address","name":"assetContract"},{"type":"uint256","name":"tokenId"},{"type":"uint256","name":"quantity"},{"type":"address","name":"currency"},{"type":"uint256","name":"totalPrice"},{"type":"uint256","name":"expirationTimestamp"}]}],"outputs":[{"type":"uint256","name":"_id"}]}]`
