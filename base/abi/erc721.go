package abi

import (
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// ERC721ABI covers the Transfer event and the metadata reads
var ERC721ABI abi.ABI

func init() {
	var err error
	ERC721ABI, err = abi.JSON(strings.NewReader(erc721ABIJson))
	if err != nil {
		panic(err)
	}
}

var erc721ABIJson = `[{"type":"event","name":"Transfer","anonymous":false,"inputs":[{"type":"address","name":"from","indexed":true},{"type":"address","name":"to","indexed":true},{"type":"uint256","name":"tokenId","indexed":true}]},{"type":"function","name":"ownerOf","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"address","name":""}]},{"type":"function","name":"tokenURI","stateMutability":"view","inputs":[{"type":"uint256","name":"tokenId"}],"outputs":[{"type":"string","name":""}]},{"type":"function","name":"name","stateMutability":"view","inputs":[],"outputs":[{"type":"string","name":""}]}]`
