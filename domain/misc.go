package domain

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

type ChainId int32

func (id ChainId) String() string {
	return strconv.Itoa(int(id))
}

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

// NativeCurrency is the marketplace sentinel for the chain's native token
const NativeCurrency = Address("0xEeeeeEeeeEeEeeEeEeEeeEEEeeeeEeeeeeeeEEeE")

func ToAddress(a common.Address) Address {
	return Address(strings.ToLower(a.Hex()))
}

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) Common() common.Address {
	return common.HexToAddress(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0 || a.Equals(EmptyAddress)
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

func (a Address) IsNative() bool {
	return a.Equals(NativeCurrency)
}

type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) BigInt() (*big.Int, bool) {
	n, ok := new(big.Int).SetString(string(i), 10)
	if !ok || n.Sign() < 0 {
		return nil, false
	}
	return n, true
}

type TxHash string

type BlockNumber uint64

// Table is a mongo collection name
type Table string
