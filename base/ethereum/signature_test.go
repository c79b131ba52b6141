package ethereum

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"
)

func TestValidateMsgSignature(t *testing.T) {
	req := require.New(t)
	messageTemplate := "Sign in to the storefront. Nonce: %s"
	key, err := crypto.GenerateKey()
	req.NoError(err)
	address := crypto.PubkeyToAddress(key.PublicKey).Hex()
	message := []byte(fmt.Sprintf(messageTemplate, "123456"))
	signature, err := crypto.Sign(accounts.TextHash(message), key)
	req.NoError(err)
	encoded := hexutil.Encode(signature)

	ok, err := ValidateMsgSignature(message, encoded, address)
	req.NoError(err)
	req.True(ok)

	// validating twice must not be affected by the v adjustment
	ok, err = ValidateMsgSignature(message, encoded, address)
	req.NoError(err)
	req.True(ok)

	ok, err = ValidateMsgSignature([]byte("654321"), encoded, address)
	req.NoError(err)
	req.False(ok)

	other, err := crypto.GenerateKey()
	req.NoError(err)
	ok, err = ValidateMsgSignature(message, encoded, crypto.PubkeyToAddress(other.PublicKey).Hex())
	req.NoError(err)
	req.False(ok)
}

func TestValidateMsgSignatureMalformed(t *testing.T) {
	req := require.New(t)
	_, err := ValidateMsgSignature([]byte("msg"), "not-hex", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	req.Error(err)

	_, err = ValidateMsgSignature([]byte("msg"), "0x1234", "0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266")
	req.Error(err)
}

func TestParsePrivateKey(t *testing.T) {
	req := require.New(t)
	// hardhat account #0
	_, addr, err := ParsePrivateKey("0xac0974bec39a17e36ba4a6b4d238ff944bacb478cbed5efcae784d7bf4f2ff80")
	req.NoError(err)
	req.Equal("0xf39Fd6e51aad88F6F4ce6aB8827279cffFb92266", addr.Hex())

	_, _, err = ParsePrivateKey("0x00")
	req.Error(err)
}
